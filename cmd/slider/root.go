package main

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"slider/internal/carousel"
	"slider/internal/config"
	"slider/internal/logging"
	"slider/internal/trace"
	"slider/internal/ui"
)

type rootFlags struct {
	configFile string
	deck       string
	logLevel   string
	logFile    string
	noMouse    bool
}

func newRootCmd() *cobra.Command {
	var flags rootFlags
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "slider",
		Short: "Terminal slide carousel",
		Long: `slider shows a deck of slides one at a time in the terminal.

Move with the arrow keys, the side controls, or by clicking a dot.
Settings are read from slider.yaml (working directory or user config dir),
--config, or SLIDER_CONFIG_FILE, and can be overridden with SLIDER_<SECTION>_<KEY>.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v, cmd, flags)
			if err != nil {
				return err
			}
			return runTUI(cmd.Context(), cfg)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configFile, "config", "", "config file (default slider.yaml, or SLIDER_CONFIG_FILE)")
	pf.StringVar(&flags.deck, "deck", "", "deck file (overrides deck.path)")
	pf.StringVarP(&flags.logLevel, "log-level", "l", "", "log level (debug, info, warn, error)")
	pf.StringVar(&flags.logFile, "log-file", "", "write logs to this file while the TUI runs")
	cmd.Flags().BoolVar(&flags.noMouse, "no-mouse", false, "disable mouse input")

	cmd.AddCommand(newCheckCmd(v, &flags))
	return cmd
}

// loadConfig reads settings and applies flags on top.
func loadConfig(v *viper.Viper, cmd *cobra.Command, flags rootFlags) (*config.Config, error) {
	if err := v.BindPFlag("deck.path", cmd.Flags().Lookup("deck")); err != nil {
		return nil, err
	}
	if err := v.BindPFlag("log.level", cmd.Flags().Lookup("log-level")); err != nil {
		return nil, err
	}
	if err := v.BindPFlag("log.file", cmd.Flags().Lookup("log-file")); err != nil {
		return nil, err
	}
	cfg, err := config.Load(v, flags.configFile)
	if err != nil {
		return nil, err
	}
	if flags.noMouse {
		cfg.Mouse = false
	}
	return cfg, nil
}

func runTUI(ctx context.Context, cfg *config.Config) error {
	if ctx == nil {
		ctx = context.Background()
	}
	logger, closer, err := logging.ForTUI(cfg.Log.File, cfg.Log.Level)
	if err != nil {
		return err
	}
	defer closer.Close()

	deck, err := config.LoadDeck(cfg.Deck.Path)
	if err != nil {
		return err
	}

	provider, err := trace.NewOTLPProvider(ctx)
	if err != nil {
		logger.Warn("tracing disabled", "err", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := provider.Shutdown(shutdownCtx); err != nil {
			logger.Warn("trace shutdown", "err", err)
		}
	}()

	opts := ui.OptionsFromConfig(cfg, deck)
	opts.Logger = logger
	opts.Observers = []carousel.Observer{trace.NewObserver(provider, len(deck.Slides))}
	model, err := ui.NewAppModel(opts)
	if err != nil {
		return err
	}
	logger.Info("starting", "slides", len(deck.Slides), "tabs", len(deck.Tabs), "deck", cfg.Deck.Path)

	programOpts := []tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(ctx)}
	if cfg.Mouse {
		programOpts = append(programOpts, tea.WithMouseCellMotion())
	}
	if _, err := tea.NewProgram(model.AsTeaModel(), programOpts...).Run(); err != nil {
		return fmt.Errorf("run: %w", err)
	}
	return nil
}
