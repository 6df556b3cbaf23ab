package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"slider/internal/carousel"
	"slider/internal/config"
	"slider/internal/logging"
)

func newCheckCmd(v *viper.Viper, flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "check [deck]",
		Short: "Validate a deck and walk its carousel once",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				if err := cmd.Flags().Set("deck", args[0]); err != nil {
					return err
				}
			}
			cfg, err := loadConfig(v, cmd, *flags)
			if err != nil {
				return err
			}
			logger, err := logging.ForCLI(cmd.ErrOrStderr(), cfg.Log.Level)
			if err != nil {
				return err
			}
			deck, err := config.LoadDeck(cfg.Deck.Path)
			if err != nil {
				return err
			}
			logger.Debug("deck loaded", "path", cfg.Deck.Path, "slides", len(deck.Slides))
			return checkDeck(cmd.OutOrStdout(), deck)
		},
	}
}

// checkDeck builds an engine for deck, walks one full circle with Next and
// verifies it lands back on slide 0 with exactly one active indicator.
func checkDeck(w io.Writer, deck *config.Deck) error {
	var frames []carousel.Frame
	e := carousel.New(len(deck.Slides), carousel.RendererFunc(func(f carousel.Frame) {
		frames = append(frames, f)
	}))
	if err := e.Initialize(); err != nil {
		return err
	}
	fmt.Fprintf(w, "slides: %d\ntabs: %d\n", len(deck.Slides), len(deck.Tabs))
	if len(deck.Slides) == 0 {
		fmt.Fprintln(w, "carousel: empty")
		return nil
	}
	fmt.Fprintf(w, "layout: %v\n", frames[0].Offsets)

	for range deck.Slides {
		if err := e.HandleInput(carousel.Next()); err != nil {
			return err
		}
	}
	if got := e.CurrentIndex(); got != 0 {
		return fmt.Errorf("full circle ended on slide %d, want 0", got)
	}
	active := 0
	for _, ind := range e.Indicators() {
		if ind.Active {
			active++
		}
	}
	if active != 1 {
		return fmt.Errorf("%d active indicators, want 1", active)
	}
	fmt.Fprintf(w, "renders: %d\nok\n", len(frames))
	return nil
}
