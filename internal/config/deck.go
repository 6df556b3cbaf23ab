package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Deck is the content shown by the program: slides for the carousel, tabs
// for the tabbed section, and the modal text.
type Deck struct {
	Title  string  `yaml:"title"`
	Slides []Slide `yaml:"slides"`
	Tabs   []Tab   `yaml:"tabs"`
	Modal  Modal   `yaml:"modal"`
}

// Slide is one carousel panel.
type Slide struct {
	Title  string `yaml:"title"`
	Body   string `yaml:"body"`
	Author string `yaml:"author"`
}

// Tab is one entry of the tabbed section.
type Tab struct {
	Label string `yaml:"label"`
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// Modal is the content of the overlay window.
type Modal struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// LoadDeck reads a deck file. An empty path returns the built-in deck.
func LoadDeck(path string) (*Deck, error) {
	if path == "" {
		return DefaultDeck(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open deck: %w", err)
	}
	defer f.Close()
	d, err := ParseDeck(f)
	if err != nil {
		return nil, fmt.Errorf("deck %s: %w", path, err)
	}
	return d, nil
}

// ParseDeck decodes a deck, rejecting unknown fields. Empty input is an
// empty deck.
func ParseDeck(r io.Reader) (*Deck, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	var d Deck
	if err := dec.Decode(&d); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("decode: %w", err)
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

// Validate checks tab labels. A deck without slides is valid.
func (d *Deck) Validate() error {
	if len(d.Tabs) > 9 {
		return fmt.Errorf("deck: at most 9 tabs, got %d", len(d.Tabs))
	}
	for i, t := range d.Tabs {
		if t.Label == "" {
			return fmt.Errorf("deck: tab %d has no label", i)
		}
	}
	return nil
}

//go:embed default_deck.yaml
var defaultDeckYAML []byte

// DefaultDeck is shown when no deck file is configured. It is decoded from
// the embedded default_deck.yaml on every call, so callers may modify it.
func DefaultDeck() *Deck {
	d, err := ParseDeck(bytes.NewReader(defaultDeckYAML))
	if err != nil {
		// Compiled in and covered by TestDefaultDeck.
		panic(fmt.Sprintf("config: embedded default deck: %v", err))
	}
	return d
}
