// Package content holds the site's demo copy: destination cards, traveller
// feedback, the team and map embeds.
package content

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"tripable/pkg/reveal"
)

// ErrNotFound is returned when a lookup names an unknown item.
var ErrNotFound = errors.New("content: not found")

//go:embed content.yaml
var embedded []byte

// Site is the copy shared by every page.
type Site struct {
	Name    string `yaml:"name"`
	Tagline string `yaml:"tagline"`
	Mission string `yaml:"mission"`
	Email   string `yaml:"email"`
	Phone   string `yaml:"phone"`
	Address string `yaml:"address"`
}

// Destination is one card in the home page carousel.
type Destination struct {
	ID          string `yaml:"id"`
	Title       string `yaml:"title"`
	Country     string `yaml:"country"`
	Description string `yaml:"description"`
	// Images is tried in order; the first one that exists is shown.
	Images   []string `yaml:"images"`
	Icon     string   `yaml:"icon"`
	Features []string `yaml:"features"`
	MapID    string   `yaml:"map"`
	Reveal   string   `yaml:"reveal"`
}

// Feedback is a traveller quote.
type Feedback struct {
	Author   string `yaml:"author"`
	Location string `yaml:"location"`
	Quote    string `yaml:"quote"`
	Rating   int    `yaml:"rating"`
}

// Member is a person on the about page.
type Member struct {
	Name  string `yaml:"name"`
	Role  string `yaml:"role"`
	Bio   string `yaml:"bio"`
	Photo string `yaml:"photo"`
}

// MapEmbed is an embeddable map iframe.
type MapEmbed struct {
	ID    string `yaml:"id"`
	Title string `yaml:"title"`
	URL   string `yaml:"url"`
}

// Content is one complete, validated snapshot of the site copy.
type Content struct {
	Site         Site          `yaml:"site"`
	Destinations []Destination `yaml:"destinations"`
	Feedback     []Feedback    `yaml:"feedback"`
	Team         []Member      `yaml:"team"`
	Maps         []MapEmbed    `yaml:"maps"`
}

// Embedded returns the content compiled into the binary.
func Embedded() (*Content, error) {
	return Parse(embedded)
}

// Parse decodes and validates a YAML document. Unknown keys are rejected so
// typos in an override file surface on reload.
func Parse(data []byte) (*Content, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	var c Content
	if err := dec.Decode(&c); err != nil {
		return nil, fmt.Errorf("content: decode: %w", err)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Content) validate() error {
	if strings.TrimSpace(c.Site.Name) == "" {
		return errors.New("content: site name is required")
	}
	maps := make(map[string]bool, len(c.Maps))
	for _, m := range c.Maps {
		if m.ID == "" || m.URL == "" {
			return fmt.Errorf("content: map %q needs id and url", m.Title)
		}
		if maps[m.ID] {
			return fmt.Errorf("content: duplicate map id %q", m.ID)
		}
		maps[m.ID] = true
	}
	seen := make(map[string]bool, len(c.Destinations))
	for _, d := range c.Destinations {
		if d.ID == "" || d.Title == "" {
			return fmt.Errorf("content: destination %q needs id and title", d.ID)
		}
		if seen[d.ID] {
			return fmt.Errorf("content: duplicate destination id %q", d.ID)
		}
		seen[d.ID] = true
		if _, err := reveal.ParseDirection(d.Reveal); err != nil {
			return fmt.Errorf("content: destination %q: %w", d.ID, err)
		}
		if _, ok := c.Map(d.MapID); d.MapID != "" && !ok {
			return fmt.Errorf("content: destination %q references unknown map %q", d.ID, d.MapID)
		}
	}
	for _, f := range c.Feedback {
		if f.Rating < 1 || f.Rating > 5 {
			return fmt.Errorf("content: feedback from %q has rating %d outside 1-5", f.Author, f.Rating)
		}
	}
	return nil
}

// Destination looks up a card by id.
func (c *Content) Destination(id string) (Destination, error) {
	for _, d := range c.Destinations {
		if d.ID == id {
			return d, nil
		}
	}
	return Destination{}, fmt.Errorf("destination %q: %w", id, ErrNotFound)
}

// Map looks up a map embed by id.
func (c *Content) Map(id string) (MapEmbed, bool) {
	for _, m := range c.Maps {
		if m.ID == id {
			return m, true
		}
	}
	return MapEmbed{}, false
}

// Direction returns the card's root reveal direction, defaulting to bottom.
func (d Destination) Direction() reveal.Direction {
	if strings.TrimSpace(d.Reveal) == "" {
		return reveal.DirectionBottom
	}
	dir, err := reveal.ParseDirection(d.Reveal)
	if err != nil {
		return reveal.DirectionBottom
	}
	return dir
}
