package handlers

import (
	"errors"
	"net/http"
	"strings"
	"time"
	"unicode"

	"github.com/go-chi/chi/v5"

	"tripable/internal/content"
	"tripable/internal/viewmodel"
	"tripable/pkg/reveal"
	"tripable/views/pages"
)

type PagesHandler struct {
	site *Site
}

func NewPagesHandler(site *Site) *PagesHandler {
	return &PagesHandler{site: site}
}

func (h *PagesHandler) RegisterRoutes(r chi.Router) {
	r.Get("/", h.home)
	r.Get("/about", h.about)
	r.Get("/destinations/{id}", h.destination)
	r.Get("/healthz", h.healthz)
}

func (h *PagesHandler) home(w http.ResponseWriter, r *http.Request) {
	c := h.site.Content.Current()
	cfg := h.site.Reveal

	cards := make([]viewmodel.Card, 0, len(c.Destinations))
	for _, d := range c.Destinations {
		image, hasImage := h.site.Images.Resolve(d.Images)
		card := viewmodel.Card{
			ID:          d.ID,
			Title:       d.Title,
			Subtitle:    d.Country,
			Description: d.Description,
			Icon:        d.Icon,
			Features:    d.Features,
			Reveal: planReveal(cfg, reveal.LayoutStacked, d.Direction(),
				el(reveal.SlotMedia, reveal.DirectionNone, hasImage || d.Icon != ""),
				el(reveal.SlotTitle, reveal.DirectionBottom, d.Title != ""),
				el(reveal.SlotDescription, reveal.DirectionBottom, d.Description != ""),
				el(reveal.SlotContent, reveal.DirectionBottom, len(d.Features) > 0),
			),
		}
		if hasImage {
			card.Image = image
			card.ImageAlt = d.Title + ", " + d.Country
			card.ImageFallbacks = h.site.Images.Fallbacks(d.Images, image)
		}
		if m, ok := c.Map(d.MapID); ok {
			card.Href = "#map-" + m.ID
		}
		cards = append(cards, card)
	}

	quotes := make([]viewmodel.FeedbackEntry, 0, len(c.Feedback))
	for i, f := range c.Feedback {
		qcfg := cfg
		qcfg.BaseDelay = cfg.BaseDelay + time.Duration(i)*cfg.StaggerIncrement
		quotes = append(quotes, viewmodel.FeedbackEntry{
			Author:   f.Author,
			Location: f.Location,
			Quote:    f.Quote,
			Rating:   f.Rating,
			Reveal: planReveal(qcfg, reveal.LayoutBuildUp, reveal.DirectionBottom,
				el(reveal.SlotDescription, reveal.DirectionNone, true),
				el(reveal.SlotTitle, reveal.DirectionLeft, true),
			),
		})
	}

	maps := make([]viewmodel.MapEmbed, 0, len(c.Maps))
	for _, m := range c.Maps {
		maps = append(maps, viewmodel.MapEmbed{ID: m.ID, Title: m.Title, URL: m.URL})
	}

	hero := viewmodel.Section{
		Title:       c.Site.Name,
		Description: c.Site.Tagline,
		Reveal: planReveal(cfg, reveal.LayoutBuildUp, reveal.DirectionNone,
			el(reveal.SlotMedia, reveal.DirectionTop, true),
			el(reveal.SlotTitle, reveal.DirectionBottom, true),
			el(reveal.SlotDescription, reveal.DirectionBottom, c.Site.Tagline != ""),
			el(reveal.SlotContent, reveal.DirectionBottom, true),
		),
	}

	data := viewmodel.HomePage{
		Page:         h.site.page(r, "", viewmodel.HeaderOverlay),
		Hero:         hero,
		Destinations: h.site.section("destinations", "Where you can go today", "Every route is checked in person by travellers who use it.", reveal.DirectionNone),
		Cards:        cards,
		Feedback:     h.site.section("feedback", "What travellers say", "Real trips, planned with "+c.Site.Name+".", reveal.DirectionNone),
		Quotes:       quotes,
		MapsSection:  h.site.section("maps", "Routes on the map", "", reveal.DirectionBottom),
		Maps:         maps,
	}
	render(w, r, pages.HomePage(data))
}

func (h *PagesHandler) about(w http.ResponseWriter, r *http.Request) {
	c := h.site.Content.Current()
	cfg := h.site.Reveal

	team := make([]viewmodel.Member, 0, len(c.Team))
	for _, m := range c.Team {
		photo, hasPhoto := h.site.Images.Resolve(optional(m.Photo))
		team = append(team, viewmodel.Member{
			Name:     m.Name,
			Role:     m.Role,
			Bio:      m.Bio,
			Photo:    photo,
			Initials: initials(m.Name),
			Reveal: planReveal(cfg, reveal.LayoutStacked, reveal.DirectionBottom,
				el(reveal.SlotMedia, reveal.DirectionNone, hasPhoto),
				el(reveal.SlotTitle, reveal.DirectionBottom, true),
				el(reveal.SlotDescription, reveal.DirectionBottom, m.Bio != ""),
			),
		})
	}

	data := viewmodel.AboutPage{
		Page:    h.site.page(r, "About", viewmodel.HeaderSolid),
		Mission: h.site.section("mission", "About "+c.Site.Name, c.Site.Mission, reveal.DirectionNone),
		Team:    team,
	}
	render(w, r, pages.AboutPage(data))
}

// destination is a shareable link to one card on the home page.
func (h *PagesHandler) destination(w http.ResponseWriter, r *http.Request) {
	d, err := h.site.Content.Current().Destination(chi.URLParam(r, "id"))
	if errors.Is(err, content.ErrNotFound) {
		h.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	http.Redirect(w, r, "/#card-"+d.ID, http.StatusSeeOther)
}

func (h *PagesHandler) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, map[string]any{
		"status":       "ok",
		"destinations": len(h.site.Content.Current().Destinations),
		"visitors":     h.site.Theme.Visitors(),
	})
}

// NotFound renders the site 404 page.
func (h *PagesHandler) NotFound(w http.ResponseWriter, r *http.Request) {
	renderStatus(w, r, http.StatusNotFound, pages.NotFoundPage(h.site.page(r, "Not found", viewmodel.HeaderSolid)))
}

func optional(s string) []string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return []string{s}
}

func initials(name string) string {
	var out []rune
	for _, word := range strings.Fields(name) {
		for _, r := range word {
			if unicode.IsLetter(r) {
				out = append(out, unicode.ToUpper(r))
				break
			}
		}
		if len(out) == 2 {
			break
		}
	}
	return string(out)
}
