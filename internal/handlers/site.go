package handlers

import (
	"io/fs"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"tripable/internal/contact"
	"tripable/internal/content"
	"tripable/internal/theme"
	"tripable/internal/viewmodel"
	"tripable/pkg/reveal"
)

// Site bundles what every handler needs to build a page.
type Site struct {
	Content *content.Provider
	Theme   *theme.Service
	Inbox   *contact.Inbox
	Reveal  reveal.Config
	Images  content.ImageResolver
	Logger  *zap.Logger
	Now     func() time.Time
}

// NewSite wires the handler dependencies. static is the file system served
// under /static/ and is used to resolve image fallback chains.
func NewSite(provider *content.Provider, themes *theme.Service, inbox *contact.Inbox, cfg reveal.Config, static fs.FS, logger *zap.Logger) *Site {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Site{
		Content: provider,
		Theme:   themes,
		Inbox:   inbox,
		Reveal:  cfg,
		Images: content.ImageResolver{
			FS:          static,
			Prefix:      "/static/",
			Placeholder: "/static/img/placeholder.svg",
		},
		Logger: logger,
		Now:    func() time.Time { return time.Now().UTC() },
	}
}

var navItems = []viewmodel.NavItem{
	{Label: "Home", Href: "/"},
	{Label: "About", Href: "/about"},
	{Label: "Contact", Href: "/contact"},
	{Label: "Sign in", Href: "/login"},
}

func (s *Site) page(r *http.Request, title string, variant viewmodel.HeaderVariant) viewmodel.Page {
	c := s.Content.Current()
	nav := make([]viewmodel.NavItem, len(navItems))
	for i, item := range navItems {
		item.Active = item.Href == r.URL.Path
		nav[i] = item
	}
	return viewmodel.Page{
		Title:       title,
		Description: c.Site.Tagline,
		Path:        r.URL.Path,
		SiteName:    c.Site.Name,
		Tagline:     c.Site.Tagline,
		Email:       c.Site.Email,
		Phone:       c.Site.Phone,
		Address:     c.Site.Address,
		Theme:       string(theme.FromContext(r.Context()).Mode),
		Header:      variant,
		Nav:         nav,
		Year:        s.Now().Year(),
	}
}

// planReveal turns a schedule into the inline styles the views render.
func planReveal(cfg reveal.Config, layout reveal.Layout, root reveal.Direction, elements ...reveal.Element) viewmodel.Reveal {
	sched := reveal.Plan(layout, root, elements, cfg)
	out := viewmodel.Reveal{
		Animated:  sched.Animated(),
		Threshold: strconv.FormatFloat(cfg.Threshold, 'f', -1, 64),
		Once:      cfg.TriggerOnce,
		EndMs:     sched.End().Milliseconds(),
	}
	if !out.Animated {
		return out
	}
	if sched.Root.Animated() {
		out.Root = reveal.InlineStyle(sched.Root, cfg).DeferredCSS()
	}
	out.Slots = make(map[string]string, len(sched.Entries))
	for _, e := range sched.Entries {
		if e.Animated() {
			out.Slots[string(e.Slot)] = reveal.InlineStyle(e, cfg).DeferredCSS()
		}
	}
	return out
}

func el(slot reveal.Slot, dir reveal.Direction, present bool) reveal.Element {
	return reveal.Element{Slot: slot, Direction: dir, Present: present}
}

// section plans a section header. Pass DirectionNone for content whose
// children run their own reveal.
func (s *Site) section(id, title, description string, content reveal.Direction) viewmodel.Section {
	return viewmodel.Section{
		ID:          id,
		Title:       title,
		Description: description,
		Reveal: planReveal(s.Reveal, reveal.LayoutSection, reveal.DirectionNone,
			el(reveal.SlotTitle, reveal.DirectionBottom, title != ""),
			el(reveal.SlotDescription, reveal.DirectionBottom, description != ""),
			el(reveal.SlotContent, content, true),
		),
	}
}
