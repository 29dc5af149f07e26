// Package viewmodel defines the view-layer types passed to the components.
// These types carry no domain imports so the views stay presentation-only.
package viewmodel

// NavItem is one link in the page header.
type NavItem struct {
	Label  string
	Href   string
	Active bool
}

// HeaderVariant selects how the shared header is drawn.
type HeaderVariant string

const (
	// HeaderOverlay sits transparently over the home page hero.
	HeaderOverlay HeaderVariant = "overlay"
	// HeaderSolid is the opaque bar on inner pages.
	HeaderSolid HeaderVariant = "solid"
)

// Page holds data shared by every page template.
type Page struct {
	Title       string
	Description string
	Path        string
	SiteName    string
	Tagline     string
	Email       string
	Phone       string
	Address     string
	Theme       string
	Header      HeaderVariant
	Nav         []NavItem
	Year        int
}

// Reveal carries the server-computed entrance animation for one component.
type Reveal struct {
	Animated  bool
	Threshold string
	Once      bool
	EndMs     int64
	Root      string
	Slots     map[string]string
}

// Style returns the inline style for slot.
func (r Reveal) Style(slot string) string {
	return r.Slots[slot]
}

// Card is one destination card.
type Card struct {
	ID             string
	Title          string
	Subtitle       string
	Description    string
	Image          string
	ImageAlt       string
	ImageFallbacks []string
	Icon           string
	Features       []string
	Href           string
	Reveal         Reveal
}

// Section is an animated section header with arbitrary content below it.
type Section struct {
	ID          string
	Title       string
	Description string
	Reveal      Reveal
}

// FeedbackEntry is one traveller quote.
type FeedbackEntry struct {
	Author   string
	Location string
	Quote    string
	Rating   int
	Reveal   Reveal
}

// MapEmbed is one map iframe.
type MapEmbed struct {
	ID    string
	Title string
	URL   string
}

// Member is a team member on the about page.
type Member struct {
	Name     string
	Role     string
	Bio      string
	Photo    string
	Initials string
	Reveal   Reveal
}

// HomePage holds data for the landing page.
type HomePage struct {
	Page         Page
	Hero         Section
	Destinations Section
	Cards        []Card
	Feedback     Section
	Quotes       []FeedbackEntry
	MapsSection  Section
	Maps         []MapEmbed
}

// AboutPage holds data for the about page.
type AboutPage struct {
	Page    Page
	Mission Section
	Team    []Member
}

// Form is the state of a submitted or blank form.
type Form struct {
	Action string
	Values map[string]string
	Errors map[string]string
	Notice string
}

// Value returns the submitted value for field.
func (f Form) Value(field string) string { return f.Values[field] }

// Error returns the validation message for field.
func (f Form) Error(field string) string { return f.Errors[field] }

// HasErrors reports whether validation failed.
func (f Form) HasErrors() bool { return len(f.Errors) > 0 }

// FormPage wraps a form with page chrome and an intro section.
type FormPage struct {
	Page  Page
	Intro Section
	Form  Form
}
