package content

import (
	"io/fs"
	"strings"
)

// ImageResolver walks an image fallback chain against the static file
// system the server embeds.
type ImageResolver struct {
	FS fs.FS
	// Prefix is the URL path the FS is mounted at, e.g. "/static/".
	Prefix string
	// Placeholder is used when candidates are configured but none exist.
	Placeholder string
}

// Resolve returns the first candidate that can be served. Absolute http(s)
// URLs are trusted as-is. It returns false when there are no candidates,
// in which case the caller renders without the image.
func (r ImageResolver) Resolve(candidates []string) (string, bool) {
	configured := false
	for _, c := range candidates {
		c = strings.TrimSpace(c)
		if c == "" {
			continue
		}
		configured = true
		if strings.HasPrefix(c, "https://") || strings.HasPrefix(c, "http://") {
			return c, true
		}
		if r.exists(c) {
			return c, true
		}
	}
	if !configured || r.Placeholder == "" {
		return "", false
	}
	return r.Placeholder, true
}

// Fallbacks returns the candidates after the resolved one, for the
// browser-side onerror chain.
func (r ImageResolver) Fallbacks(candidates []string, resolved string) []string {
	var out []string
	seen := false
	for _, c := range candidates {
		if seen && r.exists(c) {
			out = append(out, c)
		}
		if c == resolved {
			seen = true
		}
	}
	if r.Placeholder != "" && resolved != r.Placeholder {
		out = append(out, r.Placeholder)
	}
	return out
}

func (r ImageResolver) exists(url string) bool {
	if r.FS == nil || !strings.HasPrefix(url, r.Prefix) {
		return false
	}
	name := strings.TrimPrefix(url, r.Prefix)
	info, err := fs.Stat(r.FS, name)
	return err == nil && !info.IsDir()
}
