// Package components holds the building blocks shared by every page.
package components

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// Templ adapts a gomponents node to templ.Component so handlers can render
// every page through one helper.
func Templ(node g.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return node.Render(w)
	})
}

func classes(names ...string) g.Node {
	kept := make([]string, 0, len(names))
	for _, n := range names {
		if n != "" {
			kept = append(kept, n)
		}
	}
	return g.Attr("class", strings.Join(kept, " "))
}

func styleAttr(css string) g.Node {
	if css == "" {
		return nil
	}
	return g.Attr("style", css)
}
