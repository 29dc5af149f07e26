package content

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripable/pkg/reveal"
)

const minimal = `
site:
  name: Test Trips
destinations:
  - id: oslo
    title: Oslo
`

func TestEmbedded(t *testing.T) {
	c, err := Embedded()
	require.NoError(t, err)
	assert.Equal(t, "Tripable", c.Site.Name)
	assert.NotEmpty(t, c.Destinations)
	assert.NotEmpty(t, c.Feedback)
	assert.NotEmpty(t, c.Team)

	d, err := c.Destination("lisbon")
	require.NoError(t, err)
	assert.Equal(t, reveal.DirectionBottom, d.Direction())
	_, ok := c.Map(d.MapID)
	assert.True(t, ok)

	_, err = c.Destination("atlantis")
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestParse_Validation(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		want string
	}{
		{"no site name", "destinations: []\n", "site name"},
		{"unknown key", "site: {name: x}\nbanner: y\n", "banner"},
		{"bad rating", "site: {name: x}\nfeedback: [{author: a, rating: 9}]\n", "rating"},
		{"bad direction", "site: {name: x}\ndestinations: [{id: a, title: A, reveal: sideways}]\n", "direction"},
		{"duplicate id", "site: {name: x}\ndestinations: [{id: a, title: A}, {id: a, title: B}]\n", "duplicate"},
		{"unknown map", "site: {name: x}\ndestinations: [{id: a, title: A, map: nowhere}]\n", "unknown map"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestDestination_DefaultDirection(t *testing.T) {
	assert.Equal(t, reveal.DirectionBottom, Destination{}.Direction())
	assert.Equal(t, reveal.DirectionLeft, Destination{Reveal: "Left"}.Direction())
	assert.Equal(t, reveal.DirectionNone, Destination{Reveal: "none"}.Direction())
}

func TestProvider_LoadFileKeepsPreviousOnError(t *testing.T) {
	initial, err := Embedded()
	require.NoError(t, err)
	p := NewProvider(initial, nil)

	dir := t.TempDir()
	good := filepath.Join(dir, "good.yaml")
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(good, []byte(minimal), 0o600))
	require.NoError(t, os.WriteFile(bad, []byte("site: [oops"), 0o600))

	require.NoError(t, p.LoadFile(good))
	assert.Equal(t, "Test Trips", p.Current().Site.Name)

	assert.Error(t, p.LoadFile(bad))
	assert.Equal(t, "Test Trips", p.Current().Site.Name)
}

func TestProvider_WatchReloads(t *testing.T) {
	initial, err := Embedded()
	require.NoError(t, err)
	p := NewProvider(initial, nil)

	path := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte("site: {name: Before}\n"), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- p.Watch(ctx, path, 10*time.Millisecond) }()
	defer func() {
		cancel()
		require.NoError(t, <-done)
	}()

	// Give the watcher time to register before writing.
	time.Sleep(50 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte(minimal), 0o600))

	assert.Eventually(t, func() bool {
		return p.Current().Site.Name == "Test Trips"
	}, 2*time.Second, 10*time.Millisecond)
}

func TestImageResolver(t *testing.T) {
	fsys := fstest.MapFS{
		"img/kyoto.svg":       {Data: []byte("<svg/>")},
		"img/placeholder.svg": {Data: []byte("<svg/>")},
	}
	r := ImageResolver{FS: fsys, Prefix: "/static/", Placeholder: "/static/img/placeholder.svg"}

	got, ok := r.Resolve([]string{"/static/img/kyoto.jpg", "/static/img/kyoto.svg"})
	assert.True(t, ok)
	assert.Equal(t, "/static/img/kyoto.svg", got)

	got, ok = r.Resolve([]string{"/static/img/missing.png"})
	assert.True(t, ok)
	assert.Equal(t, "/static/img/placeholder.svg", got)

	got, ok = r.Resolve([]string{"https://cdn.example/x.jpg"})
	assert.True(t, ok)
	assert.Equal(t, "https://cdn.example/x.jpg", got)

	_, ok = r.Resolve(nil)
	assert.False(t, ok, "no candidates means no image")

	assert.Equal(t, []string{"/static/img/placeholder.svg"},
		r.Fallbacks([]string{"/static/img/kyoto.svg"}, "/static/img/kyoto.svg"))
}
