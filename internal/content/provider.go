package content

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Provider serves the current content snapshot and swaps it atomically when
// an override file changes.
type Provider struct {
	current atomic.Pointer[Content]
	logger  *zap.Logger
}

// NewProvider returns a provider serving initial.
func NewProvider(initial *Content, logger *zap.Logger) *Provider {
	if logger == nil {
		logger = zap.NewNop()
	}
	p := &Provider{logger: logger}
	p.current.Store(initial)
	return p
}

// Current returns the active snapshot. Callers must not modify it.
func (p *Provider) Current() *Content {
	return p.current.Load()
}

// LoadFile parses path and, if valid, makes it the active snapshot. On
// error the previous snapshot stays in place.
func (p *Provider) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("content: read %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return err
	}
	p.current.Store(c)
	p.logger.Info("content loaded",
		zap.String("path", path),
		zap.Int("destinations", len(c.Destinations)),
		zap.Int("feedback", len(c.Feedback)))
	return nil
}

// Watch reloads path whenever it is written, created or renamed into place,
// until ctx is done. Bursts of events within debounce collapse into one
// reload.
func (p *Provider) Watch(ctx context.Context, path string, debounce time.Duration) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("content: watcher: %w", err)
	}
	defer watcher.Close()

	// Editors replace files by rename, so watch the directory.
	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("content: watch %s: %w", dir, err)
	}
	target := filepath.Clean(path)
	p.logger.Info("watching content", zap.String("path", target))

	var pending <-chan time.Time
	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			pending = time.After(debounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			p.logger.Warn("content watcher error", zap.Error(err))
		case <-pending:
			pending = nil
			if err := p.LoadFile(path); err != nil {
				p.logger.Error("content reload failed, keeping previous", zap.Error(err))
			}
		}
	}
}
