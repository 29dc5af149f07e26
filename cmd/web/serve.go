package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"mime"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"tripable/internal/contact"
	"tripable/internal/content"
	"tripable/internal/handlers"
	"tripable/internal/theme"
)

func newServeCmd(opts *rootOptions) *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context(), opts, addr)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides config and PORT")
	return cmd
}

func runServe(parent context.Context, opts *rootOptions, addrOverride string) error {
	if parent == nil {
		parent = context.Background()
	}
	cfg, logger := opts.cfg, opts.logger
	if addrOverride != "" {
		cfg.Addr = addrOverride
	}

	_ = mime.AddExtensionType(".js", "application/javascript")
	_ = mime.AddExtensionType(".css", "text/css")
	_ = mime.AddExtensionType(".svg", "image/svg+xml")

	staticFS, err := fs.Sub(embeddedStatic, "static")
	if err != nil {
		return err
	}

	initial, err := content.Embedded()
	if err != nil {
		return err
	}
	provider := content.NewProvider(initial, logger)
	if cfg.ContentPath != "" {
		if err := provider.LoadFile(cfg.ContentPath); err != nil {
			return err
		}
	}

	themes := theme.NewService(cfg.SessionTTL, logger)
	inbox := contact.NewInbox(500, logger)
	site := handlers.NewSite(provider, themes, inbox, cfg.Reveal, staticFS, logger)

	server := &http.Server{
		Addr:              cfg.Addr,
		Handler:           handlers.NewRouter(site, staticFS, cfg.RequestTimeout),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      0, // SSE theme stream
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(parent, syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	group, ctx := errgroup.WithContext(ctx)

	group.Go(func() error {
		logger.Info("listening", zap.String("url", "http://localhost"+cfg.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	})
	group.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		logger.Info("shutting down")
		return server.Shutdown(shutdownCtx)
	})
	group.Go(func() error {
		themes.RunJanitor(ctx, time.Hour)
		return nil
	})
	if cfg.WatchContent {
		group.Go(func() error {
			return provider.Watch(ctx, cfg.ContentPath, 250*time.Millisecond)
		})
	}
	return group.Wait()
}
