package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/joho/godotenv/autoload"

	"github.com/spf13/pflag"

	"github.com/muthukumaran/portfolio/internal/clock"
	"github.com/muthukumaran/portfolio/internal/content"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	flagSet := pflag.NewFlagSet("portfolio", pflag.ContinueOnError)
	addr := flagSet.String("addr", ":"+cfg.Port, "listen address")
	contentFile := flagSet.String("content", cfg.ContentFile, "site content YAML (default: embedded site)")
	exportDir := flagSet.String("export", "", "write a static copy of the site to this directory and exit")
	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return nil
		}
		return err
	}

	logger := newLogger(cfg, os.Stderr)
	slog.SetDefault(logger)

	site, err := loadSite(*contentFile, cfg.ContactEmail)
	if err != nil {
		return err
	}
	srv, err := newServer(site, cfg, clock.Real(), logger)
	if err != nil {
		return err
	}

	if *exportDir != "" {
		return srv.export(*exportDir)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return serve(ctx, srv, *addr)
}

// loadSite reads the content file, or the embedded site when path is
// empty. A non-empty email overrides the content's contact address.
func loadSite(path, email string) (*content.Site, error) {
	var site *content.Site
	var err error
	if path == "" {
		site, err = content.Default()
	} else {
		site, err = content.LoadFile(path)
	}
	if err != nil {
		return nil, fmt.Errorf("load content: %w", err)
	}
	if email != "" {
		site.Contact.Email = email
	}
	return site, nil
}

func serve(ctx context.Context, srv *server, addr string) error {
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           srv.router(),
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext:       func(_ net.Listener) context.Context { return ctx },
	}

	errs := make(chan error, 1)
	go func() {
		srv.logger.Info("listening", "addr", addr)
		errs <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	srv.logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
