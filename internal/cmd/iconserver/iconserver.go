// Package iconserver parses icon server flags and launches the service.
package iconserver

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/louisbranch/iconkit/internal/icons/provider"
	"github.com/louisbranch/iconkit/internal/icons/render"
	iconsqlite "github.com/louisbranch/iconkit/internal/icons/store/sqlite"
	entrypoint "github.com/louisbranch/iconkit/internal/platform/cmd"
	platformicons "github.com/louisbranch/iconkit/internal/platform/icons"
	server "github.com/louisbranch/iconkit/internal/services/iconserver"
)

// Config holds icon server command configuration.
type Config struct {
	HTTPAddr string `env:"ICONKIT_HTTP_ADDR" envDefault:":8090"`
	// DBPath points at the custom icon store. Empty serves built-in icons only.
	DBPath      string        `env:"ICONKIT_DB_PATH"`
	CacheMaxAge time.Duration `env:"ICONKIT_CACHE_MAX_AGE" envDefault:"1h"`

	render.Defaults
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "path to the custom icon sqlite database")
	fs.DurationVar(&cfg.CacheMaxAge, "cache-max-age", cfg.CacheMaxAge, "Cache-Control max-age for rendered icons")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run starts the icon HTTP service.
func Run(ctx context.Context, cfg Config) error {
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceIconServer, func(ctx context.Context) error {
		srv, err := newServer(ctx, cfg)
		if err != nil {
			return fmt.Errorf("init icon server: %w", err)
		}
		defer srv.Close()

		if err := srv.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve icons: %w", err)
		}
		return nil
	})
}

func newServer(ctx context.Context, cfg Config) (*server.Server, error) {
	var (
		custom    []provider.Provider
		resources []io.Closer
	)
	if strings.TrimSpace(cfg.DBPath) != "" {
		store, err := iconsqlite.OpenFile(cfg.DBPath)
		if err != nil {
			return nil, fmt.Errorf("open icon sqlite store: %w", err)
		}
		stored, err := store.Provider(ctx)
		if err != nil {
			_ = store.Close()
			return nil, fmt.Errorf("load custom icons: %w", err)
		}
		custom = append(custom, stored)
		resources = append(resources, store)
	}

	reg, err := platformicons.NewRegistry(custom...)
	if err != nil {
		closeAll(resources)
		return nil, fmt.Errorf("build icon registry: %w", err)
	}
	srv, err := server.NewServer(server.Config{
		HTTPAddr:    cfg.HTTPAddr,
		Registry:    reg,
		Defaults:    cfg.Defaults,
		CacheMaxAge: cfg.CacheMaxAge,
		Resources:   resources,
	})
	if err != nil {
		closeAll(resources)
		return nil, err
	}
	return srv, nil
}

func closeAll(resources []io.Closer) {
	for _, resource := range resources {
		_ = resource.Close()
	}
}
