// Package iconrender renders icons to a writer from the command line.
package iconrender

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/louisbranch/iconkit/internal/icons/catalog"
	"github.com/louisbranch/iconkit/internal/icons/name"
	"github.com/louisbranch/iconkit/internal/icons/provider"
	"github.com/louisbranch/iconkit/internal/icons/render"
	iconsqlite "github.com/louisbranch/iconkit/internal/icons/store/sqlite"
	entrypoint "github.com/louisbranch/iconkit/internal/platform/cmd"
	platformicons "github.com/louisbranch/iconkit/internal/platform/icons"
)

// Config holds icon render command configuration.
type Config struct {
	DBPath string `env:"ICONKIT_DB_PATH"`

	render.Defaults

	// Name is the icon to render, from -name or the first argument.
	Name string
	// NodesPath is a JSON node list file rendered inline instead of Name.
	NodesPath   string
	Color       string
	Size        string
	StrokeWidth string
	// AbsoluteStrokeWidth is "true", "false" or empty for the default.
	AbsoluteStrokeWidth string
	Class               string

	Sprite bool
	List   bool
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "path to the custom icon sqlite database")
	fs.StringVar(&cfg.Name, "name", "", "icon name in any spelling, e.g. arrow-down")
	fs.StringVar(&cfg.NodesPath, "nodes", "", "JSON node list file rendered inline")
	fs.StringVar(&cfg.Color, "color", "", "stroke color")
	fs.StringVar(&cfg.Size, "size", "", "width and height in pixels")
	fs.StringVar(&cfg.StrokeWidth, "stroke-width", "", "stroke width")
	fs.StringVar(&cfg.AbsoluteStrokeWidth, "absolute-stroke-width", "", "keep stroke width constant across sizes (true|false)")
	fs.StringVar(&cfg.Class, "class", "", "extra CSS classes")
	fs.BoolVar(&cfg.Sprite, "sprite", false, "render the core icon sprite sheet")
	fs.BoolVar(&cfg.List, "list", false, "list available icon names")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if cfg.Name == "" && fs.NArg() > 0 {
		cfg.Name = fs.Arg(0)
	}
	return cfg, nil
}

// Run renders the configured output to out.
func Run(ctx context.Context, cfg Config, out io.Writer) error {
	if out == nil {
		return errors.New("output writer is required")
	}
	if err := cfg.Defaults.Validate(); err != nil {
		return fmt.Errorf("default style: %w", err)
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceIconRender, func(ctx context.Context) error {
		reg, closeStore, err := buildRegistry(ctx, cfg.DBPath)
		if err != nil {
			return err
		}
		defer closeStore()

		switch {
		case cfg.List:
			return writeList(out, reg)
		case cfg.Sprite:
			sheet, err := platformicons.LucideSprite(reg, cfg.Defaults)
			if err != nil {
				return fmt.Errorf("render sprite: %w", err)
			}
			_, err = fmt.Fprintln(out, sheet)
			return err
		}

		in, err := inputs(cfg)
		if err != nil {
			return err
		}
		if err := render.Component(reg, cfg.Defaults, in).Render(ctx, out); err != nil {
			return fmt.Errorf("render icon: %w", err)
		}
		_, err = fmt.Fprintln(out)
		return err
	})
}

func buildRegistry(ctx context.Context, dbPath string) (*provider.Registry, func(), error) {
	if strings.TrimSpace(dbPath) == "" {
		reg, err := platformicons.NewRegistry()
		return reg, func() {}, err
	}
	store, err := iconsqlite.OpenFile(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open icon sqlite store: %w", err)
	}
	closeStore := func() { _ = store.Close() }
	stored, err := store.Provider(ctx)
	if err != nil {
		closeStore()
		return nil, nil, fmt.Errorf("load custom icons: %w", err)
	}
	reg, err := platformicons.NewRegistry(stored)
	if err != nil {
		closeStore()
		return nil, nil, err
	}
	return reg, closeStore, nil
}

func inputs(cfg Config) (render.Inputs, error) {
	in := render.Inputs{
		Name:        cfg.Name,
		Color:       cfg.Color,
		Size:        cfg.Size,
		StrokeWidth: cfg.StrokeWidth,
		Class:       cfg.Class,
	}
	if raw := strings.TrimSpace(cfg.AbsoluteStrokeWidth); raw != "" {
		absolute, err := strconv.ParseBool(raw)
		if err != nil {
			return render.Inputs{}, fmt.Errorf("parse -absolute-stroke-width: %w", err)
		}
		in.AbsoluteStrokeWidth = render.Bool(absolute)
	}
	if cfg.NodesPath != "" {
		data, err := os.ReadFile(cfg.NodesPath)
		if err != nil {
			return render.Inputs{}, fmt.Errorf("read nodes: %w", err)
		}
		nodes, err := catalog.DecodeNodes(data)
		if err != nil {
			return render.Inputs{}, fmt.Errorf("decode nodes: %w", err)
		}
		in.Nodes = nodes
	}
	return in, nil
}

func writeList(out io.Writer, reg *provider.Registry) error {
	for _, canonical := range reg.Names() {
		if _, err := fmt.Fprintf(out, "%s\t%s\n", canonical, name.Kebab(canonical)); err != nil {
			return err
		}
	}
	return nil
}
