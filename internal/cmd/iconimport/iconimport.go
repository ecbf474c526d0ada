// Package iconimport loads icon catalog files into the custom icon store.
package iconimport

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/louisbranch/iconkit/internal/icons/catalog"
	iconsqlite "github.com/louisbranch/iconkit/internal/icons/store/sqlite"
	entrypoint "github.com/louisbranch/iconkit/internal/platform/cmd"
	apperrors "github.com/louisbranch/iconkit/internal/platform/errors"
	"github.com/louisbranch/iconkit/internal/platform/timeouts"
)

// stdinPath selects standard input as the catalog source.
const stdinPath = "-"

// Config holds icon import command configuration.
type Config struct {
	DBPath string `env:"ICONKIT_DB_PATH" envDefault:"data/icons.db"`
	// File is the JSON catalog to import, from -file or the first argument.
	File   string
	DryRun bool
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "path to the custom icon sqlite database")
	fs.StringVar(&cfg.File, "file", "", "JSON icon catalog to import (- for stdin)")
	fs.BoolVar(&cfg.DryRun, "dry-run", false, "validate the catalog without writing it")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	if cfg.File == "" && fs.NArg() > 0 {
		cfg.File = fs.Arg(0)
	}
	if strings.TrimSpace(cfg.File) == "" {
		return Config{}, errors.New("catalog file is required")
	}
	return cfg, nil
}

// Run decodes the catalog and writes it to the store in one transaction.
func Run(ctx context.Context, cfg Config, stdin io.Reader, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceIconImport, func(ctx context.Context) error {
		ctx, cancel := context.WithTimeout(ctx, timeouts.Import)
		defer cancel()

		c, err := readCatalog(cfg.File, stdin)
		if err != nil {
			return err
		}
		if cfg.DryRun {
			_, err := fmt.Fprintf(out, "validated %d icons from %s\n", len(c), cfg.File)
			return err
		}

		store, err := iconsqlite.OpenFile(cfg.DBPath)
		if err != nil {
			return fmt.Errorf("open icon sqlite store: %w", err)
		}
		defer func() {
			if err := store.Close(); err != nil {
				fmt.Fprintf(os.Stderr, "Error: close store: %v\n", err)
			}
		}()

		count, err := store.ImportCatalog(ctx, c)
		if err != nil {
			return fmt.Errorf("import catalog: %w", err)
		}
		_, err = fmt.Fprintf(out, "imported %d icons into %s\n", count, cfg.DBPath)
		return err
	})
}

func readCatalog(path string, stdin io.Reader) (catalog.Catalog, error) {
	var r io.Reader
	if path == stdinPath {
		if stdin == nil {
			return nil, errors.New("stdin is not available")
		}
		r = stdin
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("open catalog: %w", err)
		}
		defer f.Close()
		r = f
	}
	c, err := catalog.Decode(r)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.CodeCatalogInvalid, fmt.Sprintf("invalid catalog %s", path), err)
	}
	return c, nil
}
