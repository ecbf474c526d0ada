// Package main imports a JSON icon catalog into the custom icon store.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	iconimportcmd "github.com/louisbranch/iconkit/internal/cmd/iconimport"
	entrypoint "github.com/louisbranch/iconkit/internal/platform/cmd"
	"github.com/louisbranch/iconkit/internal/platform/config"
)

func main() {
	cfg, err := iconimportcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	config.ExitOnError("parse flags", err)
	log.SetPrefix(entrypoint.LogPrefix(entrypoint.ServiceIconImport))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := iconimportcmd.Run(ctx, cfg, os.Stdin, os.Stdout); err != nil {
		stop()
		log.Fatalf("import: %v", err)
	}
}
