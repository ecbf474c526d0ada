// Package main renders one icon, the sprite sheet or the icon list to stdout.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	iconrendercmd "github.com/louisbranch/iconkit/internal/cmd/iconrender"
	"github.com/louisbranch/iconkit/internal/platform/config"
)

func main() {
	cfg, err := iconrendercmd.ParseConfig(flag.CommandLine, os.Args[1:])
	config.ExitOnError("parse flags", err)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := iconrendercmd.Run(ctx, cfg, os.Stdout); err != nil {
		stop()
		config.Exitf("Error: %v", err)
	}
}
