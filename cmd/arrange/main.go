// Command arrange prints the placements computed for TOML scene files.
//
// Usage:
//
//	arrange [flags] scene.toml...   Arrange each scene and print its placements
//	arrange version                 Print version information
//
// Examples:
//
//	arrange dashboard.toml                 Arrange using the scene or terminal viewport
//	arrange --width 120 --height 40 a.toml Override the viewport
//	arrange --depth 0 --format json *.toml Recurse into every nested container
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
)

const version = "0.1.0"

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := newCLI(os.Stdout, os.Stderr).rootCommand().ExecuteContext(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130)
		}
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
