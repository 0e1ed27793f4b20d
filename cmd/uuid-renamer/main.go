// uuid-renamer renames files to random UUID-based names.
//
// Build with: go build -ldflags "-X github.com/ZanzyTHEbar/uuid-renamer/renamer/version.Commit=$(git rev-parse --short HEAD)" ./cmd/uuid-renamer
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/ZanzyTHEbar/uuid-renamer/renamer/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// cobra already printed the error
	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
