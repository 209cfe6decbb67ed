package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"artifact-pruner/internal/adapters/primary/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	code := cli.Execute(ctx, os.Args[1:], cli.Options{})
	stop()
	os.Exit(code)
}
