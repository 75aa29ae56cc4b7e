// cmd/swscan/main.go
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"swscan/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := app.RunContext(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
