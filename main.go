package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/gopak/pkgq/cmd"
	"github.com/gopak/pkgq/internal/logging"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		logging.Error(err.Error())
		logging.Close()
		os.Exit(1)
	}
	logging.Close()
}
