package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/teranos/jpoet/cmd/jpoet/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := commands.NewRoot().ExecuteContext(ctx); err != nil {
		commands.PrintError(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}
