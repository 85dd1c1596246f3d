package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"

	"github.com/goliatone/go-frontend/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.New().Run(ctx, os.Args[1:]); err != nil {
		if errors.Is(err, cli.ErrUsage) {
			if err != cli.ErrUsage {
				log.Print(err)
			}
			os.Exit(2)
		}
		log.Fatalf("frontend-cli: %v", err)
	}
}
