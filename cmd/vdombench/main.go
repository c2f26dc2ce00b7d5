package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/livefir/vdombench"
	"github.com/livefir/vdombench/internal/config"
)

func main() {
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Error: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if _, err := vdombench.Go(ctx, vdombench.Options{
		Config: cfg,
		Output: os.Stdout,
	}); err != nil {
		stop()
		log.Fatalf("Error: %v", err)
	}
}
