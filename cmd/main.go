package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/katiamach/heatrisk-calendars/internal/api"
	"github.com/katiamach/heatrisk-calendars/internal/config"
	"github.com/katiamach/heatrisk-calendars/internal/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal(fmt.Errorf("failed to load config: %v", err))
	}

	err = logger.Configure(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		logger.Fatal(fmt.Errorf("failed to configure logger: %v", err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = api.RunAPI(ctx, cfg)
	if err != nil {
		logger.Fatal(fmt.Errorf("failed to run heatrisk calendars api: %v", err))
	}
}
