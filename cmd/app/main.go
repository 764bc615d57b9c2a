package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"driver-trip/internal/config"
	"driver-trip/internal/mylogger"
	tripservice "driver-trip/internal/trip-service"
)

func main() {
	cfg, err := config.New()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	appLogger := mylogger.New(cfg.Log.Level, os.Stderr)

	if err := tripservice.Run(context.Background(), appLogger, cfg, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
