package tripservice

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"driver-trip/internal/config"
	"driver-trip/internal/mylogger"
	"driver-trip/internal/trip-service/adapters/driven/api"
	"driver-trip/internal/trip-service/adapters/driven/store"
	"driver-trip/internal/trip-service/adapters/driven/ws"
	"driver-trip/internal/trip-service/adapters/driver/cli"
	"driver-trip/internal/trip-service/core/ports/driven"
	"driver-trip/internal/trip-service/core/services"
)

// Run wires the adapters and services and executes one CLI command.
// Long-running commands stop on SIGINT/SIGTERM.
func Run(ctx context.Context, l mylogger.Logger, cfg *config.Config, args []string) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	stateStore, err := store.New(cfg.State.Dir)
	if err != nil {
		return err
	}

	gateway := api.NewTripGateway(cfg.API, stateStore, l)

	var feed driven.ILocationFeed
	if cfg.WS.URL != "" {
		feed = ws.NewLocationFeed(cfg.WS.URL, l)
	}

	sessionSvc := services.NewSessionService(gateway, stateStore, l)
	tripSvc := services.NewTripService(gateway, stateStore, l)
	progressSvc := services.NewProgressService(gateway, tripSvc, l)
	locationSvc := services.NewLocationService(stateStore, feed, cfg.WS.UpdateInterval, l)

	app := cli.New(sessionSvc, tripSvc, progressSvc, locationSvc, l, os.Stdout)
	return app.Run(ctx, args)
}
