package services

import (
	"context"
	"fmt"
	"time"

	"driver-trip/internal/mylogger"
	"driver-trip/internal/trip-service/core/domain/dto"
	"driver-trip/internal/trip-service/core/ports/driven"
)

// Permission decisions for location tracking. Anything else stored under the
// key means the driver was never asked.
const (
	PermissionGranted = "true"
	PermissionSkipped = "skipped"
)

// LocationService keeps the last-known location string and the one-time
// permission decision, and streams position updates to dispatch while
// tracking runs.
type LocationService struct {
	store    driven.IStateStore
	feed     driven.ILocationFeed
	interval time.Duration
	mylog    mylogger.Logger
}

func NewLocationService(store driven.IStateStore, feed driven.ILocationFeed, interval time.Duration, mylog mylogger.Logger) *LocationService {
	return &LocationService{
		store:    store,
		feed:     feed,
		interval: interval,
		mylog:    mylog,
	}
}

func (ls *LocationService) RememberLocation(loc string) error {
	return ls.store.Set(driven.KeyUserLocation, loc)
}

func (ls *LocationService) LastLocation() string {
	loc, err := ls.store.Get(driven.KeyUserLocation)
	if err != nil {
		return ""
	}
	return loc
}

// SetPermission records the driver's one-time decision.
func (ls *LocationService) SetPermission(decision string) error {
	if decision != PermissionGranted && decision != PermissionSkipped {
		return fmt.Errorf("unknown location permission decision %q", decision)
	}
	return ls.store.Set(driven.KeyLocationEnabled, decision)
}

// ShouldPrompt reports whether the location prompt is still owed after
// login: it shows until the driver either grants or skips.
func (ls *LocationService) ShouldPrompt() bool {
	v, err := ls.store.Get(driven.KeyLocationEnabled)
	if err != nil {
		return true
	}
	return v != PermissionGranted && v != PermissionSkipped
}

// Track connects to dispatch and publishes the last-known location on a
// fixed interval until the context is cancelled. It refuses to run when no
// feed is configured or the driver declined tracking.
func (ls *LocationService) Track(ctx context.Context, driverID string) error {
	mylog := ls.mylog.Action("Track").With("driver_id", driverID)

	if ls.feed == nil {
		return fmt.Errorf("no dispatch feed configured")
	}
	if v, _ := ls.store.Get(driven.KeyLocationEnabled); v != PermissionGranted {
		return fmt.Errorf("location tracking not permitted")
	}

	if err := ls.feed.Connect(ctx); err != nil {
		mylog.Error("dispatch feed connect failed", err)
		return fmt.Errorf("connecting to dispatch: %w", err)
	}
	defer ls.feed.Close()

	mylog.Info("location tracking started", "interval", ls.interval.String())

	ticker := time.NewTicker(ls.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			msg := dto.LocationUpdateMessage{
				Type:     dto.MessageTypeLocationUpdate,
				DriverID: driverID,
				Location: ls.LastLocation(),
				SentAt:   time.Now().UTC().Format(time.RFC3339),
			}
			if err := ls.feed.Publish(msg); err != nil {
				mylog.Error("publishing location update failed", err)
				return fmt.Errorf("publishing location update: %w", err)
			}
		case <-ctx.Done():
			mylog.Info("location tracking stopped")
			return nil
		}
	}
}
