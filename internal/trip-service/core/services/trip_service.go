package services

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"driver-trip/internal/mylogger"
	"driver-trip/internal/trip-service/core/domain/models"
	"driver-trip/internal/trip-service/core/ports/driven"
)

// TripService fetches and caches the signed-in driver's trip list. The cache
// is replaced only by a complete successful response; a failed fetch leaves
// the previous list standing for display while the error goes to the caller.
type TripService struct {
	gateway driven.ITripGateway
	store   driven.IStateStore
	mylog   mylogger.Logger

	mu    sync.RWMutex
	cache []models.Trip
}

func NewTripService(gateway driven.ITripGateway, store driven.IStateStore, mylog mylogger.Logger) *TripService {
	return &TripService{
		gateway: gateway,
		store:   store,
		mylog:   mylog,
	}
}

// List fetches the trip list for the cached driver id. No cached id means no
// session was ever resolved; that case returns an empty list rather than an
// error, matching the backend's other clients.
func (ts *TripService) List(ctx context.Context) ([]models.Trip, error) {
	mylog := ts.mylog.Action("ListTrips")

	driverID, err := ts.store.Get(driven.KeyDriverID)
	if err != nil {
		return nil, fmt.Errorf("reading driver id: %w", err)
	}
	if driverID == "" {
		return []models.Trip{}, nil
	}

	trips, err := ts.gateway.TripsByDriver(ctx, driverID)
	if err != nil {
		mylog.Error("trip list fetch failed", err)
		return nil, fmt.Errorf("fetching trips: %w", err)
	}
	if trips == nil {
		trips = []models.Trip{}
	}

	ts.mu.Lock()
	ts.cache = trips
	ts.mu.Unlock()

	mylog.Debug("trip list refreshed", "count", len(trips))
	return trips, nil
}

// Cached returns the last successfully fetched list, which may be stale.
func (ts *TripService) Cached() []models.Trip {
	ts.mu.RLock()
	defer ts.mu.RUnlock()
	out := make([]models.Trip, len(ts.cache))
	copy(out, ts.cache)
	return out
}

// RouteDetail fetches a trip's stops and returns them sorted ascending by
// sequence number, ready for the progress scan.
func (ts *TripService) RouteDetail(ctx context.Context, tripID int) ([]models.RouteStop, error) {
	stops, err := ts.gateway.TripRouteDetail(ctx, tripID)
	if err != nil {
		ts.mylog.Action("RouteDetail").Error("route detail fetch failed", err, "trip_id", tripID)
		return nil, fmt.Errorf("fetching route detail: %w", err)
	}
	models.SortStops(stops)
	return stops, nil
}

// HistoryStats summarizes completed trips for the history screen.
type HistoryStats struct {
	TotalTrips    int
	TotalEarnings float64
	AvgFare       float64
}

// History returns completed trips and their earnings summary. Completion
// here is the exact-case status match the history screen has always used.
// Revenue is free text; values that do not parse contribute zero.
func (ts *TripService) History(ctx context.Context) ([]models.Trip, HistoryStats, error) {
	trips, err := ts.List(ctx)
	if err != nil {
		return nil, HistoryStats{}, err
	}

	completed := []models.Trip{}
	for _, t := range trips {
		if t.TripStatus == "Completed" {
			completed = append(completed, t)
		}
	}

	stats := HistoryStats{TotalTrips: len(completed)}
	for _, t := range completed {
		if v, err := strconv.ParseFloat(strings.TrimSpace(t.Revenue), 64); err == nil {
			stats.TotalEarnings += v
		}
	}
	if stats.TotalTrips > 0 {
		stats.AvgFare = stats.TotalEarnings / float64(stats.TotalTrips)
	}
	return completed, stats, nil
}

// FilterTrips applies the dashboard's status bucket and free-text search.
// Both must pass. The bucket predicate is historical behavior and preserved
// as-is: "pending" is planned or assigned, "in-progress" is anything that is
// not assigned -- which includes completed and cancelled trips.
func FilterTrips(trips []models.Trip, bucket models.Bucket, query string) []models.Trip {
	result := []models.Trip{}
	q := strings.ToLower(query)

	for _, trip := range trips {
		if bucket != models.BucketAll && bucket != "" {
			status := trip.StatusKey()
			switch bucket {
			case models.BucketPending:
				if status != "planned" && status != "assigned" {
					continue
				}
			case models.BucketInProgress:
				if status == "assigned" {
					continue
				}
			}
		}

		if q != "" && !tripMatches(trip, q) {
			continue
		}
		result = append(result, trip)
	}
	return result
}

func tripMatches(trip models.Trip, q string) bool {
	return strings.Contains(strings.ToLower(trip.Customer), q) ||
		strings.Contains(strconv.Itoa(trip.ID), q) ||
		strings.Contains(strings.ToLower(trip.TripStartLocation), q) ||
		strings.Contains(strings.ToLower(trip.TripEndLocation), q)
}
