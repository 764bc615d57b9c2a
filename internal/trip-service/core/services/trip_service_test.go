package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"driver-trip/internal/trip-service/core/domain/models"
	"driver-trip/internal/trip-service/core/ports/driven"
)

func TestListWithoutSessionReturnsEmpty(t *testing.T) {
	gw := newFakeGateway()
	gw.trips = []models.Trip{{ID: 1}}
	ts := NewTripService(gw, newFakeStore(), testLogger())

	trips, err := ts.List(context.Background())

	require.NoError(t, err)
	assert.Empty(t, trips)
	assert.Equal(t, 0, gw.tripsCalls, "no network call without a driver id")
}

func TestListReplacesCacheOnSuccess(t *testing.T) {
	gw := newFakeGateway()
	gw.trips = []models.Trip{{ID: 1, TripStatus: "Enroute"}, {ID: 2, TripStatus: "Planned"}}
	st := newFakeStore()
	st.Set(driven.KeyDriverID, "drv-1")
	ts := NewTripService(gw, st, testLogger())

	trips, err := ts.List(context.Background())
	require.NoError(t, err)
	assert.Len(t, trips, 2)
	assert.Len(t, ts.Cached(), 2)
}

func TestListKeepsCacheOnFetchFailure(t *testing.T) {
	gw := newFakeGateway()
	gw.trips = []models.Trip{{ID: 1}}
	st := newFakeStore()
	st.Set(driven.KeyDriverID, "drv-1")
	ts := NewTripService(gw, st, testLogger())

	_, err := ts.List(context.Background())
	require.NoError(t, err)

	gw.tripsErr = assert.AnError
	_, err = ts.List(context.Background())
	require.Error(t, err)

	// The previous successful list remains displayed.
	assert.Len(t, ts.Cached(), 1)
}

func TestRouteDetailSortsBySequence(t *testing.T) {
	gw := newFakeGateway()
	gw.stops[7] = []models.RouteStop{stop(3, 3, false, false), stop(1, 1, false, false), stop(2, 2, false, false)}
	ts := NewTripService(gw, newFakeStore(), testLogger())

	stops, err := ts.RouteDetail(context.Background(), 7)

	require.NoError(t, err)
	require.Len(t, stops, 3)
	assert.Equal(t, []int{1, 2, 3}, []int{stops[0].No, stops[1].No, stops[2].No})
}

func TestFilterBuckets(t *testing.T) {
	trips := []models.Trip{
		{ID: 1, TripStatus: "Planned"},
		{ID: 2, TripStatus: "Assigned"},
		{ID: 3, TripStatus: "Enroute"},
		{ID: 4, TripStatus: "Completed"},
	}

	all := FilterTrips(trips, models.BucketAll, "")
	assert.Len(t, all, 4)

	pending := FilterTrips(trips, models.BucketPending, "")
	require.Len(t, pending, 2)
	assert.Equal(t, 1, pending[0].ID)
	assert.Equal(t, 2, pending[1].ID)

	// "in-progress" is everything not assigned -- completed trips included.
	// Long-standing dashboard behavior, asserted literally.
	inProgress := FilterTrips(trips, models.BucketInProgress, "")
	require.Len(t, inProgress, 3)
	assert.Equal(t, []int{1, 3, 4}, []int{inProgress[0].ID, inProgress[1].ID, inProgress[2].ID})
}

func TestFilterBucketsCaseInsensitive(t *testing.T) {
	trips := []models.Trip{{ID: 1, TripStatus: "PLANNED"}, {ID: 2, TripStatus: "assigned"}}

	pending := FilterTrips(trips, models.BucketPending, "")
	assert.Len(t, pending, 2)
}

func TestFilterSearch(t *testing.T) {
	trips := []models.Trip{
		{ID: 101, TripStatus: "Enroute", Customer: "Acme Logistics", TripStartLocation: "Dallas TX", TripEndLocation: "Memphis TN"},
		{ID: 202, TripStatus: "Enroute", Customer: "Borden", TripStartLocation: "Houston TX", TripEndLocation: "Tulsa OK"},
	}

	assert.Len(t, FilterTrips(trips, models.BucketAll, "acme"), 1)
	assert.Len(t, FilterTrips(trips, models.BucketAll, "202"), 1)
	assert.Len(t, FilterTrips(trips, models.BucketAll, "memphis"), 1)
	assert.Len(t, FilterTrips(trips, models.BucketAll, "houston"), 1)
	assert.Len(t, FilterTrips(trips, models.BucketAll, "tx"), 2)
	assert.Empty(t, FilterTrips(trips, models.BucketAll, "nowhere"))
}

func TestFilterBucketAndSearchBothApply(t *testing.T) {
	trips := []models.Trip{
		{ID: 1, TripStatus: "Planned", Customer: "Acme"},
		{ID: 2, TripStatus: "Enroute", Customer: "Acme"},
	}

	got := FilterTrips(trips, models.BucketPending, "acme")
	require.Len(t, got, 1)
	assert.Equal(t, 1, got[0].ID)
}

func TestHistoryCompletedTripsAndStats(t *testing.T) {
	gw := newFakeGateway()
	gw.trips = []models.Trip{
		{ID: 1, TripStatus: "Completed", Revenue: "1200.50"},
		{ID: 2, TripStatus: "Completed", Revenue: "799.50"},
		{ID: 3, TripStatus: "Completed", Revenue: "n/a"},
		{ID: 4, TripStatus: "Enroute", Revenue: "500"},
		// Exact-case match: lowercase "completed" is not history.
		{ID: 5, TripStatus: "completed", Revenue: "100"},
	}
	st := newFakeStore()
	st.Set(driven.KeyDriverID, "drv-1")
	ts := NewTripService(gw, st, testLogger())

	completed, stats, err := ts.History(context.Background())

	require.NoError(t, err)
	assert.Len(t, completed, 3)
	assert.Equal(t, 3, stats.TotalTrips)
	assert.InDelta(t, 2000.0, stats.TotalEarnings, 0.001)
	assert.InDelta(t, 2000.0/3, stats.AvgFare, 0.001)
}
