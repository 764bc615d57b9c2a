package services

import (
	"context"
	"io"
	"time"

	"driver-trip/internal/mylogger"
	"driver-trip/internal/trip-service/core/domain/models"
)

// fakeGateway is an in-memory ITripGateway. Arrive/depart updates flip the
// flags on the held stops the way the real backend does, so a reload after a
// check-in observes the new state.
type fakeGateway struct {
	token string
	user  models.User
	trips []models.Trip
	stops map[int][]models.RouteStop

	loginErr  error
	tripsErr  error
	routeErr  error
	updateErr error

	arriveCalls int
	departCalls int
	tripsCalls  int
}

func newFakeGateway() *fakeGateway {
	return &fakeGateway{
		token: "tok",
		stops: map[int][]models.RouteStop{},
	}
}

func (f *fakeGateway) Login(ctx context.Context, username, password string) (string, error) {
	if f.loginErr != nil {
		return "", f.loginErr
	}
	return f.token, nil
}

func (f *fakeGateway) MainUser(ctx context.Context) (models.User, error) {
	return f.user, nil
}

func (f *fakeGateway) TripsByDriver(ctx context.Context, driverID string) ([]models.Trip, error) {
	f.tripsCalls++
	if f.tripsErr != nil {
		return nil, f.tripsErr
	}
	return f.trips, nil
}

func (f *fakeGateway) TripRouteDetail(ctx context.Context, tripID int) ([]models.RouteStop, error) {
	if f.routeErr != nil {
		return nil, f.routeErr
	}
	return f.stops[tripID], nil
}

func (f *fakeGateway) UpdateArrive(ctx context.Context, stopID int, arrived bool, at time.Time) error {
	f.arriveCalls++
	if f.updateErr != nil {
		return f.updateErr
	}
	f.flip(stopID, func(s *models.RouteStop) { s.IsArrive = arrived })
	return nil
}

func (f *fakeGateway) UpdateDepart(ctx context.Context, stopID int, departed bool, at time.Time) error {
	f.departCalls++
	if f.updateErr != nil {
		return f.updateErr
	}
	f.flip(stopID, func(s *models.RouteStop) { s.IsDepart = departed })
	return nil
}

func (f *fakeGateway) flip(stopID int, apply func(*models.RouteStop)) {
	for tripID, stops := range f.stops {
		for i := range stops {
			if stops[i].ID == stopID {
				apply(&stops[i])
				f.stops[tripID] = stops
			}
		}
	}
}

// fakeStore is an in-memory IStateStore.
type fakeStore struct {
	data map[string]string
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: map[string]string{}}
}

func (f *fakeStore) Get(key string) (string, error) {
	return f.data[key], nil
}

func (f *fakeStore) Set(key, value string) error {
	f.data[key] = value
	return nil
}

func (f *fakeStore) Delete(key string) error {
	delete(f.data, key)
	return nil
}

func testLogger() mylogger.Logger {
	return mylogger.New(mylogger.LevelError, io.Discard)
}

func stop(id, no int, isArrive, isDepart bool) models.RouteStop {
	return models.RouteStop{
		ID:           id,
		No:           no,
		IsArrive:     isArrive,
		IsDepart:     isDepart,
		Activity:     models.ActivityPickup,
		BusinessName: "Stop",
	}
}
