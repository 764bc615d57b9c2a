package services

import (
	"context"
	"fmt"
	"time"

	"driver-trip/internal/mylogger"
	"driver-trip/internal/trip-service/core/domain/models"
	"driver-trip/internal/trip-service/core/myerrors"
	"driver-trip/internal/trip-service/core/ports/driven"
)

// Action is a check-in sub-step.
type Action string

const (
	ActionArrive Action = "arrive"
	ActionDepart Action = "depart"
)

// CheckInAction is the single permissible next check-in on a route.
type CheckInAction struct {
	Stop   models.RouteStop
	Action Action
}

// Completion carries the two independent "trip is done" signals. The stops
// scan and the trip's own status field can disagree; neither is folded into
// the other.
type Completion struct {
	AllStopsDone    bool
	StatusCompleted bool
}

// Diverged reports whether the two completion signals disagree.
func (c Completion) Diverged() bool {
	return c.AllStopsDone != c.StatusCompleted
}

// ProgressService walks a trip's ordered stop list and enforces that arrive
// and depart check-ins happen strictly in sequence order. State is never
// flipped locally: after a successful update the trip and its stops are
// reloaded wholesale from the server.
type ProgressService struct {
	gateway driven.ITripGateway
	trips   *TripService
	mylog   mylogger.Logger
	now     func() time.Time
}

func NewProgressService(gateway driven.ITripGateway, trips *TripService, mylog mylogger.Logger) *ProgressService {
	return &ProgressService{
		gateway: gateway,
		trips:   trips,
		mylog:   mylog,
		now:     time.Now,
	}
}

// NextAction scans stops in slice order and returns the earliest unresolved
// sub-step: the first stop not yet arrived gets "arrive", else the first not
// yet departed gets "depart". ok is false once every stop carries both
// flags. The caller supplies stops sorted ascending by No; the scan does not
// re-sort.
func (ps *ProgressService) NextAction(stops []models.RouteStop) (CheckInAction, bool) {
	for _, stop := range stops {
		if !stop.IsArrive {
			return CheckInAction{Stop: stop, Action: ActionArrive}, true
		}
		if !stop.IsDepart {
			return CheckInAction{Stop: stop, Action: ActionDepart}, true
		}
	}
	return CheckInAction{}, false
}

// CheckIn validates the requested (stop, action) against NextAction and, on
// a match, persists the arrive or depart update and reloads the trip and its
// stops from the server. Any mismatch is rejected with ErrOutOfOrderCheckIn
// before the network is touched. A failed update leaves the last
// server-confirmed snapshot in place, so the same action can simply be
// retried.
func (ps *ProgressService) CheckIn(ctx context.Context, trip models.Trip, stops []models.RouteStop, stopID int, action Action) (models.Trip, []models.RouteStop, error) {
	mylog := ps.mylog.Action("CheckIn").With("trip_id", trip.ID, "stop_id", stopID)

	next, ok := ps.NextAction(stops)
	if !ok || next.Stop.ID != stopID || next.Action != action {
		// Order violations are a user mistake, not a system failure.
		mylog.Debug("check-in rejected, out of order", "requested", string(action))
		return trip, stops, myerrors.ErrOutOfOrderCheckIn
	}

	at := ps.now()
	var err error
	switch action {
	case ActionArrive:
		err = ps.gateway.UpdateArrive(ctx, next.Stop.ID, true, at)
	case ActionDepart:
		err = ps.gateway.UpdateDepart(ctx, next.Stop.ID, true, at)
	}
	if err != nil {
		mylog.Error("check-in persist failed", err)
		return trip, stops, fmt.Errorf("persisting %s check-in: %w", action, err)
	}

	mylog.Info("check-in accepted", "action", string(action), "stop_no", next.Stop.No)
	return ps.reload(ctx, trip, stops)
}

// reload re-fetches the trip list and route detail after a mutation. The
// server's snapshot replaces whatever the client believed; if the refresh
// itself fails the check-in still happened, so the error is surfaced with
// the stale data for the caller to retry the fetch.
func (ps *ProgressService) reload(ctx context.Context, trip models.Trip, stops []models.RouteStop) (models.Trip, []models.RouteStop, error) {
	trips, err := ps.trips.List(ctx)
	if err != nil {
		return trip, stops, fmt.Errorf("refreshing trip after check-in: %w", err)
	}
	for _, t := range trips {
		if t.ID == trip.ID {
			trip = t
			break
		}
	}

	fresh, err := ps.trips.RouteDetail(ctx, trip.ID)
	if err != nil {
		return trip, stops, fmt.Errorf("refreshing route after check-in: %w", err)
	}
	return trip, fresh, nil
}

// Completion evaluates both completion signals for a trip.
func (ps *ProgressService) Completion(trip models.Trip, stops []models.RouteStop) Completion {
	_, pending := ps.NextAction(stops)
	return Completion{
		AllStopsDone:    len(stops) > 0 && !pending,
		StatusCompleted: trip.IsCompleted(),
	}
}

// Actionable returns the next action only when the UI may offer it: there is
// one, the trip's own status is not completed, and the trip is past
// "assigned".
func (ps *ProgressService) Actionable(trip models.Trip, stops []models.RouteStop) (CheckInAction, bool) {
	next, ok := ps.NextAction(stops)
	if !ok || trip.IsCompleted() || trip.IsAssigned() {
		return CheckInAction{}, false
	}
	return next, true
}
