package driven

import (
	"context"
	"time"

	"driver-trip/internal/trip-service/core/domain/models"
)

// ITripGateway is the remote REST backend boundary. Implementations attach
// the bearer token to every call after login and clear the local session on
// a 401 (surfaced as myerrors.ErrSessionExpired).
type ITripGateway interface {
	Login(ctx context.Context, username, password string) (string, error)
	MainUser(ctx context.Context) (models.User, error)
	TripsByDriver(ctx context.Context, driverID string) ([]models.Trip, error)
	TripRouteDetail(ctx context.Context, tripID int) ([]models.RouteStop, error)
	UpdateArrive(ctx context.Context, stopID int, arrived bool, at time.Time) error
	UpdateDepart(ctx context.Context, stopID int, departed bool, at time.Time) error
}
