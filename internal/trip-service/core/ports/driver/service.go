package driver

import (
	"context"
	"time"

	"driver-trip/internal/trip-service/core/domain/models"
	"driver-trip/internal/trip-service/core/services"
)

type ISessionService interface {
	Login(ctx context.Context, username, password string) (models.User, error)
	Logout(ctx context.Context) error
	CurrentUser() (models.User, bool)
	DriverID() string
	TokenExpiry() (time.Time, bool)
}

type ITripService interface {
	List(ctx context.Context) ([]models.Trip, error)
	Cached() []models.Trip
	RouteDetail(ctx context.Context, tripID int) ([]models.RouteStop, error)
	History(ctx context.Context) ([]models.Trip, services.HistoryStats, error)
}

type IProgressService interface {
	NextAction(stops []models.RouteStop) (services.CheckInAction, bool)
	CheckIn(ctx context.Context, trip models.Trip, stops []models.RouteStop, stopID int, action services.Action) (models.Trip, []models.RouteStop, error)
	Completion(trip models.Trip, stops []models.RouteStop) services.Completion
	Actionable(trip models.Trip, stops []models.RouteStop) (services.CheckInAction, bool)
}

type ILocationService interface {
	RememberLocation(loc string) error
	LastLocation() string
	SetPermission(decision string) error
	ShouldPrompt() bool
	Track(ctx context.Context, driverID string) error
}
