package dto

import "driver-trip/internal/trip-service/core/domain/models"

// The backend wraps every GET payload in a {"data": ...} envelope.

type TripListResponse struct {
	Data []models.Trip `json:"data"`
}

type RouteDetailResponse struct {
	Data []models.RouteStop `json:"data"`
}

type MainUserResponse struct {
	Data models.User `json:"data"`
}
