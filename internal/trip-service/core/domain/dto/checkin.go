package dto

// Trip_UpdateArriveOrDepart takes one of these two payloads. The backend
// names the field tripId but it carries the route stop id.

type ArriveUpdateRequest struct {
	TripID       int    `json:"tripId"`
	ArriveStatus bool   `json:"arriveStatus"`
	ArriveTime   string `json:"arriveTime"`
}

type DepartUpdateRequest struct {
	TripID       int    `json:"tripId"`
	DepartStatus bool   `json:"departStatus"`
	DepartTime   string `json:"departTime"`
}
