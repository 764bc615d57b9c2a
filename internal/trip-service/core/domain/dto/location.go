package dto

// LocationUpdateMessage is the frame streamed to dispatch over the
// websocket feed while tracking is on.
type LocationUpdateMessage struct {
	Type     string `json:"type"`
	DriverID string `json:"driver_id"`
	Location string `json:"location"`
	SentAt   string `json:"sent_at"`
}

const MessageTypeLocationUpdate = "location_update"
