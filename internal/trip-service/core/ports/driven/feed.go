package driven

import (
	"context"

	"driver-trip/internal/trip-service/core/domain/dto"
)

// ILocationFeed is the dispatch-side websocket used for live position
// updates while tracking is on.
type ILocationFeed interface {
	Connect(ctx context.Context) error
	Publish(msg dto.LocationUpdateMessage) error
	Close() error
}
