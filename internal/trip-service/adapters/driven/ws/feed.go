package ws

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/gorilla/websocket"

	"driver-trip/internal/mylogger"
	"driver-trip/internal/trip-service/core/domain/dto"
)

// LocationFeed streams location update frames to dispatch over a websocket.
type LocationFeed struct {
	url   string
	conn  *websocket.Conn
	mylog mylogger.Logger
}

func NewLocationFeed(url string, mylog mylogger.Logger) *LocationFeed {
	return &LocationFeed{
		url:   url,
		mylog: mylog,
	}
}

func (f *LocationFeed) Connect(ctx context.Context) error {
	conn, _, err := websocket.DefaultDialer.DialContext(ctx, f.url, nil)
	if err != nil {
		return fmt.Errorf("connecting to websocket: %w", err)
	}
	f.conn = conn
	f.mylog.Action("FeedConnect").Info("dispatch feed connected", "url", f.url)
	return nil
}

func (f *LocationFeed) Publish(msg dto.LocationUpdateMessage) error {
	if f.conn == nil {
		return fmt.Errorf("feed not connected")
	}
	data, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("marshaling message: %w", err)
	}
	if err := f.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return fmt.Errorf("writing message: %w", err)
	}
	return nil
}

func (f *LocationFeed) Close() error {
	if f.conn != nil {
		return f.conn.Close()
	}
	return nil
}
