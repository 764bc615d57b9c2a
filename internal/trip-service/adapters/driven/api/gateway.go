package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"driver-trip/internal/config"
	"driver-trip/internal/mylogger"
	"driver-trip/internal/trip-service/core/domain/dto"
	"driver-trip/internal/trip-service/core/domain/models"
	"driver-trip/internal/trip-service/core/myerrors"
	"driver-trip/internal/trip-service/core/ports/driven"
)

// Backend endpoints. Paths are owned by the dispatch backend and copied
// verbatim.
const (
	LoginPath          = "/account/login"
	MainUserPath       = "/Settings_Users/GetMainUserById"
	TripListPath       = "/Loads_Trips/Trip_ListByDriver"
	RouteDetailPath    = "/Loads_Trips/TripRouteDetail"
	ArriveOrDepartPath = "/Loads_Trips/Trip_UpdateArriveOrDepart"
)

// TripGateway talks to the dispatch REST backend. The bearer token is read
// from the state store on every call; a 401 on any authenticated call clears
// it and surfaces myerrors.ErrSessionExpired, forcing a fresh login.
type TripGateway struct {
	cfg   *config.APIconfig
	store driven.IStateStore
	http  *HTTPClient
	mylog mylogger.Logger
}

func NewTripGateway(cfg *config.APIconfig, store driven.IStateStore, mylog mylogger.Logger) *TripGateway {
	return &TripGateway{
		cfg:   cfg,
		store: store,
		http:  NewHTTPClient(cfg.Timeout),
		mylog: mylog,
	}
}

func (g *TripGateway) Login(ctx context.Context, username, password string) (string, error) {
	body := dto.LoginRequest{Username: username, Password: password}

	data, status, err := g.http.DoRequest(ctx, http.MethodPost, g.cfg.BaseURL+LoginPath, body, nil)
	if err != nil {
		return "", fmt.Errorf("login request: %w", err)
	}
	if status == http.StatusUnauthorized || status == http.StatusBadRequest {
		return "", myerrors.ErrInvalidCredentials
	}
	if status < 200 || status > 299 {
		return "", fmt.Errorf("login request: unexpected status %d", status)
	}

	var resp dto.LoginResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return "", fmt.Errorf("decoding login response: %w", err)
	}
	if resp.Token == "" {
		return "", myerrors.ErrInvalidCredentials
	}
	return resp.Token, nil
}

func (g *TripGateway) MainUser(ctx context.Context) (models.User, error) {
	data, err := g.get(ctx, g.cfg.BaseURL+MainUserPath)
	if err != nil {
		return models.User{}, err
	}

	var resp dto.MainUserResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return models.User{}, fmt.Errorf("decoding user response: %w", err)
	}
	return resp.Data, nil
}

func (g *TripGateway) TripsByDriver(ctx context.Context, driverID string) ([]models.Trip, error) {
	u := g.cfg.BaseURL + TripListPath + "?DriverId=" + url.QueryEscape(driverID)
	data, err := g.get(ctx, u)
	if err != nil {
		return nil, err
	}

	var resp dto.TripListResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("decoding trip list: %w", err)
	}
	return resp.Data, nil
}

func (g *TripGateway) TripRouteDetail(ctx context.Context, tripID int) ([]models.RouteStop, error) {
	u := g.cfg.BaseURL + RouteDetailPath + "?tripId=" + strconv.Itoa(tripID)
	data, err := g.get(ctx, u)
	if err != nil {
		return nil, err
	}

	var resp dto.RouteDetailResponse
	if err := json.Unmarshal(data, &resp); err != nil {
		return nil, fmt.Errorf("decoding route detail: %w", err)
	}
	return resp.Data, nil
}

func (g *TripGateway) UpdateArrive(ctx context.Context, stopID int, arrived bool, at time.Time) error {
	body := dto.ArriveUpdateRequest{
		TripID:       stopID,
		ArriveStatus: arrived,
		ArriveTime:   at.UTC().Format(time.RFC3339),
	}
	return g.put(ctx, g.cfg.BaseURL+ArriveOrDepartPath, body)
}

func (g *TripGateway) UpdateDepart(ctx context.Context, stopID int, departed bool, at time.Time) error {
	body := dto.DepartUpdateRequest{
		TripID:       stopID,
		DepartStatus: departed,
		DepartTime:   at.UTC().Format(time.RFC3339),
	}
	return g.put(ctx, g.cfg.BaseURL+ArriveOrDepartPath, body)
}

func (g *TripGateway) get(ctx context.Context, url string) ([]byte, error) {
	headers, err := g.authHeaders()
	if err != nil {
		return nil, err
	}

	data, status, err := g.http.DoRequest(ctx, http.MethodGet, url, nil, headers)
	if err != nil {
		return nil, err
	}
	if err := g.checkStatus(status); err != nil {
		return nil, err
	}
	return data, nil
}

func (g *TripGateway) put(ctx context.Context, url string, body interface{}) error {
	headers, err := g.authHeaders()
	if err != nil {
		return err
	}

	_, status, err := g.http.DoRequest(ctx, http.MethodPut, url, body, headers)
	if err != nil {
		return err
	}
	return g.checkStatus(status)
}

func (g *TripGateway) authHeaders() (map[string]string, error) {
	token, err := g.store.Get(driven.KeyAuthToken)
	if err != nil {
		return nil, fmt.Errorf("reading token: %w", err)
	}
	if token == "" {
		return nil, myerrors.ErrNotAuthenticated
	}
	return map[string]string{"Authorization": "Bearer " + token}, nil
}

// checkStatus maps a 401 to a forced local logout and anything else outside
// 2xx to a plain error.
func (g *TripGateway) checkStatus(status int) error {
	if status == http.StatusUnauthorized {
		if err := g.store.Delete(driven.KeyAuthToken); err != nil {
			g.mylog.Action("SessionClear").Error("clearing expired token failed", err)
		}
		return myerrors.ErrSessionExpired
	}
	if status < 200 || status > 299 {
		return fmt.Errorf("unexpected status %d", status)
	}
	return nil
}
