package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt"

	"driver-trip/internal/mylogger"
	"driver-trip/internal/trip-service/core/domain/models"
	"driver-trip/internal/trip-service/core/myerrors"
	"driver-trip/internal/trip-service/core/ports/driven"
)

// SessionService owns the authenticated session: the bearer token and the
// cached driver profile, both persisted in the state store so they survive
// an app restart. There is no ambient global token; everything that needs
// the session gets the store injected.
type SessionService struct {
	gateway driven.ITripGateway
	store   driven.IStateStore
	mylog   mylogger.Logger
}

func NewSessionService(gateway driven.ITripGateway, store driven.IStateStore, mylog mylogger.Logger) *SessionService {
	return &SessionService{
		gateway: gateway,
		store:   store,
		mylog:   mylog,
	}
}

// Login exchanges credentials for a token, then resolves the driver's own
// identity record and caches both. The two calls are one logical operation:
// a session without a resolved driver id cannot list trips.
func (ss *SessionService) Login(ctx context.Context, username, password string) (models.User, error) {
	mylog := ss.mylog.Action("Login").With("username", username)

	token, err := ss.gateway.Login(ctx, username, password)
	if err != nil {
		mylog.Warn("credential exchange failed")
		return models.User{}, err
	}
	if token == "" {
		mylog.Warn("login returned empty token")
		return models.User{}, myerrors.ErrInvalidCredentials
	}
	if err := ss.store.Set(driven.KeyAuthToken, token); err != nil {
		return models.User{}, fmt.Errorf("saving token: %w", err)
	}

	user, err := ss.gateway.MainUser(ctx)
	if err != nil {
		mylog.Error("resolving driver identity failed", err)
		return models.User{}, fmt.Errorf("resolving driver identity: %w", err)
	}

	raw, err := json.Marshal(user)
	if err != nil {
		return models.User{}, fmt.Errorf("serializing user: %w", err)
	}
	if err := ss.store.Set(driven.KeyDriverID, user.UserID); err != nil {
		return models.User{}, fmt.Errorf("saving driver id: %w", err)
	}
	if err := ss.store.Set(driven.KeyUser, string(raw)); err != nil {
		return models.User{}, fmt.Errorf("saving user: %w", err)
	}

	mylog.Info("driver signed in", "driver_id", user.UserID)
	return user, nil
}

// Logout drops the token and the cached identity.
func (ss *SessionService) Logout(ctx context.Context) error {
	mylog := ss.mylog.Action("Logout")

	for _, key := range []string{driven.KeyAuthToken, driven.KeyDriverID, driven.KeyUser} {
		if err := ss.store.Delete(key); err != nil {
			return fmt.Errorf("clearing session key %q: %w", key, err)
		}
	}
	mylog.Info("driver signed out")
	return nil
}

// CurrentUser returns the cached profile, if a session exists.
func (ss *SessionService) CurrentUser() (models.User, bool) {
	raw, err := ss.store.Get(driven.KeyUser)
	if err != nil || raw == "" {
		return models.User{}, false
	}
	var user models.User
	if err := json.Unmarshal([]byte(raw), &user); err != nil {
		return models.User{}, false
	}
	return user, true
}

// DriverID returns the cached driver id, or "" when signed out.
func (ss *SessionService) DriverID() string {
	id, err := ss.store.Get(driven.KeyDriverID)
	if err != nil {
		return ""
	}
	return id
}

// TokenExpiry reads the exp claim of the stored bearer token without
// verifying the signature; verification is the server's job, the client only
// wants to know when a re-login is coming.
func (ss *SessionService) TokenExpiry() (time.Time, bool) {
	raw, err := ss.store.Get(driven.KeyAuthToken)
	if err != nil || raw == "" {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(raw, claims); err != nil {
		return time.Time{}, false
	}
	exp, ok := claims["exp"].(float64)
	if !ok {
		return time.Time{}, false
	}
	return time.Unix(int64(exp), 0), true
}
