package models

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"overseer/internal/auth"
	"overseer/internal/cache"

	"github.com/google/uuid"
)

func newSessionId() string {
	return uuid.NewString()
}

type GetSessionV1Opts struct {
	Db          *sql.DB
	CachePrefix string
	Secret      string

	BearerToken string
}

// GetSessionV1 validates a bearer token and confirms the session is
// still on the allow-list; sessions revoked via DeleteSessionV1 fail
// here even when the token itself has not expired.
func GetSessionV1(opts GetSessionV1Opts) (*Session, error) {
	claims, err := auth.ValidateJwt(opts.Secret, opts.BearerToken)
	if err != nil {
		return nil, fmt.Errorf("models.GetSessionV1: failed to validate token: %w", err)
	}
	cacheKey := strings.Join([]string{opts.CachePrefix, claims.UserID, claims.ID}, ":")
	if _, err := cache.Get().Get(cacheKey); err != nil {
		return nil, fmt.Errorf("models.GetSessionV1: session not on allow-list: %w", ErrorSessionExpired)
	}
	profile, err := GetUserProfileV1(GetUserProfileV1Opts{
		Db:     opts.Db,
		UserId: claims.UserID,
	})
	if err != nil {
		return nil, fmt.Errorf("models.GetSessionV1: failed to load profile: %w", err)
	}
	session := Session{
		Id:     claims.ID,
		UserId: claims.UserID,
		Email:  claims.Email,
		Role:   profile.Role,
	}
	if claims.IssuedAt != nil {
		session.StartedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		session.ExpiresAt = claims.ExpiresAt.Time
		session.TimeLeft = time.Until(claims.ExpiresAt.Time).Round(time.Second).String()
	}
	return &session, nil
}
