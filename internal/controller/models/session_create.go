package models

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"overseer/internal/auth"
	"overseer/internal/cache"
)

type CreateSessionV1Opts struct {
	Db          *sql.DB
	CachePrefix string
	Secret      string

	Email    string
	Password string
	Totp     string

	IpAddress string
	UserAgent string
	Source    string
	ExpiresIn time.Duration
}

// CreateSessionV1 verifies the supplied credentials, issues a signed
// session token and places the session on the cache allow-list.
func CreateSessionV1(opts CreateSessionV1Opts) (*SessionToken, error) {
	userInstance, err := GetUserV1(GetUserV1Opts{
		Db:    opts.Db,
		Email: &opts.Email,
	})
	if err != nil {
		return nil, fmt.Errorf("models.CreateSessionV1: failed to get user instance: %w", err)
	}
	if err := userInstance.ValidatePasswordV1(opts.Password); err != nil {
		return nil, fmt.Errorf("models.CreateSessionV1: %w", err)
	}
	if err := userInstance.ValidateTotpV1(opts.Totp); err != nil {
		return nil, fmt.Errorf("models.CreateSessionV1: %w", err)
	}

	sessionId := newSessionId()
	jwtToken, err := auth.GenerateJwt(auth.GenerateJwtOpts{
		Audience: opts.Source,
		Email:    userInstance.Email,
		Ext: map[string]string{
			"ip": opts.IpAddress,
			"ua": opts.UserAgent,
		},
		Id:      sessionId,
		Issuer:  "overseer/controller",
		Secret:  opts.Secret,
		Subject: "operator",
		Ttl:     opts.ExpiresIn,
		UserId:  *userInstance.Id,
	})
	if err != nil {
		return nil, fmt.Errorf("models.CreateSessionV1: failed to issue jwt: %w", err)
	}
	cacheKey := strings.Join([]string{opts.CachePrefix, *userInstance.Id, sessionId}, ":")
	if err := cache.Get().Set(cacheKey, sessionId, opts.ExpiresIn); err != nil {
		return nil, fmt.Errorf("models.CreateSessionV1: failed to update cache: %w", err)
	}
	return &SessionToken{
		SessionId: sessionId,
		Value:     jwtToken,
	}, nil
}
