package models

import (
	"fmt"
	"strings"

	"overseer/internal/auth"
	"overseer/internal/cache"
)

type DeleteSessionV1Opts struct {
	CachePrefix string
	Secret      string

	BearerToken string
}

// DeleteSessionV1 removes the session from the allow-list, revoking
// the token ahead of its natural expiry.
func DeleteSessionV1(opts DeleteSessionV1Opts) error {
	claims, err := auth.ValidateJwt(opts.Secret, opts.BearerToken)
	if err != nil {
		return fmt.Errorf("models.DeleteSessionV1: failed to validate token: %w", err)
	}
	cacheKey := strings.Join([]string{opts.CachePrefix, claims.UserID, claims.ID}, ":")
	if err := cache.Get().Del(cacheKey); err != nil {
		return fmt.Errorf("models.DeleteSessionV1: failed to remove session: %w", err)
	}
	return nil
}
