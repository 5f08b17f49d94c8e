package models

import (
	"fmt"
	"strings"

	"overseer/internal/cache"
)

// DeleteV1 removes the identity account. The profile row and any
// authored references go with it via the schema's cascades.
func (u *User) DeleteV1(opts DatabaseConnection) error {
	if err := u.assertIdDefined(); err != nil {
		return err
	}
	return executeMysqlDelete(mysqlQueryInput{
		Db:           opts.Db,
		Stmt:         `DELETE FROM users WHERE id = ?`,
		Args:         []any{u.GetId()},
		FnSource:     "models.User.DeleteV1",
		RowsAffected: oneRowAffected,
	})
}

// RevokeSessionsV1 drops every allow-list entry belonging to the
// account so unexpired tokens stop working immediately. The database
// cannot cascade into the cache, hence the explicit scan.
func (u *User) RevokeSessionsV1(cachePrefix string) error {
	if err := u.assertIdDefined(); err != nil {
		return err
	}
	keyPrefix := strings.Join([]string{cachePrefix, u.GetId(), ""}, ":")
	keys, err := cache.Get().Scan(keyPrefix)
	if err != nil {
		return fmt.Errorf("models.User.RevokeSessionsV1: failed to scan sessions: %w", err)
	}
	for _, key := range keys {
		if err := cache.Get().Del(key); err != nil {
			return fmt.Errorf("models.User.RevokeSessionsV1: failed to drop session key[%s]: %w", key, err)
		}
	}
	return nil
}
