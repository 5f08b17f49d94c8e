package models

import (
	"database/sql"
	"time"
)

type FeatureFlag struct {
	OrgId     string    `json:"orgId"`
	FlagKey   string    `json:"flagKey"`
	Enabled   bool      `json:"enabled"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type ListFeatureFlagsV1Opts struct {
	Db *sql.DB

	OrgId string
}

func ListFeatureFlagsV1(opts ListFeatureFlagsV1Opts) ([]FeatureFlag, error) {
	flags := []FeatureFlag{}
	if err := executeMysqlSelects(mysqlQueryInput{
		Db: opts.Db,
		Stmt: `
		SELECT
			org_id,
			flag_key,
			enabled,
			updated_at
			FROM feature_flags
			WHERE org_id = ?
			ORDER BY flag_key ASC`,
		Args:     []any{opts.OrgId},
		FnSource: "models.ListFeatureFlagsV1",
		ProcessRows: func(rows *sql.Rows) error {
			var flag FeatureFlag
			if err := rows.Scan(
				&flag.OrgId,
				&flag.FlagKey,
				&flag.Enabled,
				&flag.UpdatedAt,
			); err != nil {
				return err
			}
			flags = append(flags, flag)
			return nil
		},
	}); err != nil {
		return nil, err
	}
	return flags, nil
}

type SetFeatureFlagV1Opts struct {
	Db *sql.DB

	OrgId   string
	FlagKey string
	Enabled bool
}

// SetFeatureFlagV1 upserts a flag value for an organisation.
func SetFeatureFlagV1(opts SetFeatureFlagV1Opts) error {
	return executeMysqlInsert(mysqlQueryInput{
		Db: opts.Db,
		Stmt: `
		INSERT INTO feature_flags(org_id, flag_key, enabled)
			VALUES (?, ?, ?)
			ON DUPLICATE KEY UPDATE enabled = VALUES(enabled)`,
		Args:         []any{opts.OrgId, opts.FlagKey, opts.Enabled},
		FnSource:     "models.SetFeatureFlagV1",
		RowsAffected: atMostNRowsAffected(2),
	})
}
