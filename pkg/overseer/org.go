package overseer

import (
	"fmt"
	"net/http"
	"time"
)

type Org struct {
	Id        string     `json:"id"`
	Code      string     `json:"code"`
	Name      string     `json:"name"`
	Plan      string     `json:"plan"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt"`
	UserCount *int       `json:"userCount,omitempty"`
}

func (c Client) ListOrgsV1() ([]Org, error) {
	var orgs []Org
	if _, err := c.do(doRequestInput{
		Method: http.MethodGet,
		Path:   "/api/v1/orgs",
		Output: &orgs,
	}); err != nil {
		return nil, fmt.Errorf("failed to list orgs: %w", err)
	}
	return orgs, nil
}

func (c Client) GetOrgV1(orgId string) (*Org, error) {
	var org Org
	if _, err := c.do(doRequestInput{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/api/v1/orgs/%s", orgId),
		Output: &org,
	}); err != nil {
		return nil, fmt.Errorf("failed to get org: %w", err)
	}
	return &org, nil
}

type FeatureFlag struct {
	OrgId     string    `json:"orgId"`
	FlagKey   string    `json:"flagKey"`
	Enabled   bool      `json:"enabled"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (c Client) ListFeatureFlagsV1(orgId string) ([]FeatureFlag, error) {
	var flags []FeatureFlag
	if _, err := c.do(doRequestInput{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/api/v1/orgs/%s/flags", orgId),
		Output: &flags,
	}); err != nil {
		return nil, fmt.Errorf("failed to list feature flags: %w", err)
	}
	return flags, nil
}

type SetFeatureFlagV1Input struct {
	Enabled bool `json:"enabled"`
}

func (c Client) SetFeatureFlagV1(orgId, flagKey string, input SetFeatureFlagV1Input) (*FeatureFlag, error) {
	var flag FeatureFlag
	if _, err := c.do(doRequestInput{
		Method: http.MethodPut,
		Path:   fmt.Sprintf("/api/v1/orgs/%s/flags/%s", orgId, flagKey),
		Body:   input,
		Output: &flag,
	}); err != nil {
		return nil, fmt.Errorf("failed to set feature flag: %w", err)
	}
	return &flag, nil
}
