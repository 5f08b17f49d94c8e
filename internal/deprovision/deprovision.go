package deprovision

import (
	"context"
	"errors"
	"fmt"

	"overseer/internal/common"
)

var (
	ErrorUnauthorized     = errors.New("unauthorized")
	ErrorInvalidRequest   = errors.New("invalid_request")
	ErrorMisconfiguration = errors.New("misconfiguration")
	ErrorNotFound         = errors.New("not_found")
	ErrorDeletionFailed   = errors.New("deletion_failed")
)

// SuccessMessage is returned to the caller when the organisation and
// its linked accounts have been removed.
const SuccessMessage = "Organization and associated accounts deleted successfully"

// RoleSuperAdmin is the only role permitted to deprovision.
const RoleSuperAdmin = "super_admin"

// Identity is a caller resolved from a session token.
type Identity struct {
	UserId string
	Email  string
}

// Organization is the minimal view of the tenant being removed.
type Organization struct {
	Id   string
	Name string
}

// Profile links an identity account to an organisation.
type Profile struct {
	UserId string
	Role   string
}

// CallerClient is scoped to the invoking session. It can resolve who
// the caller is and what role they hold, and nothing else.
type CallerClient interface {
	ResolveCaller(ctx context.Context) (*Identity, error)
	GetProfileRole(ctx context.Context, userId string) (string, error)
}

// PrivilegedClient bypasses per-tenant access policy. Instances only
// exist after the authorization gate has passed: the workflow receives
// a constructor rather than a handle, and the constructor is the only
// path to elevated capability.
type PrivilegedClient interface {
	GetOrganization(ctx context.Context, orgId string) (*Organization, error)
	ListProfiles(ctx context.Context, orgId string) ([]Profile, error)
	DeleteAccount(ctx context.Context, userId string) error
	DeleteOrganization(ctx context.Context, orgId string) error
}

// AccountOutcome records one best-effort account deletion. Failures
// here are informational only and never fail the workflow.
type AccountOutcome struct {
	UserId string `json:"userId"`
	Error  string `json:"error,omitempty"`
}

// Result aggregates the workflow's two failure policies: a list of
// per-account outcomes and the single terminal outcome represented by
// the (Result, error) pair itself.
type Result struct {
	OrganizationId string           `json:"organizationId"`
	Accounts       []AccountOutcome `json:"accounts"`
	Message        string           `json:"message"`
}

type Service struct {
	// NewCallerClient binds a session token to a caller-scoped client
	NewCallerClient func(callerToken string) CallerClient

	// NewPrivilegedClient constructs the elevated client from the
	// server-held secret; it fails when the secret is absent
	NewPrivilegedClient func() (PrivilegedClient, error)

	ServiceLogs chan<- common.ServiceLog
}

func (s *Service) log(level, format string, args ...any) {
	if s.ServiceLogs == nil {
		return
	}
	s.ServiceLogs <- common.ServiceLogf(level, format, args...)
}

// Deprovision removes every identity account linked to the identified
// organisation and then removes the organisation record itself. The
// sequence is strictly ordered and fail-fast up to the account purge;
// individual account deletions are best-effort and only the final
// organisation delete is fatal. There are no retries: a failed
// invocation must be re-issued by the caller in full.
func (s *Service) Deprovision(ctx context.Context, callerToken, organizationId string) (*Result, error) {
	if callerToken == "" {
		return nil, fmt.Errorf("deprovision: no caller token supplied: %w", ErrorUnauthorized)
	}
	callerClient := s.NewCallerClient(callerToken)
	identity, err := callerClient.ResolveCaller(ctx)
	if err != nil || identity == nil {
		return nil, fmt.Errorf("deprovision: failed to resolve caller: %w", ErrorUnauthorized)
	}

	role, err := callerClient.GetProfileRole(ctx, identity.UserId)
	if err != nil {
		return nil, fmt.Errorf("deprovision: failed to resolve caller role: %w", ErrorUnauthorized)
	}
	if role != RoleSuperAdmin {
		return nil, fmt.Errorf("deprovision: caller role '%s' is not permitted: %w", role, ErrorUnauthorized)
	}

	if organizationId == "" {
		return nil, fmt.Errorf("deprovision: no organization id supplied: %w", ErrorInvalidRequest)
	}

	privilegedClient, err := s.NewPrivilegedClient()
	if err != nil {
		return nil, fmt.Errorf("deprovision: failed to construct privileged client: %w: %w", ErrorMisconfiguration, err)
	}

	org, err := privilegedClient.GetOrganization(ctx, organizationId)
	if err != nil || org == nil {
		return nil, fmt.Errorf("deprovision: failed to resolve org[%s]: %w", organizationId, ErrorNotFound)
	}

	profiles, err := privilegedClient.ListProfiles(ctx, organizationId)
	if err != nil {
		// non-fatal: partial cleanup is preferred over refusing to
		// deprovision an org whose profile linkage is already broken
		s.log(common.LogLevelWarn, "deprovision: failed to enumerate profiles of org[%s]: %s", organizationId, err)
		profiles = nil
	}

	result := &Result{
		OrganizationId: organizationId,
		Accounts:       []AccountOutcome{},
	}
	for _, profile := range profiles {
		if profile.UserId == "" {
			continue
		}
		outcome := AccountOutcome{UserId: profile.UserId}
		if err := privilegedClient.DeleteAccount(ctx, profile.UserId); err != nil {
			outcome.Error = err.Error()
			s.log(common.LogLevelWarn, "deprovision: failed to delete account[%s] of org[%s]: %s", profile.UserId, organizationId, err)
		}
		result.Accounts = append(result.Accounts, outcome)
	}

	if err := privilegedClient.DeleteOrganization(ctx, organizationId); err != nil {
		s.log(common.LogLevelError, "deprovision: failed to delete org[%s]: %s", organizationId, err)
		return nil, fmt.Errorf("deprovision: failed to delete org[%s]: %w: %w", organizationId, ErrorDeletionFailed, err)
	}

	s.log(common.LogLevelInfo, "deprovision: removed org[%s] and %v linked accounts", organizationId, len(result.Accounts))
	result.Message = SuccessMessage
	return result, nil
}
