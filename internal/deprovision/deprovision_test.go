package deprovision

import (
	"context"
	"errors"
	"fmt"
	"testing"
)

type mockCallerClient struct {
	identity *Identity
	role     string

	resolveErr error
	roleErr    error

	resolveCalls int
	roleCalls    int
}

func (m *mockCallerClient) ResolveCaller(ctx context.Context) (*Identity, error) {
	m.resolveCalls++
	return m.identity, m.resolveErr
}

func (m *mockCallerClient) GetProfileRole(ctx context.Context, userId string) (string, error) {
	m.roleCalls++
	return m.role, m.roleErr
}

type mockPrivilegedClient struct {
	org      *Organization
	profiles []Profile

	getOrgErr       error
	listProfilesErr error
	deleteAccErrs   map[string]error
	deleteOrgErr    error

	getOrgCalls       int
	listProfilesCalls int
	deleteAccCalls    []string
	deleteOrgCalls    int
}

func (m *mockPrivilegedClient) GetOrganization(ctx context.Context, orgId string) (*Organization, error) {
	m.getOrgCalls++
	return m.org, m.getOrgErr
}

func (m *mockPrivilegedClient) ListProfiles(ctx context.Context, orgId string) ([]Profile, error) {
	m.listProfilesCalls++
	return m.profiles, m.listProfilesErr
}

func (m *mockPrivilegedClient) DeleteAccount(ctx context.Context, userId string) error {
	m.deleteAccCalls = append(m.deleteAccCalls, userId)
	if m.deleteAccErrs != nil {
		return m.deleteAccErrs[userId]
	}
	return nil
}

func (m *mockPrivilegedClient) DeleteOrganization(ctx context.Context, orgId string) error {
	m.deleteOrgCalls++
	return m.deleteOrgErr
}

type testHarness struct {
	caller     *mockCallerClient
	privileged *mockPrivilegedClient

	privilegedConstructions int
	privilegedErr           error
}

func (h *testHarness) service() *Service {
	return &Service{
		NewCallerClient: func(callerToken string) CallerClient {
			return h.caller
		},
		NewPrivilegedClient: func() (PrivilegedClient, error) {
			h.privilegedConstructions++
			if h.privilegedErr != nil {
				return nil, h.privilegedErr
			}
			return h.privileged, nil
		},
	}
}

func newTestHarness() *testHarness {
	return &testHarness{
		caller: &mockCallerClient{
			identity: &Identity{UserId: "caller-1", Email: "ops@overseer.dev"},
			role:     RoleSuperAdmin,
		},
		privileged: &mockPrivilegedClient{
			org: &Organization{Id: "org-1", Name: "Acme"},
		},
	}
}

func (h *testHarness) assertNoPrivilegedCalls(t *testing.T) {
	t.Helper()
	if h.privilegedConstructions != 0 {
		t.Errorf("expected no privileged client constructions, got %d", h.privilegedConstructions)
	}
	if h.privileged.getOrgCalls != 0 {
		t.Errorf("expected no org lookups, got %d", h.privileged.getOrgCalls)
	}
	if h.privileged.listProfilesCalls != 0 {
		t.Errorf("expected no profile enumerations, got %d", h.privileged.listProfilesCalls)
	}
	if len(h.privileged.deleteAccCalls) != 0 {
		t.Errorf("expected no account deletions, got %d", len(h.privileged.deleteAccCalls))
	}
	if h.privileged.deleteOrgCalls != 0 {
		t.Errorf("expected no org deletions, got %d", h.privileged.deleteOrgCalls)
	}
}

func TestDeprovisionMissingToken(t *testing.T) {
	h := newTestHarness()
	_, err := h.service().Deprovision(context.Background(), "", "org-1")
	if !errors.Is(err, ErrorUnauthorized) {
		t.Fatalf("expected ErrorUnauthorized, got %v", err)
	}
	h.assertNoPrivilegedCalls(t)
}

func TestDeprovisionUnresolvableCaller(t *testing.T) {
	h := newTestHarness()
	h.caller.identity = nil
	h.caller.resolveErr = fmt.Errorf("token expired")
	_, err := h.service().Deprovision(context.Background(), "token", "org-1")
	if !errors.Is(err, ErrorUnauthorized) {
		t.Fatalf("expected ErrorUnauthorized, got %v", err)
	}
	h.assertNoPrivilegedCalls(t)
}

func TestDeprovisionNonSuperAdmin(t *testing.T) {
	for _, role := range []string{"member", "support", ""} {
		t.Run("role="+role, func(t *testing.T) {
			h := newTestHarness()
			h.caller.role = role
			_, err := h.service().Deprovision(context.Background(), "token", "org-1")
			if !errors.Is(err, ErrorUnauthorized) {
				t.Fatalf("expected ErrorUnauthorized, got %v", err)
			}
			h.assertNoPrivilegedCalls(t)
		})
	}
}

func TestDeprovisionMissingOrgId(t *testing.T) {
	h := newTestHarness()
	_, err := h.service().Deprovision(context.Background(), "token", "")
	if !errors.Is(err, ErrorInvalidRequest) {
		t.Fatalf("expected ErrorInvalidRequest, got %v", err)
	}
	h.assertNoPrivilegedCalls(t)
}

func TestDeprovisionMissingServiceSecret(t *testing.T) {
	h := newTestHarness()
	h.privilegedErr = fmt.Errorf("service secret is not set")
	_, err := h.service().Deprovision(context.Background(), "token", "org-1")
	if !errors.Is(err, ErrorMisconfiguration) {
		t.Fatalf("expected ErrorMisconfiguration, got %v", err)
	}
	if h.privileged.getOrgCalls != 0 {
		t.Errorf("expected no org lookups after construction failure, got %d", h.privileged.getOrgCalls)
	}
}

func TestDeprovisionOrgNotFound(t *testing.T) {
	h := newTestHarness()
	h.privileged.org = nil
	h.privileged.getOrgErr = fmt.Errorf("no rows")
	_, err := h.service().Deprovision(context.Background(), "token", "org-1")
	if !errors.Is(err, ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
	if len(h.privileged.deleteAccCalls) != 0 {
		t.Errorf("expected no account deletions, got %d", len(h.privileged.deleteAccCalls))
	}
	if h.privileged.deleteOrgCalls != 0 {
		t.Errorf("expected no org deletions, got %d", h.privileged.deleteOrgCalls)
	}
}

func TestDeprovisionZeroProfiles(t *testing.T) {
	h := newTestHarness()
	h.privileged.profiles = []Profile{}
	result, err := h.service().Deprovision(context.Background(), "token", "org-1")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if len(h.privileged.deleteAccCalls) != 0 {
		t.Errorf("expected zero account deletions, got %d", len(h.privileged.deleteAccCalls))
	}
	if h.privileged.deleteOrgCalls != 1 {
		t.Errorf("expected 1 org deletion, got %d", h.privileged.deleteOrgCalls)
	}
	if result.Message != SuccessMessage {
		t.Errorf("unexpected message: %s", result.Message)
	}
}

func TestDeprovisionEnumerationFailureIsNonFatal(t *testing.T) {
	h := newTestHarness()
	h.privileged.listProfilesErr = fmt.Errorf("policy rejected query")
	result, err := h.service().Deprovision(context.Background(), "token", "org-1")
	if err != nil {
		t.Fatalf("expected success despite enumeration failure, got %v", err)
	}
	if len(h.privileged.deleteAccCalls) != 0 {
		t.Errorf("expected zero account deletions, got %d", len(h.privileged.deleteAccCalls))
	}
	if h.privileged.deleteOrgCalls != 1 {
		t.Errorf("expected org deletion to still be attempted, got %d calls", h.privileged.deleteOrgCalls)
	}
	if result.Message != SuccessMessage {
		t.Errorf("unexpected message: %s", result.Message)
	}
}

func TestDeprovisionAccountFailureDoesNotAbort(t *testing.T) {
	h := newTestHarness()
	h.privileged.profiles = []Profile{
		{UserId: "u1"},
		{UserId: "u2"},
		{UserId: "u3"},
	}
	h.privileged.deleteAccErrs = map[string]error{
		"u2": fmt.Errorf("account is locked"),
	}
	result, err := h.service().Deprovision(context.Background(), "token", "org-1")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if len(h.privileged.deleteAccCalls) != 3 {
		t.Fatalf("expected all 3 deletion attempts, got %d", len(h.privileged.deleteAccCalls))
	}
	if h.privileged.deleteOrgCalls != 1 {
		t.Errorf("expected org deletion to still happen, got %d calls", h.privileged.deleteOrgCalls)
	}
	failures := 0
	for _, outcome := range result.Accounts {
		if outcome.Error != "" {
			failures++
			if outcome.UserId != "u2" {
				t.Errorf("unexpected failed account: %s", outcome.UserId)
			}
		}
	}
	if failures != 1 {
		t.Errorf("expected exactly 1 recorded failure, got %d", failures)
	}
}

func TestDeprovisionSkipsEmptyUserIds(t *testing.T) {
	h := newTestHarness()
	h.privileged.profiles = []Profile{
		{UserId: "u1"},
		{UserId: ""},
	}
	result, err := h.service().Deprovision(context.Background(), "token", "org-1")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if len(h.privileged.deleteAccCalls) != 1 {
		t.Fatalf("expected 1 deletion attempt, got %d", len(h.privileged.deleteAccCalls))
	}
	if len(result.Accounts) != 1 {
		t.Errorf("expected 1 recorded outcome, got %d", len(result.Accounts))
	}
}

func TestDeprovisionOrgDeleteFailureIsFatal(t *testing.T) {
	h := newTestHarness()
	h.privileged.profiles = []Profile{{UserId: "u1"}, {UserId: "u2"}}
	h.privileged.deleteOrgErr = fmt.Errorf("row locked")
	_, err := h.service().Deprovision(context.Background(), "token", "org-1")
	if !errors.Is(err, ErrorDeletionFailed) {
		t.Fatalf("expected ErrorDeletionFailed, got %v", err)
	}
	if len(h.privileged.deleteAccCalls) != 2 {
		t.Errorf("expected both account deletions to have been issued, got %d", len(h.privileged.deleteAccCalls))
	}
}

func TestDeprovisionSecondCallNotFound(t *testing.T) {
	h := newTestHarness()
	h.privileged.profiles = []Profile{{UserId: "u1"}}
	if _, err := h.service().Deprovision(context.Background(), "token", "org-1"); err != nil {
		t.Fatalf("expected first call to succeed, got %v", err)
	}

	// the first call removed the org, so the second lookup comes up
	// empty
	h.privileged.org = nil
	h.privileged.getOrgErr = fmt.Errorf("no rows")
	_, err := h.service().Deprovision(context.Background(), "token", "org-1")
	if !errors.Is(err, ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound on second call, got %v", err)
	}
}

func TestDeprovisionEndToEnd(t *testing.T) {
	h := newTestHarness()
	h.privileged.profiles = []Profile{{UserId: "u1"}, {UserId: "u2"}}
	result, err := h.service().Deprovision(context.Background(), "token", "org-1")
	if err != nil {
		t.Fatalf("expected success, got %v", err)
	}
	if h.caller.resolveCalls != 1 || h.caller.roleCalls != 1 {
		t.Errorf("expected exactly one authentication and one authorization call, got %d/%d", h.caller.resolveCalls, h.caller.roleCalls)
	}
	if h.privilegedConstructions != 1 {
		t.Errorf("expected exactly one privileged client construction, got %d", h.privilegedConstructions)
	}
	if len(h.privileged.deleteAccCalls) != 2 {
		t.Errorf("expected 2 account deletions, got %d", len(h.privileged.deleteAccCalls))
	}
	if h.privileged.deleteOrgCalls != 1 {
		t.Errorf("expected 1 org deletion, got %d", h.privileged.deleteOrgCalls)
	}
	if result.Message != SuccessMessage {
		t.Errorf("unexpected message: %s", result.Message)
	}
	if result.OrganizationId != "org-1" {
		t.Errorf("unexpected org id: %s", result.OrganizationId)
	}
}
