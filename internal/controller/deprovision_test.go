package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"overseer/internal/common"
	"overseer/internal/deprovision"

	"github.com/gorilla/mux"
)

type stubCallerClient struct {
	identity *deprovision.Identity
	role     string
}

func (s *stubCallerClient) ResolveCaller(ctx context.Context) (*deprovision.Identity, error) {
	if s.identity == nil {
		return nil, fmt.Errorf("no session")
	}
	return s.identity, nil
}

func (s *stubCallerClient) GetProfileRole(ctx context.Context, userId string) (string, error) {
	return s.role, nil
}

type stubPrivilegedClient struct {
	org          *deprovision.Organization
	profiles     []deprovision.Profile
	deleteOrgErr error
}

func (s *stubPrivilegedClient) GetOrganization(ctx context.Context, orgId string) (*deprovision.Organization, error) {
	if s.org == nil {
		return nil, fmt.Errorf("no rows")
	}
	return s.org, nil
}

func (s *stubPrivilegedClient) ListProfiles(ctx context.Context, orgId string) ([]deprovision.Profile, error) {
	return s.profiles, nil
}

func (s *stubPrivilegedClient) DeleteAccount(ctx context.Context, userId string) error {
	return nil
}

func (s *stubPrivilegedClient) DeleteOrganization(ctx context.Context, orgId string) error {
	return s.deleteOrgErr
}

func newDeprovisionTestHandler(t *testing.T, caller *stubCallerClient, privileged *stubPrivilegedClient) http.Handler {
	t.Helper()
	logs := make(chan common.ServiceLog, 128)
	go func() {
		for range logs {
		}
	}()
	t.Cleanup(func() { close(logs) })

	deprovisionService = &deprovision.Service{
		NewCallerClient: func(callerToken string) deprovision.CallerClient {
			return caller
		},
		NewPrivilegedClient: func() (deprovision.PrivilegedClient, error) {
			return privileged, nil
		},
		ServiceLogs: logs,
	}

	router := mux.NewRouter()
	api := router.PathPrefix("/api").Subrouter()
	registerDeprovisionRoutes(RouteRegistrationOpts{
		Router:      api,
		ServiceLogs: logs,
	})
	return common.GetRequestLoggerMiddleware(logs)(router)
}

func TestDeprovisionEndpointSuccess(t *testing.T) {
	caller := &stubCallerClient{
		identity: &deprovision.Identity{UserId: "caller-1", Email: "ops@overseer.dev"},
		role:     deprovision.RoleSuperAdmin,
	}
	privileged := &stubPrivilegedClient{
		org:      &deprovision.Organization{Id: "org-1", Name: "Acme"},
		profiles: []deprovision.Profile{{UserId: "u1"}, {UserId: "u2"}},
	}
	handler := newDeprovisionTestHandler(t, caller, privileged)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/org/deprovision", strings.NewReader(`{"organizationId":"org-1"}`))
	req.Header.Set("Authorization", "Bearer token")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if origin := rec.Header().Get("Access-Control-Allow-Origin"); origin != "*" {
		t.Errorf("expected wildcard CORS origin, got %q", origin)
	}
	var response map[string]string
	if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if response["message"] != deprovision.SuccessMessage {
		t.Errorf("unexpected message: %s", response["message"])
	}
	if _, hasError := response["error"]; hasError {
		t.Errorf("success response must not carry an error field")
	}
}

func TestDeprovisionEndpointFailureEnvelope(t *testing.T) {
	tests := []struct {
		name         string
		caller       *stubCallerClient
		privileged   *stubPrivilegedClient
		body         string
		bearer       string
		expectedKind string
	}{
		{
			name:         "no token",
			caller:       &stubCallerClient{},
			privileged:   &stubPrivilegedClient{},
			body:         `{"organizationId":"org-1"}`,
			bearer:       "",
			expectedKind: "Unauthorized",
		},
		{
			name: "wrong role",
			caller: &stubCallerClient{
				identity: &deprovision.Identity{UserId: "caller-1"},
				role:     "support",
			},
			privileged:   &stubPrivilegedClient{},
			body:         `{"organizationId":"org-1"}`,
			bearer:       "Bearer token",
			expectedKind: "Unauthorized",
		},
		{
			name: "malformed body",
			caller: &stubCallerClient{
				identity: &deprovision.Identity{UserId: "caller-1"},
				role:     deprovision.RoleSuperAdmin,
			},
			privileged:   &stubPrivilegedClient{},
			body:         `{not json`,
			bearer:       "Bearer token",
			expectedKind: "InvalidRequest",
		},
		{
			name: "unknown org",
			caller: &stubCallerClient{
				identity: &deprovision.Identity{UserId: "caller-1"},
				role:     deprovision.RoleSuperAdmin,
			},
			privileged:   &stubPrivilegedClient{org: nil},
			body:         `{"organizationId":"org-x"}`,
			bearer:       "Bearer token",
			expectedKind: "NotFound",
		},
		{
			name: "org delete fails",
			caller: &stubCallerClient{
				identity: &deprovision.Identity{UserId: "caller-1"},
				role:     deprovision.RoleSuperAdmin,
			},
			privileged: &stubPrivilegedClient{
				org:          &deprovision.Organization{Id: "org-1"},
				deleteOrgErr: fmt.Errorf("row locked"),
			},
			body:         `{"organizationId":"org-1"}`,
			bearer:       "Bearer token",
			expectedKind: "DeletionFailed",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newDeprovisionTestHandler(t, tt.caller, tt.privileged)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/org/deprovision", strings.NewReader(tt.body))
			if tt.bearer != "" {
				req.Header.Set("Authorization", tt.bearer)
			}
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
			var response deprovisionFailureResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
				t.Fatalf("failed to parse response: %v", err)
			}
			if response.Error != tt.expectedKind {
				t.Errorf("expected error kind %q, got %q", tt.expectedKind, response.Error)
			}
			if response.Details == "" {
				t.Errorf("expected non-empty details")
			}
		})
	}
}

func TestDeprovisionEndpointPreflight(t *testing.T) {
	handler := newDeprovisionTestHandler(t, &stubCallerClient{}, &stubPrivilegedClient{})
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/org/deprovision", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if rec.Body.Len() != 0 {
		t.Errorf("expected empty preflight body, got %q", rec.Body.String())
	}
	if origin := rec.Header().Get("Access-Control-Allow-Origin"); origin != "*" {
		t.Errorf("expected wildcard CORS origin, got %q", origin)
	}
}
