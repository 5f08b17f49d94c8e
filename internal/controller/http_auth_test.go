package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"overseer/internal/common"
	"overseer/internal/controller/models"
)

func newRoleGateTestHandler(t *testing.T, next http.Handler) (http.Handler, chan common.ServiceLog) {
	t.Helper()
	logs := make(chan common.ServiceLog, 128)
	go func() {
		for range logs {
		}
	}()
	t.Cleanup(func() { close(logs) })
	gate := requireSuperAdminRole(logs, next)
	return common.GetRequestLoggerMiddleware(logs)(gate), logs
}

func withIdentity(r *http.Request, role string) *http.Request {
	identityInstance := userIdentity{
		UserId: "caller-1",
		Email:  "ops@overseer.dev",
		Role:   role,
	}
	return r.WithContext(context.WithValue(r.Context(), userAuthRequestContext, identityInstance))
}

func TestRequireSuperAdminRoleRejectsOtherRoles(t *testing.T) {
	for _, role := range []string{models.RoleMember, models.RoleSupport} {
		t.Run(role, func(t *testing.T) {
			nextCalled := false
			handler, _ := newRoleGateTestHandler(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
			}))

			req := withIdentity(httptest.NewRequest(http.MethodGet, "/api/v1/orgs", nil), role)
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusForbidden {
				t.Fatalf("expected 403, got %d: %s", rec.Code, rec.Body.String())
			}
			if nextCalled {
				t.Errorf("expected the wrapped handler to never run")
			}
			var response common.HttpResponse
			if err := json.Unmarshal(rec.Body.Bytes(), &response); err != nil {
				t.Fatalf("failed to parse response: %v", err)
			}
			if response.Success {
				t.Errorf("expected a failure envelope")
			}
		})
	}
}

func TestRequireSuperAdminRoleAllowsSuperAdmin(t *testing.T) {
	nextCalled := false
	handler, _ := newRoleGateTestHandler(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		nextCalled = true
		w.WriteHeader(http.StatusOK)
	}))

	req := withIdentity(httptest.NewRequest(http.MethodGet, "/api/v1/orgs", nil), models.RoleSuperAdmin)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !nextCalled {
		t.Errorf("expected the wrapped handler to run")
	}
}

func TestRequireSuperAdminRoleRejectsMissingIdentity(t *testing.T) {
	handler, _ := newRoleGateTestHandler(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Errorf("expected the wrapped handler to never run")
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/v1/orgs", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d", rec.Code)
	}
}
