package controller

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"overseer/internal/common"
)

func newErrorLogIngestTestHandler(t *testing.T) http.Handler {
	t.Helper()
	logs := make(chan common.ServiceLog, 128)
	go func() {
		for range logs {
		}
	}()
	t.Cleanup(func() { close(logs) })
	return common.GetRequestLoggerMiddleware(logs)(http.HandlerFunc(handleCreateErrorLogV1))
}

func TestCreateErrorLogEndpointValidation(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "malformed body", body: `{not json`},
		{name: "missing source", body: `{"message":"boom"}`},
		{name: "missing message", body: `{"source":"billing"}`},
		{name: "bad org id", body: `{"source":"billing","message":"boom","orgId":"not-a-uuid"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := newErrorLogIngestTestHandler(t)
			req := httptest.NewRequest(http.MethodPost, "/api/v1/error-logs", strings.NewReader(tt.body))
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
			}
		})
	}
}
