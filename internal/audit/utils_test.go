package audit

import (
	"strings"
	"testing"
)

func TestInterpret(t *testing.T) {
	tests := []struct {
		name     string
		entry    LogEntry
		expected string
	}{
		{
			name:     "deprovision",
			entry:    LogEntry{Verb: Deprovision, ResourceType: OrgResource, ResourceId: "org-1"},
			expected: "Deprovisioned an organization (ID: org-1)",
		},
		{
			name:     "login",
			entry:    LogEntry{Verb: Login, ResourceType: SessionResource},
			expected: "Logged into Overseer",
		},
		{
			name:     "flag toggle",
			entry:    LogEntry{Verb: Update, ResourceType: FeatureFlagResource, ResourceId: "billing.invoices_v2"},
			expected: "Toggled a feature flag (key: billing.invoices_v2)",
		},
		{
			name:     "org listing",
			entry:    LogEntry{Verb: List, ResourceType: OrgResource},
			expected: "Listed organizations",
		},
		{
			name:     "operator creation",
			entry:    LogEntry{Verb: Create, ResourceType: UserResource, ResourceId: "user-1"},
			expected: "Created an operator account (ID: user-1)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if rendered := Interpret(tt.entry); rendered != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, rendered)
			}
		})
	}
}

func TestInterpretFallback(t *testing.T) {
	entry := LogEntry{
		EntityId:     "user-1",
		EntityType:   OperatorEntity,
		Verb:         Delete,
		ResourceType: TicketResource,
		ResourceId:   "ticket-1",
	}
	rendered := Interpret(entry)
	for _, fragment := range []string{"user-1", "delete", "ticket-1"} {
		if !strings.Contains(rendered, fragment) {
			t.Errorf("expected the fallback rendering to contain %q, got %q", fragment, rendered)
		}
	}
}
