package queue

import (
	"encoding/json"
	"testing"
	"time"
)

func TestMemoryQueuePush(t *testing.T) {
	memory := InitMemory()
	output, err := memory.Push(PushOpts{
		Data: []byte("hello"),
		Queue: QueueOpts{
			Stream:  "overseer",
			Subject: "test.subject",
		},
	})
	if err != nil {
		t.Fatalf("Push returned error: %v", err)
	}
	if output.MessageSizeBytes != 5 {
		t.Errorf("expected message size 5, got %d", output.MessageSizeBytes)
	}
	messages := memory.Messages()
	if len(messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(messages))
	}
	if messages[0].Queue.Subject != "test.subject" {
		t.Errorf("expected subject[test.subject], got %s", messages[0].Queue.Subject)
	}
}

func TestGetFallsBackToMemory(t *testing.T) {
	instance = nil
	if Get() == nil {
		t.Fatalf("expected Get to return a fallback instance")
	}
}

func TestPublishOrgDeprovisioned(t *testing.T) {
	memory := InitMemory()
	if err := PublishOrgDeprovisioned(OrgDeprovisionedEvent{
		OrganizationId:  "org-1",
		AccountsRemoved: 3,
		RemovedBy:       "user-1",
	}); err != nil {
		t.Fatalf("PublishOrgDeprovisioned returned error: %v", err)
	}
	messages := memory.Messages()
	if len(messages) != 1 {
		t.Fatalf("expected 1 message, got %d", len(messages))
	}
	if messages[0].Queue.Stream != LifecycleStream {
		t.Errorf("expected stream[%s], got %s", LifecycleStream, messages[0].Queue.Stream)
	}
	if messages[0].Queue.Subject != SubjectOrgDeprovisioned {
		t.Errorf("expected subject[%s], got %s", SubjectOrgDeprovisioned, messages[0].Queue.Subject)
	}
	var event OrgDeprovisionedEvent
	if err := json.Unmarshal(messages[0].Data, &event); err != nil {
		t.Fatalf("failed to unmarshal event: %v", err)
	}
	if event.OrganizationId != "org-1" {
		t.Errorf("expected organizationId[org-1], got %s", event.OrganizationId)
	}
	if event.AccountsRemoved != 3 {
		t.Errorf("expected accountsRemoved[3], got %d", event.AccountsRemoved)
	}
	if event.Timestamp.IsZero() || event.Timestamp.After(time.Now().Add(time.Minute)) {
		t.Errorf("expected a recent timestamp, got %s", event.Timestamp)
	}
}
