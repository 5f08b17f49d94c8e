package queue

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	LifecycleStream = "overseer"

	SubjectOrgDeprovisioned = "org.deprovisioned"
)

// OrgDeprovisionedEvent is emitted on the event bus after an
// organisation and its linked accounts have been removed, so that
// downstream systems (billing, analytics) can react.
type OrgDeprovisionedEvent struct {
	OrganizationId  string    `json:"organizationId"`
	AccountsRemoved int       `json:"accountsRemoved"`
	RemovedBy       string    `json:"removedBy"`
	Timestamp       time.Time `json:"timestamp"`
}

// PublishOrgDeprovisioned emits the event on the lifecycle stream.
func PublishOrgDeprovisioned(event OrgDeprovisionedEvent) error {
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}
	if _, err := Get().Push(PushOpts{
		Data: data,
		Queue: QueueOpts{
			Stream:  LifecycleStream,
			Subject: SubjectOrgDeprovisioned,
		},
	}); err != nil {
		return fmt.Errorf("failed to push event: %w", err)
	}
	return nil
}
