package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

const (
	TicketStatusOpen     = "open"
	TicketStatusPending  = "pending"
	TicketStatusResolved = "resolved"
	TicketStatusClosed   = "closed"
)

var TicketStatuses = []string{
	TicketStatusOpen,
	TicketStatusPending,
	TicketStatusResolved,
	TicketStatusClosed,
}

func IsValidTicketStatus(status string) bool {
	for _, s := range TicketStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type Ticket struct {
	Id           *string    `json:"id"`
	OrgId        string     `json:"orgId"`
	AuthorUserId *string    `json:"authorUserId"`
	Subject      string     `json:"subject"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    *time.Time `json:"updatedAt"`
}

func (t Ticket) GetId() string {
	if t.Id == nil {
		return ""
	}
	return *t.Id
}

func (t Ticket) assertIdDefined() error {
	if t.Id == nil {
		return fmt.Errorf("id undefined: %w", errorInputValidationFailed)
	} else if _, err := uuid.Parse(*t.Id); err != nil {
		return fmt.Errorf("id not uuid: %w", errorInputValidationFailed)
	}
	return nil
}

type TicketComment struct {
	Id           string    `json:"id"`
	TicketId     string    `json:"ticketId"`
	AuthorUserId *string   `json:"authorUserId"`
	Body         string    `json:"body"`
	CreatedAt    time.Time `json:"createdAt"`
}
