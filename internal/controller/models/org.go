package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type Org struct {
	// Id is a UUID that identifies the organisation uniquely
	Id *string `json:"id"`

	// Code is the shortcode for the organisation and has to be unique
	Code string `json:"code"`

	// Name is the display name of the organisation
	Name string `json:"name"`

	// Plan is the subscription plan the organisation is on
	Plan string `json:"plan"`

	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt"`

	// UserCount stores the number of accounts whose profile points at
	// this organisation, populated on reads that request it
	UserCount *int `json:"userCount,omitempty"`
}

func (o Org) GetId() string {
	if o.Id == nil {
		return ""
	}
	return *o.Id
}

func (o Org) assertIdDefined() error {
	if o.Id == nil {
		return fmt.Errorf("id undefined: %w", errorInputValidationFailed)
	} else if _, err := uuid.Parse(*o.Id); err != nil {
		return fmt.Errorf("id not uuid: %w", errorInputValidationFailed)
	}
	return nil
}
