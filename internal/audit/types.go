package audit

import (
	"errors"
	"time"
)

var (
	ErrorNotInitialized = errors.New("not_initialized")
)

type Verb string

const (
	Create      Verb = "create"
	Delete      Verb = "delete"
	Deprovision Verb = "deprovision"
	Get         Verb = "get"
	List        Verb = "list"
	Login       Verb = "login"
	Logout      Verb = "logout"
	Update      Verb = "update"
)

type EntityType string

const (
	OperatorEntity   EntityType = "operator"
	ControllerEntity EntityType = "controller"
)

type ResourceType string

const (
	ErrorLogResource      ResourceType = "error_log"
	FeatureFlagResource   ResourceType = "feature_flag"
	OrgResource           ResourceType = "org"
	SessionResource       ResourceType = "session"
	TicketResource        ResourceType = "ticket"
	TicketCommentResource ResourceType = "ticket_comment"
	UserResource          ResourceType = "user"
)

type Status string

const (
	Success Status = "success"
	Failed  Status = "failed"
)

type LogEntries []LogEntry

type LogEntry struct {
	EntityId     string         `bson:"entityId"`
	EntityType   EntityType     `bson:"entityType"`
	Verb         Verb           `bson:"verb"`
	ResourceId   string         `bson:"resourceId,omitempty"`
	ResourceType ResourceType   `bson:"resourceType,omitempty"`
	Status       Status         `bson:"status,omitempty"`
	SrcIp        *string        `bson:"srcIp,omitempty"`
	SrcUa        *string        `bson:"srcUa,omitempty"`
	Timestamp    time.Time      `bson:"timestamp"`
	Data         map[string]any `bson:"data,omitempty"`
}

type Logger interface {
	Log(log LogEntry) error
	GetByEntity(entityId string, entityType EntityType, cursor time.Time, limit int64) (LogEntries, error)
}
