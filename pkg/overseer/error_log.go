package overseer

import (
	"fmt"
	"net/http"
	"net/url"
	"time"
)

type ErrorLog struct {
	Id         string    `json:"id"`
	OrgId      *string   `json:"orgId"`
	Level      string    `json:"level"`
	Source     string    `json:"source"`
	Message    string    `json:"message"`
	OccurredAt time.Time `json:"occurredAt"`
}

type ListErrorLogsV1Input struct {
	OrgId string
	Level string
	Since *time.Time
}

func (c Client) ListErrorLogsV1(input ListErrorLogsV1Input) ([]ErrorLog, error) {
	query := url.Values{}
	if input.OrgId != "" {
		query.Set("orgId", input.OrgId)
	}
	if input.Level != "" {
		query.Set("level", input.Level)
	}
	if input.Since != nil {
		query.Set("since", input.Since.Format(time.RFC3339))
	}
	var logs []ErrorLog
	if _, err := c.do(doRequestInput{
		Method: http.MethodGet,
		Path:   "/api/v1/error-logs",
		Query:  query,
		Output: &logs,
	}); err != nil {
		return nil, fmt.Errorf("failed to list error logs: %w", err)
	}
	return logs, nil
}
