package overseer

import (
	"fmt"
	"net/http"
	"net/url"
	"time"
)

type Ticket struct {
	Id           string     `json:"id"`
	OrgId        string     `json:"orgId"`
	AuthorUserId *string    `json:"authorUserId"`
	Subject      string     `json:"subject"`
	Status       string     `json:"status"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    *time.Time `json:"updatedAt"`
}

type TicketComment struct {
	Id           string    `json:"id"`
	TicketId     string    `json:"ticketId"`
	AuthorUserId *string   `json:"authorUserId"`
	Body         string    `json:"body"`
	CreatedAt    time.Time `json:"createdAt"`
}

type ListTicketsV1Input struct {
	OrgId  string
	Status string
}

func (c Client) ListTicketsV1(input ListTicketsV1Input) ([]Ticket, error) {
	query := url.Values{}
	if input.OrgId != "" {
		query.Set("orgId", input.OrgId)
	}
	if input.Status != "" {
		query.Set("status", input.Status)
	}
	var tickets []Ticket
	if _, err := c.do(doRequestInput{
		Method: http.MethodGet,
		Path:   "/api/v1/tickets",
		Query:  query,
		Output: &tickets,
	}); err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}
	return tickets, nil
}

type GetTicketV1Output struct {
	Ticket   Ticket          `json:"ticket"`
	Comments []TicketComment `json:"comments"`
}

func (c Client) GetTicketV1(ticketId string) (*GetTicketV1Output, error) {
	var output GetTicketV1Output
	if _, err := c.do(doRequestInput{
		Method: http.MethodGet,
		Path:   fmt.Sprintf("/api/v1/tickets/%s", ticketId),
		Output: &output,
	}); err != nil {
		return nil, fmt.Errorf("failed to get ticket: %w", err)
	}
	return &output, nil
}

type UpdateTicketV1Input struct {
	Status string `json:"status"`
}

func (c Client) UpdateTicketV1(ticketId string, input UpdateTicketV1Input) error {
	if _, err := c.do(doRequestInput{
		Method: http.MethodPut,
		Path:   fmt.Sprintf("/api/v1/tickets/%s", ticketId),
		Body:   input,
	}); err != nil {
		return fmt.Errorf("failed to update ticket: %w", err)
	}
	return nil
}

type CreateTicketCommentV1Input struct {
	Body string `json:"body"`
}

type CreateTicketCommentV1Output struct {
	CommentId string `json:"commentId"`
}

func (c Client) CreateTicketCommentV1(ticketId string, input CreateTicketCommentV1Input) (*CreateTicketCommentV1Output, error) {
	var output CreateTicketCommentV1Output
	if _, err := c.do(doRequestInput{
		Method: http.MethodPost,
		Path:   fmt.Sprintf("/api/v1/tickets/%s/comments", ticketId),
		Body:   input,
		Output: &output,
	}); err != nil {
		return nil, fmt.Errorf("failed to create ticket comment: %w", err)
	}
	return &output, nil
}
