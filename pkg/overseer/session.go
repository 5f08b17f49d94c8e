package overseer

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

type CreateSessionV1Input struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Totp     string `json:"totp"`
}

type SessionToken struct {
	SessionId string `json:"sessionId"`
	Value     string `json:"value"`
}

func (c Client) CreateSessionV1(input CreateSessionV1Input) (*SessionToken, error) {
	var token SessionToken
	if _, err := c.do(doRequestInput{
		Method: http.MethodPost,
		Path:   "/api/v1/session",
		Body:   input,
		Output: &token,
	}); err != nil {
		if errors.Is(err, ErrorMfaTokenRequired) {
			return nil, ErrorMfaTokenRequired
		}
		if errors.Is(err, ErrorAuthRequired) {
			return nil, ErrorLoginFailed
		}
		return nil, fmt.Errorf("failed to create session: %w", err)
	}
	return &token, nil
}

type Session struct {
	Id        string    `json:"id"`
	UserId    string    `json:"userId"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expiresAt"`
	StartedAt time.Time `json:"startedAt"`
	TimeLeft  string    `json:"timeLeft"`
}

func (c Client) GetSessionV1() (*Session, error) {
	var session Session
	if _, err := c.do(doRequestInput{
		Method: http.MethodGet,
		Path:   "/api/v1/session",
		Output: &session,
	}); err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	return &session, nil
}

type DeleteSessionV1Output struct {
	SessionId    string `json:"sessionId"`
	IsSuccessful bool   `json:"isSuccessful"`
}

func (c Client) DeleteSessionV1() (*DeleteSessionV1Output, error) {
	var output DeleteSessionV1Output
	if _, err := c.do(doRequestInput{
		Method: http.MethodDelete,
		Path:   "/api/v1/session",
		Output: &output,
	}); err != nil {
		return nil, fmt.Errorf("failed to delete session: %w", err)
	}
	return &output, nil
}
