package overseer

import (
	"fmt"
	"net/http"
	"net/url"
	"time"
)

type UserProfile struct {
	UserId                string    `json:"userId"`
	Role                  string    `json:"role"`
	CurrentOrganizationId *string   `json:"currentOrganizationId"`
	JoinedAt              time.Time `json:"joinedAt"`
}

type User struct {
	Id        string       `json:"id"`
	Email     string       `json:"email"`
	CreatedAt time.Time    `json:"createdAt"`
	Profile   *UserProfile `json:"profile,omitempty"`
}

type ListUsersV1Input struct {
	OrgId string
}

func (c Client) ListUsersV1(input ListUsersV1Input) ([]User, error) {
	query := url.Values{}
	if input.OrgId != "" {
		query.Set("orgId", input.OrgId)
	}
	var users []User
	if _, err := c.do(doRequestInput{
		Method: http.MethodGet,
		Path:   "/api/v1/users",
		Query:  query,
		Output: &users,
	}); err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}
