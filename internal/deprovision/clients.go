package deprovision

import (
	"context"
	"database/sql"
	"fmt"

	"overseer/internal/controller/models"
)

// NewCallerClientOpts carries what a caller-scoped client needs to
// resolve a session token back to an identity and a role.
type NewCallerClientOpts struct {
	Db          *sql.DB
	CachePrefix string
	Secret      string
}

// NewCallerClient returns a factory binding session tokens to
// caller-scoped clients, suitable for Service.NewCallerClient.
func NewCallerClient(opts NewCallerClientOpts) func(callerToken string) CallerClient {
	return func(callerToken string) CallerClient {
		return &callerClient{
			opts:  opts,
			token: callerToken,
		}
	}
}

type callerClient struct {
	opts  NewCallerClientOpts
	token string
}

func (c *callerClient) ResolveCaller(ctx context.Context) (*Identity, error) {
	session, err := models.GetSessionV1(models.GetSessionV1Opts{
		Db:          c.opts.Db,
		CachePrefix: c.opts.CachePrefix,
		Secret:      c.opts.Secret,
		BearerToken: c.token,
	})
	if err != nil {
		return nil, err
	}
	return &Identity{
		UserId: session.UserId,
		Email:  session.Email,
	}, nil
}

func (c *callerClient) GetProfileRole(ctx context.Context, userId string) (string, error) {
	profile, err := models.GetUserProfileV1(models.GetUserProfileV1Opts{
		Db:     c.opts.Db,
		UserId: userId,
	})
	if err != nil {
		return "", err
	}
	return profile.Role, nil
}

// NewPrivilegedClientOpts carries the elevated database handle and the
// server-held service secret that gates its construction.
type NewPrivilegedClientOpts struct {
	Db *sql.DB

	// CachePrefix namespaces the session allow-list entries that get
	// revoked when an account is deleted
	CachePrefix string

	// ServiceSecret is held by the server, never by callers; its
	// absence means the deployment cannot perform deletions at all
	ServiceSecret string
}

// NewPrivilegedClient returns a factory for the elevated client,
// suitable for Service.NewPrivilegedClient.
func NewPrivilegedClient(opts NewPrivilegedClientOpts) func() (PrivilegedClient, error) {
	return func() (PrivilegedClient, error) {
		if opts.ServiceSecret == "" {
			return nil, fmt.Errorf("service secret is not set")
		}
		if opts.Db == nil {
			return nil, fmt.Errorf("database connection is not set")
		}
		return &privilegedClient{db: opts.Db, cachePrefix: opts.CachePrefix}, nil
	}
}

type privilegedClient struct {
	db          *sql.DB
	cachePrefix string
}

func (p *privilegedClient) GetOrganization(ctx context.Context, orgId string) (*Organization, error) {
	org, err := models.GetOrgV1(models.GetOrgV1Opts{
		Db: p.db,
		Id: &orgId,
	})
	if err != nil {
		return nil, err
	}
	return &Organization{
		Id:   org.GetId(),
		Name: org.Name,
	}, nil
}

func (p *privilegedClient) ListProfiles(ctx context.Context, orgId string) ([]Profile, error) {
	org := models.Org{Id: &orgId}
	memberIds, err := org.ListMemberIdsV1(models.DatabaseConnection{Db: p.db})
	if err != nil {
		return nil, err
	}
	profiles := make([]Profile, 0, len(memberIds))
	for _, memberId := range memberIds {
		profiles = append(profiles, Profile{UserId: memberId})
	}
	return profiles, nil
}

func (p *privilegedClient) DeleteAccount(ctx context.Context, userId string) error {
	user := models.User{Id: &userId}
	if err := user.DeleteV1(models.DatabaseConnection{Db: p.db}); err != nil {
		return err
	}
	return user.RevokeSessionsV1(p.cachePrefix)
}

func (p *privilegedClient) DeleteOrganization(ctx context.Context, orgId string) error {
	org := models.Org{Id: &orgId}
	return org.DeleteV1(models.DatabaseConnection{Db: p.db})
}
