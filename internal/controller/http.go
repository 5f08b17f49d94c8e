package controller

import (
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"overseer/internal/common"
	"overseer/internal/deprovision"

	"github.com/gorilla/mux"
)

type HttpApplicationOpts struct {
	// DatabaseConnection provides a connection to a MySQL compatible database
	DatabaseConnection *sql.DB

	// LivenessChecks are sequentially executed when the liveness probe endpoint is hit
	LivenessChecks []func() error

	// ReadinessChecks are sequentially executed when the readiness probe endpoint is hit
	ReadinessChecks []func() error

	// ServiceAccountSecret gates construction of the privileged client
	// used by destructive operations; deployments without it can serve
	// reads but never delete anything
	ServiceAccountSecret string

	// ServiceLogs is a centralised channel where logs get sent to
	ServiceLogs chan<- common.ServiceLog

	// SessionSigningToken is the session signing token to use, change this to invalidate
	// all sessions with immediate effect
	SessionSigningToken string
}

func (o HttpApplicationOpts) Validate() error {
	errs := []error{}
	if o.DatabaseConnection == nil {
		errs = append(errs, fmt.Errorf("failed to receive a database connection: %w", ErrorMissingDatabaseConnection))
	}
	if o.ServiceLogs == nil {
		errs = append(errs, fmt.Errorf("failed to receive a service log: %w", ErrorMissingServiceLog))
	}
	if o.SessionSigningToken == "" {
		errs = append(errs, fmt.Errorf("failed to receive a session signing token: %w", ErrorMissingSessionSigningToken))
	}
	if len(errs) > 0 {
		return errors.Join(errs...)
	}
	return nil
}

// GetHttpApplication assembles the operator API.
func GetHttpApplication(opts HttpApplicationOpts) (http.Handler, error) {
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("failed to initialise http application: %w", err)
	}

	serviceLogs = &opts.ServiceLogs
	dbInstance = opts.DatabaseConnection
	sessionSigningToken = opts.SessionSigningToken
	serviceAccountSecret = opts.ServiceAccountSecret
	if serviceAccountSecret == "" {
		*serviceLogs <- common.ServiceLogf(common.LogLevelWarn, "service account secret is not set, deprovisioning is disabled")
	}

	deprovisionService = &deprovision.Service{
		NewCallerClient: deprovision.NewCallerClient(deprovision.NewCallerClientOpts{
			Db:          dbInstance,
			CachePrefix: sessionCachePrefix,
			Secret:      sessionSigningToken,
		}),
		NewPrivilegedClient: deprovision.NewPrivilegedClient(deprovision.NewPrivilegedClientOpts{
			Db:            dbInstance,
			CachePrefix:   sessionCachePrefix,
			ServiceSecret: serviceAccountSecret,
		}),
		ServiceLogs: opts.ServiceLogs,
	}

	handler := mux.NewRouter()
	handler.NotFoundHandler = common.GetNotFoundHandler()
	common.RegisterCommonHttpEndpoints(common.CommonHttpEndpointsOpts{
		Router:          handler,
		ServiceLogs:     opts.ServiceLogs,
		LivenessChecks:  opts.LivenessChecks,
		ReadinessChecks: opts.ReadinessChecks,
	})

	api := handler.PathPrefix("/api").Subrouter()
	apiOpts := RouteRegistrationOpts{
		Router:      api,
		ServiceLogs: opts.ServiceLogs,
	}

	registerDeprovisionRoutes(apiOpts)
	registerErrorLogRoutes(apiOpts)
	registerFeatureFlagRoutes(apiOpts)
	registerOrgRoutes(apiOpts)
	registerSessionRoutes(apiOpts)
	registerTicketRoutes(apiOpts)
	registerUserRoutes(apiOpts)

	if err := handler.Walk(func(route *mux.Route, router *mux.Router, ancestors []*mux.Route) error {
		pathTemplate, err := route.GetPathTemplate()
		if err != nil {
			return nil
		}
		methods, err := route.GetMethods()
		if err != nil {
			methods = []string{"*"}
		}
		opts.ServiceLogs <- common.ServiceLogf(common.LogLevelDebug, "registered route[%s] with methods[%s]", pathTemplate, strings.Join(methods, "|"))
		return nil
	}); err != nil {
		return nil, err
	}

	return handler, nil
}
