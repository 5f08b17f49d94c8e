package controller

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"overseer/internal/common"
	"overseer/internal/controller/models"
)

const userAuthRequestContext common.HttpContextKey = "controller-auth"

type userIdentity struct {
	// SourceIp is the IP address that the request came from
	SourceIp string `json:"sourceIp"`

	// UserAgent is the user agent of the request
	UserAgent string `json:"userAgent"`

	// UserId is the ID of the current caller
	UserId string `json:"userId"`

	// Email is the email of the current caller
	Email string `json:"email"`

	// Role is the caller's profile role, resolved per-request so that
	// demotions apply immediately
	Role string `json:"role"`
}

func getRouteAuther(serviceLogs chan<- common.ServiceLog) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			log := r.Context().Value(common.HttpContextLogger).(common.HttpRequestLogger)
			serviceLogs <- common.ServiceLogf(common.LogLevelTrace, "auth middleware is executing")
			authorizationHeader := r.Header.Get("Authorization")
			if strings.Index(authorizationHeader, "Bearer ") != 0 {
				common.SendHttpFailResponse(w, r, http.StatusUnauthorized, "failed to receive an authorization header", ErrorAuthRequired)
				return
			}
			authorizationToken := strings.TrimPrefix(authorizationHeader, "Bearer ")
			sessionInfo, err := models.GetSessionV1(models.GetSessionV1Opts{
				Db:          dbInstance,
				BearerToken: authorizationToken,
				CachePrefix: sessionCachePrefix,
				Secret:      sessionSigningToken,
			})
			if err != nil {
				common.SendHttpFailResponse(w, r, http.StatusUnauthorized, "failed to retrieve session", ErrorAuthRequired)
				return
			}
			log(common.LogLevelInfo, fmt.Sprintf("processing request from user[%s]", sessionInfo.UserId))
			identityInstance := userIdentity{
				SourceIp:  r.RemoteAddr,
				UserAgent: r.UserAgent(),
				UserId:    sessionInfo.UserId,
				Email:     sessionInfo.Email,
				Role:      sessionInfo.Role,
			}
			authContext := context.WithValue(r.Context(), userAuthRequestContext, identityInstance)
			next.ServeHTTP(w, r.WithContext(authContext))
		})
	}
}

// getSuperAdminRouteAuther wraps getRouteAuther and additionally
// requires the caller's resolved role to be super_admin.
func getSuperAdminRouteAuther(serviceLogs chan<- common.ServiceLog) func(http.Handler) http.Handler {
	requiresAuth := getRouteAuther(serviceLogs)
	return func(next http.Handler) http.Handler {
		return requiresAuth(requireSuperAdminRole(serviceLogs, next))
	}
}

// requireSuperAdminRole gates on the identity resolved by the route
// auther; requests that never passed through it are rejected too.
func requireSuperAdminRole(serviceLogs chan<- common.ServiceLog, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		identityInstance, ok := r.Context().Value(userAuthRequestContext).(userIdentity)
		if !ok {
			common.SendHttpFailResponse(w, r, http.StatusUnauthorized, "failed to resolve caller identity", ErrorAuthRequired)
			return
		}
		if identityInstance.Role != models.RoleSuperAdmin {
			serviceLogs <- common.ServiceLogf(common.LogLevelWarn, "user[%s] with role[%s] attempted a restricted operation", identityInstance.UserId, identityInstance.Role)
			common.SendHttpFailResponse(w, r, http.StatusForbidden, "failed to authorize caller", ErrorInsufficientPermissions)
			return
		}
		next.ServeHTTP(w, r)
	})
}
