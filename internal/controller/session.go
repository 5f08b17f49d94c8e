package controller

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"overseer/internal/audit"
	"overseer/internal/common"
	"overseer/internal/controller/models"
)

func registerSessionRoutes(opts RouteRegistrationOpts) {
	v1 := opts.Router.PathPrefix("/v1/session").Subrouter()

	v1.HandleFunc("", handleCreateSessionV1).Methods(http.MethodPost)
	v1.HandleFunc("", handleGetSessionV1).Methods(http.MethodGet)
	v1.HandleFunc("", handleDeleteSessionV1).Methods(http.MethodDelete)
}

type handleCreateSessionV1Input struct {
	// Email is the operator's email address
	Email string `json:"email"`

	// Password is the operator's password
	Password string `json:"password"`

	// Totp is the operator's current authenticator code, required
	// when the account has a seeded totp secret
	Totp string `json:"totp"`
}

func handleCreateSessionV1(w http.ResponseWriter, r *http.Request) {
	log := r.Context().Value(common.HttpContextLogger).(common.HttpRequestLogger)
	requestBody, err := io.ReadAll(r.Body)
	if err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to read request body", nil)
		return
	}
	var input handleCreateSessionV1Input
	if err := json.Unmarshal(requestBody, &input); err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to parse request body", nil)
		return
	}
	if input.Email == "" {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to receive a valid email", nil)
		return
	}

	sessionToken, err := models.CreateSessionV1(models.CreateSessionV1Opts{
		Db:          dbInstance,
		CachePrefix: sessionCachePrefix,
		Secret:      sessionSigningToken,

		Email:    input.Email,
		Password: input.Password,
		Totp:     input.Totp,

		IpAddress: r.RemoteAddr,
		UserAgent: r.UserAgent(),
		Source:    "api",
		ExpiresIn: 12 * time.Hour,
	})
	if err != nil {
		switch {
		case errors.Is(err, models.ErrorMfaTokenRequired):
			common.SendHttpFailResponse(w, r, http.StatusUnauthorized, "failed to receive a totp code for an mfa-enrolled account", ErrorMfaTokenRequired)
		case errors.Is(err, models.ErrorCredentialsAuthenticationFailed),
			errors.Is(err, models.ErrorMfaAuthenticationFailed),
			errors.Is(err, models.ErrorNotFound):
			common.SendHttpFailResponse(w, r, http.StatusUnauthorized, "failed to create session", ErrorAuthRequired)
		default:
			common.SendHttpFailResponse(w, r, http.StatusInternalServerError, "failed to create session", err)
		}
		return
	}
	log(common.LogLevelDebug, "successfully issued session token")
	srcIp := r.RemoteAddr
	srcUa := r.UserAgent()
	audit.Log(audit.LogEntry{
		EntityId:     input.Email,
		EntityType:   audit.OperatorEntity,
		Verb:         audit.Login,
		ResourceType: audit.SessionResource,
		ResourceId:   sessionToken.SessionId,
		Status:       audit.Success,
		SrcIp:        &srcIp,
		SrcUa:        &srcUa,
	})

	common.SendHttpSuccessResponse(w, r, http.StatusOK, "ok", sessionToken)
}

func handleGetSessionV1(w http.ResponseWriter, r *http.Request) {
	log := r.Context().Value(common.HttpContextLogger).(common.HttpRequestLogger)
	authorizationHeader := r.Header.Get("Authorization")
	if strings.Index(authorizationHeader, "Bearer ") != 0 {
		common.SendHttpFailResponse(w, r, http.StatusUnauthorized, "failed to receive a valid authorization header", ErrorAuthRequired)
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
		common.SendHttpFailResponse(w, r, http.StatusUnauthorized, "failed to retrieve session details", ErrorAuthRequired)
		return
	}
	log(common.LogLevelDebug, fmt.Sprintf("session[%s] is valid and has %s time left", sessionInfo.Id, sessionInfo.TimeLeft))

	common.SendHttpSuccessResponse(w, r, http.StatusOK, "ok", sessionInfo)
}

type handleDeleteSessionV1Output struct {
	SessionId    string `json:"sessionId"`
	IsSuccessful bool   `json:"isSuccessful"`
}

func handleDeleteSessionV1(w http.ResponseWriter, r *http.Request) {
	log := r.Context().Value(common.HttpContextLogger).(common.HttpRequestLogger)
	authorizationHeader := r.Header.Get("Authorization")
	if strings.Index(authorizationHeader, "Bearer ") != 0 {
		common.SendHttpFailResponse(w, r, http.StatusUnauthorized, "failed to receive a valid authorization header", ErrorAuthRequired)
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
		common.SendHttpFailResponse(w, r, http.StatusUnauthorized, "failed to retrieve session details", ErrorAuthRequired)
		return
	}
	if err := models.DeleteSessionV1(models.DeleteSessionV1Opts{
		BearerToken: authorizationToken,
		CachePrefix: sessionCachePrefix,
		Secret:      sessionSigningToken,
	}); err != nil {
		common.SendHttpFailResponse(w, r, http.StatusInternalServerError, "failed to delete session", err)
		return
	}
	log(common.LogLevelDebug, fmt.Sprintf("session[%s] was revoked", sessionInfo.Id))
	audit.Log(audit.LogEntry{
		EntityId:     sessionInfo.UserId,
		EntityType:   audit.OperatorEntity,
		Verb:         audit.Logout,
		ResourceType: audit.SessionResource,
		ResourceId:   sessionInfo.Id,
		Status:       audit.Success,
	})

	common.SendHttpSuccessResponse(w, r, http.StatusOK, "ok", handleDeleteSessionV1Output{
		SessionId:    sessionInfo.Id,
		IsSuccessful: true,
	})
}
