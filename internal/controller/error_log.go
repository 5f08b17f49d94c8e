package controller

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"overseer/internal/audit"
	"overseer/internal/common"
	"overseer/internal/controller/models"
	"overseer/internal/validate"
)

func registerErrorLogRoutes(opts RouteRegistrationOpts) {
	requiresAuth := getRouteAuther(opts.ServiceLogs)
	requiresSuperAdmin := getSuperAdminRouteAuther(opts.ServiceLogs)

	v1 := opts.Router.PathPrefix("/v1/error-logs").Subrouter()

	v1.Handle("", requiresSuperAdmin(http.HandlerFunc(handleListErrorLogsV1))).Methods(http.MethodGet)
	v1.Handle("", requiresAuth(http.HandlerFunc(handleCreateErrorLogV1))).Methods(http.MethodPost)
}

func handleListErrorLogsV1(w http.ResponseWriter, r *http.Request) {
	identityInstance := r.Context().Value(userAuthRequestContext).(userIdentity)
	listOpts := models.ListErrorLogsV1Opts{
		Db: dbInstance,
	}
	if orgId := r.URL.Query().Get("orgId"); orgId != "" {
		if err := validate.Uuid(orgId); err != nil {
			common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to receive a valid org id", err)
			return
		}
		listOpts.OrgId = &orgId
	}
	if level := r.URL.Query().Get("level"); level != "" {
		listOpts.Level = &level
	}
	if since := r.URL.Query().Get("since"); since != "" {
		sinceTime, err := time.Parse(time.RFC3339, since)
		if err != nil {
			common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to parse 'since' as RFC3339", err)
			return
		}
		listOpts.Since = &sinceTime
	}
	logs, err := models.ListErrorLogsV1(listOpts)
	if err != nil {
		common.SendHttpFailResponse(w, r, http.StatusInternalServerError, "failed to list error logs", err)
		return
	}
	audit.Log(audit.LogEntry{
		EntityId:     identityInstance.UserId,
		EntityType:   audit.OperatorEntity,
		Verb:         audit.List,
		ResourceType: audit.ErrorLogResource,
		Status:       audit.Success,
	})
	common.SendHttpSuccessResponse(w, r, http.StatusOK, "ok", logs)
}

type handleCreateErrorLogV1Input struct {
	// OrgId attributes the report to an organization when set
	OrgId *string `json:"orgId"`

	// Level defaults to 'error' when left empty
	Level string `json:"level"`

	// Source identifies the reporting component
	Source string `json:"source"`

	// Message is the error text
	Message string `json:"message"`
}

type handleCreateErrorLogV1Output struct {
	Id string `json:"id"`
}

// handleCreateErrorLogV1 is the ingest endpoint that application
// components report their errors to; any authenticated caller can
// report, inspection stays restricted to super admins.
func handleCreateErrorLogV1(w http.ResponseWriter, r *http.Request) {
	requestBody, err := io.ReadAll(r.Body)
	if err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to read request body", nil)
		return
	}
	var input handleCreateErrorLogV1Input
	if err := json.Unmarshal(requestBody, &input); err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to parse request body", nil)
		return
	}
	if input.Source == "" || input.Message == "" {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to receive a source and a message", models.ErrorInvalidInput)
		return
	}
	if input.OrgId != nil {
		if err := validate.Uuid(*input.OrgId); err != nil {
			common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to receive a valid org id", err)
			return
		}
	}
	logId, err := models.CreateErrorLogV1(models.CreateErrorLogV1Opts{
		Db:      dbInstance,
		OrgId:   input.OrgId,
		Level:   input.Level,
		Source:  input.Source,
		Message: input.Message,
	})
	if err != nil {
		common.SendHttpFailResponse(w, r, http.StatusInternalServerError, "failed to create error log", err)
		return
	}
	common.SendHttpSuccessResponse(w, r, http.StatusOK, "ok", handleCreateErrorLogV1Output{Id: logId})
}
