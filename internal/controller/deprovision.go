package controller

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"overseer/internal/audit"
	"overseer/internal/common"
	"overseer/internal/deprovision"
	"overseer/internal/integrations/slack"
	"overseer/internal/queue"
)

func registerDeprovisionRoutes(opts RouteRegistrationOpts) {
	v1 := opts.Router.PathPrefix("/v1/org/deprovision").Subrouter()

	// auth is handled inside the workflow itself rather than by the
	// route auther: this endpoint keeps its own response contract and
	// returns 400 for every failure kind
	v1.HandleFunc("", handleDeprovisionOrgV1).Methods(http.MethodPost)
	v1.HandleFunc("", handleDeprovisionOrgPreflight).Methods(http.MethodOptions)
}

type handleDeprovisionOrgV1Input struct {
	OrganizationId string `json:"organizationId"`
}

type deprovisionSuccessResponse struct {
	Message string `json:"message"`
}

type deprovisionFailureResponse struct {
	Error   string `json:"error"`
	Details string `json:"details"`
}

func setDeprovisionCorsHeaders(w http.ResponseWriter) {
	w.Header().Set("Access-Control-Allow-Origin", "*")
	w.Header().Set("Access-Control-Allow-Headers", "authorization, content-type")
	w.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS")
}

func handleDeprovisionOrgPreflight(w http.ResponseWriter, r *http.Request) {
	setDeprovisionCorsHeaders(w)
	w.WriteHeader(http.StatusOK)
}

func sendDeprovisionFailure(w http.ResponseWriter, kind string, details error) {
	setDeprovisionCorsHeaders(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusBadRequest)
	response := deprovisionFailureResponse{Error: kind}
	if details != nil {
		response.Details = details.Error()
	}
	res, _ := json.Marshal(response)
	w.Write(res)
}

func deprovisionErrorKind(err error) string {
	switch {
	case errors.Is(err, deprovision.ErrorUnauthorized):
		return "Unauthorized"
	case errors.Is(err, deprovision.ErrorInvalidRequest):
		return "InvalidRequest"
	case errors.Is(err, deprovision.ErrorMisconfiguration):
		return "Misconfiguration"
	case errors.Is(err, deprovision.ErrorNotFound):
		return "NotFound"
	case errors.Is(err, deprovision.ErrorDeletionFailed):
		return "DeletionFailed"
	}
	return "DeletionFailed"
}

func handleDeprovisionOrgV1(w http.ResponseWriter, r *http.Request) {
	log := r.Context().Value(common.HttpContextLogger).(common.HttpRequestLogger)

	callerToken := ""
	authorizationHeader := r.Header.Get("Authorization")
	if strings.Index(authorizationHeader, "Bearer ") == 0 {
		callerToken = strings.TrimPrefix(authorizationHeader, "Bearer ")
	}

	// a body that fails to parse leaves the organisation id empty and
	// the workflow reports it as InvalidRequest, but only after the
	// caller's credentials have been checked
	var input handleDeprovisionOrgV1Input
	if requestBody, err := io.ReadAll(r.Body); err == nil {
		if err := json.Unmarshal(requestBody, &input); err != nil {
			log(common.LogLevelDebug, "failed to parse request body")
		}
	}

	result, err := deprovisionService.Deprovision(r.Context(), callerToken, input.OrganizationId)
	if err != nil {
		kind := deprovisionErrorKind(err)
		log(common.LogLevelWarn, "deprovisioning failed with kind["+kind+"]: "+err.Error())
		sendDeprovisionFailure(w, kind, err)
		return
	}

	accountsRemoved := 0
	for _, outcome := range result.Accounts {
		if outcome.Error == "" {
			accountsRemoved++
		}
	}
	removedBy := resolveCallerForReporting(r, callerToken)
	audit.Log(audit.LogEntry{
		EntityId:     removedBy,
		EntityType:   audit.OperatorEntity,
		Verb:         audit.Deprovision,
		ResourceType: audit.OrgResource,
		ResourceId:   result.OrganizationId,
		Status:       audit.Success,
		Data: map[string]any{
			"accountsRemoved": accountsRemoved,
			"accountOutcomes": result.Accounts,
		},
	})
	if err := queue.PublishOrgDeprovisioned(queue.OrgDeprovisionedEvent{
		OrganizationId:  result.OrganizationId,
		AccountsRemoved: accountsRemoved,
		RemovedBy:       removedBy,
		Timestamp:       time.Now(),
	}); err != nil {
		log(common.LogLevelWarn, "failed to publish lifecycle event: "+err.Error())
	}
	if slack.IsEnabled() {
		slack.NotifyOrgDeprovisioned(slack.OrgDeprovisionedNotification{
			OrganizationId:  result.OrganizationId,
			AccountsRemoved: accountsRemoved,
			RemovedBy:       removedBy,
			Timestamp:       time.Now(),
		})
	}

	setDeprovisionCorsHeaders(w)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	res, _ := json.Marshal(deprovisionSuccessResponse{Message: result.Message})
	w.Write(res)
}

// resolveCallerForReporting re-resolves the caller purely for the
// audit trail; failures leave the attribution blank instead of
// failing a deprovisioning that already completed.
func resolveCallerForReporting(r *http.Request, callerToken string) string {
	identity, err := deprovisionService.NewCallerClient(callerToken).ResolveCaller(r.Context())
	if err != nil || identity == nil {
		return ""
	}
	return identity.Email
}
