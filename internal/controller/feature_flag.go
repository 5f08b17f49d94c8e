package controller

import (
	"encoding/json"
	"io"
	"net/http"

	"overseer/internal/audit"
	"overseer/internal/common"
	"overseer/internal/controller/models"
	"overseer/internal/validate"

	"github.com/gorilla/mux"
)

func registerFeatureFlagRoutes(opts RouteRegistrationOpts) {
	requiresSuperAdmin := getSuperAdminRouteAuther(opts.ServiceLogs)

	v1 := opts.Router.PathPrefix("/v1/orgs/{orgId}/flags").Subrouter()

	v1.Handle("", requiresSuperAdmin(http.HandlerFunc(handleListFeatureFlagsV1))).Methods(http.MethodGet)
	v1.Handle("/{flagKey}", requiresSuperAdmin(http.HandlerFunc(handleSetFeatureFlagV1))).Methods(http.MethodPut)
}

func handleListFeatureFlagsV1(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	orgId := vars["orgId"]
	if err := validate.Uuid(orgId); err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to receive a valid org id", err)
		return
	}
	flags, err := models.ListFeatureFlagsV1(models.ListFeatureFlagsV1Opts{
		Db:    dbInstance,
		OrgId: orgId,
	})
	if err != nil {
		common.SendHttpFailResponse(w, r, http.StatusInternalServerError, "failed to list feature flags", err)
		return
	}
	common.SendHttpSuccessResponse(w, r, http.StatusOK, "ok", flags)
}

type handleSetFeatureFlagV1Input struct {
	Enabled bool `json:"enabled"`
}

func handleSetFeatureFlagV1(w http.ResponseWriter, r *http.Request) {
	identityInstance := r.Context().Value(userAuthRequestContext).(userIdentity)
	vars := mux.Vars(r)
	orgId := vars["orgId"]
	flagKey := vars["flagKey"]
	if err := validate.Uuid(orgId); err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to receive a valid org id", err)
		return
	}
	if err := validate.FlagKey(flagKey); err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to receive a valid flag key", err)
		return
	}
	requestBody, err := io.ReadAll(r.Body)
	if err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to read request body", nil)
		return
	}
	var input handleSetFeatureFlagV1Input
	if err := json.Unmarshal(requestBody, &input); err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to parse request body", nil)
		return
	}
	if err := models.SetFeatureFlagV1(models.SetFeatureFlagV1Opts{
		Db:      dbInstance,
		OrgId:   orgId,
		FlagKey: flagKey,
		Enabled: input.Enabled,
	}); err != nil {
		common.SendHttpFailResponse(w, r, http.StatusInternalServerError, "failed to set feature flag", err)
		return
	}
	audit.Log(audit.LogEntry{
		EntityId:     identityInstance.UserId,
		EntityType:   audit.OperatorEntity,
		Verb:         audit.Update,
		ResourceType: audit.FeatureFlagResource,
		ResourceId:   flagKey,
		Status:       audit.Success,
		Data: map[string]any{
			"orgId":   orgId,
			"enabled": input.Enabled,
		},
	})
	common.SendHttpSuccessResponse(w, r, http.StatusOK, "ok", models.FeatureFlag{
		OrgId:   orgId,
		FlagKey: flagKey,
		Enabled: input.Enabled,
	})
}
