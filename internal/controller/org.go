package controller

import (
	"errors"
	"net/http"

	"overseer/internal/audit"
	"overseer/internal/common"
	"overseer/internal/controller/models"
	"overseer/internal/validate"

	"github.com/gorilla/mux"
)

func registerOrgRoutes(opts RouteRegistrationOpts) {
	requiresSuperAdmin := getSuperAdminRouteAuther(opts.ServiceLogs)

	v1 := opts.Router.PathPrefix("/v1/orgs").Subrouter()

	v1.Handle("", requiresSuperAdmin(http.HandlerFunc(handleListOrgsV1))).Methods(http.MethodGet)
	v1.Handle("/{orgId}", requiresSuperAdmin(http.HandlerFunc(handleGetOrgV1))).Methods(http.MethodGet)
}

func handleListOrgsV1(w http.ResponseWriter, r *http.Request) {
	identityInstance := r.Context().Value(userAuthRequestContext).(userIdentity)
	orgs, err := models.ListOrgsV1(models.ListOrgsV1Opts{
		Db: dbInstance,
	})
	if err != nil {
		common.SendHttpFailResponse(w, r, http.StatusInternalServerError, "failed to list orgs", err)
		return
	}
	audit.Log(audit.LogEntry{
		EntityId:     identityInstance.UserId,
		EntityType:   audit.OperatorEntity,
		Verb:         audit.List,
		ResourceType: audit.OrgResource,
		Status:       audit.Success,
	})
	common.SendHttpSuccessResponse(w, r, http.StatusOK, "ok", orgs)
}

func handleGetOrgV1(w http.ResponseWriter, r *http.Request) {
	identityInstance := r.Context().Value(userAuthRequestContext).(userIdentity)
	vars := mux.Vars(r)
	orgId := vars["orgId"]
	if err := validate.Uuid(orgId); err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to receive a valid org id", err)
		return
	}
	org, err := models.GetOrgV1(models.GetOrgV1Opts{
		Db: dbInstance,
		Id: &orgId,
	})
	if err != nil {
		if errors.Is(err, models.ErrorNotFound) {
			common.SendHttpFailResponse(w, r, http.StatusNotFound, "failed to find org", err)
			return
		}
		common.SendHttpFailResponse(w, r, http.StatusInternalServerError, "failed to get org", err)
		return
	}
	audit.Log(audit.LogEntry{
		EntityId:     identityInstance.UserId,
		EntityType:   audit.OperatorEntity,
		Verb:         audit.Get,
		ResourceType: audit.OrgResource,
		ResourceId:   org.GetId(),
		Status:       audit.Success,
	})
	common.SendHttpSuccessResponse(w, r, http.StatusOK, "ok", org)
}
