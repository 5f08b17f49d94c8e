package controller

import (
	"net/http"

	"overseer/internal/common"
	"overseer/internal/controller/models"
	"overseer/internal/validate"
)

func registerUserRoutes(opts RouteRegistrationOpts) {
	requiresSuperAdmin := getSuperAdminRouteAuther(opts.ServiceLogs)

	v1 := opts.Router.PathPrefix("/v1/users").Subrouter()

	v1.Handle("", requiresSuperAdmin(http.HandlerFunc(handleListUsersV1))).Methods(http.MethodGet)
}

func handleListUsersV1(w http.ResponseWriter, r *http.Request) {
	listOpts := models.ListUsersV1Opts{
		Db: dbInstance,
	}
	if orgId := r.URL.Query().Get("orgId"); orgId != "" {
		if err := validate.Uuid(orgId); err != nil {
			common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to receive a valid org id", err)
			return
		}
		listOpts.OrgId = &orgId
	}
	users, err := models.ListUsersV1(listOpts)
	if err != nil {
		common.SendHttpFailResponse(w, r, http.StatusInternalServerError, "failed to list users", err)
		return
	}
	common.SendHttpSuccessResponse(w, r, http.StatusOK, "ok", users)
}
