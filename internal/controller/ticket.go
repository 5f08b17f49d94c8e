package controller

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"overseer/internal/audit"
	"overseer/internal/common"
	"overseer/internal/controller/models"
	"overseer/internal/validate"

	"github.com/gorilla/mux"
)

func registerTicketRoutes(opts RouteRegistrationOpts) {
	requiresSuperAdmin := getSuperAdminRouteAuther(opts.ServiceLogs)

	v1 := opts.Router.PathPrefix("/v1/tickets").Subrouter()

	v1.Handle("", requiresSuperAdmin(http.HandlerFunc(handleListTicketsV1))).Methods(http.MethodGet)
	v1.Handle("/{ticketId}", requiresSuperAdmin(http.HandlerFunc(handleGetTicketV1))).Methods(http.MethodGet)
	v1.Handle("/{ticketId}", requiresSuperAdmin(http.HandlerFunc(handleUpdateTicketV1))).Methods(http.MethodPut)
	v1.Handle("/{ticketId}/comments", requiresSuperAdmin(http.HandlerFunc(handleCreateTicketCommentV1))).Methods(http.MethodPost)
}

func handleListTicketsV1(w http.ResponseWriter, r *http.Request) {
	identityInstance := r.Context().Value(userAuthRequestContext).(userIdentity)
	listOpts := models.ListTicketsV1Opts{
		Db: dbInstance,
	}
	if orgId := r.URL.Query().Get("orgId"); orgId != "" {
		if err := validate.Uuid(orgId); err != nil {
			common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to receive a valid org id", err)
			return
		}
		listOpts.OrgId = &orgId
	}
	if status := r.URL.Query().Get("status"); status != "" {
		if !models.IsValidTicketStatus(status) {
			common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to receive a valid ticket status", ErrorGeneric)
			return
		}
		listOpts.Status = &status
	}
	tickets, err := models.ListTicketsV1(listOpts)
	if err != nil {
		common.SendHttpFailResponse(w, r, http.StatusInternalServerError, "failed to list tickets", err)
		return
	}
	audit.Log(audit.LogEntry{
		EntityId:     identityInstance.UserId,
		EntityType:   audit.OperatorEntity,
		Verb:         audit.List,
		ResourceType: audit.TicketResource,
		Status:       audit.Success,
	})
	common.SendHttpSuccessResponse(w, r, http.StatusOK, "ok", tickets)
}

type handleGetTicketV1Output struct {
	Ticket   models.Ticket          `json:"ticket"`
	Comments []models.TicketComment `json:"comments"`
}

func handleGetTicketV1(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	ticketId := vars["ticketId"]
	if err := validate.Uuid(ticketId); err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to receive a valid ticket id", err)
		return
	}
	ticket, err := models.GetTicketV1(models.GetTicketV1Opts{
		Db: dbInstance,
		Id: ticketId,
	})
	if err != nil {
		if errors.Is(err, models.ErrorNotFound) {
			common.SendHttpFailResponse(w, r, http.StatusNotFound, "failed to find ticket", err)
			return
		}
		common.SendHttpFailResponse(w, r, http.StatusInternalServerError, "failed to get ticket", err)
		return
	}
	comments, err := models.ListTicketCommentsV1(models.ListTicketCommentsV1Opts{
		Db:       dbInstance,
		TicketId: ticketId,
	})
	if err != nil {
		common.SendHttpFailResponse(w, r, http.StatusInternalServerError, "failed to list ticket comments", err)
		return
	}
	common.SendHttpSuccessResponse(w, r, http.StatusOK, "ok", handleGetTicketV1Output{
		Ticket:   *ticket,
		Comments: comments,
	})
}

type handleUpdateTicketV1Input struct {
	Status string `json:"status"`
}

func handleUpdateTicketV1(w http.ResponseWriter, r *http.Request) {
	identityInstance := r.Context().Value(userAuthRequestContext).(userIdentity)
	vars := mux.Vars(r)
	ticketId := vars["ticketId"]
	if err := validate.Uuid(ticketId); err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to receive a valid ticket id", err)
		return
	}
	requestBody, err := io.ReadAll(r.Body)
	if err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to read request body", nil)
		return
	}
	var input handleUpdateTicketV1Input
	if err := json.Unmarshal(requestBody, &input); err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to parse request body", nil)
		return
	}
	ticket := models.Ticket{Id: &ticketId}
	if err := ticket.UpdateStatusV1(models.UpdateTicketStatusV1Opts{
		DatabaseConnection: models.DatabaseConnection{Db: dbInstance},
		Status:             input.Status,
	}); err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to update ticket", err)
		return
	}
	audit.Log(audit.LogEntry{
		EntityId:     identityInstance.UserId,
		EntityType:   audit.OperatorEntity,
		Verb:         audit.Update,
		ResourceType: audit.TicketResource,
		ResourceId:   ticketId,
		Status:       audit.Success,
		Data: map[string]any{
			"status": input.Status,
		},
	})
	common.SendHttpSuccessResponse(w, r, http.StatusOK, "ok")
}

type handleCreateTicketCommentV1Input struct {
	Body string `json:"body"`
}

type handleCreateTicketCommentV1Output struct {
	CommentId string `json:"commentId"`
}

func handleCreateTicketCommentV1(w http.ResponseWriter, r *http.Request) {
	identityInstance := r.Context().Value(userAuthRequestContext).(userIdentity)
	vars := mux.Vars(r)
	ticketId := vars["ticketId"]
	if err := validate.Uuid(ticketId); err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to receive a valid ticket id", err)
		return
	}
	requestBody, err := io.ReadAll(r.Body)
	if err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to read request body", nil)
		return
	}
	var input handleCreateTicketCommentV1Input
	if err := json.Unmarshal(requestBody, &input); err != nil {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to parse request body", nil)
		return
	}
	if input.Body == "" {
		common.SendHttpFailResponse(w, r, http.StatusBadRequest, "failed to receive a comment body", nil)
		return
	}
	commentId, err := models.CreateTicketCommentV1(models.CreateTicketCommentV1Opts{
		Db:           dbInstance,
		TicketId:     ticketId,
		AuthorUserId: &identityInstance.UserId,
		Body:         input.Body,
	})
	if err != nil {
		common.SendHttpFailResponse(w, r, http.StatusInternalServerError, "failed to create comment", err)
		return
	}
	audit.Log(audit.LogEntry{
		EntityId:     identityInstance.UserId,
		EntityType:   audit.OperatorEntity,
		Verb:         audit.Create,
		ResourceType: audit.TicketCommentResource,
		ResourceId:   commentId,
		Status:       audit.Success,
	})
	common.SendHttpSuccessResponse(w, r, http.StatusOK, "ok", handleCreateTicketCommentV1Output{
		CommentId: commentId,
	})
}
