package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"teamtrack/internal/application/ticket/dto"
	"teamtrack/internal/application/ticket/usecases"
	"teamtrack/internal/shared/logger"
	"teamtrack/internal/shared/utils"
)

// TicketHandler handles HTTP requests for tickets and their comments.
type TicketHandler struct {
	createUC       *usecases.CreateTicketUseCase
	getUC          *usecases.GetTicketUseCase
	listUC         *usecases.ListTicketsUseCase
	updateUC       *usecases.UpdateTicketUseCase
	updateStatusUC *usecases.UpdateStatusUseCase
	deleteUC       *usecases.DeleteTicketUseCase
	assignUC       *usecases.AssignTicketUseCase
	unassignUC     *usecases.UnassignTicketUseCase
	addCommentUC   *usecases.AddCommentUseCase
	listCommentsUC *usecases.ListCommentsUseCase
	logger         logger.Interface
}

func NewTicketHandler(
	createUC *usecases.CreateTicketUseCase,
	getUC *usecases.GetTicketUseCase,
	listUC *usecases.ListTicketsUseCase,
	updateUC *usecases.UpdateTicketUseCase,
	updateStatusUC *usecases.UpdateStatusUseCase,
	deleteUC *usecases.DeleteTicketUseCase,
	assignUC *usecases.AssignTicketUseCase,
	unassignUC *usecases.UnassignTicketUseCase,
	addCommentUC *usecases.AddCommentUseCase,
	listCommentsUC *usecases.ListCommentsUseCase,
	log logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createUC:       createUC,
		getUC:          getUC,
		listUC:         listUC,
		updateUC:       updateUC,
		updateStatusUC: updateStatusUC,
		deleteUC:       deleteUC,
		assignUC:       assignUC,
		unassignUC:     unassignUC,
		addCommentUC:   addCommentUC,
		listCommentsUC: listCommentsUC,
		logger:         log,
	}
}

// CreateTicket handles POST /tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req dto.CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	resp, err := h.createUC.Execute(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, resp, "ticket created successfully")
}

// GetTicket handles GET /tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp, err := h.getUC.Execute(c.Request.Context(), currentUserID(c), currentRole(c), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

// ListTickets handles GET /tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	projectID, err := parseOptionalUintQuery(c, "project_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	assigneeID, err := parseOptionalUintQuery(c, "assignee_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	creatorID, err := parseOptionalUintQuery(c, "creator_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	pagination := utils.ParsePagination(c)
	req := dto.ListTicketsRequest{
		ProjectID:  projectID,
		Status:     c.Query("status"),
		Priority:   c.Query("priority"),
		Type:       c.Query("type"),
		AssigneeID: assigneeID,
		CreatorID:  creatorID,
		ActiveOnly: c.Query("active_only") == "true",
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
		SortBy:     c.Query("sort_by"),
		SortOrder:  c.Query("sort_order"),
	}

	tickets, total, err := h.listUC.Execute(c.Request.Context(), currentUserID(c), currentRole(c), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, tickets, total, pagination.Page, pagination.PageSize)
}

// ListProjectTickets handles GET /projects/:id/tickets
func (h *TicketHandler) ListProjectTickets(c *gin.Context) {
	projectID, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	pagination := utils.ParsePagination(c)
	req := dto.ListTicketsRequest{
		ProjectID:  &projectID,
		Status:     c.Query("status"),
		Priority:   c.Query("priority"),
		Type:       c.Query("type"),
		ActiveOnly: c.Query("active_only") == "true",
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
		SortBy:     c.Query("sort_by"),
		SortOrder:  c.Query("sort_order"),
	}

	tickets, total, err := h.listUC.Execute(c.Request.Context(), currentUserID(c), currentRole(c), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, tickets, total, pagination.Page, pagination.PageSize)
}

// UpdateTicket handles PUT /tickets/:id
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	resp, err := h.updateUC.Execute(c.Request.Context(), currentUserID(c), currentRole(c), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ticket updated successfully", resp)
}

// UpdateStatus handles PUT /tickets/:id/status
func (h *TicketHandler) UpdateStatus(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	resp, err := h.updateStatusUC.Execute(c.Request.Context(), currentUserID(c), currentRole(c), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ticket status updated successfully", resp)
}

// DeleteTicket handles DELETE /tickets/:id
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	if err := h.deleteUC.Execute(c.Request.Context(), currentUserID(c), id); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

// AssignTicket handles POST /tickets/:id/assign/:user_id
func (h *TicketHandler) AssignTicket(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	userID, err := parseIDParam(c, "user_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp, err := h.assignUC.Execute(c.Request.Context(), currentUserID(c), id, dto.AssignTicketRequest{UserID: userID})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ticket assigned successfully", resp)
}

// UnassignTicket handles DELETE /tickets/:id/assign/:user_id
func (h *TicketHandler) UnassignTicket(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp, err := h.unassignUC.Execute(c.Request.Context(), currentUserID(c), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "ticket unassigned successfully", resp)
}

// AddComment handles POST /tickets/:id/comments
func (h *TicketHandler) AddComment(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.AddCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	resp, err := h.addCommentUC.Execute(c.Request.Context(), currentUserID(c), currentRole(c), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, resp, "comment added successfully")
}

// ListComments handles GET /tickets/:id/comments
func (h *TicketHandler) ListComments(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	comments, err := h.listCommentsUC.Execute(c.Request.Context(), currentUserID(c), currentRole(c), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", comments)
}
