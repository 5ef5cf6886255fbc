package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"teamtrack/internal/application/project/dto"
	"teamtrack/internal/application/project/usecases"
	"teamtrack/internal/shared/logger"
	"teamtrack/internal/shared/utils"
)

// ProjectHandler handles HTTP requests for project management.
type ProjectHandler struct {
	createUC       *usecases.CreateProjectUseCase
	getUC          *usecases.GetProjectUseCase
	listUC         *usecases.ListProjectsUseCase
	updateUC       *usecases.UpdateProjectUseCase
	deleteUC       *usecases.DeleteProjectUseCase
	changeStatusUC *usecases.ChangeProjectStatusUseCase
	assignMemberUC *usecases.AssignMemberUseCase
	removeMemberUC *usecases.RemoveMemberUseCase
	logger         logger.Interface
}

func NewProjectHandler(
	createUC *usecases.CreateProjectUseCase,
	getUC *usecases.GetProjectUseCase,
	listUC *usecases.ListProjectsUseCase,
	updateUC *usecases.UpdateProjectUseCase,
	deleteUC *usecases.DeleteProjectUseCase,
	changeStatusUC *usecases.ChangeProjectStatusUseCase,
	assignMemberUC *usecases.AssignMemberUseCase,
	removeMemberUC *usecases.RemoveMemberUseCase,
	log logger.Interface,
) *ProjectHandler {
	return &ProjectHandler{
		createUC:       createUC,
		getUC:          getUC,
		listUC:         listUC,
		updateUC:       updateUC,
		deleteUC:       deleteUC,
		changeStatusUC: changeStatusUC,
		assignMemberUC: assignMemberUC,
		removeMemberUC: removeMemberUC,
		logger:         log,
	}
}

// CreateProject handles POST /projects
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req dto.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	resp, err := h.createUC.Execute(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, resp, "project created successfully")
}

// GetProject handles GET /projects/:id
func (h *ProjectHandler) GetProject(c *gin.Context) {
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

// ListProjects handles GET /projects
func (h *ProjectHandler) ListProjects(c *gin.Context) {
	managerID, err := parseOptionalUintQuery(c, "manager_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	pagination := utils.ParsePagination(c)
	req := dto.ListProjectsRequest{
		Status:     c.Query("status"),
		ManagerID:  managerID,
		ActiveOnly: c.Query("active_only") == "true",
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
	}

	projects, total, err := h.listUC.Execute(c.Request.Context(), currentUserID(c), currentRole(c), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, projects, total, pagination.Page, pagination.PageSize)
}

// UpdateProject handles PUT /projects/:id
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	resp, err := h.updateUC.Execute(c.Request.Context(), currentUserID(c), currentRole(c), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "project updated successfully", resp)
}

// DeleteProject handles DELETE /projects/:id
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
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

// ChangeStatus handles PUT /projects/:id/status
func (h *ProjectHandler) ChangeStatus(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.ChangeProjectStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	resp, err := h.changeStatusUC.Execute(c.Request.Context(), currentUserID(c), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "project status changed successfully", resp)
}

// AssignMember handles POST /projects/:id/assign/:user_id
func (h *ProjectHandler) AssignMember(c *gin.Context) {
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

	req := dto.AssignMemberRequest{UserID: userID}
	if err := h.assignMemberUC.Execute(c.Request.Context(), currentUserID(c), currentRole(c), id, req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "member assigned successfully", nil)
}

// RemoveMember handles DELETE /projects/:id/assign/:user_id
func (h *ProjectHandler) RemoveMember(c *gin.Context) {
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

	if err := h.removeMemberUC.Execute(c.Request.Context(), currentUserID(c), currentRole(c), id, userID); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}
