package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"teamtrack/internal/application/user/dto"
	"teamtrack/internal/application/user/usecases"
	"teamtrack/internal/shared/logger"
	"teamtrack/internal/shared/utils"
)

// UserHandler handles HTTP requests for user management.
type UserHandler struct {
	createUC        *usecases.CreateUserUseCase
	getUC           *usecases.GetUserUseCase
	listUC          *usecases.ListUsersUseCase
	updateUC        *usecases.UpdateUserUseCase
	deleteUC        *usecases.DeleteUserUseCase
	changeRoleUC    *usecases.ChangeRoleUseCase
	updateProfileUC *usecases.UpdateProfileUseCase
	listRolesUC     *usecases.ListRolesUseCase
	logger          logger.Interface
}

func NewUserHandler(
	createUC *usecases.CreateUserUseCase,
	getUC *usecases.GetUserUseCase,
	listUC *usecases.ListUsersUseCase,
	updateUC *usecases.UpdateUserUseCase,
	deleteUC *usecases.DeleteUserUseCase,
	changeRoleUC *usecases.ChangeRoleUseCase,
	updateProfileUC *usecases.UpdateProfileUseCase,
	listRolesUC *usecases.ListRolesUseCase,
	log logger.Interface,
) *UserHandler {
	return &UserHandler{
		createUC:        createUC,
		getUC:           getUC,
		listUC:          listUC,
		updateUC:        updateUC,
		deleteUC:        deleteUC,
		changeRoleUC:    changeRoleUC,
		updateProfileUC: updateProfileUC,
		listRolesUC:     listRolesUC,
		logger:          log,
	}
}

// CreateUser handles POST /users
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req dto.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	resp, err := h.createUC.Execute(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, resp, "user created successfully")
}

// GetUser handles GET /users/:id
func (h *UserHandler) GetUser(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	resp, err := h.getUC.Execute(c.Request.Context(), id)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

// GetProfile handles GET /users/profile
func (h *UserHandler) GetProfile(c *gin.Context) {
	resp, err := h.getUC.Execute(c.Request.Context(), currentUserID(c))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

// UpdateProfile handles PUT /users/profile
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	resp, err := h.updateProfileUC.Execute(c.Request.Context(), currentUserID(c), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "profile updated successfully", resp)
}

// ListUsers handles GET /users
func (h *UserHandler) ListUsers(c *gin.Context) {
	roleID, err := parseOptionalUintQuery(c, "role_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	pagination := utils.ParsePagination(c)
	req := dto.ListUsersRequest{
		RoleID:     roleID,
		ActiveOnly: c.Query("active_only") == "true",
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
	}

	users, total, err := h.listUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, users, total, pagination.Page, pagination.PageSize)
}

// UpdateUser handles PUT /users/:id
func (h *UserHandler) UpdateUser(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	resp, err := h.updateUC.Execute(c.Request.Context(), currentUserID(c), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "user updated successfully", resp)
}

// DeleteUser handles DELETE /users/:id
func (h *UserHandler) DeleteUser(c *gin.Context) {
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

// ChangeRole handles PUT /users/:id/role
func (h *UserHandler) ChangeRole(c *gin.Context) {
	id, err := parseIDParam(c, "id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req dto.ChangeRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	resp, err := h.changeRoleUC.Execute(c.Request.Context(), currentUserID(c), id, req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "role changed successfully", resp)
}

// ListRoles handles GET /roles
func (h *UserHandler) ListRoles(c *gin.Context) {
	roles, err := h.listRolesUC.Execute(c.Request.Context())
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", roles)
}
