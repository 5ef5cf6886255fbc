package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"teamtrack/internal/application/auth/dto"
	"teamtrack/internal/application/auth/usecases"
	"teamtrack/internal/shared/logger"
	"teamtrack/internal/shared/utils"
)

// AuthHandler handles login, password changes and password resets.
type AuthHandler struct {
	loginUC          *usecases.LoginUseCase
	changePasswordUC *usecases.ChangePasswordUseCase
	resetPasswordUC  *usecases.ResetPasswordUseCase
	logger           logger.Interface
}

func NewAuthHandler(
	loginUC *usecases.LoginUseCase,
	changePasswordUC *usecases.ChangePasswordUseCase,
	resetPasswordUC *usecases.ResetPasswordUseCase,
	log logger.Interface,
) *AuthHandler {
	return &AuthHandler{
		loginUC:          loginUC,
		changePasswordUC: changePasswordUC,
		resetPasswordUC:  resetPasswordUC,
		logger:           log,
	}
}

// Login handles POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	resp, err := h.loginUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", resp)
}

// ChangePassword handles POST /auth/change-password
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	if err := h.changePasswordUC.Execute(c.Request.Context(), currentUserID(c), req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "password changed successfully", nil)
}

// ResetPassword handles POST /auth/reset-password. The response is the
// same whether or not the email is known.
func (h *AuthHandler) ResetPassword(c *gin.Context) {
	var req dto.ResetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponseWithError(c, utils.BindingError(err))
		return
	}

	if err := h.resetPasswordUC.Execute(c.Request.Context(), req); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "if the email exists, reset instructions have been sent", nil)
}
