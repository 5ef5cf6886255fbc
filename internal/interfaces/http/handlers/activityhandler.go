package handlers

import (
	"github.com/gin-gonic/gin"

	"teamtrack/internal/application/activity"
	"teamtrack/internal/shared/logger"
	"teamtrack/internal/shared/utils"
)

// ActivityHandler exposes the audit trail. Read-only.
type ActivityHandler struct {
	listUC *activity.ListActivityUseCase
	logger logger.Interface
}

func NewActivityHandler(listUC *activity.ListActivityUseCase, log logger.Interface) *ActivityHandler {
	return &ActivityHandler{
		listUC: listUC,
		logger: log,
	}
}

// ListActivity handles GET /activity
func (h *ActivityHandler) ListActivity(c *gin.Context) {
	userID, err := parseOptionalUintQuery(c, "user_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	entityID, err := parseOptionalUintQuery(c, "entity_id")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var entityType *string
	if raw := c.Query("entity_type"); raw != "" {
		entityType = &raw
	}

	pagination := utils.ParsePagination(c)
	req := activity.ListRequest{
		UserID:     userID,
		EntityType: entityType,
		EntityID:   entityID,
		Page:       pagination.Page,
		PageSize:   pagination.PageSize,
	}

	logs, total, err := h.listUC.Execute(c.Request.Context(), req)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, logs, total, pagination.Page, pagination.PageSize)
}
