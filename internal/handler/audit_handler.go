package handler

import (
	"net/http"
	"strconv"

	"github.com/SanjogGautam/Smart-Swastha/internal/models"
	"github.com/SanjogGautam/Smart-Swastha/internal/service"
	"github.com/SanjogGautam/Smart-Swastha/pkg/utils"

	"github.com/gin-gonic/gin"
)

const defaultAuditLimit = 100

type AuditHandler struct {
	auditService *service.AuditService
}

func NewAuditHandler(auditService *service.AuditService) *AuditHandler {
	return &AuditHandler{
		auditService: auditService,
	}
}

// GetAuditLogs retrieves recent audit entries, optionally filtered by action
func (h *AuditHandler) GetAuditLogs(c *gin.Context) {
	limit := defaultAuditLimit
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			utils.ErrorResponse(c, http.StatusBadRequest, "Invalid limit")
			return
		}
		limit = parsed
	}

	action := c.Query("action")

	var err error
	var entries []models.AuditLog
	if action != "" {
		entries, err = h.auditService.ByAction(action, limit)
	} else {
		entries, err = h.auditService.Recent(limit)
	}
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch audit logs")
		return
	}

	utils.SuccessResponse(c, entries)
}
