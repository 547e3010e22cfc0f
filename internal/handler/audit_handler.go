package handler

import (
	"net/http"

	"cardsbackend/internal/service"
	"cardsbackend/pkg/response"

	"github.com/gin-gonic/gin"
)

type AuditHandler struct {
	auditService service.AuditService
}

func NewAuditHandler(auditService service.AuditService) *AuditHandler {
	return &AuditHandler{auditService: auditService}
}

func (h *AuditHandler) RegisterRoutes(router *gin.RouterGroup) {
	audit := router.Group("/audit")
	{
		audit.GET("/getAll", h.GetAllAuditLogs)
	}
}

// GetAllAuditLogs lists the save-workflow audit trail, newest first
// @Summary  List audit logs
// @Tags     audit
// @Produce  json
// @Success  200  {array}  service.AuditLogResponse
// @Router   /audit/getAll [get]
func (h *AuditHandler) GetAllAuditLogs(c *gin.Context) {
	logs, err := h.auditService.GetAuditLogs(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusNotImplemented, response.Fail(err.Error()))
		return
	}

	c.JSON(http.StatusOK, logs)
}
