package handlers

import (
	"net/http"
	"time"

	"product-catalog/internal/api/interfaces"
	"product-catalog/internal/api/models"
	"product-catalog/internal/database"
	"product-catalog/internal/database/repositories"

	"github.com/gin-gonic/gin"
)

// createAuditLog records a mutation in the audit trail and the log. A
// failed insert is logged but does not fail the request.
func createAuditLog(c *gin.Context, services interfaces.Services, action, username, resource, details string) {
	services.GetLogger().AuditLogger(action, username, resource, details)

	entry := &database.AuditLog{
		Action:    action,
		Username:  username,
		Resource:  resource,
		Details:   details,
		IPAddress: c.ClientIP(),
	}
	if err := services.AuditLogRepository().InsertAuditLog(c.Request.Context(), entry); err != nil {
		services.GetLogger().Error("Failed to create audit log: %v", err)
	}
}

// GetAuditLogs lists audit entries, newest first
func GetAuditLogs(services interfaces.Services) gin.HandlerFunc {
	return func(c *gin.Context) {
		var query models.AuditQuery
		if err := c.ShouldBindQuery(&query); err != nil {
			respondError(c, bindingError(err))
			return
		}

		filter := repositories.AuditFilter{
			Action:   query.Action,
			Username: query.Username,
			Limit:    query.Limit,
			Offset:   query.Offset,
		}
		if query.Since > 0 {
			since := time.Unix(query.Since, 0)
			filter.Since = &since
		}

		logs, err := services.AuditLogRepository().ListAuditLogs(c.Request.Context(), filter)
		if err != nil {
			respondInternal(c, services.GetLogger(), "list_audit_logs", err)
			return
		}

		respondSuccess(c, http.StatusOK, "", logs)
	}
}
