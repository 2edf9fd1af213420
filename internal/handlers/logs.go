package handlers

import (
	"net/http"

	"HEALTHAPI_BACK-END/internal/authz"
	"HEALTHAPI_BACK-END/internal/dto"
	"HEALTHAPI_BACK-END/internal/models"
	"HEALTHAPI_BACK-END/internal/store"
	"HEALTHAPI_BACK-END/internal/utils"
)

// auditLogLimit caps the /logs listing at the last 100 entries
const auditLogLimit = 100

// LogsHandler serves the audit trail
type LogsHandler struct {
	audit store.AuditStore
}

// NewLogsHandler creates a new LogsHandler instance
func NewLogsHandler(audit store.AuditStore) *LogsHandler {
	return &LogsHandler{audit: audit}
}

// List returns the most recent audit entries
// @Summary List audit logs
// @Description List the last 100 audit entries, newest first. Public by default; admin-only when AUDIT_LOGS_PUBLIC=false.
// @Tags audit
// @Produce json
// @Success 200 {object} dto.AuditLogsResponse
// @Router /logs [get]
func (h *LogsHandler) List(w http.ResponseWriter, r *http.Request) {
	logs, err := h.audit.ListRecent(r.Context(), auditLogLimit)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	utils.WriteJSONResponse(w, http.StatusOK, dto.NewAuditLogsResponse(logs))
}

// ListRestricted is the admin-only variant used when the public-logs flag
// is off; it expects AuthMiddleware in front of it
func (h *LogsHandler) ListRestricted(w http.ResponseWriter, r *http.Request) {
	user, ok := caller(w, r)
	if !ok {
		return
	}
	if err := authz.RequireRole(user, "only admins can read audit logs", models.RoleAdmin); err != nil {
		writeServiceError(w, err)
		return
	}
	h.List(w, r)
}
