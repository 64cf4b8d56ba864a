package handler // handler package contains audit log handlers

import (
	"net/http" // http defines status code constants

	"github.com/labstack/echo/v4" // echo framework supplies request context
)

// ListAuditLog handles GET /v1/audit and returns the full audit trail in
// append order.
func (h *AdminHandler) ListAuditLog(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": h.Engine.AuditLog()})
}

// ClearAuditLog handles DELETE /v1/audit.  Bulk clearing is the only
// permitted removal of audit entries.
func (h *AdminHandler) ClearAuditLog(c echo.Context) error {
	h.Engine.ClearAuditLog()
	return c.NoContent(http.StatusNoContent)
}
