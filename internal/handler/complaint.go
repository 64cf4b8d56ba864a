package handler // handler package contains complaint handlers

import (
	"net/http" // http defines status code constants

	"github.com/labstack/echo/v4" // echo framework supplies request context
)

// ListComplaints handles GET /v1/complaints and returns every complaint,
// pending and resolved, in filing order.
func (h *AdminHandler) ListComplaints(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": h.Engine.Complaints()})
}

// ResolveComplaint handles POST /v1/complaints/:id/resolve.  The
// transition is one-way; resolving an unknown or already-resolved
// complaint changes nothing and still returns 204.
func (h *AdminHandler) ResolveComplaint(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Engine.ResolveComplaint(id); err != nil {
		return engineError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
