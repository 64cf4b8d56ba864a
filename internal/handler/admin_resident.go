package handler // handler package contains admin resident management handlers

import (
	"net/http" // http defines status code constants

	"github.com/labstack/echo/v4" // echo framework supplies request context
)

// ListStudents handles GET /v1/students.  The optional ?q= parameter is a
// free-text search matched case-insensitively against name and email.
func (h *AdminHandler) ListStudents(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": h.Engine.SearchStudents(c.QueryParam("q"))})
}

// RegisterStudent handles POST /v1/students and registers a resident with
// no room assigned.
func (h *AdminHandler) RegisterStudent(c echo.Context) error {
	var body struct {
		Name  string `json:"name" validate:"required"`        // required full name
		Email string `json:"email" validate:"required,email"` // required unique email
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "name and a valid email are required"})
	}
	student, err := h.Engine.RegisterStudent(body.Name, body.Email)
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(http.StatusCreated, student)
}

// DeleteStudent handles DELETE /v1/students/:id.  The client is expected
// to have confirmed the removal with the operator; once this endpoint is
// hit the cascade over attendance records runs unconditionally.
func (h *AdminHandler) DeleteStudent(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Engine.DeleteStudent(id); err != nil {
		return engineError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

// AllocateStudent handles PUT /v1/students/:id/allocation.  A null room_id
// unassigns the resident; a non-null one must reference an existing room
// with a free bed.  A full room yields 409 and leaves the resident's
// current allocation untouched.
func (h *AdminHandler) AllocateStudent(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	var body struct {
		RoomID *uint64 `json:"room_id"` // target room; null to unassign
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := h.Engine.Allocate(id, body.RoomID); err != nil {
		return engineError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
