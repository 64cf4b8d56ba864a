package handler // handler package contains bulletin board handlers

import (
	"net/http" // http defines status code constants

	"github.com/labstack/echo/v4" // echo framework supplies request context
)

// ListNotices handles GET /v1/notices for both roles.
func (h *AdminHandler) ListNotices(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": h.Engine.Notices()})
}

// PostNotice handles POST /v1/notices.
func (h *AdminHandler) PostNotice(c echo.Context) error {
	var body struct {
		Text string `json:"text" validate:"required"` // announcement body
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "text is required"})
	}
	notice, err := h.Engine.PostNotice(body.Text)
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(http.StatusCreated, notice)
}

// DeleteNotice handles DELETE /v1/notices/:id.
func (h *AdminHandler) DeleteNotice(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Engine.DeleteNotice(id); err != nil {
		return engineError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
