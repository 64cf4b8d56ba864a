package handler // handler package contains admin room management handlers

import (
	"net/http" // http defines status code constants

	"github.com/labstack/echo/v4" // echo framework supplies request context

	"github.com/iliyamo/hostel-hub/internal/engine" // engine exposes the data-layer protocols
)

// AdminHandler bundles the engine for administrator endpoints: room and
// resident management, attendance marking, complaint resolution, notices,
// audit views and analytics.
type AdminHandler struct {
	Engine *engine.Engine // Engine is the single path to read or mutate state
}

// NewAdminHandler constructs a new AdminHandler and panics if the engine is nil.
func NewAdminHandler(e *engine.Engine) *AdminHandler {
	if e == nil {
		panic("nil engine passed to NewAdminHandler")
	}
	return &AdminHandler{Engine: e}
}

// ListRooms handles GET /v1/rooms and returns the room inventory together
// with its per-room occupancy.
func (h *AdminHandler) ListRooms(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": h.Engine.RoomUsage()})
}

// CreateRoom handles POST /v1/rooms.  The capacity field is parsed and
// validated before it reaches the engine: a request that does not carry a
// positive integer never touches the capacity invariant.
func (h *AdminHandler) CreateRoom(c echo.Context) error {
	var body struct {
		Number   string `json:"number" validate:"required"`   // required unique room number
		Category string `json:"category"`                     // optional room category
		Capacity int    `json:"capacity" validate:"required,min=1"` // beds, must be >= 1
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "number and a capacity of at least 1 are required"})
	}
	room, err := h.Engine.CreateRoom(body.Number, body.Category, body.Capacity)
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(http.StatusCreated, room)
}

// DeleteRoom handles DELETE /v1/rooms/:id.  Residents assigned to the room
// are unassigned, never deleted.  Deleting an unknown room is a no-op 204.
func (h *AdminHandler) DeleteRoom(c echo.Context) error {
	id, err := pathID(c)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid id"})
	}
	if err := h.Engine.DeleteRoom(id); err != nil {
		return engineError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
