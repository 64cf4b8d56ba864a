package handler // handler package contains dashboard analytics handlers

import (
	"net/http" // http defines status code constants

	"github.com/labstack/echo/v4" // echo framework supplies request context
)

// GetStats handles GET /v1/analytics/stats and returns the dashboard
// aggregates for the selected date (?date=, defaulting to today).
func (h *AdminHandler) GetStats(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Engine.Stats(selectedDate(c)))
}

// GetRoomUsage handles GET /v1/analytics/rooms and returns per-room
// occupancy in storage order.
func (h *AdminHandler) GetRoomUsage(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{"items": h.Engine.RoomUsage()})
}
