package handler // handler package contains attendance handlers

import (
	"net/http" // http defines status code constants
	"time"     // time supplies today's date as the default

	"github.com/labstack/echo/v4" // echo framework supplies request context
)

// attendanceRow is one line of the daily log: a resident, their room and
// whether they are marked present on the selected date.
type attendanceRow struct {
	StudentID uint64 `json:"student_id"`
	Name      string `json:"name"`
	Room      string `json:"room"` // room number, empty when unassigned
	Present   bool   `json:"present"`
}

// selectedDate returns the ?date= query parameter or today's ISO day.
func selectedDate(c echo.Context) string {
	if d := c.QueryParam("date"); d != "" {
		return d
	}
	return time.Now().UTC().Format("2006-01-02")
}

// DailyAttendance handles GET /v1/attendance and returns the presence of
// every resident on the selected date.
func (h *AdminHandler) DailyAttendance(c echo.Context) error {
	date := selectedDate(c)
	students := h.Engine.Students()
	rows := make([]attendanceRow, 0, len(students))
	for _, s := range students {
		row := attendanceRow{StudentID: s.ID, Name: s.Name, Present: h.Engine.Present(s.ID, date)}
		if s.RoomID != nil {
			if room, ok := h.Engine.Room(*s.RoomID); ok {
				row.Room = room.Number
			}
		}
		rows = append(rows, row)
	}
	return c.JSON(http.StatusOK, echo.Map{"date": date, "items": rows})
}

// ToggleAttendance handles POST /v1/attendance and marks a resident
// present or absent on a date.  The call is idempotent: repeating it with
// the same arguments changes nothing.
func (h *AdminHandler) ToggleAttendance(c echo.Context) error {
	var body struct {
		StudentID uint64 `json:"student_id" validate:"required"` // resident to mark
		Date      string `json:"date" validate:"required"`       // ISO calendar day
		Present   *bool  `json:"present" validate:"required"`    // pointer so false is still "provided"
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "student_id, date and present are required"})
	}
	if err := h.Engine.ToggleAttendance(body.StudentID, body.Date, *body.Present); err != nil {
		return engineError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
