package handler // handler package contains resident self-service handlers

import (
	"net/http" // http defines status code constants

	"github.com/labstack/echo/v4" // echo framework supplies request context

	"github.com/iliyamo/hostel-hub/internal/engine" // engine exposes the data-layer protocols
	"github.com/iliyamo/hostel-hub/internal/model"  // model defines the entities returned to residents
)

// ResidentHandler bundles the engine for the resident-facing endpoints.
// Every route is scoped to the resident identified by the token's
// student_id claim; a resident can never read or write another
// resident's records.
type ResidentHandler struct {
	Engine *engine.Engine // Engine is the single path to read or mutate state
}

// NewResidentHandler constructs a new ResidentHandler and panics if the engine is nil.
func NewResidentHandler(e *engine.Engine) *ResidentHandler {
	if e == nil {
		panic("nil engine passed to NewResidentHandler")
	}
	return &ResidentHandler{Engine: e}
}

// caller resolves the authenticated resident from the student_id claim.
func (h *ResidentHandler) caller(c echo.Context) (model.Student, bool) {
	id, err := claimUint(c, "student_id")
	if err != nil {
		return model.Student{}, false
	}
	return h.Engine.Student(id)
}

// Dashboard handles GET /v1/my/dashboard and returns everything the
// resident home screen needs in one round trip: the resident's own
// record, their room, roommates, today's presence and the notice board.
func (h *ResidentHandler) Dashboard(c echo.Context) error {
	student, ok := h.caller(c)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "resident record not found"})
	}
	var room *model.Room
	if student.RoomID != nil {
		if r, ok := h.Engine.Room(*student.RoomID); ok {
			room = &r
		}
	}
	return c.JSON(http.StatusOK, echo.Map{
		"student":       student,
		"room":          room, // null when unassigned
		"roommates":     h.Engine.Roommates(student.ID),
		"present_today": h.Engine.Present(student.ID, selectedDate(c)),
		"notices":       h.Engine.Notices(),
	})
}

// MyAttendance handles GET /v1/my/attendance and returns the resident's
// full attendance history in marking order.
func (h *ResidentHandler) MyAttendance(c echo.Context) error {
	student, ok := h.caller(c)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "resident record not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": h.Engine.AttendanceOf(student.ID)})
}

// MyComplaints handles GET /v1/my/complaints and returns only the
// complaints the resident filed themselves.
func (h *ResidentHandler) MyComplaints(c echo.Context) error {
	student, ok := h.caller(c)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "resident record not found"})
	}
	return c.JSON(http.StatusOK, echo.Map{"items": h.Engine.ComplaintsOf(student.ID)})
}

// FileComplaint handles POST /v1/my/complaints.  The complaint is stamped
// with the caller's id and name; the body supplies only title and message.
func (h *ResidentHandler) FileComplaint(c echo.Context) error {
	student, ok := h.caller(c)
	if !ok {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "resident record not found"})
	}
	var body struct {
		Title   string `json:"title" validate:"required"`   // short summary line
		Message string `json:"message" validate:"required"` // full description
	}
	if err := c.Bind(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid request body"})
	}
	if err := c.Validate(&body); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "title and message are required"})
	}
	complaint, err := h.Engine.FileComplaint(student.ID, student.Name, body.Title, body.Message)
	if err != nil {
		return engineError(c, err)
	}
	return c.JSON(http.StatusCreated, complaint)
}
