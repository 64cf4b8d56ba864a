package engine

import (
	"strings"

	"github.com/iliyamo/hostel-hub/internal/model"
)

// Read-side enumeration of the collections.  Everything here takes the
// shared lock and returns copies, so callers can hold results across
// subsequent mutations.

// Rooms returns every room in insertion order.
func (e *Engine) Rooms() []model.Room {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.db.Rooms.All()
}

// Room returns one room by id.
func (e *Engine) Room(id uint64) (model.Room, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.db.Rooms.Get(id)
}

// Students returns every resident in insertion order.
func (e *Engine) Students() []model.Student {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.db.Students.All()
}

// Student returns one resident by id.
func (e *Engine) Student(id uint64) (model.Student, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.db.Students.Get(id)
}

// SearchStudents returns residents whose name or email contains the query,
// case-insensitively.  An empty query matches everyone.
func (e *Engine) SearchStudents(query string) []model.Student {
	q := strings.ToLower(strings.TrimSpace(query))
	e.mu.RLock()
	defer e.mu.RUnlock()
	if q == "" {
		return e.db.Students.All()
	}
	out := e.db.Students.Find(func(s model.Student) bool {
		return strings.Contains(strings.ToLower(s.Name), q) || strings.Contains(strings.ToLower(s.Email), q)
	})
	if out == nil {
		out = []model.Student{}
	}
	return out
}

// Roommates returns the other residents assigned to the same room as the
// given resident.  A resident with no room has no roommates.
func (e *Engine) Roommates(studentID uint64) []model.Student {
	e.mu.RLock()
	defer e.mu.RUnlock()
	me, ok := e.db.Students.Get(studentID)
	if !ok || me.RoomID == nil {
		return nil
	}
	return e.db.Students.Find(func(s model.Student) bool {
		return s.ID != me.ID && s.RoomID != nil && *s.RoomID == *me.RoomID
	})
}

// AttendanceOn returns the attendance records for one calendar day.
func (e *Engine) AttendanceOn(date string) []model.AttendanceRecord {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.db.Attendance.Find(func(a model.AttendanceRecord) bool { return a.Date == date })
}

// Present reports whether a resident has an attendance record on a date.
func (e *Engine) Present(studentID uint64, date string) bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	_, found := e.db.Attendance.FindOne(func(a model.AttendanceRecord) bool {
		return a.StudentID == studentID && a.Date == date
	})
	return found
}

// AttendanceOf returns every attendance record for one resident.
func (e *Engine) AttendanceOf(studentID uint64) []model.AttendanceRecord {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.db.Attendance.Find(func(a model.AttendanceRecord) bool { return a.StudentID == studentID })
}

// Complaints returns every complaint in insertion order.
func (e *Engine) Complaints() []model.Complaint {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.db.Complaints.All()
}

// ComplaintsOf returns the complaints filed by one resident.
func (e *Engine) ComplaintsOf(studentID uint64) []model.Complaint {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.db.Complaints.Find(func(c model.Complaint) bool { return c.StudentID == studentID })
}

// Notices returns every notice in insertion order.
func (e *Engine) Notices() []model.Notice {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.db.Notices.All()
}

// AuditLog returns every audit entry in append order.
func (e *Engine) AuditLog() []model.AuditLogEntry {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.db.Logs.All()
}
