package engine

import (
	"math"

	"github.com/iliyamo/hostel-hub/internal/model"
)

// Stats is the dashboard aggregate derived from current engine state.
//
// Fields:
//  OccupancyPercent  – rounded share of beds with a resident assigned.
//  AttendancePercent – rounded share of residents present on the date.
//  TotalStudents     – number of registered residents.
//  FreeBeds          – total beds minus occupied beds.
type Stats struct {
	OccupancyPercent  int `json:"occupancy_percent"`
	AttendancePercent int `json:"attendance_percent"`
	TotalStudents     int `json:"total_students"`
	FreeBeds          int `json:"free_beds"`
}

// RoomUsage pairs a room with its current occupancy.
//
// Fields:
//  Room      – the room record.
//  Occupancy – residents currently assigned to the room.
//  Percent   – rounded occupancy as a share of capacity.
type RoomUsage struct {
	Room      model.Room `json:"room"`
	Occupancy int        `json:"occupancy"`
	Percent   int        `json:"percent"`
}

// Stats recomputes the dashboard aggregates for the given date.  The
// collections are small, so recomputation per call is cheaper than keeping
// caches in sync.  Zero denominators yield zero, never a division error.
func (e *Engine) Stats(date string) Stats {
	e.mu.RLock()
	defer e.mu.RUnlock()

	totalBeds := 0
	for _, r := range e.db.Rooms.All() {
		totalBeds += r.Capacity
	}
	occupiedBeds := len(e.db.Students.Find(func(s model.Student) bool { return s.RoomID != nil }))
	present := len(e.db.Attendance.Find(func(a model.AttendanceRecord) bool { return a.Date == date }))
	totalStudents := e.db.Students.Count()

	return Stats{
		OccupancyPercent:  percent(occupiedBeds, totalBeds),
		AttendancePercent: percent(present, totalStudents),
		TotalStudents:     totalStudents,
		FreeBeds:          totalBeds - occupiedBeds,
	}
}

// RoomUsage returns per-room occupancy in the order rooms are stored.
func (e *Engine) RoomUsage() []RoomUsage {
	e.mu.RLock()
	defer e.mu.RUnlock()

	rooms := e.db.Rooms.All()
	out := make([]RoomUsage, 0, len(rooms))
	for _, r := range rooms {
		occ := len(e.db.Students.Find(func(s model.Student) bool {
			return s.RoomID != nil && *s.RoomID == r.ID
		}))
		out = append(out, RoomUsage{Room: r, Occupancy: occ, Percent: percent(occ, r.Capacity)})
	}
	return out
}

// percent returns round(100*part/total), or 0 when total is zero.
func percent(part, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
