package store

import (
	"encoding/json"

	"github.com/iliyamo/hostel-hub/internal/model"
)

// Database bundles the six entity collections that make up the hostel data
// set.  The engine owns all write access; everything else holds read-only
// references.  Uniqueness hints mirror the schema: room numbers and student
// emails may not repeat.
type Database struct {
	Rooms      *Collection[model.Room]
	Students   *Collection[model.Student]
	Attendance *Collection[model.AttendanceRecord]
	Complaints *Collection[model.Complaint]
	Notices    *Collection[model.Notice]
	Logs       *Collection[model.AuditLogEntry]
}

// NewDatabase creates an empty database with the fixed hostel schema.
func NewDatabase() *Database {
	return &Database{
		Rooms: NewCollection("rooms", Unique[model.Room]{
			Field: "number",
			Value: func(r model.Room) string { return r.Number },
		}),
		Students: NewCollection("students", Unique[model.Student]{
			Field: "email",
			Value: func(s model.Student) string { return s.Email },
		}),
		Attendance: NewCollection[model.AttendanceRecord]("attendance"),
		Complaints: NewCollection[model.Complaint]("complaints"),
		Notices:    NewCollection[model.Notice]("notices"),
		Logs:       NewCollection[model.AuditLogEntry]("logs"),
	}
}

// snapshot is the on-disk layout: one record array per entity.  The json
// field names are a stable contract; changing them breaks existing data
// files.
type snapshot struct {
	Rooms      []model.Room             `json:"rooms"`
	Students   []model.Student          `json:"students"`
	Attendance []model.AttendanceRecord `json:"attendance"`
	Complaints []model.Complaint        `json:"complaints"`
	Notices    []model.Notice           `json:"notices"`
	Logs       []model.AuditLogEntry    `json:"logs"`
}

// MarshalSnapshot serializes the current contents of every collection.
// The caller must hold whatever lock guards the database (the engine's
// read lock); the database itself is lock-free.
func (d *Database) MarshalSnapshot() ([]byte, error) {
	return json.MarshalIndent(snapshot{
		Rooms:      d.Rooms.All(),
		Students:   d.Students.All(),
		Attendance: d.Attendance.All(),
		Complaints: d.Complaints.All(),
		Notices:    d.Notices.All(),
		Logs:       d.Logs.All(),
	}, "", "  ")
}

// RestoreSnapshot replaces the contents of every collection with the
// records from a snapshot previously produced by MarshalSnapshot.
func (d *Database) RestoreSnapshot(data []byte) error {
	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return err
	}
	d.Rooms.replaceAll(snap.Rooms)
	d.Students.replaceAll(snap.Students)
	d.Attendance.replaceAll(snap.Attendance)
	d.Complaints.replaceAll(snap.Complaints)
	d.Notices.replaceAll(snap.Notices)
	d.Logs.replaceAll(snap.Logs)
	return nil
}
