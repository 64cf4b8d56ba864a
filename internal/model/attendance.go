package model

// AttendanceRecord marks a resident as present on one calendar day.  Absence
// has no row of its own: a resident is absent on a date exactly when no
// record exists for the (StudentID, Date) pair, and the engine keeps that
// pair unique.
//
// Fields:
//  ID        – engine-generated identifier.
//  StudentID – resident the record belongs to.
//  Date      – calendar day in ISO form (YYYY-MM-DD).
type AttendanceRecord struct {
	ID        uint64 `json:"id"`         // attendance.id
	StudentID uint64 `json:"student_id"` // attendance.student_id
	Date      string `json:"date"`       // attendance.date (ISO day)
}

// Key returns the record identifier used by the collection store.
func (a AttendanceRecord) Key() uint64 { return a.ID }
