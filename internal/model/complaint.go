package model

import "time"

// Complaint status values.  The lifecycle is one-way: a complaint starts as
// Pending and can move to Resolved exactly once.
const (
	ComplaintPending  = "Pending"
	ComplaintResolved = "Resolved"
)

// Complaint is an issue filed by a resident.  StudentName is a deliberate
// denormalized snapshot of the filer's name at filing time so that the
// complaint history survives deletion of the resident.
//
// Fields:
//  ID          – engine-generated identifier.
//  StudentID   – resident who filed the complaint.
//  StudentName – filer's name, frozen at filing time.
//  Title       – short summary of the issue.
//  Message     – detailed description.
//  Status      – ComplaintPending or ComplaintResolved.
//  FiledAt     – when the complaint was filed.
//  ResolvedAt  – when it was resolved (nil while pending).
type Complaint struct {
	ID          uint64     `json:"id"`           // complaints.id
	StudentID   uint64     `json:"student_id"`   // complaints.student_id
	StudentName string     `json:"student_name"` // complaints.student_name (snapshot)
	Title       string     `json:"title"`        // complaints.title
	Message     string     `json:"message"`      // complaints.message
	Status      string     `json:"status"`       // complaints.status
	FiledAt     time.Time  `json:"filed_at"`     // complaints.filed_at
	ResolvedAt  *time.Time `json:"resolved_at"`  // complaints.resolved_at (nullable)
}

// Key returns the record identifier used by the collection store.
func (c Complaint) Key() uint64 { return c.ID }
