package engine

import (
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/hostel-hub/internal/model"
	"github.com/iliyamo/hostel-hub/internal/queue"
	"github.com/iliyamo/hostel-hub/internal/store"
)

// dateLayout is the ISO calendar-day form used for attendance dates.
const dateLayout = "2006-01-02"

// Engine owns all write access to the hostel collections and exposes the
// mutation protocols.  Reads take the shared lock; every mutation, including
// its cascade and audit append, runs as one exclusive critical section.
// Aside from the collections it owns, the engine is stateless: session and
// view concerns live with its callers.
type Engine struct {
	mu     sync.RWMutex
	db     *store.Database
	now    func() time.Time
	lastID uint64

	// publish, when set, receives a copy of every audit entry for
	// fan-out over the broker.  It must not block; failures are the
	// publisher's problem, never the mutation's.
	publish func(queue.AuditEvent)
}

// New wraps a database in an engine.  The database must not be mutated by
// anyone else afterwards.
func New(db *store.Database) *Engine {
	return &Engine{db: db, now: time.Now}
}

// SetPublisher installs a fire-and-forget audit event sink.  Pass nil to
// disable fan-out.
func (e *Engine) SetPublisher(fn func(queue.AuditEvent)) { e.publish = fn }

// nextID returns an engine-generated identifier: the current Unix
// millisecond, bumped when necessary so ids stay strictly increasing even
// for mutations landing in the same millisecond.  Must be called with the
// write lock held.
func (e *Engine) nextID() uint64 {
	id := uint64(e.now().UnixMilli())
	if id <= e.lastID {
		id = e.lastID + 1
	}
	e.lastID = id
	return id
}

// audit appends one entry to the audit log and hands a copy to the
// publisher.  Audit is best-effort observability: an append failure is
// logged and swallowed so it can never fail the primary mutation.  Must be
// called with the write lock held.
func (e *Engine) audit(action, collection string, details map[string]any) {
	entry := model.AuditLogEntry{
		ID:         e.nextID(),
		Timestamp:  e.now().UTC(),
		Action:     action,
		Collection: collection,
		Details:    details,
	}
	if _, err := e.db.Logs.Insert(entry); err != nil {
		log.Printf("engine: audit append failed: %v", err)
	}
	if e.publish != nil {
		ev := queue.AuditEvent{
			EventID:    uuid.NewString(),
			Timestamp:  entry.Timestamp.Format(time.RFC3339Nano),
			Action:     action,
			Collection: collection,
			Details:    details,
		}
		go e.publish(ev)
	}
}

// RegisterStudent inserts a new resident with no room assigned.  It fails
// with ErrDuplicateKey when the email is already registered and with
// ErrInvalidArgument when name or email is blank.
func (e *Engine) RegisterStudent(name, email string) (model.Student, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" {
		return model.Student{}, fmt.Errorf("name and email are required: %w", ErrInvalidArgument)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	s, err := e.db.Students.Insert(model.Student{ID: e.nextID(), Name: name, Email: email})
	if err != nil {
		return model.Student{}, err
	}
	e.audit("REGISTER", "students", map[string]any{"name": s.Name})
	return s, nil
}

// CreateRoom inserts a new room.  The capacity is validated at this
// boundary: anything below one bed is rejected with ErrInvalidArgument
// rather than allowed to corrupt the capacity invariant.  A duplicate room
// number fails with ErrDuplicateKey.
func (e *Engine) CreateRoom(number, category string, capacity int) (model.Room, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return model.Room{}, fmt.Errorf("room number is required: %w", ErrInvalidArgument)
	}
	if capacity < 1 {
		return model.Room{}, fmt.Errorf("capacity must be a positive integer: %w", ErrInvalidArgument)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	r, err := e.db.Rooms.Insert(model.Room{ID: e.nextID(), Number: number, Category: strings.TrimSpace(category), Capacity: capacity})
	if err != nil {
		return model.Room{}, err
	}
	e.audit("CREATE_ROOM", "rooms", map[string]any{"number": r.Number})
	return r, nil
}

// Allocate assigns a resident to a room, or unassigns them when roomID is
// nil.  An unknown resident is a silent no-op.  A non-nil roomID must name
// an existing room (ErrNotFound otherwise) with a free bed: when the room
// is already at capacity the allocation is rejected with
// ErrCapacityExceeded, unless the resident already lives in that exact room,
// in which case the call is an idempotent no-op success.
func (e *Engine) Allocate(studentID uint64, roomID *uint64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	student, ok := e.db.Students.Get(studentID)
	if !ok {
		return nil
	}

	if roomID != nil {
		room, ok := e.db.Rooms.Get(*roomID)
		if !ok {
			return fmt.Errorf("room %d: %w", *roomID, ErrNotFound)
		}
		occupied := len(e.db.Students.Find(func(s model.Student) bool {
			return s.RoomID != nil && *s.RoomID == room.ID
		}))
		alreadyThere := student.RoomID != nil && *student.RoomID == room.ID
		if occupied >= room.Capacity && !alreadyThere {
			return fmt.Errorf("room %s: %w", room.Number, ErrCapacityExceeded)
		}
	}

	prev := student.RoomID
	student.RoomID = roomID
	if err := e.db.Students.Update(student); err != nil {
		return err
	}
	details := map[string]any{"student": student.Name, "from": idOrNil(prev), "to": idOrNil(roomID)}
	e.audit("ALLOCATE", "students", details)
	return nil
}

// DeleteStudent removes a resident and cascades over their attendance
// records.  Complaints they filed are deliberately left untouched so the
// issue history survives.  An unknown id is a silent no-op.  Interactive
// confirmation is the caller's responsibility; once invoked the cascade is
// unconditional.
func (e *Engine) DeleteStudent(id uint64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	student, ok := e.db.Students.Get(id)
	if !ok {
		return nil
	}
	for _, rec := range e.db.Attendance.Find(func(a model.AttendanceRecord) bool { return a.StudentID == id }) {
		e.db.Attendance.Remove(rec.ID)
	}
	e.db.Students.Remove(id)
	e.audit("DELETE", "students", map[string]any{"name": student.Name})
	return nil
}

// DeleteRoom removes a room.  Residents assigned to it are not deleted:
// their room reference is a weak one, so the cascade only nulls it out.
// An unknown id is a silent no-op.
func (e *Engine) DeleteRoom(id uint64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	room, ok := e.db.Rooms.Get(id)
	if !ok {
		return nil
	}
	for _, s := range e.db.Students.Find(func(s model.Student) bool { return s.RoomID != nil && *s.RoomID == id }) {
		s.RoomID = nil
		if err := e.db.Students.Update(s); err != nil {
			return err
		}
	}
	e.db.Rooms.Remove(id)
	e.audit("DROP_ROOM", "rooms", map[string]any{"number": room.Number})
	return nil
}

// ToggleAttendance marks a resident present or absent on a date.  Presence
// is the existence of a record for the (resident, date) pair, so the call
// is idempotent: marking present twice keeps one record, marking absent
// when no record exists does nothing.  An unknown resident is a silent
// no-op.  The date must be an ISO calendar day.
func (e *Engine) ToggleAttendance(studentID uint64, date string, present bool) error {
	if _, err := time.Parse(dateLayout, date); err != nil {
		return fmt.Errorf("date %q is not a calendar day: %w", date, ErrInvalidArgument)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.db.Students.Get(studentID); !ok {
		return nil
	}
	existing, found := e.db.Attendance.FindOne(func(a model.AttendanceRecord) bool {
		return a.StudentID == studentID && a.Date == date
	})
	switch {
	case present && !found:
		if _, err := e.db.Attendance.Insert(model.AttendanceRecord{ID: e.nextID(), StudentID: studentID, Date: date}); err != nil {
			return err
		}
		e.audit("ATTENDANCE", "attendance", map[string]any{"id": studentID, "status": "Present", "date": date})
	case !present && found:
		e.db.Attendance.Remove(existing.ID)
		e.audit("ATTENDANCE", "attendance", map[string]any{"id": studentID, "status": "Absent", "date": date})
	}
	return nil
}

// FileComplaint records a new pending issue.  The filer's name is stored as
// a snapshot so the complaint keeps its meaning after the resident is gone.
func (e *Engine) FileComplaint(studentID uint64, studentName, title, message string) (model.Complaint, error) {
	title = strings.TrimSpace(title)
	if title == "" || strings.TrimSpace(message) == "" {
		return model.Complaint{}, fmt.Errorf("title and message are required: %w", ErrInvalidArgument)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	c, err := e.db.Complaints.Insert(model.Complaint{
		ID:          e.nextID(),
		StudentID:   studentID,
		StudentName: studentName,
		Title:       title,
		Message:     message,
		Status:      model.ComplaintPending,
		FiledAt:     e.now().UTC(),
	})
	if err != nil {
		return model.Complaint{}, err
	}
	e.audit("COMPLAINT_FILED", "complaints", map[string]any{"title": c.Title, "from": c.StudentName})
	return c, nil
}

// ResolveComplaint moves a pending complaint to Resolved and stamps
// ResolvedAt.  The transition is one-way: an already-resolved or unknown
// complaint is a silent no-op and its timestamps stay unchanged.
func (e *Engine) ResolveComplaint(id uint64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	c, ok := e.db.Complaints.Get(id)
	if !ok || c.Status == model.ComplaintResolved {
		return nil
	}
	now := e.now().UTC()
	c.Status = model.ComplaintResolved
	c.ResolvedAt = &now
	if err := e.db.Complaints.Update(c); err != nil {
		return err
	}
	e.audit("COMPLAINT_RESOLVED", "complaints", map[string]any{"id": id})
	return nil
}

// PostNotice publishes a bulletin-board announcement.
func (e *Engine) PostNotice(text string) (model.Notice, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return model.Notice{}, fmt.Errorf("notice text is required: %w", ErrInvalidArgument)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	n, err := e.db.Notices.Insert(model.Notice{ID: e.nextID(), Text: text, PostedAt: e.now().UTC()})
	if err != nil {
		return model.Notice{}, err
	}
	e.audit("POST_NOTICE", "notices", map[string]any{"text": truncate(n.Text, 20)})
	return n, nil
}

// DeleteNotice removes a notice.  An unknown id is a silent no-op.
func (e *Engine) DeleteNotice(id uint64) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if _, ok := e.db.Notices.Get(id); !ok {
		return nil
	}
	e.db.Notices.Remove(id)
	e.audit("DELETE_NOTICE", "notices", map[string]any{"id": id})
	return nil
}

// ClearAuditLog wipes the audit trail in bulk, the only permitted way to
// remove audit entries.
func (e *Engine) ClearAuditLog() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.db.Logs.Clear()
}

// Snapshot serializes the full database at a quiescent point between
// mutations.  Safe to call concurrently with reads and mutations.
func (e *Engine) Snapshot() ([]byte, error) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.db.MarshalSnapshot()
}

func idOrNil(id *uint64) any {
	if id == nil {
		return nil
	}
	return *id
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
