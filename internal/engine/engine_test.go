package engine

import (
	"errors"
	"testing"
	"time"

	"github.com/iliyamo/hostel-hub/internal/model"
	"github.com/iliyamo/hostel-hub/internal/store"
)

// newTestEngine returns an engine with a deterministic clock so ids and
// timestamps are stable across runs.
func newTestEngine() *Engine {
	e := New(store.NewDatabase())
	base := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	e.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Millisecond)
	}
	return e
}

func mustStudent(t *testing.T, e *Engine, name, email string) model.Student {
	t.Helper()
	s, err := e.RegisterStudent(name, email)
	if err != nil {
		t.Fatalf("register %s: %v", name, err)
	}
	return s
}

func mustRoom(t *testing.T, e *Engine, number string, capacity int) model.Room {
	t.Helper()
	r, err := e.CreateRoom(number, "Standard", capacity)
	if err != nil {
		t.Fatalf("create room %s: %v", number, err)
	}
	return r
}

func auditActions(e *Engine) []string {
	var out []string
	for _, entry := range e.AuditLog() {
		out = append(out, entry.Action)
	}
	return out
}

func TestRegisterStudentRejectsDuplicateEmail(t *testing.T) {
	e := newTestEngine()
	mustStudent(t, e, "Alice Johnson", "alice@example.com")
	_, err := e.RegisterStudent("Alice Clone", "alice@example.com")
	if !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}
	if len(e.Students()) != 1 {
		t.Fatalf("rejected register changed student count: %d", len(e.Students()))
	}
}

func TestRegisterStudentStartsUnassigned(t *testing.T) {
	e := newTestEngine()
	s := mustStudent(t, e, "Bob Smith", "bob@example.com")
	if s.RoomID != nil {
		t.Fatalf("new resident should be unassigned, got room %v", *s.RoomID)
	}
}

func TestCreateRoomRejectsDuplicateNumber(t *testing.T) {
	e := newTestEngine()
	mustRoom(t, e, "101", 1)
	if _, err := e.CreateRoom("101", "Deluxe", 2); !errors.Is(err, ErrDuplicateKey) {
		t.Fatalf("expected ErrDuplicateKey, got %v", err)
	}
	if len(e.Rooms()) != 1 {
		t.Fatalf("rejected create changed room count: %d", len(e.Rooms()))
	}
}

func TestCreateRoomValidatesCapacity(t *testing.T) {
	e := newTestEngine()
	for _, capacity := range []int{0, -3} {
		if _, err := e.CreateRoom("501", "Budget", capacity); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("capacity %d: expected ErrInvalidArgument, got %v", capacity, err)
		}
	}
	if len(e.Rooms()) != 0 {
		t.Fatal("invalid capacity must not create a room")
	}
}

func TestAllocateCapacityScenario(t *testing.T) {
	e := newTestEngine()
	roomA := mustRoom(t, e, "A", 1)
	roomB := mustRoom(t, e, "B", 2)
	x := mustStudent(t, e, "X", "x@example.com")
	y := mustStudent(t, e, "Y", "y@example.com")
	z := mustStudent(t, e, "Z", "z@example.com")

	if err := e.Allocate(x.ID, &roomA.ID); err != nil {
		t.Fatalf("allocate X to A: %v", err)
	}
	if err := e.Allocate(y.ID, &roomA.ID); !errors.Is(err, ErrCapacityExceeded) {
		t.Fatalf("allocate Y to full A: expected ErrCapacityExceeded, got %v", err)
	}
	// X keeps its bed after the rejected allocation.
	got, _ := e.Student(x.ID)
	if got.RoomID == nil || *got.RoomID != roomA.ID {
		t.Fatalf("X lost its allocation: %+v", got)
	}
	if err := e.Allocate(y.ID, &roomB.ID); err != nil {
		t.Fatalf("allocate Y to B: %v", err)
	}
	if err := e.Allocate(z.ID, &roomB.ID); err != nil {
		t.Fatalf("allocate Z to B: %v", err)
	}

	stats := e.Stats("2026-02-01")
	if stats.OccupancyPercent != 100 {
		t.Fatalf("occupancy: expected 100, got %d", stats.OccupancyPercent)
	}
	if stats.FreeBeds != 0 {
		t.Fatalf("free beds: expected 0, got %d", stats.FreeBeds)
	}
}

func TestAllocateToOwnFullRoomIsIdempotent(t *testing.T) {
	e := newTestEngine()
	room := mustRoom(t, e, "101", 1)
	s := mustStudent(t, e, "Alice", "alice@example.com")
	if err := e.Allocate(s.ID, &room.ID); err != nil {
		t.Fatalf("first allocate: %v", err)
	}
	// The room is now full, but re-allocating its occupant must succeed.
	if err := e.Allocate(s.ID, &room.ID); err != nil {
		t.Fatalf("re-allocate to own room: %v", err)
	}
}

func TestAllocateNilUnassigns(t *testing.T) {
	e := newTestEngine()
	room := mustRoom(t, e, "101", 1)
	s := mustStudent(t, e, "Alice", "alice@example.com")
	if err := e.Allocate(s.ID, &room.ID); err != nil {
		t.Fatalf("allocate: %v", err)
	}
	if err := e.Allocate(s.ID, nil); err != nil {
		t.Fatalf("unassign: %v", err)
	}
	got, _ := e.Student(s.ID)
	if got.RoomID != nil {
		t.Fatalf("resident still assigned: %+v", got)
	}
}

func TestAllocateUnknownStudentIsSilentNoop(t *testing.T) {
	e := newTestEngine()
	room := mustRoom(t, e, "101", 1)
	before := len(e.AuditLog())
	if err := e.Allocate(424242, &room.ID); err != nil {
		t.Fatalf("unknown resident should be a no-op, got %v", err)
	}
	if len(e.AuditLog()) != before {
		t.Fatal("no-op allocation appended an audit entry")
	}
}

func TestAllocateUnknownRoomFails(t *testing.T) {
	e := newTestEngine()
	s := mustStudent(t, e, "Alice", "alice@example.com")
	missing := uint64(424242)
	if err := e.Allocate(s.ID, &missing); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDeleteRoomNullsWeakReferences(t *testing.T) {
	e := newTestEngine()
	room := mustRoom(t, e, "101", 2)
	a := mustStudent(t, e, "Alice", "alice@example.com")
	b := mustStudent(t, e, "Bob", "bob@example.com")
	for _, id := range []uint64{a.ID, b.ID} {
		if err := e.Allocate(id, &room.ID); err != nil {
			t.Fatalf("allocate %d: %v", id, err)
		}
	}

	if err := e.DeleteRoom(room.ID); err != nil {
		t.Fatalf("delete room: %v", err)
	}
	if _, ok := e.Room(room.ID); ok {
		t.Fatal("room still present after delete")
	}
	for _, id := range []uint64{a.ID, b.ID} {
		got, _ := e.Student(id)
		if got.RoomID != nil {
			t.Fatalf("resident %d still references deleted room", id)
		}
	}
}

func TestDeleteStudentCascadesAttendanceKeepsComplaints(t *testing.T) {
	e := newTestEngine()
	s := mustStudent(t, e, "Alice", "alice@example.com")
	for _, date := range []string{"2026-02-01", "2026-02-02"} {
		if err := e.ToggleAttendance(s.ID, date, true); err != nil {
			t.Fatalf("toggle %s: %v", date, err)
		}
	}
	c, err := e.FileComplaint(s.ID, s.Name, "Broken fan", "The ceiling fan stopped working.")
	if err != nil {
		t.Fatalf("file complaint: %v", err)
	}

	if err := e.DeleteStudent(s.ID); err != nil {
		t.Fatalf("delete student: %v", err)
	}
	if _, ok := e.Student(s.ID); ok {
		t.Fatal("student still present after delete")
	}
	if got := e.AttendanceOf(s.ID); len(got) != 0 {
		t.Fatalf("attendance not cascaded: %d records left", len(got))
	}
	kept := e.Complaints()
	if len(kept) != 1 || kept[0].ID != c.ID || kept[0].StudentName != "Alice" {
		t.Fatalf("complaint history altered by resident deletion: %+v", kept)
	}
}

func TestDeleteMissingEntitiesAreNoops(t *testing.T) {
	e := newTestEngine()
	if err := e.DeleteStudent(1); err != nil {
		t.Fatalf("delete missing student: %v", err)
	}
	if err := e.DeleteRoom(1); err != nil {
		t.Fatalf("delete missing room: %v", err)
	}
	if err := e.DeleteNotice(1); err != nil {
		t.Fatalf("delete missing notice: %v", err)
	}
	if len(e.AuditLog()) != 0 {
		t.Fatal("no-op deletes appended audit entries")
	}
}

func TestToggleAttendanceIsIdempotent(t *testing.T) {
	e := newTestEngine()
	s := mustStudent(t, e, "Alice", "alice@example.com")
	const date = "2026-02-01"

	for i := 0; i < 2; i++ {
		if err := e.ToggleAttendance(s.ID, date, true); err != nil {
			t.Fatalf("mark present (round %d): %v", i+1, err)
		}
	}
	if got := e.AttendanceOn(date); len(got) != 1 {
		t.Fatalf("expected exactly one record, got %d", len(got))
	}

	if err := e.ToggleAttendance(s.ID, date, false); err != nil {
		t.Fatalf("mark absent: %v", err)
	}
	if err := e.ToggleAttendance(s.ID, date, false); err != nil {
		t.Fatalf("mark absent when already absent: %v", err)
	}
	if got := e.AttendanceOn(date); len(got) != 0 {
		t.Fatalf("expected no records, got %d", len(got))
	}
}

func TestToggleAttendanceValidatesDate(t *testing.T) {
	e := newTestEngine()
	s := mustStudent(t, e, "Alice", "alice@example.com")
	for _, bad := range []string{"", "01-02-2026", "2026-2-1", "yesterday"} {
		if err := e.ToggleAttendance(s.ID, bad, true); !errors.Is(err, ErrInvalidArgument) {
			t.Fatalf("date %q: expected ErrInvalidArgument, got %v", bad, err)
		}
	}
}

func TestToggleAttendanceUnknownStudentIsNoop(t *testing.T) {
	e := newTestEngine()
	if err := e.ToggleAttendance(424242, "2026-02-01", true); err != nil {
		t.Fatalf("unknown resident should be a no-op, got %v", err)
	}
	if got := e.AttendanceOn("2026-02-01"); len(got) != 0 {
		t.Fatal("orphan attendance record created")
	}
}

func TestResolveComplaintIsOneWay(t *testing.T) {
	e := newTestEngine()
	s := mustStudent(t, e, "Alice", "alice@example.com")
	c, err := e.FileComplaint(s.ID, s.Name, "Water leakage", "Bathroom tap is leaking.")
	if err != nil {
		t.Fatalf("file: %v", err)
	}
	if c.Status != model.ComplaintPending || c.ResolvedAt != nil {
		t.Fatalf("fresh complaint in wrong state: %+v", c)
	}

	if err := e.ResolveComplaint(c.ID); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	first := e.Complaints()[0]
	if first.Status != model.ComplaintResolved || first.ResolvedAt == nil {
		t.Fatalf("complaint not resolved: %+v", first)
	}

	// Resolving again leaves status and timestamp untouched.
	if err := e.ResolveComplaint(c.ID); err != nil {
		t.Fatalf("second resolve: %v", err)
	}
	second := e.Complaints()[0]
	if !second.ResolvedAt.Equal(*first.ResolvedAt) || second.Status != model.ComplaintResolved {
		t.Fatalf("second resolve changed the record: %+v vs %+v", second, first)
	}

	if err := e.ResolveComplaint(424242); err != nil {
		t.Fatalf("resolve unknown complaint should be a no-op, got %v", err)
	}
}

func TestEveryMutationAppendsOneAuditEntry(t *testing.T) {
	e := newTestEngine()
	room := mustRoom(t, e, "101", 1)
	s := mustStudent(t, e, "Alice", "alice@example.com")
	if err := e.Allocate(s.ID, &room.ID); err != nil {
		t.Fatalf("allocate: %v", err)
	}
	if err := e.ToggleAttendance(s.ID, "2026-02-01", true); err != nil {
		t.Fatalf("toggle: %v", err)
	}
	c, err := e.FileComplaint(s.ID, s.Name, "Noise", "Loud music at night.")
	if err != nil {
		t.Fatalf("file: %v", err)
	}
	if err := e.ResolveComplaint(c.ID); err != nil {
		t.Fatalf("resolve: %v", err)
	}
	n, err := e.PostNotice("Annual Day celebrations start this Friday!")
	if err != nil {
		t.Fatalf("post notice: %v", err)
	}
	if err := e.DeleteNotice(n.ID); err != nil {
		t.Fatalf("delete notice: %v", err)
	}
	if err := e.DeleteStudent(s.ID); err != nil {
		t.Fatalf("delete student: %v", err)
	}
	if err := e.DeleteRoom(room.ID); err != nil {
		t.Fatalf("delete room: %v", err)
	}

	want := []string{
		"CREATE_ROOM", "REGISTER", "ALLOCATE", "ATTENDANCE",
		"COMPLAINT_FILED", "COMPLAINT_RESOLVED", "POST_NOTICE",
		"DELETE_NOTICE", "DELETE", "DROP_ROOM",
	}
	got := auditActions(e)
	if len(got) != len(want) {
		t.Fatalf("expected %d audit entries, got %d: %v", len(want), len(got), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("audit entry %d: expected %s, got %s", i, want[i], got[i])
		}
	}

	e.ClearAuditLog()
	if len(e.AuditLog()) != 0 {
		t.Fatal("audit log not cleared")
	}
}

func TestAllocateAuditRecordsPreviousRoom(t *testing.T) {
	e := newTestEngine()
	roomA := mustRoom(t, e, "A", 1)
	roomB := mustRoom(t, e, "B", 1)
	s := mustStudent(t, e, "Alice", "alice@example.com")
	if err := e.Allocate(s.ID, &roomA.ID); err != nil {
		t.Fatalf("allocate A: %v", err)
	}
	if err := e.Allocate(s.ID, &roomB.ID); err != nil {
		t.Fatalf("allocate B: %v", err)
	}

	entries := e.AuditLog()
	last := entries[len(entries)-1]
	if last.Action != "ALLOCATE" {
		t.Fatalf("expected ALLOCATE entry, got %s", last.Action)
	}
	if last.Details["from"] != roomA.ID || last.Details["to"] != roomB.ID {
		t.Fatalf("audit payload missing move history: %+v", last.Details)
	}
}

func TestEngineIDsAreStrictlyIncreasing(t *testing.T) {
	e := New(store.NewDatabase())
	// Freeze the clock so every id request lands in the same millisecond.
	frozen := time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)
	e.now = func() time.Time { return frozen }

	var prev uint64
	for i := 0; i < 5; i++ {
		s, err := e.RegisterStudent("R", "r"+string(rune('0'+i))+"@example.com")
		if err != nil {
			t.Fatalf("register %d: %v", i, err)
		}
		if s.ID <= prev {
			t.Fatalf("id %d not strictly increasing after %d", s.ID, prev)
		}
		prev = s.ID
	}
}

func TestSearchStudentsMatchesNameAndEmail(t *testing.T) {
	e := newTestEngine()
	mustStudent(t, e, "Alice Johnson", "alice@example.com")
	mustStudent(t, e, "Bob Smith", "bob@example.com")
	mustStudent(t, e, "Charlie Brown", "charlie@example.com")

	if got := e.SearchStudents("ALICE"); len(got) != 1 || got[0].Name != "Alice Johnson" {
		t.Fatalf("name search failed: %+v", got)
	}
	if got := e.SearchStudents("@example.com"); len(got) != 3 {
		t.Fatalf("email search failed: %d matches", len(got))
	}
	if got := e.SearchStudents("nobody"); len(got) != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}
	if got := e.SearchStudents(""); len(got) != 3 {
		t.Fatalf("empty query should list everyone, got %d", len(got))
	}
}
