package engine

import "testing"

func TestStatsOnEmptyEngineIsAllZero(t *testing.T) {
	e := newTestEngine()
	stats := e.Stats("2026-02-01")
	if stats != (Stats{}) {
		t.Fatalf("expected zero stats, got %+v", stats)
	}
}

func TestAttendancePercentWithNoRecords(t *testing.T) {
	e := newTestEngine()
	mustStudent(t, e, "Alice", "alice@example.com")
	stats := e.Stats("2026-02-01")
	if stats.AttendancePercent != 0 {
		t.Fatalf("expected 0%% attendance, got %d", stats.AttendancePercent)
	}
	if stats.TotalStudents != 1 {
		t.Fatalf("expected 1 resident, got %d", stats.TotalStudents)
	}
}

func TestStatsRounding(t *testing.T) {
	e := newTestEngine()
	room := mustRoom(t, e, "201", 3)
	a := mustStudent(t, e, "A", "a@example.com")
	mustStudent(t, e, "B", "b@example.com")
	mustStudent(t, e, "C", "c@example.com")
	if err := e.Allocate(a.ID, &room.ID); err != nil {
		t.Fatalf("allocate: %v", err)
	}
	if err := e.ToggleAttendance(a.ID, "2026-02-01", true); err != nil {
		t.Fatalf("toggle: %v", err)
	}

	stats := e.Stats("2026-02-01")
	// 1 of 3 beds occupied and 1 of 3 residents present: both round(33.3) = 33.
	if stats.OccupancyPercent != 33 {
		t.Fatalf("occupancy: expected 33, got %d", stats.OccupancyPercent)
	}
	if stats.AttendancePercent != 33 {
		t.Fatalf("attendance: expected 33, got %d", stats.AttendancePercent)
	}
	if stats.FreeBeds != 2 {
		t.Fatalf("free beds: expected 2, got %d", stats.FreeBeds)
	}
}

func TestAttendanceCountsOnlyTheRequestedDate(t *testing.T) {
	e := newTestEngine()
	a := mustStudent(t, e, "A", "a@example.com")
	b := mustStudent(t, e, "B", "b@example.com")
	if err := e.ToggleAttendance(a.ID, "2026-02-01", true); err != nil {
		t.Fatalf("toggle a: %v", err)
	}
	if err := e.ToggleAttendance(b.ID, "2026-02-02", true); err != nil {
		t.Fatalf("toggle b: %v", err)
	}
	if got := e.Stats("2026-02-01").AttendancePercent; got != 50 {
		t.Fatalf("expected 50%% on 2026-02-01, got %d", got)
	}
	if got := e.Stats("2026-02-03").AttendancePercent; got != 0 {
		t.Fatalf("expected 0%% on 2026-02-03, got %d", got)
	}
}

func TestRoomUsageFollowsStorageOrder(t *testing.T) {
	e := newTestEngine()
	single := mustRoom(t, e, "101", 1)
	double := mustRoom(t, e, "102", 2)
	a := mustStudent(t, e, "A", "a@example.com")
	b := mustStudent(t, e, "B", "b@example.com")
	if err := e.Allocate(a.ID, &single.ID); err != nil {
		t.Fatalf("allocate a: %v", err)
	}
	if err := e.Allocate(b.ID, &double.ID); err != nil {
		t.Fatalf("allocate b: %v", err)
	}

	usage := e.RoomUsage()
	if len(usage) != 2 {
		t.Fatalf("expected 2 rooms, got %d", len(usage))
	}
	if usage[0].Room.Number != "101" || usage[1].Room.Number != "102" {
		t.Fatalf("usage order differs from storage order: %+v", usage)
	}
	if usage[0].Occupancy != 1 || usage[0].Percent != 100 {
		t.Fatalf("room 101 usage wrong: %+v", usage[0])
	}
	if usage[1].Occupancy != 1 || usage[1].Percent != 50 {
		t.Fatalf("room 102 usage wrong: %+v", usage[1])
	}
}
