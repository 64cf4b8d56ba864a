// Package seed fills an empty database with a small demo data set so a
// fresh install is immediately usable.  Seeding writes straight into the
// collections, before the engine starts, so the audit trail begins empty
// and records only real operator actions.
package seed

import (
	"log"
	"time"

	"github.com/iliyamo/hostel-hub/internal/auth"
	"github.com/iliyamo/hostel-hub/internal/model"
	"github.com/iliyamo/hostel-hub/internal/store"
)

// ptr returns a pointer to the given room id for weak references.
func ptr(id uint64) *uint64 { return &id }

// Apply seeds demo rooms, residents and notices when the database is
// empty, and always ensures the login accounts exist.  Passwords come
// from SEED_ADMIN_PASSWORD / SEED_RESIDENT_PASSWORD when set; the caller
// passes resolved defaults.
func Apply(db *store.Database, accounts *auth.Store, adminPass, residentPass string, bcryptCost int) error {
	if db.Rooms.Count() == 0 && db.Students.Count() == 0 {
		now := time.Now().UTC()
		rooms := []model.Room{
			{ID: 1, Number: "101", Category: "Single Deluxe", Capacity: 1},
			{ID: 2, Number: "102", Category: "Double Standard", Capacity: 2},
			{ID: 3, Number: "103", Category: "Double Standard", Capacity: 2},
			{ID: 4, Number: "201", Category: "Triple Budget", Capacity: 3},
			{ID: 5, Number: "202", Category: "Single Premium", Capacity: 1},
		}
		for _, r := range rooms {
			if _, err := db.Rooms.Insert(r); err != nil {
				return err
			}
		}
		students := []model.Student{
			{ID: 6, Name: "Alice Johnson", Email: "alice@example.com", RoomID: ptr(1)},
			{ID: 7, Name: "Bob Smith", Email: "bob@example.com", RoomID: ptr(2)},
			{ID: 8, Name: "Charlie Davis", Email: "charlie@example.com", RoomID: ptr(3)},
		}
		for _, s := range students {
			if _, err := db.Students.Insert(s); err != nil {
				return err
			}
		}
		notices := []model.Notice{
			{ID: 9, Text: "Welcome to the hostel portal.", PostedAt: now},
			{ID: 10, Text: "Water maintenance on Saturday 10:00-12:00.", PostedAt: now},
		}
		for _, n := range notices {
			if _, err := db.Notices.Insert(n); err != nil {
				return err
			}
		}
		log.Printf("seed: created %d rooms, %d residents, %d notices", len(rooms), len(students), len(notices))
	}

	// Accounts are not part of the snapshot, so they are (re)created on
	// every boot.  ErrEmailExists cannot happen on a fresh store but is
	// tolerated anyway.
	if _, err := accounts.Create("admin@hostel.local", "Warden", adminPass, auth.RoleAdmin, nil, bcryptCost); err != nil && err != auth.ErrEmailExists {
		return err
	}
	if alice, ok := db.Students.FindOne(func(s model.Student) bool { return s.Email == "alice@example.com" }); ok {
		if _, err := accounts.Create(alice.Email, alice.Name, residentPass, auth.RoleResident, ptr(alice.ID), bcryptCost); err != nil && err != auth.ErrEmailExists {
			return err
		}
	}
	return nil
}
