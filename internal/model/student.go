package model

// Student represents a hostel resident.  The email address is unique across
// all residents.  RoomID is a weak reference: it names a room for lookup but
// does not own it, and it is nulled out when the referenced room is deleted.
//
// Fields:
//  ID     – engine-generated identifier.
//  Name   – full name of the resident.
//  Email  – unique contact address.
//  RoomID – id of the allocated room (nil when unassigned).
type Student struct {
	ID     uint64  `json:"id"`      // students.id
	Name   string  `json:"name"`    // students.name
	Email  string  `json:"email"`   // students.email (unique)
	RoomID *uint64 `json:"room_id"` // students.room_id (nullable weak reference)
}

// Key returns the record identifier used by the collection store.
func (s Student) Key() uint64 { return s.ID }
