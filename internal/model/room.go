package model

// Room represents a bookable room in the hostel inventory.  Rooms are
// uniquely identified by their human-readable number and define how many
// residents they can hold via Capacity.  The json tags double as the
// snapshot serialization contract, so renaming them is a breaking change.
//
// Fields:
//  ID       – engine-generated identifier.
//  Number   – unique room number (e.g. "101").
//  Category – free-form room category (e.g. "Double-Standard").
//  Capacity – number of beds; always >= 1.
type Room struct {
	ID       uint64 `json:"id"`       // rooms.id
	Number   string `json:"number"`   // rooms.number (unique)
	Category string `json:"category"` // rooms.category
	Capacity int    `json:"capacity"` // rooms.capacity (beds)
}

// Key returns the record identifier used by the collection store.
func (r Room) Key() uint64 { return r.ID }
