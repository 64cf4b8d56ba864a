// Package engine implements the mutation protocols and analytics of the
// hostel data layer.  Every mutating call runs under a single mutex, so a
// cascade is never observed half-applied, and every successful mutation
// appends one audit entry.  These sentinel values let handlers distinguish
// the recoverable failure scenarios. For example, ErrCapacityExceeded
// signals a user-visible allocation rejection, while ErrDuplicateKey
// signals a unique-constraint violation on insert.
package engine

import (
	"errors"

	"github.com/iliyamo/hostel-hub/internal/store"
)

// ErrDuplicateKey is returned when a register call collides with an
// existing room number or resident email. Handlers should translate this
// into an HTTP 409 response.
var ErrDuplicateKey = store.ErrDuplicateKey

// ErrNotFound is returned when an operation's precondition names an entity
// id that does not exist, such as allocating into an unknown room.  Deletes,
// resolves and toggles on missing ids are silent no-ops instead.
var ErrNotFound = store.ErrNotFound

// ErrCapacityExceeded is returned when an allocation would push a room past
// its capacity.  The resident's prior allocation is left untouched.
var ErrCapacityExceeded = errors.New("room at full capacity")

// ErrInvalidArgument is returned for malformed input rejected at the engine
// boundary: empty required fields, capacity below one, or a date that is
// not an ISO calendar day.
var ErrInvalidArgument = errors.New("invalid argument")
