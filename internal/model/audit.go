package model

import "time"

// AuditLogEntry records one successful mutation for observability.  Entries
// are append-only: they are never updated or removed individually, only
// cleared in bulk.  Details carries enough context to reconstruct what
// changed (human-readable keys plus relevant before/after values) but is
// never used to rebuild authoritative state.
//
// Fields:
//  ID         – engine-generated identifier.
//  Timestamp  – when the mutation committed.
//  Action     – mutation name (REGISTER, ALLOCATE, DROP_ROOM, ...).
//  Collection – name of the collection the mutation targeted.
//  Details    – structured payload describing the change.
type AuditLogEntry struct {
	ID         uint64         `json:"id"`         // logs.id
	Timestamp  time.Time      `json:"timestamp"`  // logs.timestamp
	Action     string         `json:"action"`     // logs.action
	Collection string         `json:"collection"` // logs.collection
	Details    map[string]any `json:"details"`    // logs.details
}

// Key returns the record identifier used by the collection store.
func (e AuditLogEntry) Key() uint64 { return e.ID }
