// Package queue defines message payloads exchanged over the message broker.
package queue

// AuditEvent mirrors one audit log entry and is published whenever a
// mutation commits.  It contains enough information for downstream
// consumers to archive, notify, or trigger analytics without querying the
// embedded store.  EventID is a random id independent of the store's record
// ids so that the archive can deduplicate redelivered messages.
type AuditEvent struct {
	EventID    string         `json:"event_id"`
	Timestamp  string         `json:"timestamp"`
	Action     string         `json:"action"`
	Collection string         `json:"collection"`
	Details    map[string]any `json:"details"`
}
