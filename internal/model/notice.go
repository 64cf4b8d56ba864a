package model

import "time"

// Notice is a bulletin-board announcement posted by an administrator.
//
// Fields:
//  ID       – engine-generated identifier.
//  Text     – the announcement body.
//  PostedAt – when the notice was posted.
type Notice struct {
	ID       uint64    `json:"id"`        // notices.id
	Text     string    `json:"text"`      // notices.text
	PostedAt time.Time `json:"posted_at"` // notices.posted_at
}

// Key returns the record identifier used by the collection store.
func (n Notice) Key() uint64 { return n.ID }
