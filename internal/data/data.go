package data

import (
	"time"

	"github.com/bwmarrin/snowflake"
)

// Message is one chat message as it appears in a transcript. SenderID is
// the sender's account identifier (hex); mention references inside
// Content use the same identifier form.
type Message struct {
	ID       snowflake.ID `msgpack:"id" json:"id"`
	SenderID string       `msgpack:"sender_id" json:"sender_id"`
	Content  string       `msgpack:"content" json:"content"`
	Outgoing bool         `msgpack:"outgoing" json:"outgoing"`
	SentAt   time.Time    `msgpack:"sent_at" json:"sent_at"`
}

// User pairs an account identifier with a display name.
type User struct {
	ID   string `msgpack:"id" json:"id"`
	Name string `msgpack:"name" json:"name"`
}
