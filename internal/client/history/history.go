// Package history keeps conversation transcripts: an ordered in-memory
// message store with a msgpack file format for persistence.
package history

import (
	"github.com/bwmarrin/snowflake"
	"github.com/google/btree"

	"github.com/kessym/ripple/internal/data"
)

// Conversation is the ordered message store of one chat, plus the
// metadata the mention engine needs to resolve references in it.
type Conversation struct {
	Name string

	// GroupKey is the open-group domain key; nil outside groups.
	GroupKey []byte

	msgs *btree.BTreeG[data.Message]
}

func NewConversation(name string, groupKey []byte) *Conversation {
	return &Conversation{
		Name:     name,
		GroupKey: groupKey,
		msgs: btree.NewG(2, func(a, b data.Message) bool {
			return a.ID < b.ID
		}),
	}
}

// Insert adds a message, replacing any previous message with the same ID.
// Snowflake IDs are time-ordered, so the tree order is arrival order.
func (c *Conversation) Insert(msg data.Message) {
	c.msgs.ReplaceOrInsert(msg)
}

func (c *Conversation) Delete(id snowflake.ID) (data.Message, bool) {
	return c.msgs.Delete(data.Message{ID: id})
}

func (c *Conversation) Len() int {
	return c.msgs.Len()
}

// Messages returns the conversation in ascending ID order.
func (c *Conversation) Messages() []data.Message {
	out := make([]data.Message, 0, c.msgs.Len())
	c.msgs.Ascend(func(msg data.Message) bool {
		out = append(out, msg)
		return true
	})
	return out
}
