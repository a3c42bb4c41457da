package history

import (
	"errors"
	"fmt"
	"os"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/kessym/ripple/internal/data"
)

// Bump when the transcript shape changes incompatibly.
const transcriptVersion = 1

// transcript is the on-disk shape of a conversation.
type transcript struct {
	Version  int            `msgpack:"version"`
	Name     string         `msgpack:"name"`
	GroupKey []byte         `msgpack:"group_key"`
	Messages []data.Message `msgpack:"messages"`
}

// Save writes the conversation to path, replacing any previous file.
func Save(path string, c *Conversation) error {
	b, err := msgpack.Marshal(transcript{
		Version:  transcriptVersion,
		Name:     c.Name,
		GroupKey: c.GroupKey,
		Messages: c.Messages(),
	})
	if err != nil {
		return fmt.Errorf("encode transcript: %w", err)
	}
	if err := os.WriteFile(path, b, 0o600); err != nil {
		return fmt.Errorf("write transcript: %w", err)
	}
	return nil
}

// Load reads a conversation back from path. A missing file is an empty,
// unnamed conversation rather than an error.
func Load(path string) (*Conversation, error) {
	contents, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return NewConversation("", nil), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read transcript: %w", err)
	}

	var t transcript
	if err := msgpack.Unmarshal(contents, &t); err != nil {
		return nil, fmt.Errorf("decode transcript: %w", err)
	}
	if t.Version != transcriptVersion {
		return nil, fmt.Errorf("transcript version: want %v, got %v", transcriptVersion, t.Version)
	}

	c := NewConversation(t.Name, t.GroupKey)
	for _, msg := range t.Messages {
		c.Insert(msg)
	}
	return c, nil
}
