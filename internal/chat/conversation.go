// Package chat owns conversation state: the thread list, the active thread,
// and the create/select/send/delete lifecycle. Signed-out conversations live
// only in memory; signed-in ones are backed by the server.
package chat

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/banterhq/banter/internal/api"
)

// Role identifies who authored a message.
type Role string

const (
	RoleUser      Role = "user"
	RoleAssistant Role = "assistant"
)

// localIDPrefix marks conversations that exist only in this process.
// Server-backed conversations use the server's integer id rendered as a
// string, so the two id spaces never collide.
const localIDPrefix = "local-"

// DefaultTitle is given to conversations before their first message.
const DefaultTitle = "New Conversation"

// titleRuneLimit is how much of the first message becomes the title.
const titleRuneLimit = 30

// Message is a single turn in a conversation.
type Message struct {
	ID        string
	Role      Role
	Content   string
	Timestamp time.Time
}

// Conversation is one chat thread.
type Conversation struct {
	ID        string
	Title     string
	Messages  []Message
	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsLocal reports whether the conversation exists only in memory.
func (c *Conversation) IsLocal() bool {
	return IsLocalID(c.ID)
}

// IsLocalID reports whether an id belongs to the local tier.
func IsLocalID(id string) bool {
	return strings.HasPrefix(id, localIDPrefix)
}

// remoteID parses a server-backed conversation id back to the server's
// integer form.
func remoteID(id string) (int, error) {
	n, err := strconv.Atoi(id)
	if err != nil {
		return 0, fmt.Errorf("not a remote conversation id: %q", id)
	}
	return n, nil
}

// newLocalID mints an id for an in-memory conversation.
func newLocalID(now time.Time) string {
	return fmt.Sprintf("%s%d", localIDPrefix, now.UnixMilli())
}

// deriveTitle builds a conversation title from its first message: the first
// 30 characters followed by an ellipsis.
func deriveTitle(content string) string {
	runes := []rune(content)
	if len(runes) > titleRuneLimit {
		runes = runes[:titleRuneLimit]
	}
	return string(runes) + "..."
}

// fromSession converts a server session to a Conversation. Messages stay
// empty until the thread is opened.
func fromSession(s api.Session) *Conversation {
	return &Conversation{
		ID:        strconv.Itoa(s.ID),
		Title:     s.Title,
		Messages:  []Message{},
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// fromAPIMessage converts a server message to the local shape.
func fromAPIMessage(m api.Message) Message {
	role := RoleAssistant
	if m.IsUserMessage {
		role = RoleUser
	}
	return Message{
		ID:        strconv.Itoa(m.ID),
		Role:      role,
		Content:   m.Content,
		Timestamp: m.Timestamp,
	}
}

// clone returns a copy safe to hand to another goroutine. The message slice
// is copied; message values are immutable once appended.
func (c *Conversation) clone() *Conversation {
	if c == nil {
		return nil
	}
	dup := *c
	dup.Messages = make([]Message, len(c.Messages))
	copy(dup.Messages, c.Messages)
	return &dup
}
