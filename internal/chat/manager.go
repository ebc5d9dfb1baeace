package chat

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/banterhq/banter/internal/api"
	"github.com/banterhq/banter/internal/errors"
	"github.com/banterhq/banter/internal/logger"
	"github.com/banterhq/banter/internal/mock"
)

// Manager owns the conversation list and the active selection. Methods are
// safe to call from command goroutines; accessors hand out copies so callers
// never share slices with the manager.
type Manager struct {
	mu            sync.Mutex
	store         api.Store
	authenticated bool
	loading       bool
	conversations []*Conversation
	currentID     string

	log *slog.Logger

	// Test seams. Production values are set by NewManager.
	now        func() time.Time
	newID      func() string
	replyDelay func() time.Duration
}

// NewManager creates a manager in the signed-out state.
func NewManager(store api.Store) *Manager {
	return &Manager{
		store:      store,
		log:        logger.WithComponent("chat"),
		now:        time.Now,
		newID:      uuid.NewString,
		replyDelay: mock.ReplyDelay,
	}
}

// Authenticated reports whether the manager is using the remote tier.
func (m *Manager) Authenticated() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.authenticated
}

// Loading reports whether a session or history load is in flight.
func (m *Manager) Loading() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.loading
}

// CurrentID returns the selected conversation's id, or "" when none.
func (m *Manager) CurrentID() string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.currentID
}

// Current returns a copy of the selected conversation, or nil when none.
func (m *Manager) Current() *Conversation {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.findLocked(m.currentID).clone()
}

// Conversations returns copies of all conversations, most recent first.
func (m *Manager) Conversations() []*Conversation {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]*Conversation, len(m.conversations))
	for i, c := range m.conversations {
		out[i] = c.clone()
	}
	return out
}

// Count returns the number of conversations.
func (m *Manager) Count() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.conversations)
}

// LoadSessions switches the manager to the authenticated tier and replaces
// the server-backed part of the list with the remote sessions. Local
// conversations survive. When nothing is selected, the most recent remote
// session is opened and selected. On failure the prior list is kept.
func (m *Manager) LoadSessions(ctx context.Context) error {
	m.mu.Lock()
	m.authenticated = true
	m.loading = true
	m.mu.Unlock()
	defer m.setLoading(false)

	sessions, err := m.store.ListSessions(ctx)
	if err != nil {
		m.log.Error("loading sessions failed", "error", err)
		return err
	}

	m.mu.Lock()
	locals := make([]*Conversation, 0, len(m.conversations))
	for _, c := range m.conversations {
		if c.IsLocal() {
			locals = append(locals, c)
		}
	}
	list := locals
	for _, s := range sessions {
		list = append(list, fromSession(s))
	}
	m.conversations = list

	eagerID := ""
	if m.currentID == "" && len(sessions) > 0 {
		eagerID = fromSession(sessions[0]).ID
	}
	m.mu.Unlock()

	m.log.Info("sessions loaded", "remote", len(sessions), "local", len(locals))

	if eagerID != "" {
		if err := m.selectRemote(ctx, eagerID); err != nil {
			m.log.Error("eager history load failed", "conversationID", eagerID, "error", err)
		}
	}
	return nil
}

// Logout switches back to the signed-out tier. Only local conversations are
// retained; the selection is cleared unless it is itself local.
func (m *Manager) Logout() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.authenticated = false
	kept := m.conversations[:0]
	for _, c := range m.conversations {
		if c.IsLocal() {
			kept = append(kept, c)
		}
	}
	m.conversations = kept
	if !IsLocalID(m.currentID) {
		m.currentID = ""
	}
	m.log.Info("logged out", "retained", len(kept))
}

// Create starts a new conversation, prepends it to the list, and selects it.
// Signed out this is purely in-memory; signed in it creates a server session
// first and leaves state untouched if that fails.
func (m *Manager) Create(ctx context.Context) (*Conversation, error) {
	m.mu.Lock()
	if !m.authenticated {
		now := m.now()
		conv := &Conversation{
			ID:        m.uniqueLocalIDLocked(now),
			Title:     DefaultTitle,
			Messages:  []Message{},
			CreatedAt: now,
			UpdatedAt: now,
		}
		m.conversations = append([]*Conversation{conv}, m.conversations...)
		m.currentID = conv.ID
		m.mu.Unlock()
		m.log.Debug("created local conversation", "conversationID", conv.ID)
		return conv.clone(), nil
	}
	m.mu.Unlock()

	session, err := m.store.CreateSession(ctx, DefaultTitle)
	if err != nil {
		m.log.Error("creating session failed", "error", err)
		return nil, err
	}
	conv := fromSession(*session)

	m.mu.Lock()
	m.conversations = append([]*Conversation{conv}, m.conversations...)
	m.currentID = conv.ID
	m.mu.Unlock()
	m.log.Debug("created remote conversation", "conversationID", conv.ID)
	return conv.clone(), nil
}

// Select makes a conversation current. Unknown local ids are a no-op, as are
// remote ids while signed out. Remote selection fetches the thread's message
// history before switching; on failure the prior selection stands.
func (m *Manager) Select(ctx context.Context, id string) error {
	if IsLocalID(id) {
		m.mu.Lock()
		if m.findLocked(id) != nil {
			m.currentID = id
		}
		m.mu.Unlock()
		return nil
	}

	m.mu.Lock()
	authed := m.authenticated
	m.mu.Unlock()
	if !authed {
		return nil
	}
	return m.selectRemote(ctx, id)
}

func (m *Manager) selectRemote(ctx context.Context, id string) error {
	sid, err := remoteID(id)
	if err != nil {
		return errors.E(errors.Op("chat.Select"), errors.KindInvalid, err)
	}

	m.setLoading(true)
	defer m.setLoading(false)

	msgs, err := m.store.ListMessages(ctx, sid)
	if err != nil {
		m.log.Error("loading history failed", "conversationID", id, "error", err)
		return err
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	conv := m.findLocked(id)
	if conv == nil {
		return nil
	}
	conv.Messages = make([]Message, 0, len(msgs))
	for _, msg := range msgs {
		conv.Messages = append(conv.Messages, fromAPIMessage(msg))
	}
	m.currentID = id
	return nil
}

// SendToken carries one in-flight send from BeginSend to CompleteSend,
// including the snapshot needed to roll the optimistic update back.
type SendToken struct {
	ConversationID string
	Content        string
	Mood           string
	FirstMessage   bool

	remote   bool
	snapshot snapshot
}

type snapshot struct {
	title     string
	messages  []Message
	updatedAt time.Time
}

// BeginSend applies the optimistic half of a send: it resolves the target
// conversation (creating one when nothing is selected), appends the user
// message, and derives a title from a first message. The returned token must
// be passed to CompleteSend to commit or roll back.
func (m *Manager) BeginSend(ctx context.Context, content, mood string) (*SendToken, error) {
	m.mu.Lock()
	targetID := m.currentID
	exists := m.findLocked(targetID) != nil
	m.mu.Unlock()

	if !exists {
		created, err := m.Create(ctx)
		if err != nil {
			return nil, err
		}
		targetID = created.ID
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	conv := m.findLocked(targetID)
	if conv == nil {
		return nil, errors.ConversationNotFound(targetID)
	}

	token := &SendToken{
		ConversationID: conv.ID,
		Content:        content,
		Mood:           mood,
		FirstMessage:   len(conv.Messages) == 0,
		remote:         m.authenticated && !conv.IsLocal(),
		snapshot: snapshot{
			title:     conv.Title,
			messages:  slices.Clone(conv.Messages),
			updatedAt: conv.UpdatedAt,
		},
	}

	now := m.now()
	conv.Messages = append(conv.Messages, Message{
		ID:        m.newID(),
		Role:      RoleUser,
		Content:   content,
		Timestamp: now,
	})
	if token.FirstMessage {
		conv.Title = deriveTitle(content)
	}
	conv.UpdatedAt = now
	return token, nil
}

// CompleteSend finishes a send started by BeginSend: the remote path posts
// the message and reconciles with the server's canonical history, the local
// path synthesizes a canned reply after a simulated delay. Any failure rolls
// the conversation back to its pre-send snapshot.
func (m *Manager) CompleteSend(ctx context.Context, token *SendToken) error {
	if token.remote {
		return m.completeRemoteSend(ctx, token)
	}
	return m.completeLocalSend(ctx, token)
}

func (m *Manager) completeRemoteSend(ctx context.Context, token *SendToken) error {
	sid, err := remoteID(token.ConversationID)
	if err != nil {
		m.rollback(token)
		return errors.E(errors.Op("chat.Send"), errors.KindInvalid, err)
	}

	if _, err := m.store.SendMessage(ctx, sid, token.Content, token.Mood); err != nil {
		m.log.Error("send failed", "conversationID", token.ConversationID, "error", err)
		m.rollback(token)
		return err
	}

	// The server generates the assistant reply; re-fetch the thread so the
	// optimistic message list is replaced by the canonical one.
	msgs, err := m.store.ListMessages(ctx, sid)
	if err != nil {
		m.log.Error("post-send reconcile failed", "conversationID", token.ConversationID, "error", err)
		m.rollback(token)
		return err
	}

	m.mu.Lock()
	if conv := m.findLocked(token.ConversationID); conv != nil {
		conv.Messages = make([]Message, 0, len(msgs))
		for _, msg := range msgs {
			conv.Messages = append(conv.Messages, fromAPIMessage(msg))
		}
		conv.UpdatedAt = m.now()
	}
	m.mu.Unlock()

	if token.FirstMessage {
		title, err := m.store.RegenerateTitle(ctx, sid)
		if err != nil {
			// The message went through; a stale title is acceptable.
			m.log.Warn("title generation failed", "conversationID", token.ConversationID, "error", err)
			return nil
		}
		m.mu.Lock()
		if conv := m.findLocked(token.ConversationID); conv != nil {
			conv.Title = title
		}
		m.mu.Unlock()
	}
	return nil
}

func (m *Manager) completeLocalSend(ctx context.Context, token *SendToken) error {
	select {
	case <-ctx.Done():
		m.rollback(token)
		return ctx.Err()
	case <-time.After(m.replyDelay()):
	}

	reply := mock.Reply(token.Mood)

	m.mu.Lock()
	defer m.mu.Unlock()
	conv := m.findLocked(token.ConversationID)
	if conv == nil {
		return nil
	}
	now := m.now()
	conv.Messages = append(conv.Messages, Message{
		ID:        m.newID(),
		Role:      RoleAssistant,
		Content:   reply,
		Timestamp: now,
	})
	conv.UpdatedAt = now
	return nil
}

// rollback restores a conversation to its pre-send snapshot. The optimistic
// user message is discarded entirely.
func (m *Manager) rollback(token *SendToken) {
	m.mu.Lock()
	defer m.mu.Unlock()
	conv := m.findLocked(token.ConversationID)
	if conv == nil {
		return
	}
	conv.Title = token.snapshot.title
	conv.Messages = token.snapshot.messages
	conv.UpdatedAt = token.snapshot.updatedAt
}

// Delete removes a conversation. Remote deletions go to the server first and
// leave state untouched on failure. When the selected conversation goes away,
// the new head of the list (if any) becomes current.
func (m *Manager) Delete(ctx context.Context, id string) error {
	if !IsLocalID(id) {
		m.mu.Lock()
		authed := m.authenticated
		m.mu.Unlock()
		if !authed {
			return nil
		}
		sid, err := remoteID(id)
		if err != nil {
			return errors.E(errors.Op("chat.Delete"), errors.KindInvalid, err)
		}
		if err := m.store.DeleteSession(ctx, sid); err != nil {
			m.log.Error("deleting session failed", "conversationID", id, "error", err)
			return err
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	idx := -1
	for i, c := range m.conversations {
		if c.ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil
	}
	m.conversations = append(m.conversations[:idx], m.conversations[idx+1:]...)

	if m.currentID == id {
		m.currentID = ""
		if len(m.conversations) > 0 {
			m.currentID = m.conversations[0].ID
		}
	}
	m.log.Debug("deleted conversation", "conversationID", id)
	return nil
}

func (m *Manager) setLoading(v bool) {
	m.mu.Lock()
	m.loading = v
	m.mu.Unlock()
}

func (m *Manager) findLocked(id string) *Conversation {
	if id == "" {
		return nil
	}
	for _, c := range m.conversations {
		if c.ID == id {
			return c
		}
	}
	return nil
}

// uniqueLocalIDLocked mints a local id, bumping the timestamp if two creates
// land in the same millisecond.
func (m *Manager) uniqueLocalIDLocked(now time.Time) string {
	id := newLocalID(now)
	for m.findLocked(id) != nil {
		now = now.Add(time.Millisecond)
		id = newLocalID(now)
	}
	return id
}
