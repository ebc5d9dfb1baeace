package api

import "time"

// Session is a server-backed conversation.
type Session struct {
	ID        int       `json:"id"`
	Title     string    `json:"title"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Message is a single turn within a session.
type Message struct {
	ID            int       `json:"id"`
	Content       string    `json:"content"`
	IsUserMessage bool      `json:"is_user_message"`
	Timestamp     time.Time `json:"timestamp"`
}

// SendResult is the server's answer to posting a user message: the stored
// user message plus the assistant reply generated for it.
type SendResult struct {
	UserMessage      Message `json:"user_message"`
	AssistantMessage Message `json:"assistant_message"`
}

type createSessionRequest struct {
	Title string `json:"title,omitempty"`
}

type sendMessageRequest struct {
	Content string `json:"content"`
	Mood    string `json:"mood,omitempty"`
}

type titleResponse struct {
	Title string `json:"title"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
	// Some handlers return a bare detail string instead.
	Detail string `json:"detail"`
}

func (e *errorResponse) message() string {
	if e.Error.Message != "" {
		return e.Error.Message
	}
	return e.Detail
}
