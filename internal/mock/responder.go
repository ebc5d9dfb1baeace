// Package mock synthesizes assistant replies for signed-out conversations.
// Replies are canned strings keyed by mood; no model is involved.
package mock

import (
	"math/rand"
	"time"
)

// Mood names understood by the responder and the backend.
const (
	DefaultMood      = "default"
	MoodFunny        = "funny"
	MoodRoasting     = "roasting"
	MoodPrecise      = "precise"
	MoodIntellectual = "intellectual"
)

// Moods lists the selectable moods in display order.
var Moods = []string{DefaultMood, MoodFunny, MoodRoasting, MoodPrecise, MoodIntellectual}

// Reply delay bounds for the signed-out path. A real server takes a moment
// to answer; the fake one should too, or the UI feels wrong.
const (
	minReplyDelay = 1 * time.Second
	maxReplyDelay = 3 * time.Second
)

// responses maps each mood to its canned reply pool.
var responses = map[string][]string{
	DefaultMood: {
		"That's an interesting point. Sign in to get a full AI response - for now, here's a friendly placeholder!",
		"I hear you! This is an offline reply; sign in and I'll give you the real thing.",
		"Good question. I'd love to dig into that properly once you're signed in.",
		"Thanks for sharing that. Offline mode keeps things simple, but I'm listening!",
	},
	MoodFunny: {
		"I'd tell you a joke about offline mode, but you had to be there. 😄",
		"Ha! That's what she said. (Sorry, offline me has limited material.)",
		"My comedy circuits are in airplane mode - sign in for the premium jokes! 🎭",
		"Why did the chat message cross the network? It didn't - you're offline! 😆",
	},
	MoodRoasting: {
		"Oh, typing at me while signed out? Bold strategy, let's see how that works out. 🔥",
		"I'd roast that message properly, but offline me only does light toasting.",
		"You really thought the free offline tier came with premium burns? Adorable.",
		"That message was... certainly a collection of words. Sign in and I'll do it justice. 🔥",
	},
	MoodPrecise: {
		"Offline mode active. Sign in to receive a complete response.",
		"Acknowledged. Full responses require an authenticated session.",
		"Received. Note: replies in offline mode are placeholders.",
		"Confirmed. For detailed answers, authenticate first.",
	},
	MoodIntellectual: {
		"An intriguing proposition. One might argue, as Searle did of his Chinese Room, that this canned reply merely simulates understanding. 🧠",
		"Your inquiry merits deeper analysis than offline mode permits; consider this an epistemological placeholder.",
		"Fascinating. The dialectic between your message and this pre-written response raises questions about authenticity itself.",
		"A thoughtful observation. Alas, genuine scholarly engagement awaits an authenticated session.",
	},
}

// Reply returns a canned assistant reply for the given mood, selected
// uniformly at random. Unknown moods fall back to the default pool.
func Reply(mood string) string {
	pool, ok := responses[mood]
	if !ok {
		pool = responses[DefaultMood]
	}
	return pool[rand.Intn(len(pool))]
}

// ReplyDelay returns a simulated response latency, uniform between 1s and 3s.
func ReplyDelay() time.Duration {
	return minReplyDelay + time.Duration(rand.Int63n(int64(maxReplyDelay-minReplyDelay)))
}

// Responses returns a copy of the reply pool for a mood, or nil for an
// unknown mood.
func Responses(mood string) []string {
	pool, ok := responses[mood]
	if !ok {
		return nil
	}
	out := make([]string, len(pool))
	copy(out, pool)
	return out
}

// IsKnownMood reports whether the mood has its own reply pool.
func IsKnownMood(mood string) bool {
	_, ok := responses[mood]
	return ok
}
