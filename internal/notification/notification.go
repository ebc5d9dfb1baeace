// Package notification provides cross-platform desktop notifications.
// It uses the beeep library to send notifications on macOS, Linux, and Windows.
package notification

import (
	"github.com/gen2brain/beeep"

	"github.com/banterhq/banter/internal/logger"
)

// notifyFunc matches beeep.Notify, replaceable for tests.
type notifyFunc func(title, message, icon string) error

// beeepNotify adapts beeep.Notify (whose icon parameter is `any` as of
// beeep v0.11) to the string-icon notifyFunc signature.
func beeepNotify(title, message, icon string) error {
	return beeep.Notify(title, message, icon)
}

var notifier notifyFunc = beeepNotify

// SetNotifier replaces the delivery function. Tests use this to avoid
// sending real desktop notifications.
func SetNotifier(fn func(title, message, icon string) error) {
	notifier = fn
}

// ResetNotifier restores the default beeep-backed delivery.
func ResetNotifier() {
	notifier = beeepNotify
}

// Send sends a desktop notification with the given title and message.
// On macOS, it uses terminal-notifier or AppleScript.
// On Linux, it uses D-Bus or notify-send.
// On Windows, it uses the Windows Runtime COM API.
func Send(title, message string) error {
	log := logger.WithComponent("notification")
	// Empty icon string, beeep picks platform defaults
	err := notifier(title, message, "")
	if err != nil {
		log.Warn("notification delivery failed", "error", err)
	}
	return err
}

// ReplyReceived announces an assistant reply that arrived while the
// terminal was not focused.
func ReplyReceived(conversationTitle string) error {
	return Send("Banter", "New reply in "+conversationTitle)
}
