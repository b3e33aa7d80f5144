// Package notify provides desktop notifications via D-Bus.
package notify

import (
	"errors"
	"fmt"
)

// Urgency is the freedesktop notification urgency level.
type Urgency byte

const (
	UrgencyLow      Urgency = 0
	UrgencyNormal   Urgency = 1
	UrgencyCritical Urgency = 2
)

// failureTimeout is how long fetch failure notifications stay up, in ms.
const failureTimeout = 8000

// Notification contains data for a desktop notification.
type Notification struct {
	Title      string  // Summary text (required)
	Body       string  // Body text (optional, supports basic markup)
	Icon       string  // Path to image file or icon name (optional)
	Timeout    int32   // ms, -1 = server default, 0 = never expire
	ReplacesID uint32  // 0 = new notification, >0 = replace existing
	Urgency    Urgency // Low, Normal, Critical
	Category   string  // freedesktop category, e.g. "network.error"
}

// Notifier sends desktop notifications.
type Notifier interface {
	// Notify sends a notification and returns its ID.
	// Returns 0 and nil error if notifications are disabled or unavailable.
	Notify(n Notification) (uint32, error)
	// Close closes a notification by ID.
	Close(id uint32) error
}

// FetchFailure builds the notification sent when a search stops early.
func FetchFailure(query string, kept int, err error) Notification {
	body := fmt.Sprintf("%q: %s", query, rootCause(err))
	if kept > 0 {
		body += fmt.Sprintf("\nShowing the %d images received before the error.", kept)
	}
	return Notification{
		Title:    "Image search failed",
		Body:     body,
		Icon:     "dialog-warning",
		Timeout:  failureTimeout,
		Urgency:  UrgencyNormal,
		Category: "network.error",
	}
}

func rootCause(err error) string {
	if err == nil {
		return "unknown error"
	}
	for {
		next := errors.Unwrap(err)
		if next == nil {
			return err.Error()
		}
		err = next
	}
}

// Disabled returns a notifier that drops everything.
func Disabled() Notifier {
	return stubNotifier{}
}

type stubNotifier struct{}

func (stubNotifier) Notify(_ Notification) (uint32, error) {
	return 0, nil
}

func (stubNotifier) Close(_ uint32) error {
	return nil
}
