package state

import "time"

// Level is the severity of a notification.
type Level int

const (
	LevelSuccess Level = iota
	LevelWarning
	LevelError
)

// NotificationTTL is how long a notification stays on screen.
const NotificationTTL = 4 * time.Second

// Notification is a transient message shown at the bottom of a screen.
type Notification struct {
	Text  string
	Level Level
	At    time.Time
}

// Visible reports whether the notification should still be shown at now.
func (n Notification) Visible(now time.Time) bool {
	return n.Text != "" && now.Sub(n.At) < NotificationTTL
}

// Success builds a success notification.
func Success(text string, at time.Time) Notification {
	return Notification{Text: text, Level: LevelSuccess, At: at}
}

// Warning builds a warning notification.
func Warning(text string, at time.Time) Notification {
	return Notification{Text: text, Level: LevelWarning, At: at}
}

// Failure builds an error notification.
func Failure(text string, at time.Time) Notification {
	return Notification{Text: text, Level: LevelError, At: at}
}
