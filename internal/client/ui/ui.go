// Package ui defines what controllers need from the screen: transient
// notices and route changes.
package ui

import "errors"

// Routes of the client.
const (
	RouteHome   = "/"
	RouteAuth   = "/auth"
	RouteVerify = "/verify-otp"
	RouteOrder  = "/order"
)

type Level int

const (
	LevelInfo Level = iota
	LevelSuccess
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelSuccess:
		return "success"
	case LevelError:
		return "error"
	default:
		return "info"
	}
}

// Notice is a dismissable message shown to the user.
type Notice struct {
	Level   Level
	Title   string
	Message string
}

type Notifier interface {
	Notify(n Notice)
}

type Navigator interface {
	Navigate(route string)
}

// UserMessage returns the human-readable text carried by err, if any.
// Errors expose it by implementing UserMessage() string.
func UserMessage(err error) (string, bool) {
	var m interface{ UserMessage() string }
	if errors.As(err, &m) && m.UserMessage() != "" {
		return m.UserMessage(), true
	}
	return "", false
}
