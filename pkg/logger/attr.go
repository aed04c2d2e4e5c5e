package logger

import (
	"log/slog"
	"strconv"
)

// Group creates a slog group attribute from the provided attributes.
func Group(name string, attrs ...slog.Attr) slog.Attr {
	return slog.Attr{Key: name, Value: slog.GroupValue(attrs...)}
}

// Errors groups multiple non-nil errors under the key "errors".
// If all errors are nil, it returns an empty Attr.
func Errors(errs ...error) slog.Attr {
	as := make([]slog.Attr, 0, len(errs))
	for i, err := range errs {
		if err != nil {
			as = append(as, slog.Any(strconv.Itoa(i), err))
		}
	}
	if len(as) == 0 {
		return slog.Attr{}
	}
	return slog.Attr{Key: "errors", Value: slog.GroupValue(as...)}
}

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// InstanceID records the stateful instance identifier under the key "instance_id".
// If id is nil, it returns an empty Attr.
func InstanceID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("instance_id", id)
}

// Profile records the state profile name under the key "profile".
func Profile(name string) slog.Attr {
	return slog.String("profile", name)
}

// State records a state label under the key "state".
func State(name string) slog.Attr {
	return slog.String("state", name)
}

// Event records the event name under the key "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}

// Transition groups the source and destination of a state change under "transition".
func Transition(from, to string) slog.Attr {
	return Group("transition", slog.String("from", from), slog.String("to", to))
}

// Meaning records a state meaning under the key "meaning".
func Meaning(name string) slog.Attr {
	return slog.String("meaning", name)
}
