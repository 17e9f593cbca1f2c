package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// RequestID records the request identifier under the key "request_id".
// If id is nil, it returns an empty Attr.
func RequestID(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("request_id", id)
}

// Code records an identity code under the key "code".
// Pass a masked value; raw codes contain personal data.
func Code(masked string) slog.Attr {
	return slog.String("code", masked)
}

// State records a state code under the key "state".
func State(code string) slog.Attr {
	return slog.String("state", code)
}

// Reason records a validation reason under the key "reason".
func Reason(reason string) slog.Attr {
	return slog.String("reason", reason)
}

// Fields records the names of invalid input fields under the key "fields".
func Fields(names ...string) slog.Attr {
	return slog.Any("fields", names)
}

// Language records the negotiated message language under the key "lang".
func Language(tag string) slog.Attr {
	return slog.String("lang", tag)
}

// Duration records a duration under the key "duration".
func Duration(d any) slog.Attr {
	return slog.Any("duration", d)
}

// Component records the component name under the key "component".
func Component(name string) slog.Attr {
	return slog.String("component", name)
}

// Event records the event name under the key "event".
func Event(name string) slog.Attr {
	return slog.String("event", name)
}
