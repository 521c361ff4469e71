package log

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/YuminosukeSato/linefit/pkg/errors"
)

const (
	// ErrAttrKey is the field key errors are logged under.
	ErrAttrKey = "error"
)

// appendFields encodes slog-style alternating key/value pairs onto e. A
// leading bare error is logged under ErrAttrKey. Errors carry their
// cockroachdb stack trace and, when they implement
// zerolog.LogObjectMarshaler, their structured detail.
func appendFields(e *zerolog.Event, fields []any) *zerolog.Event {
	if e == nil {
		return nil
	}
	if len(fields) > 0 {
		if err, ok := fields[0].(error); ok {
			e = appendError(e, ErrAttrKey, err)
			fields = fields[1:]
		}
	}
	for i := 0; i < len(fields); i += 2 {
		key := fmt.Sprint(fields[i])
		if i+1 >= len(fields) {
			e = e.Str("!BADKEY", key)
			break
		}
		switch v := fields[i+1].(type) {
		case error:
			e = appendError(e, key, v)
		case float64:
			// zerolog renders NaN/Inf as strings, keeping the JSON valid.
			e = e.Float64(key, v)
		default:
			e = e.Interface(key, v)
		}
	}
	return e
}

func appendError(e *zerolog.Event, key string, err error) *zerolog.Event {
	e = e.AnErr(key, err)
	var m zerolog.LogObjectMarshaler
	if errors.As(err, &m) {
		e = e.Object(key+"_detail", m)
	}
	if stack := extractStacktrace(err); stack != "" {
		e = e.Str(StacktraceKey, stack)
	}
	return e
}

func extractStacktrace(err error) string {
	details := errors.GetSafeDetails(err)
	if len(details) > 0 {
		return details[0]
	}
	return ""
}
