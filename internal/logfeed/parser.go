package logfeed

import (
	"errors"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

var errParseEntry = errors.New("failed to parse log entry")

// Entry is one structured line from the application log. Attrs keeps the
// key=value pairs beyond time, level and message in their logged order.
type Entry struct {
	Time    time.Time
	Level   slog.Level
	Message string
	Attrs   string
	Raw     string
}

// Parse decodes one slog text-handler line. Lines without a level and
// message are rejected so callers can fall back to raw display.
func Parse(line string) (Entry, error) {
	entry := Entry{Raw: line}

	var hasLevel, hasMessage bool

	for _, field := range splitFields(line) {
		key, value, found := strings.Cut(field, "=")
		if !found {
			continue
		}

		if len(value) > 1 && value[0] == '"' {
			if unquoted, errUnquote := strconv.Unquote(value); errUnquote == nil {
				value = unquoted
			}
		}

		switch key {
		case slog.TimeKey:
			when, errTime := time.Parse(time.RFC3339, value)
			if errTime != nil {
				return Entry{}, errors.Join(errTime, errParseEntry)
			}

			entry.Time = when
		case slog.LevelKey:
			var level slog.Level
			if errLevel := level.UnmarshalText([]byte(value)); errLevel != nil {
				return Entry{}, errors.Join(errLevel, errParseEntry)
			}

			entry.Level = level
			hasLevel = true
		case slog.MessageKey:
			entry.Message = value
			hasMessage = true
		default:
			if entry.Attrs != "" {
				entry.Attrs += " "
			}
			entry.Attrs += key + "=" + value
		}
	}

	if !hasLevel || !hasMessage {
		return Entry{}, errParseEntry
	}

	return entry, nil
}

// splitFields splits on spaces outside double quotes, honouring escaped
// quotes inside quoted values.
func splitFields(line string) []string {
	var (
		fields  []string
		current strings.Builder
		quoted  bool
		escaped bool
	)

	for _, char := range line {
		switch {
		case escaped:
			current.WriteRune(char)

			escaped = false
		case char == '\\' && quoted:
			current.WriteRune(char)

			escaped = true
		case char == '"':
			current.WriteRune(char)

			quoted = !quoted
		case char == ' ' && !quoted:
			if current.Len() > 0 {
				fields = append(fields, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(char)
		}
	}

	if current.Len() > 0 {
		fields = append(fields, current.String())
	}

	return fields
}
