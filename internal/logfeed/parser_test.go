package logfeed

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	type tc struct {
		line    string
		level   slog.Level
		message string
		attrs   string
	}

	cases := []tc{
		{
			line:    `time=2026-08-25T14:03:02.123+02:00 level=INFO msg="posted notification" kind=toast pending=2`,
			level:   slog.LevelInfo,
			message: "posted notification",
			attrs:   "kind=toast pending=2",
		}, {
			line:    `time=2026-08-25T14:03:05.000+02:00 level=WARN msg=backpressure dropped=3`,
			level:   slog.LevelWarn,
			message: "backpressure",
			attrs:   "dropped=3",
		}, {
			line:    `time=2026-08-25T14:03:06.000+02:00 level=ERROR msg="write failed" error="disk full: \"/tmp\""`,
			level:   slog.LevelError,
			message: "write failed",
			attrs:   `error=disk full: "/tmp"`,
		}, {
			line:    `time=2026-08-25T14:03:07.000+02:00 level=DEBUG msg=tick`,
			level:   slog.LevelDebug,
			message: "tick",
		},
	}

	for index, testCase := range cases {
		entry, err := Parse(testCase.line)
		require.NoError(t, err, "case %d", index)
		require.Equal(t, testCase.level, entry.Level, "case %d", index)
		require.Equal(t, testCase.message, entry.Message, "case %d", index)
		require.Equal(t, testCase.attrs, entry.Attrs, "case %d", index)
		require.False(t, entry.Time.IsZero(), "case %d", index)
		require.Equal(t, testCase.line, entry.Raw, "case %d", index)
	}
}

func TestParseRejectsUnstructuredLines(t *testing.T) {
	for _, line := range []string{"", "plain text line", "key=value only"} {
		_, err := Parse(line)
		require.Error(t, err, line)
	}
}

func TestParseRoundTripsRealHandlerOutput(t *testing.T) {
	var buf bytes.Buffer

	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	logger.Info("posted notification", slog.String("kind", "snack"), slog.Int("pending", 1))

	line := strings.TrimSpace(buf.String())
	entry, err := Parse(line)
	require.NoError(t, err)
	require.Equal(t, slog.LevelInfo, entry.Level)
	require.Equal(t, "posted notification", entry.Message)
	require.Contains(t, entry.Attrs, "kind=snack")
	require.Contains(t, entry.Attrs, "pending=1")
	require.WithinDuration(t, time.Now(), entry.Time, time.Minute)
}
