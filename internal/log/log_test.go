package log

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func newTestLogger(t *testing.T, level Level) (*Logger, *bytes.Buffer) {
	t.Helper()
	prev := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = prev })

	var buf bytes.Buffer
	l := New(&buf, level)
	l.now = func() time.Time { return time.Date(2025, 12, 6, 10, 45, 0, 0, time.UTC) }
	return l, &buf
}

func TestFormat(t *testing.T) {
	l, buf := newTestLogger(t, LevelDebug)

	l.Warn(CatStore, "corrupt state", "key", "design-token-studio", "bytes", 12)
	assert.Equal(t, "2025-12-06T10:45:00 [WARN] [store] corrupt state key=design-token-studio bytes=12\n", buf.String())
}

func TestOddFields(t *testing.T) {
	l, buf := newTestLogger(t, LevelDebug)

	l.Info(CatExport, "rendered", "format")
	assert.Contains(t, buf.String(), "format=<missing>")
}

func TestMinLevel(t *testing.T) {
	l, buf := newTestLogger(t, LevelWarn)

	l.Debug(CatStore, "hidden")
	l.Info(CatStore, "hidden")
	assert.Empty(t, buf.String())

	l.ErrorErr(CatStorage, "write failed", errors.New("disk full"))
	assert.Contains(t, buf.String(), "[ERROR] [storage] write failed error=disk full")

	buf.Reset()
	l.SetMinLevel(LevelDebug)
	l.Debug(CatStore, "shown")
	assert.Contains(t, buf.String(), "shown")
}

func TestNilLoggerIsSilent(t *testing.T) {
	var l *Logger
	l.Warn(CatStore, "nothing happens")
	l.SetMinLevel(LevelDebug)
}

func TestParseLevel(t *testing.T) {
	lvl, ok := ParseLevel("DEBUG")
	assert.True(t, ok)
	assert.Equal(t, LevelDebug, lvl)

	lvl, ok = ParseLevel("warning")
	assert.True(t, ok)
	assert.Equal(t, LevelWarn, lvl)

	lvl, ok = ParseLevel("loud")
	assert.False(t, ok)
	assert.Equal(t, LevelWarn, lvl)
}
