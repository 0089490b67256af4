package obs

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func captureDefault(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prev := slog.Default()
	slog.SetDefault(slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	t.Cleanup(func() { slog.SetDefault(prev) })
	return &buf
}

func TestTimeLogsSessionAndOp(t *testing.T) {
	buf := captureDefault(t)
	ctx := WithSessionID(context.Background(), "abc-123")

	var err error
	Time(ctx, "dashboard.Insert")(&err)

	assert.Contains(t, buf.String(), `"session_id":"abc-123"`)
	assert.Contains(t, buf.String(), `"op":"dashboard.Insert"`)
	assert.Contains(t, buf.String(), `"msg":"op done"`)
}

func TestTimeLogsError(t *testing.T) {
	buf := captureDefault(t)

	err := errors.New("disk full")
	Time(context.Background(), "store.Save")(&err)

	assert.Contains(t, buf.String(), `"msg":"op failed"`)
	assert.Contains(t, buf.String(), "disk full")
}

func TestSessionIDMissing(t *testing.T) {
	assert.Equal(t, "", SessionID(context.Background()))
}
