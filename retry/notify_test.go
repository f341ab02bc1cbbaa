package retry

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogNotifier(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))

	n := NewLogNotifier(logger)
	ctx := context.Background()

	n.Notify(ctx, Event{
		Signal:    SignalThrottle,
		Operation: "fetch",
		Delay:     50 * time.Millisecond,
		Err:       errors.New("connection lost"),
	})
	n.Notify(ctx, Event{
		Signal:    SignalRetries,
		Operation: "fetch",
		Attempts:  2,
	})

	out := buf.String()
	assert.Contains(t, out, "retrying after failure")
	assert.Contains(t, out, "operation=fetch")
	assert.Contains(t, out, "connection lost")
	assert.Contains(t, out, "operation succeeded")
	assert.Contains(t, out, "attempts=2")
}

func TestNotifierFunc(t *testing.T) {
	var got []Event
	n := NotifierFunc(func(_ context.Context, e Event) {
		got = append(got, e)
	})

	n.Notify(context.Background(), Event{Signal: SignalRetries, Attempts: 1})
	require.Len(t, got, 1)
	assert.Equal(t, SignalRetries, got[0].Signal)
}
