package common

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSetupLogger(t *testing.T) {
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })

	for _, format := range []string{"json", "console", "unknown"} {
		require.NoError(t, SetupLogger(slog.LevelInfo, format))
	}
}

func TestLogHelpers(t *testing.T) {
	var buf bytes.Buffer
	prev := slog.Default()
	t.Cleanup(func() { slog.SetDefault(prev) })
	slog.SetDefault(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))

	LogInfo("verification complete", Fields{"events": 3})
	LogDebug("lifecycle transition", Fields{"state": "created"})
	LogError(errors.New("boom"), "transition failed", Fields{"date": "2026-01-01"})

	out := buf.String()
	assert.Contains(t, out, "verification complete")
	assert.Contains(t, out, "events=3")
	assert.Contains(t, out, "lifecycle transition")
	assert.Contains(t, out, "state=created")
	assert.Contains(t, out, "transition failed")
	assert.Contains(t, out, "error=boom")
}
