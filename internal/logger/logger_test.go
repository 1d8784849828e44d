package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// decodeLines parses every JSON entry written to buf.
func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
		entries = append(entries, entry)
	}
	return entries
}

func resetGlobalLevel(t *testing.T) {
	t.Cleanup(func() { zerolog.SetGlobalLevel(zerolog.DebugLevel) })
}

// ── New ──

func TestNew_EntryShape(t *testing.T) {
	resetGlobalLevel(t)
	var buf bytes.Buffer

	New(&buf, "server", "debug").Info().Str("id_hex", "D09AD3").Msg("listing prepared")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 1)
	entry := entries[0]

	assert.Equal(t, "server", entry["role"])
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "listing prepared", entry["message"])
	assert.Equal(t, "D09AD3", entry["id_hex"])
	assert.NotEmpty(t, entry["time"])
	assert.Contains(t, entry["func"], "TestNew_EntryShape")
}

func TestNew_LevelFiltering(t *testing.T) {
	tests := []struct {
		level     string
		wantDebug bool
		wantWarn  bool
	}{
		{level: "debug", wantDebug: true, wantWarn: true},
		{level: "info", wantDebug: false, wantWarn: true},
		{level: "error", wantDebug: false, wantWarn: false},
		{level: "", wantDebug: true, wantWarn: true},
	}

	for _, tt := range tests {
		t.Run("level="+tt.level, func(t *testing.T) {
			resetGlobalLevel(t)
			var buf bytes.Buffer
			l := New(&buf, "server", tt.level)

			l.Debug().Msg("debug entry")
			l.Warn().Msg("warn entry")

			out := buf.String()
			assert.Equal(t, tt.wantDebug, strings.Contains(out, "debug entry"))
			assert.Equal(t, tt.wantWarn, strings.Contains(out, "warn entry"))
		})
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{in: "debug", want: zerolog.DebugLevel},
		{in: " INFO ", want: zerolog.InfoLevel},
		{in: "warn", want: zerolog.WarnLevel},
		{in: "error", want: zerolog.ErrorLevel},
		{in: "", want: zerolog.DebugLevel},
		{in: "chatty", want: zerolog.DebugLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

// ── Nop / GetChildLogger ──

func TestNop_IsDisabled(t *testing.T) {
	l := Nop()
	require.NotNil(t, l)
	assert.Equal(t, zerolog.Disabled, l.GetLevel())
}

func TestGetChildLogger_AddsFieldsWithoutTouchingParent(t *testing.T) {
	resetGlobalLevel(t)
	var buf bytes.Buffer
	parent := New(&buf, "server", "debug")

	child := parent.GetChildLogger()
	child.UpdateContext(func(c zerolog.Context) zerolog.Context {
		return c.Str("trace_id", "abc")
	})

	child.Info().Msg("from child")
	parent.Info().Msg("from parent")

	entries := decodeLines(t, &buf)
	require.Len(t, entries, 2)
	assert.Equal(t, "abc", entries[0]["trace_id"])
	assert.Equal(t, "server", entries[0]["role"])
	assert.NotContains(t, entries[1], "trace_id")
}

// ── FromContext / FromRequest ──

func TestFromContext(t *testing.T) {
	resetGlobalLevel(t)
	var buf bytes.Buffer
	ctx := New(&buf, "server", "debug").WithContext(context.Background())

	FromContext(ctx).Info().Msg("attached")
	FromContext(context.Background()).Info().Msg("detached")

	out := buf.String()
	assert.Contains(t, out, "attached")
	assert.NotContains(t, out, "detached")
}

func TestFromRequest(t *testing.T) {
	resetGlobalLevel(t)
	var buf bytes.Buffer
	l := New(&buf, "server", "debug")

	req := httptest.NewRequest("GET", "/api/version", nil)
	req = req.WithContext(l.WithContext(req.Context()))

	FromRequest(req).Info().Msg("request scoped")

	assert.Contains(t, buf.String(), "request scoped")
}
