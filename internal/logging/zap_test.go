package logging

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew_ZapFormat_WritesKeyValues(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, FormatZap, "debug")
	require.NoError(t, err)

	log.With("component", "session").Warn(context.Background(), "logout failed", "key", "handylink_auth_token")

	out := buf.String()
	require.Contains(t, out, "WARN")
	require.Contains(t, out, "logout failed")
	require.Contains(t, out, "component")
	require.Contains(t, out, "handylink_auth_token")
}

func TestNew_ZapFormat_RespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, FormatZap, "warn")
	require.NoError(t, err)

	log.Info(context.Background(), "hidden")
	log.Error(context.Background(), "shown")

	out := buf.String()
	require.False(t, strings.Contains(out, "hidden"))
	require.Contains(t, out, "shown")
}

func TestNew_JSONFormat(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, FormatJSON, "info")
	require.NoError(t, err)

	log.Info(context.Background(), "hello", "k", "v")
	require.Contains(t, buf.String(), `"msg":"hello"`)
	require.Contains(t, buf.String(), `"k":"v"`)
}

func TestNew_UnknownFormat(t *testing.T) {
	_, err := New(&bytes.Buffer{}, "xml", "info")
	require.Error(t, err)
}

func TestNop_DoesNotPanic(t *testing.T) {
	l := Nop().With("a", 1)
	ctx := context.Background()
	l.Debug(ctx, "x")
	l.Info(ctx, "x")
	l.Warn(ctx, "x")
	l.Error(ctx, "x")
}

func TestNew_ZapFormat_EmitsContextFields(t *testing.T) {
	var buf bytes.Buffer
	log, err := New(&buf, FormatZap, "debug")
	require.NoError(t, err)

	ctx := WithFields(context.Background(), "request_id", "r-9")
	log.Debug(ctx, "request done", "status", 401)

	out := buf.String()
	require.Contains(t, out, "request_id")
	require.Contains(t, out, "r-9")
	require.Contains(t, out, "401")
}
