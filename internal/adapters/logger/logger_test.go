package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/npmbridge/internal/adapters/logger"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger writing plain text into a buffer.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Info(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Info("installing npm dependencies for vendor/acme/widgets")

	assert.Equal(t, "installing npm dependencies for vendor/acme/widgets\n", buf.String())
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Warn("ignoring unreadable marker")

	assert.Equal(t, "! ignoring unreadable marker\n", buf.String())
}

func TestLogger_Error_ZerrChain(t *testing.T) {
	lg, buf := newTestLogger(t)

	err := zerr.Wrap(zerr.Wrap(errors.New("exit status 1"), "npm install failed"), "npm dependency run failed")
	lg.Error(err)

	g := goldie.New(t)
	g.Assert(t, "error_chain", buf.Bytes())
}

func TestLogger_Error_StdlibChain(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.Error(fmt.Errorf("outer: %w", errors.New("inner")))

	assert.Equal(t, "✗ Error: outer: inner\n", buf.String())
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_SetJSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	lg.Info("json message")
	lg.Error(errors.New("boom"))

	lines := bytes.Split(bytes.TrimSpace(buf.Bytes()), []byte("\n"))
	require.Len(t, lines, 2)

	var info map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &info))
	assert.Equal(t, "INFO", info["level"])
	assert.Equal(t, "json message", info["msg"])

	var failure map[string]any
	require.NoError(t, json.Unmarshal(lines[1], &failure))
	assert.Equal(t, "ERROR", failure["level"])
	assert.Equal(t, "boom", failure["msg"])
}

func TestLogger_SetJSON_Metadata(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)

	err := zerr.With(zerr.Wrap(errors.New("exit status 1"), "npm install failed"), "location", "vendor/acme/widgets")
	lg.Error(zerr.Wrap(err, "npm dependency run failed"))

	var record map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &record))
	assert.Equal(t, "npm dependency run failed: npm install failed: exit status 1", record["msg"])
	assert.Equal(t, "vendor/acme/widgets", record["location"])
}

func TestLogger_FormatSwitching(t *testing.T) {
	lg, buf := newTestLogger(t)

	lg.SetJSON(true)
	lg.SetJSON(false)
	lg.Info("plain again")

	assert.Equal(t, "plain again\n", buf.String())
}

func TestLogger_SetOutput_KeepsJSON(t *testing.T) {
	lg, _ := newTestLogger(t)
	lg.SetJSON(true)

	other := &bytes.Buffer{}
	lg.SetOutput(other)
	lg.Info("moved")

	assert.Contains(t, other.String(), `"msg":"moved"`)
}

func TestFormatChain(t *testing.T) {
	tests := []struct {
		name     string
		messages []string
		want     string
	}{
		{name: "single", messages: []string{"single error"}, want: "Error: single error"},
		{
			name:     "caused by",
			messages: []string{"outer", "inner"},
			want:     "Error: outer\n\n  Caused by:\n    → inner",
		},
		{
			name:     "multiline",
			messages: []string{"line1\nline2", "cause1\ncause2"},
			want:     "Error: line1\n       line2\n\n  Caused by:\n    → cause1\n      cause2",
		},
		{name: "empty", messages: nil, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatChain(tt.messages))
		})
	}
}

func TestCollectMessages(t *testing.T) {
	err := zerr.Wrap(zerr.Wrap(errors.New("root cause"), "middle layer"), "outer layer")

	assert.Equal(t, []string{"outer layer", "middle layer", "root cause"}, logger.CollectMessages(err))
	assert.Equal(t, []string{"plain"}, logger.CollectMessages(errors.New("plain")))

	withMeta := zerr.With(errors.New("exit status 1"), "location", "vendor/acme/widgets")
	assert.Equal(t, []string{"npm install failed", "exit status 1"},
		logger.CollectMessages(zerr.Wrap(withMeta, "npm install failed")))
}

func TestLogger_ConcurrentAccess(t *testing.T) {
	lg, _ := newTestLogger(t)

	var wg sync.WaitGroup
	for i := range 10 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if i%2 == 0 {
				lg.SetJSON(i%4 == 0)
			}
			lg.Info("concurrent")
		}()
	}
	wg.Wait()
}
