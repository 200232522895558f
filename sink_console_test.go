package libemit

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func frozenConsoleSink(buf *bytes.Buffer) *ConsoleSink {
	sink := NewConsoleSink(buf)
	sink.now = func() time.Time {
		return time.Date(2024, 3, 1, 13, 37, 42, 0, time.UTC)
	}
	return sink
}

func TestConsoleSinkHeader(t *testing.T) {
	var buf bytes.Buffer
	sink := frozenConsoleSink(&buf)

	sink.Log(DiagnosticEntry{Op: OpEmit, Key: "order.created", Payload: nil})

	lines := bytes.Split(bytes.TrimRight(buf.Bytes(), "\n"), []byte("\n"))
	require.Len(t, lines, 2)
	assert.Equal(t, "[13:37:42][eventType: emit][eventName: order.created]", string(lines[0]))
	assert.Equal(t, "  payload: ", string(lines[1]))
}

func TestConsoleSinkJSONPayload(t *testing.T) {
	var buf bytes.Buffer
	sink := frozenConsoleSink(&buf)

	sink.Log(DiagnosticEntry{Op: OpEmit, Key: "event", Payload: `{"x":1}`})

	out := buf.String()
	assert.Contains(t, out, `"x": 1`, "textual JSON payloads are pretty-printed")
}

func TestConsoleSinkRawTextFallback(t *testing.T) {
	var buf bytes.Buffer
	sink := frozenConsoleSink(&buf)

	sink.Log(DiagnosticEntry{Op: OpEmit, Key: "event", Payload: "not json at all"})

	assert.Contains(t, buf.String(), "payload: not json at all")
}

func TestConsoleSinkStructPayload(t *testing.T) {
	var buf bytes.Buffer
	sink := frozenConsoleSink(&buf)

	type order struct {
		ID    string
		Total int
	}
	sink.Log(DiagnosticEntry{Op: OpEmit, Key: "event", Payload: order{ID: "abc", Total: 3}})

	out := buf.String()
	assert.Contains(t, out, "abc")
	assert.Contains(t, out, "3")
}

func TestRenderPayload(t *testing.T) {
	tests := []struct {
		name    string
		payload any
		want    string
	}{
		{"absent", nil, ""},
		{"plain text", "hello", "hello"},
		{"bytes", []byte("hello"), "hello"},
		{"json number", "42", "42"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, renderPayload(tt.payload))
		})
	}
}
