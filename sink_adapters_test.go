package libemit

import (
	"bytes"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestZerologSink(t *testing.T) {
	var buf bytes.Buffer
	sink := NewZerologSink(zerolog.New(&buf))

	sink.Log(DiagnosticEntry{Op: OpEmit, Key: "event", Payload: "data"})

	out := buf.String()
	assert.Contains(t, out, `"eventType":"emit"`)
	assert.Contains(t, out, `"eventName":"event"`)
	assert.Contains(t, out, `"payload":"data"`)
}

func TestZapSink(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	sink := NewZapSink(zap.New(core))

	sink.Log(DiagnosticEntry{Op: OpSubscribe, Key: "event"})

	entries := logs.All()
	require.Len(t, entries, 1)

	fields := entries[0].ContextMap()
	assert.Equal(t, "subscribe", fields["eventType"])
	assert.Equal(t, "event", fields["eventName"])
}

func TestZapSinkNilLogger(t *testing.T) {
	sink := NewZapSink(nil)
	// Falls back to a nop logger, must not panic.
	sink.Log(DiagnosticEntry{Op: OpEmit, Key: "event"})
}

func TestEmitterWithZerologSink(t *testing.T) {
	var buf bytes.Buffer
	emitter := NewEventEmitter(WithSink(NewZerologSink(zerolog.New(&buf))))

	emitter.Subscribe("event", func(any) any { return nil })
	emitter.Publish("event", "data")

	out := buf.String()
	assert.Contains(t, out, `"eventType":"subscribe"`)
	assert.Contains(t, out, `"eventType":"emit"`)
	assert.Contains(t, out, `"eventType":"invoke"`)
}
