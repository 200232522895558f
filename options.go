package libemit

import (
	"io"
)

// Options configures a new emitter.
type Options struct {
	// Debug toggles diagnostic logging. Enabled by default; when disabled the
	// emitter carries a no-op sink regardless of Sink and Writer.
	Debug bool
	// Sink receives diagnostic entries. Defaults to a ConsoleSink.
	Sink DiagnosticSink
	// Writer is where the default ConsoleSink writes. Ignored when Sink is
	// set. Defaults to stderr.
	Writer io.Writer
}

type Option func(*Options)

func WithDebug(debug bool) Option {
	return func(o *Options) {
		o.Debug = debug
	}
}

func WithSink(sink DiagnosticSink) Option {
	return func(o *Options) {
		o.Sink = sink
	}
}

func WithWriter(w io.Writer) Option {
	return func(o *Options) {
		o.Writer = w
	}
}
