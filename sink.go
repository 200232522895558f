package libemit

// Diagnostic operation tags. Every mutating emitter operation and every
// listener invocation produces one entry tagged with one of these.
const (
	OpSubscribe   = "subscribe"
	OpUnsubscribe = "unsubscribe"
	OpEmit        = "emit"
	OpInvoke      = "invoke"
)

// DiagnosticEntry is a single observability record. For OpInvoke the payload
// carries the listener's return value, which is never surfaced anywhere else.
type DiagnosticEntry struct {
	Op      string
	Key     any
	Payload any
}

// DiagnosticSink receives diagnostic entries. The emitter never inspects the
// sink's behavior, so dispatch stays pure and sinks are freely swappable.
type DiagnosticSink interface {
	Log(entry DiagnosticEntry)
}

// noopSink is installed when debug is disabled.
type noopSink struct{}

func (noopSink) Log(DiagnosticEntry) {}
