package libemit

import (
	"github.com/rs/zerolog"
)

// ZerologSink forwards diagnostic entries to a zerolog logger at debug level,
// for callers that want emitter diagnostics merged into their structured logs
// instead of the console grouping.
type ZerologSink struct {
	logger zerolog.Logger
}

func NewZerologSink(logger zerolog.Logger) *ZerologSink {
	return &ZerologSink{logger: logger}
}

func (s *ZerologSink) Log(entry DiagnosticEntry) {
	s.logger.Debug().
		Str("eventType", entry.Op).
		Interface("eventName", entry.Key).
		Interface("payload", entry.Payload).
		Msg("emitter event")
}
