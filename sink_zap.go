package libemit

import (
	"go.uber.org/zap"
)

// ZapSink forwards diagnostic entries to a zap logger at debug level.
type ZapSink struct {
	logger *zap.Logger
}

func NewZapSink(logger *zap.Logger) *ZapSink {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ZapSink{logger: logger}
}

func (s *ZapSink) Log(entry DiagnosticEntry) {
	s.logger.Debug("emitter event",
		zap.String("eventType", entry.Op),
		zap.Any("eventName", entry.Key),
		zap.Any("payload", entry.Payload),
	)
}
