package libemit

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/davecgh/go-spew/spew"
)

// ConsoleSink writes human-readable diagnostic groupings: a header line
//
//	[HH:MM:SS][eventType: <op>][eventName: <key>]
//
// followed by an indented payload line. Textual payloads that parse as JSON
// are pretty-printed; anything else falls back to its raw rendering.
type ConsoleSink struct {
	writer io.Writer
	now    func() time.Time
}

// NewConsoleSink creates a sink writing to w. A nil writer defaults to stderr.
func NewConsoleSink(w io.Writer) *ConsoleSink {
	if w == nil {
		w = os.Stderr
	}
	return &ConsoleSink{
		writer: w,
		now:    time.Now,
	}
}

func (s *ConsoleSink) Log(entry DiagnosticEntry) {
	fmt.Fprintf(s.writer, "[%s][eventType: %s][eventName: %v]\n",
		s.now().Format("15:04:05"), entry.Op, entry.Key)
	fmt.Fprintf(s.writer, "  payload: %s\n", renderPayload(entry.Payload))
}

// renderPayload renders an entry payload for the console. Absent payloads
// render empty, textual payloads are tentatively parsed as JSON, and
// everything else goes through spew so nested structs stay legible.
func renderPayload(payload any) string {
	if payload == nil {
		return ""
	}

	switch v := payload.(type) {
	case string:
		return renderText(v)
	case []byte:
		return renderText(string(v))
	default:
		return spew.Sprintf("%+v", v)
	}
}

func renderText(text string) string {
	var parsed any
	if err := json.Unmarshal([]byte(text), &parsed); err != nil {
		return text
	}

	pretty, err := json.MarshalIndent(parsed, "  ", "  ")
	if err != nil {
		return text
	}
	return string(pretty)
}
