package libemit

import (
	"sync"

	"github.com/stretchr/testify/mock"
)

type mockSink struct {
	mock.Mock
}

func (m *mockSink) Log(entry DiagnosticEntry) {
	m.Called(entry)
}

// recordingSink captures entries in order for assertions on diagnostic flow.
type recordingSink struct {
	mu      sync.Mutex
	entries []DiagnosticEntry
}

func (s *recordingSink) Log(entry DiagnosticEntry) {
	s.mu.Lock()
	s.entries = append(s.entries, entry)
	s.mu.Unlock()
}

func (s *recordingSink) Entries() []DiagnosticEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]DiagnosticEntry, len(s.entries))
	copy(out, s.entries)
	return out
}
