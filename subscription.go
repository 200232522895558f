package libemit

// Subscription is the token returned by Subscribe. It removes exactly its own
// registration without requiring the caller to keep the key/listener pair.
type Subscription struct {
	emitter *EventEmitter
	key     any
	fn      Listener
}

// Ready returns a channel that is already closed. Dispatch is synchronous, so
// there is nothing to wait for; the channel exists for symmetry with
// asynchronous subscription APIs.
func (s *Subscription) Ready() <-chan struct{} {
	ch := make(chan struct{})
	close(ch)
	return ch
}

// Unsubscribe removes this registration if it is still present and reports
// whether a removal happened. Removing an already-gone registration is a
// no-op returning false, never an error.
func (s *Subscription) Unsubscribe() bool {
	if s.emitter == nil {
		return false
	}

	present, err := s.emitter.HasListener(s.key, s.fn)
	if err != nil || !present {
		return false
	}

	return s.emitter.Unsubscribe(s.key, s.fn) == nil
}
