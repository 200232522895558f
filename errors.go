package libemit

import (
	"github.com/pkg/errors"
)

var (
	// ErrInvalidKeyType rejects event keys that are not of a string or
	// integer kind.
	ErrInvalidKeyType = errors.New("event key must be of string or integer kind")
	// ErrInvalidListenerType rejects nil listener funcs.
	ErrInvalidListenerType = errors.New("listener must be a non-nil func")
	// ErrUnknownKey is returned by Unsubscribe for a key with no registrations.
	ErrUnknownKey = errors.New("no listeners registered for key")
	// ErrUnknownListener is returned by Unsubscribe for a listener with no
	// recorded registration.
	ErrUnknownListener = errors.New("listener has no active registration")
)
