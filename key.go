package libemit

import (
	"reflect"

	"github.com/pkg/errors"
)

// validateKey enforces the event key contract: any value of string kind or
// integer kind is accepted. This covers plain strings and ints as well as
// defined constant types used as event symbols. Everything else, including
// nil, fails with ErrInvalidKeyType.
func validateKey(key any) error {
	if key == nil {
		return errors.Wrap(ErrInvalidKeyType, "nil key")
	}

	switch reflect.ValueOf(key).Kind() {
	case reflect.String,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return nil
	default:
		return errors.Wrapf(ErrInvalidKeyType, "got %T", key)
	}
}

// listenerID resolves the identity of a listener func. Func values are not
// comparable in Go, so identity is the code pointer: two references to the
// same func are one listener, two different funcs are two listeners.
// Caveat: closures produced by the same func literal share a code pointer
// and are therefore treated as the same listener.
func listenerID(fn Listener) uintptr {
	return reflect.ValueOf(fn).Pointer()
}
