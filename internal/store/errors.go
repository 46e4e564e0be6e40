package store

import "errors"

// ErrKeyError is returned by Get and SetDeadline when the key is absent
// or has lazily expired.
var ErrKeyError = errors.New("key error: no such key")
