package kvstore

import "errors"

// ErrKeyNotFound is returned by Read when no blob exists under the key.
var ErrKeyNotFound = errors.New("key not found")

// ErrStoreClosed is returned by operations on a closed store.
var ErrStoreClosed = errors.New("store is closed")
