package store

import "errors"

// ErrNotFound indicates an operation referenced an id no stored item has.
// Deletes treat it as a no-op; updates and toggles abort.
var ErrNotFound = errors.New("item not found")
