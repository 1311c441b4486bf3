package repository

import "errors"

// ErrNotFound is returned when a lookup matches no row. Callers map it to a
// descriptive business-rule failure at the handler boundary.
var ErrNotFound = errors.New("record not found")
