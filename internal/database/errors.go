package database

import "errors"

// ErrNotFound is returned when an operation addresses an id with no stored record.
var ErrNotFound = errors.New("record not found")

// ErrConflict is returned when a write would violate a uniqueness constraint.
var ErrConflict = errors.New("record already exists")
