package storage

import "errors"

// ErrMissingReference is returned when an operation names a risid with
// no corresponding tag record.
var ErrMissingReference = errors.New("reference not found")

// ErrMissingDocument is returned when an operation names a document id
// with no corresponding source row.
var ErrMissingDocument = errors.New("document not found")
