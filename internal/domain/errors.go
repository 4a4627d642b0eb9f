package domain

import "errors"

// Sentinel errors for the workspace pipelines. All of them are recovered at
// the pipeline boundary and surfaced as dismissible messages; none of them
// leaves catalog or session state corrupted.
var (
	// ErrQuotaExceeded means the session already holds the maximum number of
	// documents. No network call is made when this is returned.
	ErrQuotaExceeded = errors.New("document quota exceeded")

	// ErrBusy means a second operation was attempted against a single-flight
	// pipeline while the first was still in flight.
	ErrBusy = errors.New("operation already in flight")

	// ErrNoDocumentSelected means a question was submitted without a
	// selected document.
	ErrNoDocumentSelected = errors.New("no document selected")

	// ErrEmptyQuestion means the submitted question was empty after trimming.
	ErrEmptyQuestion = errors.New("question is empty")
)
