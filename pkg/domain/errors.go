package domain

import "errors"

// ErrSessionNotFound is returned by stores when a session key has no state.
var ErrSessionNotFound = errors.New("session not found")

// User-recoverable error kinds. The bot maps each of these to a corrective
// reply; none of them is fatal to the process, and none of them leaves a
// session partially mutated.
var (
	// ErrNoActiveSession signals an event that requires an operation in progress.
	ErrNoActiveSession = errors.New("no active operation")

	// ErrMalformedJSON signals uploaded content that does not parse as JSON.
	ErrMalformedJSON = errors.New("malformed JSON")

	// ErrInvalidRootShape signals uploaded JSON whose root is not an array.
	ErrInvalidRootShape = errors.New("root of uploaded JSON is not a list")

	// ErrUnexpectedInputKind signals a file during a text step or vice versa.
	ErrUnexpectedInputKind = errors.New("unexpected input kind for current step")

	// ErrNoMainData signals a subtract finalize before the main file arrived.
	ErrNoMainData = errors.New("no main file uploaded")

	// ErrEmptyInput signals a finalize or split over zero collected elements.
	ErrEmptyInput = errors.New("no data collected")

	// ErrEmptyFindText signals an empty or whitespace-only find string.
	ErrEmptyFindText = errors.New("find text is empty")

	// ErrInvalidSplitCount signals a missing, non-integer or non-positive part count.
	ErrInvalidSplitCount = errors.New("invalid split count")
)
