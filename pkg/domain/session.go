package domain

import (
	"encoding/json"
	"strings"
)

// Mode identifies the step a session is currently in. The mode fully
// determines which Session fields are meaningful.
type Mode string

const (
	// ModeIdle is the zero value; stored sessions never carry it.
	ModeIdle Mode = "idle"

	// ModeMergeCollect accumulates files for a deduplicated merge.
	ModeMergeCollect Mode = "merge_collect"

	// ModeConcatCollect accumulates files for a plain concatenation.
	ModeConcatCollect Mode = "concat_collect"

	// ModeSplitPending waits for the single file to split into Parts chunks.
	ModeSplitPending Mode = "split_pending"

	// ModeSubtractMain waits for the main file of a subtraction.
	ModeSubtractMain Mode = "subtract_main"

	// ModeSubtractFilter accumulates filter files of a subtraction.
	ModeSubtractFilter Mode = "subtract_filter"

	// ModeReplaceFind waits for the find text of a replacement.
	ModeReplaceFind Mode = "replace_find"

	// ModeReplaceText waits for the replacement text.
	ModeReplaceText Mode = "replace_text"

	// ModeReplaceReady waits for the single file to run the replacement on.
	ModeReplaceReady Mode = "replace_ready"
)

// Session is the state of one chat's in-progress operation. It is created
// by a mode-initiating command, mutated by file and text events, and
// removed on completion or cancellation. It serializes to JSON for the
// redis and file stores.
type Session struct {
	Mode Mode `json:"mode"`

	// Items is the accumulated primary list: deduped output for merge,
	// raw concatenation for concat, the main list for subtract.
	Items List `json:"items,omitempty"`

	// Seen holds the normalized keys already present in Items (merge only).
	// No omitempty: an empty set must survive store round trips as a map,
	// not collapse to nil.
	Seen KeySet `json:"seen"`

	// Filter holds the normalized keys to subtract (subtract only).
	Filter KeySet `json:"filter"`

	// Parts is the requested part count (split only).
	Parts int `json:"parts,omitempty"`

	Find        string `json:"find,omitempty"`
	Replacement string `json:"replacement,omitempty"`
}

// NewSession creates a fresh session in the given mode. Construction from
// scratch is what guarantees no stale fields leak from a prior operation.
func NewSession(mode Mode) *Session {
	s := &Session{Mode: mode}
	switch mode {
	case ModeMergeCollect:
		s.Seen = NewKeySet()
	case ModeSubtractMain:
		s.Filter = NewKeySet()
	}
	return s
}

// CollectsFiles reports whether the mode accepts a document upload.
func (s *Session) CollectsFiles() bool {
	switch s.Mode {
	case ModeMergeCollect, ModeConcatCollect, ModeSplitPending,
		ModeSubtractMain, ModeSubtractFilter, ModeReplaceReady:
		return true
	}
	return false
}

// CollectsText reports whether the mode accepts a plain text message.
func (s *Session) CollectsText() bool {
	return s.Mode == ModeReplaceFind || s.Mode == ModeReplaceText
}

// IngestText stores a text input in the field the current mode collects and
// advances the mode. An empty or whitespace-only find string is rejected
// with ErrEmptyFindText before the file-upload step, since it would match
// everywhere. Text in any non-text mode is ErrUnexpectedInputKind.
func (s *Session) IngestText(text string) error {
	switch s.Mode {
	case ModeReplaceFind:
		if strings.TrimSpace(text) == "" {
			return ErrEmptyFindText
		}
		s.Find = text
		s.Mode = ModeReplaceText
		return nil
	case ModeReplaceText:
		s.Replacement = text
		s.Mode = ModeReplaceReady
		return nil
	default:
		return ErrUnexpectedInputKind
	}
}

// Clone returns a deep copy via JSON round trip, mirroring what persistence
// does. Stores use it to keep callers from mutating stored state by pointer.
func (s *Session) Clone() *Session {
	data, err := json.Marshal(s)
	if err != nil {
		copied := *s
		return &copied
	}
	var out Session
	if err := json.Unmarshal(data, &out); err != nil {
		copied := *s
		return &copied
	}
	return &out
}
