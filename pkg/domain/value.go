package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Kind tags the JSON variant of a Value.
type Kind uint8

const (
	KindNull Kind = iota
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	}
	return "invalid"
}

// Value is a single JSON list element, kept as its raw bytes so that object
// member order and number formatting survive a transform round trip.
// A Value produced by DecodeList is always valid JSON.
type Value []byte

// Kind reports the JSON variant of the value based on its first
// significant byte. Every transform switches exhaustively on this.
func (v Value) Kind() Kind {
	for _, c := range v {
		switch {
		case c == ' ' || c == '\t' || c == '\n' || c == '\r':
			continue
		case c == '{':
			return KindObject
		case c == '[':
			return KindArray
		case c == '"':
			return KindString
		case c == 't' || c == 'f':
			return KindBool
		case c == 'n':
			return KindNull
		default:
			return KindNumber
		}
	}
	return KindNull
}

// IsCompound reports whether the value is an array or an object.
func (v Value) IsCompound() bool {
	k := v.Kind()
	return k == KindArray || k == KindObject
}

// AsString decodes the value as a JSON string scalar.
// The second return is false for any other kind.
func (v Value) AsString() (string, bool) {
	if v.Kind() != KindString {
		return "", false
	}
	var s string
	if err := json.Unmarshal(v, &s); err != nil {
		return "", false
	}
	return s, true
}

// MarshalJSON returns the raw bytes unchanged.
func (v Value) MarshalJSON() ([]byte, error) {
	if v == nil {
		return []byte("null"), nil
	}
	return v, nil
}

// UnmarshalJSON stores the raw bytes unchanged.
func (v *Value) UnmarshalJSON(data []byte) error {
	if v == nil {
		return fmt.Errorf("domain.Value: UnmarshalJSON on nil pointer")
	}
	*v = append((*v)[0:0], data...)
	return nil
}

// StringValue builds a Value from a Go string.
func StringValue(s string) Value {
	data, _ := json.Marshal(s)
	return Value(data)
}

// List is an ordered sequence of JSON values, the unit every transform
// operates on.
type List []Value

// DecodeList parses uploaded file content into a List.
// Content that is not valid JSON yields ErrMalformedJSON; valid JSON whose
// root is not an array yields ErrInvalidRootShape. A non-list root is never
// silently treated as an empty list.
func DecodeList(data []byte) (List, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 || !json.Valid(trimmed) {
		return nil, ErrMalformedJSON
	}
	if Value(trimmed).Kind() != KindArray {
		return nil, ErrInvalidRootShape
	}
	var list List
	if err := json.Unmarshal(trimmed, &list); err != nil {
		return nil, ErrMalformedJSON
	}
	return list, nil
}

// Encode serializes the list pretty-printed with two-space indentation,
// the format result files are delivered in.
func (l List) Encode() ([]byte, error) {
	if l == nil {
		l = List{}
	}
	data, err := json.MarshalIndent(l, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode list: %w", err)
	}
	return data, nil
}
