package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

// Key is the normalized, comparable identity of a Value, used for dedup and
// set-subtraction membership. It is a tagged union: scalar keys carry the
// scalar's own text, structure keys carry the canonical key-sorted
// serialization. Structurally equal objects map to the same Key regardless
// of member order in the source file.
type Key struct {
	kind Kind
	repr string
}

// Kind reports which variant the key identifies.
func (k Key) Kind() Kind { return k.kind }

// String returns a debug representation.
func (k Key) String() string {
	return k.kind.String() + ":" + k.repr
}

// kindTags maps kinds to the stable single-letter tags used in the text
// encoding. Tags keep keys of different kinds distinct even when their
// reprs collide (the string "true" vs. the boolean true).
var kindTags = map[Kind]string{
	KindNull:   "z",
	KindBool:   "b",
	KindNumber: "n",
	KindString: "s",
	KindArray:  "a",
	KindObject: "o",
}

// MarshalText encodes the key as "<tag>:<repr>" so key sets survive JSON
// round trips through the session stores.
func (k Key) MarshalText() ([]byte, error) {
	tag, ok := kindTags[k.kind]
	if !ok {
		return nil, fmt.Errorf("invalid key kind %d", k.kind)
	}
	return []byte(tag + ":" + k.repr), nil
}

// UnmarshalText decodes the "<tag>:<repr>" form.
func (k *Key) UnmarshalText(text []byte) error {
	tag, repr, ok := strings.Cut(string(text), ":")
	if !ok {
		return fmt.Errorf("invalid key encoding %q", text)
	}
	for kind, t := range kindTags {
		if t == tag {
			k.kind = kind
			k.repr = repr
			return nil
		}
	}
	return fmt.Errorf("invalid key tag %q", tag)
}

// NormalizeKey computes the Key for a value.
// Scalars are keyed by kind and text; compound values are keyed by their
// canonical serialization. The input is assumed to be valid JSON (as
// produced by DecodeList); anything that still fails to canonicalize falls
// back to its compacted raw text so membership stays deterministic.
func NormalizeKey(v Value) Key {
	switch v.Kind() {
	case KindNull:
		return Key{kind: KindNull, repr: "null"}
	case KindBool:
		return Key{kind: KindBool, repr: string(bytes.TrimSpace(v))}
	case KindNumber:
		return Key{kind: KindNumber, repr: string(bytes.TrimSpace(v))}
	case KindString:
		s, _ := v.AsString()
		return Key{kind: KindString, repr: s}
	default:
		canon, err := Canonical(v)
		if err != nil {
			var buf bytes.Buffer
			if json.Compact(&buf, v) == nil {
				return Key{kind: v.Kind(), repr: buf.String()}
			}
			return Key{kind: v.Kind(), repr: string(v)}
		}
		return Key{kind: v.Kind(), repr: string(canon)}
	}
}

// Canonical returns the canonical serialization of a compound value:
// compact, with object members sorted by key at every depth. Scalars are
// returned compacted. Two structurally equal values always canonicalize to
// identical bytes.
func Canonical(v Value) (Value, error) {
	dec := json.NewDecoder(bytes.NewReader(v))
	dec.UseNumber()
	var parsed any
	if err := dec.Decode(&parsed); err != nil {
		return nil, fmt.Errorf("failed to canonicalize value: %w", err)
	}
	// encoding/json sorts map keys and json.Number keeps the source text.
	data, err := json.Marshal(parsed)
	if err != nil {
		return nil, fmt.Errorf("failed to canonicalize value: %w", err)
	}
	return Value(data), nil
}

// KeySet is a set of normalized keys. The zero value is not usable; create
// with NewKeySet or let JSON decoding allocate it.
type KeySet map[Key]struct{}

// NewKeySet returns an empty set.
func NewKeySet() KeySet { return make(KeySet) }

// Has reports membership.
func (s KeySet) Has(k Key) bool {
	_, ok := s[k]
	return ok
}

// Add inserts a key and reports whether it was new.
func (s KeySet) Add(k Key) bool {
	if _, ok := s[k]; ok {
		return false
	}
	s[k] = struct{}{}
	return true
}

// Len returns the number of keys in the set.
func (s KeySet) Len() int { return len(s) }
