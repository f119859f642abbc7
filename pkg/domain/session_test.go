package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSession_IngestText_ReplaceFlow(t *testing.T) {
	s := NewSession(ModeReplaceFind)

	require.NoError(t, s.IngestText("a.com"))
	assert.Equal(t, ModeReplaceText, s.Mode)
	assert.Equal(t, "a.com", s.Find)

	require.NoError(t, s.IngestText("x.com"))
	assert.Equal(t, ModeReplaceReady, s.Mode)
	assert.Equal(t, "x.com", s.Replacement)
}

func TestSession_IngestText_EmptyFind(t *testing.T) {
	s := NewSession(ModeReplaceFind)

	err := s.IngestText("   ")
	assert.ErrorIs(t, err, ErrEmptyFindText)
	// Rejection leaves the step unchanged.
	assert.Equal(t, ModeReplaceFind, s.Mode)
	assert.Empty(t, s.Find)
}

func TestSession_IngestText_EmptyReplacementAllowed(t *testing.T) {
	// Replacing with nothing is a valid way to strip a substring.
	s := NewSession(ModeReplaceText)
	s.Find = "a.com"

	require.NoError(t, s.IngestText(""))
	assert.Equal(t, ModeReplaceReady, s.Mode)
}

func TestSession_IngestText_WrongMode(t *testing.T) {
	for _, mode := range []Mode{ModeMergeCollect, ModeSplitPending, ModeSubtractMain, ModeReplaceReady} {
		s := NewSession(mode)
		err := s.IngestText("hello")
		assert.ErrorIs(t, err, ErrUnexpectedInputKind, "mode %s", mode)
		assert.Equal(t, mode, s.Mode)
	}
}

func TestSession_InputKinds(t *testing.T) {
	fileModes := []Mode{ModeMergeCollect, ModeConcatCollect, ModeSplitPending, ModeSubtractMain, ModeSubtractFilter, ModeReplaceReady}
	for _, mode := range fileModes {
		s := NewSession(mode)
		assert.True(t, s.CollectsFiles(), "mode %s", mode)
		assert.False(t, s.CollectsText(), "mode %s", mode)
	}

	textModes := []Mode{ModeReplaceFind, ModeReplaceText}
	for _, mode := range textModes {
		s := NewSession(mode)
		assert.True(t, s.CollectsText(), "mode %s", mode)
		assert.False(t, s.CollectsFiles(), "mode %s", mode)
	}
}

func TestSession_JSONRoundTrip(t *testing.T) {
	s := NewSession(ModeMergeCollect)
	list, err := DecodeList([]byte(`[1, "two", {"b":2,"a":1}]`))
	require.NoError(t, err)
	for _, v := range list {
		if s.Seen.Add(NormalizeKey(v)) {
			s.Items = append(s.Items, v)
		}
	}

	data, err := json.Marshal(s)
	require.NoError(t, err)

	var decoded Session
	require.NoError(t, json.Unmarshal(data, &decoded))

	assert.Equal(t, s.Mode, decoded.Mode)
	assert.Len(t, decoded.Items, 3)
	assert.Equal(t, 3, decoded.Seen.Len())
	assert.True(t, decoded.Seen.Has(NormalizeKey(Value(`{"a":1,"b":2}`))))
}

func TestSession_JSONRoundTrip_EmptySetsStayUsable(t *testing.T) {
	// A freshly begun session has empty key sets; after a store round trip
	// they must come back as maps ready for insertion, not nil.
	for _, mode := range []Mode{ModeMergeCollect, ModeSubtractMain} {
		data, err := json.Marshal(NewSession(mode))
		require.NoError(t, err)

		var decoded Session
		require.NoError(t, json.Unmarshal(data, &decoded))

		switch mode {
		case ModeMergeCollect:
			assert.True(t, decoded.Seen.Add(NormalizeKey(Value(`1`))), "mode %s", mode)
		case ModeSubtractMain:
			assert.True(t, decoded.Filter.Add(NormalizeKey(Value(`1`))), "mode %s", mode)
		}
	}
}

func TestSession_Clone_Isolation(t *testing.T) {
	s := NewSession(ModeMergeCollect)
	s.Items = append(s.Items, Value(`1`))
	s.Seen.Add(NormalizeKey(Value(`1`)))

	clone := s.Clone()
	clone.Items = append(clone.Items, Value(`2`))
	clone.Seen.Add(NormalizeKey(Value(`2`)))

	assert.Len(t, s.Items, 1)
	assert.Equal(t, 1, s.Seen.Len())
}
