package callsign

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePrefixLongestMatchWins(t *testing.T) {
	a := New(testData())

	for _, tc := range []struct {
		candidate string
		call      string
		removed   int
	}{
		{"AB1CD", "AB", 3},
		{"AB9CD", "AB9", 2},
		{"AB", "AB", 0},
		{"UA9ABC", "UA9", 3},
		{"U1ABC", "U", 4},
	} {
		pfx, removed, ok := a.resolvePrefix(tc.candidate, testTime, nil)
		require.True(t, ok, tc.candidate)
		assert.Equal(t, tc.call, pfx.Call, tc.candidate)
		assert.Equal(t, tc.removed, removed, tc.candidate)
	}
}

func TestResolvePrefixCompoundBeforePlain(t *testing.T) {
	a := New(testData())

	// With a single-letter appendix the CC/A compound is tried at each
	// length before the plain head, so it beats CC.
	pfx, removed, ok := a.resolvePrefix("CC1AB", testTime, []part{{text: "A", typ: partOther}})
	require.True(t, ok)
	assert.Equal(t, "CC/A", pfx.Call)
	assert.Equal(t, 3, removed)

	// Without the appendix only plain heads are tried.
	pfx, _, ok = a.resolvePrefix("CC1AB", testTime, nil)
	require.True(t, ok)
	assert.Equal(t, "CC", pfx.Call)

	// A non-matching single-letter appendix falls through to the plain head.
	pfx, _, ok = a.resolvePrefix("CC1AB", testTime, []part{{text: "B", typ: partOther}})
	require.True(t, ok)
	assert.Equal(t, "CC", pfx.Call)
}

func TestResolvePrefixNoMatch(t *testing.T) {
	a := New(testData())

	for _, candidate := range []string{"", "X5ABC", "9"} {
		_, _, ok := a.resolvePrefix(candidate, testTime, nil)
		assert.False(t, ok, candidate)
	}
}

// A match never consumes the whole candidate's length in removals: the
// shortest head tried is one character, so removed is at most len-1.
func TestResolvePrefixRemovedBound(t *testing.T) {
	a := New(testData())

	for _, candidate := range []string{"AB1CD", "U1ABC", "W1AW", "SV9ZZZZZ"} {
		_, removed, ok := a.resolvePrefix(candidate, testTime, nil)
		require.True(t, ok, candidate)
		assert.LessOrEqual(t, removed, len(candidate)-1, candidate)
		assert.GreaterOrEqual(t, removed, 0, candidate)
	}
}

func TestSegmentShapes(t *testing.T) {
	a := New(testData())

	for _, tc := range []struct {
		call  string
		shape shape
		parts int
	}{
		{"W1AW", shapeSinglePrefix, 1},
		{"W1AW/P", shapeOnePrefix, 2},
		{"W1AW/P/MM", shapeOnePrefix, 3},
		{"F/W1AW", shapeTwoPrefixes, 2},
		{"F/W1AW/P", shapeTwoPrefixes, 3},
	} {
		parts, state, err := a.segment(tc.call, testTime)
		require.NoError(t, err, tc.call)
		assert.Equal(t, tc.shape, state, tc.call)
		assert.Len(t, parts, tc.parts, tc.call)
	}
}

func TestSegmentReservedAppendixNeverAPrefix(t *testing.T) {
	a := New(testData())

	// MM resolves as a prefix (Scotland) in first position but is forced to
	// an appendix in any later position.
	parts, state, err := a.segment("MM/W1AW", testTime)
	require.NoError(t, err)
	assert.Equal(t, shapeTwoPrefixes, state)
	assert.Equal(t, partPrefix, parts[0].typ)

	parts, state, err = a.segment("W1AW/MM", testTime)
	require.NoError(t, err)
	assert.Equal(t, shapeOnePrefix, state)
	assert.Equal(t, partOther, parts[1].typ)
}

func TestSegmentMalformedSequences(t *testing.T) {
	a := New(testData())

	_, _, err := a.segment("X5ABC", testTime)
	assert.ErrorIs(t, err, ErrBeginWithoutPrefix)

	_, _, err = a.segment("X5/W1AW", testTime)
	assert.ErrorIs(t, err, ErrBeginWithoutPrefix)

	_, _, err = a.segment("AB1CD/W1AW/F", testTime)
	assert.ErrorIs(t, err, ErrThirdPrefix)
}
