package callsign

import (
	"strings"
	"time"
)

// ---------------------------------------------------------------------------
// Callsign segmentation
// ---------------------------------------------------------------------------

// partType classifies one slash-separated segment of a callsign.
type partType uint8

const (
	partPrefix partType = iota
	partOther
)

// part is one classified segment of a callsign.
type part struct {
	text string
	typ  partType
}

// Appendix tokens that never classify as prefixes beyond the first
// position. The same token means different things depending on where it
// appears: MM as a whole call is Scotland, as a trailing part it signals a
// maritime-mobile operation.
var reservedAppendices = [...]string{"AM", "MM", "SAT", "P", "M", "QRP", "LH"}

func isReservedAppendix(s string) bool {
	for _, a := range reservedAppendices {
		if s == a {
			return true
		}
	}
	return false
}

// shape is the terminal state of the segment-classification state machine.
type shape uint8

const (
	shapeNone         shape = iota // no prefix seen yet
	shapeSinglePrefix              // the whole call is one prefix part
	shapeOnePrefix                 // one leading prefix, one or more appendices
	shapeTwoPrefixes               // two leading prefixes, zero or more appendices
)

// segment splits a callsign on "/", classifies each part as prefix-like or
// other, and validates the overall shape. It returns the classified parts
// together with the terminal shape, or ErrBeginWithoutPrefix /
// ErrThirdPrefix when the sequence is malformed.
func (a *Analyzer) segment(call string, at time.Time) ([]part, shape, error) {
	raw := strings.Split(call, "/")

	parts := make([]part, 0, len(raw))
	for pos, text := range raw {
		typ := partOther
		if _, _, ok := a.resolvePrefix(text, at, nil); ok {
			if pos >= 1 && isReservedAppendix(text) {
				typ = partOther
			} else {
				typ = partPrefix
			}
		}
		parts = append(parts, part{text: text, typ: typ})
	}

	state := shapeNone
	for _, el := range parts {
		switch {
		case state == shapeNone && el.typ == partPrefix:
			state = shapeSinglePrefix
		case state == shapeNone:
			return nil, shapeNone, ErrBeginWithoutPrefix
		case state == shapeSinglePrefix && el.typ == partPrefix:
			state = shapeTwoPrefixes
		case state == shapeSinglePrefix:
			state = shapeOnePrefix
		case el.typ == partPrefix:
			// state is shapeOnePrefix or shapeTwoPrefixes
			return nil, shapeNone, ErrThirdPrefix
		}
	}

	return parts, state, nil
}
