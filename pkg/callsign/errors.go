package callsign

import "github.com/cockroachdb/errors"

// Classification failures returned by Analyze. All are terminal outcomes of
// a pure computation: retrying with the same inputs reproduces the same
// error. Match with errors.Is.
var (
	// ErrBasicFormat: the callsign contains disallowed characters or begins
	// or ends with a separator.
	ErrBasicFormat = errors.New("callsign has invalid format or characters")

	// ErrInvalidOperation: an active invalid-operation record matches the
	// exact callsign.
	ErrInvalidOperation = errors.New("callsign was used in an invalid operation")

	// ErrBeginWithoutPrefix: the first segment does not resolve to a known
	// prefix.
	ErrBeginWithoutPrefix = errors.New("callsign does not begin with a known prefix")

	// ErrThirdPrefix: more than two segments resolve as prefixes.
	ErrThirdPrefix = errors.New("unexpected third prefix")

	// ErrMultipleSingleDigitAppendices: more than one trailing segment is a
	// bare digit.
	ErrMultipleSingleDigitAppendices = errors.New("multiple single-digit appendices")

	// ErrMultipleSpecialAppendices: more than one trailing segment is a
	// no-entity token (AM, MM or SAT).
	ErrMultipleSpecialAppendices = errors.New("multiple special no-entity appendices")
)
