// Package callsign resolves amateur-radio callsigns to their DXCC entity,
// CQ zone, continent and coordinates at a given point in time, driven by a
// clublog reference table.
//
// The engine is a pure, synchronous function of its inputs: no I/O, no
// hidden state, no side effects. Identical inputs always produce identical
// results, and an Analyzer may be shared by concurrent goroutines since
// both it and the underlying table are read-only.
package callsign

import (
	"regexp"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/koarlchen/hamcall/pkg/clublog"
)

// ---------------------------------------------------------------------------
// Result type
// ---------------------------------------------------------------------------

// Callsign is the resolved view of a callsign. It is a plain value owned by
// the caller: every field is copied out of the reference table, so the
// result carries no reference back into it.
type Callsign struct {
	// Call is the complete callsign that was analyzed.
	Call string
	// Adif is the DXCC identifier, or clublog.AdifNoDXCC for operations
	// that count for no entity.
	Adif clublog.Adif
	// DXCC is the entity name; empty for no-DXCC results.
	DXCC string
	// CQZone is the CQ zone, after any zone-exception override.
	CQZone clublog.CQZone
	// Continent of the entity.
	Continent string
	// Latitude and Longitude of the entity.
	Latitude  float64
	Longitude float64
}

// IsNoDXCC reports whether the callsign counts for no DXCC entity, as for
// maritime-mobile, aeronautical-mobile or satellite operations.
func (c Callsign) IsNoDXCC() bool {
	return c.Adif == clublog.AdifNoDXCC
}

// newNoDXCC builds the result for an operation assigned to no entity:
// the reserved ADIF identifier and empty geographic fields.
func newNoDXCC(call string) Callsign {
	return Callsign{Call: call, Adif: clublog.AdifNoDXCC}
}

func fromPrefix(call string, p *clublog.Prefix) Callsign {
	return Callsign{
		Call:      call,
		Adif:      p.Adif,
		DXCC:      p.Entity,
		CQZone:    p.CQZone,
		Continent: p.Continent,
		Latitude:  p.Latitude,
		Longitude: p.Longitude,
	}
}

func fromException(call string, e *clublog.CallsignException) Callsign {
	return Callsign{
		Call:      call,
		Adif:      e.Adif,
		DXCC:      e.Entity,
		CQZone:    e.CQZone,
		Continent: e.Continent,
		Latitude:  e.Latitude,
		Longitude: e.Longitude,
	}
}

// ---------------------------------------------------------------------------
// Analyzer
// ---------------------------------------------------------------------------

// Analyzer resolves callsigns against a reference table. Either table
// backend works: the linear-scan Dataset or the map-backed Index.
type Analyzer struct {
	data clublog.Query
	log  *zap.Logger
}

// Option configures an Analyzer.
type Option func(*Analyzer)

// WithLogger enables Debug-level resolution traces. The default is a no-op
// logger.
func WithLogger(log *zap.Logger) Option {
	return func(a *Analyzer) {
		a.log = log
	}
}

// New creates an Analyzer over the given reference table.
func New(data clublog.Query, opts ...Option) *Analyzer {
	a := &Analyzer{
		data: data,
		log:  zap.NewNop(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// completeCallRE accepts uppercase letters and digits with optional internal
// slash separators; a call must not begin or end with a slash.
var completeCallRE = regexp.MustCompile(`^[A-Z0-9]+[A-Z0-9/]*[A-Z0-9]+$`)

// Analyze resolves a callsign at a point in time.
//
// Override precedence: an invalid-operation record rejects the call before
// anything else, then an exact-callsign exception short-circuits
// segmentation, then segmentation and prefix resolution apply with the
// special-appendix, digit-substitution and zone-exception stages in that
// order. Failures are reported as one of the Err* sentinels in this package.
func (a *Analyzer) Analyze(call string, at time.Time) (Callsign, error) {
	if !completeCallRE.MatchString(call) {
		return Callsign{}, ErrBasicFormat
	}

	if a.data.IsInvalidOperation(call, at) {
		return Callsign{}, ErrInvalidOperation
	}

	// An exact-callsign exception short-circuits segmentation entirely.
	if exc, ok := a.data.GetCallsignException(call, at); ok {
		a.log.Debug("callsign exception matched",
			zap.String("call", call),
			zap.Uint16("adif", uint16(exc.Adif)))
		return fromException(call, exc), nil
	}

	parts, state, err := a.segment(call, at)
	if err != nil {
		return Callsign{}, err
	}

	switch state {
	case shapeSinglePrefix:
		return a.resolveSinglePrefix(call, at)
	case shapeOnePrefix:
		return a.resolveHomecall(call, parts, at)
	case shapeTwoPrefixes:
		return a.resolveTwoPrefixes(call, parts, at)
	}

	// segment returns an error for every other shape.
	return Callsign{}, ErrBeginWithoutPrefix
}

// resolveSinglePrefix handles calls that consist of exactly one prefix part
// with no appendices, like W1AW or RW0A.
func (a *Analyzer) resolveSinglePrefix(call string, at time.Time) (Callsign, error) {
	pfx, _, ok := a.resolvePrefix(call, at, nil)
	if !ok {
		return Callsign{}, ErrBeginWithoutPrefix
	}

	if pfx.Entity == clublog.EntityMaritimeMobile {
		return newNoDXCC(call), nil
	}

	return a.applyZoneException(fromPrefix(call, pfx), at), nil
}

// resolveHomecall handles calls with one leading prefix followed by one or
// more appendices, like W1AW/P or SV0ABC/9.
func (a *Analyzer) resolveHomecall(call string, parts []part, at time.Time) (Callsign, error) {
	homecall := parts[0].text
	appendices := parts[1:]

	pfx, _, ok := a.resolvePrefix(homecall, at, appendices)
	if !ok {
		return Callsign{}, ErrBeginWithoutPrefix
	}

	// Stage 1: a special appendix (/AM, /MM, /SAT) assigns the operation to
	// no entity regardless of the homecall's resolution.
	special, err := noEntityAppendix(appendices)
	if err != nil {
		return Callsign{}, err
	}
	if special != "" {
		a.log.Debug("special appendix matched",
			zap.String("call", call),
			zap.String("appendix", special))
		return newNoDXCC(call), nil
	}

	// Stage 2: the prefix record itself may name the maritime-mobile
	// sentinel entity.
	if pfx.Entity == clublog.EntityMaritimeMobile {
		return newNoDXCC(call), nil
	}

	// Stage 3: a single-digit appendix may substitute the digit inside the
	// homecall and shift it to a different, more specific prefix, as in
	// SV0ABC/9 pointing to Crete rather than Greece.
	sub, err := a.digitSubstitutedPrefix(homecall, at, appendices)
	if err != nil {
		return Callsign{}, err
	}
	if sub != nil {
		pfx = sub
	}

	return a.applyZoneException(fromPrefix(call, pfx), at), nil
}

// resolveTwoPrefixes handles calls with two leading prefix parts, like
// F/W1AW or W1ABC/CE0Y.
func (a *Analyzer) resolveTwoPrefixes(call string, parts []part, at time.Time) (Callsign, error) {
	first, removedFirst, okFirst := a.resolvePrefix(parts[0].text, at, parts[1:])
	second, removedSecond, okSecond := a.resolvePrefix(parts[1].text, at, parts[1:])
	if !okFirst && !okSecond {
		return Callsign{}, ErrBeginWithoutPrefix
	}

	// Pick the more specific match: fewer characters removed wins, the
	// first part on a tie. A compound match like 3D2/R means the second
	// part was consumed as the appendix half of the first prefix, so the
	// first match wins outright. This heuristic is known to be imperfect
	// for exotic compound prefixes; mismatches should be surfaced rather
	// than special-cased further.
	pfx := first
	switch {
	case !okFirst:
		pfx = second
	case !okSecond:
	case strings.Contains(first.Call, "/"):
	case removedSecond < removedFirst:
		pfx = second
	}

	if pfx.Entity == clublog.EntityMaritimeMobile {
		return newNoDXCC(call), nil
	}

	return a.applyZoneException(fromPrefix(call, pfx), at), nil
}

// ---------------------------------------------------------------------------
// Override stages
// ---------------------------------------------------------------------------

// Special appendices that assign the operation to no entity.
const (
	appendixAeronauticalMobile = "AM"
	appendixMaritimeMobile     = "MM"
	appendixSatellite          = "SAT"
)

// noEntityAppendix returns the no-entity appendix among the given parts, or
// "" when none is present. More than one is ambiguous and fails with
// ErrMultipleSpecialAppendices.
func noEntityAppendix(appendices []part) (string, error) {
	found := ""
	for _, ap := range appendices {
		switch ap.text {
		case appendixAeronauticalMobile, appendixMaritimeMobile, appendixSatellite:
			if found != "" {
				return "", ErrMultipleSpecialAppendices
			}
			found = ap.text
		}
	}
	return found, nil
}

// homecallRE captures the leading block, the last digit and the trailing
// block of a homecall, for single-digit appendix substitution.
var homecallRE = regexp.MustCompile(`^([A-Z0-9]+)(\d)([A-Z0-9]+)$`)

// digitSubstitutedPrefix checks for a single-digit appendix and, if one is
// present, substitutes that digit into the homecall's digit position and
// re-resolves the prefix. It returns nil when no substitution applies or
// the substituted call matches no prefix; more than one single-digit
// appendix fails with ErrMultipleSingleDigitAppendices.
func (a *Analyzer) digitSubstitutedPrefix(homecall string, at time.Time, appendices []part) (*clublog.Prefix, error) {
	digit := ""
	for _, ap := range appendices {
		if isSingleDigit(ap.text) {
			if digit != "" {
				return nil, ErrMultipleSingleDigitAppendices
			}
			digit = ap.text
		}
	}
	if digit == "" {
		return nil, nil
	}

	m := homecallRE.FindStringSubmatch(homecall)
	if m == nil {
		return nil, nil
	}

	substituted := m[1] + digit + m[3]
	pfx, _, ok := a.resolvePrefix(substituted, at, appendices)
	if !ok {
		return nil, nil
	}
	a.log.Debug("single-digit appendix substituted",
		zap.String("homecall", homecall),
		zap.String("substituted", substituted))
	return pfx, nil
}

// applyZoneException replaces the result's CQ zone when an active zone
// exception exists for the complete callsign. All other fields stay
// untouched.
func (a *Analyzer) applyZoneException(c Callsign, at time.Time) Callsign {
	if zone, ok := a.data.GetZoneException(c.Call, at); ok {
		c.CQZone = zone
	}
	return c
}
