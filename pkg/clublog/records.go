// Package clublog models the ClubLog entity/prefix reference table and
// provides time-windowed lookups over it.
//
// The table holds five record kinds (entities, prefixes, callsign
// exceptions, invalid operations and CQ-zone exceptions), each carrying an
// optional validity window. A lookup takes a key plus a timestamp and
// returns the record active at that instant. Two behaviorally identical
// backends exist: the Dataset itself (linear scan) and an Index built on
// top of it (per-key map lookup). Callers obtain the already-parsed
// Dataset from an external loader; this package performs no parsing, I/O
// or time-zone conversion (all timestamps are UTC).
package clublog

import "time"

// ---------------------------------------------------------------------------
// Identifier types and sentinels
// ---------------------------------------------------------------------------

// Adif is the integer identifier of a DXCC entity per the ADIF specification.
type Adif uint16

// CQZone is one of the fixed geographic zones used for contact scoring.
// Zero means "not specified"; real zones are 1..40.
type CQZone uint8

// RecordID identifies a single record within the source table.
type RecordID uint32

// AdifNoDXCC is the reserved ADIF identifier for operations that count for
// no DXCC entity (maritime mobile, aeronautical mobile, satellite).
const AdifNoDXCC Adif = 0

// Sentinel entity names used by prefix and exception records instead of a
// regular DXCC name. A record carrying one of these resolves to no entity.
const (
	EntityInvalid            = "INVALID"
	EntityMaritimeMobile     = "MARITIME MOBILE"
	EntityAeronauticalMobile = "AERONAUTICAL MOBILE"
	EntitySatellite          = "SATELLITE, INTERNET OR REPEATER"
)

// ---------------------------------------------------------------------------
// Record kinds
// ---------------------------------------------------------------------------

// Kind identifies one of the five record kinds held by a Dataset.
type Kind uint8

const (
	KindEntity Kind = iota
	KindPrefix
	KindCallsignException
	KindInvalidOperation
	KindZoneException
	kindCount // must be last
)

var kindNames = [kindCount]string{
	KindEntity:            "entity",
	KindPrefix:            "prefix",
	KindCallsignException: "callsign_exception",
	KindInvalidOperation:  "invalid_operation",
	KindZoneException:     "zone_exception",
}

func (k Kind) String() string {
	if k < kindCount {
		return kindNames[k]
	}
	return "unknown"
}

// ---------------------------------------------------------------------------
// Validity window
// ---------------------------------------------------------------------------

// Window is the validity window shared by all record kinds. A zero Start or
// End means the window is unbounded on that side. Both bounds are inclusive.
type Window struct {
	Start time.Time
	End   time.Time
}

// Contains reports whether a timestamp falls within the window.
func (w Window) Contains(t time.Time) bool {
	if w.Start.IsZero() && w.End.IsZero() {
		return true
	}
	if w.Start.IsZero() {
		return !t.After(w.End)
	}
	if w.End.IsZero() {
		return !t.Before(w.Start)
	}
	return !t.Before(w.Start) && !t.After(w.End)
}

// Overlaps reports whether two windows share at least one instant.
func (w Window) Overlaps(o Window) bool {
	if !w.End.IsZero() && !o.Start.IsZero() && w.End.Before(o.Start) {
		return false
	}
	if !o.End.IsZero() && !w.Start.IsZero() && o.End.Before(w.Start) {
		return false
	}
	return true
}

// ---------------------------------------------------------------------------
// Records
// ---------------------------------------------------------------------------

// Entity is a single DXCC entity. The main prefix is listed here for
// reference; all prefixes of the entity, including the main one, live in
// the prefix list. The whitelist bounds are independent of the entity's own
// validity window: an entity may be active while its whitelist restriction
// is not yet (or no longer) in force.
type Entity struct {
	Adif      Adif
	Name      string
	Prefix    string
	Deleted   bool
	CQZone    CQZone
	Continent string
	Latitude  float64
	Longitude float64
	Window

	Whitelist      bool
	WhitelistStart time.Time
	WhitelistEnd   time.Time
}

// Prefix is a single callsign prefix. The Call field may itself contain a
// slash for compound prefixes such as "SV/A". Instead of a regular entity,
// a prefix record may name one of the sentinel entities (EntityInvalid,
// EntityMaritimeMobile).
type Prefix struct {
	Record    RecordID
	Call      string
	Entity    string
	Adif      Adif
	CQZone    CQZone
	Continent string
	Latitude  float64
	Longitude float64
	Window
}

// CallsignException overrides the prefix-derived data for one exact
// callsign. Approved calls for whitelisted entities are also expressed as
// exception records.
type CallsignException struct {
	Record    RecordID
	Call      string
	Entity    string
	Adif      Adif
	CQZone    CQZone
	Continent string
	Latitude  float64
	Longitude float64
	Window
}

// InvalidOperation marks one exact callsign as never valid for its window.
type InvalidOperation struct {
	Record RecordID
	Call   string
	Window
}

// ZoneException overrides only the CQ zone for one exact callsign.
type ZoneException struct {
	Record RecordID
	Call   string
	Zone   CQZone
	Window
}
