package clublog

import (
	"strconv"
	"time"
)

// ---------------------------------------------------------------------------
// Query capability interface
// ---------------------------------------------------------------------------

// Query is the lookup capability over the reference table. For a key whose
// group holds several historical records, implementations return the first
// record in table insertion order whose window contains the timestamp.
// Absence of a record is the normal "no override" signal, not an error.
type Query interface {
	// GetEntity returns the entity active for an ADIF identifier.
	GetEntity(adif Adif, at time.Time) (*Entity, bool)
	// GetPrefix returns the prefix record active for an exact prefix string.
	GetPrefix(prefix string, at time.Time) (*Prefix, bool)
	// GetCallsignException returns the exception active for an exact callsign.
	GetCallsignException(call string, at time.Time) (*CallsignException, bool)
	// GetZoneException returns the CQ-zone override active for an exact callsign.
	GetZoneException(call string, at time.Time) (CQZone, bool)
	// IsInvalidOperation reports whether the exact callsign is marked invalid.
	IsInvalidOperation(call string, at time.Time) bool
}

// ---------------------------------------------------------------------------
// Dataset
// ---------------------------------------------------------------------------

// Dataset is the in-memory reference table, built once by an external
// loader and read-only afterwards. Slice order is the table's insertion
// order, which resolves key groups with several historical records.
//
// Dataset itself implements Query by linear scan; NewIndex builds the
// map-backed equivalent for large tables or high call volume. All returned
// records are borrowed views into the backing slices and stay valid as
// long as the Dataset.
type Dataset struct {
	Entities           []Entity
	Prefixes           []Prefix
	CallsignExceptions []CallsignException
	InvalidOperations  []InvalidOperation
	ZoneExceptions     []ZoneException
}

// GetEntity returns the entity active for an ADIF identifier.
func (d *Dataset) GetEntity(adif Adif, at time.Time) (*Entity, bool) {
	for i := range d.Entities {
		e := &d.Entities[i]
		if e.Adif == adif && e.Contains(at) {
			return e, true
		}
	}
	return nil, false
}

// GetPrefix returns the prefix record active for an exact prefix string.
func (d *Dataset) GetPrefix(prefix string, at time.Time) (*Prefix, bool) {
	for i := range d.Prefixes {
		p := &d.Prefixes[i]
		if p.Call == prefix && p.Contains(at) {
			return p, true
		}
	}
	return nil, false
}

// GetCallsignException returns the exception active for an exact callsign.
func (d *Dataset) GetCallsignException(call string, at time.Time) (*CallsignException, bool) {
	for i := range d.CallsignExceptions {
		e := &d.CallsignExceptions[i]
		if e.Call == call && e.Contains(at) {
			return e, true
		}
	}
	return nil, false
}

// GetZoneException returns the CQ-zone override active for an exact callsign.
func (d *Dataset) GetZoneException(call string, at time.Time) (CQZone, bool) {
	for i := range d.ZoneExceptions {
		z := &d.ZoneExceptions[i]
		if z.Call == call && z.Contains(at) {
			return z.Zone, true
		}
	}
	return 0, false
}

// IsInvalidOperation reports whether the exact callsign is marked invalid.
func (d *Dataset) IsInvalidOperation(call string, at time.Time) bool {
	for i := range d.InvalidOperations {
		o := &d.InvalidOperations[i]
		if o.Call == call && o.Contains(at) {
			return true
		}
	}
	return false
}

// ---------------------------------------------------------------------------
// Validation
// ---------------------------------------------------------------------------

// Overlap describes two records of the same key group whose validity
// windows share at least one instant. The table invariant expects at most
// one active record per key and timestamp; lookups resolve a violation by
// taking the first record in insertion order, so overlapping source data
// should be surfaced rather than relied upon. First and Second are
// positions within the Dataset slice for the kind.
type Overlap struct {
	Kind   Kind
	Key    string
	First  int
	Second int
}

// Overlaps scans every key group of every record kind and reports all
// pairs with overlapping validity windows. An empty result means the
// at-most-one-active-record invariant holds for every timestamp.
func (d *Dataset) Overlaps() []Overlap {
	var found []Overlap

	collect := func(kind Kind, n int, key func(int) string, window func(int) Window) {
		groups := make(map[string][]int, n)
		for i := 0; i < n; i++ {
			groups[key(i)] = append(groups[key(i)], i)
		}
		for k, idxs := range groups {
			for a := 0; a < len(idxs); a++ {
				for b := a + 1; b < len(idxs); b++ {
					if window(idxs[a]).Overlaps(window(idxs[b])) {
						found = append(found, Overlap{Kind: kind, Key: k, First: idxs[a], Second: idxs[b]})
					}
				}
			}
		}
	}

	collect(KindEntity, len(d.Entities),
		func(i int) string { return strconv.Itoa(int(d.Entities[i].Adif)) },
		func(i int) Window { return d.Entities[i].Window })
	collect(KindPrefix, len(d.Prefixes),
		func(i int) string { return d.Prefixes[i].Call },
		func(i int) Window { return d.Prefixes[i].Window })
	collect(KindCallsignException, len(d.CallsignExceptions),
		func(i int) string { return d.CallsignExceptions[i].Call },
		func(i int) Window { return d.CallsignExceptions[i].Window })
	collect(KindInvalidOperation, len(d.InvalidOperations),
		func(i int) string { return d.InvalidOperations[i].Call },
		func(i int) Window { return d.InvalidOperations[i].Window })
	collect(KindZoneException, len(d.ZoneExceptions),
		func(i int) string { return d.ZoneExceptions[i].Call },
		func(i int) Window { return d.ZoneExceptions[i].Window })

	return found
}
