package clublog

import (
	"time"

	"go.uber.org/zap"
)

// ---------------------------------------------------------------------------
// Map-backed Query implementation
// ---------------------------------------------------------------------------

// Index is the map-backed Query implementation. Each map groups the slot
// positions of the records sharing a key, kept in Dataset insertion order
// so the Index answers every lookup exactly like the Dataset's linear scan,
// just in O(1) average instead of O(n).
//
// The Index borrows the Dataset and never copies records; it must not
// outlive it. Since both structures are read-only after construction,
// concurrent lookups from multiple goroutines need no locking.
type Index struct {
	data *Dataset
	log  *zap.Logger

	entities   map[Adif][]uint32
	prefixes   map[string][]uint32
	exceptions map[string][]uint32
	invalids   map[string][]uint32
	zones      map[string][]uint32
}

// IndexOption configures an Index.
type IndexOption func(*Index)

// WithLogger sets the logger used during index construction. Record counts
// are logged at Debug; every key group with overlapping validity windows is
// logged at Warn, since lookups silently resolve the conflict by insertion
// order.
func WithLogger(log *zap.Logger) IndexOption {
	return func(x *Index) {
		x.log = log
	}
}

// NewIndex builds the map-backed lookup structure over a Dataset.
func NewIndex(d *Dataset, opts ...IndexOption) *Index {
	idx := &Index{
		data:       d,
		log:        zap.NewNop(),
		entities:   make(map[Adif][]uint32, len(d.Entities)),
		prefixes:   make(map[string][]uint32, len(d.Prefixes)),
		exceptions: make(map[string][]uint32, len(d.CallsignExceptions)),
		invalids:   make(map[string][]uint32, len(d.InvalidOperations)),
		zones:      make(map[string][]uint32, len(d.ZoneExceptions)),
	}
	for _, opt := range opts {
		opt(idx)
	}

	for i := range d.Entities {
		idx.entities[d.Entities[i].Adif] = append(idx.entities[d.Entities[i].Adif], uint32(i))
	}
	for i := range d.Prefixes {
		idx.prefixes[d.Prefixes[i].Call] = append(idx.prefixes[d.Prefixes[i].Call], uint32(i))
	}
	for i := range d.CallsignExceptions {
		idx.exceptions[d.CallsignExceptions[i].Call] = append(idx.exceptions[d.CallsignExceptions[i].Call], uint32(i))
	}
	for i := range d.InvalidOperations {
		idx.invalids[d.InvalidOperations[i].Call] = append(idx.invalids[d.InvalidOperations[i].Call], uint32(i))
	}
	for i := range d.ZoneExceptions {
		idx.zones[d.ZoneExceptions[i].Call] = append(idx.zones[d.ZoneExceptions[i].Call], uint32(i))
	}

	idx.log.Debug("reference table indexed",
		zap.Int("entities", len(d.Entities)),
		zap.Int("prefixes", len(d.Prefixes)),
		zap.Int("callsign_exceptions", len(d.CallsignExceptions)),
		zap.Int("invalid_operations", len(d.InvalidOperations)),
		zap.Int("zone_exceptions", len(d.ZoneExceptions)))

	for _, o := range d.Overlaps() {
		idx.log.Warn("overlapping validity windows in key group",
			zap.Stringer("kind", o.Kind),
			zap.String("key", o.Key),
			zap.Int("first", o.First),
			zap.Int("second", o.Second))
	}

	return idx
}

// GetEntity returns the entity active for an ADIF identifier.
func (x *Index) GetEntity(adif Adif, at time.Time) (*Entity, bool) {
	for _, i := range x.entities[adif] {
		e := &x.data.Entities[i]
		if e.Contains(at) {
			return e, true
		}
	}
	return nil, false
}

// GetPrefix returns the prefix record active for an exact prefix string.
func (x *Index) GetPrefix(prefix string, at time.Time) (*Prefix, bool) {
	for _, i := range x.prefixes[prefix] {
		p := &x.data.Prefixes[i]
		if p.Contains(at) {
			return p, true
		}
	}
	return nil, false
}

// GetCallsignException returns the exception active for an exact callsign.
func (x *Index) GetCallsignException(call string, at time.Time) (*CallsignException, bool) {
	for _, i := range x.exceptions[call] {
		e := &x.data.CallsignExceptions[i]
		if e.Contains(at) {
			return e, true
		}
	}
	return nil, false
}

// GetZoneException returns the CQ-zone override active for an exact callsign.
func (x *Index) GetZoneException(call string, at time.Time) (CQZone, bool) {
	for _, i := range x.zones[call] {
		z := &x.data.ZoneExceptions[i]
		if z.Contains(at) {
			return z.Zone, true
		}
	}
	return 0, false
}

// IsInvalidOperation reports whether the exact callsign is marked invalid.
func (x *Index) IsInvalidOperation(call string, at time.Time) bool {
	for _, i := range x.invalids[call] {
		if x.data.InvalidOperations[i].Contains(at) {
			return true
		}
	}
	return false
}
