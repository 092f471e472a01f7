package callsign

import (
	"time"

	"github.com/koarlchen/hamcall/pkg/clublog"
)

// ---------------------------------------------------------------------------
// Whitelist check
// ---------------------------------------------------------------------------

// CheckWhitelist reports whether a callsign counts for an already-resolved
// entity when that entity restricts credit to explicitly approved calls.
//
// It returns true when the entity is not whitelisted at all. For a
// whitelisted entity, an active callsign exception approves the call only
// if the exception names the same ADIF identifier; an exception for a
// different entity grants nothing. Without an exception the call still
// counts before the whitelist-start bound or after the whitelist-end
// bound; inside the bounds it does not.
//
// The check is independent of Analyze and does not validate the callsign
// itself; callers normally run Analyze first and pass its resolved ADIF.
func (a *Analyzer) CheckWhitelist(call string, adif clublog.Adif, at time.Time) bool {
	// Not every valid ADIF identifier refers to an entity; AdifNoDXCC
	// results have nothing to restrict.
	ent, ok := a.data.GetEntity(adif, at)
	if !ok || !ent.Whitelist {
		return true
	}

	if exc, ok := a.data.GetCallsignException(call, at); ok {
		return exc.Adif == adif
	}

	if !ent.WhitelistStart.IsZero() && at.Before(ent.WhitelistStart) {
		return true
	}
	if !ent.WhitelistEnd.IsZero() && at.After(ent.WhitelistEnd) {
		return true
	}

	return false
}
