package callsign

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/koarlchen/hamcall/pkg/clublog"
)

func TestCheckWhitelist(t *testing.T) {
	for name, data := range backends() {
		t.Run(name, func(t *testing.T) {
			a := New(data)
			for _, tc := range []struct {
				call string
				adif uint16
				year int
				want bool
				note string
			}{
				{"AB1CD", 100, 2005, true, "entity not whitelisted"},
				{"AB1CD", 999, 2005, true, "unknown entity restricts nothing"},
				{"AB1ZZ", 200, 2005, true, "exception names the same entity"},
				{"AB4XY", 200, 2005, false, "exception names a different entity"},
				{"AB1QQ", 200, 2005, false, "no exception inside the whitelist window"},
				{"AB1QQ", 200, 1999, true, "before the whitelist start"},
				{"AB1QQ", 200, 2012, true, "after the whitelist end"},
			} {
				got := a.CheckWhitelist(tc.call, clublog.Adif(tc.adif), ts(tc.year, 6, 1))
				assert.Equal(t, tc.want, got, "%s adif=%d year=%d: %s", tc.call, tc.adif, tc.year, tc.note)
			}
		})
	}
}
