package callsign

import (
	"testing"

	"github.com/koarlchen/hamcall/pkg/clublog"
)

func benchAnalyzer(b *testing.B) *Analyzer {
	b.Helper()
	return New(clublog.NewIndex(testData()))
}

func BenchmarkAnalyze(b *testing.B) {
	a := benchAnalyzer(b)

	for _, tc := range []struct {
		name string
		call string
	}{
		{"plain", "AB1CD"},
		{"homecall_appendix", "SV0ABC/9"},
		{"two_prefixes", "F/W1AW"},
		{"exception", "AB1ZZ"},
	} {
		b.Run(tc.name, func(b *testing.B) {
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := a.Analyze(tc.call, testTime); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkCheckWhitelist(b *testing.B) {
	a := benchAnalyzer(b)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		a.CheckWhitelist("AB1QQ", 200, testTime)
	}
}
