// Package icu renders parameterized messages with locale-sensitive
// formatting, using a practical subset of the ICU message syntax.
//
// Rendering delegates to an Engine; the default engine is built on
// golang.org/x/text and supports plain arguments, number/date/time formatting
// with named presets, plural branching with CLDR cardinal rules, and select
// branching:
//
//	tag := langtag.MustParse("de")
//	out, err := icu.Render(tag,
//		"{count, plural, one {# Datei} other {# Dateien}} gelöscht",
//		icu.Params{"count": 3},
//	)
//	// "3 Dateien gelöscht"
//
// Named format presets live in a Formats store and are referenced from
// templates by name:
//
//	formats := icu.NewFormats(icu.Presets{
//		Number: map[string]icu.NumberFormat{
//			"eur": {Style: icu.StyleCurrency, Currency: "EUR"},
//		},
//	})
//	out, err := icu.Render(tag, "{total, number, eur}",
//		icu.Params{"total": 19.99}, icu.WithFormats(formats))
//
// Plural and Select are convenience wrappers for dispatching outside of
// templates; see their examples. The Formats store is explicit state: create
// one per application (or per test) instead of sharing process globals.
package icu
