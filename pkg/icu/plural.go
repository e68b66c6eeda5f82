package icu

import (
	"golang.org/x/text/language"

	"github.com/dmitrymomot/polyglot/pkg/langtag"
)

// PluralCases maps CLDR plural categories to message handlers. Zero, One and
// Two are literal strings; Few, Many and Other receive the count, since those
// categories cover open-ended ranges. Other is mandatory. Omitted categories
// are never selected: counts classified into them fall through to Other.
type PluralCases struct {
	Zero  string
	One   string
	Two   string
	Few   func(n float64) string
	Many  func(n float64) string
	Other func(n float64) string
}

// Plural builds a pluralizer for the given language. The returned function
// classifies its argument per the language's CLDR cardinal plural rules and
// dispatches to the matching case. Returns ErrMissingOtherCase when
// cases.Other is nil.
//
//	days, err := icu.Plural(langtag.MustParse("en"), icu.PluralCases{
//		One:   "tomorrow",
//		Other: func(n float64) string { return fmt.Sprintf("in %v days", n) },
//	})
//	days(1) // "tomorrow"
//	days(3) // "in 3 days"
func Plural(lang *langtag.Tag, cases PluralCases) (func(n float64) string, error) {
	if cases.Other == nil {
		return nil, ErrMissingOtherCase
	}
	locale := language.Make(lang.String())

	return func(n float64) string {
		switch pluralCategory(locale, n) {
		case "zero":
			if cases.Zero != "" {
				return cases.Zero
			}
		case "one":
			if cases.One != "" {
				return cases.One
			}
		case "two":
			if cases.Two != "" {
				return cases.Two
			}
		case "few":
			if cases.Few != nil {
				return cases.Few(n)
			}
		case "many":
			if cases.Many != nil {
				return cases.Many(n)
			}
		}
		return cases.Other(n)
	}, nil
}
