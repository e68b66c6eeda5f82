// Package acceptlang ranks user language preferences from an HTTP
// Accept-Language header and picks the best supported language for them.
//
// Matching uses the weighted subtag similarity from pkg/langtag, so a user
// asking for "de-CH" is served "de" over "fr" even when no exact match is
// available:
//
//	lang := acceptlang.Preferred("de-CH,de;q=0.9,en;q=0.5", []string{"en", "de", "fr"})
//	// "de"
package acceptlang

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/dmitrymomot/polyglot/pkg/langtag"
)

// DefaultLanguage is the fallback when no preference and no available
// language applies.
const DefaultLanguage = "en"

// maxHeaderLength caps parsing of oversized Accept-Language headers.
const maxHeaderLength = 4096

type preference struct {
	tag     string
	quality float64
}

// Parse parses an Accept-Language header into language tags ordered by
// descending quality. Wildcards and malformed quality values are skipped;
// entries with equal quality keep their header order.
//
// Example: "en-US,en;q=0.9,pl;q=0.8" yields ["en-US", "en", "pl"].
func Parse(header string) []string {
	if len(header) > maxHeaderLength {
		header = header[:maxHeaderLength]
	}

	var prefs []preference
	for part := range strings.SplitSeq(header, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		quality := 1.0
		tagPart, qPart, hasQuality := strings.Cut(part, ";")
		tagPart = strings.TrimSpace(tagPart)

		if hasQuality {
			qPart = strings.TrimSpace(qPart)
			if strings.HasPrefix(qPart, "q=") {
				if q, err := strconv.ParseFloat(qPart[2:], 64); err == nil && q >= 0 && q <= 1 {
					quality = q
				}
			}
		}

		if tagPart == "" || tagPart == "*" || quality == 0 {
			continue
		}
		prefs = append(prefs, preference{tag: tagPart, quality: quality})
	}

	slices.SortStableFunc(prefs, func(a, b preference) int {
		return cmp.Compare(b.quality, a.quality)
	})

	tags := make([]string, len(prefs))
	for i, p := range prefs {
		tags[i] = p.tag
	}
	return tags
}

// Preferred returns the available language best matching the header's ranked
// preferences. Falls back to the first available language when nothing
// matches, and to DefaultLanguage when the available list is empty.
// Malformed tags on either side are skipped.
func Preferred(header string, available []string) string {
	if len(available) == 0 {
		return DefaultLanguage
	}

	registry := langtag.Default()

	candidates := make([]*langtag.Tag, 0, len(available))
	byTag := make(map[*langtag.Tag]string, len(available))
	for _, a := range available {
		tag, err := registry.Parse(a)
		if err != nil {
			continue
		}
		if _, seen := byTag[tag]; !seen {
			candidates = append(candidates, tag)
			byTag[tag] = a
		}
	}

	for _, pref := range Parse(header) {
		requested, err := registry.Parse(pref)
		if err != nil {
			continue
		}
		if best := requested.PickBestMatching(candidates); best != nil {
			return byTag[best]
		}
	}

	return available[0]
}
