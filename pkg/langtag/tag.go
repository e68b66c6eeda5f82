package langtag

import "strings"

// Tag is a parsed, canonicalized BCP-47 language tag. Tags are interned by
// their owning Registry: two tags with the same case-insensitive subtag
// sequence are the same pointer, so == is a valid equality check.
type Tag struct {
	registry *Registry

	language string // lower-case, 2-3 letters
	extended string // lower-case, 3 letters
	script   string // title-case, 4 letters
	region   string // upper-case, 2 letters or 3 digits
	variant  string // lower-case
	extension string // lower-case, singleton plus subtags

	text string // canonical dash-joined form
}

// Subtag equality weights. The language subtag dominates, each more specific
// subtag kind counts half the previous one.
const (
	weightLanguage  = 32
	weightExtended  = 16
	weightScript    = 8
	weightRegion    = 4
	weightVariant   = 2
	weightExtension = 1
)

// String returns the canonical tag text, e.g. "zh-Hans-CN".
func (t *Tag) String() string { return t.text }

// Language returns the primary language subtag.
func (t *Tag) Language() string { return t.language }

// ExtendedLanguage returns the extended language subtag, or "".
func (t *Tag) ExtendedLanguage() string { return t.extended }

// Script returns the script subtag, or "".
func (t *Tag) Script() string { return t.script }

// Region returns the region subtag, or "".
func (t *Tag) Region() string { return t.region }

// Variant returns the variant subtag, or "".
func (t *Tag) Variant() string { return t.variant }

// Extension returns the extension subtag sequence, or "".
func (t *Tag) Extension() string { return t.extension }

// Parent returns the next more generic tag, obtained by dropping the most
// specific present subtag (extension, then variant, region, script, extended
// language). A bare-language tag has no parent and returns nil. Parents are
// interned in the same registry as the receiver.
func (t *Tag) Parent() *Tag {
	p := *t
	switch {
	case t.extension != "":
		p.extension = ""
	case t.variant != "":
		p.variant = ""
	case t.region != "":
		p.region = ""
	case t.script != "":
		p.script = ""
	case t.extended != "":
		p.extended = ""
	default:
		return nil
	}
	return t.registry.intern(p)
}

// Matches reports whether both tags share the same primary language subtag.
// All other subtags are ignored.
func (t *Tag) Matches(other *Tag) bool {
	return other != nil && t.language == other.language
}

// MatchesOneOf reports whether Matches holds for at least one element.
func (t *Tag) MatchesOneOf(tags []*Tag) bool {
	for _, other := range tags {
		if t.Matches(other) {
			return true
		}
	}
	return false
}

// Equality scores how similar two tags are, in [0, 1]. Tags with different
// primary languages score 0. Otherwise the score is the ratio of matched
// subtag weight to the weight of every subtag kind set on either side.
// Subtag kinds absent on both sides do not participate, so "de" vs "de"
// still scores exactly 1. Only full equality (including equal absences)
// yields 1.
func (t *Tag) Equality(other *Tag) float64 {
	if other == nil || t.language != other.language {
		return 0
	}

	possible := float64(weightLanguage)
	achieved := float64(weightLanguage)

	pairs := [...]struct {
		a, b   string
		weight float64
	}{
		{t.extended, other.extended, weightExtended},
		{t.script, other.script, weightScript},
		{t.region, other.region, weightRegion},
		{t.variant, other.variant, weightVariant},
		{t.extension, other.extension, weightExtension},
	}

	for _, p := range pairs {
		if p.a == "" && p.b == "" {
			continue
		}
		possible += p.weight
		if p.a == p.b {
			achieved += p.weight
		}
	}

	return achieved / possible
}

// PickBestMatching returns the candidate with the highest Equality score
// against the receiver. Ties keep the first-seen candidate. Returns nil when
// every candidate scores 0, i.e. no candidate shares the primary language.
func (t *Tag) PickBestMatching(candidates []*Tag) *Tag {
	var best *Tag
	bestScore := 0.0
	for _, c := range candidates {
		if score := t.Equality(c); score > bestScore {
			best, bestScore = c, score
		}
	}
	return best
}

func (t *Tag) join() string {
	parts := make([]string, 0, 6)
	parts = append(parts, t.language)
	for _, s := range [...]string{t.extended, t.script, t.region, t.variant, t.extension} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, "-")
}
