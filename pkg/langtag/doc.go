// Package langtag parses and canonicalizes BCP-47 language tags and answers
// similarity queries between them.
//
// Tags are interned: a Registry hands out exactly one *Tag per distinct
// case-insensitive tag text, so pointer comparison is a valid equality check
// and tags can be used directly as map keys. Subtag casing is normalized on
// construction: language, extended language, variant, and extension
// lower-case, script title-case, region upper-case.
//
// Basic usage:
//
//	import "github.com/dmitrymomot/polyglot/pkg/langtag"
//
//	tag, err := langtag.Parse("zh-hans-cn")
//	// tag.String() == "zh-Hans-CN"
//
//	same, _ := langtag.Parse("ZH-HANS-CN")
//	// same == tag (pointer identity)
//
// # Generalization
//
// Parent returns the next less specific tag by dropping the most specific
// subtag, terminating at the bare language:
//
//	t := langtag.MustParse("zh-gan-Hans-US-nedis-x-twain")
//	for ; t != nil; t = t.Parent() {
//		fmt.Println(t)
//	}
//	// zh-gan-Hans-US-nedis-x-twain
//	// zh-gan-Hans-US-nedis
//	// zh-gan-Hans-US
//	// zh-gan-Hans
//	// zh-gan
//	// zh
//
// # Matching
//
// Matches is coarse same-base-language matching; Equality scores similarity
// in [0, 1] with more specific subtags weighted progressively less, and
// PickBestMatching selects the closest candidate from a set:
//
//	requested := langtag.MustParse("de-CH-1901")
//	best := requested.PickBestMatching([]*langtag.Tag{
//		langtag.MustParse("de"),
//		langtag.MustParse("fr-CH"),
//	})
//	// best.String() == "de"
//
// # Isolation
//
// The package-level functions share a process-wide default registry. Tests or
// embedded uses that need isolation can create their own with NewRegistry;
// tags from different registries never compare identical.
package langtag
