// Package polyglot resolves localized messages from layered, partially
// specified translations and renders them with locale-sensitive formatting.
//
// The module is organized as a thin composition layer over three leaf
// packages:
//
//   - pkg/langtag parses BCP-47 language tags into canonical interned values
//     and scores similarity between them.
//   - pkg/translate layers full and partial translations per language and
//     resolves the best merged message set for a requested tag.
//   - pkg/icu renders ICU-style message templates (arguments, number, date,
//     time, plural, select) on top of golang.org/x/text.
//
// pkg/acceptlang connects HTTP Accept-Language headers to the same matching
// model.
//
// # Quick start
//
//	bundle, err := polyglot.New(
//		polyglot.WithDefaultMessages(translate.Messages{
//			"greeting": "Hello, {name}!",
//			"files":    "{count, plural, one {# file} other {# files}}",
//		}),
//		polyglot.WithLanguage("de", translate.Messages{
//			"greeting": "Hallo, {name}!",
//			"files":    "{count, plural, one {# Datei} other {# Dateien}}",
//		}),
//		polyglot.WithPartial("de-CH", translate.Messages{
//			"greeting": "Grüezi, {name}!",
//		}),
//	)
//
//	bundle.T("de-CH", "greeting", icu.Params{"name": "Ada"})
//	// "Grüezi, Ada!"
//	bundle.T("de-CH", "files", icu.Params{"count": 3})
//	// "3 Dateien", inherited from the "de" layer
//
// # File-based translations
//
// Translations can be loaded from JSON or YAML files via fs.FS, typically an
// embed.FS:
//
//	//go:embed translations
//	var translationsFS embed.FS
//
//	sub, _ := fs.Sub(translationsFS, "translations")
//	bundle, err := polyglot.New(
//		polyglot.WithDefaultMessages(defaults),
//		polyglot.WithJSONDir(sub),
//	)
//
// File convention: {lang}/{group}.json. Keys are flattened to
// "group.path.to.key".
//
// # Fallback model
//
// Lookup picks the supported language closest to the requested tag by
// weighted subtag similarity, then merges translation layers along that
// language's generalization chain (for "de-CH-1901": "de", then "de-CH")
// over the default messages. Partial layers override only the keys they
// define. See pkg/translate for the details.
package polyglot
