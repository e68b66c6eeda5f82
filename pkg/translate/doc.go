// Package translate resolves the best available message set for a requested
// language from layers of full and partial translations.
//
// A Translator holds a default message set plus any number of per-language
// layers. At lookup time it picks the supported language closest to the
// requested tag (weighted subtag matching from pkg/langtag) and merges the
// layers along that language's generalization chain, most generic first, over
// the defaults. Partial layers only override the keys they define.
//
//	tr, err := translate.New(
//		translate.WithDefaultMessages(translate.Messages{
//			"ok":      "OK",
//			"cancel":  "Cancel",
//			"welcome": "Welcome",
//		}),
//		translate.WithLanguage("de", translate.Messages{
//			"ok":      "OK",
//			"cancel":  "Abbrechen",
//			"welcome": "Willkommen",
//		}),
//		translate.WithPartial("de-CH", translate.Messages{
//			"welcome": "Grüezi",
//		}),
//	)
//
//	msgs := tr.MessagesFor(langtag.MustParse("de-CH-1901"))
//	// msgs["cancel"] == "Abbrechen" (from de)
//	// msgs["welcome"] == "Grüezi"   (from de-CH)
//	// msgs["ok"] == "OK"            (from the defaults via de)
//
// Translators are immutable. Supporting, PartiallySupporting, Preferring and
// Extending each return a new value, so translators can be layered further at
// runtime without synchronization. Full translations added with WithLanguage
// or Supporting must cover every key of a constant default set; violations
// fail eagerly with ErrIncompleteTranslation.
//
// Extending composes providers: the extension's resolved keys win over the
// base provider's, which lets a feature module overlay its messages onto an
// application-wide translator.
package translate
