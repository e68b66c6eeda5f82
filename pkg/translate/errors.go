package translate

import "errors"

var (
	ErrIncompleteTranslation = errors.New("translate: translation does not cover all default keys")
	ErrNoPreferredLanguage   = errors.New("translate: no preferred language set")
)
