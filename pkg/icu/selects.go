package icu

import (
	"fmt"

	"github.com/dmitrymomot/polyglot/pkg/langtag"
)

// Select builds a chooser over literal options. The returned function picks
// the option whose key equals its argument exactly; with no exact match it
// falls back to the "other" option, or fails with ErrNoMatchingSelection when
// none is present.
func Select(lang *langtag.Tag, options map[string]string) func(key string) (string, error) {
	return func(key string) (string, error) {
		if msg, ok := options[key]; ok {
			return msg, nil
		}
		if msg, ok := options["other"]; ok {
			return msg, nil
		}
		return "", fmt.Errorf("%w: key %q", ErrNoMatchingSelection, key)
	}
}

// SelectObject builds a chooser that reads the selection key from the named
// selector parameter and renders the chosen option as a template against the
// full parameter set, so selected messages may themselves contain
// placeholders.
func SelectObject(lang *langtag.Tag, selector string, options map[string]string, opts ...RenderOption) func(params Params) (string, error) {
	choose := Select(lang, options)
	return func(params Params) (string, error) {
		template, err := choose(fmt.Sprint(params[selector]))
		if err != nil {
			return "", err
		}
		return Render(lang, template, params, opts...)
	}
}
