package icu

import (
	"strconv"

	"github.com/dmitrymomot/polyglot/pkg/langtag"
)

// Params holds named template arguments.
type Params map[string]any

// maxPositionalArgs is the number of positional slots RenderPositional
// aliases to the keys "1".."5".
const maxPositionalArgs = 5

// RenderOption configures a single Render call.
type RenderOption func(*renderConfig)

type renderConfig struct {
	formats *Formats
	engine  Engine
}

// WithFormats supplies the preset store consulted for named number, date and
// time presets. Without it the built-in presets are used.
func WithFormats(formats *Formats) RenderOption {
	return func(c *renderConfig) { c.formats = formats }
}

// WithEngine substitutes the rendering engine for this call.
func WithEngine(engine Engine) RenderOption {
	return func(c *renderConfig) { c.engine = engine }
}

// Render renders an ICU-style message template for the given language.
//
//	out, err := icu.Render(tag, "Hello, {name}!", icu.Params{"name": "Ada"})
func Render(lang *langtag.Tag, template string, params Params, opts ...RenderOption) (string, error) {
	cfg := renderConfig{engine: DefaultEngine()}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg.engine.Render(lang, template, params, cfg.formats)
}

// RenderPositional renders a template whose arguments are the positional
// slots {1} through {5}. Arguments beyond the fifth are ignored.
//
//	out, err := icu.RenderPositional(tag, "{1} of {2}", 3, 10)
func RenderPositional(lang *langtag.Tag, template string, args ...any) (string, error) {
	params := make(Params, maxPositionalArgs)
	for i, arg := range args {
		if i == maxPositionalArgs {
			break
		}
		params[strconv.Itoa(i+1)] = arg
	}
	return Render(lang, template, params)
}
