package polyglot

import (
	"fmt"
	"sort"

	"github.com/dmitrymomot/polyglot/pkg/icu"
	"github.com/dmitrymomot/polyglot/pkg/langtag"
	"github.com/dmitrymomot/polyglot/pkg/translate"
)

// Bundle ties together a tag registry, a layered translator, and a format
// preset store. It is immutable after construction and safe for concurrent
// use.
type Bundle struct {
	registry   *langtag.Registry
	translator *translate.Translator
	formats    *icu.Formats
}

type builder struct {
	registry      *langtag.Registry
	formats       *icu.Formats
	translateOpts []translate.Option
	loaded        map[string]translate.Messages // language text -> merged messages
}

// Option configures a Bundle during construction.
type Option func(*builder) error

// New creates a Bundle. Translation layers added via options are resolved
// lazily per requested language; layers loaded from files are registered as
// partial translations in alphabetical language order.
func New(opts ...Option) (*Bundle, error) {
	b := &builder{
		registry: langtag.NewRegistry(),
		loaded:   make(map[string]translate.Messages),
	}

	for _, opt := range opts {
		if err := opt(b); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	translateOpts := []translate.Option{translate.WithRegistry(b.registry)}
	translateOpts = append(translateOpts, b.translateOpts...)

	langs := make([]string, 0, len(b.loaded))
	for lang := range b.loaded {
		langs = append(langs, lang)
	}
	sort.Strings(langs)
	for _, lang := range langs {
		translateOpts = append(translateOpts, translate.WithPartial(lang, b.loaded[lang]))
	}

	translator, err := translate.New(translateOpts...)
	if err != nil {
		return nil, err
	}

	formats := b.formats
	if formats == nil {
		formats = icu.NewFormats(icu.Presets{})
	}

	return &Bundle{
		registry:   b.registry,
		translator: translator,
		formats:    formats,
	}, nil
}

// WithRegistry sets the tag registry. Defaults to a fresh registry per
// Bundle, so bundles do not share interned tags unless told to.
func WithRegistry(registry *langtag.Registry) Option {
	return func(b *builder) error {
		if registry == nil {
			return fmt.Errorf("polyglot: registry cannot be nil")
		}
		b.registry = registry
		return nil
	}
}

// WithDefaultMessages sets the constant default message set.
func WithDefaultMessages(messages translate.Messages) Option {
	return func(b *builder) error {
		b.translateOpts = append(b.translateOpts, translate.WithDefaultMessages(messages))
		return nil
	}
}

// WithLanguage adds a full translation; it must cover every default key.
func WithLanguage(tag string, messages translate.Messages) Option {
	return func(b *builder) error {
		b.translateOpts = append(b.translateOpts, translate.WithLanguage(tag, messages))
		return nil
	}
}

// WithPartial adds a partial translation layer.
func WithPartial(tag string, messages translate.Messages) Option {
	return func(b *builder) error {
		b.translateOpts = append(b.translateOpts, translate.WithPartial(tag, messages))
		return nil
	}
}

// WithPreferred sets the preferred language used by Messages.
func WithPreferred(tag string) Option {
	return func(b *builder) error {
		b.translateOpts = append(b.translateOpts, translate.WithPreferred(tag))
		return nil
	}
}

// WithFormats sets the format preset store consulted by T.
func WithFormats(formats *icu.Formats) Option {
	return func(b *builder) error {
		if formats == nil {
			return fmt.Errorf("polyglot: formats cannot be nil")
		}
		b.formats = formats
		return nil
	}
}

// T resolves and renders the message for the given language tag. Lookup is
// best-effort, mirroring how translations degrade in practice: an unknown
// key renders as the key itself, a malformed tag or template falls back to
// the rawest useful output. Use the pkg/translate and pkg/icu packages
// directly when errors must surface.
func (b *Bundle) T(lang, key string, params icu.Params) string {
	tag, err := b.registry.Parse(lang)
	if err != nil {
		return key
	}

	template, ok := b.translator.MessagesFor(tag)[key]
	if !ok {
		return key
	}

	out, err := icu.Render(tag, template, params, icu.WithFormats(b.formats))
	if err != nil {
		return template
	}
	return out
}

// MessagesFor resolves the merged message set for a language tag.
func (b *Bundle) MessagesFor(tag *langtag.Tag) translate.Messages {
	return b.translator.MessagesFor(tag)
}

// Translator returns the underlying layered translator.
func (b *Bundle) Translator() *translate.Translator { return b.translator }

// Registry returns the bundle's tag registry.
func (b *Bundle) Registry() *langtag.Registry { return b.registry }

// Formats returns the bundle's format preset store.
func (b *Bundle) Formats() *icu.Formats { return b.formats }

// Languages returns the explicitly supported language tags in registration
// order.
func (b *Bundle) Languages() []string {
	supported := b.translator.Supported()
	out := make([]string, len(supported))
	for i, tag := range supported {
		out[i] = tag.String()
	}
	return out
}
