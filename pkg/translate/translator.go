package translate

import (
	"fmt"
	"maps"
	"sort"
	"strings"
	"sync/atomic"

	"github.com/dmitrymomot/polyglot/pkg/langtag"
)

// Translator resolves layered, partially-specified translations for a
// requested language. It is immutable: every layering operation returns a new
// Translator, so a Translator value is safe for concurrent use.
//
// Resolution walks the generalization chain of the best-matching supported
// language and merges message sets root-to-leaf over the default set, so a
// partial "de-CH" layer inherits everything it does not override from "de"
// and from the defaults.
type Translator struct {
	registry  *langtag.Registry
	base      Supplier
	baseSet   Messages // constant default set when known; enables completeness checks
	suppliers map[*langtag.Tag]Supplier
	supported []*langtag.Tag // insertion order; first-seen wins equality ties
	preferred *langtag.Tag
	under     Provider // optional provider this translator extends

	// Single-entry advisory cache for the most recent lookup. Recomputation
	// is idempotent, so a lost update is harmless.
	cache atomic.Pointer[cacheEntry]
}

type cacheEntry struct {
	tag      *langtag.Tag
	messages Messages
}

// Option configures a Translator during construction.
type Option func(*Translator) error

// New creates a Translator with the given options. Without options it serves
// an empty default message set for every language, using the process-wide
// tag registry.
func New(opts ...Option) (*Translator, error) {
	t := &Translator{
		registry:  langtag.Default(),
		base:      Constant(Messages{}),
		suppliers: make(map[*langtag.Tag]Supplier),
	}

	for _, opt := range opts {
		if err := opt(t); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	return t, nil
}

// WithRegistry sets the tag registry used to parse and intern language tags.
// Defaults to the process-wide registry.
func WithRegistry(registry *langtag.Registry) Option {
	return func(t *Translator) error {
		if registry == nil {
			return fmt.Errorf("translate: registry cannot be nil")
		}
		t.registry = registry
		return nil
	}
}

// WithDefaultMessages sets a constant default message set. Full translations
// added via WithLanguage or Supporting are checked for completeness against
// this set.
func WithDefaultMessages(messages Messages) Option {
	return func(t *Translator) error {
		t.base = Constant(messages)
		t.baseSet = messages
		return nil
	}
}

// WithDefaultSupplier sets a default message supplier that may depend on the
// requested language. Completeness of full translations cannot be verified
// against a supplier and remains a documented contract of the caller.
func WithDefaultSupplier(supplier Supplier) Option {
	return func(t *Translator) error {
		if supplier == nil {
			return fmt.Errorf("translate: default supplier cannot be nil")
		}
		t.base = supplier
		t.baseSet = nil
		return nil
	}
}

// WithLanguage adds a full translation for a language. Equivalent to
// Supporting, including the completeness check.
func WithLanguage(tag string, messages Messages) Option {
	return func(t *Translator) error {
		parsed, err := t.registry.Parse(tag)
		if err != nil {
			return err
		}
		if err := t.checkComplete(parsed, messages); err != nil {
			return err
		}
		t.addLayer(parsed, Constant(messages))
		return nil
	}
}

// WithPartial adds a partial translation for a language. Unset keys fall
// through to more generic layers and the default set.
func WithPartial(tag string, messages Messages) Option {
	return func(t *Translator) error {
		parsed, err := t.registry.Parse(tag)
		if err != nil {
			return err
		}
		t.addLayer(parsed, Constant(messages))
		return nil
	}
}

// WithPreferred sets the preferred language used by Messages.
func WithPreferred(tag string) Option {
	return func(t *Translator) error {
		parsed, err := t.registry.Parse(tag)
		if err != nil {
			return err
		}
		t.preferred = parsed
		return nil
	}
}

// Supporting returns a new Translator that additionally serves a full
// translation for the given language. When the default message set is a
// known constant, the supplied messages must cover every default key;
// missing keys fail eagerly with ErrIncompleteTranslation.
func (t *Translator) Supporting(tag string, messages Messages) (*Translator, error) {
	parsed, err := t.registry.Parse(tag)
	if err != nil {
		return nil, err
	}
	if err := t.checkComplete(parsed, messages); err != nil {
		return nil, err
	}
	next := t.clone()
	next.addLayer(parsed, Constant(messages))
	return next, nil
}

// PartiallySupporting returns a new Translator that additionally serves a
// partial translation for the given language. No completeness requirement;
// unset keys are inherited from ancestor layers and the default set.
func (t *Translator) PartiallySupporting(tag string, messages Messages) (*Translator, error) {
	parsed, err := t.registry.Parse(tag)
	if err != nil {
		return nil, err
	}
	next := t.clone()
	next.addLayer(parsed, Constant(messages))
	return next, nil
}

// Preferring returns a new Translator with the given preferred language.
func (t *Translator) Preferring(tag string) (*Translator, error) {
	parsed, err := t.registry.Parse(tag)
	if err != nil {
		return nil, err
	}
	next := t.clone()
	next.preferred = parsed
	return next, nil
}

// Extending returns a new Translator that resolves base's messages first and
// overlays its own resolved messages on top, so this translator's keys win on
// conflict. The result carries its own lookup cache, independent of both
// inputs.
func (t *Translator) Extending(base Provider) *Translator {
	next := t.clone()
	next.under = base
	return next
}

// MessagesFor resolves the message set for the requested language.
//
// The most recent result is cached per requested tag; repeated calls with the
// identical tag return the identical map without recomputation, which makes
// MessagesFor cheap enough to call on every access. Resolution never fails:
// with no matching supported language the default set is served.
func (t *Translator) MessagesFor(tag *langtag.Tag) Messages {
	if entry := t.cache.Load(); entry != nil && entry.tag == tag {
		return entry.messages
	}

	merged := make(Messages)
	if t.under != nil {
		maps.Copy(merged, t.under.MessagesFor(tag))
	}
	maps.Copy(merged, t.base(tag))

	if best := tag.PickBestMatching(t.supported); best != nil {
		// Generalization chain of the best match, most generic first.
		var chain []*langtag.Tag
		for p := best; p != nil; p = p.Parent() {
			chain = append(chain, p)
		}
		for i := len(chain) - 1; i >= 0; i-- {
			if supplier, ok := t.suppliers[chain[i]]; ok {
				maps.Copy(merged, supplier(tag))
			}
		}
	}

	t.cache.Store(&cacheEntry{tag: tag, messages: merged})
	return merged
}

// Messages resolves the message set for the preferred language. Returns
// ErrNoPreferredLanguage when no preferred language has been set.
func (t *Translator) Messages() (Messages, error) {
	if t.preferred == nil {
		return nil, ErrNoPreferredLanguage
	}
	return t.MessagesFor(t.preferred), nil
}

// Preferred returns the preferred language, or nil when unset.
func (t *Translator) Preferred() *langtag.Tag { return t.preferred }

// Supported returns the explicitly supported languages in the order they
// were added.
func (t *Translator) Supported() []*langtag.Tag {
	out := make([]*langtag.Tag, len(t.supported))
	copy(out, t.supported)
	return out
}

// Registry returns the tag registry this translator parses tags with.
func (t *Translator) Registry() *langtag.Registry { return t.registry }

func (t *Translator) clone() *Translator {
	next := &Translator{
		registry:  t.registry,
		base:      t.base,
		baseSet:   t.baseSet,
		suppliers: maps.Clone(t.suppliers),
		supported: make([]*langtag.Tag, len(t.supported)),
		preferred: t.preferred,
		under:     t.under,
	}
	copy(next.supported, t.supported)
	return next
}

func (t *Translator) addLayer(tag *langtag.Tag, supplier Supplier) {
	if _, exists := t.suppliers[tag]; !exists {
		t.supported = append(t.supported, tag)
	}
	t.suppliers[tag] = supplier
}

func (t *Translator) checkComplete(tag *langtag.Tag, messages Messages) error {
	if t.baseSet == nil {
		return nil
	}
	var missing []string
	for key := range t.baseSet {
		if _, ok := messages[key]; !ok {
			missing = append(missing, key)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	sort.Strings(missing)
	return fmt.Errorf("%w: %s is missing %s", ErrIncompleteTranslation, tag, strings.Join(missing, ", "))
}
