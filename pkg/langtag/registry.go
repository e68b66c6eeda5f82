package langtag

import (
	"fmt"
	"regexp"
	"strings"
	"sync"
)

// Tag grammar, a practical subset of BCP 47. Anchored: the whole input must
// match. Case-insensitive; canonical casing is applied per subtag afterwards.
var tagPattern = regexp.MustCompile(`^(?i)` +
	`([a-z]{2,3})` + // language
	`(?:-([a-z]{3}))?` + // extended language
	`(?:-([a-z]{4}))?` + // script
	`(?:-([a-z]{2}|[0-9]{3}))?` + // region
	`(?:-([a-z0-9]{5,8}|[0-9][a-z0-9]{3}))?` + // variant
	`(?:-([a-z0-9](?:-[a-z0-9]{1,8})+))?` + // extension
	`$`)

// Registry is an intern table for language tags. Tags obtained from the same
// registry are canonical singletons: parsing the same tag text twice, in any
// casing, yields the same *Tag pointer. A Registry is safe for concurrent use.
type Registry struct {
	mu   sync.RWMutex
	tags map[string]*Tag
}

// NewRegistry creates an empty tag registry.
func NewRegistry() *Registry {
	return &Registry{tags: make(map[string]*Tag)}
}

var defaultRegistry = NewRegistry()

// Default returns the process-wide registry used by the package-level Parse,
// MustParse and FromSubtags functions.
func Default() *Registry { return defaultRegistry }

// Parse parses tag text using the default registry.
func Parse(text string) (*Tag, error) { return defaultRegistry.Parse(text) }

// MustParse parses tag text using the default registry and panics on failure.
// Intended for tags known valid at compile time.
func MustParse(text string) *Tag { return defaultRegistry.MustParse(text) }

// FromSubtags builds a tag from individual subtags using the default registry.
func FromSubtags(language, extended, script, region, variant, extension string) (*Tag, error) {
	return defaultRegistry.FromSubtags(language, extended, script, region, variant, extension)
}

// Parse parses text as a language tag and returns the canonical interned
// instance. Returns ErrInvalidTag when text does not match the tag grammar.
func (r *Registry) Parse(text string) (*Tag, error) {
	key := strings.ToLower(text)

	r.mu.RLock()
	tag, ok := r.tags[key]
	r.mu.RUnlock()
	if ok {
		return tag, nil
	}

	m := tagPattern.FindStringSubmatch(text)
	if m == nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidTag, text)
	}

	return r.intern(Tag{
		language:  strings.ToLower(m[1]),
		extended:  strings.ToLower(m[2]),
		script:    titleCase(m[3]),
		region:    strings.ToUpper(m[4]),
		variant:   strings.ToLower(m[5]),
		extension: strings.ToLower(m[6]),
	}), nil
}

// MustParse is like Parse but panics on invalid input.
func (r *Registry) MustParse(text string) *Tag {
	tag, err := r.Parse(text)
	if err != nil {
		panic(err)
	}
	return tag
}

// FromSubtags builds a tag from individual subtags. Absent subtags are passed
// as empty strings. The reconstruction is validated against the tag grammar,
// so malformed subtags fail with ErrInvalidTag just as Parse does.
func (r *Registry) FromSubtags(language, extended, script, region, variant, extension string) (*Tag, error) {
	t := Tag{
		language:  strings.ToLower(language),
		extended:  strings.ToLower(extended),
		script:    titleCase(script),
		region:    strings.ToUpper(region),
		variant:   strings.ToLower(variant),
		extension: strings.ToLower(extension),
	}
	return r.Parse(t.join())
}

// intern returns the canonical instance for t, storing it on first sight.
// t must already carry canonical subtag casing.
func (r *Registry) intern(t Tag) *Tag {
	t.text = t.join()
	key := strings.ToLower(t.text)

	r.mu.Lock()
	defer r.mu.Unlock()
	if existing, ok := r.tags[key]; ok {
		return existing
	}
	t.registry = r
	r.tags[key] = &t
	return &t
}

func titleCase(s string) string {
	if s == "" {
		return ""
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
