package translate

import "github.com/dmitrymomot/polyglot/pkg/langtag"

// Messages is a flat set of message templates keyed by message name.
// Resolved message sets returned by a Provider are shared read-only views;
// callers must not mutate them.
type Messages map[string]string

// Supplier produces a message set for a resolved language. The default
// supplier of a Translator receives the requested tag, so default messages
// may depend on it, e.g. to echo the language back to the user.
type Supplier func(tag *langtag.Tag) Messages

// Provider resolves the best available message set for a requested language.
type Provider interface {
	MessagesFor(tag *langtag.Tag) Messages
}

// ProviderFunc adapts a plain function to the Provider interface.
type ProviderFunc func(tag *langtag.Tag) Messages

// MessagesFor calls f.
func (f ProviderFunc) MessagesFor(tag *langtag.Tag) Messages { return f(tag) }

// Constant returns a Supplier that always yields the same message set.
func Constant(messages Messages) Supplier {
	return func(*langtag.Tag) Messages { return messages }
}
