package acceptlang

import (
	"context"
	"net/http"
)

type langContextKey struct{}

// Middleware negotiates the request language from the Accept-Language header
// against the available languages and stores the result in the request
// context for FromContext.
//
//	mux.Handle("/", acceptlang.Middleware([]string{"en", "de"})(handler))
func Middleware(available []string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			lang := Preferred(r.Header.Get("Accept-Language"), available)
			next.ServeHTTP(w, r.WithContext(NewContext(r.Context(), lang)))
		})
	}
}

// NewContext returns a context carrying the negotiated language.
func NewContext(ctx context.Context, lang string) context.Context {
	return context.WithValue(ctx, langContextKey{}, lang)
}

// FromContext returns the negotiated language stored by Middleware.
func FromContext(ctx context.Context) (string, bool) {
	lang, ok := ctx.Value(langContextKey{}).(string)
	return lang, ok
}
