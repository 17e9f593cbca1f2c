package i18n

import "net/http"

// QueryParam is the query parameter that overrides Accept-Language.
const QueryParam = "lang"

// Middleware negotiates the response language and stores it in the request
// context. The "lang" query parameter wins over the Accept-Language header;
// both are matched against the translator's languages, so unsupported values
// fall back to the default. The chosen language is echoed in Content-Language.
func Middleware(t *Translator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			pref := r.URL.Query().Get(QueryParam)
			if pref == "" {
				pref = r.Header.Get("Accept-Language")
			}
			lang := t.Match(pref)
			w.Header().Set("Content-Language", lang)
			next.ServeHTTP(w, r.WithContext(SetLocale(r.Context(), lang)))
		})
	}
}
