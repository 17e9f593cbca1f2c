// Package i18n translates user-facing messages and negotiates the response
// language.
//
// Catalogs are YAML documents keyed by language code, with nested keys
// addressed by dot notation:
//
//	en:
//	  date:
//	    thirty_day_month: "month %{month} has only 30 days"
//	es:
//	  date:
//	    thirty_day_month: "El mes %{month} solo tiene 30 días"
//
// # Architecture
//
// ParseYAML turns a catalog into a language → key tree map; Merge combines
// several of them. NewTranslator validates the result and builds a
// golang.org/x/text/language matcher over the loaded languages, with the
// default language first so it doubles as the fallback. A Translator is
// immutable after construction, so it needs no locking.
//
// # Usage
//
//	catalog, err := i18n.ParseYAML(data)
//	if err != nil {
//		return err
//	}
//	tr, err := i18n.NewTranslator(catalog, i18n.WithDefaultLanguage("en"))
//	if err != nil {
//		return err
//	}
//
//	lang := tr.Match("es-MX,es;q=0.9")                       // "es"
//	msg := tr.T(lang, "date.thirty_day_month", "month", "4") // "El mes 4 solo tiene 30 días"
//
// # HTTP Middleware
//
// Middleware stores the negotiated language in the request context (the
// "lang" query parameter wins over Accept-Language) and Tc reads it back:
//
//	r.Use(i18n.Middleware(tr))
//	msg := tr.Tc(req.Context(), "curp.unknown_state")
//
// # Error Handling
//
// Construction errors wrap ErrFailedToParseYAML, ErrInvalidCatalog or
// ErrNoTranslations. Lookups never fail: a missing key returns the key itself
// unless WithFallbackToKey(false) is set.
package i18n
