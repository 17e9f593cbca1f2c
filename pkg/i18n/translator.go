package i18n

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"sort"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLanguage is used when no language is configured or negotiated.
const DefaultLanguage = "en"

// Translator looks up messages by dot-separated key. It is immutable after
// construction and safe for concurrent use.
type Translator struct {
	translations  map[string]map[string]any
	defaultLang   string
	fallbackToKey bool
	missingKeys   *slog.Logger
	langs         []string
	matcher       language.Matcher
}

// NewTranslator builds a Translator from parsed catalogs.
func NewTranslator(translations map[string]map[string]any, options ...Option) (*Translator, error) {
	if len(translations) == 0 {
		return nil, ErrNoTranslations
	}

	t := &Translator{
		translations:  translations,
		defaultLang:   DefaultLanguage,
		fallbackToKey: true,
	}
	for _, option := range options {
		option(t)
	}

	for lang, tree := range translations {
		if lang == "" {
			return nil, fmt.Errorf("%w: empty language code", ErrInvalidCatalog)
		}
		if tree == nil {
			return nil, fmt.Errorf("%w: nil translations for %q", ErrInvalidCatalog, lang)
		}
		t.langs = append(t.langs, lang)
	}
	sort.Strings(t.langs)

	if _, ok := translations[t.defaultLang]; !ok {
		return nil, fmt.Errorf("%w: default language %q has no translations", ErrInvalidCatalog, t.defaultLang)
	}

	// The default language goes first so the matcher falls back to it.
	tags := []language.Tag{language.Make(t.defaultLang)}
	for _, lang := range t.langs {
		if lang != t.defaultLang {
			tags = append(tags, language.Make(lang))
		}
	}
	t.matcher = language.NewMatcher(tags)

	return t, nil
}

// SupportedLanguages returns the loaded language codes in alphabetical order.
func (t *Translator) SupportedLanguages() []string {
	return append([]string(nil), t.langs...)
}

// DefaultLanguage returns the fallback language code.
func (t *Translator) DefaultLanguage() string {
	return t.defaultLang
}

// Match picks the best supported language for one or more preferences. Each
// preference may be a plain tag ("es-MX") or a full Accept-Language header
// ("es-MX,es;q=0.9,en;q=0.5"). Empty or unparsable input yields the default.
func (t *Translator) Match(preferences ...string) string {
	var tags []language.Tag
	for _, pref := range preferences {
		pref = strings.TrimSpace(pref)
		if pref == "" {
			continue
		}
		if len(pref) > maxAcceptLanguageLength {
			pref = pref[:maxAcceptLanguageLength]
		}
		parsed, _, err := language.ParseAcceptLanguage(pref)
		if err != nil {
			continue
		}
		tags = append(tags, parsed...)
	}
	if len(tags) == 0 {
		return t.defaultLang
	}

	_, idx, confidence := t.matcher.Match(tags...)
	if confidence == language.No {
		return t.defaultLang
	}
	if idx == 0 {
		return t.defaultLang
	}
	return t.matcherLang(idx)
}

// maxAcceptLanguageLength bounds header parsing work.
const maxAcceptLanguageLength = 4096

// matcherLang maps a matcher index back to a language code. Index 0 is the
// default language; the rest follow t.langs without it.
func (t *Translator) matcherLang(idx int) string {
	i := 0
	for _, lang := range t.langs {
		if lang == t.defaultLang {
			continue
		}
		i++
		if i == idx {
			return lang
		}
	}
	return t.defaultLang
}

// HasTranslation checks if a translation exists for the given language and key.
func (t *Translator) HasTranslation(lang, key string) bool {
	langMap, ok := t.translations[lang]
	if !ok {
		return false
	}
	_, ok = lookup(langMap, key)
	return ok
}

// lookup traverses a nested map using dot-separated keys.
func lookup(m map[string]any, key string) (any, bool) {
	parts := strings.Split(key, ".")
	current := m
	for i, part := range parts {
		val, ok := current[part]
		if !ok {
			return nil, false
		}
		if i == len(parts)-1 {
			return val, true
		}
		next, ok := val.(map[string]any)
		if !ok {
			return nil, false
		}
		current = next
	}
	return nil, false
}

var paramRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// format substitutes "%{name}" placeholders from key, value argument pairs.
// Unknown placeholders are left as is; an odd trailing argument is ignored.
func format(tmpl string, args []string) string {
	if len(args) < 2 {
		return tmpl
	}
	params := make(map[string]string, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		params[args[i]] = args[i+1]
	}
	return paramRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		if val, ok := params[match[2:len(match)-1]]; ok {
			return val
		}
		return match
	})
}

// T translates key for lang, substituting key/value pairs into "%{name}"
// placeholders:
//
//	// month_30: "month %{month} has only 30 days"
//	t.T("en", "date.thirty_day_month", "month", "4")
//
// An unsupported language falls back to the default language. A missing key
// returns the key itself, or "" when WithFallbackToKey(false) is set.
func (t *Translator) T(lang, key string, args ...string) string {
	langMap, ok := t.translations[lang]
	if !ok {
		langMap = t.translations[t.defaultLang]
		lang = t.defaultLang
	}

	val, ok := lookup(langMap, key)
	if ok {
		if s, isString := val.(string); isString {
			return format(s, args)
		}
	}

	if t.missingKeys != nil {
		t.missingKeys.Warn("translation not found", slog.String("lang", lang), slog.String("key", key))
	}
	if t.fallbackToKey {
		return format(key, args)
	}
	return ""
}

// Tc translates key using the language stored in ctx by Middleware or SetLocale.
func (t *Translator) Tc(ctx context.Context, key string, args ...string) string {
	return t.T(GetLocaleOr(ctx, t.defaultLang), key, args...)
}
