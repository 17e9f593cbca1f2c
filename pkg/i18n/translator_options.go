package i18n

import "log/slog"

// Option configures a Translator.
type Option func(*Translator)

// WithDefaultLanguage sets the language used when negotiation finds no
// supported match. Empty values are ignored.
func WithDefaultLanguage(lang string) Option {
	return func(t *Translator) {
		if lang != "" {
			t.defaultLang = lang
		}
	}
}

// WithFallbackToKey controls what T returns for a missing key: the key
// itself (the default) or "".
func WithFallbackToKey(fallback bool) Option {
	return func(t *Translator) { t.fallbackToKey = fallback }
}

// WithMissingKeyLogger reports every lookup of a missing key at warn level.
// Missing keys are silent when no logger is set.
func WithMissingKeyLogger(l *slog.Logger) Option {
	return func(t *Translator) { t.missingKeys = l }
}
