package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/dmitrymomot/curp/pkg/sanitizer"
)

// Deployment environments recognised by WithEnvironment.
const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

// Format selects the slog handler used for output.
type Format string

const (
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// PersonalDataKeys are attribute keys carrying applicant data. Pass them to
// WithRedactedKeys so they never reach the log sink in clear text.
var PersonalDataKeys = []string{
	"given_names",
	"paternal_surname",
	"maternal_surname",
	"birth_date",
	"curp",
}

// Option configures New.
type Option func(*settings)

type settings struct {
	level      slog.Level
	format     Format
	output     io.Writer
	attrs      []slog.Attr
	extractors []ContextExtractor
	redacted   map[string]struct{}
}

func WithLevel(l slog.Level) Option {
	return func(s *settings) { s.level = l }
}

// WithLevelName sets the level from its name (debug, info, warn, error).
// Unknown names keep the current level.
func WithLevelName(name string) Option {
	return func(s *settings) {
		if l, ok := ParseLevel(name); ok {
			s.level = l
		}
	}
}

// ParseLevel maps a level name to a slog.Level, case-insensitively.
func ParseLevel(name string) (slog.Level, bool) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(strings.TrimSpace(name))); err != nil {
		return slog.LevelInfo, false
	}
	return l, true
}

// WithFormat sets the output format. It panics on anything other than
// FormatJSON or FormatText so a bad setting stops the process at startup.
func WithFormat(f Format) Option {
	return func(s *settings) {
		switch f {
		case FormatJSON, FormatText:
			s.format = f
		default:
			panic(fmt.Errorf("invalid log format %q: must be %q or %q", f, FormatJSON, FormatText))
		}
	}
}

// WithTextFormatter is shorthand for WithFormat(FormatText).
func WithTextFormatter() Option {
	return WithFormat(FormatText)
}

// WithOutput sets the destination writer. Nil is ignored.
func WithOutput(w io.Writer) Option {
	return func(s *settings) {
		if w != nil {
			s.output = w
		}
	}
}

// WithAttr adds static attributes to every record.
func WithAttr(attrs ...slog.Attr) Option {
	return func(s *settings) { s.attrs = append(s.attrs, attrs...) }
}

// WithContextExtractors registers extractors run on every record. Nil
// extractors are skipped.
func WithContextExtractors(extractors ...ContextExtractor) Option {
	return func(s *settings) {
		for _, ex := range extractors {
			if ex != nil {
				s.extractors = append(s.extractors, ex)
			}
		}
	}
}

// WithRedactedKeys masks string values logged under any of keys, keeping
// only the first and last rune.
func WithRedactedKeys(keys ...string) Option {
	return func(s *settings) {
		if s.redacted == nil {
			s.redacted = make(map[string]struct{}, len(keys))
		}
		for _, k := range keys {
			s.redacted[k] = struct{}{}
		}
	}
}

// WithEnvironment applies per-environment defaults: text at debug level for
// development, JSON at info level for production ("production" or "prod").
// A non-empty service name is attached together with the environment.
func WithEnvironment(env, service string) Option {
	return func(s *settings) {
		name := EnvDevelopment
		switch strings.ToLower(strings.TrimSpace(env)) {
		case EnvProduction, "prod":
			name = EnvProduction
			s.level = slog.LevelInfo
			s.format = FormatJSON
		default:
			s.level = slog.LevelDebug
			s.format = FormatText
		}
		if service != "" {
			s.attrs = append(s.attrs, slog.String("service", service))
		}
		s.attrs = append(s.attrs, slog.String("env", name))
	}
}

func SetAsDefault(l *slog.Logger) {
	slog.SetDefault(l)
}

// New builds a *slog.Logger. Without options it writes JSON at info level
// to stdout.
func New(opts ...Option) *slog.Logger {
	s := &settings{
		level:  slog.LevelInfo,
		format: FormatJSON,
		output: os.Stdout,
	}
	for _, opt := range opts {
		opt(s)
	}

	handlerOpts := &slog.HandlerOptions{Level: s.level}
	if len(s.redacted) > 0 {
		handlerOpts.ReplaceAttr = s.redact
	}

	var handler slog.Handler
	if s.format == FormatText {
		handler = slog.NewTextHandler(s.output, handlerOpts)
	} else {
		handler = slog.NewJSONHandler(s.output, handlerOpts)
	}
	if len(s.attrs) > 0 {
		handler = handler.WithAttrs(s.attrs)
	}

	return slog.New(withContext(handler, s.extractors))
}

func (s *settings) redact(_ []string, a slog.Attr) slog.Attr {
	if _, ok := s.redacted[a.Key]; !ok {
		return a
	}
	if a.Value.Kind() != slog.KindString {
		return slog.String(a.Key, "[redacted]")
	}
	return slog.String(a.Key, sanitizer.MaskString(a.Value.String(), 1))
}
