package config

import (
	"errors"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Validator is implemented by configs that check their own values after
// parsing. A failing Validate makes Load return ErrInvalidConfig.
type Validator interface {
	Validate() error
}

// Option tunes a single Load call.
type Option func(*loadOptions)

type loadOptions struct {
	prefix string
	files  []string
}

// WithPrefix reads every variable as prefix+name, so `env:"HTTP_ADDR"` with
// prefix "CURPD_" reads CURPD_HTTP_ADDR. Configs loaded with different
// prefixes are cached separately.
func WithPrefix(prefix string) Option {
	return func(o *loadOptions) { o.prefix = prefix }
}

// WithEnvFiles loads the given .env files before parsing. Unlike the default
// .env, a missing file is an error.
func WithEnvFiles(paths ...string) Option {
	return func(o *loadOptions) { o.files = append(o.files, paths...) }
}

type entry struct {
	once  sync.Once
	value any
	err   error
}

// store caches one parsed value per config type and prefix.
var store = struct {
	mu      sync.Mutex
	entries map[string]*entry
}{entries: make(map[string]*entry)}

var defaultEnvFile sync.Once

// Load parses the environment into v. The .env file in the working directory
// is read once per process if present.
//
// Each config type is parsed once and cached; later calls copy the cached
// value into v, even if the environment changed in between. Failed loads are
// not cached.
//
//	var cfg struct {
//		Addr string `env:"HTTP_ADDR" envDefault:":8080"`
//		Lang string `env:"DEFAULT_LANG" envDefault:"en"`
//	}
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := loadOptions{}
	for _, opt := range opts {
		opt(&o)
	}

	defaultEnvFile.Do(func() {
		// A missing .env is normal outside development.
		_ = godotenv.Load()
	})
	if err := LoadEnv(o.files...); err != nil {
		return err
	}

	key := o.prefix + typeName[T]()

	store.mu.Lock()
	e, ok := store.entries[key]
	if !ok {
		e = &entry{}
		store.entries[key] = e
	}
	store.mu.Unlock()

	e.once.Do(func() {
		var cfg T
		if err := env.ParseWithOptions(&cfg, env.Options{Prefix: o.prefix}); err != nil {
			e.err = errors.Join(ErrParsingConfig, err)
			return
		}
		if val, ok := any(&cfg).(Validator); ok {
			if err := val.Validate(); err != nil {
				e.err = errors.Join(ErrInvalidConfig, err)
				return
			}
		}
		e.value = cfg
	})

	if e.err != nil {
		store.mu.Lock()
		if store.entries[key] == e {
			delete(store.entries, key)
		}
		store.mu.Unlock()
		return e.err
	}

	*v = e.value.(T)
	return nil
}

// LoadEnv loads one or more .env files into the process environment.
// Variables already set in the environment win over file values.
// Configs already cached are not re-parsed; see ResetCache.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		return nil
	}
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// ResetCache drops every cached configuration so the next Load parses the
// environment again. Intended for tests.
func ResetCache() {
	store.mu.Lock()
	defer store.mu.Unlock()
	store.entries = make(map[string]*entry)
}

func typeName[T any]() string {
	t := reflect.TypeFor[T]()
	return t.PkgPath() + "." + t.String()
}
