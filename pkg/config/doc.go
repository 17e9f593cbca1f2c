// Package config loads typed configuration from environment variables.
//
// Structs are annotated with `env` tags understood by
// github.com/caarlos0/env/v11; .env files are read with
// github.com/joho/godotenv. Each config type is parsed once and cached for
// the lifetime of the process.
//
// # Usage
//
//	type Config struct {
//		httpserver.Config
//
//		Env         string `env:"APP_ENV" envDefault:"development"`
//		DefaultLang string `env:"DEFAULT_LANG" envDefault:"en"`
//	}
//
//	func (c *Config) Validate() error {
//		if c.DefaultLang != "en" && c.DefaultLang != "es" {
//			return fmt.Errorf("unsupported DEFAULT_LANG %q", c.DefaultLang)
//		}
//		return nil
//	}
//
//	var cfg Config
//	if err := config.Load(&cfg, config.WithPrefix("CURPD_")); err != nil {
//		return err
//	}
//
// Configs implementing Validator are checked right after parsing.
//
// # Error Handling
//
// Errors are joined with a sentinel and can be tested with errors.Is:
//
//   - ErrParsingConfig: a variable is missing or malformed
//   - ErrInvalidConfig: Validate rejected the parsed values
//   - ErrLoadingEnvFile: an explicitly requested .env file could not be read
//   - ErrNilPointer: Load was given a nil pointer
//
// Call ResetCache between tests that load the same type with different values.
package config
