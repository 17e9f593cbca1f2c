// Package messages holds the embedded English and Spanish catalogs for every
// user-facing message and maps domain outcomes to catalog keys.
package messages

import (
	"embed"
	"errors"
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/dmitrymomot/curp/pkg/curp"
	"github.com/dmitrymomot/curp/pkg/datevalidator"
	"github.com/dmitrymomot/curp/pkg/i18n"
	"github.com/dmitrymomot/curp/pkg/validator"
)

//go:embed locales/*.yaml
var locales embed.FS

// Supported languages.
const (
	English = "en"
	Spanish = "es"
)

// Catalog keys referenced from code.
const (
	KeyCURPGenerated      = "curp.generated"
	KeyEmptyField         = "curp.empty_field"
	KeyUnknownState       = "curp.unknown_state"
	KeyInvalidSex         = "curp.invalid_sex"
	KeyNotWellFormed      = "curp.not_well_formed"
	KeyValidationFailed   = "validation.failed"
	KeyOutOfRange         = "validation.range"
	KeyInvalidRequestBody = "error.invalid_request_body"
	KeyQRFailed           = "error.qr_failed"
	KeyInternal           = "error.internal"
	KeyNotFound           = "error.not_found"
	KeyMethodNotAllowed   = "error.method_not_allowed"
)

// Catalog parses and merges every embedded locale file.
func Catalog() (map[string]map[string]any, error) {
	files, err := fs.Glob(locales, "locales/*.yaml")
	if err != nil {
		return nil, err
	}

	catalogs := make([]map[string]map[string]any, 0, len(files))
	for _, name := range files {
		data, err := locales.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		catalog, err := i18n.ParseYAML(data)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		catalogs = append(catalogs, catalog)
	}
	return i18n.Merge(catalogs...), nil
}

// New builds a translator over the embedded catalogs. English is the
// default unless overridden with i18n.WithDefaultLanguage.
func New(opts ...i18n.Option) (*i18n.Translator, error) {
	catalog, err := Catalog()
	if err != nil {
		return nil, err
	}
	return i18n.NewTranslator(catalog, append([]i18n.Option{i18n.WithDefaultLanguage(English)}, opts...)...)
}

// DateReason renders a date validation outcome in lang.
func DateReason(t *i18n.Translator, lang string, res datevalidator.Result) string {
	return t.T(lang, "date."+string(res.Reason), "month", strconv.Itoa(res.Month))
}

// Field renders a field label such as "given_names" in lang.
func Field(t *i18n.Translator, lang, field string) string {
	return t.T(lang, "field."+field)
}

// ErrorKey maps a generation error to its catalog key and arguments.
// Unknown errors map to the internal error key.
func ErrorKey(err error) (string, []string) {
	var fieldErr *curp.FieldError
	field := ""
	if errors.As(err, &fieldErr) {
		field = fieldErr.Field
	}

	switch {
	case errors.Is(err, curp.ErrEmptyField):
		return KeyEmptyField, []string{"field", field}
	case errors.Is(err, curp.ErrUnknownState):
		return KeyUnknownState, nil
	case errors.Is(err, curp.ErrInvalidSex):
		return KeyInvalidSex, nil
	case errors.Is(err, datevalidator.ErrInvalidInput),
		errors.Is(err, datevalidator.ErrInvalidMonth),
		errors.Is(err, datevalidator.ErrInvalidDay):
		return KeyValidationFailed, nil
	case validator.IsValidationError(err):
		return KeyValidationFailed, nil
	default:
		return KeyInternal, nil
	}
}

// ValidationMessages renders the first failure of every field in lang.
func ValidationMessages(t *i18n.Translator, lang string, verrs validator.ValidationErrors) map[string]string {
	out := make(map[string]string, len(verrs))
	for _, verr := range verrs {
		if _, ok := out[verr.Field]; ok {
			continue
		}
		out[verr.Field] = t.T(lang, verr.TranslationKey, translationArgs(verr.TranslationValues)...)
	}
	return out
}

func translationArgs(values map[string]any) []string {
	args := make([]string, 0, len(values)*2)
	for k, v := range values {
		switch val := v.(type) {
		case []string:
			args = append(args, k, strings.Join(val, ", "))
		default:
			args = append(args, k, fmt.Sprint(val))
		}
	}
	return args
}
