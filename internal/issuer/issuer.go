// Package issuer turns raw form input into a code. It validates the birth
// date and the remaining fields, normalizes names, resolves the state and
// sex, generates the code and records the outcome in logs and metrics.
package issuer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dmitrymomot/curp/internal/metrics"
	"github.com/dmitrymomot/curp/pkg/curp"
	"github.com/dmitrymomot/curp/pkg/datevalidator"
	"github.com/dmitrymomot/curp/pkg/logger"
	"github.com/dmitrymomot/curp/pkg/sanitizer"
	"github.com/dmitrymomot/curp/pkg/validator"
)

// Input field names. Name, sex and state fields share their names with curp.FieldError.
const (
	FieldBirthYear  = "birth_year"
	FieldBirthMonth = "birth_month"
	FieldBirthDay   = "birth_day"
)

// maxNameLength bounds every free-text field.
const maxNameLength = 100

// Failure kinds reported to metrics.
const (
	failureDate       = "date"
	failureValidation = "validation"
	failureState      = "state"
	failureSex        = "sex"
	failureInternal   = "internal"
)

// sexOptions are the accepted spellings of the sex field.
var sexOptions = []string{"H", "M", "HOMBRE", "MUJER", "MALE", "FEMALE"}

// Request holds raw, unsanitized form input.
type Request struct {
	GivenNames      string
	PaternalSurname string
	MaternalSurname string
	// BirthYear is two or four digits; only the last two are used.
	BirthYear  string
	BirthMonth string
	BirthDay   string
	Sex        string
	State      string
}

// Result describes an issued code.
type Result struct {
	CURP               string
	EffectiveGivenName string
	State              string
	StateCode          string
	Sex                curp.Sex
	BirthDate          time.Time
}

// DateError reports a birth date that is not a real calendar date.
type DateError struct {
	Result datevalidator.Result
}

func (e *DateError) Error() string {
	return e.Result.Err().Error()
}

func (e *DateError) Unwrap() error {
	return e.Result.Err()
}

// Service issues codes. It is safe for concurrent use.
type Service struct {
	generator *curp.Generator
	metrics   *metrics.Metrics
	log       *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithGenerator replaces the default code generator.
func WithGenerator(g *curp.Generator) Option {
	return func(s *Service) {
		if g != nil {
			s.generator = g
		}
	}
}

// WithMetrics enables metrics. Without it the service records nothing.
func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

// WithLogger sets the logger. Defaults to a discarding logger.
func WithLogger(l *slog.Logger) Option {
	return func(s *Service) {
		if l != nil {
			s.log = l
		}
	}
}

// New creates a Service.
func New(opts ...Option) *Service {
	s := &Service{
		generator: curp.NewGenerator(),
		log:       slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.With(logger.Component("issuer"))
	return s
}

// ValidateDate checks a birth date. A four-digit year is reduced to its last
// two digits first.
func (s *Service) ValidateDate(ctx context.Context, year, month, day string) datevalidator.Result {
	res := datevalidator.Validate(NormalizeYear(year), month, day)
	s.metrics.IncDateValidation(string(res.Reason))
	if !res.Valid {
		s.log.DebugContext(ctx, "date rejected",
			logger.Event("date.rejected"),
			logger.Reason(string(res.Reason)),
		)
	}
	return res
}

// Issue validates req and generates a code.
//
// Errors are one of:
//   - *DateError when the birth date is not a real date
//   - validator.ValidationErrors when fields are blank, too long or malformed
//   - *curp.FieldError wrapping curp.ErrUnknownState or curp.ErrInvalidSex
func (s *Service) Issue(ctx context.Context, req Request) (Result, error) {
	start := time.Now()
	defer func() {
		s.metrics.ObserveIssueLatency(time.Since(start))
	}()

	date := s.ValidateDate(ctx, req.BirthYear, req.BirthMonth, req.BirthDay)
	if !date.Valid {
		s.metrics.IncFailure(failureDate)
		return Result{}, &DateError{Result: date}
	}

	if err := validateRequest(req); err != nil {
		s.metrics.IncFailure(failureValidation)
		s.log.InfoContext(ctx, "request rejected",
			logger.Event("curp.rejected"),
			logger.Fields(validator.ExtractValidationErrors(err).Fields()...),
		)
		return Result{}, err
	}

	stateName, ok := curp.ResolveState(req.State)
	if !ok {
		s.metrics.IncFailure(failureState)
		s.log.InfoContext(ctx, "unknown state", logger.Event("curp.rejected"), logger.Reason("unknown_state"))
		return Result{}, &curp.FieldError{Field: curp.FieldState, Err: curp.ErrUnknownState}
	}

	sex, err := curp.ParseSex(req.Sex)
	if err != nil {
		s.metrics.IncFailure(failureSex)
		return Result{}, &curp.FieldError{Field: curp.FieldSex, Err: err}
	}

	person := curp.Person{
		GivenNames:      sanitizer.PersonName(req.GivenNames),
		PaternalSurname: sanitizer.PersonName(req.PaternalSurname),
		MaternalSurname: sanitizer.PersonName(req.MaternalSurname),
		BirthDate:       curp.NewBirthDate(date.Year, date.Month, date.Day),
		Sex:             sex,
		State:           stateName,
	}

	code, err := s.generator.Generate(person)
	if err != nil {
		var fieldErr *curp.FieldError
		if errors.As(err, &fieldErr) && errors.Is(err, curp.ErrEmptyField) {
			// Validation passed but sanitizing left nothing to build from.
			s.metrics.IncFailure(failureValidation)
			return Result{}, err
		}
		s.metrics.IncFailure(failureInternal)
		s.log.ErrorContext(ctx, "generate failed", logger.Error(err))
		return Result{}, fmt.Errorf("generate: %w", err)
	}

	stateCode, _ := curp.StateCode(stateName)
	s.metrics.IncGenerated(stateCode)
	s.log.InfoContext(ctx, "curp issued",
		logger.Event("curp.issued"),
		logger.Code(sanitizer.MaskCode(code)),
		logger.State(stateCode),
		slog.String("sex", sex.String()),
		logger.Duration(time.Since(start)),
	)

	return Result{
		CURP:               code,
		EffectiveGivenName: curp.EffectiveGivenName(person.GivenNames),
		State:              stateName,
		StateCode:          stateCode,
		Sex:                sex,
		BirthDate:          date.Time(),
	}, nil
}

func validateRequest(req Request) error {
	return validator.Apply(
		validator.Required(curp.FieldGivenNames, req.GivenNames),
		validator.MaxLen(curp.FieldGivenNames, req.GivenNames, maxNameLength),
		validator.PersonName(curp.FieldGivenNames, req.GivenNames),
		validator.Required(curp.FieldPaternalSurname, req.PaternalSurname),
		validator.MaxLen(curp.FieldPaternalSurname, req.PaternalSurname, maxNameLength),
		validator.PersonName(curp.FieldPaternalSurname, req.PaternalSurname),
		validator.Required(curp.FieldMaternalSurname, req.MaternalSurname),
		validator.MaxLen(curp.FieldMaternalSurname, req.MaternalSurname, maxNameLength),
		validator.PersonName(curp.FieldMaternalSurname, req.MaternalSurname),
		validator.Required(curp.FieldSex, req.Sex),
		validator.OneOfFold(curp.FieldSex, req.Sex, sexOptions),
		validator.Required(curp.FieldState, req.State),
		validator.MaxLen(curp.FieldState, req.State, maxNameLength),
	)
}

// NormalizeYear keeps the last two digits of a trimmed four-digit year and
// returns anything else unchanged.
func NormalizeYear(year string) string {
	year = strings.TrimSpace(year)
	if len(year) != 4 {
		return year
	}
	for i := 0; i < len(year); i++ {
		if year[i] < '0' || year[i] > '9' {
			return year
		}
	}
	return year[2:]
}
