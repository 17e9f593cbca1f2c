package cli

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/curp/internal/issuer"
	"github.com/dmitrymomot/curp/internal/messages"
	"github.com/dmitrymomot/curp/pkg/curp"
	"github.com/dmitrymomot/curp/pkg/qrcode"
	"github.com/dmitrymomot/curp/pkg/validator"
)

// GenerateOptions holds the flags of the generate command.
type GenerateOptions struct {
	Names    string
	Paternal string
	Maternal string
	Birth    string
	Sex      string
	State    string
	Seed     uint64
	QRPath   string
	QRSize   int
}

// GenerateResult is the JSON payload of the generate command.
type GenerateResult struct {
	CURP               string `json:"curp"`
	EffectiveGivenName string `json:"effective_given_name"`
	State              string `json:"state"`
	StateCode          string `json:"state_code"`
	Sex                string `json:"sex"`
	BirthDate          string `json:"birth_date"`
	QRPath             string `json:"qr_path,omitempty"`
}

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &GenerateOptions{}

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a CURP",
		Long: `Generate a CURP from a person's data.

The birth date is YYYY-MM-DD or YY-MM-DD. Sex is H or M (HOMBRE/MUJER and
MALE/FEMALE are accepted too). The state is matched ignoring case and
accents; aliases such as CDMX and two-letter codes work.`,
		Example: `  curp generate --names "Jose Maria" --paternal Hernandez --maternal Garcia \
    --birth 1990-05-15 --sex H --state Jalisco`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(rootOpts, opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Names, "names", "", "given name(s)")
	cmd.Flags().StringVar(&opts.Paternal, "paternal", "", "paternal surname")
	cmd.Flags().StringVar(&opts.Maternal, "maternal", "", "maternal surname")
	cmd.Flags().StringVar(&opts.Birth, "birth", "", "birth date, YYYY-MM-DD or YY-MM-DD")
	cmd.Flags().StringVar(&opts.Sex, "sex", "", "sex: H or M")
	cmd.Flags().StringVar(&opts.State, "state", "", "state of birth")
	cmd.Flags().Uint64Var(&opts.Seed, "seed", 0, "seed for the two trailing characters (reproducible output)")
	cmd.Flags().StringVar(&opts.QRPath, "qr", "", "also write the code as a PNG QR image to this file")
	cmd.Flags().IntVar(&opts.QRSize, "qr-size", qrcode.DefaultSize, "QR image side in pixels")

	for _, name := range []string{"names", "paternal", "maternal", "birth", "sex", "state"} {
		_ = cmd.MarkFlagRequired(name)
	}

	return cmd
}

func runGenerate(rootOpts *RootOptions, opts *GenerateOptions, cmd *cobra.Command) error {
	out := rootOpts.formatter(cmd)

	year, month, day, ok := splitBirth(opts.Birth)
	if !ok {
		return NewExitError(ExitCommandError,
			fmt.Sprintf("invalid --birth %q: expected YYYY-MM-DD or YY-MM-DD", opts.Birth))
	}

	if opts.QRPath != "" {
		err := validator.Apply(validator.IntRange("qr-size", strconv.Itoa(opts.QRSize), 1, qrcode.MaxSize))
		if err != nil {
			return reportIssueError(rootOpts, out, err)
		}
	}

	generator := rootOpts.generator
	if cmd.Flags().Changed("seed") {
		generator = curp.NewGenerator(curp.WithRand(curp.NewSeededRand(opts.Seed)))
	}
	svc := issuer.New(issuer.WithGenerator(generator), issuer.WithLogger(rootOpts.log))

	res, err := svc.Issue(cmd.Context(), issuer.Request{
		GivenNames:      opts.Names,
		PaternalSurname: opts.Paternal,
		MaternalSurname: opts.Maternal,
		BirthYear:       year,
		BirthMonth:      month,
		BirthDay:        day,
		Sex:             opts.Sex,
		State:           opts.State,
	})
	if err != nil {
		return reportIssueError(rootOpts, out, err)
	}

	result := GenerateResult{
		CURP:               res.CURP,
		EffectiveGivenName: res.EffectiveGivenName,
		State:              res.State,
		StateCode:          res.StateCode,
		Sex:                res.Sex.String(),
		BirthDate:          res.BirthDate.Format("2006-01-02"),
	}

	if opts.QRPath != "" {
		png, err := qrcode.Generate(res.CURP, opts.QRSize)
		if err != nil {
			return WrapExitError(ExitCommandError, "render QR code", err)
		}
		if err := os.WriteFile(opts.QRPath, png, 0o644); err != nil {
			return WrapExitError(ExitCommandError, "write QR code", err)
		}
		result.QRPath = opts.QRPath
		out.VerboseLog("QR code written to %s", opts.QRPath)
	}

	out.VerboseLog("given name used: %s", res.EffectiveGivenName)
	out.VerboseLog("state: %s (%s)", res.State, res.StateCode)
	return out.Success(result, res.CURP)
}

// reportIssueError prints a localized failure and returns the exit status.
func reportIssueError(rootOpts *RootOptions, out *OutputFormatter, err error) error {
	tr, lang := rootOpts.tr, rootOpts.Lang

	var dateErr *issuer.DateError
	var fieldErr *curp.FieldError
	switch {
	case errors.As(err, &dateErr):
		msg := messages.DateReason(tr, lang, dateErr.Result)
		_ = out.Error("date."+string(dateErr.Result.Reason), msg, map[string][]string{"birth": {msg}})

	case validator.IsValidationError(err):
		details := map[string][]string{}
		for field, msg := range messages.ValidationMessages(tr, lang, validator.ExtractValidationErrors(err)) {
			details[flagName(field)] = []string{msg}
		}
		_ = out.Error(messages.KeyValidationFailed, tr.T(lang, messages.KeyValidationFailed), details)

	case errors.As(err, &fieldErr):
		key, args := messages.ErrorKey(err)
		if key == messages.KeyEmptyField {
			args = []string{"field", messages.Field(tr, lang, fieldErr.Field)}
		}
		msg := tr.T(lang, key, args...)
		_ = out.Error(key, msg, map[string][]string{flagName(fieldErr.Field): {msg}})

	default:
		return WrapExitError(ExitCommandError, "generate", err)
	}
	return reported(ExitFailure)
}

// flagName maps an input field to the flag that sets it.
func flagName(field string) string {
	switch field {
	case curp.FieldGivenNames:
		return "names"
	case curp.FieldPaternalSurname:
		return "paternal"
	case curp.FieldMaternalSurname:
		return "maternal"
	default:
		return field
	}
}

// splitBirth splits YYYY-MM-DD or YY-MM-DD. Component values are checked later.
func splitBirth(s string) (year, month, day string, ok bool) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 {
		return "", "", "", false
	}
	return parts[0], parts[1], parts[2], true
}
