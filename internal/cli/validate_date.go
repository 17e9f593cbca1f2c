package cli

import (
	"github.com/spf13/cobra"

	"github.com/dmitrymomot/curp/internal/issuer"
	"github.com/dmitrymomot/curp/internal/messages"
)

// DateResult is the JSON payload of the validate-date command.
type DateResult struct {
	Valid   bool   `json:"valid"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

// NewValidateDateCommand creates the validate-date command.
func NewValidateDateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate-date <year> <month> <day>",
		Short: "Check that a date exists on the calendar",
		Long: `Check that a date exists on the calendar.

The year is a two-digit suffix (00-49 is 2000-2049, 50-99 is 1950-1999)
or a four-digit year whose last two digits are used. Exits with status 1
when the date is invalid.`,
		Example:       "  curp validate-date 00 02 29\n  curp validate-date --lang es 99 02 29",
		Args:          cobra.ExactArgs(3),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc := issuer.New(issuer.WithLogger(rootOpts.log))
			res := svc.ValidateDate(cmd.Context(), args[0], args[1], args[2])
			msg := messages.DateReason(rootOpts.tr, rootOpts.Lang, res)

			err := rootOpts.formatter(cmd).Success(DateResult{
				Valid:   res.Valid,
				Reason:  string(res.Reason),
				Message: msg,
			}, msg)
			if err != nil {
				return err
			}
			if !res.Valid {
				return reported(ExitFailure)
			}
			return nil
		},
	}
}
