// Package cli implements the curp command line tool.
package cli

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/curp/internal/messages"
	"github.com/dmitrymomot/curp/pkg/curp"
	"github.com/dmitrymomot/curp/pkg/i18n"
	"github.com/dmitrymomot/curp/pkg/logger"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"
	Lang    string // any language tag; unsupported tags fall back to English

	generator *curp.Generator
	log       *slog.Logger
	tr        *i18n.Translator
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// Option customizes the root command. Used by tests and embedding programs.
type Option func(*RootOptions)

// WithGenerator replaces the code generator. The --seed flag still wins.
func WithGenerator(g *curp.Generator) Option {
	return func(o *RootOptions) {
		o.generator = g
	}
}

// WithLogger replaces the stderr logger.
func WithLogger(l *slog.Logger) Option {
	return func(o *RootOptions) {
		o.log = l
	}
}

// NewRootCommand creates the root command for the curp CLI.
func NewRootCommand(options ...Option) *cobra.Command {
	opts := &RootOptions{}
	for _, opt := range options {
		opt(opts)
	}

	cmd := &cobra.Command{
		Use:   "curp",
		Short: "Generate CURP codes and validate birth dates",
		Long: `Generate the 18-character Mexican population registry code (CURP)
from a person's names, birth date, sex and state of birth, and check
whether a date is a real calendar date.

The last two characters are random; they are not the official check digits.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return NewExitError(ExitCommandError,
					fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			return opts.init(cmd)
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Lang, "lang", messages.English, "message language (en|es)")

	cmd.AddCommand(NewGenerateCommand(opts))
	cmd.AddCommand(NewValidateDateCommand(opts))
	cmd.AddCommand(NewStatesCommand(opts))

	return cmd
}

// init builds the translator and the logger once flags are parsed.
func (o *RootOptions) init(cmd *cobra.Command) error {
	tr, err := messages.New()
	if err != nil {
		return WrapExitError(ExitCommandError, "load messages", err)
	}
	o.tr = tr
	o.Lang = tr.Match(o.Lang)

	if o.log == nil {
		level := slog.LevelWarn
		if o.Verbose {
			level = slog.LevelDebug
		}
		o.log = logger.New(
			logger.WithOutput(cmd.ErrOrStderr()),
			logger.WithTextFormatter(),
			logger.WithLevel(level),
		)
	}
	return nil
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   o.Verbose,
	}
}
