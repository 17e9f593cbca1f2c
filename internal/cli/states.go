package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/curp/pkg/curp"
)

// StateEntry is one element of the states command JSON payload.
type StateEntry struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// NewStatesCommand creates the states command.
func NewStatesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "states",
		Short:         "List the states of birth and their codes",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			names := curp.States()
			entries := make([]StateEntry, 0, len(names))
			var text strings.Builder
			for i, name := range names {
				code, _ := curp.StateCode(name)
				entries = append(entries, StateEntry{Name: name, Code: code})
				if i > 0 {
					text.WriteByte('\n')
				}
				fmt.Fprintf(&text, "%s %s", code, name)
			}
			return rootOpts.formatter(cmd).Success(entries, text.String())
		},
	}
}
