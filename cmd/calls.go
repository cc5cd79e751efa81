package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/codebase-genius/genius/internal/domain"
	m "github.com/codebase-genius/genius/internal/model"
)

// callsCmd represents the calls command.
var callsCmd = newCallsCmd()

func newCallsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "calls <file> <function>",
		Short: "Find call sites of a function in a file",
		Long: `Scan a source file for lines where the named function is called. The
function name must be a plain identifier.`,
		Args: cobra.ExactArgs(2),
		RunE: func(_ *cobra.Command, args []string) error {
			return workflow.Calls(context.Background(), domain.CallsArgs{
				File:     m.Path(args[0]),
				Function: args[1],
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(callsCmd)
}
