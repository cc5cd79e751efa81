package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/codebase-genius/genius/internal/domain"
	m "github.com/codebase-genius/genius/internal/model"
)

// listCmd represents the list command.
var listCmd = newListCmd()

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list [path]",
		Short: "List classified files in a repository tree",
		Long: `Walk a local repository tree and list every classified file with its
category. Defaults to the current directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			root := "."
			if len(args) == 1 {
				root = args[0]
			}

			return workflow.List(context.Background(), domain.ListArgs{
				Root:    m.Path(root),
				Exclude: viper.GetStringSlice(excludeConfigKey),
			})
		},
	}
}

func init() {
	rootCmd.AddCommand(listCmd)
}
