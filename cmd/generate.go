package cmd

import (
	"context"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/codebase-genius/genius/internal/domain"
	m "github.com/codebase-genius/genius/internal/model"
)

var generateParallelFlag int

// generateCmd represents the generate command.
var generateCmd = newGenerateCmd()

func newGenerateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "generate [repository]",
		Short: "Generate documentation for a repository",
		Long: `Generate documentation for a repository given as a local directory or a
remote URL (cloned with the git client on PATH). Defaults to the
current directory.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			source := "."
			if len(args) == 1 {
				source = args[0]
			}

			return workflow.Generate(context.Background(), domain.GenerateArgs{
				Source:       source,
				Output:       m.Path(viper.GetString(outputFlagName)),
				CloneDir:     m.Path(viper.GetString(cloneDirConfigKey)),
				Exclude:      viper.GetStringSlice(excludeConfigKey),
				Threads:      viper.GetInt(parallelConfigKey),
				SummaryLimit: viper.GetInt(summaryConfigKey),
			})
		},
	}

	configureGenerateFlags(cmd)

	return cmd
}

func init() {
	rootCmd.AddCommand(generateCmd)
}

func configureGenerateFlags(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&generateParallelFlag, parallelFlagName, "p", viper.GetInt(parallelConfigKey), "number of parallel workers for extraction")
	bindFlagToConfig(cmd.Flags().Lookup(parallelFlagName), parallelConfigKey)
}
