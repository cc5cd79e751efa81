// Package cmd provides the root command and CLI setup for genius.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/codebase-genius/genius/internal/adapter"
	"github.com/codebase-genius/genius/internal/controller"
	"github.com/codebase-genius/genius/internal/domain"
)

var fsAdapter adapter.RepoFSAdapter
var gitAdapter adapter.GitAdapter
var docStore adapter.DocStore
var extractor domain.Extractor
var workflow domain.Workflow
var ui controller.UI

// docsOutputDirFlag is a root-level flag shared by commands that write
// generated documentation.
var docsOutputDirFlag string

// excludePatterns is a root-level flag that filters classified files.
var excludePatterns []string

// verboseFlag raises the log level to debug.
var verboseFlag bool

func init() {
	configureRootFlags(rootCmd)

	// Initialize shared dependencies.
	ui = controller.NewUI(rootCmd, controller.IsTTY(os.Stdout))
	fsAdapter = adapter.NewLocalRepoFSAdapter()
	gitAdapter = adapter.NewLocalGitAdapter()
	docStore = adapter.NewLocalDocStore(fsAdapter)
	extractor = domain.NewRegexExtractor()
	workflow = domain.NewWorkflow(fsAdapter, gitAdapter, docStore, extractor, ui)
}

const rootLongDescription = `Genius generates lightweight documentation for a code repository: it
classifies the file tree by language, extracts top-level functions and
classes from each source file, and writes one markdown page per file
plus an overview and a YAML index.

The repository can be a local directory or a remote URL, in which case
it is cloned with the git client on PATH.`

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "genius",
		Short: "Lightweight codebase documentation generator",
		Long:  rootLongDescription,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			configureLogger(viper.GetBool(verboseFlagName))
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}
}

func configureRootFlags(cmd *cobra.Command) {
	cmd.PersistentFlags().
		StringVarP(
			&docsOutputDirFlag, outputFlagName, "o",
			viper.GetString(outputFlagName),
			"output directory for generated documentation",
		)
	bindFlagToConfig(cmd.PersistentFlags().Lookup(outputFlagName), outputFlagName)

	cmd.PersistentFlags().StringArrayVarP(&excludePatterns, excludeFlagName, "x", viper.GetStringSlice(excludeConfigKey), "exclude files matching regex (can be repeated)")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(excludeFlagName), excludeConfigKey)

	cmd.PersistentFlags().BoolVarP(&verboseFlag, verboseFlagName, "v", false, "log at debug level")
	bindFlagToConfig(cmd.PersistentFlags().Lookup(verboseFlagName), verboseFlagName)
}

// bindFlagToConfig wires a Cobra flag to a Viper key so config/env values feed the flag.
func bindFlagToConfig(flag *pflag.Flag, key string) {
	if flag == nil {
		cobra.CheckErr(fmt.Errorf("flag for config key %q not found", key))
		return
	}

	cobra.CheckErr(viper.BindPFlag(key, flag))
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}
