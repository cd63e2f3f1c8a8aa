package cli

import (
	"fmt"
	"os"

	reportcmd "preport/internal/cli/report"
	"preport/internal/configutils"
	"preport/internal/systemcodes"

	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:     "preport",
	Short:   "preport command-line utility for pull request reports",
	Long:    `Command-line utility that reports the pull requests completed on your repository host.`,
	Version: fmt.Sprintf("%v, commit %v, built at %v", version, commit, date),
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		zerolog.SetGlobalLevel(zerolog.InfoLevel)
		if configutils.GetBoolFlagOrDefault(cmd.Flags(), "debug", false) {
			zerolog.SetGlobalLevel(zerolog.DebugLevel)
			logrus.SetLevel(logrus.DebugLevel)
		}

		path := configutils.GetStringFlagOrDefault(cmd.Flags(), "config", "")
		err := configutils.LoadGlobal(path)
		if err != nil {
			fmt.Println(err)
			os.Exit(systemcodes.ErrorCodeConfigError)
		}
	},
}

func Execute() {
	rootCmd.AddCommand(
		reportcmd.New(),
	)

	rootCmd.PersistentFlags().StringP("repository", "r", "", "repository in form of owner/repo")
	rootCmd.PersistentFlags().StringP("provider", "p", "", "repository host, values - (azuredevops, bitbucket, github)")
	rootCmd.PersistentFlags().String("config", "", "config path")
	rootCmd.PersistentFlags().Bool("debug", false, "enable debug logging")

	rootCmd.Execute()
}
