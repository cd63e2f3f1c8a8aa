package report

import (
	"fmt"
	"os"

	"preport/internal/cli/paramutils"
	"preport/internal/cli/utils"
	"preport/internal/clientutils"
	"preport/internal/domain/pullrequest"
	"preport/internal/pkg/client"
	"preport/internal/pkg/fs"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var newLister = func(repo *client.Repository) (pullrequest.CompletedLister, error) {
	return clientutils.ClientFactory{}.DefaultCompletedLister(repo)
}

var createOutputFile = func(path string) (*os.File, error) {
	return fs.OS{}.Create(path)
}

func runCmd(cmd *cobra.Command, args []string) error {
	flags := &paramutils.PFlagSetWrapper{Flags: cmd.Flags()}

	params := &cmdParams{}
	fillDefaultReportCmdParams(params)
	fillFlagReportCmdParams(flags, params)

	if params.Interactive {
		err := fillInteractiveReportCmdParams(params)
		if err != nil {
			return err
		}
	}

	err := validateFlagReportCmdParams(params)
	if err != nil {
		return err
	}

	repo, err := client.NewRepositoryFromOptions(&client.RepositoryOptions{
		Provider:           params.Repository.Provider,
		FullRepositoryName: params.Repository.Name,
		Organization:       params.Repository.Organization,
	})
	if err != nil {
		return err
	}

	c, err := newLister(repo)
	if err != nil {
		return err
	}

	return execute(cmd, c, params)
}

func execute(cmd *cobra.Command, c pullrequest.CompletedLister, params *cmdParams) error {
	window, err := params.window()
	if err != nil {
		return err
	}

	service := pullrequest.NewRangeService(c)

	progress := newProgressRenderer()
	service.Progress = progress

	prs, err := service.FetchInRange(cmd.Context(), window, params.PageSize)
	progress.Stop()
	if err != nil {
		return err
	}

	log.Debug().
		Int("count", len(prs)).
		Str("from", params.Start).
		Str("to", params.End).
		Msg("range fetch finished")

	out := cmd.OutOrStdout()
	if params.OutputPath != "" {
		f, err := createOutputFile(params.OutputPath)
		if err != nil {
			return err
		}
		defer f.Close()
		out = f
	}

	err = render(out, params.Format, prs)
	if err != nil {
		return err
	}

	// The CSV body stays machine-readable; the count goes to stderr.
	if params.Format == "csv" {
		fmt.Fprintf(cmd.ErrOrStderr(), "Total: %d\n", len(prs))
	}

	return nil
}

func New() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "report",
		Aliases: []string{"rep"},
		Short:   "Report completed pull requests",
		Long:    `Reports the pull requests completed within a calendar date range on the web service hosting your origin repository`,
		Args:    cobra.NoArgs,
		Run:     utils.RunCommandWrapper(runCmd),
	}

	cmd.Flags().String("from", "", "first calendar date of the report (YYYY-MM-DD)")
	cmd.Flags().String("to", "", "last calendar date of the report (YYYY-MM-DD)")
	cmd.Flags().Int("page-size", 0, "number of pull requests fetched per page")
	cmd.Flags().String("format", "", "report format, values - (table, csv)")
	cmd.Flags().StringP("output", "o", "", "write the report to a file instead of stdout")
	cmd.Flags().BoolP("interactive", "i", false, "ask for the report parameters")

	return cmd
}
