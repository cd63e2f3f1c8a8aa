package report

import (
	"preport/internal/cli/paramutils"
	"preport/internal/domain/pullrequest"
	"preport/internal/errcodes"

	"github.com/spf13/viper"
	"golang.org/x/exp/slices"
)

const defaultPageSize = 50

var reportFormats = []string{"table", "csv"}

type cmdParams struct {
	Repository  paramutils.RepositoryParams
	Start       string
	End         string
	PageSize    int
	Format      string
	OutputPath  string
	Interactive bool
}

func fillDefaultReportCmdParams(params *cmdParams) {
	paramutils.FillDefaultRepositoryParams(&params.Repository)

	params.PageSize = defaultPageSize
	if ps := viper.GetInt("report.pagesize"); ps > 0 {
		params.PageSize = ps
	}

	params.Format = reportFormats[0]
	if f := viper.GetString("report.format"); f != "" {
		params.Format = f
	}
}

func fillFlagReportCmdParams(flags paramutils.FlagSet, params *cmdParams) {
	paramutils.FillFlagRepositoryParams(flags, &params.Repository)

	params.Start = flags.GetStringOrDefault("from", params.Start)
	params.End = flags.GetStringOrDefault("to", params.End)
	params.PageSize = flags.GetIntOrDefault("page-size", params.PageSize)
	params.Format = flags.GetStringOrDefault("format", params.Format)
	params.OutputPath = flags.GetStringOrDefault("output", params.OutputPath)
	params.Interactive = flags.GetBoolOrDefault("interactive", false)
}

var validateFlagReportCmdParams = func(params *cmdParams) error {
	err := paramutils.ValidateRepositoryParams(&params.Repository)
	if err != nil {
		return err
	}

	if params.Start == "" {
		return errcodes.ErrMissingWindowStart
	}
	if params.End == "" {
		return errcodes.ErrMissingWindowEnd
	}

	if _, err := pullrequest.ParseDate(params.Start); err != nil {
		return err
	}
	if _, err := pullrequest.ParseDate(params.End); err != nil {
		return err
	}

	if params.PageSize < 1 {
		return pullrequest.ErrInvalidPageSize
	}

	if !slices.Contains(reportFormats, params.Format) {
		return errcodes.ErrUnknownReportFormat
	}

	return nil
}

func (p *cmdParams) window() (pullrequest.DateWindow, error) {
	start, err := pullrequest.ParseDate(p.Start)
	if err != nil {
		return pullrequest.DateWindow{}, err
	}

	end, err := pullrequest.ParseDate(p.End)
	if err != nil {
		return pullrequest.DateWindow{}, err
	}

	return pullrequest.NewDateWindow(start, end)
}
