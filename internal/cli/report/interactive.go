package report

import (
	"fmt"

	"preport/internal/domain/pullrequest"

	"github.com/AlecAivazis/survey/v2"
)

func fillInteractiveReportCmdParams(params *cmdParams) error {
	validateDate := func(val interface{}) error {
		err := survey.Required(val)
		if err != nil {
			return err
		}

		_, err = pullrequest.ParseDate(fmt.Sprintf("%v", val))
		return err
	}

	var qs = []*survey.Question{
		{
			Name: "start",
			Prompt: &survey.Input{
				Message: "Report from (YYYY-MM-DD):",
				Default: params.Start,
			},
			Validate: validateDate,
		},
		{
			Name: "end",
			Prompt: &survey.Input{
				Message: "Report to (YYYY-MM-DD):",
				Default: params.End,
			},
			Validate: validateDate,
		},
		{
			Name: "format",
			Prompt: &survey.Select{
				Message: "Format:",
				Options: reportFormats,
				Default: params.Format,
			},
			Validate: survey.Required,
		},
	}

	err := survey.Ask(qs, params)
	if err != nil {
		return err
	}

	return nil
}
