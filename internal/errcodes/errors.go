package errcodes

import "errors"

var (
	ErrMissingRepository               = errors.New("repository is missing")
	ErrMissingWindowStart              = errors.New("start date is missing")
	ErrMissingWindowEnd                = errors.New("end date is missing")
	ErrSomeRepoParamsMissing           = errors.New("must specify both provider and repository, or none")
	ErrRepositoryMustBeInFormOwnerRepo = errors.New("repository must be in the form of 'owner/repo'")
	ErrorRepositoryProviderUnknown     = errors.New("repository provider is unknown")
	ErrUnknownReportFormat             = errors.New("unknown report format, expected (table, csv)")
)
