package paramutils

import (
	"fmt"
	"strings"

	"preport/internal/errcodes"
	"preport/internal/gitutils"
	"preport/internal/pkg/client"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type FlagSet interface {
	GetStringOrDefault(flag, d string) string
	GetBoolOrDefault(flag string, d bool) bool
	GetIntOrDefault(flag string, d int) int
}

func NewFlagRepo(flags *pflag.FlagSet) FlagSet {
	return &PFlagSetWrapper{Flags: flags}
}

type PFlagSetWrapper struct {
	Flags *pflag.FlagSet
}

func (fs *PFlagSetWrapper) GetStringOrDefault(flag, d string) string {
	s, err := fs.Flags.GetString(flag)
	if err != nil || s == "" {
		return d
	}

	return s
}

func (fs *PFlagSetWrapper) GetBoolOrDefault(flag string, d bool) bool {
	s, err := fs.Flags.GetBool(flag)
	if err != nil {
		return d
	}

	return s
}

// GetIntOrDefault treats an untouched flag as unset, so zero can still
// be passed explicitly.
func (fs *PFlagSetWrapper) GetIntOrDefault(flag string, d int) int {
	if !fs.Flags.Changed(flag) {
		return d
	}

	v, err := fs.Flags.GetInt(flag)
	if err != nil {
		return d
	}

	return v
}

type RepositoryParams struct {
	Provider     client.RepositoryProvider
	Name         string
	Organization string
}

var getRemoteInfo = gitutils.GetRemoteInfo

type paramsFiller interface {
	Fill(params *RepositoryParams)
}

type localRepositoryParamsFiller struct{}

func (pf *localRepositoryParamsFiller) Fill(params *RepositoryParams) {
	defaultRepo, err := getRemoteInfo()
	if err == nil {
		params.Name = fmt.Sprintf("%s/%s", defaultRepo.Owner, defaultRepo.Name)
		params.Provider = defaultRepo.Provider
		params.Organization = defaultRepo.Organization
	}
}

type viperConfigParamsFiller struct{}

func (pf *viperConfigParamsFiller) Fill(params *RepositoryParams) {
	if dp := viper.GetString("default.provider"); dp != "" {
		provider, err := client.ParseRepositoryProvider(dp)
		if err == nil {
			params.Provider = provider
		}
	}

	if dr := viper.GetString("default.repository"); dr != "" {
		params.Name = dr
	}
}

func FillDefaultRepositoryParams(params *RepositoryParams) {
	paramsFillers := []paramsFiller{
		&localRepositoryParamsFiller{},
		&viperConfigParamsFiller{},
	}

	for _, pf := range paramsFillers {
		pf.Fill(params)
	}
}

func FillFlagRepositoryParams(flags FlagSet, params *RepositoryParams) {
	var (
		repo     = flags.GetStringOrDefault("repository", params.Name)
		provider = flags.GetStringOrDefault("provider", string(params.Provider))
	)

	params.Name = repo
	params.Provider = client.RepositoryProvider(provider)
}

func ValidateRepositoryParams(params *RepositoryParams) error {
	if params.Name == "" && params.Provider == "" {
		return errcodes.ErrMissingRepository
	}

	if params.Name == "" || params.Provider == "" {
		return errcodes.ErrSomeRepoParamsMissing
	}

	v := strings.Split(params.Name, "/")
	if len(v) != 2 || v[0] == "" || v[1] == "" {
		return errcodes.ErrRepositoryMustBeInFormOwnerRepo
	}

	if !params.Provider.IsValid() {
		return errcodes.ErrorRepositoryProviderUnknown
	}

	return nil
}
