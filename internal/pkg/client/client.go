package client

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"preport/internal/errcodes"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

var ErrUnknownRepositoryProvider = errors.New(strings.TrimSpace(`
	unknown repository provider, expected (azuredevops, bitbucket, github)
`))

type RepositoryProvider string

func (rp RepositoryProvider) IsValid() bool {
	v := reflect.ValueOf(*RepositoryProviderEnum)

	for i := 0; i < v.NumField(); i++ {
		if rp == v.Field(i).Interface() {
			return true
		}
	}

	return false
}

type list struct {
	AZUREDEVOPS RepositoryProvider
	BITBUCKET   RepositoryProvider
	GITHUB      RepositoryProvider
}

var RepositoryProviderEnum = &list{
	AZUREDEVOPS: RepositoryProvider("azuredevops"),
	BITBUCKET:   RepositoryProvider("bitbucket"),
	GITHUB:      RepositoryProvider("github"),
}

func ParseRepositoryProvider(s string) (RepositoryProvider, error) {
	switch s {
	case "dev.azure.com", "ssh.dev.azure.com", "azuredevops":
		return RepositoryProviderEnum.AZUREDEVOPS, nil
	case "bitbucket.org", "bitbucket":
		return RepositoryProviderEnum.BITBUCKET, nil
	case "github.com", "github":
		return RepositoryProviderEnum.GITHUB, nil
	default:
		aliases := viper.GetStringSlice("bitbucket.aliases")
		if aliases == nil {
			log.Warn().
				Msg(fmt.Sprintf("Parsing unknown provider: %v. Add repository info to local preport configuration (.preportcfg)", s))
			break
		}

		for _, a := range aliases {
			if a == s {
				return RepositoryProviderEnum.BITBUCKET, nil
			}
		}
	}

	return "", ErrUnknownRepositoryProvider
}

// Repository points a provider client at a single remote repository.
// Owner holds the Bitbucket workspace, the GitHub owner, or the Azure
// DevOps project, depending on the provider. Organization is only set
// for Azure DevOps.
type Repository struct {
	Provider     RepositoryProvider
	Organization string
	Owner        string
	Name         string
}

func (r *Repository) FullName() string {
	return fmt.Sprintf("%s/%s", r.Owner, r.Name)
}

type RepositoryOptions struct {
	Provider           RepositoryProvider
	FullRepositoryName string
	Organization       string
}

func NewRepositoryFromOptions(options *RepositoryOptions) (*Repository, error) {
	v := strings.Split(options.FullRepositoryName, "/")
	if len(v) != 2 || v[0] == "" || v[1] == "" {
		return nil, errcodes.ErrRepositoryMustBeInFormOwnerRepo
	}

	return &Repository{
		Provider:     options.Provider,
		Organization: options.Organization,
		Owner:        v[0],
		Name:         v[1],
	}, nil
}
