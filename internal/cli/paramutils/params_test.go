package paramutils

import (
	"testing"

	"preport/internal/errcodes"
	"preport/internal/pkg/client"

	"github.com/pkg/errors"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

func TestPFlagSetWrapper_GetIntOrDefault(t *testing.T) {
	newFlags := func() *pflag.FlagSet {
		flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
		flags.Int("page-size", 0, "")
		return flags
	}

	t.Run("returns the default when the flag is untouched", func(t *testing.T) {
		fs := &PFlagSetWrapper{Flags: newFlags()}
		assert.Equal(t, 50, fs.GetIntOrDefault("page-size", 50))
	})

	t.Run("returns the flag value once set", func(t *testing.T) {
		flags := newFlags()
		assert.NoError(t, flags.Parse([]string{"--page-size", "25"}))

		fs := &PFlagSetWrapper{Flags: flags}
		assert.Equal(t, 25, fs.GetIntOrDefault("page-size", 50))
	})

	t.Run("returns the default for an unknown flag", func(t *testing.T) {
		fs := &PFlagSetWrapper{Flags: newFlags()}
		assert.Equal(t, 50, fs.GetIntOrDefault("missing", 50))
	})
}

func Test_localRepositoryParamsFiller(t *testing.T) {
	old := getRemoteInfo
	defer func() { getRemoteInfo = old }()

	t.Run("fills from the local repository remote", func(t *testing.T) {
		getRemoteInfo = func() (*client.Repository, error) {
			return &client.Repository{
				Provider:     client.RepositoryProviderEnum.AZUREDEVOPS,
				Organization: "my-org",
				Owner:        "my-project",
				Name:         "my-repo",
			}, nil
		}

		params := RepositoryParams{}
		(&localRepositoryParamsFiller{}).Fill(&params)

		assert.Equal(t, client.RepositoryProviderEnum.AZUREDEVOPS, params.Provider)
		assert.Equal(t, "my-project/my-repo", params.Name)
		assert.Equal(t, "my-org", params.Organization)
	})

	t.Run("leaves params untouched without a local repository", func(t *testing.T) {
		getRemoteInfo = func() (*client.Repository, error) {
			return nil, errors.New("no repo")
		}

		params := RepositoryParams{}
		(&localRepositoryParamsFiller{}).Fill(&params)

		assert.Equal(t, RepositoryParams{}, params)
	})
}

func Test_viperConfigParamsFiller(t *testing.T) {
	t.Run("configured defaults win", func(t *testing.T) {
		viper.Set("default.provider", "github")
		viper.Set("default.repository", "owner/repo")
		defer viper.Reset()

		params := RepositoryParams{
			Provider: client.RepositoryProviderEnum.BITBUCKET,
			Name:     "detected/repo",
		}
		(&viperConfigParamsFiller{}).Fill(&params)

		assert.Equal(t, client.RepositoryProviderEnum.GITHUB, params.Provider)
		assert.Equal(t, "owner/repo", params.Name)
	})

	t.Run("an unknown configured provider is ignored", func(t *testing.T) {
		viper.Set("default.provider", "sourcehut")
		defer viper.Reset()

		params := RepositoryParams{Provider: client.RepositoryProviderEnum.GITHUB}
		(&viperConfigParamsFiller{}).Fill(&params)

		assert.Equal(t, client.RepositoryProviderEnum.GITHUB, params.Provider)
	})
}

func TestFillFlagRepositoryParams(t *testing.T) {
	t.Run("fills with flag parameters", func(t *testing.T) {
		params := RepositoryParams{}
		FillFlagRepositoryParams(
			&MockPreportFlagSet{StringMap: map[string]interface{}{
				"repository": "owner/repo",
				"provider":   string(client.RepositoryProviderEnum.BITBUCKET),
			}},
			&params,
		)

		assert.Equal(t, "owner/repo", params.Name)
		assert.Equal(t, client.RepositoryProviderEnum.BITBUCKET, params.Provider)
	})

	t.Run("keeps fallback parameters", func(t *testing.T) {
		params := RepositoryParams{
			Provider: client.RepositoryProviderEnum.GITHUB,
			Name:     "detected/repo",
		}
		FillFlagRepositoryParams(&MockPreportFlagSet{}, &params)

		assert.Equal(t, "detected/repo", params.Name)
		assert.Equal(t, client.RepositoryProviderEnum.GITHUB, params.Provider)
	})
}

func TestValidateRepositoryParams(t *testing.T) {
	tests := []struct {
		name   string
		params RepositoryParams
		want   error
	}{
		{
			"no params",
			RepositoryParams{},
			errcodes.ErrMissingRepository,
		},
		{
			"only repo",
			RepositoryParams{Name: "owner/repo"},
			errcodes.ErrSomeRepoParamsMissing,
		},
		{
			"only provider",
			RepositoryParams{Provider: client.RepositoryProviderEnum.GITHUB},
			errcodes.ErrSomeRepoParamsMissing,
		},
		{
			"wrong repo form",
			RepositoryParams{Name: "wrong", Provider: client.RepositoryProviderEnum.GITHUB},
			errcodes.ErrRepositoryMustBeInFormOwnerRepo,
		},
		{
			"wrong provider",
			RepositoryParams{Name: "owner/repo", Provider: "wrong"},
			errcodes.ErrorRepositoryProviderUnknown,
		},
		{
			"valid repo and provider",
			RepositoryParams{Name: "owner/repo", Provider: client.RepositoryProviderEnum.GITHUB},
			nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRepositoryParams(&tt.params)
			assert.Equal(t, tt.want, err)
		})
	}
}
