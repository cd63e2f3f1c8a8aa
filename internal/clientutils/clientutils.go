package clientutils

import (
	"preport/internal/domain/pullrequest"
	"preport/internal/errcodes"
	"preport/internal/pkg/azuredevops"
	"preport/internal/pkg/bitbucket"
	"preport/internal/pkg/client"
	"preport/internal/pkg/github"
)

type ClientFactory struct{}

func (cf ClientFactory) DefaultCompletedLister(
	repo *client.Repository,
) (pullrequest.CompletedLister, error) {
	switch repo.Provider {
	case client.RepositoryProviderEnum.AZUREDEVOPS:
		return azuredevops.DefaultClient(repo)
	case client.RepositoryProviderEnum.BITBUCKET:
		return bitbucket.DefaultClient(repo)
	case client.RepositoryProviderEnum.GITHUB:
		return github.DefaultClient(repo)
	}

	return nil, errcodes.ErrorRepositoryProviderUnknown
}
