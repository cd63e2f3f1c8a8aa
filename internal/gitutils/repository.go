package gitutils

import (
	"fmt"
	"path"

	"github.com/go-git/go-git/v5"
)

type goGitRepository interface {
	Remotes() ([]*git.Remote, error)
}

type gitRepository interface {
	GetRemoteURLs() ([]string, error)
}

type repository struct {
	r goGitRepository
}

var openRepo = func(path string) (*git.Repository, error) {
	return openRepoRecursively(path)
}

func openRepoRecursively(input string) (*git.Repository, error) {
	dir := input
	for dir != "/" && dir != "." {
		repo, err := git.PlainOpen(dir)
		if err == nil {
			return repo, nil
		}

		dir = path.Dir(dir)
	}

	return nil, fmt.Errorf("could not find a git repository at %s", input)
}

func (r *repository) GetRemoteURLs() ([]string, error) {
	var repoURLs []string
	remotes, err := r.r.Remotes()
	if err != nil {
		return nil, err
	}

	for _, re := range remotes {
		repoURLs = append(repoURLs, re.Config().URLs...)
	}

	return repoURLs, nil
}
