package gitutils

import (
	"regexp"
	"strings"

	"preport/internal/pkg/client"
	"preport/internal/pkg/fs"

	"github.com/pkg/errors"
)

var (
	ErrCannotGetLocalRepository         = errors.New("cannot get local repository")
	ErrUnableToParseRemoteRepositoryURI = errors.New("unable to parse remote repository URI")
	ErrNoRemoteRepositoryURIs           = errors.New("local repository has no remote URIs")
)

// Azure DevOps remotes do not follow the host:owner/repo shape the
// other providers use, so they get their own patterns. The captured
// groups are organization, project, repository.
var (
	azureSSHRemotePattern   = regexp.MustCompile(`^git@ssh\.dev\.azure\.com:v3/([^/]+)/([^/]+)/([^/]+)$`)
	azureHTTPSRemotePattern = regexp.MustCompile(`^https://(?:[^@/]+@)?dev\.azure\.com/([^/]+)/([^/]+)/_git/([^/]+)$`)

	sshRemotePattern   = regexp.MustCompile(`^git@([^:]+):([^/]+)/([^/]+)$`)
	httpsRemotePattern = regexp.MustCompile(`^https?://(?:[^@/]+@)?([^/:]+)/([^/]+)/([^/]+)$`)
)

type GoGit struct {
	Git gitRepository
}

var getWorkingDir = func(fs fs.Filesystem) (string, error) {
	return fs.Getwd()
}

var openLocalRepo = func() (*GoGit, error) {
	wd, err := getWorkingDir(fs.OS{})
	if err != nil {
		return nil, errors.Wrap(err, ErrCannotGetLocalRepository.Error())
	}

	r, err := openRepo(wd)
	if err != nil {
		return nil, errors.Wrap(err, ErrCannotGetLocalRepository.Error())
	}

	return &GoGit{Git: &repository{r: r}}, nil
}

var getRemoteInfoList = func(git *GoGit) ([]*client.Repository, error) {
	var repos []*client.Repository
	repoURLs, err := git.Git.GetRemoteURLs()
	if err != nil {
		return nil, err
	}

	for _, url := range repoURLs {
		pRepo, err := parseRepositoryString(url)
		if err != nil {
			return nil, err
		}

		repos = append(repos, pRepo)
	}

	return repos, nil
}

var extractRepositoryTokens = func(uri string) ([]string, error) {
	for _, p := range []*regexp.Regexp{sshRemotePattern, httpsRemotePattern} {
		m := p.FindStringSubmatch(uri)
		if m == nil {
			continue
		}

		m[3] = strings.TrimSuffix(m[3], ".git")
		return m[1:], nil
	}

	return nil, ErrUnableToParseRemoteRepositoryURI
}

var parseRepositoryProvider = func(p string) (client.RepositoryProvider, error) {
	return client.ParseRepositoryProvider(p)
}

var parseRepositoryString = func(repoString string) (*client.Repository, error) {
	for _, p := range []*regexp.Regexp{azureSSHRemotePattern, azureHTTPSRemotePattern} {
		m := p.FindStringSubmatch(repoString)
		if m == nil {
			continue
		}

		return &client.Repository{
			Provider:     client.RepositoryProviderEnum.AZUREDEVOPS,
			Organization: m[1],
			Owner:        m[2],
			Name:         strings.TrimSuffix(m[3], ".git"),
		}, nil
	}

	m, err := extractRepositoryTokens(repoString)
	if err != nil {
		return nil, err
	}

	p, err := parseRepositoryProvider(m[0])
	if err != nil {
		return nil, err
	}

	return &client.Repository{
		Provider: p,
		Owner:    m[1],
		Name:     m[2],
	}, nil
}

// GetRemoteInfo resolves the repository the working directory's origin
// points at, so commands can run without the --repository flag.
func GetRemoteInfo() (*client.Repository, error) {
	g, err := openLocalRepo()
	if err != nil {
		return nil, err
	}

	return g.GetRemoteInfo()
}

func (g *GoGit) GetRemoteInfo() (*client.Repository, error) {
	repos, err := getRemoteInfoList(g)
	if err != nil {
		return nil, err
	}

	if len(repos) == 0 {
		return nil, ErrNoRemoteRepositoryURIs
	}

	return repos[0], nil
}
