package azuredevops

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"preport/internal/domain/pullrequest"
	"preport/internal/pkg/client"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"github.com/tidwall/gjson"
)

const defaultAPIBaseURL = "https://dev.azure.com"

var (
	ErrMissingAzureDevOpsToken        = errors.New("azure devops token is missing")
	ErrMissingAzureDevOpsOrganization = errors.New("azure devops organization is missing")
)

// AzureDevOpsClient lists pull requests of one repository through the
// Azure DevOps git REST API. Repository.Owner carries the project and
// Repository.Organization the organization.
type AzureDevOpsClient struct {
	Repository *client.Repository
	username   string
	token      string
	apiBaseURL string
}

type ClientOptions struct {
	Repository *client.Repository
	Username   string
	Token      string
	APIBaseURL string
}

func New(o *ClientOptions) pullrequest.CompletedLister {
	baseURL := o.APIBaseURL
	if baseURL == "" {
		baseURL = defaultAPIBaseURL
	}

	return &AzureDevOpsClient{
		Repository: o.Repository,
		username:   o.Username,
		token:      o.Token,
		apiBaseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

type clientConfiguration struct {
	username     string
	token        string
	organization string
	apiBaseURL   string
}

func getDefaultConfiguration(repo *client.Repository) (*clientConfiguration, error) {
	token := viper.GetString("azuredevops.token")
	if token == "" {
		return nil, ErrMissingAzureDevOpsToken
	}

	organization := repo.Organization
	if organization == "" {
		organization = viper.GetString("azuredevops.organization")
	}
	if organization == "" {
		return nil, ErrMissingAzureDevOpsOrganization
	}

	return &clientConfiguration{
		username:     viper.GetString("azuredevops.username"),
		token:        token,
		organization: organization,
		apiBaseURL:   viper.GetString("azuredevops.url"),
	}, nil
}

func DefaultClient(repo *client.Repository) (pullrequest.CompletedLister, error) {
	config, err := getDefaultConfiguration(repo)
	if err != nil {
		return nil, err
	}

	r := *repo
	r.Organization = config.organization

	return New(&ClientOptions{
		Repository: &r,
		Username:   config.username,
		Token:      config.token,
		APIBaseURL: config.apiBaseURL,
	}), nil
}

type apiError struct {
	Message string `json:"message"`
}

func (c *AzureDevOpsClient) ListCompleted(
	ctx context.Context,
	o *pullrequest.ListCompletedOptions,
) ([]*pullrequest.Entity, error) {
	url := fmt.Sprintf(
		"%s/%s/%s/_apis/git/repositories/%s/pullrequests",
		c.apiBaseURL,
		c.Repository.Organization,
		c.Repository.Owner,
		c.Repository.Name,
	)

	log.WithFields(log.Fields{
		"offset":   o.Offset,
		"pagesize": o.PageSize,
	}).Debug("listing completed azure devops pull requests")

	r, err := resty.New().R().
		SetContext(ctx).
		SetBasicAuth(c.username, c.token).
		SetQueryParams(map[string]string{
			"searchCriteria.status": "completed",
			"$skip":                 strconv.Itoa(o.Offset),
			"$top":                  strconv.Itoa(o.PageSize),
			"api-version":           "7.1",
		}).
		SetError(apiError{}).
		Get(url)

	if err != nil {
		return nil, err
	}
	if r.IsError() {
		return nil, errors.New(string(r.Body()))
	}

	var (
		prs      []*pullrequest.Entity
		parseErr error
	)
	gjson.ParseBytes(r.Body()).Get("value").ForEach(func(key, value gjson.Result) bool {
		closed, err := time.Parse(time.RFC3339, value.Get("closedDate").String())
		if err != nil {
			parseErr = errors.Wrap(err, "invalid closedDate in azure devops response")
			return false
		}

		id := value.Get("pullRequestId").String()
		prs = append(prs, &pullrequest.Entity{
			ID:          pullrequest.EntityID(id),
			Title:       value.Get("title").String(),
			Destination: strings.TrimPrefix(value.Get("targetRefName").String(), "refs/heads/"),
			URL:         c.pullRequestWebURL(id),
			Closed:      closed,
		})

		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return prs, nil
}

// pullRequestWebURL builds the browser link since list responses only
// carry API resource URLs.
func (c *AzureDevOpsClient) pullRequestWebURL(id string) string {
	return fmt.Sprintf(
		"%s/%s/%s/_git/%s/pullrequest/%s",
		c.apiBaseURL,
		c.Repository.Organization,
		c.Repository.Owner,
		c.Repository.Name,
		id,
	)
}
