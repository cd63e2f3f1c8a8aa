package github

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

const defaultAPIBaseURL = "https://api.github.com"

var (
	ErrMissingGithubToken = errors.New("github token is missing")

	// The GitHub list API pages by page number, not by offset.
	ErrOffsetNotPageAligned = errors.New("offset must be a multiple of the page size")
)

type GithubCloudClient struct {
	Repository *client.Repository
	token      string
	apiBaseURL string
}

type ClientOptions struct {
	Repository *client.Repository
	Token      string
	APIBaseURL string
}

func New(o *ClientOptions) pullrequest.CompletedLister {
	baseURL := o.APIBaseURL
	if baseURL == "" {
		baseURL = defaultAPIBaseURL
	}

	return &GithubCloudClient{
		Repository: o.Repository,
		token:      o.Token,
		apiBaseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

type clientConfiguration struct {
	token      string
	apiBaseURL string
}

func getDefaultConfiguration() (*clientConfiguration, error) {
	token := viper.GetString("github.token")
	if token == "" {
		return nil, ErrMissingGithubToken
	}

	return &clientConfiguration{
		token:      token,
		apiBaseURL: viper.GetString("github.url"),
	}, nil
}

func DefaultClient(repo *client.Repository) (pullrequest.CompletedLister, error) {
	config, err := getDefaultConfiguration()
	if err != nil {
		return nil, err
	}

	return New(&ClientOptions{
		Repository: repo,
		Token:      config.token,
		APIBaseURL: config.apiBaseURL,
	}), nil
}

type ghError struct {
	Message string `json:"message"`
}

func (c *GithubCloudClient) ListCompleted(
	ctx context.Context,
	o *pullrequest.ListCompletedOptions,
) ([]*pullrequest.Entity, error) {
	if o.PageSize < 1 {
		return nil, pullrequest.ErrInvalidPageSize
	}
	if o.Offset%o.PageSize != 0 {
		return nil, ErrOffsetNotPageAligned
	}
	page := o.Offset/o.PageSize + 1

	url := fmt.Sprintf(
		"%s/repos/%s/%s/pulls",
		c.apiBaseURL,
		c.Repository.Owner,
		c.Repository.Name,
	)

	log.WithFields(log.Fields{
		"page":     page,
		"pagesize": o.PageSize,
	}).Debug("listing closed github pull requests")

	r, err := resty.New().R().
		SetContext(ctx).
		SetAuthToken(c.token).
		SetQueryParams(map[string]string{
			"state":     "closed",
			"sort":      "updated",
			"direction": "desc",
			"page":      strconv.Itoa(page),
			"per_page":  strconv.Itoa(o.PageSize),
		}).
		SetError(ghError{}).
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
	gjson.ParseBytes(r.Body()).ForEach(func(key, value gjson.Result) bool {
		closed, err := time.Parse(time.RFC3339, value.Get("closed_at").String())
		if err != nil {
			parseErr = errors.Wrap(err, "invalid closed_at in github response")
			return false
		}

		prs = append(prs, &pullrequest.Entity{
			ID:          pullrequest.EntityID(value.Get("number").String()),
			Title:       value.Get("title").String(),
			Destination: value.Get("base.ref").String(),
			URL:         value.Get("html_url").String(),
			Closed:      closed,
		})

		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return prs, nil
}
