package bitbucket

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

const defaultAPIBaseURL = "https://api.bitbucket.org/2.0"

var (
	ErrMissingBitbucketUsername = errors.New("bitbucket username is missing")
	ErrMissingBitbucketPassword = errors.New("bitbucket password is missing")

	// The Bitbucket API pages by page number, not by offset, so an
	// offset that is not a whole number of pages cannot be requested.
	ErrOffsetNotPageAligned = errors.New("offset must be a multiple of the page size")
)

type BitbucketCloudClient struct {
	Repository *client.Repository
	username   string
	password   string
	apiBaseURL string
}

type ClientOptions struct {
	Repository *client.Repository
	Username   string
	Password   string
	APIBaseURL string
}

func New(o *ClientOptions) pullrequest.CompletedLister {
	baseURL := o.APIBaseURL
	if baseURL == "" {
		baseURL = defaultAPIBaseURL
	}

	return &BitbucketCloudClient{
		Repository: o.Repository,
		username:   o.Username,
		password:   o.Password,
		apiBaseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

type clientConfiguration struct {
	username   string
	password   string
	apiBaseURL string
}

func getDefaultConfiguration() (*clientConfiguration, error) {
	username := viper.GetString("bitbucket.username")
	if username == "" {
		return nil, ErrMissingBitbucketUsername
	}
	password := viper.GetString("bitbucket.password")
	if password == "" {
		return nil, ErrMissingBitbucketPassword
	}

	return &clientConfiguration{
		username:   username,
		password:   password,
		apiBaseURL: viper.GetString("bitbucket.url"),
	}, nil
}

func DefaultClient(repo *client.Repository) (pullrequest.CompletedLister, error) {
	config, err := getDefaultConfiguration()
	if err != nil {
		return nil, err
	}

	return New(&ClientOptions{
		Repository: repo,
		Username:   config.username,
		Password:   config.password,
		APIBaseURL: config.apiBaseURL,
	}), nil
}

type bbError struct {
	Error   interface{}
	Message string
}

func (c *BitbucketCloudClient) ListCompleted(
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
		"%s/repositories/%s/%s/pullrequests",
		c.apiBaseURL,
		c.Repository.Owner,
		c.Repository.Name,
	)

	log.WithFields(log.Fields{
		"page":     page,
		"pagesize": o.PageSize,
	}).Debug("listing merged bitbucket pull requests")

	r, err := resty.New().R().
		SetContext(ctx).
		SetBasicAuth(c.username, c.password).
		SetQueryParams(map[string]string{
			"state":   "MERGED",
			"sort":    "-updated_on",
			"page":    strconv.Itoa(page),
			"pagelen": strconv.Itoa(o.PageSize),
		}).
		SetError(bbError{}).
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
	gjson.ParseBytes(r.Body()).Get("values").ForEach(func(key, value gjson.Result) bool {
		// The list response has no merge timestamp of its own; for a
		// MERGED pull request updated_on is the time of the merge.
		closed, err := time.Parse(time.RFC3339, value.Get("updated_on").String())
		if err != nil {
			parseErr = errors.Wrap(err, "invalid updated_on in bitbucket response")
			return false
		}

		prs = append(prs, &pullrequest.Entity{
			ID:          pullrequest.EntityID(value.Get("id").String()),
			Title:       value.Get("title").String(),
			Destination: value.Get("destination.branch.name").String(),
			URL:         value.Get("links.html.href").String(),
			Closed:      closed,
		})

		return true
	})
	if parseErr != nil {
		return nil, parseErr
	}

	return prs, nil
}
