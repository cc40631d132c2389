package generator

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/atomicstack/justlist/internal/catalog"
)

const (
	// DefaultPullRequestsTitle labels the group produced by PullRequests.
	DefaultPullRequestsTitle = "PR"
	// DefaultMaxPages bounds how many result pages PullRequests follows.
	DefaultMaxPages = 10
)

// PullRequests lists pull requests from a Bitbucket Server REST endpoint such
// as /rest/api/1.0/projects/P/repos/R/pull-requests or
// /rest/api/1.0/dashboard/pull-requests.
type PullRequests struct {
	URL      string
	Token    string
	Title    string
	Command  string
	Terminal bool
	MaxPages int
	// PageInterval is the minimum gap between page requests.
	PageInterval time.Duration
	Client       *http.Client
}

type pullRequest struct {
	ID     int64  `json:"id"`
	Title  string `json:"title"`
	State  string `json:"state"`
	Author struct {
		User struct {
			DisplayName string `json:"displayName"`
		} `json:"user"`
	} `json:"author"`
	Links struct {
		Self []struct {
			Href string `json:"href"`
		} `json:"self"`
	} `json:"links"`
}

func (p pullRequest) label() string {
	return fmt.Sprintf("[%s] %s", p.State, p.Title)
}

func (p pullRequest) link() string {
	if len(p.Links.Self) == 0 {
		return ""
	}
	return p.Links.Self[0].Href
}

type pullRequestPage struct {
	Values        []pullRequest `json:"values"`
	IsLastPage    *bool         `json:"isLastPage"`
	NextPageStart *int          `json:"nextPageStart"`
}

func (p PullRequests) Name() string { return "pull-requests" }

func (p PullRequests) Augment(ctx context.Context) ([]catalog.Group, error) {
	if strings.TrimSpace(p.URL) == "" {
		return nil, errors.New("no pull request URL")
	}
	base, err := url.Parse(p.URL)
	if err != nil {
		return nil, fmt.Errorf("parse url: %w", err)
	}
	maxPages := p.MaxPages
	if maxPages <= 0 {
		maxPages = DefaultMaxPages
	}
	title := p.Title
	if strings.TrimSpace(title) == "" {
		title = DefaultPullRequestsTitle
	}
	group := catalog.Group{Label: title, Items: []catalog.Item{}}

	pacer := newThrottle(p.PageInterval)
	start := -1
	for page := 0; page < maxPages; page++ {
		if err := pacer.wait(ctx); err != nil {
			return nil, err
		}
		target := *base
		if start >= 0 {
			q := target.Query()
			q.Set("start", strconv.Itoa(start))
			target.RawQuery = q.Encode()
		}
		var resp pullRequestPage
		err := get(ctx, p.Client, target.String(), bearerAuth(p.Token), func(r io.Reader) error {
			return json.NewDecoder(r).Decode(&resp)
		})
		if err != nil {
			return nil, err
		}
		for _, pr := range resp.Values {
			group.Items = append(group.Items, catalog.Item{Label: pr.label(), Param: pr.link()})
		}
		if resp.IsLastPage == nil || *resp.IsLastPage || resp.NextPageStart == nil {
			break
		}
		start = *resp.NextPageStart
	}
	return stamp([]catalog.Group{group}, p.Command, p.Terminal), nil
}
