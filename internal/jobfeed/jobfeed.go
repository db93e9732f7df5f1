// Package jobfeed implements a client for paged job-board JSON feeds.
package jobfeed

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	defaultUserAgent = "gradsift/job-feed-client"
	// Max value for postings per page accepted by most boards.
	perPage = "100"
)

// Client talks to a job-board feed API. The token is optional: public boards
// are queried anonymously.
type Client struct {
	// ctx used only for http requests right now
	ctx        context.Context
	token      string
	logger     *zap.Logger
	HTTPClient *http.Client
	UserAgent  string
	APIURL     string
}

func New(ctx context.Context, logger *zap.Logger, apiURL, token string) *Client {
	return &Client{
		ctx:    ctx,
		token:  token,
		APIURL: apiURL,
		HTTPClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger:    logger,
		UserAgent: defaultUserAgent,
	}
}

// Search fetches all postings matching the given parameters, following the
// feed's paging.
func (c *Client) Search(params *SearchParams) (*Postings, error) {
	return c.search(params)
}
