package journal

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	json "github.com/goccy/go-json"

	"schultafel/internal/models"
	"schultafel/internal/providers"
	"schultafel/internal/structures"
)

const maxReplySize = 8 << 20 // 8 MB

// FetcherInterface is the one capability the resolver needs from the
// outside world: the raw journal payload for the ISO week containing
// the given date.
type FetcherInterface interface {
	FetchWeek(ctx context.Context, date time.Time) (*models.WeekReply, error)
}

type Client struct {
	httpClient *http.Client
	baseUrl    string
	token      string
	logger     providers.Logger
	metrics    providers.MetricsProviderInterface
}

func NewClient(conf *structures.Config, logger providers.Logger, metrics providers.MetricsProviderInterface) FetcherInterface {
	timeout := conf.Schule.Timeout
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		baseUrl:    conf.Schule.BaseUrl,
		token:      conf.Schule.Token,
		logger:     logger,
		metrics:    metrics,
	}
}

// FetchWeek issues exactly one GET per call; retries, if any, are the
// caller's business.
func (c *Client) FetchWeek(ctx context.Context, date time.Time) (*models.WeekReply, error) {
	week := WeekKey(date)
	url := fmt.Sprintf("%s/api/journal/weeks/%s?include=days.lessons&interpolate=true", c.baseUrl, week)
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		c.metrics.IncWeekFetches("transport")
		return nil, &TransportError{Week: week, Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.token)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	c.logger.Debugf(providers.TypeFetch, "GET %s", url)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.IncWeekFetches("transport")
		return nil, &TransportError{Week: week, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.metrics.IncWeekFetches("transport")
		return nil, &TransportError{Week: week, Err: fmt.Errorf("unexpected status %d", resp.StatusCode)}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxReplySize))
	if err != nil {
		c.metrics.IncWeekFetches("transport")
		return nil, &TransportError{Week: week, Err: err}
	}

	var reply models.WeekReply
	if err := json.Unmarshal(body, &reply); err != nil {
		c.metrics.IncWeekFetches("parse")
		return nil, &ParseError{Week: week, Err: err}
	}

	c.metrics.IncWeekFetches("ok")
	c.metrics.ObserveFetchDuration(time.Since(start))
	c.logger.Debugf(providers.TypeFetch, "week %s: %d days in %s", week, len(reply.Data.Days), time.Since(start))
	return &reply, nil
}
