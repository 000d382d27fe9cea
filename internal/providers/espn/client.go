package espn

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/cockroachdb/errors"

	"scoreboard-relay/internal/domain"
	"scoreboard-relay/internal/providers"
	"scoreboard-relay/internal/timeutil"
)

// Config controls how the ESPN client reaches the upstream API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
	Timeout    time.Duration
	UserAgent  string
}

// Client fetches raw scoreboard payloads from ESPN's site API.
type Client struct {
	baseURL    string
	httpClient httpDoer
	userAgent  string
	now        func() time.Time
}

// NewClient constructs an ESPN client with the provided configuration.
func NewClient(cfg Config) *Client {
	ua := cfg.UserAgent
	if ua == "" {
		ua = defaultUserAgent
	}
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		userAgent:  ua,
		now:        time.Now,
	}
}

// FetchScoreboard performs one GET against the league's scoreboard endpoint.
// A non-empty date must be YYYYMMDD and is sent as the "dates" query parameter.
func (c *Client) FetchScoreboard(ctx context.Context, league domain.League, date string) ([]byte, error) {
	req, err := c.buildRequest(ctx, league, date)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, c.upstreamError(league, req.URL, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodySnippet))
		cause := errors.Newf("body: %s", strings.TrimSpace(string(snippet)))
		if resp.StatusCode == http.StatusTooManyRequests {
			cause = &providers.RateLimitError{
				Provider:   providerName,
				StatusCode: resp.StatusCode,
				RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), c.now()),
				Message:    "espn rate limited",
			}
		}
		return nil, c.upstreamError(league, req.URL, resp.StatusCode, cause)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes+1))
	if err != nil {
		return nil, c.upstreamError(league, req.URL, 0, errors.Wrap(err, "reading body"))
	}
	if len(body) > maxBodyBytes {
		return nil, c.upstreamError(league, req.URL, 0, errors.Newf("body exceeds %d bytes", maxBodyBytes))
	}
	if !sonic.Valid(body) {
		return nil, c.upstreamError(league, req.URL, 0, errors.New("response body is not valid JSON"))
	}

	return body, nil
}

func (c *Client) buildRequest(ctx context.Context, league domain.League, date string) (*http.Request, error) {
	sportPath, ok := SportPath(league)
	if !ok {
		return nil, errors.Wrapf(domain.ErrUnsupportedLeague, "espn: league %q", league)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/"+sportPath+"/scoreboard", nil)
	if err != nil {
		return nil, errors.Wrap(err, "espn: creating request")
	}

	if date != "" {
		if _, err := timeutil.ParseDate(date); err != nil {
			return nil, errors.Newf("espn: invalid date filter %q (expected YYYYMMDD)", date)
		}
		q := req.URL.Query()
		q.Set("dates", date)
		req.URL.RawQuery = q.Encode()
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)
	return req, nil
}

func (c *Client) upstreamError(league domain.League, u *url.URL, status int, err error) error {
	target := ""
	if u != nil {
		target = u.String()
	}
	return &providers.UpstreamError{
		Provider:   providerName,
		League:     league,
		URL:        target,
		StatusCode: status,
		Err:        err,
	}
}
