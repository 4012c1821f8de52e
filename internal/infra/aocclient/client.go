package aocclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/mawkler/advent-of-code/internal/domain"
	"github.com/mawkler/advent-of-code/internal/ports"
)

// maxInputBytes bounds a downloaded input. Real inputs are well below this.
const maxInputBytes = 4 << 20

// Client downloads puzzle inputs from adventofcode.com (or a compatible server).
type Client struct {
	baseURL   string
	userAgent string
	session   string

	http    *http.Client
	timeout time.Duration
}

var _ ports.InputFetcher = (*Client)(nil)

type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		if c != nil {
			cl.http = c
		}
	}
}

// WithTimeout sets the per-request timeout applied on top of the context.
func WithTimeout(d time.Duration) Option {
	return func(cl *Client) { cl.timeout = d }
}

func New(cfg domain.FetchConfig, session string, opts ...Option) *Client {
	tc := DefaultTransportConfig()
	c := &Client{
		baseURL:   strings.TrimRight(cfg.BaseURL, "/"),
		userAgent: cfg.UserAgent,
		session:   session,
		http:      NewHTTPClient(tc),
		timeout:   tc.Timeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) InputURL(key domain.PuzzleKey) string {
	return fmt.Sprintf("%s/%d/day/%d/input", c.baseURL, key.Year, key.Day)
}

// FetchInput maps server answers onto error kinds: 404 (day not unlocked)
// is KindNotFound, 400/401/403 (bad or expired session) KindUnauthorized.
func (c *Client) FetchInput(ctx context.Context, key domain.PuzzleKey) ([]byte, error) {
	url := c.InputURL(key)
	if strings.TrimSpace(c.session) == "" {
		return nil, &domain.OpError{
			Op:   "aocclient.fetch",
			Kind: domain.KindUnauthorized,
			Path: url,
			Err:  fmt.Errorf("no session cookie: %w", domain.ErrUnauthorized),
		}
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &domain.OpError{Op: "aocclient.fetch", Kind: domain.KindInvalidConfig, Path: url, Err: err}
	}
	req.AddCookie(&http.Cookie{Name: "session", Value: c.session})
	if c.userAgent != "" {
		req.Header.Set("User-Agent", c.userAgent)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, &domain.OpError{Op: "aocclient.fetch", Kind: domain.KindExecution, Path: url, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxInputBytes+1))
	if err != nil {
		return nil, &domain.OpError{Op: "aocclient.read", Kind: domain.KindExecution, Path: url, Err: err}
	}

	switch {
	case resp.StatusCode == http.StatusOK:
	case resp.StatusCode == http.StatusNotFound:
		return nil, &domain.OpError{
			Op:   "aocclient.fetch",
			Kind: domain.KindNotFound,
			Path: url,
			Err:  fmt.Errorf("%s is not unlocked yet: %w", key, domain.ErrNotFound),
		}
	case resp.StatusCode == http.StatusBadRequest,
		resp.StatusCode == http.StatusUnauthorized,
		resp.StatusCode == http.StatusForbidden,
		resp.StatusCode >= 300 && resp.StatusCode < 400:
		return nil, &domain.OpError{
			Op:   "aocclient.fetch",
			Kind: domain.KindUnauthorized,
			Path: url,
			Err:  fmt.Errorf("status %d, session cookie rejected: %w", resp.StatusCode, domain.ErrUnauthorized),
		}
	default:
		return nil, &domain.OpError{
			Op:   "aocclient.fetch",
			Kind: domain.KindExecution,
			Path: url,
			Err:  fmt.Errorf("unexpected status %d: %s: %w", resp.StatusCode, snippet(body), domain.ErrExecution),
		}
	}

	if len(body) > maxInputBytes {
		return nil, &domain.OpError{
			Op:   "aocclient.read",
			Kind: domain.KindExecution,
			Path: url,
			Err:  fmt.Errorf("input larger than %d bytes: %w", maxInputBytes, domain.ErrExecution),
		}
	}
	if len(body) == 0 {
		return nil, &domain.OpError{
			Op:   "aocclient.read",
			Kind: domain.KindExecution,
			Path: url,
			Err:  errors.New("empty input"),
		}
	}
	return body, nil
}

func snippet(b []byte) string {
	s := strings.TrimSpace(string(b))
	if len(s) > 80 {
		s = s[:80] + "..."
	}
	return s
}
