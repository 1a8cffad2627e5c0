package fetch

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"net/http"
	"regexp"
	"strings"
	"time"
)

// DefaultUserAgent mimics a desktop browser; govinfo serves error pages to
// unknown agents.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 " +
	"(KHTML, like Gecko) Chrome/124.0 Safari/537.36"

// maxBodyBytes caps a single response; enrolled omnibus bills run ~60 MB of
// plain text.
const maxBodyBytes = 128 << 20

// Client fetches bill text from the govinfo/congress.gov mirror cascade.
type Client struct {
	httpClient *http.Client
	userAgent  string
}

func NewClient(timeout time.Duration, userAgent string) *Client {
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
		userAgent:  userAgent,
	}
}

// FetchVersion downloads one version of a bill as plain text, trying each
// mirror in order until one yields usable text.
func (c *Client) FetchVersion(ctx context.Context, congress int, chamber string, number int, ver string) (string, error) {
	return c.fetchCandidates(ctx, ver, Candidates(congress, chamber, number, ver))
}

func (c *Client) fetchCandidates(ctx context.Context, ver string, cands []Candidate) (string, error) {
	var last error
	for attempt, cand := range cands {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(backoff(attempt - 1)):
			}
		}

		raw, err := c.get(ctx, cand.URL)
		if err != nil {
			last = err
			continue
		}

		var text string
		switch {
		case strings.HasSuffix(cand.Kind, "txt"):
			text = strings.ReplaceAll(raw, "\r\n", "\n")
		case strings.HasSuffix(cand.Kind, "xml"):
			text = XMLToText(raw)
		default:
			text = HTMLToText(raw)
		}
		if LooksLikeError(text) {
			last = fmt.Errorf("%s: %w", cand.Kind, errErrorPage)
			continue
		}
		return text, nil
	}
	if last == nil {
		last = errors.New("no sources configured")
	}
	return "", fmt.Errorf("fetch %s: all sources failed: %w", ver, last)
}

func (c *Client) get(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("get %s: %w", url, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, io.LimitReader(resp.Body, 1024))
		return "", fmt.Errorf("get %s: status %d", url, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		return "", fmt.Errorf("read %s: %w", url, err)
	}
	return string(body), nil
}

// Close releases idle connections.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}

// errErrorPage marks a 200 response whose body is an error page in disguise.
var errErrorPage = errors.New("response looks like an error page")

var errPhraseRe = regexp.MustCompile(`(?i)(Page Not Found|Error occurred|cannot be found|Access Denied|Forbidden|Drupal|govinfo error)`)

// LooksLikeError reports whether extracted text is an error page rather than
// bill text. Real bill versions are never this short.
func LooksLikeError(text string) bool {
	if len(strings.TrimSpace(text)) < 800 {
		return true
	}
	return errPhraseRe.MatchString(text)
}

// backoff returns the pause before retrying attempt n (0-indexed), with
// jitter so parallel fetches don't hammer a mirror in lockstep.
func backoff(attempt int) time.Duration {
	base := time.Duration(1<<uint(attempt)) * 200 * time.Millisecond
	if base > 3*time.Second {
		base = 3 * time.Second
	}
	jitter := time.Duration(rand.Int63n(int64(base) / 2))
	return base + jitter
}
