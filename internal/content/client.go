package content

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	// ArticlesPath is the path prefix article bodies are served under.
	ArticlesPath = "/content/articles/"

	// Ext is the file extension of article bodies.
	Ext = ".md"

	maxBodySize = 4 << 20
)

// Client fetches raw markdown bodies from {baseURL}/content/articles/{slug}.md.
type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 10 * time.Second}
	}

	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    httpClient,
	}
}

// Article returns the body for slug unmodified. Non-2xx responses are errors.
func (c *Client) Article(ctx context.Context, slug string) (string, error) {
	u := c.baseURL + ArticlesPath + url.PathEscape(slug) + Ext

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("build content request: %w", err)
	}
	req.Header.Set("Accept", "text/markdown, text/plain;q=0.9, */*;q=0.1")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("content request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return "", &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", fmt.Errorf("read content body: %w", err)
	}

	return string(body), nil
}

type StatusError struct {
	Code int
	Body string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("content fetch failed with status %d", e.Code)
	}

	return fmt.Sprintf("content fetch failed with status %d: %s", e.Code, e.Body)
}
