package houses

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"daysoflight/internal/model"
)

// Resource is the path of the house collection on the houses API.
const Resource = "api/houses"

const maxBodyBytes = 1 << 20

// Fetcher retrieves the current list of houses.
type Fetcher interface {
	Fetch(ctx context.Context) ([]model.House, error)
}

// Client fetches houses from the houses API.
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient creates a client for the API rooted at baseURL. A nil
// httpClient uses http.DefaultClient.
func NewClient(baseURL string, httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{
		url:        strings.TrimRight(baseURL, "/") + "/" + Resource + "/",
		httpClient: httpClient,
	}
}

// URL returns the address the client requests.
func (c *Client) URL() string {
	return c.url
}

// Fetch requests the first page of the house collection. Every failure
// wraps ErrNetworkOrServer.
func (c *Client) Fetch(ctx context.Context) ([]model.House, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: creating request: %w", ErrNetworkOrServer, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: fetching houses: %w", ErrNetworkOrServer, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, io.LimitReader(resp.Body, maxBodyBytes))
		return nil, fmt.Errorf("%w: unexpected status %d", ErrNetworkOrServer, resp.StatusCode)
	}

	// Results is a pointer so an absent field can be told apart from an empty list.
	var page struct {
		Results *[]model.House `json:"results"`
	}
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&page); err != nil {
		return nil, fmt.Errorf("%w: decoding response: %w", ErrNetworkOrServer, err)
	}
	if page.Results == nil {
		return nil, fmt.Errorf("%w: response has no results", ErrNetworkOrServer)
	}

	return *page.Results, nil
}
