package tenor

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"

	"github.com/gifgrab-cli/gifgrab/constant"
	"github.com/gifgrab-cli/gifgrab/log"
	"github.com/gifgrab-cli/gifgrab/network"
	"github.com/gifgrab-cli/gifgrab/util"
)

// Client performs authenticated requests against the Tenor v1 API.
type Client struct {
	HTTP     *http.Client
	Endpoint string
	key      string
}

// NewClient constructs a Client using the shared HTTP client and default endpoint.
func NewClient(apiKey string) *Client {
	return &Client{
		HTTP:     network.Client,
		Endpoint: constant.SearchEndpoint,
		key:      apiKey,
	}
}

// searchResponse mirrors the wire shape of a /v1/search reply.
type searchResponse struct {
	Results []*Result `json:"results"`
	Next    string    `json:"next"`
}

// Search queries the API for media matching the free-text query and returns
// the results in API response order. The limit is clamped to the accepted
// 1..50 range. Transport failures and non-success statuses are fatal for the
// invocation and are propagated verbatim.
func (c *Client) Search(query string, limit int) ([]*Result, error) {
	limit = util.Clamp(limit, 1, constant.MaxSearchLimit)

	params := url.Values{}
	params.Set("q", query)
	params.Set("key", c.key)
	params.Set("limit", strconv.Itoa(limit))

	req, err := http.NewRequest(http.MethodGet, c.Endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", constant.UserAgent)

	log.Debugf("searching tenor for %q (limit %d)", query, limit)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("tenor search: %w", err)
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("tenor search: unexpected status %s", resp.Status)
	}

	var parsed searchResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("tenor search: decode response: %w", err)
	}

	log.Infof("tenor returned %s for %q", util.Quantify(len(parsed.Results), "result", "results"), query)
	return parsed.Results, nil
}

// Fetch downloads the raw media bytes behind a resolved variant URL.
func (c *Client) Fetch(mediaURL string) ([]byte, error) {
	req, err := http.NewRequest(http.MethodGet, mediaURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", constant.UserAgent)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch media: %w", err)
	}
	defer util.Ignore(resp.Body.Close)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("fetch media: unexpected status %s", resp.Status)
	}

	return io.ReadAll(resp.Body)
}
