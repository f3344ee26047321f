// Package ioncbi implements taxonomy.Searcher and taxonomy.Fetcher on top
// of NCBI E-utilities (esearch and efetch for the taxonomy database).
//
// Every request is followed by a fixed pause to stay within NCBI rate
// limits. Failures never stop the caller: they are logged as warnings and
// turned into empty results.
package ioncbi

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/gnames/gn"
	"github.com/gnames/gnsyn/pkg/config"
	"github.com/gnames/gnsyn/pkg/taxonomy"
)

const (
	searchEndpoint = "esearch"
	fetchEndpoint  = "efetch"
	database       = "taxonomy"
)

var (
	_ taxonomy.Searcher = (*Client)(nil)
	_ taxonomy.Fetcher  = (*Client)(nil)
)

// Client talks to NCBI E-utilities. One HTTP client is reused for all
// requests. Client is not safe for concurrent use.
type Client struct {
	cfg      config.NCBIConfig
	http     *http.Client
	throttle time.Duration
	sleep    func(time.Duration)

	searches int
	fetches  int
}

// Option modifies Client.
type Option func(*Client)

// OptHTTPClient replaces the default HTTP client.
func OptHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// OptSleep replaces time.Sleep used for throttling.
func OptSleep(fn func(time.Duration)) Option {
	return func(c *Client) {
		c.sleep = fn
	}
}

// New creates a Client for the given NCBI settings.
func New(cfg config.NCBIConfig, opts ...Option) *Client {
	res := &Client{
		cfg: cfg,
		http: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSec) * time.Second,
		},
		throttle: time.Duration(cfg.ThrottleMs) * time.Millisecond,
		sleep:    time.Sleep,
	}
	for _, opt := range opts {
		opt(res)
	}
	return res
}

// Search finds the first taxonomy ID matching the query in any of the
// name fields.
func (c *Client) Search(
	ctx context.Context,
	query string,
) taxonomy.Lookup[taxonomy.ID] {
	params := c.params()
	params.Set("term", query+"[All Names]")

	c.searches++
	data, err := c.get(ctx, searchEndpoint, query, params)
	c.pause()
	if err != nil {
		warn(err)
		return taxonomy.Absent[taxonomy.ID]()
	}

	res, err := taxonomy.ParseSearch(data)
	if err != nil {
		warn(ParseError(searchEndpoint, query, err))
		return taxonomy.Absent[taxonomy.ID]()
	}

	slog.Debug("Searched NCBI taxonomy",
		"query", query, "found", res.Found, "taxid", string(res.Value))
	return res
}

// Fetch returns synonyms of the taxon with the given ID.
func (c *Client) Fetch(ctx context.Context, id taxonomy.ID) []string {
	params := c.params()
	params.Set("id", string(id))

	c.fetches++
	data, err := c.get(ctx, fetchEndpoint, string(id), params)
	c.pause()
	if err != nil {
		warn(err)
		return []string{}
	}

	res, err := taxonomy.ExtractSynonyms(data)
	if err != nil {
		warn(ParseError(fetchEndpoint, string(id), err))
		return []string{}
	}

	slog.Debug("Fetched NCBI taxon", "taxid", string(id), "synonyms", len(res))
	return res
}

// Calls returns the number of search and fetch requests sent so far.
func (c *Client) Calls() (searches, fetches int) {
	return c.searches, c.fetches
}

func (c *Client) params() url.Values {
	res := url.Values{}
	res.Set("db", database)
	res.Set("retmode", "xml")
	res.Set("tool", c.cfg.Tool)
	res.Set("email", c.cfg.Email)
	if c.cfg.APIKey != "" {
		res.Set("api_key", c.cfg.APIKey)
	}
	return res
}

func (c *Client) get(
	ctx context.Context,
	endpoint, term string,
	params url.Values,
) ([]byte, error) {
	u := c.cfg.BaseURL + "/" + endpoint + ".fcgi?" + params.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, RequestError(endpoint, term, err)
	}
	req.Header.Set("User-Agent", c.cfg.UserAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, RequestError(endpoint, term, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, StatusError(endpoint, term, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, RequestError(endpoint, term, err)
	}
	return data, nil
}

func (c *Client) pause() {
	if c.throttle > 0 {
		c.sleep(c.throttle)
	}
}

// warn reports a failed call to the log and to the user.
func warn(err error) {
	slog.Warn("NCBI request failed", "error", err)

	var gnErr *gn.Error
	if errors.As(err, &gnErr) {
		gn.Warn(gnErr.Msg, gnErr.Vars...)
		return
	}
	gn.Warn("%s", err)
}
