// Package api implements the Langfuse REST client: request plumbing, the
// generic paginator, and the error taxonomy commands map to exit codes.
package api

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"iter"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/kazuma-desu/lf/pkg/logger"
	"github.com/kazuma-desu/lf/pkg/models"
	"github.com/kazuma-desu/lf/pkg/version"
)

const (
	apiBasePath    = "/api/public"
	requestTimeout = 60 * time.Second
)

// Config carries the resolved connection settings for one invocation.
type Config struct {
	Host      string
	PublicKey string
	SecretKey string
}

// Client talks to the Langfuse public API over HTTP basic auth. It performs
// no retries; every failure surfaces to the caller as a typed *Error.
type Client struct {
	baseURL   string
	publicKey string
	secretKey string
	userAgent string
	http      *http.Client
}

// NewClient builds a client for the given host and key pair.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:   strings.TrimRight(cfg.Host, "/") + apiBasePath,
		publicKey: cfg.PublicKey,
		secretKey: cfg.SecretKey,
		userAgent: "lf/" + version.Version,
		http:      &http.Client{Timeout: requestTimeout},
	}
}

// get performs a GET request and decodes the response body into a Record.
// Numbers are decoded as json.Number so their textual form is preserved.
func (c *Client) get(ctx context.Context, path string, params url.Values) (models.Record, error) {
	body, err := c.getRaw(ctx, path, params)
	if err != nil {
		return nil, err
	}

	var rec models.Record
	dec := json.NewDecoder(strings.NewReader(string(body)))
	dec.UseNumber()
	if err := dec.Decode(&rec); err != nil {
		return nil, apiError(0, fmt.Sprintf("invalid response body: %v", err))
	}
	return rec, nil
}

func (c *Client) getRaw(ctx context.Context, path string, params url.Values) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return nil, connectionError(err)
	}
	req.URL.RawQuery = cleanParams(params).Encode()
	req.SetBasicAuth(c.publicKey, c.secretKey)
	req.Header.Set("User-Agent", c.userAgent)

	logger.Log.Debugw("API request", "path", path, "query", req.URL.RawQuery)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, connectionError(err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, connectionError(err)
	}
	if resp.StatusCode == http.StatusNotFound {
		return nil, notFoundError(path)
	}
	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, apiError(resp.StatusCode, strings.TrimSpace(string(body)))
	}
	return body, nil
}

// getPage fetches one page of a list endpoint. List responses carry the shape
// {"data": [...], "meta": {"totalItems": N, ...}}.
func (c *Client) getPage(ctx context.Context, path string, params url.Values, page, size int) (*models.Page, error) {
	merged := url.Values{}
	for k, vs := range params {
		merged[k] = vs
	}
	merged.Set("page", strconv.Itoa(page))
	merged.Set("limit", strconv.Itoa(size))

	body, err := c.getRaw(ctx, path, merged)
	if err != nil {
		return nil, err
	}

	var resp struct {
		Data []models.Record `json:"data"`
		Meta struct {
			TotalItems int `json:"totalItems"`
		} `json:"meta"`
	}
	dec := json.NewDecoder(strings.NewReader(string(body)))
	dec.UseNumber()
	if err := dec.Decode(&resp); err != nil {
		return nil, apiError(0, fmt.Sprintf("invalid response body: %v", err))
	}
	return &models.Page{Items: resp.Data, TotalItems: resp.Meta.TotalItems}, nil
}

// paginate returns a lazy record sequence over a list endpoint.
func (c *Client) paginate(ctx context.Context, path string, params url.Values, limit int) iter.Seq2[models.Record, error] {
	return Paginate(ctx, limit, func(ctx context.Context, page, size int) (*models.Page, error) {
		return c.getPage(ctx, path, params, page, size)
	})
}

// CheckAccess verifies the configured credentials against the API.
func (c *Client) CheckAccess(ctx context.Context) error {
	_, err := c.getRaw(ctx, "/projects", nil)
	return err
}

// cleanParams drops entries whose values are all empty. The API rejects
// literal empty filter values, so unset flags must never be transmitted.
func cleanParams(params url.Values) url.Values {
	cleaned := url.Values{}
	for key, values := range params {
		for _, v := range values {
			if v != "" {
				cleaned.Add(key, v)
			}
		}
	}
	return cleaned
}
