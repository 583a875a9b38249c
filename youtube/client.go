package youtube

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/rs/zerolog"
)

// unauthorizedMarker identifies the 403 the API sends for a bad or restricted key.
const unauthorizedMarker = "The request is not properly authorized"

// Client wraps the YouTube Data API v3.
//
// Parameters and parts staged with SetKey, AddParam, AddPart and
// SetNextPageToken apply to the next resource operation only. Each
// operation takes a private snapshot of them, so a Client is safe for
// concurrent use.
type Client struct {
	baseURL string
	http    *resty.Client
	logger  zerolog.Logger

	mu     sync.Mutex
	staged *Query
}

// NewClient creates a new YouTube client. apiKey may be empty and set
// later with SetKey.
func NewClient(apiKey string, logger zerolog.Logger, opts ...Option) *Client {
	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}

	var rc *resty.Client
	if options.httpClient != nil {
		rc = resty.NewWithClient(options.httpClient)
	} else {
		rc = resty.New()
	}
	rc.SetTimeout(options.timeout).
		SetHeader("Accept", "application/json").
		SetHeader("User-Agent", options.userAgent)

	if options.debug {
		rc.OnAfterResponse(func(_ *resty.Client, resp *resty.Response) error {
			logger.Debug().
				Str("url", redactKey(resp.Request.URL)).
				Int("status", resp.StatusCode()).
				Bytes("body", resp.Body()).
				Msg("YouTube API response")
			return nil
		})
	}

	c := &Client{
		baseURL: options.baseURL,
		http:    rc,
		logger:  logger,
		staged:  NewQuery(),
	}
	if apiKey != "" {
		c.SetKey(apiKey)
	}
	return c
}

// BaseURL returns the API root the client talks to.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// SetKey sets the API key sent with every request.
func (c *Client) SetKey(key string) {
	c.AddParam(paramKey, key)
}

// SetNextPageToken stages a pagination cursor for the next request.
func (c *Client) SetNextPageToken(token string) {
	c.AddParam(paramPageToken, token)
}

// AddPart stages a resource part for the next request.
func (c *Client) AddPart(name string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.staged.AddPart(name)
}

// ClearParts drops the staged parts.
func (c *Client) ClearParts() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.staged.ClearParts()
}

// AddParam stages a query parameter for the next request.
func (c *Client) AddParam(key string, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.staged.AddParam(key, value)
}

// ClearParams drops every staged parameter but the key.
func (c *Client) ClearParams() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.staged.ClearParams()
}

// Params returns a copy of the staged parameters.
func (c *Client) Params() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.staged.Params()
}

// Parts returns a copy of the staged parts.
func (c *Client) Parts() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.staged.Parts()
}

// BuildURL returns the URL for path with the staged parameters.
func (c *Client) BuildURL(path string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.staged.URL(c.baseURL, path)
}

// Validate reports a validation error when no key has been set.
func (c *Client) Validate() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.staged.Validate()
}

// snapshot hands the staged state to one request and resets it to {key}.
func (c *Client) snapshot() *Query {
	c.mu.Lock()
	defer c.mu.Unlock()

	q := c.staged.Clone()
	c.staged.ClearParams()
	c.staged.ClearParts()
	return q
}

// list runs the shared pipeline of every resource operation.
func (c *Client) list(ctx context.Context, resource string, parts []string, params ...Params) (Response, error) {
	q := c.snapshot()

	if err := q.Validate(); err != nil {
		requestsTotal.WithLabelValues(resource, KindValidation.String()).Inc()
		return nil, err
	}

	q.AddPart(parts...)
	q.AddParam(paramPart, q.PartList())
	for _, p := range params {
		q.AddParams(p)
	}

	return c.request(ctx, resource, q.URL(c.baseURL, resource))
}

// request performs one GET and normalizes the outcome.
func (c *Client) request(ctx context.Context, resource, requestURL string) (Response, error) {
	logURL := redactKey(requestURL)
	c.logger.Debug().Str("url", logURL).Msg("Making YouTube API request")

	start := time.Now()
	resp, err := c.http.R().SetContext(ctx).Get(requestURL)
	requestDuration.WithLabelValues(resource).Observe(time.Since(start).Seconds())

	if err != nil {
		ytErr := newUnknownError(0, fmt.Errorf("request failed: %w", err))
		requestsTotal.WithLabelValues(resource, ytErr.Kind.String()).Inc()
		c.logger.Warn().Err(err).Str("url", logURL).Msg("YouTube API request failed")
		return nil, ytErr
	}

	data, ytErr := classifyResponse(resp.StatusCode(), resp.Body())
	if ytErr != nil {
		requestsTotal.WithLabelValues(resource, ytErr.Kind.String()).Inc()
		c.logger.Warn().
			Int("status", ytErr.StatusCode).
			Str("kind", ytErr.Kind.String()).
			Str("url", logURL).
			Msg(ytErr.Message)
		return nil, ytErr
	}

	requestsTotal.WithLabelValues(resource, "ok").Inc()
	c.logger.Debug().
		Int("status", resp.StatusCode()).
		Dur("duration", time.Since(start)).
		Int("items", len(data.Items())).
		Msg("YouTube API request completed")
	return data, nil
}

// classifyResponse maps a status code and body to the client's result shape.
func classifyResponse(status int, body []byte) (Response, *Error) {
	if status == http.StatusOK {
		return decodeResponse(body), nil
	}

	payload := decodeErrorPayload(body)
	message, _ := payload["message"].(string)

	switch {
	case status == http.StatusNotFound:
		return nil, &Error{Kind: KindNotFound, StatusCode: status, Message: MsgNotFound, Payload: payload}

	case status == http.StatusForbidden:
		if len(bytes.TrimSpace(body)) == 0 {
			return nil, newUnknownError(status, nil)
		}
		if strings.Contains(message, unauthorizedMarker) {
			return nil, &Error{Kind: KindForbidden, StatusCode: status, Message: MsgForbidden, Payload: payload}
		}
		return nil, &Error{Kind: KindRateLimited, StatusCode: status, Message: MsgRateLimited, Payload: payload}

	case status >= http.StatusBadRequest:
		if message != "" {
			return nil, &Error{Kind: KindAPI, StatusCode: status, Message: message, Payload: payload}
		}
		return nil, newUnknownError(status, nil)

	default:
		// Non-error statuses other than 200 still surface the API's error payload.
		if message == "" {
			message = MsgUnknown
		}
		return nil, &Error{Kind: KindAPI, StatusCode: status, Message: message, Payload: payload}
	}
}

// decodeResponse decodes a JSON object, falling back to an empty Response.
func decodeResponse(body []byte) Response {
	var data Response
	if err := json.Unmarshal(body, &data); err != nil || data == nil {
		return Response{}
	}
	return data
}

// decodeErrorPayload returns the "error" object of an API error body, or nil.
func decodeErrorPayload(body []byte) map[string]any {
	var envelope struct {
		Error map[string]any `json:"error"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return nil
	}
	return envelope.Error
}

// redactKey hides the API key in URLs written to logs.
func redactKey(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return rawURL
	}
	q := u.Query()
	if q.Get(paramKey) == "" {
		return rawURL
	}
	q.Set(paramKey, "REDACTED")
	u.RawQuery = q.Encode()
	return u.String()
}
