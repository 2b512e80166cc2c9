// Package http implements the shared transport every resource client is built
// on: request construction, bounded retries with backoff, error
// classification, and optional response caching.
package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math/rand"
	nethttp "net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/ibm-richard/go-tfe/internal/constants"
	"github.com/ibm-richard/go-tfe/pkg/tfe"
)

// Request describes a single API operation to execute.
type Request struct {
	Method  string
	Path    string
	Query   url.Values
	Body    interface{}
	Headers map[string]string
}

// Response is the decoded-envelope-free result of a request. Resource clients
// unmarshal Body into their expected shape.
type Response struct {
	StatusCode int
	Headers    nethttp.Header
	Body       []byte
}

// Client executes API requests against one endpoint. It is immutable after
// construction and safe for concurrent use; per-sequence state (page cursors)
// lives in iterators, never here.
type Client struct {
	baseURL      string
	token        string
	httpClient   *retryablehttp.Client
	userAgent    string
	headers      map[string]string
	logger       tfe.Logger
	debug        bool
	interceptors *tfe.InterceptorChain
	cache        tfe.Cache
	cacheTTL     time.Duration
}

// Option configures a Client.
type Option func(*Client)

// WithLogger sets the logger used for debug logging.
func WithLogger(logger tfe.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// WithDebug enables request/response logging when a logger is set.
func WithDebug(debug bool) Option {
	return func(c *Client) {
		c.debug = debug
	}
}

// WithUserAgent overrides the default User-Agent header.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithHeaders attaches extra headers to every request.
func WithHeaders(headers map[string]string) Option {
	return func(c *Client) {
		for key, value := range headers {
			c.headers[key] = value
		}
	}
}

// WithRetryConfig tunes the retry budget and backoff window.
func WithRetryConfig(retryMax int, waitMin, waitMax time.Duration) Option {
	return func(c *Client) {
		c.httpClient.RetryMax = retryMax
		c.httpClient.RetryWaitMin = waitMin
		c.httpClient.RetryWaitMax = waitMax
	}
}

// WithTimeout bounds each request when the context carries no deadline.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.HTTPClient.Timeout = timeout
	}
}

// WithInterceptors installs a request/response interceptor chain.
func WithInterceptors(chain *tfe.InterceptorChain) Option {
	return func(c *Client) {
		c.interceptors = chain
	}
}

// WithCache enables read-through caching of GET responses. Entries expire
// after ttl, and any successful mutation clears the cache so a read issued
// after a write never returns pre-write state.
func WithCache(cache tfe.Cache, ttl time.Duration) Option {
	return func(c *Client) {
		c.cache = cache
		c.cacheTTL = ttl
	}
}

// NewClient creates a transport bound to baseURL. The token is attached as a
// bearer Authorization header on every request; an empty token sends none.
func NewClient(baseURL, token string, opts ...Option) *Client {
	retryClient := retryablehttp.NewClient()
	retryClient.RetryMax = constants.DefaultRetryMax
	retryClient.RetryWaitMin = constants.DefaultRetryWaitMin
	retryClient.RetryWaitMax = constants.DefaultRetryWaitMax
	retryClient.CheckRetry = retryPolicy
	retryClient.Backoff = backoff
	// Keep the final response when the retry budget runs out so the error
	// classifier still sees the status and body.
	retryClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	retryClient.Logger = nil
	retryClient.HTTPClient.Timeout = constants.DefaultHTTPTimeout

	client := &Client{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		token:      token,
		httpClient: retryClient,
		userAgent:  "go-tfe",
		headers:    make(map[string]string),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// retryPolicy retries connection-level failures and the transient status
// codes (429, 5xx). Everything else surfaces on the first attempt, and an
// expired context aborts remaining attempts immediately.
func retryPolicy(ctx context.Context, resp *nethttp.Response, err error) (bool, error) {
	if ctx.Err() != nil {
		return false, ctx.Err()
	}

	if err != nil {
		return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
	}

	switch resp.StatusCode {
	case nethttp.StatusTooManyRequests,
		nethttp.StatusInternalServerError,
		nethttp.StatusBadGateway,
		nethttp.StatusServiceUnavailable,
		nethttp.StatusGatewayTimeout:
		return true, nil
	}

	return false, nil
}

// backoff sleeps per the server's Retry-After when one was sent, otherwise
// exponentially with jitter between the configured bounds.
func backoff(waitMin, waitMax time.Duration, attemptNum int, resp *nethttp.Response) time.Duration {
	if resp != nil && (resp.StatusCode == nethttp.StatusTooManyRequests || resp.StatusCode == nethttp.StatusServiceUnavailable) {
		if header := resp.Header.Get("Retry-After"); header != "" {
			if seconds, err := strconv.ParseFloat(header, 64); err == nil && seconds >= 0 {
				return time.Duration(seconds * float64(time.Second))
			}
		}
	}

	sleep := waitMin << uint(attemptNum)
	if sleep <= 0 || sleep > waitMax {
		sleep = waitMax
	}

	// Half fixed, half jittered, so concurrent callers spread out.
	half := sleep / 2

	return half + time.Duration(rand.Int63n(int64(half)+1))
}

// Do executes a request and returns the raw response. For non-2xx statuses
// the response is returned together with the classified error.
func (c *Client) Do(ctx context.Context, req *Request) (*Response, error) {
	fullURL := c.baseURL + req.Path
	if len(req.Query) > 0 {
		fullURL += "?" + req.Query.Encode()
	}

	var bodyBytes []byte

	if req.Body != nil {
		switch body := req.Body.(type) {
		case []byte:
			bodyBytes = body
		default:
			data, err := json.Marshal(req.Body)
			if err != nil {
				return nil, fmt.Errorf("marshaling request body: %w", err)
			}

			bodyBytes = data
		}
	}

	cacheKey := req.Method + " " + fullURL
	if cached := c.cacheLookup(ctx, req.Method, cacheKey); cached != nil {
		return cached, nil
	}

	intercepted := &tfe.InterceptedRequest{
		Method:  req.Method,
		Path:    req.Path,
		Headers: make(nethttp.Header),
		Body:    bodyBytes,
	}

	if c.interceptors != nil {
		if err := c.interceptors.ExecuteRequestInterceptors(ctx, intercepted); err != nil {
			return nil, err
		}

		bodyBytes = intercepted.Body
	}

	httpReq, err := retryablehttp.NewRequestWithContext(ctx, req.Method, fullURL, bytes.NewReader(bodyBytes))
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	c.setHeaders(httpReq, req, intercepted.Headers, len(bodyBytes) > 0)

	if c.debug && c.logger != nil {
		c.logger.Debug("HTTP Request", map[string]interface{}{
			"method": req.Method,
			"url":    fullURL,
		})
	}

	httpResp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, classifyTransportError(ctx, err)
	}

	defer func() { _ = httpResp.Body.Close() }()

	body, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	resp := &Response{
		StatusCode: httpResp.StatusCode,
		Headers:    httpResp.Header,
		Body:       body,
	}

	var respErr error
	if httpResp.StatusCode >= 400 {
		respErr = tfe.ClassifyResponse(httpResp.StatusCode, body, parseRetryAfter(httpResp.Header))
	}

	if c.debug && c.logger != nil {
		fields := map[string]interface{}{
			"method":      req.Method,
			"url":         fullURL,
			"status_code": httpResp.StatusCode,
		}
		if respErr != nil {
			c.logger.Error("HTTP Response", fields)
		} else {
			c.logger.Debug("HTTP Response", fields)
		}
	}

	if c.interceptors != nil {
		interceptedResp := &tfe.InterceptedResponse{
			StatusCode: resp.StatusCode,
			Headers:    resp.Headers,
			Body:       resp.Body,
			Error:      respErr,
		}
		if err := c.interceptors.ExecuteResponseInterceptors(ctx, intercepted, interceptedResp); err != nil {
			return resp, err
		}
	}

	c.cacheStore(ctx, req.Method, cacheKey, resp, respErr)
	c.cacheInvalidate(ctx, req.Method, respErr)

	return resp, respErr
}

func (c *Client) setHeaders(httpReq *retryablehttp.Request, req *Request, intercepted nethttp.Header, hasBody bool) {
	httpReq.Header.Set("Accept", constants.ContentTypeJSONAPI)
	httpReq.Header.Set("User-Agent", c.userAgent)

	if hasBody {
		httpReq.Header.Set("Content-Type", constants.ContentTypeJSONAPI)
	}

	if c.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.token)
	}

	for key, value := range c.headers {
		httpReq.Header.Set(key, value)
	}

	for key, value := range req.Headers {
		httpReq.Header.Set(key, value)
	}

	for key, values := range intercepted {
		for _, value := range values {
			httpReq.Header.Set(key, value)
		}
	}
}

func (c *Client) cacheLookup(ctx context.Context, method, key string) *Response {
	if c.cache == nil || method != nethttp.MethodGet {
		return nil
	}

	entry, err := c.cache.Get(ctx, key)
	if err != nil {
		return nil
	}

	return &Response{
		StatusCode: nethttp.StatusOK,
		Headers:    nethttp.Header{"X-Cache": []string{"HIT"}},
		Body:       entry.Data,
	}
}

func (c *Client) cacheStore(ctx context.Context, method, key string, resp *Response, respErr error) {
	if c.cache == nil || method != nethttp.MethodGet || respErr != nil || resp.StatusCode != nethttp.StatusOK {
		return
	}

	ttl := c.cacheTTL
	if ttl <= 0 {
		ttl = tfe.DefaultCacheOptions().TTL
	}

	_ = c.cache.Set(ctx, key, &tfe.CacheEntry{
		Data:      resp.Body,
		ExpiresAt: time.Now().Add(ttl),
		ETag:      resp.Headers.Get("ETag"),
	})
}

// cacheInvalidate clears cached GET responses after a successful mutation.
// The key space is flat, so invalidation is whole-cache rather than per path.
func (c *Client) cacheInvalidate(ctx context.Context, method string, respErr error) {
	if c.cache == nil || method == nethttp.MethodGet || respErr != nil {
		return
	}

	_ = c.cache.Clear(ctx)
}

// classifyTransportError distinguishes deadline expiry from other transport
// failures once the retry budget is spent.
func classifyTransportError(ctx context.Context, err error) error {
	if errors.Is(err, context.DeadlineExceeded) || ctx.Err() != nil {
		cause := ctx.Err()
		if cause == nil {
			cause = err
		}

		if errors.Is(cause, context.Canceled) {
			return cause
		}

		return &tfe.TimeoutError{Err: err}
	}

	var urlErr *url.Error
	if errors.As(err, &urlErr) && urlErr.Timeout() {
		return &tfe.TimeoutError{Err: err}
	}

	return fmt.Errorf("executing request: %w", err)
}

func parseRetryAfter(headers nethttp.Header) time.Duration {
	header := headers.Get("Retry-After")
	if header == "" {
		return 0
	}

	seconds, err := strconv.ParseFloat(header, 64)
	if err != nil || seconds < 0 {
		return 0
	}

	return time.Duration(seconds * float64(time.Second))
}

// Get executes a GET request.
func (c *Client) Get(ctx context.Context, path string, query url.Values) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodGet, Path: path, Query: query})
}

// Post executes a POST request with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodPost, Path: path, Body: body})
}

// Put executes a PUT request with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodPut, Path: path, Body: body})
}

// Patch executes a PATCH request with a JSON body.
func (c *Client) Patch(ctx context.Context, path string, body interface{}) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodPatch, Path: path, Body: body})
}

// Delete executes a DELETE request.
func (c *Client) Delete(ctx context.Context, path string) (*Response, error) {
	return c.Do(ctx, &Request{Method: nethttp.MethodDelete, Path: path})
}
