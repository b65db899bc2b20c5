// Package transport executes built Betfair requests and turns responses into typed
// results or *core.APIError values.
package transport

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"reflect"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"resty.dev/v3"

	httpclient "betfair/internal/http"
	"betfair/pkg/core"
)

// Client sends core requests over an HTTP client and applies the response contract.
// It implements core.Executor and is safe for concurrent use.
type Client struct {
	http   *httpclient.Client
	logger zerolog.Logger
}

// Response represents an HTTP response with its status code, body, and headers.
type Response struct {
	StatusCode int
	Body       []byte
	Headers    map[string]string
}

var validate = validator.New()

// NewClient creates a transport client over an HTTP client.
func NewClient(httpClient *httpclient.Client, logger zerolog.Logger) *Client {
	return &Client{
		http:   httpClient,
		logger: logger,
	}
}

// Do sends req and returns the raw response. Only network faults are reported as errors.
func (c *Client) Do(ctx context.Context, req *core.Request) (*Response, error) {
	if req.Method != http.MethodPost {
		return nil, fmt.Errorf("unsupported http method: %s", req.Method)
	}

	headers := httpclient.WithHeaders(req.Headers)

	var (
		resp *resty.Response
		err  error
	)
	if req.Form != nil {
		resp, err = c.http.PostForm(ctx, req.URL, req.Form, headers)
	} else {
		resp, err = c.http.Post(ctx, req.URL, req.Body, headers)
	}
	if err != nil {
		c.logger.Error().Err(err).
			Str("operation", req.Operation.String()).
			Str("url", req.URL).
			Msg("http request failed")
		return nil, fmt.Errorf("http request: %w", err)
	}

	event := c.logger.Debug()
	if req.Operation.IsTransactional() {
		event = c.logger.Info()
	}
	event.Str("operation", req.Operation.String()).
		Int("status", resp.StatusCode()).
		Msg("betfair response")

	headersOut := make(map[string]string)
	for k, v := range resp.Header() {
		if len(v) > 0 {
			headersOut[k] = v[0]
		}
	}

	return &Response{
		StatusCode: resp.StatusCode(),
		Body:       resp.Bytes(),
		Headers:    headersOut,
	}, nil
}

// Execute sends req and applies Handle to the response.
func (c *Client) Execute(ctx context.Context, req *core.Request) ([]byte, error) {
	resp, err := c.Do(ctx, req)
	if err != nil {
		return nil, err
	}
	return Handle(req.Operation, resp)
}

// Close releases the underlying HTTP client.
func (c *Client) Close() error {
	return c.http.Close()
}

// IsSuccess returns true if the response status code indicates success (2xx).
func (r *Response) IsSuccess() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Handle classifies a response: non-2xx becomes a server error carrying the body
// (or the status text when the body is empty), a 2xx without a body becomes an
// empty response error, anything else yields the raw body.
func Handle(op core.Operation, resp *Response) ([]byte, error) {
	if !resp.IsSuccess() {
		reason := string(resp.Body)
		if reason == "" {
			reason = http.StatusText(resp.StatusCode)
		}
		apiErr := core.NewServerError(op.String(), resp.StatusCode, reason)
		if code := core.ParseFaultCode(resp.Body); code != "" {
			apiErr.WithCode(code)
		}
		return nil, apiErr
	}

	trimmed := bytes.TrimSpace(resp.Body)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return nil, core.NewEmptyResponseError(op.String(), resp.StatusCode)
	}
	return resp.Body, nil
}

// Decode unmarshals body into T and checks the validate tags of the result.
// Unknown fields are ignored.
func Decode[T any](op core.Operation, body []byte) (T, error) {
	var out, zero T
	if err := sonic.Unmarshal(body, &out); err != nil {
		return zero, core.NewDecodeError(op.String(), http.StatusOK, body, err)
	}
	if err := check(reflect.ValueOf(out)); err != nil {
		return zero, core.NewDecodeError(op.String(), http.StatusOK, body, err)
	}
	return out, nil
}

// Call executes req and decodes the successful body into T.
func Call[T any](ctx context.Context, ex core.Executor, req *core.Request) (T, error) {
	body, err := ex.Execute(ctx, req)
	if err != nil {
		var zero T
		return zero, err
	}
	return Decode[T](req.Operation, body)
}

func check(v reflect.Value) error {
	switch v.Kind() {
	case reflect.Pointer:
		if v.IsNil() {
			return nil
		}
		return check(v.Elem())
	case reflect.Struct:
		return validate.Struct(v.Interface())
	case reflect.Slice, reflect.Array:
		for i := 0; i < v.Len(); i++ {
			if err := check(v.Index(i)); err != nil {
				return fmt.Errorf("element %d: %w", i, err)
			}
		}
	}
	return nil
}
