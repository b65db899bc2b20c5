package core

import (
	"fmt"
	"net/http"
)

// Header names used on Betfair calls.
const (
	HeaderAuthentication = "X-Authentication"
	HeaderApplication    = "X-Application"
	HeaderContentType    = "Content-Type"
	HeaderAccept         = "Accept"

	ContentTypeJSON = "application/json"
)

// Request is a fully built Betfair call ready for the transport. Either Body (JSON)
// or Form (url-encoded) is sent.
type Request struct {
	Operation Operation         `json:"operation"`
	Method    string            `json:"method"`
	URL       string            `json:"url"`
	Headers   map[string]string `json:"-"`
	Body      []byte            `json:"body,omitempty"`
	Form      map[string]string `json:"-"`
}

// NewRequest creates a POST request for op at url.
func NewRequest(op Operation, url string) *Request {
	return &Request{
		Operation: op,
		Method:    http.MethodPost,
		URL:       url,
		Headers:   make(map[string]string),
	}
}

func (r *Request) SetHeader(key, value string) *Request {
	if r.Headers == nil {
		r.Headers = make(map[string]string)
	}
	r.Headers[key] = value
	return r
}

func (r *Request) SetBody(body []byte) *Request {
	r.Body = body
	return r
}

func (r *Request) SetForm(form map[string]string) *Request {
	r.Form = form
	return r
}

// BuildRequest builds an authenticated JSON operation request. The URL is
// baseURL + op + "/" and the body is the JSON encoding of params ({} when nil).
func BuildRequest(baseURL string, op Operation, sessionToken, applicationKey string, params *Params) (*Request, error) {
	if sessionToken == "" {
		return nil, ErrMissingSessionToken
	}
	if applicationKey == "" {
		return nil, ErrMissingApplicationKey
	}

	body, err := params.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("encode %s params: %w", op, err)
	}

	return NewRequest(op, baseURL+op.String()+"/").
		SetHeader(HeaderAuthentication, sessionToken).
		SetHeader(HeaderApplication, applicationKey).
		SetHeader(HeaderContentType, ContentTypeJSON).
		SetHeader(HeaderAccept, ContentTypeJSON).
		SetBody(body), nil
}
