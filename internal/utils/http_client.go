package utils

import (
	"context"
	"net/http"
	"net/http/cookiejar"
	"time"

	"github.com/go-resty/resty/v2"
)

// RequestIDHeader is the header that carries the per-request identifier.
const RequestIDHeader = "X-Request-ID"

// HTTPClient is a wrapper around the resty.Client HTTP client.
// It embeds *resty.Client to expose all of its methods directly and keeps a
// handle on the cookie jar so that the session can be persisted.
type HTTPClient struct {
	*resty.Client

	jar http.CookieJar
}

// NewHTTPClient creates a credentialed client: every request carries the
// cookies held in its jar and an X-Request-ID header. A zero timeout leaves
// requests unbounded.
func NewHTTPClient(timeout time.Duration) *HTTPClient {
	jar, _ := cookiejar.New(nil)

	client := resty.New().SetCookieJar(jar)
	if timeout > 0 {
		client.SetTimeout(timeout)
	}

	client.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		if r.Header.Get(RequestIDHeader) != "" {
			return nil
		}
		id, ok := GetRequestIDFromContext(requestContext(r))
		if !ok {
			id = NewRequestID()
		}
		r.SetHeader(RequestIDHeader, id)
		return nil
	})

	return &HTTPClient{Client: client, jar: jar}
}

// Jar returns the cookie jar shared by all requests of the client.
func (c *HTTPClient) Jar() http.CookieJar {
	return c.jar
}

// ResetJar drops every cookie by installing a fresh jar.
func (c *HTTPClient) ResetJar() {
	jar, _ := cookiejar.New(nil)
	c.jar = jar
	c.SetCookieJar(jar)
}

func requestContext(r *resty.Request) context.Context {
	if ctx := r.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
