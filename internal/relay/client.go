// Package relay delivers validated contact submissions to the hosted
// services that do the real work: the Formspree form relay and the Resend
// transactional email API.
package relay

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"siteprisme.fr/internal/models"
)

// Channel names, used in logs, metrics and the inbox.
const (
	ChannelFormspree = "formspree"
	ChannelEmail     = "email"
)

// Channel delivers one submission. The returned reference is the provider's
// identifier for the delivery, when it has one.
type Channel interface {
	Name() string
	Deliver(ctx context.Context, sub models.Submission) (ref string, err error)
}

// StatusError is returned when a provider answers with a non-2xx status.
type StatusError struct {
	Channel string
	Code    int
	Body    string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s: unexpected status %d", e.Channel, e.Code)
	}
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Channel, e.Code, e.Body)
}

const (
	defaultClientTimeout         = 10 * time.Second
	defaultDialTimeout           = 3 * time.Second
	defaultResponseHeaderTimeout = 8 * time.Second
	defaultIdleConnTimeout       = 30 * time.Second
)

// NewHTTPClient returns the outbound client shared by the channels. When
// traced is set the transport is wrapped with OpenTelemetry instrumentation.
func NewHTTPClient(timeout time.Duration, traced bool) *http.Client {
	if timeout <= 0 {
		timeout = defaultClientTimeout
	}

	dialTimeout := timeout
	if dialTimeout > defaultDialTimeout {
		dialTimeout = defaultDialTimeout
	}
	headerTimeout := timeout
	if headerTimeout > defaultResponseHeaderTimeout {
		headerTimeout = defaultResponseHeaderTimeout
	}

	var transport http.RoundTripper = &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           (&net.Dialer{Timeout: dialTimeout, KeepAlive: 30 * time.Second}).DialContext,
		ForceAttemptHTTP2:     true,
		MaxIdleConns:          8,
		MaxIdleConnsPerHost:   2,
		IdleConnTimeout:       defaultIdleConnTimeout,
		TLSHandshakeTimeout:   dialTimeout,
		ResponseHeaderTimeout: headerTimeout,
		ExpectContinueTimeout: time.Second,
	}
	if traced {
		transport = otelhttp.NewTransport(transport)
	}

	return &http.Client{Timeout: timeout, Transport: transport}
}
