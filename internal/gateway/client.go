package gateway

// Package gateway is the single transport to the remote blog store. Every
// call carries the credential cookie automatically via the shared jar, is
// bounded by a fixed timeout, and reduces every failure mode to the
// normalized AppError shape. Callers never see resty or net/http errors.

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	"golang.org/x/net/publicsuffix"

	apperr "github.com/doTryCatch/blog-content-management-demo/internal/errors"
	"github.com/doTryCatch/blog-content-management-demo/internal/ports"
)

// Options configures a Client.
type Options struct {
	// BaseURL is the remote store endpoint, e.g. "https://blog.example.com".
	BaseURL string
	// PathPrefix is prepended to every logical path ("/api" or empty).
	PathPrefix string
	// Timeout bounds every single call. Zero means 10s.
	Timeout time.Duration
	// CredentialCookie is the cookie name carrying the credential artifact.
	CredentialCookie string
	// Logger is optional.
	Logger *slog.Logger
}

// Client wraps a resty client with the jar holding the credential artifact.
// Construct once per UI process; the typed facades returned by Auth, Blog,
// and Users share the transport and therefore the credential.
type Client struct {
	http       *resty.Client
	jar        http.CookieJar
	baseURL    *url.URL
	cookieName string
	logger     *slog.Logger
}

const defaultTimeout = 10 * time.Second

// New constructs a Client and validates the endpoint configuration.
func New(opts Options) (*Client, error) {
	parsed, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid base URL: %w", err)
	}
	if !parsed.IsAbs() || parsed.Host == "" {
		return nil, fmt.Errorf("base URL must be absolute with a host, got: %s", opts.BaseURL)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, fmt.Errorf("base URL scheme must be http or https, got: %s", parsed.Scheme)
	}

	// The jar is the only place the credential artifact lives. It is written
	// exclusively by Set-Cookie headers from the remote store.
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	cookieName := opts.CredentialCookie
	if cookieName == "" {
		cookieName = "token"
	}

	httpClient := resty.New().
		SetBaseURL(opts.BaseURL + opts.PathPrefix).
		SetTimeout(timeout).
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json").
		SetCookieJar(jar)

	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Client{
		http:       httpClient,
		jar:        jar,
		baseURL:    parsed,
		cookieName: cookieName,
		logger:     logger,
	}, nil
}

// Auth returns the identity service facade.
func (c *Client) Auth() ports.AuthAPI { return &authAPI{c: c} }

// Blog returns the post collection facade.
func (c *Client) Blog() ports.BlogAPI { return &blogAPI{c: c} }

// Users returns the admin account collection facade.
func (c *Client) Users() ports.UserAPI { return &userAPI{c: c} }

// HasCredential reports whether a credential artifact is present for the
// remote store. Presence only: an expired cookie still counts, which is
// exactly the signal the edge guard is specified to work from.
func (c *Client) HasCredential() bool {
	for _, ck := range c.jar.Cookies(c.baseURL) {
		if ck.Name == c.cookieName {
			return true
		}
	}
	return false
}

// errEnvelope covers both failure body shapes the remote store produces:
// {"message": "..."} and {"errors": [{"message": "..."}]}.
type errEnvelope struct {
	Message string `json:"message"`
	Errors  []struct {
		Message string `json:"message"`
	} `json:"errors"`
}

// messageEnvelope is the plain {"message": "..."} success shape.
type messageEnvelope struct {
	Message string `json:"message"`
}

// normalize reduces any call outcome to nil or a single *apperr.AppError.
// fallback is the human-readable message used when the failure carries no
// usable one of its own.
func (c *Client) normalize(resp *resty.Response, err error, fallback string) error {
	if err != nil {
		if isTimeout(err) {
			return apperr.Timeout("Request timed out", err)
		}
		// RawResponse set means a response arrived and the error happened
		// after transport, typically a body that failed to decode. That is
		// not a network failure.
		if resp != nil && resp.RawResponse != nil {
			return apperr.Unknown(fallback, resp.StatusCode())
		}
		return apperr.Network(fallback, err)
	}

	if resp == nil || !resp.IsError() {
		return nil
	}

	status := resp.StatusCode()
	msg := extractMessage(resp.Body())

	if status == http.StatusUnauthorized {
		if msg == "" {
			msg = "Session expired"
		}
		return apperr.Auth(msg, status)
	}
	if msg != "" {
		return apperr.Validation(msg, status)
	}
	return apperr.Unknown(fallback, status)
}

// extractMessage pulls a human-readable message out of a failure body.
// Precedence follows the remote store's contract: the first structured
// errors entry wins over the top-level message.
func extractMessage(body []byte) string {
	if len(body) == 0 {
		return ""
	}
	var env errEnvelope
	if err := json.Unmarshal(body, &env); err != nil {
		return ""
	}
	if len(env.Errors) > 0 && env.Errors[0].Message != "" {
		return env.Errors[0].Message
	}
	return env.Message
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}
