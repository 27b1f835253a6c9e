// Package proxy forwards requests to the remote treasury backend. This
// layer owns no backend logic: it copies the method, body and
// Authorization header out, and the status, body and content type back.
package proxy

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"
	"time"

	apperrors "hawamoni/internal/errors"
)

// DefaultTimeout bounds every outbound call; after it the call is
// aborted and reported as a failure rather than hanging.
const DefaultTimeout = 5 * time.Minute

// Backend endpoints behind the bespoke auth proxies.
const (
	loginPath    = "moni/auth/login"
	registerPath = "moni/create"
	refreshPath  = "moni/token/refresh"
)

// Result is the backend response copied back to the caller.
type Result struct {
	Status      int
	Body        []byte
	ContentType string
}

// OK reports whether the backend answered with a 2xx status.
func (r *Result) OK() bool {
	return r.Status >= 200 && r.Status < 300
}

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http: &http.Client{
			Timeout: timeout,
			// Redirects are surfaced to the caller, never followed.
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		},
	}
}

// Forward relays one request to the backend verbatim.
func (c *Client) Forward(ctx context.Context, method, path, rawQuery string, body []byte, authorization string) (*Result, error) {
	target := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if rawQuery != "" {
		target += "?" + rawQuery
	}

	var reader io.Reader
	if len(body) > 0 && (method == http.MethodPost || method == http.MethodPut) {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, apperrors.ErrBackendUnreachable.WithCause(err)
	}
	req.Header.Set("Content-Type", "application/json")
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, apperrors.ErrBackendUnreachable.WithCause(err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.ErrBackendUnreachable.WithCause(err)
	}
	return &Result{
		Status:      resp.StatusCode,
		Body:        respBody,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}

// Login exchanges credentials with the backend. A redirect response
// means the account is federated; it is reported as ErrLoginRedirected
// so the handler can translate it into the fixed 401 message.
func (c *Client) Login(ctx context.Context, body []byte) (*Result, error) {
	res, err := c.Forward(ctx, http.MethodPost, loginPath, "", body, "")
	if err != nil {
		return nil, err
	}
	if res.Status >= 300 && res.Status < 400 {
		return nil, apperrors.ErrLoginRedirected
	}
	return res, nil
}

// Register forwards a registration payload unchanged.
func (c *Client) Register(ctx context.Context, body []byte) (*Result, error) {
	return c.Forward(ctx, http.MethodPost, registerPath, "", body, "")
}

// Refresh exchanges a refresh token for a new token pair.
func (c *Client) Refresh(ctx context.Context, body []byte) (*Result, error) {
	return c.Forward(ctx, http.MethodPost, refreshPath, "", body, "")
}
