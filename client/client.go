// Package client is the portal-facing SDK for the delivery API. Every
// call returns a result.Result instead of a raw error so portal code
// deals with exactly one failure shape.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/INFINITECH-OJT2025/ecomdelivery-go/pkg/result"
	"github.com/INFINITECH-OJT2025/ecomdelivery-go/session"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

type Client struct {
	baseURL string
	portal  session.Portal
	http    *http.Client
	session session.Store
	limiter *rate.Limiter
	log     *zap.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the default client (used by tests to spy on
// network traffic).
func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) { c.http = h }
}

// WithRateLimit caps outgoing requests per second. The default is
// generous; it exists so a runaway poll loop cannot hammer the API.
func WithRateLimit(rps float64, burst int) Option {
	return func(c *Client) { c.limiter = rate.NewLimiter(rate.Limit(rps), burst) }
}

func New(baseURL string, portal session.Portal, store session.Store, log *zap.Logger, opts ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		portal:  portal,
		http:    &http.Client{Timeout: 15 * time.Second},
		session: store,
		limiter: rate.NewLimiter(rate.Limit(20), 40),
		log:     log,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) Portal() session.Portal { return c.portal }

func (c *Client) token() string {
	return c.session.Token(c.portal)
}

// doJSON runs an authenticated JSON request. A missing token fails
// before any network traffic happens.
func doJSON[T any](ctx context.Context, c *Client, method, path string, payload any) result.Result[T] {
	token := c.token()
	if token == "" {
		return result.Err[T](result.KindUnauthorized, "Unauthorized")
	}

	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return result.Err[T](result.KindTransport, err.Error())
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return result.Err[T](result.KindTransport, err.Error())
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	return send[T](c, req, token)
}

type uploadFile struct {
	Field    string
	Filename string
	Path     string
}

// doMultipart posts form fields plus file attachments (deposit slips,
// refund proof shots).
func doMultipart[T any](ctx context.Context, c *Client, path string, fields map[string]string, files []uploadFile) result.Result[T] {
	token := c.token()
	if token == "" {
		return result.Err[T](result.KindUnauthorized, "Unauthorized")
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		if err := w.WriteField(k, v); err != nil {
			return result.Err[T](result.KindTransport, err.Error())
		}
	}
	for _, f := range files {
		src, err := os.Open(f.Path)
		if err != nil {
			return result.Err[T](result.KindValidation, "cannot read file: "+err.Error())
		}
		name := f.Filename
		if name == "" {
			name = filepath.Base(f.Path)
		}
		part, err := w.CreateFormFile(f.Field, name)
		if err == nil {
			_, err = io.Copy(part, src)
		}
		src.Close()
		if err != nil {
			return result.Err[T](result.KindTransport, err.Error())
		}
	}
	if err := w.Close(); err != nil {
		return result.Err[T](result.KindTransport, err.Error())
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return result.Err[T](result.KindTransport, err.Error())
	}
	req.Header.Set("Content-Type", w.FormDataContentType())
	return send[T](c, req, token)
}

func send[T any](c *Client, req *http.Request, token string) result.Result[T] {
	if err := c.limiter.Wait(req.Context()); err != nil {
		return result.Err[T](result.KindTransport, err.Error())
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		c.log.Warn("request failed",
			zap.String("method", req.Method),
			zap.String("path", req.URL.Path),
			zap.Error(err))
		return result.Err[T](result.KindTransport, err.Error())
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(res.Body, 4<<20))
	if err != nil {
		return result.Err[T](result.KindTransport, err.Error())
	}
	out := result.Decode[T](res.StatusCode, raw)
	if !out.OK {
		c.log.Debug("api error",
			zap.String("path", req.URL.Path),
			zap.Int("status", res.StatusCode),
			zap.String("kind", string(out.Kind)),
			zap.String("message", out.Message))
	}
	return out
}
