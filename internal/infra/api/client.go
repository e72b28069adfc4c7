// Package api implements the backend gateways over the platform's REST
// envelope. A single Client owns the HTTP plumbing: bearer-token
// attachment, request identifiers, envelope decoding and the mapping of
// failures to user-facing messages. There is deliberately no retry or
// backpressure policy; the timeout configured on the HTTP client is the
// only resilience measure, matching the consumed contract.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"mime/multipart"
	"net"
	"net/http"
	"net/url"
	"strings"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/util"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const headerXRequestID = "X-Request-ID"

// envelope is the uniform response body of every backend endpoint.
type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// Client issues authenticated requests against the backend REST API.
type Client struct {
	baseURL     string
	uploadLimit int64
	httpClient  *http.Client
	storage     service.Storage
	logger      *slog.Logger
}

// Params defines the required parameters
type Params struct {
	fx.In

	Config  *config.Config
	Storage service.Storage
	Logger  *slog.Logger
}

// NewClient creates the backend API client. The bearer token is read from
// durable storage on every request so a login performed by one store is
// immediately visible to all others.
func NewClient(params Params) *Client {
	return &Client{
		baseURL:     strings.TrimRight(params.Config.API.BaseURL, "/"),
		uploadLimit: params.Config.API.UploadLimit,
		httpClient:  &http.Client{Timeout: params.Config.API.Timeout},
		storage:     params.Storage,
		logger:      params.Logger,
	}
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any, fallback string) error {
	return c.do(ctx, http.MethodGet, path, query, nil, out, fallback)
}

func (c *Client) post(ctx context.Context, path string, body, out any, fallback string) error {
	return c.do(ctx, http.MethodPost, path, nil, body, out, fallback)
}

func (c *Client) put(ctx context.Context, path string, body, out any, fallback string) error {
	return c.do(ctx, http.MethodPut, path, nil, body, out, fallback)
}

func (c *Client) delete(ctx context.Context, path string, out any, fallback string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil, out, fallback)
}

// do sends one request and decodes the response envelope into out. On a
// non-2xx response the returned error carries the backend's message when
// one was provided, otherwise the per-operation fallback.
func (c *Client) do(ctx context.Context, method, path string, query url.Values, body, out any, fallback string) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return errors.Wrap(err, "failed to encode request body")
		}
		reqBody = bytes.NewReader(encoded)
	}

	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, method, reqURL, reqBody)
	if err != nil {
		return errors.Wrap(err, "failed to create request")
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	return c.send(req, out, fallback)
}

// send finishes header setup, executes the request and decodes the envelope.
func (c *Client) send(req *http.Request, out any, fallback string) error {
	c.attachAuth(req)
	req.Header.Set(headerXRequestID, uuid.New().String())
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if isTimeout(err) {
			c.logger.Warn("Request timed out",
				slog.String("method", req.Method),
				slog.String("path", req.URL.Path))

			return errors.Wrap(domainerrors.ErrRequestTimeout, "request timed out")
		}

		return errors.Wrap(domainerrors.NewAPIError(0, fallback, err.Error()), "request failed")
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrap(domainerrors.NewAPIError(0, fallback, err.Error()), "failed to read response")
	}

	var env envelope
	if decodeErr := json.Unmarshal(raw, &env); decodeErr != nil && resp.StatusCode < 300 {
		return errors.Wrap(decodeErr, "failed to decode response envelope")
	}

	if resp.StatusCode >= 300 || !env.Success {
		message := env.Message
		if message == "" {
			message = fallback
		}
		c.logger.Debug("Backend rejected request",
			slog.String("method", req.Method),
			slog.String("path", req.URL.Path),
			slog.Int("status", resp.StatusCode),
			slog.String("message", message))

		return errors.WithStack(domainerrors.NewAPIError(resp.StatusCode, message, string(raw)))
	}

	if out != nil && len(env.Data) > 0 {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return errors.Wrap(err, "failed to decode response data")
		}
	}

	return nil
}

// upload sends a multipart file upload and maps the HTTP-status failures
// this path is known to produce onto fixed user-facing messages.
func (c *Client) upload(ctx context.Context, path, field, filename string, content io.Reader, size int64, out any) error {
	if size > c.uploadLimit {
		return errors.WithStack(domainerrors.ErrUploadTooLarge.
			WithDetails("maximum size is " + util.FormatBytes(c.uploadLimit)))
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile(field, filename)
	if err != nil {
		return errors.Wrap(err, "failed to create multipart field")
	}
	if _, err := io.Copy(part, content); err != nil {
		return errors.Wrap(err, "failed to buffer upload content")
	}
	if err := writer.Close(); err != nil {
		return errors.Wrap(err, "failed to finalize multipart body")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &buf)
	if err != nil {
		return errors.Wrap(err, "failed to create upload request")
	}
	req.Header.Set("Content-Type", writer.FormDataContentType())

	err = c.send(req, out, domainerrors.ErrUploadServerError.Message())
	if err == nil {
		return nil
	}

	switch domainerrors.StatusCode(err) {
	case http.StatusRequestEntityTooLarge:
		return errors.WithStack(domainerrors.ErrUploadTooLarge)
	case http.StatusUnsupportedMediaType:
		return errors.WithStack(domainerrors.ErrUploadUnsupportedType)
	case http.StatusInternalServerError:
		return errors.WithStack(domainerrors.ErrUploadServerError)
	default:
		return err
	}
}

// attachAuth adds the bearer token when a session token is stored.
func (c *Client) attachAuth(req *http.Request) {
	token, ok, err := c.storage.Load(service.StorageKeyToken)
	if err != nil {
		c.logger.Warn("Failed to load session token", slog.Any("error", err))

		return
	}
	if ok && token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}

	var netErr net.Error

	return errors.As(err, &netErr) && netErr.Timeout()
}
