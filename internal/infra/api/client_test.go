package api

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"storefront/config"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/service"
	"storefront/internal/infra/persistence/memory"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestClient(t *testing.T, handler *echo.Echo, storage service.Storage) *Client {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	if storage == nil {
		storage = memory.NewStore()
	}

	return NewClient(Params{
		Config:  testConfig(server.URL, 5*time.Second),
		Storage: storage,
		Logger:  discardLogger(),
	})
}

func testConfig(baseURL string, timeout time.Duration) *config.Config {
	cfg := &config.Config{}
	cfg.API.BaseURL = baseURL
	cfg.API.Timeout = timeout
	cfg.API.UploadLimit = 1 << 20

	return cfg
}

func ok(data any) map[string]any {
	return map[string]any{"success": true, "data": data}
}

func fail(message string) map[string]any {
	return map[string]any{"success": false, "message": message}
}

func TestClient_EnvelopeDecoding(t *testing.T) {
	t.Parallel()

	e := echo.New()
	e.GET("/api/ping", func(c echo.Context) error {
		return c.JSON(http.StatusOK, ok(map[string]string{"value": "pong"}))
	})
	client := newTestClient(t, e, nil)

	var out struct {
		Value string `json:"value"`
	}
	require.NoError(t, client.get(context.Background(), "/api/ping", nil, &out, "Request failed"))
	assert.Equal(t, "pong", out.Value)
}

func TestClient_AttachesStoredBearerToken(t *testing.T) {
	t.Parallel()

	var authorization, requestID string
	e := echo.New()
	e.GET("/api/auth/me", func(c echo.Context) error {
		authorization = c.Request().Header.Get("Authorization")
		requestID = c.Request().Header.Get("X-Request-ID")

		return c.JSON(http.StatusOK, ok(map[string]any{"user": map[string]string{"_id": "u1"}}))
	})

	storage := memory.NewStore()
	require.NoError(t, storage.Save(service.StorageKeyToken, "stored-jwt"))
	client := newTestClient(t, e, storage)

	require.NoError(t, client.get(context.Background(), "/api/auth/me", nil, nil, "Failed"))
	assert.Equal(t, "Bearer stored-jwt", authorization)
	assert.NotEmpty(t, requestID)
}

func TestClient_NoTokenNoAuthorizationHeader(t *testing.T) {
	t.Parallel()

	var hasAuth bool
	e := echo.New()
	e.GET("/api/products", func(c echo.Context) error {
		_, hasAuth = c.Request().Header["Authorization"]

		return c.JSON(http.StatusOK, ok(nil))
	})
	client := newTestClient(t, e, nil)

	require.NoError(t, client.get(context.Background(), "/api/products", nil, nil, "Failed"))
	assert.False(t, hasAuth)
}

func TestClient_Rejections(t *testing.T) {
	t.Parallel()

	t.Run("backend message wins over the fallback", func(t *testing.T) {
		t.Parallel()

		e := echo.New()
		e.POST("/api/cart", func(c echo.Context) error {
			return c.JSON(http.StatusBadRequest, fail("Out of stock"))
		})
		client := newTestClient(t, e, nil)

		err := client.post(context.Background(), "/api/cart", map[string]any{}, nil, "Failed to add to cart")
		require.Error(t, err)
		assert.Equal(t, "Out of stock", domainerrors.UserMessage(err))
		assert.Equal(t, http.StatusBadRequest, domainerrors.StatusCode(err))
	})

	t.Run("missing message falls back to the operation default", func(t *testing.T) {
		t.Parallel()

		e := echo.New()
		e.POST("/api/cart", func(c echo.Context) error {
			return c.NoContent(http.StatusInternalServerError)
		})
		client := newTestClient(t, e, nil)

		err := client.post(context.Background(), "/api/cart", map[string]any{}, nil, "Failed to add to cart")
		require.Error(t, err)
		assert.Equal(t, "Failed to add to cart", domainerrors.UserMessage(err))
	})

	t.Run("2xx with success false is still a rejection", func(t *testing.T) {
		t.Parallel()

		e := echo.New()
		e.GET("/api/orders", func(c echo.Context) error {
			return c.JSON(http.StatusOK, fail("Please login to continue"))
		})
		client := newTestClient(t, e, nil)

		err := client.get(context.Background(), "/api/orders", nil, nil, "Failed to load orders")
		require.Error(t, err)
		assert.Equal(t, "Please login to continue", domainerrors.UserMessage(err))
	})
}

func TestClient_Timeout(t *testing.T) {
	t.Parallel()

	e := echo.New()
	e.GET("/api/slow", func(c echo.Context) error {
		time.Sleep(200 * time.Millisecond)

		return c.JSON(http.StatusOK, ok(nil))
	})

	server := httptest.NewServer(e)
	t.Cleanup(server.Close)

	client := NewClient(Params{
		Config:  testConfig(server.URL, 20*time.Millisecond),
		Storage: memory.NewStore(),
		Logger:  discardLogger(),
	})

	err := client.get(context.Background(), "/api/slow", nil, nil, "Failed")
	require.ErrorIs(t, err, domainerrors.ErrRequestTimeout)
}

func TestClient_Upload(t *testing.T) {
	t.Parallel()

	t.Run("oversized content is refused before any request", func(t *testing.T) {
		t.Parallel()

		e := echo.New() // no route: a request would 404
		client := newTestClient(t, e, nil)

		err := client.upload(context.Background(), "/api/users/profile-image", "image", "big.jpg",
			strings.NewReader("x"), 10<<20, nil)
		require.ErrorIs(t, err, domainerrors.ErrUploadTooLarge)
	})

	t.Run("status codes map onto fixed upload errors", func(t *testing.T) {
		t.Parallel()

		cases := []struct {
			name   string
			status int
			want   error
		}{
			{"payload too large", http.StatusRequestEntityTooLarge, domainerrors.ErrUploadTooLarge},
			{"unsupported type", http.StatusUnsupportedMediaType, domainerrors.ErrUploadUnsupportedType},
			{"server failure", http.StatusInternalServerError, domainerrors.ErrUploadServerError},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				t.Parallel()

				e := echo.New()
				e.POST("/api/users/profile-image", func(c echo.Context) error {
					return c.NoContent(tc.status)
				})
				client := newTestClient(t, e, nil)

				err := client.upload(context.Background(), "/api/users/profile-image", "image", "avatar.jpg",
					strings.NewReader("content"), 7, nil)
				require.ErrorIs(t, err, tc.want)
			})
		}
	})

	t.Run("successful upload decodes the envelope", func(t *testing.T) {
		t.Parallel()

		e := echo.New()
		e.POST("/api/users/profile-image", func(c echo.Context) error {
			file, err := c.FormFile("image")
			require.NoError(t, err)
			assert.Equal(t, "avatar.jpg", file.Filename)

			return c.JSON(http.StatusOK, ok(map[string]string{"profileImage": "/img/u1.jpg"}))
		})
		client := newTestClient(t, e, nil)

		var out struct {
			ProfileImage string `json:"profileImage"`
		}
		err := client.upload(context.Background(), "/api/users/profile-image", "image", "avatar.jpg",
			strings.NewReader("content"), 7, &out)
		require.NoError(t, err)
		assert.Equal(t, "/img/u1.jpg", out.ProfileImage)
	})
}
