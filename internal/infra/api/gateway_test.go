package api

import (
	"context"
	"net/http"
	"testing"

	"storefront/internal/domain/gateway"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProductGateway_ListQueryEncoding(t *testing.T) {
	t.Parallel()

	e := echo.New()
	e.GET("/api/products", func(c echo.Context) error {
		assert.Equal(t, "bottle", c.QueryParam("search"))
		assert.Equal(t, "kitchen", c.QueryParam("category"))
		assert.Equal(t, "price", c.QueryParam("sort"))
		assert.Equal(t, "99.5", c.QueryParam("minPrice"))
		assert.Equal(t, "2", c.QueryParam("page"))
		assert.Equal(t, "12", c.QueryParam("limit"))
		// Zero-valued filters stay out of the query string.
		assert.False(t, c.QueryParams().Has("maxPrice"))

		return c.JSON(http.StatusOK, ok(map[string]any{
			"products":   []map[string]any{{"_id": "p1", "name": "Steel Bottle"}},
			"pagination": map[string]int{"page": 2, "limit": 12, "pages": 4, "total": 40},
		}))
	})

	products := NewProductGateway(newTestClient(t, e, nil))

	list, err := products.List(context.Background(), gateway.ProductQuery{
		Search:   "bottle",
		Category: "kitchen",
		Sort:     "price",
		MinPrice: 99.5,
		Page:     2,
		Limit:    12,
	})
	require.NoError(t, err)
	require.Len(t, list.Products, 1)
	assert.Equal(t, "Steel Bottle", list.Products[0].Name)
	assert.Equal(t, 40, list.Pagination.Total)
}

func TestAuthGateway_Login(t *testing.T) {
	t.Parallel()

	e := echo.New()
	e.POST("/api/auth/login", func(c echo.Context) error {
		var body map[string]string
		require.NoError(t, c.Bind(&body))
		assert.Equal(t, "jane@example.com", body["email"])

		if body["password"] != "secret1" {
			return c.JSON(http.StatusUnauthorized, fail("Invalid credentials"))
		}

		return c.JSON(http.StatusOK, ok(map[string]any{
			"user":  map[string]any{"_id": "u1", "email": body["email"]},
			"token": "fresh-jwt",
		}))
	})

	auth := NewAuthGateway(newTestClient(t, e, nil))

	result, err := auth.Login(context.Background(), "jane@example.com", "secret1")
	require.NoError(t, err)
	require.NotNil(t, result.User)
	assert.Equal(t, "u1", result.User.ID)
	assert.Equal(t, "fresh-jwt", result.Token)

	_, err = auth.Login(context.Background(), "jane@example.com", "wrong")
	require.Error(t, err)
}
