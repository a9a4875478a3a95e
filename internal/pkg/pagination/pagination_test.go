package pagination

import (
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetMeta(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		total      int64
		totalPages int
	}{
		{"exact division", 1, 10, 30, 3},
		{"remainder rounds up", 1, 10, 31, 4},
		{"single partial page", 1, 10, 3, 1},
		{"empty", 1, 10, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			meta := GetMeta(&Params{Page: tt.page, Limit: tt.limit}, tt.total)
			assert.Equal(t, tt.totalPages, meta.TotalPages)
			assert.Equal(t, tt.total, meta.Total)
			assert.Equal(t, tt.limit, meta.Limit)
		})
	}
}

func TestGetParams(t *testing.T) {
	app := fiber.New()
	var got *Params
	app.Get("/", func(c *fiber.Ctx) error {
		got = GetParams(c, 10)
		return c.SendStatus(fiber.StatusOK)
	})

	cases := []struct {
		query  string
		page   int
		limit  int
		offset int
	}{
		{"", 1, 10, 0},
		{"?page=3&limit=20", 3, 20, 40},
		{"?page=0&limit=-5", 1, 10, 0},
		{"?page=abc&limit=xyz", 1, 10, 0},
		{"?limit=9999", 1, MaxLimit, 0},
	}

	for _, tc := range cases {
		resp, err := app.Test(httptest.NewRequest("GET", "/"+tc.query, nil))
		require.NoError(t, err)
		require.Equal(t, fiber.StatusOK, resp.StatusCode)

		assert.Equal(t, tc.page, got.Page, "query %q", tc.query)
		assert.Equal(t, tc.limit, got.Limit, "query %q", tc.query)
		assert.Equal(t, tc.offset, got.Offset, "query %q", tc.query)
	}
}
