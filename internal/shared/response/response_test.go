package response_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go-leave/internal/shared/response"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestNewPaginationMeta(t *testing.T) {
	meta := response.NewPaginationMeta(21, 2, 10)

	assert.Equal(t, int64(21), meta.Total)
	assert.Equal(t, 3, meta.TotalPages)
	assert.Equal(t, 2, meta.Page)
	assert.Equal(t, 10, meta.PageSize)
}

func TestPaginate(t *testing.T) {
	gin.SetMode(gin.TestMode)
	items := []int{1, 2, 3, 4, 5}

	t.Run("second page", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/?page=2&page_size=2", nil)

		got, meta := response.Paginate(c, items)

		assert.Equal(t, []int{3, 4}, got)
		assert.Equal(t, 3, meta.TotalPages)
	})

	t.Run("page past the end is empty", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/?page=9&page_size=2", nil)

		got, _ := response.Paginate(c, items)

		assert.Empty(t, got)
	})

	t.Run("invalid params fall back to defaults", func(t *testing.T) {
		c, _ := gin.CreateTestContext(httptest.NewRecorder())
		c.Request = httptest.NewRequest(http.MethodGet, "/?page=abc&page_size=-1", nil)

		got, meta := response.Paginate(c, items)

		assert.Equal(t, items, got)
		assert.Equal(t, 1, meta.Page)
		assert.Equal(t, 10, meta.PageSize)
	})
}
