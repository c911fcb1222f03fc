package handler

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	catalogapp "github.com/hsf/backend/internal/application/catalog"
	"github.com/hsf/backend/internal/domain/catalog"
	"github.com/hsf/backend/internal/infrastructure/persistence"
	"github.com/hsf/backend/internal/interfaces/http/middleware"
)

// componentAPI wires the component handler against sqlite-backed repos
func newComponentAPI(t *testing.T) *gin.Engine {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&catalog.ComponentCategory{},
		&catalog.Component{},
		&catalog.SellPriceSetting{},
	))

	service := catalogapp.NewComponentService(
		persistence.NewGormComponentRepository(db),
		persistence.NewGormCategoryRepository(db),
		zap.NewNop(),
	)
	h := NewComponentHandler(service)

	middleware.SetupValidator()
	router := gin.New()
	api := router.Group("/api/v1")
	api.POST("/components", h.Create)
	api.GET("/components", h.List)
	api.GET("/components/:id", h.Get)
	api.PUT("/components/:id/prices", h.SetPrice)
	api.POST("/categories", h.CreateCategory)
	return router
}

func postJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)
	return rec
}

func putJSON(router *gin.Engine, path, body string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPut, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(rec, req)
	return rec
}

func getJSON(router *gin.Engine, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func createCategory(t *testing.T, router *gin.Engine, name string) string {
	t.Helper()
	rec := postJSON(router, "/api/v1/categories", fmt.Sprintf(`{"name": %q}`, name))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp.Data.ID
}

func TestComponentAPI_CreateAndGet(t *testing.T) {
	router := newComponentAPI(t)
	categoryID := createCategory(t, router, "Memory")

	rec := postJSON(router, "/api/v1/components", fmt.Sprintf(
		`{"name": "RAM DDR5 32GB", "product_code": "RAM-D5-32", "category_id": %q}`, categoryID))
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var created struct {
		Data struct {
			ID           string `json:"id"`
			CategoryName string `json:"category_name"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Equal(t, "Memory", created.Data.CategoryName)

	rec = getJSON(router, "/api/v1/components/"+created.Data.ID)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "RAM DDR5 32GB")
}

func TestComponentAPI_CreateValidation(t *testing.T) {
	router := newComponentAPI(t)

	rec := postJSON(router, "/api/v1/components", `{"product_code": "X-1"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestComponentAPI_UnknownCategory(t *testing.T) {
	router := newComponentAPI(t)

	rec := postJSON(router, "/api/v1/components",
		`{"name": "GPU", "product_code": "GPU-1", "category_id": "6ba7b810-9dad-11d1-80b4-00c04fd430c8"}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestComponentAPI_SetPrice(t *testing.T) {
	router := newComponentAPI(t)
	categoryID := createCategory(t, router, "Graphics")

	rec := postJSON(router, "/api/v1/components", fmt.Sprintf(
		`{"name": "GPU RTX 5080", "product_code": "GPU-5080", "category_id": %q}`, categoryID))
	require.Equal(t, http.StatusCreated, rec.Code)
	var created struct {
		Data struct {
			ID string `json:"id"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))

	rec = putJSON(router, "/api/v1/components/"+created.Data.ID+"/prices",
		`{"day_type": 1, "price_per_unit": "1199.90", "active": true}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Contains(t, rec.Body.String(), "1199.9")

	// a non-positive price must be rejected before reaching the service
	rec = putJSON(router, "/api/v1/components/"+created.Data.ID+"/prices",
		`{"day_type": 1, "price_per_unit": "0", "active": true}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestComponentAPI_ListPagination(t *testing.T) {
	router := newComponentAPI(t)
	categoryID := createCategory(t, router, "Storage")

	for i := 0; i < 3; i++ {
		rec := postJSON(router, "/api/v1/components", fmt.Sprintf(
			`{"name": "SSD %d", "product_code": "SSD-%d", "category_id": %q}`, i, i, categoryID))
		require.Equal(t, http.StatusCreated, rec.Code)
	}

	rec := getJSON(router, "/api/v1/components?page=1&page_size=2")
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data []json.RawMessage `json:"data"`
		Meta struct {
			Total      int64 `json:"total"`
			TotalPages int   `json:"total_pages"`
		} `json:"meta"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Len(t, resp.Data, 2)
	assert.Equal(t, int64(3), resp.Meta.Total)
	assert.Equal(t, 2, resp.Meta.TotalPages)
}
