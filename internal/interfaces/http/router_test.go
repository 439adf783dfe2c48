package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Yoas-Hutapea/IDISys-sub000/internal/application/procurement/dto"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/infrastructure/config"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/infrastructure/migration"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/infrastructure/persistence/seeds"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/interfaces/http/handlers/testutil"
	sharedConfig "github.com/Yoas-Hutapea/IDISys-sub000/internal/shared/config"
	"github.com/Yoas-Hutapea/IDISys-sub000/internal/shared/logger"
)

func newTestRouter(t *testing.T) *Router {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, db.AutoMigrate(migration.AutoMigrateModels()...))

	catalog, err := seeds.DefaultCatalog()
	require.NoError(t, err)
	_, err = seeds.NewSeeder(db, logger.NewNop()).Seed(context.Background(), catalog)
	require.NoError(t, err)

	mr := miniredis.RunT(t)
	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)

	cfg := &config.Config{
		Server: sharedConfig.ServerConfig{
			Mode:                   gin.TestMode,
			WriteRateLimit:         100,
			WriteRateWindowSeconds: 60,
		},
		Redis: sharedConfig.RedisConfig{Host: mr.Host(), Port: port},
		Catalog: sharedConfig.CatalogConfig{
			CacheTTLMinutes:      30,
			NullMarkerTTLSeconds: 60,
		},
	}

	router := NewRouter(context.Background(), db, cfg, logger.NewNop())
	router.SetupRoutes(cfg)
	t.Cleanup(router.Shutdown)
	return router
}

func doRequest(t *testing.T, router *Router, method, path string, body any) (*httptest.ResponseRecorder, testutil.APIResponse) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.GetEngine().ServeHTTP(w, req)

	var resp testutil.APIResponse
	if w.Body.Len() > 0 {
		require.NoError(t, testutil.ParseResponse(w, &resp))
	}
	return w, resp
}

func TestRouter_Health(t *testing.T) {
	router := newTestRouter(t)

	w, _ := doRequest(t, router, http.MethodGet, "/health", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestRouter_ResolveByLabel(t *testing.T) {
	router := newTestRouter(t)

	w, resp := doRequest(t, router, http.MethodGet, "/api/v1/additional-sections/resolve?type=%20subscription%20", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var resolved dto.ResolvedSectionDTO
	require.NoError(t, json.Unmarshal(resp.Data, &resolved))
	assert.Equal(t, "subscription", resolved.Variant)
	require.NotNil(t, resolved.Type)
	assert.Equal(t, 5, resolved.Type.ID)
}

func TestRouter_BillingTypesOrdered(t *testing.T) {
	router := newTestRouter(t)

	w, resp := doRequest(t, router, http.MethodGet, "/api/v1/billing-types", nil)

	require.Equal(t, http.StatusOK, w.Code)
	var types []dto.BillingTypeDTO
	require.NoError(t, json.Unmarshal(resp.Data, &types))
	require.Len(t, types, 4)
	assert.Equal(t, "Monthly", types[0].Name)
	assert.Equal(t, 12, types[3].MonthsPerPeriod)
}

func TestRouter_SectionLifecycle(t *testing.T) {
	router := newTestRouter(t)
	const base = "/api/v1/purchase-requests/PR-2025-0001/additional-section"

	w, resp := doRequest(t, router, http.MethodGet, base, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, resp.Data)

	w, resp = doRequest(t, router, http.MethodPut, base, map[string]any{
		"type_id":         6,
		"sub_type_id":     2,
		"billing_type_id": 2,
		"start_period":    "2025-01-15",
		"period_count":    4,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	var section dto.AdditionalSectionDTO
	require.NoError(t, json.Unmarshal(resp.Data, &section))
	assert.Equal(t, "billing_type", section.Variant)
	assert.Equal(t, "draft", section.Status)
	require.NotNil(t, section.EndPeriod)
	assert.Equal(t, "2025-12-31", *section.EndPeriod)

	w, _ = doRequest(t, router, http.MethodPost, base+"/approve", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w, _ = doRequest(t, router, http.MethodPut, base, map[string]any{
		"type_id":         6,
		"sub_type_id":     2,
		"billing_type_id": 1,
		"start_period":    "2025-01-15",
		"period_count":    4,
	})
	assert.Equal(t, http.StatusConflict, w.Code)

	w, resp = doRequest(t, router, http.MethodPost, base+"/revise", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	require.NoError(t, json.Unmarshal(resp.Data, &section))
	assert.Equal(t, "revision", section.Status)
}

func TestRouter_EndPeriodUnknownBillingType(t *testing.T) {
	router := newTestRouter(t)

	w, resp := doRequest(t, router, http.MethodPost, "/api/v1/additional-sections/end-period", map[string]any{
		"start_period":    "2025-01-15",
		"period_count":    4,
		"billing_type_id": 99,
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.False(t, resp.Success)
	assert.Equal(t, w.Header().Get("X-Request-ID"), resp.RequestID)
}
