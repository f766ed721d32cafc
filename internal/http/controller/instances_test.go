package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"multi_accessor/internal/domain"
	"multi_accessor/internal/http/dto"
	"multi_accessor/internal/http/resp"
	"multi_accessor/internal/metrics"
	"multi_accessor/internal/model"
	"multi_accessor/internal/service/accessor"
	"multi_accessor/internal/store/memory"
)

func setupRouter(t *testing.T, instances []*model.Instance[string]) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := memory.New[string](zap.NewNop())
	svc := accessor.NewService[string](store, metrics.New(), zap.NewNop())
	require.NoError(t, svc.Seed(context.Background(), instances))
	handler := NewHandler(svc, zap.NewNop())

	router := gin.New()
	router.GET("/instances/:id", handler.GetInstance)
	return router
}

func performRequest(router *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestGetInstanceController(t *testing.T) {
	t.Run("found", func(t *testing.T) {
		router := setupRouter(t, domain.DefaultInstances())

		rec := performRequest(router, "/instances/3")
		require.Equal(t, http.StatusOK, rec.Code)
		var body dto.InstanceResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Equal(t, domain.ID3, body.ID)
		require.Equal(t, "Goodbye from ID3", body.Data)
	})

	t.Run("first match wins", func(t *testing.T) {
		router := setupRouter(t, []*model.Instance[string]{
			{ID: 7, Data: "first"},
			{ID: 7, Data: "second"},
		})

		rec := performRequest(router, "/instances/7")
		require.Equal(t, http.StatusOK, rec.Code)
		var body dto.InstanceResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Equal(t, "first", body.Data)
	})

	t.Run("not found", func(t *testing.T) {
		router := setupRouter(t, domain.DefaultInstances())

		rec := performRequest(router, "/instances/99")
		require.Equal(t, http.StatusNotFound, rec.Code)
		var body dto.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Equal(t, resp.CodeNotFound, body.Code)
		require.Equal(t, "No instance found for id=99", body.Message)
	})

	t.Run("bad id", func(t *testing.T) {
		router := setupRouter(t, domain.DefaultInstances())

		rec := performRequest(router, "/instances/abc")
		require.Equal(t, http.StatusBadRequest, rec.Code)
		var body dto.ErrorResponse
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		require.Equal(t, resp.CodeBadRequest, body.Code)
	})
}
