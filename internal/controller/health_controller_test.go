package controller

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"metrics-consolidation-backend/internal/dto"
)

func setupHealthRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	RegisterHealthRoutes(router, NewHealthController(nil, nil))
	return router
}

func TestHealthController_GetHealth(t *testing.T) {
	router := setupHealthRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp dto.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.NotEmpty(t, resp.Time)
	assert.Nil(t, resp.Components)
}

func TestHealthController_GetHealth_InvalidQuery(t *testing.T) {
	router := setupHealthRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health?detail=banana", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "Invalid query parameters")
}
