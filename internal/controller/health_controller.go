package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/elastic/go-elasticsearch/v8"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"metrics-consolidation-backend/internal/dto"
	"metrics-consolidation-backend/internal/model"
	"metrics-consolidation-backend/internal/util"
)

type HealthController struct {
	pool     *pgxpool.Pool
	esClient *elasticsearch.Client
}

func NewHealthController(pool *pgxpool.Pool, esClient *elasticsearch.Client) *HealthController {
	return &HealthController{
		pool:     pool,
		esClient: esClient,
	}
}

func RegisterHealthRoutes(router *gin.Engine, controller *HealthController) {
	router.GET("/health", controller.GetHealth)
}

// GetHealth godoc
// @Summary      Health check
// @Description  Reports service liveness; detail=true additionally pings both stores.
// @Tags         health
// @Produce      json
// @Param        detail  query     string  false  "Include per-store checks"  Enums(true, false)
// @Success      200     {object}  dto.HealthResponse
// @Failure      400     {object}  model.Response "Invalid query parameters"
// @Router       /health [get]
func (c *HealthController) GetHealth(ctx *gin.Context) {
	var query dto.HealthQuery
	if err := ctx.ShouldBindQuery(&query); err != nil {
		ctx.JSON(http.StatusBadRequest, model.NewResponse("Invalid query parameters", nil))
		return
	}

	resp := dto.HealthResponse{
		Status: "ok",
		Time:   util.NowJakarta().Format(time.RFC3339),
	}

	if query.Detail == "true" {
		checkCtx, cancel := context.WithTimeout(ctx.Request.Context(), 2*time.Second)
		defer cancel()

		resp.Components = map[string]string{
			"postgres":      "ok",
			"elasticsearch": "ok",
		}
		if err := c.pool.Ping(checkCtx); err != nil {
			resp.Components["postgres"] = "unavailable"
		}
		if res, err := c.esClient.Ping(c.esClient.Ping.WithContext(checkCtx)); err != nil {
			resp.Components["elasticsearch"] = "unavailable"
		} else {
			if res.IsError() {
				resp.Components["elasticsearch"] = "unavailable"
			}
			res.Body.Close()
		}
	}

	ctx.JSON(http.StatusOK, resp)
}
