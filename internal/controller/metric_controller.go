package controller

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"metrics-consolidation-backend/internal/dto"
	"metrics-consolidation-backend/internal/model"
	"metrics-consolidation-backend/internal/service"
	"metrics-consolidation-backend/internal/validation"
)

type MetricController struct {
	ingestService service.MetricIngestService
	queryService  service.MetricQueryService
	validator     *validation.DateRangeValidator
}

func NewMetricController(
	ingestService service.MetricIngestService,
	queryService service.MetricQueryService,
	validator *validation.DateRangeValidator,
) *MetricController {
	return &MetricController{
		ingestService: ingestService,
		queryService:  queryService,
		validator:     validator,
	}
}

func RegisterMetricRoutes(router *gin.Engine, controller *MetricController) {
	router.GET("/", controller.IngestMetrics)
	router.POST("/konsolidasi", controller.GetMetrics)
	router.POST("/konsolidasi-service", controller.AggregateByService)
	router.POST("/konsolidasi-display", controller.AggregateByDisplay)
	router.POST("/konsolidasi-client", controller.AggregateByClient)
	router.POST("/konsolidasi-by-date", controller.GetMetricsByDate)
}

// IngestMetrics godoc
// @Summary      Ingest a metric batch from the upstream API
// @Description  Fetches the current metric snapshot from the upstream monitoring API, stamps it with the ingestion timestamp and persists it.
// @Tags         metrics
// @Produce      json
// @Success      200  {array}   model.MetricRecord "The stamped records that were persisted"
// @Failure      400  {object}  model.Response "Fetch or store failure"
// @Router       / [get]
func (c *MetricController) IngestMetrics(ctx *gin.Context) {
	records, err := c.ingestService.IngestOnce(ctx.Request.Context())
	if err != nil {
		log.Error().Err(err).Msg("Error ingesting metric batch")
		respondServiceError(ctx, err, "Failed to fetch metrics summary")
		return
	}
	ctx.JSON(http.StatusOK, records)
}

// GetMetrics godoc
// @Summary      List metrics, optionally filtered
// @Description  Returns stored metric records matching the equality conjunction of the supplied non-empty filters; all filters empty returns everything.
// @Tags         metrics
// @Accept       json
// @Produce      json
// @Param        filter  body      dto.MetricFilterRequest  false  "Equality filters"
// @Success      200     {array}   model.MetricRecord
// @Failure      400     {object}  model.Response
// @Router       /konsolidasi [post]
func (c *MetricController) GetMetrics(ctx *gin.Context) {
	var req dto.MetricFilterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, model.NewResponse("Invalid request body", nil))
		return
	}

	records, err := c.queryService.Find(ctx.Request.Context(), req)
	if err != nil {
		log.Error().Err(err).Msg("Error fetching metrics data")
		respondServiceError(ctx, err, "Failed to fetch metrics data")
		return
	}
	ctx.JSON(http.StatusOK, records)
}

// AggregateByService godoc
// @Summary      Sum metric counters grouped by SERVICENAME
// @Tags         metrics
// @Accept       json
// @Produce      json
// @Param        filter  body      dto.AggregateServiceRequest  false  "Optional pre-filter"
// @Success      200     {array}   dto.MetricAggregateRow
// @Failure      400     {object}  model.Response
// @Router       /konsolidasi-service [post]
func (c *MetricController) AggregateByService(ctx *gin.Context) {
	var req dto.AggregateServiceRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, model.NewResponse("Invalid request body", nil))
		return
	}
	c.aggregate(ctx, model.DimensionService, req.ServiceName, "Failed to aggregate by service name")
}

// AggregateByDisplay godoc
// @Summary      Sum metric counters grouped by DISPLAYNAME
// @Tags         metrics
// @Accept       json
// @Produce      json
// @Param        filter  body      dto.AggregateDisplayRequest  false  "Optional pre-filter"
// @Success      200     {array}   dto.MetricAggregateRow
// @Failure      400     {object}  model.Response
// @Router       /konsolidasi-display [post]
func (c *MetricController) AggregateByDisplay(ctx *gin.Context) {
	var req dto.AggregateDisplayRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, model.NewResponse("Invalid request body", nil))
		return
	}
	c.aggregate(ctx, model.DimensionDisplay, req.DisplayName, "Failed to aggregate by display name")
}

// AggregateByClient godoc
// @Summary      Sum metric counters grouped by CLIENTNAME
// @Tags         metrics
// @Accept       json
// @Produce      json
// @Param        filter  body      dto.AggregateClientRequest  false  "Optional pre-filter"
// @Success      200     {array}   dto.MetricAggregateRow
// @Failure      400     {object}  model.Response
// @Router       /konsolidasi-client [post]
func (c *MetricController) AggregateByClient(ctx *gin.Context) {
	var req dto.AggregateClientRequest
	if err := ctx.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		ctx.JSON(http.StatusBadRequest, model.NewResponse("Invalid request body", nil))
		return
	}
	c.aggregate(ctx, model.DimensionClient, req.ClientName, "Failed to aggregate by client name")
}

func (c *MetricController) aggregate(ctx *gin.Context, dimension model.Dimension, match string, failureMessage string) {
	rows, err := c.queryService.Aggregate(ctx.Request.Context(), dimension, match)
	if err != nil {
		log.Error().Err(err).Str("dimension", string(dimension)).Msg("Error aggregating metrics")
		respondServiceError(ctx, err, failureMessage)
		return
	}
	ctx.JSON(http.StatusOK, rows)
}

// GetMetricsByDate godoc
// @Summary      List metrics ingested within a date range
// @Description  Returns records whose createdAt falls within [startDate 00:00:00.000, endDate 23:59:59.999] in the reference timezone. Both dates must be past days.
// @Tags         metrics
// @Accept       json
// @Produce      json
// @Param        range  body      dto.DateRangeRequest  true  "Calendar-date bounds (YYYY-MM-DD)"
// @Success      200    {array}   model.MetricRecord
// @Failure      400    {object}  model.Response "Validation or store failure"
// @Router       /konsolidasi-by-date [post]
func (c *MetricController) GetMetricsByDate(ctx *gin.Context) {
	var req dto.DateRangeRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, model.NewResponse("Invalid request body", nil))
		return
	}

	dateRange, err := c.validator.Validate(req.StartDate, req.EndDate)
	if err != nil {
		respondServiceError(ctx, err, "Failed to fetch metrics data by date")
		return
	}

	records, err := c.queryService.FindByDateRange(ctx.Request.Context(), dateRange)
	if err != nil {
		log.Error().Err(err).Msg("Error fetching metrics data by date")
		respondServiceError(ctx, err, "Failed to fetch metrics data by date")
		return
	}
	ctx.JSON(http.StatusOK, records)
}
