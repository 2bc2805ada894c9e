package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/voyadesk/travel_desk_app/internal/apperrors"
	portssvc "github.com/voyadesk/travel_desk_app/internal/core/ports/services"
	"github.com/voyadesk/travel_desk_app/internal/dto"
	"github.com/voyadesk/travel_desk_app/internal/middleware"
)

// rateHandler handles HTTP requests related to DA and conveyance rates.
type rateHandler struct {
	rateService portssvc.RateSvcFacade
}

func newRateHandler(rs portssvc.RateSvcFacade) *rateHandler {
	return &rateHandler{rateService: rs}
}

// registerRateRoutes registers routes related to rate reference data.
func registerRateRoutes(rg *gin.RouterGroup, rateService portssvc.RateSvcFacade) {
	h := newRateHandler(rateService)

	rates := rg.Group("/rates")
	{
		rates.POST("/da", h.createDARate)
		rates.POST("/conveyance", h.createConveyanceRate)
		rates.GET("/conveyance", h.listConveyanceRates)
	}
}

// createDARate godoc
// @Summary Create a DA/incidental rate
// @Description Adds an effective-dated DA rate row for a grade and city category (admin operation)
// @Tags rates
// @Accept  json
// @Produce  json
// @Param   rate body dto.CreateDARateRequest true "Rate details"
// @Success 201 {object} domain.DAIncidentalRate
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create DA rate"
// @Security BearerAuth
// @Router /rates/da [post]
func (h *rateHandler) createDARate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDARateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateDARate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	rate, err := h.rateService.CreateDARate(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create DA rate", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create DA rate"})
		}
		return
	}

	logger.Info("DA rate created", slog.String("rate_id", rate.RateID))
	c.JSON(http.StatusCreated, rate)
}

// createConveyanceRate godoc
// @Summary Create a conveyance rate
// @Description Adds an effective-dated per-km rate row for a conveyance type (admin operation)
// @Tags rates
// @Accept  json
// @Produce  json
// @Param   rate body dto.CreateConveyanceRateRequest true "Rate details"
// @Success 201 {object} domain.ConveyanceRate
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create conveyance rate"
// @Security BearerAuth
// @Router /rates/conveyance [post]
func (h *rateHandler) createConveyanceRate(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateConveyanceRateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateConveyanceRate", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	rate, err := h.rateService.CreateConveyanceRate(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create conveyance rate", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create conveyance rate"})
		}
		return
	}

	logger.Info("Conveyance rate created", slog.String("rate_id", rate.RateID), slog.String("type", rate.ConveyanceType))
	c.JSON(http.StatusCreated, rate)
}

// listConveyanceRates godoc
// @Summary List conveyance rates
// @Description Retrieves all conveyance rate rows, newest effective window first
// @Tags rates
// @Produce  json
// @Success 200 {array} domain.ConveyanceRate
// @Failure 500 {object} map[string]string "Failed to list conveyance rates"
// @Security BearerAuth
// @Router /rates/conveyance [get]
func (h *rateHandler) listConveyanceRates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	rates, err := h.rateService.ListConveyanceRates(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list conveyance rates", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list conveyance rates"})
		return
	}

	c.JSON(http.StatusOK, rates)
}
