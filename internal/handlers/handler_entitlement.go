package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/voyadesk/travel_desk_app/internal/apperrors"
	"github.com/voyadesk/travel_desk_app/internal/core/domain"
	portssvc "github.com/voyadesk/travel_desk_app/internal/core/ports/services"
	"github.com/voyadesk/travel_desk_app/internal/dto"
	"github.com/voyadesk/travel_desk_app/internal/middleware"
)

// entitlementHandler handles HTTP requests related to grade entitlements.
type entitlementHandler struct {
	entitlementService portssvc.EntitlementSvcFacade
	employeeService    portssvc.EmployeeReaderSvc
}

func newEntitlementHandler(es portssvc.EntitlementSvcFacade, emp portssvc.EmployeeReaderSvc) *entitlementHandler {
	return &entitlementHandler{
		entitlementService: es,
		employeeService:    emp,
	}
}

// RegisterEntitlementRoutes registers routes related to entitlements.
func RegisterEntitlementRoutes(rg *gin.RouterGroup, entitlementService portssvc.EntitlementSvcFacade, employeeService portssvc.EmployeeReaderSvc) {
	h := newEntitlementHandler(entitlementService, employeeService)

	entitlements := rg.Group("/entitlements")
	{
		entitlements.POST("", h.createEntitlement)
		entitlements.POST("/check", h.checkEntitlement)
	}
}

// createEntitlement godoc
// @Summary Create a grade entitlement
// @Description Adds an allow/deny entitlement row for a grade and travel sub-option (admin operation)
// @Tags entitlements
// @Accept  json
// @Produce  json
// @Param   entitlement body dto.CreateEntitlementRequest true "Entitlement details"
// @Success 201 {object} domain.GradeEntitlement
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Entitlement already configured"
// @Failure 500 {object} map[string]string "Failed to create entitlement"
// @Security BearerAuth
// @Router /entitlements [post]
func (h *entitlementHandler) createEntitlement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateEntitlementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateEntitlement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	entitlement, err := h.entitlementService.CreateEntitlement(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create entitlement", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create entitlement"})
		}
		return
	}

	logger.Info("Entitlement created", slog.String("entitlement_id", entitlement.EntitlementID))
	c.JSON(http.StatusCreated, entitlement)
}

// checkEntitlement godoc
// @Summary Check an entitlement
// @Description Reports whether an employee's grade may use a travel sub-option, optionally for a destination cost tier
// @Tags entitlements
// @Accept  json
// @Produce  json
// @Param   check body dto.CheckEntitlementRequest true "Check parameters"
// @Success 200 {object} dto.EntitlementCheckResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Employee not found"
// @Failure 422 {object} map[string]string "Employee has no grade assigned"
// @Failure 500 {object} map[string]string "Failed to check entitlement"
// @Security BearerAuth
// @Router /entitlements/check [post]
func (h *entitlementHandler) checkEntitlement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CheckEntitlementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CheckEntitlement", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	employee, err := h.employeeService.GetEmployee(c.Request.Context(), req.EmployeeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		} else {
			logger.Error("Failed to resolve employee for entitlement check", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check entitlement"})
		}
		return
	}

	var category *domain.CityCategory
	if req.CityCategory != nil {
		parsed, err := domain.ParseCityCategory(*req.CityCategory)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		category = &parsed
	}

	err = h.entitlementService.CheckEntitlement(c.Request.Context(), employee, req.SubOptionID, category)
	if err != nil {
		var denied *apperrors.EntitlementDeniedError
		switch {
		case errors.As(err, &denied):
			c.JSON(http.StatusOK, dto.EntitlementCheckResponse{Allowed: false, Reason: denied.Error()})
		case errors.Is(err, apperrors.ErrMissingGrade):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": "Employee has no grade assigned"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to check entitlement", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to check entitlement"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.EntitlementCheckResponse{Allowed: true})
}
