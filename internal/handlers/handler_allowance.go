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

// allowanceHandler handles HTTP requests for DA, stay and conveyance quotes.
type allowanceHandler struct {
	allowanceService  portssvc.AllowanceSvcFacade
	conveyanceService portssvc.ConveyanceSvcFacade
	employeeService   portssvc.EmployeeReaderSvc
}

func newAllowanceHandler(as portssvc.AllowanceSvcFacade, cs portssvc.ConveyanceSvcFacade, es portssvc.EmployeeReaderSvc) *allowanceHandler {
	return &allowanceHandler{
		allowanceService:  as,
		conveyanceService: cs,
		employeeService:   es,
	}
}

// registerAllowanceRoutes registers the allowance quote routes.
func registerAllowanceRoutes(rg *gin.RouterGroup, allowanceService portssvc.AllowanceSvcFacade, conveyanceService portssvc.ConveyanceSvcFacade, employeeService portssvc.EmployeeReaderSvc) {
	h := newAllowanceHandler(allowanceService, conveyanceService, employeeService)

	allowances := rg.Group("/allowances")
	{
		allowances.POST("/da/quote", h.quoteDA)
		allowances.POST("/conveyance/quote", h.quoteConveyance)
		allowances.POST("/stay/quote", h.quoteStayAllowance)
	}
}

// resolveEmployee loads the employee or writes the error response, returning
// nil when the request is already answered.
func (h *allowanceHandler) resolveEmployee(c *gin.Context, employeeID string) *domain.Employee {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employee, err := h.employeeService.GetEmployee(c.Request.Context(), employeeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		} else {
			logger.Error("Failed to resolve employee", slog.String("employee_id", employeeID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve employee"})
		}
		return nil
	}
	return employee
}

// quoteDA godoc
// @Summary Quote DA/incidental for a trip segment
// @Description Computes the daily allowance and incidental amounts for a segment of given duration and distance. Ineligibility comes back as an eligible=false result, not an error.
// @Tags allowances
// @Accept  json
// @Produce  json
// @Param   quote body dto.DAQuoteRequest true "Quote parameters"
// @Success 200 {object} domain.DAResult
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Employee not found"
// @Failure 500 {object} map[string]string "Failed to compute DA"
// @Security BearerAuth
// @Router /allowances/da/quote [post]
func (h *allowanceHandler) quoteDA(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.DAQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for DAQuote", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	employee := h.resolveEmployee(c, req.EmployeeID)
	if employee == nil {
		return
	}

	category, err := domain.ParseCityCategory(req.CityCategory)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.allowanceService.CalculateDA(c.Request.Context(), employee, category, req.DurationHours, req.DistanceKM)
	if err != nil {
		logger.Error("Failed to compute DA quote", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute DA"})
		return
	}

	c.JSON(http.StatusOK, result)
}

// quoteConveyance godoc
// @Summary Quote a conveyance claim
// @Description Computes the reimbursable cost for a distance at the effective per-km rate, clamped to the claim cap
// @Tags allowances
// @Accept  json
// @Produce  json
// @Param   quote body dto.ConveyanceQuoteRequest true "Quote parameters"
// @Success 200 {object} domain.ConveyanceResult
// @Failure 400 {object} map[string]string "Invalid input or receipt/distance rule violated"
// @Failure 404 {object} map[string]string "No rate configured for conveyance type"
// @Failure 500 {object} map[string]string "Failed to compute conveyance cost"
// @Security BearerAuth
// @Router /allowances/conveyance/quote [post]
func (h *allowanceHandler) quoteConveyance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.ConveyanceQuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for ConveyanceQuote", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	result, err := h.conveyanceService.CalculateConveyance(c.Request.Context(), req.ConveyanceType, req.DistanceKM, req.HasReceipt)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to compute conveyance quote", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute conveyance cost"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// quoteStayAllowance godoc
// @Summary Quote the stay-with-friends allowance
// @Description Returns the per-night allowance paid when lodging with friends or relatives instead of booked accommodation
// @Tags allowances
// @Accept  json
// @Produce  json
// @Param   quote body dto.StayAllowanceRequest true "Quote parameters"
// @Success 200 {object} dto.StayAllowanceResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "Employee or rate not found"
// @Failure 500 {object} map[string]string "Failed to compute stay allowance"
// @Security BearerAuth
// @Router /allowances/stay/quote [post]
func (h *allowanceHandler) quoteStayAllowance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.StayAllowanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for StayAllowanceQuote", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	employee := h.resolveEmployee(c, req.EmployeeID)
	if employee == nil {
		return
	}

	category, err := domain.ParseCityCategory(req.CityCategory)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	amount, err := h.allowanceService.StayAllowance(c.Request.Context(), employee, category)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) || errors.Is(err, apperrors.ErrMissingGrade) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to compute stay allowance", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute stay allowance"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.StayAllowanceResponse{
		CityCategory: string(category),
		Amount:       amount,
	})
}
