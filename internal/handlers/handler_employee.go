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

// employeeHandler handles HTTP requests related to employees and grades.
type employeeHandler struct {
	employeeService    portssvc.EmployeeSvcFacade
	entitlementService portssvc.EntitlementSvcFacade
	rateService        portssvc.RateSvcFacade
}

func newEmployeeHandler(es portssvc.EmployeeSvcFacade, ents portssvc.EntitlementSvcFacade, rs portssvc.RateSvcFacade) *employeeHandler {
	return &employeeHandler{
		employeeService:    es,
		entitlementService: ents,
		rateService:        rs,
	}
}

// registerEmployeeRoutes registers routes related to employees and grades.
func registerEmployeeRoutes(rg *gin.RouterGroup, employeeService portssvc.EmployeeSvcFacade, entitlementService portssvc.EntitlementSvcFacade, rateService portssvc.RateSvcFacade) {
	h := newEmployeeHandler(employeeService, entitlementService, rateService)

	grades := rg.Group("/grades")
	{
		grades.POST("", h.createGrade)
		grades.GET("", h.listGrades)
		grades.GET("/:gradeID/entitlements", h.listGradeEntitlements)
		grades.GET("/:gradeID/da-rates", h.listGradeDARates)
	}

	employees := rg.Group("/employees")
	{
		employees.POST("", h.createEmployee)
		employees.GET("/:employeeID", h.getEmployee)
	}
}

// createGrade godoc
// @Summary Create a new grade
// @Description Adds a new employee grade to the reference data (admin operation)
// @Tags grades
// @Accept  json
// @Produce  json
// @Param   grade body dto.CreateGradeRequest true "Grade details"
// @Success 201 {object} dto.GradeResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Grade already exists"
// @Failure 500 {object} map[string]string "Failed to create grade"
// @Security BearerAuth
// @Router /grades [post]
func (h *employeeHandler) createGrade(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateGradeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateGrade", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	grade, err := h.employeeService.CreateGrade(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create grade", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create grade"})
		}
		return
	}

	logger.Info("Grade created", slog.String("grade_id", grade.GradeID), slog.String("name", grade.Name))
	c.JSON(http.StatusCreated, dto.ToGradeResponse(grade))
}

// listGrades godoc
// @Summary List grades
// @Description Retrieves all active grades ordered by rank
// @Tags grades
// @Produce  json
// @Success 200 {array} dto.GradeResponse
// @Failure 500 {object} map[string]string "Failed to list grades"
// @Security BearerAuth
// @Router /grades [get]
func (h *employeeHandler) listGrades(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	grades, err := h.employeeService.ListGrades(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list grades", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list grades"})
		return
	}

	responses := make([]dto.GradeResponse, len(grades))
	for i := range grades {
		responses[i] = dto.ToGradeResponse(&grades[i])
	}
	c.JSON(http.StatusOK, responses)
}

// createEmployee godoc
// @Summary Create a new employee
// @Description Adds an employee record with a grade assignment (admin operation)
// @Tags employees
// @Accept  json
// @Produce  json
// @Param   employee body dto.CreateEmployeeRequest true "Employee details"
// @Success 201 {object} dto.EmployeeResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 409 {object} map[string]string "Employee already exists"
// @Failure 500 {object} map[string]string "Failed to create employee"
// @Security BearerAuth
// @Router /employees [post]
func (h *employeeHandler) createEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateEmployee", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	employee, err := h.employeeService.CreateEmployee(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrDuplicate) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		} else if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create employee", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create employee"})
		}
		return
	}

	logger.Info("Employee created", slog.String("employee_id", employee.EmployeeID))
	c.JSON(http.StatusCreated, dto.ToEmployeeResponse(employee))
}

// getEmployee godoc
// @Summary Get an employee by ID
// @Description Retrieves an employee with the assigned grade expanded
// @Tags employees
// @Produce  json
// @Param   employeeID path string true "Employee ID"
// @Success 200 {object} dto.EmployeeResponse
// @Failure 404 {object} map[string]string "Employee not found"
// @Failure 500 {object} map[string]string "Failed to retrieve employee"
// @Security BearerAuth
// @Router /employees/{employeeID} [get]
func (h *employeeHandler) getEmployee(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	employeeID := c.Param("employeeID")

	employee, err := h.employeeService.GetEmployee(c.Request.Context(), employeeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		} else {
			logger.Error("Failed to get employee", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve employee"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToEmployeeResponse(employee))
}

// listGradeEntitlements godoc
// @Summary List entitlements for a grade
// @Description Retrieves all entitlement rows configured for a grade
// @Tags grades
// @Produce  json
// @Param   gradeID path string true "Grade ID"
// @Success 200 {array} domain.GradeEntitlement
// @Failure 500 {object} map[string]string "Failed to list entitlements"
// @Security BearerAuth
// @Router /grades/{gradeID}/entitlements [get]
func (h *employeeHandler) listGradeEntitlements(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	gradeID := c.Param("gradeID")

	entitlements, err := h.entitlementService.ListEntitlementsForGrade(c.Request.Context(), gradeID)
	if err != nil {
		logger.Error("Failed to list entitlements for grade", slog.String("grade_id", gradeID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list entitlements"})
		return
	}

	c.JSON(http.StatusOK, entitlements)
}

// listGradeDARates godoc
// @Summary List DA rates for a grade
// @Description Retrieves all DA/incidental rate rows for a grade, newest effective window first
// @Tags grades
// @Produce  json
// @Param   gradeID path string true "Grade ID"
// @Success 200 {array} domain.DAIncidentalRate
// @Failure 500 {object} map[string]string "Failed to list DA rates"
// @Security BearerAuth
// @Router /grades/{gradeID}/da-rates [get]
func (h *employeeHandler) listGradeDARates(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	gradeID := c.Param("gradeID")

	rates, err := h.rateService.ListDARates(c.Request.Context(), gradeID)
	if err != nil {
		logger.Error("Failed to list DA rates for grade", slog.String("grade_id", gradeID), slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list DA rates"})
		return
	}

	c.JSON(http.StatusOK, rates)
}
