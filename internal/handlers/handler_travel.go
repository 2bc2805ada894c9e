package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/voyadesk/travel_desk_app/internal/apperrors"
	"github.com/voyadesk/travel_desk_app/internal/core/domain"
	portssvc "github.com/voyadesk/travel_desk_app/internal/core/ports/services"
	coresvc "github.com/voyadesk/travel_desk_app/internal/core/services"
	"github.com/voyadesk/travel_desk_app/internal/dto"
	"github.com/voyadesk/travel_desk_app/internal/middleware"
)

// travelHandler handles HTTP requests for travel applications and bookings.
type travelHandler struct {
	travelService    portssvc.TravelSvcFacade
	allowanceService portssvc.AllowanceSvcFacade
}

func newTravelHandler(ts portssvc.TravelSvcFacade, as portssvc.AllowanceSvcFacade) *travelHandler {
	return &travelHandler{
		travelService:    ts,
		allowanceService: as,
	}
}

// registerTravelRoutes registers routes related to travel applications.
func registerTravelRoutes(rg *gin.RouterGroup, travelService portssvc.TravelSvcFacade, allowanceService portssvc.AllowanceSvcFacade) {
	h := newTravelHandler(travelService, allowanceService)

	applications := rg.Group("/travel-applications")
	{
		applications.POST("", h.createApplication)
		applications.GET("", h.listApplications)
		applications.GET("/:applicationID", h.getApplication)
		applications.POST("/:applicationID/submit", h.submitApplication)
		applications.GET("/:applicationID/da", h.getApplicationDA)
		applications.POST("/:applicationID/bookings", h.addBooking)
	}

	bookings := rg.Group("/bookings")
	{
		bookings.PATCH("/:bookingID/status", h.updateBookingStatus)
	}
}

// createApplication godoc
// @Summary Create a travel application
// @Description Creates a draft travel application with its trip segments after policy validation. Non-blocking policy findings come back as warnings.
// @Tags travel-applications
// @Accept  json
// @Produce  json
// @Param   application body dto.CreateTravelApplicationRequest true "Application details"
// @Success 201 {object} dto.TravelApplicationResponse
// @Failure 400 {object} map[string]string "Invalid input or trip duration exceeded"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Employee not found"
// @Failure 409 {object} map[string]string "Travel window overlaps an existing application"
// @Failure 500 {object} map[string]string "Failed to create application"
// @Security BearerAuth
// @Router /travel-applications [post]
func (h *travelHandler) createApplication(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateTravelApplicationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateApplication", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	app, warnings, err := h.travelService.CreateApplication(c.Request.Context(), req, creatorUserID)
	if err != nil {
		var conflict *apperrors.TravelConflictError
		switch {
		case errors.As(err, &conflict):
			c.JSON(http.StatusConflict, gin.H{"error": conflict.Message, "conflictingApplicationID": conflict.ApplicationID})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Employee not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to create travel application", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create application"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToTravelApplicationResponse(app, warnings))
}

// listApplications godoc
// @Summary List travel applications for an employee
// @Description Returns a cursor-paginated page of the employee's applications, most recent trip first
// @Tags travel-applications
// @Produce  json
// @Param   employeeID query string true "Employee ID"
// @Param   limit query int false "Page size (default 20, max 100)"
// @Param   pageToken query string false "Cursor from the previous page"
// @Success 200 {object} dto.ListTravelApplicationsResponse
// @Failure 400 {object} map[string]string "Missing employeeID or bad page token"
// @Failure 500 {object} map[string]string "Failed to list applications"
// @Security BearerAuth
// @Router /travel-applications [get]
func (h *travelHandler) listApplications(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	employeeID := c.Query("employeeID")
	if employeeID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "employeeID query parameter is required"})
		return
	}
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	pageToken := c.Query("pageToken")

	apps, nextToken, err := h.travelService.ListApplications(c.Request.Context(), employeeID, limit, pageToken)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to list travel applications", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list applications"})
		}
		return
	}

	responses := make([]dto.TravelApplicationResponse, len(apps))
	for i := range apps {
		responses[i] = dto.ToTravelApplicationResponse(&apps[i], nil)
	}
	c.JSON(http.StatusOK, dto.ListTravelApplicationsResponse{
		Applications: responses,
		NextToken:    nextToken,
	})
}

// getApplication godoc
// @Summary Get a travel application
// @Description Retrieves an application with its segments and bookings
// @Tags travel-applications
// @Produce  json
// @Param   applicationID path string true "Application ID"
// @Success 200 {object} dto.TravelApplicationResponse
// @Failure 404 {object} map[string]string "Application not found"
// @Failure 500 {object} map[string]string "Failed to retrieve application"
// @Security BearerAuth
// @Router /travel-applications/{applicationID} [get]
func (h *travelHandler) getApplication(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	applicationID := c.Param("applicationID")

	app, err := h.travelService.GetApplication(c.Request.Context(), applicationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		} else {
			logger.Error("Failed to get travel application", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve application"})
		}
		return
	}

	c.JSON(http.StatusOK, dto.ToTravelApplicationResponse(app, nil))
}

// submitApplication godoc
// @Summary Submit a draft application
// @Description Moves a draft application into the approval flow
// @Tags travel-applications
// @Produce  json
// @Param   applicationID path string true "Application ID"
// @Success 204 "Submitted"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Application not found"
// @Failure 422 {object} map[string]string "Application is not a draft"
// @Failure 500 {object} map[string]string "Failed to submit application"
// @Security BearerAuth
// @Router /travel-applications/{applicationID}/submit [post]
func (h *travelHandler) submitApplication(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	applicationID := c.Param("applicationID")

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	err := h.travelService.SubmitApplication(c.Request.Context(), applicationID, userID)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		case errors.Is(err, coresvc.ErrNotDraft):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to submit travel application", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit application"})
		}
		return
	}

	logger.Info("Travel application submitted", slog.String("application_id", applicationID))
	c.Status(http.StatusNoContent)
}

// getApplicationDA godoc
// @Summary Quote DA for a whole application
// @Description Aggregates DA/incidental amounts across every segment of an application; per-segment failures appear in the breakdown
// @Tags travel-applications
// @Produce  json
// @Param   applicationID path string true "Application ID"
// @Success 200 {object} domain.TravelDAResult
// @Failure 404 {object} map[string]string "Application not found"
// @Failure 500 {object} map[string]string "Failed to compute DA"
// @Security BearerAuth
// @Router /travel-applications/{applicationID}/da [get]
func (h *travelHandler) getApplicationDA(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	applicationID := c.Param("applicationID")

	result, err := h.allowanceService.CalculateDAForTravel(c.Request.Context(), applicationID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		} else {
			logger.Error("Failed to compute DA for application", slog.String("application_id", applicationID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute DA"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// addBooking godoc
// @Summary Add a booking to an application
// @Description Creates a booking under one of the application's segments after entitlement and per-mode policy checks. Non-blocking findings come back as warnings.
// @Tags travel-applications
// @Accept  json
// @Produce  json
// @Param   applicationID path string true "Application ID"
// @Param   booking body dto.CreateBookingRequest true "Booking details"
// @Success 201 {object} map[string]any "Booking plus any warnings"
// @Failure 400 {object} map[string]string "Invalid input, unknown sub-option, segment not in application, or blocking safety issue"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Grade not entitled to the sub-option"
// @Failure 404 {object} map[string]string "Application not found"
// @Failure 500 {object} map[string]string "Failed to create booking"
// @Security BearerAuth
// @Router /travel-applications/{applicationID}/bookings [post]
func (h *travelHandler) addBooking(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	applicationID := c.Param("applicationID")

	var req dto.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for AddBooking", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	booking, warnings, err := h.travelService.AddBooking(c.Request.Context(), applicationID, req, creatorUserID)
	if err != nil {
		var denied *apperrors.EntitlementDeniedError
		switch {
		case errors.As(err, &denied):
			c.JSON(http.StatusForbidden, gin.H{"error": denied.Error()})
		case errors.Is(err, coresvc.ErrSegmentNotInApplication):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Application not found"})
		case errors.Is(err, apperrors.ErrValidation):
			// Blocking safety issues ride along so the client can render them.
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error(), "issues": dto.ToIssueResponses(warnings)})
		case errors.Is(err, apperrors.ErrMissingGrade):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"error": err.Error()})
		default:
			logger.Error("Failed to add booking", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create booking"})
		}
		return
	}

	logger.Info("Booking created",
		slog.String("booking_id", booking.BookingID),
		slog.String("application_id", applicationID))
	c.JSON(http.StatusCreated, gin.H{
		"booking":  dto.ToBookingResponse(booking),
		"warnings": dto.ToIssueResponses(warnings),
	})
}

// updateBookingStatus godoc
// @Summary Update a booking's status
// @Description Moves a booking to a new status and refreshes the parent application's derived status
// @Tags bookings
// @Accept  json
// @Produce  json
// @Param   bookingID path string true "Booking ID"
// @Param   status body dto.UpdateBookingStatusRequest true "New status"
// @Success 204 "Updated"
// @Failure 400 {object} map[string]string "Invalid status"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "Booking not found"
// @Failure 500 {object} map[string]string "Failed to update booking status"
// @Security BearerAuth
// @Router /bookings/{bookingID}/status [patch]
func (h *travelHandler) updateBookingStatus(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	bookingID := c.Param("bookingID")

	var req dto.UpdateBookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for UpdateBookingStatus", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	err := h.travelService.UpdateBookingStatus(c.Request.Context(), bookingID, domain.BookingStatus(req.Status), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Booking not found"})
		} else {
			logger.Error("Failed to update booking status", slog.String("booking_id", bookingID), slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update booking status"})
		}
		return
	}

	logger.Info("Booking status updated", slog.String("booking_id", bookingID), slog.String("status", req.Status))
	c.Status(http.StatusNoContent)
}
