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

// policyHandler handles HTTP requests related to travel policies.
type policyHandler struct {
	policyService portssvc.PolicySvcFacade
}

func newPolicyHandler(ps portssvc.PolicySvcFacade) *policyHandler {
	return &policyHandler{policyService: ps}
}

// registerPolicyRoutes registers routes related to policy reference data.
func registerPolicyRoutes(rg *gin.RouterGroup, policyService portssvc.PolicySvcFacade) {
	h := newPolicyHandler(policyService)

	policies := rg.Group("/policies")
	{
		policies.POST("", h.createPolicy)
		policies.GET("", h.listPolicies)
	}
}

// createPolicy godoc
// @Summary Create a travel policy
// @Description Adds an effective-dated policy row, optionally scoped to a travel mode or grade (admin operation)
// @Tags policies
// @Accept  json
// @Produce  json
// @Param   policy body dto.CreatePolicyRequest true "Policy details"
// @Success 201 {object} domain.TravelPolicy
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 500 {object} map[string]string "Failed to create policy"
// @Security BearerAuth
// @Router /policies [post]
func (h *policyHandler) createPolicy(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreatePolicyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePolicy", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	creatorUserID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("Creator user ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	policy, err := h.policyService.CreatePolicy(c.Request.Context(), req, creatorUserID)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		} else {
			logger.Error("Failed to create policy", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create policy"})
		}
		return
	}

	logger.Info("Policy created", slog.String("policy_id", policy.PolicyID), slog.String("policy_type", string(policy.PolicyType)))
	c.JSON(http.StatusCreated, policy)
}

// listPolicies godoc
// @Summary List travel policies
// @Description Retrieves all policy rows, newest effective window first
// @Tags policies
// @Produce  json
// @Success 200 {array} domain.TravelPolicy
// @Failure 500 {object} map[string]string "Failed to list policies"
// @Security BearerAuth
// @Router /policies [get]
func (h *policyHandler) listPolicies(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	policies, err := h.policyService.ListPolicies(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list policies", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to list policies"})
		return
	}

	c.JSON(http.StatusOK, policies)
}
