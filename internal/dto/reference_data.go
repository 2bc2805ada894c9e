package dto

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/voyadesk/travel_desk_app/internal/core/domain"
)

// CreateGradeRequest defines the payload for creating a grade.
type CreateGradeRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	SortOrder   int    `json:"sortOrder"`
}

// CreateEmployeeRequest defines the payload for creating an employee record.
type CreateEmployeeRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required,email"`
	GradeID string `json:"gradeID" binding:"required,uuid"`
}

// CreateEntitlementRequest defines the payload for creating a grade
// entitlement row. CityCategory is omitted for modes where the cost tier is
// irrelevant.
type CreateEntitlementRequest struct {
	GradeID      string          `json:"gradeID" binding:"required,uuid"`
	SubOptionID  string          `json:"subOptionID" binding:"required,uuid"`
	CityCategory *string         `json:"cityCategory,omitempty" binding:"omitempty,oneof=A B C"`
	IsAllowed    bool            `json:"isAllowed"`
	MaxAmount    decimal.Decimal `json:"maxAmount"`
}

// CheckEntitlementRequest asks whether an employee's grade may use a travel
// sub-option, optionally for a specific destination tier.
type CheckEntitlementRequest struct {
	EmployeeID   string  `json:"employeeID" binding:"required,uuid"`
	SubOptionID  string  `json:"subOptionID" binding:"required,uuid"`
	CityCategory *string `json:"cityCategory,omitempty" binding:"omitempty,oneof=A B C"`
}

// EntitlementCheckResponse is the outcome of an entitlement check.
type EntitlementCheckResponse struct {
	Allowed bool   `json:"allowed"`
	Reason  string `json:"reason,omitempty"`
}

// CreateDARateRequest defines the payload for creating a DA/incidental rate
// row. Rows are versioned by effective date rather than edited in place.
type CreateDARateRequest struct {
	GradeID                string          `json:"gradeID" binding:"required,uuid"`
	CityCategory           string          `json:"cityCategory" binding:"required,oneof=A B C"`
	FullDayDA              decimal.Decimal `json:"fullDayDA" binding:"required"`
	HalfDayDA              decimal.Decimal `json:"halfDayDA" binding:"required"`
	FullDayIncidental      decimal.Decimal `json:"fullDayIncidental"`
	HalfDayIncidental      decimal.Decimal `json:"halfDayIncidental"`
	StayAllowanceCategoryA decimal.Decimal `json:"stayAllowanceCategoryA"`
	StayAllowanceCategoryB decimal.Decimal `json:"stayAllowanceCategoryB"`
	EffectiveFrom          time.Time       `json:"effectiveFrom" binding:"required"`
	EffectiveTo            *time.Time      `json:"effectiveTo,omitempty"`
}

// CreateConveyanceRateRequest defines the payload for creating a conveyance
// rate row.
type CreateConveyanceRateRequest struct {
	ConveyanceType    string          `json:"conveyanceType" binding:"required"`
	RatePerKM         decimal.Decimal `json:"ratePerKM" binding:"required"`
	RequiresReceipt   bool            `json:"requiresReceipt"`
	MaxClaimAmount    decimal.Decimal `json:"maxClaimAmount"`
	MaxDistancePerDay decimal.Decimal `json:"maxDistancePerDay"`
	EffectiveFrom     time.Time       `json:"effectiveFrom" binding:"required"`
	EffectiveTo       *time.Time      `json:"effectiveTo,omitempty"`
}

// CreatePolicyRequest defines the payload for creating a travel policy row.
type CreatePolicyRequest struct {
	PolicyType    string         `json:"policyType" binding:"required"`
	TravelMode    *string        `json:"travelMode,omitempty"`
	GradeID       *string        `json:"gradeID,omitempty" binding:"omitempty,uuid"`
	Parameters    map[string]any `json:"parameters" binding:"required"`
	EffectiveFrom time.Time      `json:"effectiveFrom" binding:"required"`
	EffectiveTo   *time.Time     `json:"effectiveTo,omitempty"`
}

// GradeResponse is the API shape of a grade.
type GradeResponse struct {
	GradeID     string `json:"gradeID"`
	Name        string `json:"name"`
	Description string `json:"description"`
	SortOrder   int    `json:"sortOrder"`
	IsActive    bool   `json:"isActive"`
}

// ToGradeResponse converts a domain.Grade to its API shape.
func ToGradeResponse(g *domain.Grade) GradeResponse {
	return GradeResponse{
		GradeID:     g.GradeID,
		Name:        g.Name,
		Description: g.Description,
		SortOrder:   g.SortOrder,
		IsActive:    g.IsActive,
	}
}

// EmployeeResponse is the API shape of an employee.
type EmployeeResponse struct {
	EmployeeID string         `json:"employeeID"`
	Name       string         `json:"name"`
	Email      string         `json:"email"`
	GradeID    string         `json:"gradeID"`
	Grade      *GradeResponse `json:"grade,omitempty"`
	IsActive   bool           `json:"isActive"`
}

// ToEmployeeResponse converts a domain.Employee to its API shape.
func ToEmployeeResponse(e *domain.Employee) EmployeeResponse {
	resp := EmployeeResponse{
		EmployeeID: e.EmployeeID,
		Name:       e.Name,
		Email:      e.Email,
		GradeID:    e.GradeID,
		IsActive:   e.IsActive,
	}
	if e.Grade != nil {
		g := ToGradeResponse(e.Grade)
		resp.Grade = &g
	}
	return resp
}
