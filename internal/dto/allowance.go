package dto

import (
	"github.com/shopspring/decimal"
)

// DAQuoteRequest asks for the DA/incidental amounts a single trip segment
// would earn.
type DAQuoteRequest struct {
	EmployeeID    string           `json:"employeeID" binding:"required,uuid"`
	CityCategory  string           `json:"cityCategory" binding:"required,oneof=A B C"`
	DurationHours decimal.Decimal  `json:"durationHours" binding:"required"`
	DistanceKM    *decimal.Decimal `json:"distanceKM,omitempty"`
}

// ConveyanceQuoteRequest asks for the reimbursable cost of a conveyance
// claim.
type ConveyanceQuoteRequest struct {
	ConveyanceType string          `json:"conveyanceType" binding:"required"`
	DistanceKM     decimal.Decimal `json:"distanceKM" binding:"required"`
	HasReceipt     bool            `json:"hasReceipt"`
}

// StayAllowanceRequest asks for the friends/relatives lodging allowance.
type StayAllowanceRequest struct {
	EmployeeID   string `json:"employeeID" binding:"required,uuid"`
	CityCategory string `json:"cityCategory" binding:"required,oneof=A B C"`
}

// StayAllowanceResponse carries the per-night lodging allowance amount.
type StayAllowanceResponse struct {
	CityCategory string          `json:"cityCategory"`
	Amount       decimal.Decimal `json:"amount"`
}
