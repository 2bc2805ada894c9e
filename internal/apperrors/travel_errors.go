package apperrors

import "fmt"

// EntitlementDeniedError is returned when a grade is not entitled to a
// travel sub-option, either because no entitlement row exists or the
// matching row explicitly disallows it.
type EntitlementDeniedError struct {
	GradeName     string
	SubOptionName string
}

func (e *EntitlementDeniedError) Error() string {
	return fmt.Sprintf("grade %s is not entitled to %s", e.GradeName, e.SubOptionName)
}

// NewEntitlementDeniedError creates an EntitlementDeniedError for the given grade and sub-option.
func NewEntitlementDeniedError(gradeName, subOptionName string) *EntitlementDeniedError {
	return &EntitlementDeniedError{GradeName: gradeName, SubOptionName: subOptionName}
}

// TravelConflictError is returned when a proposed travel window overlaps an
// existing active travel application for the same employee.
type TravelConflictError struct {
	ApplicationID string
	Message       string
}

func (e *TravelConflictError) Error() string {
	return e.Message
}

// NewTravelConflictError creates a TravelConflictError referencing the conflicting application.
func NewTravelConflictError(applicationID, message string) *TravelConflictError {
	return &TravelConflictError{ApplicationID: applicationID, Message: message}
}
