package domain

// Severity classifies a policy validation issue. Warnings flag conditions a
// travel desk may override (e.g. short booking lead time); errors block the
// action.
type Severity string

const (
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

// Issue is a single structured policy violation.
type Issue struct {
	Severity Severity `json:"severity"`
	Code     string   `json:"code"`
	Message  string   `json:"message"`
}

// Issue codes emitted by the policy validators.
const (
	IssueAdvanceBooking   = "advance_booking"
	IssueDistanceLimit    = "distance_limit"
	IssueDistanceMissing  = "distance_missing"
	IssueAirbagsMissing   = "airbags_missing"
	IssueAirbagsTooFew    = "airbags_too_few"
	IssueAirbagsInvalid   = "airbags_invalid"
	IssueFitnessCertless  = "fitness_certificate_missing"
	IssueDisposalDuration = "car_disposal_duration"
)

// HasErrors reports whether any issue in the list is severity error.
func HasErrors(issues []Issue) bool {
	for _, i := range issues {
		if i.Severity == SeverityError {
			return true
		}
	}
	return false
}

// Warning builds a warning-severity issue.
func Warning(code, message string) Issue {
	return Issue{Severity: SeverityWarning, Code: code, Message: message}
}

// Error builds an error-severity issue.
func Error(code, message string) Issue {
	return Issue{Severity: SeverityError, Code: code, Message: message}
}
