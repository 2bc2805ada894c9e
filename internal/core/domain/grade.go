package domain

// Grade is an ordered employee rank (e.g. B-2A ... B-4B). It is a lookup key
// for entitlement and rate rows and is never mutated by the core.
type Grade struct {
	GradeID     string `json:"gradeID"`
	Name        string `json:"name"`
	Description string `json:"description"`
	SortOrder   int    `json:"sortOrder"`
	IsActive    bool   `json:"isActive"`
	AuditFields
}

// Employee carries the identity and grade needed for entitlement and
// allowance decisions. Grade may be nil when the HR record is incomplete;
// callers must treat that as an error, not a silent default.
type Employee struct {
	EmployeeID string `json:"employeeID"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	GradeID    string `json:"gradeID"`
	Grade      *Grade `json:"grade,omitempty"`
	IsActive   bool   `json:"isActive"`
	AuditFields
}
