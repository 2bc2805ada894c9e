package models

// Grade represents an employee rank row.
type Grade struct {
	GradeID     string `db:"grade_id"`
	Name        string `db:"name"`
	Description string `db:"description"`
	SortOrder   int    `db:"sort_order"`
	IsActive    bool   `db:"is_active"`
	AuditFields
}

// Employee represents an employee row.
// GradeID is a foreign key into grades; the joined grade is loaded separately.
type Employee struct {
	EmployeeID string `db:"employee_id"`
	Name       string `db:"name"`
	Email      string `db:"email"`
	GradeID    string `db:"grade_id"`
	IsActive   bool   `db:"is_active"`
	AuditFields
}
