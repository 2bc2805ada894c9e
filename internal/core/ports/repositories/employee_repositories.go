package repositories

import (
	"context"

	"github.com/voyadesk/travel_desk_app/internal/core/domain"
)

// EmployeeReader defines read operations over the employee/grade read model.
type EmployeeReader interface {
	// FindEmployeeByID loads an employee with the Grade field expanded
	// when a grade is assigned.
	FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error)

	FindGradeByID(ctx context.Context, gradeID string) (*domain.Grade, error)
	ListGrades(ctx context.Context) ([]domain.Grade, error)
}

// EmployeeWriter defines write operations for employees and grades.
type EmployeeWriter interface {
	SaveEmployee(ctx context.Context, employee domain.Employee) error
	SaveGrade(ctx context.Context, grade domain.Grade) error
}

// EmployeeRepositoryFacade combines all employee repository interfaces.
type EmployeeRepositoryFacade interface {
	EmployeeReader
	EmployeeWriter
}
