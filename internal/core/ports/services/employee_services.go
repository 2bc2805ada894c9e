package services

import (
	"context"

	"github.com/voyadesk/travel_desk_app/internal/core/domain"
	"github.com/voyadesk/travel_desk_app/internal/dto"
)

// EmployeeReaderSvc reads the employee/grade read model.
type EmployeeReaderSvc interface {
	// GetEmployee loads an employee with its grade expanded.
	GetEmployee(ctx context.Context, employeeID string) (*domain.Employee, error)
	ListGrades(ctx context.Context) ([]domain.Grade, error)
}

// EmployeeWriterSvc manages employee and grade records.
type EmployeeWriterSvc interface {
	CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest, creatorUserID string) (*domain.Employee, error)
	CreateGrade(ctx context.Context, req dto.CreateGradeRequest, creatorUserID string) (*domain.Grade, error)
}

// EmployeeSvcFacade combines all employee service interfaces.
type EmployeeSvcFacade interface {
	EmployeeReaderSvc
	EmployeeWriterSvc
}
