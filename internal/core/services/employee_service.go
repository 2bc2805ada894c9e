package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/voyadesk/travel_desk_app/internal/apperrors"
	"github.com/voyadesk/travel_desk_app/internal/core/domain"
	portsrepo "github.com/voyadesk/travel_desk_app/internal/core/ports/repositories"
	portssvc "github.com/voyadesk/travel_desk_app/internal/core/ports/services"
	"github.com/voyadesk/travel_desk_app/internal/dto"
)

// employeeService manages the employee/grade read model used by the
// entitlement and allowance engines.
type employeeService struct {
	employeeRepo portsrepo.EmployeeRepositoryFacade
}

// NewEmployeeService creates a new employee service.
func NewEmployeeService(employeeRepo portsrepo.EmployeeRepositoryFacade) portssvc.EmployeeSvcFacade {
	return &employeeService{employeeRepo: employeeRepo}
}

var _ portssvc.EmployeeSvcFacade = (*employeeService)(nil)

// GetEmployee implements portssvc.EmployeeReaderSvc.
func (s *employeeService) GetEmployee(ctx context.Context, employeeID string) (*domain.Employee, error) {
	employee, err := s.employeeRepo.FindEmployeeByID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("failed to get employee: %w", err)
	}
	return employee, nil
}

// ListGrades implements portssvc.EmployeeReaderSvc.
func (s *employeeService) ListGrades(ctx context.Context) ([]domain.Grade, error) {
	grades, err := s.employeeRepo.ListGrades(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list grades: %w", err)
	}
	return grades, nil
}

// CreateEmployee implements portssvc.EmployeeWriterSvc.
func (s *employeeService) CreateEmployee(ctx context.Context, req dto.CreateEmployeeRequest, creatorUserID string) (*domain.Employee, error) {
	grade, err := s.employeeRepo.FindGradeByID(ctx, req.GradeID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: grade %s not found", apperrors.ErrValidation, req.GradeID)
		}
		return nil, fmt.Errorf("failed to validate grade: %w", err)
	}

	now := time.Now().UTC()
	employee := domain.Employee{
		EmployeeID: uuid.NewString(),
		Name:       req.Name,
		Email:      req.Email,
		GradeID:    grade.GradeID,
		Grade:      grade,
		IsActive:   true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.employeeRepo.SaveEmployee(ctx, employee); err != nil {
		return nil, fmt.Errorf("failed to create employee: %w", err)
	}
	return &employee, nil
}

// CreateGrade implements portssvc.EmployeeWriterSvc.
func (s *employeeService) CreateGrade(ctx context.Context, req dto.CreateGradeRequest, creatorUserID string) (*domain.Grade, error) {
	now := time.Now().UTC()
	grade := domain.Grade{
		GradeID:     uuid.NewString(),
		Name:        req.Name,
		Description: req.Description,
		SortOrder:   req.SortOrder,
		IsActive:    true,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.employeeRepo.SaveGrade(ctx, grade); err != nil {
		return nil, fmt.Errorf("failed to create grade: %w", err)
	}
	return &grade, nil
}
