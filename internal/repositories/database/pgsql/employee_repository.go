package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/voyadesk/travel_desk_app/internal/apperrors"
	"github.com/voyadesk/travel_desk_app/internal/core/domain"
	portsrepo "github.com/voyadesk/travel_desk_app/internal/core/ports/repositories"
	"github.com/voyadesk/travel_desk_app/internal/models"
	"github.com/voyadesk/travel_desk_app/internal/utils/mapping"
)

type PgxEmployeeRepository struct {
	pool *pgxpool.Pool
}

// newPgxEmployeeRepository creates a new repository for employee and grade data.
func newPgxEmployeeRepository(pool *pgxpool.Pool) portsrepo.EmployeeRepositoryFacade {
	return &PgxEmployeeRepository{pool: pool}
}

var _ portsrepo.EmployeeRepositoryFacade = (*PgxEmployeeRepository)(nil)

// FindEmployeeByID retrieves an employee with the assigned grade joined in.
func (r *PgxEmployeeRepository) FindEmployeeByID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	query := `
		SELECT e.employee_id, e.name, e.email, e.grade_id, e.is_active, e.created_at, e.created_by, e.last_updated_at, e.last_updated_by,
		       g.grade_id, g.name, g.description, g.sort_order, g.is_active, g.created_at, g.created_by, g.last_updated_at, g.last_updated_by
		FROM employees e
		LEFT JOIN grades g ON g.grade_id = e.grade_id
		WHERE e.employee_id = $1;
	`
	var modelEmp models.Employee
	var gradeID, gradeName, gradeDesc *string
	var gradeSortOrder *int
	var gradeActive *bool
	var modelGrade models.Grade

	err := r.pool.QueryRow(ctx, query, employeeID).Scan(
		&modelEmp.EmployeeID,
		&modelEmp.Name,
		&modelEmp.Email,
		&modelEmp.GradeID,
		&modelEmp.IsActive,
		&modelEmp.CreatedAt,
		&modelEmp.CreatedBy,
		&modelEmp.LastUpdatedAt,
		&modelEmp.LastUpdatedBy,
		&gradeID,
		&gradeName,
		&gradeDesc,
		&gradeSortOrder,
		&gradeActive,
		&modelGrade.CreatedAt,
		&modelGrade.CreatedBy,
		&modelGrade.LastUpdatedAt,
		&modelGrade.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find employee by ID %s: %w", employeeID, err)
	}

	domainEmp := mapping.ToDomainEmployee(modelEmp)
	if gradeID != nil {
		modelGrade.GradeID = *gradeID
		modelGrade.Name = *gradeName
		if gradeDesc != nil {
			modelGrade.Description = *gradeDesc
		}
		if gradeSortOrder != nil {
			modelGrade.SortOrder = *gradeSortOrder
		}
		if gradeActive != nil {
			modelGrade.IsActive = *gradeActive
		}
		grade := mapping.ToDomainGrade(modelGrade)
		domainEmp.Grade = &grade
	}
	return &domainEmp, nil
}

// FindGradeByID retrieves a grade by its ID.
func (r *PgxEmployeeRepository) FindGradeByID(ctx context.Context, gradeID string) (*domain.Grade, error) {
	query := `
		SELECT grade_id, name, description, sort_order, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM grades
		WHERE grade_id = $1;
	`
	var modelGrade models.Grade
	err := r.pool.QueryRow(ctx, query, gradeID).Scan(
		&modelGrade.GradeID,
		&modelGrade.Name,
		&modelGrade.Description,
		&modelGrade.SortOrder,
		&modelGrade.IsActive,
		&modelGrade.CreatedAt,
		&modelGrade.CreatedBy,
		&modelGrade.LastUpdatedAt,
		&modelGrade.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find grade by ID %s: %w", gradeID, err)
	}
	domainGrade := mapping.ToDomainGrade(modelGrade)
	return &domainGrade, nil
}

// ListGrades retrieves all active grades ordered by rank.
func (r *PgxEmployeeRepository) ListGrades(ctx context.Context) ([]domain.Grade, error) {
	query := `
		SELECT grade_id, name, description, sort_order, is_active, created_at, created_by, last_updated_at, last_updated_by
		FROM grades
		WHERE is_active = TRUE
		ORDER BY sort_order;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query grades: %w", err)
	}
	defer rows.Close()

	grades := []models.Grade{}
	for rows.Next() {
		var m models.Grade
		err := rows.Scan(
			&m.GradeID,
			&m.Name,
			&m.Description,
			&m.SortOrder,
			&m.IsActive,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan grade row: %w", err)
		}
		grades = append(grades, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating grade rows: %w", err)
	}

	return mapping.ToDomainGradeSlice(grades), nil
}

// SaveEmployee inserts a new employee.
func (r *PgxEmployeeRepository) SaveEmployee(ctx context.Context, employee domain.Employee) error {
	m := mapping.ToModelEmployee(employee)
	query := `
		INSERT INTO employees (employee_id, name, email, grade_id, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.pool.Exec(ctx, query,
		m.EmployeeID,
		m.Name,
		m.Email,
		m.GradeID,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: employee with ID %s already exists", apperrors.ErrDuplicate, m.EmployeeID)
		}
		return fmt.Errorf("failed to save employee %s: %w", m.EmployeeID, err)
	}
	return nil
}

// SaveGrade inserts a new grade.
func (r *PgxEmployeeRepository) SaveGrade(ctx context.Context, grade domain.Grade) error {
	m := mapping.ToModelGrade(grade)
	query := `
		INSERT INTO grades (grade_id, name, description, sort_order, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9);
	`
	_, err := r.pool.Exec(ctx, query,
		m.GradeID,
		m.Name,
		m.Description,
		m.SortOrder,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: grade %s already exists", apperrors.ErrDuplicate, m.Name)
		}
		return fmt.Errorf("failed to save grade %s: %w", m.GradeID, err)
	}
	return nil
}
