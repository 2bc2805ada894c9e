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

type PgxEntitlementRepository struct {
	pool *pgxpool.Pool
}

// newPgxEntitlementRepository creates a new repository for grade entitlement data.
func newPgxEntitlementRepository(pool *pgxpool.Pool) portsrepo.EntitlementRepositoryFacade {
	return &PgxEntitlementRepository{pool: pool}
}

var _ portsrepo.EntitlementRepositoryFacade = (*PgxEntitlementRepository)(nil)

const entitlementColumns = `entitlement_id, grade_id, sub_option_id, city_category, is_allowed, max_amount, created_at, created_by, last_updated_at, last_updated_by`

func scanEntitlement(row pgx.Row) (models.GradeEntitlement, error) {
	var m models.GradeEntitlement
	err := row.Scan(
		&m.EntitlementID,
		&m.GradeID,
		&m.SubOptionID,
		&m.CityCategory,
		&m.IsAllowed,
		&m.MaxAmount,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindEntitlement returns the authoritative entitlement row for a grade and
// sub-option. A row matching the destination category wins over a
// city-agnostic row (NULLS LAST on city_category handles the preference).
func (r *PgxEntitlementRepository) FindEntitlement(ctx context.Context, gradeID, subOptionID string, category *domain.CityCategory) (*domain.GradeEntitlement, error) {
	var row pgx.Row
	if category != nil {
		query := `
			SELECT ` + entitlementColumns + `
			FROM grade_entitlements
			WHERE grade_id = $1 AND sub_option_id = $2
			  AND (city_category = $3 OR city_category IS NULL)
			ORDER BY city_category NULLS LAST
			LIMIT 1;
		`
		row = r.pool.QueryRow(ctx, query, gradeID, subOptionID, string(*category))
	} else {
		query := `
			SELECT ` + entitlementColumns + `
			FROM grade_entitlements
			WHERE grade_id = $1 AND sub_option_id = $2 AND city_category IS NULL
			LIMIT 1;
		`
		row = r.pool.QueryRow(ctx, query, gradeID, subOptionID)
	}

	m, err := scanEntitlement(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find entitlement for grade %s sub-option %s: %w", gradeID, subOptionID, err)
	}
	d := mapping.ToDomainGradeEntitlement(m)
	return &d, nil
}

// FindSubOptionByID resolves a sub-option together with its mode name.
func (r *PgxEntitlementRepository) FindSubOptionByID(ctx context.Context, subOptionID string) (*domain.TravelSubOption, error) {
	query := `
		SELECT so.sub_option_id, so.mode_id, tm.name, so.name, so.is_active, so.created_at, so.created_by, so.last_updated_at, so.last_updated_by
		FROM travel_sub_options so
		JOIN travel_modes tm ON tm.mode_id = so.mode_id
		WHERE so.sub_option_id = $1;
	`
	var m models.TravelSubOption
	err := r.pool.QueryRow(ctx, query, subOptionID).Scan(
		&m.SubOptionID,
		&m.ModeID,
		&m.ModeName,
		&m.Name,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find sub-option by ID %s: %w", subOptionID, err)
	}
	d := mapping.ToDomainTravelSubOption(m)
	return &d, nil
}

// ListEntitlementsForGrade retrieves all entitlement rows for a grade.
func (r *PgxEntitlementRepository) ListEntitlementsForGrade(ctx context.Context, gradeID string) ([]domain.GradeEntitlement, error) {
	query := `
		SELECT ` + entitlementColumns + `
		FROM grade_entitlements
		WHERE grade_id = $1
		ORDER BY sub_option_id, city_category NULLS LAST;
	`
	rows, err := r.pool.Query(ctx, query, gradeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query entitlements for grade %s: %w", gradeID, err)
	}
	defer rows.Close()

	ms := []models.GradeEntitlement{}
	for rows.Next() {
		m, err := scanEntitlement(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan entitlement row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating entitlement rows: %w", err)
	}

	return mapping.ToDomainGradeEntitlementSlice(ms), nil
}

// SaveEntitlement inserts a new entitlement row.
func (r *PgxEntitlementRepository) SaveEntitlement(ctx context.Context, entitlement domain.GradeEntitlement) error {
	m := mapping.ToModelGradeEntitlement(entitlement)
	query := `
		INSERT INTO grade_entitlements (entitlement_id, grade_id, sub_option_id, city_category, is_allowed, max_amount, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
	`
	_, err := r.pool.Exec(ctx, query,
		m.EntitlementID,
		m.GradeID,
		m.SubOptionID,
		m.CityCategory,
		m.IsAllowed,
		m.MaxAmount,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: entitlement already configured for this grade, sub-option and category", apperrors.ErrDuplicate)
		}
		return fmt.Errorf("failed to save entitlement %s: %w", m.EntitlementID, err)
	}
	return nil
}
