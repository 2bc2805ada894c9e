package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/voyadesk/travel_desk_app/internal/apperrors"
	"github.com/voyadesk/travel_desk_app/internal/core/domain"
	portsrepo "github.com/voyadesk/travel_desk_app/internal/core/ports/repositories"
	"github.com/voyadesk/travel_desk_app/internal/models"
	"github.com/voyadesk/travel_desk_app/internal/utils/mapping"
)

type PgxRateRepository struct {
	pool *pgxpool.Pool
}

// newPgxRateRepository creates a new repository for DA and conveyance rates.
func newPgxRateRepository(pool *pgxpool.Pool) portsrepo.RateRepositoryFacade {
	return &PgxRateRepository{pool: pool}
}

var _ portsrepo.RateRepositoryFacade = (*PgxRateRepository)(nil)

const daRateColumns = `rate_id, grade_id, city_category, full_day_da, half_day_da, full_day_incidental, half_day_incidental, stay_allowance_category_a, stay_allowance_category_b, effective_from, effective_to, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanDARate(row pgx.Row) (models.DAIncidentalRate, error) {
	var m models.DAIncidentalRate
	err := row.Scan(
		&m.RateID,
		&m.GradeID,
		&m.CityCategory,
		&m.FullDayDA,
		&m.HalfDayDA,
		&m.FullDayIncidental,
		&m.HalfDayIncidental,
		&m.StayAllowanceCategoryA,
		&m.StayAllowanceCategoryB,
		&m.EffectiveFrom,
		&m.EffectiveTo,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

const conveyanceRateColumns = `rate_id, conveyance_type, rate_per_km, requires_receipt, max_claim_amount, max_distance_per_day, effective_from, effective_to, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanConveyanceRate(row pgx.Row) (models.ConveyanceRate, error) {
	var m models.ConveyanceRate
	err := row.Scan(
		&m.RateID,
		&m.ConveyanceType,
		&m.RatePerKM,
		&m.RequiresReceipt,
		&m.MaxClaimAmount,
		&m.MaxDistancePerDay,
		&m.EffectiveFrom,
		&m.EffectiveTo,
		&m.IsActive,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindEffectiveDARate returns the rate row for (grade, category) in effect at
// asOf. With overlapping windows the row with the greatest effective_from
// wins.
func (r *PgxRateRepository) FindEffectiveDARate(ctx context.Context, gradeID string, category domain.CityCategory, asOf time.Time) (*domain.DAIncidentalRate, error) {
	query := `
		SELECT ` + daRateColumns + `
		FROM da_incidental_rates
		WHERE grade_id = $1 AND city_category = $2 AND is_active = TRUE
		  AND effective_from <= $3
		  AND (effective_to IS NULL OR effective_to >= $3)
		ORDER BY effective_from DESC
		LIMIT 1;
	`
	m, err := scanDARate(r.pool.QueryRow(ctx, query, gradeID, string(category), asOf))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find effective DA rate for grade %s category %s: %w", gradeID, category, err)
	}
	d := mapping.ToDomainDAIncidentalRate(m)
	return &d, nil
}

// FindEffectiveConveyanceRate returns the rate row for a conveyance type in
// effect at asOf. Matching is case-insensitive since the type arrives from
// client input.
func (r *PgxRateRepository) FindEffectiveConveyanceRate(ctx context.Context, conveyanceType string, asOf time.Time) (*domain.ConveyanceRate, error) {
	query := `
		SELECT ` + conveyanceRateColumns + `
		FROM conveyance_rates
		WHERE LOWER(conveyance_type) = LOWER($1) AND is_active = TRUE
		  AND effective_from <= $2
		  AND (effective_to IS NULL OR effective_to >= $2)
		ORDER BY effective_from DESC
		LIMIT 1;
	`
	m, err := scanConveyanceRate(r.pool.QueryRow(ctx, query, conveyanceType, asOf))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find effective conveyance rate for type %s: %w", conveyanceType, err)
	}
	d := mapping.ToDomainConveyanceRate(m)
	return &d, nil
}

// ListDARates retrieves all rate rows for a grade, newest window first.
func (r *PgxRateRepository) ListDARates(ctx context.Context, gradeID string) ([]domain.DAIncidentalRate, error) {
	query := `
		SELECT ` + daRateColumns + `
		FROM da_incidental_rates
		WHERE grade_id = $1
		ORDER BY city_category, effective_from DESC;
	`
	rows, err := r.pool.Query(ctx, query, gradeID)
	if err != nil {
		return nil, fmt.Errorf("failed to query DA rates for grade %s: %w", gradeID, err)
	}
	defer rows.Close()

	ms := []models.DAIncidentalRate{}
	for rows.Next() {
		m, err := scanDARate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan DA rate row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating DA rate rows: %w", err)
	}

	return mapping.ToDomainDAIncidentalRateSlice(ms), nil
}

// ListConveyanceRates retrieves all conveyance rate rows, newest window first.
func (r *PgxRateRepository) ListConveyanceRates(ctx context.Context) ([]domain.ConveyanceRate, error) {
	query := `
		SELECT ` + conveyanceRateColumns + `
		FROM conveyance_rates
		ORDER BY conveyance_type, effective_from DESC;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query conveyance rates: %w", err)
	}
	defer rows.Close()

	ms := []models.ConveyanceRate{}
	for rows.Next() {
		m, err := scanConveyanceRate(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan conveyance rate row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating conveyance rate rows: %w", err)
	}

	return mapping.ToDomainConveyanceRateSlice(ms), nil
}

// SaveDARate inserts a new DA rate row. Existing windows are never edited;
// supersession happens through new rows with later effective_from dates.
func (r *PgxRateRepository) SaveDARate(ctx context.Context, rate domain.DAIncidentalRate) error {
	m := mapping.ToModelDAIncidentalRate(rate)
	query := `
		INSERT INTO da_incidental_rates (rate_id, grade_id, city_category, full_day_da, half_day_da, full_day_incidental, half_day_incidental, stay_allowance_category_a, stay_allowance_category_b, effective_from, effective_to, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16);
	`
	_, err := r.pool.Exec(ctx, query,
		m.RateID,
		m.GradeID,
		m.CityCategory,
		m.FullDayDA,
		m.HalfDayDA,
		m.FullDayIncidental,
		m.HalfDayIncidental,
		m.StayAllowanceCategoryA,
		m.StayAllowanceCategoryB,
		m.EffectiveFrom,
		m.EffectiveTo,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: DA rate with ID %s already exists", apperrors.ErrDuplicate, m.RateID)
		}
		return fmt.Errorf("failed to save DA rate %s: %w", m.RateID, err)
	}
	return nil
}

// SaveConveyanceRate inserts a new conveyance rate row.
func (r *PgxRateRepository) SaveConveyanceRate(ctx context.Context, rate domain.ConveyanceRate) error {
	m := mapping.ToModelConveyanceRate(rate)
	query := `
		INSERT INTO conveyance_rates (rate_id, conveyance_type, rate_per_km, requires_receipt, max_claim_amount, max_distance_per_day, effective_from, effective_to, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	_, err := r.pool.Exec(ctx, query,
		m.RateID,
		m.ConveyanceType,
		m.RatePerKM,
		m.RequiresReceipt,
		m.MaxClaimAmount,
		m.MaxDistancePerDay,
		m.EffectiveFrom,
		m.EffectiveTo,
		m.IsActive,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: conveyance rate with ID %s already exists", apperrors.ErrDuplicate, m.RateID)
		}
		return fmt.Errorf("failed to save conveyance rate %s: %w", m.RateID, err)
	}
	return nil
}
