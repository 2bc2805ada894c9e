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

type PgxPolicyRepository struct {
	pool *pgxpool.Pool
}

// newPgxPolicyRepository creates a new repository for travel policy data.
func newPgxPolicyRepository(pool *pgxpool.Pool) portsrepo.PolicyRepositoryFacade {
	return &PgxPolicyRepository{pool: pool}
}

var _ portsrepo.PolicyRepositoryFacade = (*PgxPolicyRepository)(nil)

const policyColumns = `policy_id, policy_type, travel_mode, grade_id, parameters, effective_from, effective_to, is_active, created_at, created_by, last_updated_at, last_updated_by`

func scanPolicy(row pgx.Row) (models.TravelPolicy, error) {
	var m models.TravelPolicy
	err := row.Scan(
		&m.PolicyID,
		&m.PolicyType,
		&m.TravelMode,
		&m.GradeID,
		&m.Parameters,
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

// FindEffectivePolicy returns the active policy of the given type in effect
// at asOf. A mode-specific policy wins over a mode-agnostic one; within a
// specificity tier the newest effective_from wins.
func (r *PgxPolicyRepository) FindEffectivePolicy(ctx context.Context, policyType domain.PolicyType, travelMode *string, asOf time.Time) (*domain.TravelPolicy, error) {
	var row pgx.Row
	if travelMode != nil {
		query := `
			SELECT ` + policyColumns + `
			FROM travel_policies
			WHERE policy_type = $1 AND is_active = TRUE
			  AND (LOWER(travel_mode) = LOWER($2) OR travel_mode IS NULL)
			  AND effective_from <= $3
			  AND (effective_to IS NULL OR effective_to >= $3)
			ORDER BY travel_mode NULLS LAST, effective_from DESC
			LIMIT 1;
		`
		row = r.pool.QueryRow(ctx, query, string(policyType), *travelMode, asOf)
	} else {
		query := `
			SELECT ` + policyColumns + `
			FROM travel_policies
			WHERE policy_type = $1 AND is_active = TRUE AND travel_mode IS NULL
			  AND effective_from <= $2
			  AND (effective_to IS NULL OR effective_to >= $2)
			ORDER BY effective_from DESC
			LIMIT 1;
		`
		row = r.pool.QueryRow(ctx, query, string(policyType), asOf)
	}

	m, err := scanPolicy(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find effective policy of type %s: %w", policyType, err)
	}
	d := mapping.ToDomainTravelPolicy(m)
	return &d, nil
}

// ListPolicies retrieves all policy rows, newest window first.
func (r *PgxPolicyRepository) ListPolicies(ctx context.Context) ([]domain.TravelPolicy, error) {
	query := `
		SELECT ` + policyColumns + `
		FROM travel_policies
		ORDER BY policy_type, effective_from DESC;
	`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query travel policies: %w", err)
	}
	defer rows.Close()

	ms := []models.TravelPolicy{}
	for rows.Next() {
		m, err := scanPolicy(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan travel policy row: %w", err)
		}
		ms = append(ms, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating travel policy rows: %w", err)
	}

	return mapping.ToDomainTravelPolicySlice(ms), nil
}

// SavePolicy inserts a new policy row.
func (r *PgxPolicyRepository) SavePolicy(ctx context.Context, policy domain.TravelPolicy) error {
	m := mapping.ToModelTravelPolicy(policy)
	query := `
		INSERT INTO travel_policies (policy_id, policy_type, travel_mode, grade_id, parameters, effective_from, effective_to, is_active, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.pool.Exec(ctx, query,
		m.PolicyID,
		m.PolicyType,
		m.TravelMode,
		m.GradeID,
		m.Parameters,
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
			return fmt.Errorf("%w: policy with ID %s already exists", apperrors.ErrDuplicate, m.PolicyID)
		}
		return fmt.Errorf("failed to save policy %s: %w", m.PolicyID, err)
	}
	return nil
}
