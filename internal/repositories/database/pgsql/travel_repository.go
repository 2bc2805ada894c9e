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
	"github.com/voyadesk/travel_desk_app/internal/utils/pagination"
)

type PgxTravelRepository struct {
	BaseRepository
}

// newPgxTravelRepository creates a new repository for travel applications,
// trip segments and bookings.
func newPgxTravelRepository(pool *pgxpool.Pool) portsrepo.TravelRepositoryWithTx {
	return &PgxTravelRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.TravelRepositoryWithTx = (*PgxTravelRepository)(nil)

const applicationColumns = `application_id, employee_id, purpose, status, created_at, created_by, last_updated_at, last_updated_by`

func scanApplication(row pgx.Row) (models.TravelApplication, error) {
	var m models.TravelApplication
	err := row.Scan(
		&m.ApplicationID,
		&m.EmployeeID,
		&m.Purpose,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

const segmentColumns = `segment_id, application_id, from_location, to_location, from_city_category, to_city_category, departure_date, return_date, one_way_distance_km, created_at, created_by, last_updated_at, last_updated_by`

func scanSegment(row pgx.Row) (models.TripSegment, error) {
	var m models.TripSegment
	err := row.Scan(
		&m.SegmentID,
		&m.ApplicationID,
		&m.FromLocation,
		&m.ToLocation,
		&m.FromCityCategory,
		&m.ToCityCategory,
		&m.DepartureDate,
		&m.ReturnDate,
		&m.OneWayDistanceKM,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

const bookingColumns = `booking_id, segment_id, mode_name, sub_option, status, estimated_cost, actual_cost, details, created_at, created_by, last_updated_at, last_updated_by`

func scanBooking(row pgx.Row) (models.Booking, error) {
	var m models.Booking
	err := row.Scan(
		&m.BookingID,
		&m.SegmentID,
		&m.ModeName,
		&m.SubOption,
		&m.Status,
		&m.EstimatedCost,
		&m.ActualCost,
		&m.Details,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

// FindApplicationByID loads an application with its segments and their
// bookings.
func (r *PgxTravelRepository) FindApplicationByID(ctx context.Context, applicationID string) (*domain.TravelApplication, error) {
	query := `
		SELECT ` + applicationColumns + `
		FROM travel_applications
		WHERE application_id = $1;
	`
	m, err := scanApplication(r.Pool.QueryRow(ctx, query, applicationID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find application by ID %s: %w", applicationID, err)
	}

	app := mapping.ToDomainTravelApplication(m)

	segments, err := r.loadSegments(ctx, []string{applicationID})
	if err != nil {
		return nil, err
	}
	app.Segments = segments[applicationID]

	return &app, nil
}

// loadSegments fetches segments with their bookings for a set of applications,
// keyed by application ID.
func (r *PgxTravelRepository) loadSegments(ctx context.Context, applicationIDs []string) (map[string][]domain.TripSegment, error) {
	query := `
		SELECT ` + segmentColumns + `
		FROM trip_segments
		WHERE application_id = ANY($1)
		ORDER BY departure_date, segment_id;
	`
	rows, err := r.Pool.Query(ctx, query, applicationIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query trip segments: %w", err)
	}
	defer rows.Close()

	segmentsByApp := make(map[string][]domain.TripSegment)
	segmentIDs := []string{}
	segmentIndex := make(map[string]*domain.TripSegment)
	for rows.Next() {
		m, err := scanSegment(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan trip segment row: %w", err)
		}
		d := mapping.ToDomainTripSegment(m)
		segmentsByApp[d.ApplicationID] = append(segmentsByApp[d.ApplicationID], d)
		segmentIDs = append(segmentIDs, d.SegmentID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating trip segment rows: %w", err)
	}

	if len(segmentIDs) == 0 {
		return segmentsByApp, nil
	}
	for appID := range segmentsByApp {
		segs := segmentsByApp[appID]
		for i := range segs {
			segmentIndex[segs[i].SegmentID] = &segs[i]
		}
	}

	bookingQuery := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE segment_id = ANY($1)
		ORDER BY created_at, booking_id;
	`
	bookingRows, err := r.Pool.Query(ctx, bookingQuery, segmentIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to query bookings: %w", err)
	}
	defer bookingRows.Close()

	for bookingRows.Next() {
		m, err := scanBooking(bookingRows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan booking row: %w", err)
		}
		d := mapping.ToDomainBooking(m)
		if seg, ok := segmentIndex[d.SegmentID]; ok {
			seg.Bookings = append(seg.Bookings, d)
		}
	}
	if err := bookingRows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating booking rows: %w", err)
	}

	return segmentsByApp, nil
}

// ListApplicationsByEmployee returns a keyset-paginated page of the
// employee's applications, segments included, ordered by trip start date
// descending then creation time descending.
func (r *PgxTravelRepository) ListApplicationsByEmployee(ctx context.Context, employeeID string, limit int, pageToken string) ([]domain.TravelApplication, string, error) {
	if limit <= 0 {
		limit = 20
	}

	baseQuery := `
		SELECT a.application_id, a.employee_id, a.purpose, a.status, a.created_at, a.created_by, a.last_updated_at, a.last_updated_by,
		       COALESCE((SELECT MIN(s.departure_date) FROM trip_segments s WHERE s.application_id = a.application_id), a.created_at) AS trip_start
		FROM travel_applications a
		WHERE a.employee_id = $1
	`

	var rows pgx.Rows
	var err error
	if pageToken != "" {
		tripStart, createdAt, tokenErr := pagination.DecodeToken(pageToken)
		if tokenErr != nil {
			return nil, "", fmt.Errorf("%w: %v", apperrors.ErrValidation, tokenErr)
		}
		query := baseQuery + `
		AND (COALESCE((SELECT MIN(s.departure_date) FROM trip_segments s WHERE s.application_id = a.application_id), a.created_at), a.created_at) < ($2, $3)
		ORDER BY trip_start DESC, a.created_at DESC
		LIMIT $4;
		`
		rows, err = r.Pool.Query(ctx, query, employeeID, tripStart, createdAt, limit+1)
	} else {
		query := baseQuery + `
		ORDER BY trip_start DESC, a.created_at DESC
		LIMIT $2;
		`
		rows, err = r.Pool.Query(ctx, query, employeeID, limit+1)
	}
	if err != nil {
		return nil, "", fmt.Errorf("failed to query applications for employee %s: %w", employeeID, err)
	}
	defer rows.Close()

	type pageRow struct {
		app       models.TravelApplication
		tripStart time.Time
	}
	pageRows := []pageRow{}
	for rows.Next() {
		var m models.TravelApplication
		var tripStart time.Time
		err := rows.Scan(
			&m.ApplicationID,
			&m.EmployeeID,
			&m.Purpose,
			&m.Status,
			&m.CreatedAt,
			&m.CreatedBy,
			&m.LastUpdatedAt,
			&m.LastUpdatedBy,
			&tripStart,
		)
		if err != nil {
			return nil, "", fmt.Errorf("failed to scan application row: %w", err)
		}
		pageRows = append(pageRows, pageRow{app: m, tripStart: tripStart})
	}
	if err := rows.Err(); err != nil {
		return nil, "", fmt.Errorf("error iterating application rows: %w", err)
	}

	nextToken := ""
	if len(pageRows) > limit {
		pageRows = pageRows[:limit]
		last := pageRows[len(pageRows)-1]
		nextToken = pagination.EncodeToken(last.tripStart, last.app.CreatedAt)
	}

	apps := make([]domain.TravelApplication, len(pageRows))
	appIDs := make([]string, len(pageRows))
	for i, pr := range pageRows {
		apps[i] = mapping.ToDomainTravelApplication(pr.app)
		appIDs[i] = pr.app.ApplicationID
	}

	if len(appIDs) > 0 {
		segmentsByApp, err := r.loadSegments(ctx, appIDs)
		if err != nil {
			return nil, "", err
		}
		for i := range apps {
			apps[i].Segments = segmentsByApp[apps[i].ApplicationID]
		}
	}

	return apps, nextToken, nil
}

const overlapQuery = `
	SELECT a.application_id
	FROM travel_applications a
	JOIN trip_segments s ON s.application_id = a.application_id
	WHERE a.employee_id = $1
	  AND a.status NOT IN ('rejected', 'cancelled')
	  AND a.application_id <> $2
	  AND s.departure_date <= $4
	  AND s.return_date >= $3
	LIMIT 1;
`

// FindOverlappingApplication returns the ID of any active application for the
// employee with a segment window intersecting [start, end].
func (r *PgxTravelRepository) FindOverlappingApplication(ctx context.Context, employeeID string, start, end time.Time, excludeApplicationID string) (string, error) {
	var applicationID string
	err := r.Pool.QueryRow(ctx, overlapQuery, employeeID, excludeApplicationID, start, end).Scan(&applicationID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrNotFound
		}
		return "", fmt.Errorf("failed to check overlapping applications for employee %s: %w", employeeID, err)
	}
	return applicationID, nil
}

// FindBookingByID loads a single booking.
func (r *PgxTravelRepository) FindBookingByID(ctx context.Context, bookingID string) (*domain.Booking, error) {
	query := `
		SELECT ` + bookingColumns + `
		FROM bookings
		WHERE booking_id = $1;
	`
	m, err := scanBooking(r.Pool.QueryRow(ctx, query, bookingID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find booking by ID %s: %w", bookingID, err)
	}
	d := mapping.ToDomainBooking(m)
	return &d, nil
}

// FindApplicationIDForBooking resolves the application a booking belongs to
// through its trip segment.
func (r *PgxTravelRepository) FindApplicationIDForBooking(ctx context.Context, bookingID string) (string, error) {
	query := `
		SELECT s.application_id
		FROM bookings b
		JOIN trip_segments s ON s.segment_id = b.segment_id
		WHERE b.booking_id = $1;
	`
	var applicationID string
	err := r.Pool.QueryRow(ctx, query, bookingID).Scan(&applicationID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrNotFound
		}
		return "", fmt.Errorf("failed to resolve application for booking %s: %w", bookingID, err)
	}
	return applicationID, nil
}

// SaveApplication persists a new application with all its segments in one
// transaction. The duplicate-travel check re-runs inside the transaction so a
// concurrent insert between the service pre-check and this call still fails.
func (r *PgxTravelRepository) SaveApplication(ctx context.Context, app domain.TravelApplication) error {
	if len(app.Segments) == 0 {
		return fmt.Errorf("%w: application must have at least one trip segment", apperrors.ErrValidation)
	}

	tripStart := app.Segments[0].DepartureDate
	tripEnd := app.Segments[0].ReturnDate
	for _, seg := range app.Segments[1:] {
		if seg.DepartureDate.Before(tripStart) {
			tripStart = seg.DepartureDate
		}
		if seg.ReturnDate.After(tripEnd) {
			tripEnd = seg.ReturnDate
		}
	}

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	var conflictID string
	err = tx.QueryRow(ctx, overlapQuery, app.EmployeeID, app.ApplicationID, tripStart, tripEnd).Scan(&conflictID)
	if err == nil {
		return apperrors.NewTravelConflictError(conflictID, fmt.Sprintf(
			"travel window overlaps existing application %s", conflictID))
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("failed to re-check overlapping applications: %w", err)
	}

	m := mapping.ToModelTravelApplication(app)
	appInsert := `
		INSERT INTO travel_applications (application_id, employee_id, purpose, status, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8);
	`
	_, err = tx.Exec(ctx, appInsert,
		m.ApplicationID,
		m.EmployeeID,
		m.Purpose,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return fmt.Errorf("%w: application with ID %s already exists", apperrors.ErrDuplicate, m.ApplicationID)
		}
		return fmt.Errorf("failed to save application %s: %w", m.ApplicationID, err)
	}

	segmentInsert := `
		INSERT INTO trip_segments (segment_id, application_id, from_location, to_location, from_city_category, to_city_category, departure_date, return_date, one_way_distance_km, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13);
	`
	batch := &pgx.Batch{}
	for _, seg := range app.Segments {
		sm := mapping.ToModelTripSegment(seg)
		batch.Queue(segmentInsert,
			sm.SegmentID,
			sm.ApplicationID,
			sm.FromLocation,
			sm.ToLocation,
			sm.FromCityCategory,
			sm.ToCityCategory,
			sm.DepartureDate,
			sm.ReturnDate,
			sm.OneWayDistanceKM,
			sm.CreatedAt,
			sm.CreatedBy,
			sm.LastUpdatedAt,
			sm.LastUpdatedBy,
		)
	}
	br := tx.SendBatch(ctx, batch)
	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			_ = br.Close()
			return fmt.Errorf("failed to save trip segment for application %s: %w", m.ApplicationID, err)
		}
	}
	if err := br.Close(); err != nil {
		return fmt.Errorf("failed to close trip segment batch: %w", err)
	}

	return r.Commit(ctx, tx)
}

// UpdateApplicationStatus writes the status unconditionally.
func (r *PgxTravelRepository) UpdateApplicationStatus(ctx context.Context, applicationID string, status domain.ApplicationStatus, updatedBy string, now time.Time) error {
	query := `
		UPDATE travel_applications
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE application_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, applicationID, string(status), now, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update status for application %s: %w", applicationID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// SaveBooking inserts a new booking.
func (r *PgxTravelRepository) SaveBooking(ctx context.Context, booking domain.Booking) error {
	m := mapping.ToModelBooking(booking)
	query := `
		INSERT INTO bookings (booking_id, segment_id, mode_name, sub_option, status, estimated_cost, actual_cost, details, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.BookingID,
		m.SegmentID,
		m.ModeName,
		m.SubOption,
		m.Status,
		m.EstimatedCost,
		m.ActualCost,
		m.Details,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" {
				return fmt.Errorf("%w: booking with ID %s already exists", apperrors.ErrDuplicate, m.BookingID)
			}
			if pgErr.Code == "23503" { // Foreign key violation
				return fmt.Errorf("%w: trip segment %s does not exist", apperrors.ErrValidation, m.SegmentID)
			}
		}
		return fmt.Errorf("failed to save booking %s: %w", m.BookingID, err)
	}
	return nil
}

// UpdateBookingStatus writes the booking status.
func (r *PgxTravelRepository) UpdateBookingStatus(ctx context.Context, bookingID string, status domain.BookingStatus, updatedBy string, now time.Time) error {
	query := `
		UPDATE bookings
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE booking_id = $1;
	`
	cmdTag, err := r.Pool.Exec(ctx, query, bookingID, string(status), now, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to update status for booking %s: %w", bookingID, err)
	}
	if cmdTag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// RefreshApplicationStatus recomputes the application's derived status from
// its child bookings. The application row is locked for the duration of the
// transaction so concurrent rollups serialize; without the lock two
// concurrent booking updates could each read stale state and one write would
// be lost.
func (r *PgxTravelRepository) RefreshApplicationStatus(ctx context.Context, applicationID string, updatedBy string, now time.Time,
	decide func(current domain.ApplicationStatus, bookings []domain.BookingStatus) (domain.ApplicationStatus, bool)) error {

	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	var currentStatus string
	err = tx.QueryRow(ctx, `
		SELECT status FROM travel_applications
		WHERE application_id = $1
		FOR UPDATE;
	`, applicationID).Scan(&currentStatus)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrNotFound
		}
		return fmt.Errorf("failed to lock application %s: %w", applicationID, err)
	}

	rows, err := tx.Query(ctx, `
		SELECT DISTINCT b.status
		FROM bookings b
		JOIN trip_segments s ON s.segment_id = b.segment_id
		WHERE s.application_id = $1;
	`, applicationID)
	if err != nil {
		return fmt.Errorf("failed to query booking statuses for application %s: %w", applicationID, err)
	}

	bookingStatuses := []domain.BookingStatus{}
	for rows.Next() {
		var status string
		if err := rows.Scan(&status); err != nil {
			rows.Close()
			return fmt.Errorf("failed to scan booking status row: %w", err)
		}
		bookingStatuses = append(bookingStatuses, domain.BookingStatus(status))
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return fmt.Errorf("error iterating booking status rows: %w", err)
	}

	newStatus, ok := decide(domain.ApplicationStatus(currentStatus), bookingStatuses)
	if !ok || string(newStatus) == currentStatus {
		// Nothing to change; commit to release the lock cleanly.
		return r.Commit(ctx, tx)
	}

	_, err = tx.Exec(ctx, `
		UPDATE travel_applications
		SET status = $2, last_updated_at = $3, last_updated_by = $4
		WHERE application_id = $1;
	`, applicationID, string(newStatus), now, updatedBy)
	if err != nil {
		return fmt.Errorf("failed to write derived status for application %s: %w", applicationID, err)
	}

	return r.Commit(ctx, tx)
}
