// Package repo contains all database access logic for the travel catalog API.
// No business logic lives here — only SQL and type mapping.
package repo

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/nkusuma/travelcatalog/internal/domain"
)

// db is the minimal interface satisfied by *pgxpool.Pool, pgx.Conn, and pgx.Tx.
// Accepting this interface instead of *pgxpool.Pool directly allows integration
// tests to pass a transaction that is rolled back after each test, giving free
// per-test isolation without any manual cleanup.
type db interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// DestinationRepo defines the persistence operations for Destinations.
// The service layer depends on this interface, not the concrete Postgres
// implementation, which allows the service to be unit-tested with a mock.
type DestinationRepo interface {
	// Create inserts a new destination and returns the persisted record (with
	// DB-generated id, created_at, and updated_at populated).
	Create(ctx context.Context, dest domain.Destination) (domain.Destination, error)

	// GetByID retrieves a single destination by its primary key.
	// Returns domain.ErrNotFound if no destination with that ID exists.
	GetByID(ctx context.Context, id int64) (domain.Destination, error)

	// List returns all destinations ordered by creation time, newest first.
	List(ctx context.Context) ([]domain.Destination, error)

	// Update replaces the editable fields of an existing destination and
	// returns the updated record. A nil upd.Visited leaves the stored flag
	// unchanged. Returns domain.ErrNotFound if no destination with that ID
	// exists.
	Update(ctx context.Context, id int64, upd domain.DestinationUpdate) (domain.Destination, error)

	// Delete removes a destination by ID. Returns domain.ErrNotFound if it
	// does not exist.
	Delete(ctx context.Context, id int64) error
}

// pgDestinationRepo is the Postgres implementation of DestinationRepo.
type pgDestinationRepo struct {
	db db
}

// NewDestinationRepo constructs a DestinationRepo backed by the provided db.
// In production pass *pgxpool.Pool; in tests pass a pgx.Tx for rollback isolation.
func NewDestinationRepo(db db) DestinationRepo {
	return &pgDestinationRepo{db: db}
}

// Create inserts a new destination row and returns the full persisted record.
func (r *pgDestinationRepo) Create(ctx context.Context, dest domain.Destination) (domain.Destination, error) {
	const q = `
		INSERT INTO destinations (name, country, city, description, visited, rating, notes, budget)
		VALUES (@name, @country, @city, @description, @visited, @rating, @notes, @budget)
		RETURNING id, name, country, city, description, visited, rating, notes, budget, created_at, updated_at`

	args := pgx.NamedArgs{
		"name":        dest.Name,
		"country":     dest.Country,
		"city":        dest.City,
		"description": dest.Description,
		"visited":     dest.Visited,
		"rating":      dest.Rating, // nil becomes NULL
		"notes":       dest.Notes,
		"budget":      dest.Budget,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanDestination(row)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("repo.DestinationRepo.Create: %w", err)
	}
	return result, nil
}

// GetByID retrieves a destination by primary key.
func (r *pgDestinationRepo) GetByID(ctx context.Context, id int64) (domain.Destination, error) {
	const q = `
		SELECT id, name, country, city, description, visited, rating, notes, budget, created_at, updated_at
		FROM destinations
		WHERE id = @id`

	row := r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id})
	result, err := scanDestination(row)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("repo.DestinationRepo.GetByID: %w", err)
	}
	return result, nil
}

// List returns all destinations ordered by created_at descending.
// The id tie-break keeps the order stable for rows created in the same instant.
func (r *pgDestinationRepo) List(ctx context.Context) ([]domain.Destination, error) {
	const q = `
		SELECT id, name, country, city, description, visited, rating, notes, budget, created_at, updated_at
		FROM destinations
		ORDER BY created_at DESC, id DESC`

	rows, err := r.db.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("repo.DestinationRepo.List: %w", err)
	}
	defer rows.Close()

	var dests []domain.Destination
	for rows.Next() {
		d, err := scanDestination(rows)
		if err != nil {
			return nil, fmt.Errorf("repo.DestinationRepo.List: scan: %w", err)
		}
		dests = append(dests, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("repo.DestinationRepo.List: rows: %w", err)
	}

	return dests, nil
}

// Update replaces the editable fields of a destination and returns the updated
// record. COALESCE on visited implements the tri-state contract: a NULL
// argument keeps whatever value is already stored.
func (r *pgDestinationRepo) Update(ctx context.Context, id int64, upd domain.DestinationUpdate) (domain.Destination, error) {
	const q = `
		UPDATE destinations
		SET name        = @name,
		    country     = @country,
		    city        = @city,
		    description = @description,
		    visited     = COALESCE(@visited, visited),
		    rating      = @rating,
		    notes       = @notes,
		    budget      = @budget,
		    updated_at  = now()
		WHERE id = @id
		RETURNING id, name, country, city, description, visited, rating, notes, budget, created_at, updated_at`

	args := pgx.NamedArgs{
		"id":          id,
		"name":        upd.Name,
		"country":     upd.Country,
		"city":        upd.City,
		"description": upd.Description,
		"visited":     upd.Visited,
		"rating":      upd.Rating,
		"notes":       upd.Notes,
		"budget":      upd.Budget,
	}

	row := r.db.QueryRow(ctx, q, args)
	result, err := scanDestination(row)
	if err != nil {
		return domain.Destination{}, fmt.Errorf("repo.DestinationRepo.Update: %w", err)
	}
	return result, nil
}

// Delete removes a destination by primary key.
func (r *pgDestinationRepo) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM destinations WHERE id = @id`

	tag, err := r.db.Exec(ctx, q, pgx.NamedArgs{"id": id})
	if err != nil {
		return fmt.Errorf("repo.DestinationRepo.Delete: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("repo.DestinationRepo.Delete: %w", domain.ErrNotFound)
	}
	return nil
}

// scanner is satisfied by both pgx.Row and pgx.Rows, allowing scanDestination
// to be reused for both QueryRow and Query calls.
type scanner interface {
	Scan(dest ...any) error
}

// scanDestination maps a single database row into a domain.Destination.
// It handles the nullable rating, notes, and budget conversions.
func scanDestination(s scanner) (domain.Destination, error) {
	var (
		d      domain.Destination
		rating pgtype.Int4
		notes  pgtype.Text
		budget pgtype.Text
	)

	err := s.Scan(&d.ID, &d.Name, &d.Country, &d.City, &d.Description, &d.Visited,
		&rating, &notes, &budget, &d.CreatedAt, &d.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Destination{}, domain.ErrNotFound
		}
		return domain.Destination{}, err
	}

	if rating.Valid {
		v := int(rating.Int32)
		d.Rating = &v
	}
	if notes.Valid {
		n := notes.String
		d.Notes = &n
	}
	if budget.Valid {
		b := budget.String
		d.Budget = &b
	}

	return d, nil
}
