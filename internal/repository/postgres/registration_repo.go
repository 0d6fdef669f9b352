package postgres

import (
	"context"
	"database/sql"
	"errors"

	"github.com/lib/pq"

	"communityroots/internal/domain"
)

type registrationRepository struct {
	DB *sql.DB
}

// NewRegistrationRepository returns a RegistrationRepository backed by Postgres.
func NewRegistrationRepository(db *sql.DB) domain.RegistrationRepository {
	return &registrationRepository{
		DB: db,
	}
}

// Create inserts the registration only while the event's registration count
// stays below capacity. The count subquery runs on its own statement
// snapshot under READ COMMITTED, so a concurrent uncommitted insert would be
// invisible to it; the per-event advisory lock serializes the check-and-insert
// and keeps two requests racing for the last spot from both succeeding.
// The unique index on (event_id, lower(email)) backs the duplicate gate.
func (r *registrationRepository) Create(ctx context.Context, reg *domain.Registration, capacity int) error {
	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1))`, reg.EventID); err != nil {
		return err
	}

	query := `
		INSERT INTO registrations (event_id, event_slug, first_name, last_name, email, phone, created_at)
		SELECT $1, $2, $3, $4, $5, NULLIF($6, ''), $7
		WHERE (SELECT COUNT(*) FROM registrations WHERE event_id = $1) < $8
		RETURNING id
	`
	err = tx.QueryRowContext(ctx, query,
		reg.EventID, reg.EventSlug, reg.FirstName, reg.LastName, reg.Email, reg.Phone, reg.CreatedAt, capacity,
	).Scan(&reg.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return domain.ErrEventFull
		}
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return domain.ErrAlreadyRegistered
		}
		return err
	}
	return tx.Commit()
}

func (r *registrationRepository) CountByEvent(ctx context.Context, eventID string) (int, error) {
	query := `SELECT COUNT(*) FROM registrations WHERE event_id = $1`
	var count int
	if err := r.DB.QueryRowContext(ctx, query, eventID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *registrationRepository) ExistsByEventAndEmail(ctx context.Context, eventID, email string) (bool, error) {
	query := `
		SELECT EXISTS (
			SELECT 1 FROM registrations
			WHERE event_id = $1 AND LOWER(email) = LOWER($2)
		)
	`
	var exists bool
	if err := r.DB.QueryRowContext(ctx, query, eventID, email).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *registrationRepository) SetConfirmationSent(ctx context.Context, id string) error {
	query := `UPDATE registrations SET confirmation_sent = TRUE WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *registrationRepository) SetCRMContactID(ctx context.Context, id, crmContactID string) error {
	query := `UPDATE registrations SET crm_contact_id = $2 WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, id, crmContactID)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}
