package postgres

import (
	"context"
	"database/sql"
	"errors"

	"communityroots/internal/domain"
)

type volunteerRepository struct {
	DB *sql.DB
}

// NewVolunteerRepository returns a VolunteerRepository backed by Postgres.
func NewVolunteerRepository(db *sql.DB) domain.VolunteerRepository {
	return &volunteerRepository{
		DB: db,
	}
}

func (r *volunteerRepository) Create(ctx context.Context, v *domain.Volunteer) error {
	query := `
		INSERT INTO volunteers (first_name, last_name, email, phone, interest, availability, experience, motivation, status, applied_at)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, NULLIF($6, ''), NULLIF($7, ''), $8, $9, $10)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		v.FirstName, v.LastName, v.Email, v.Phone, v.Interest,
		v.Availability, v.Experience, v.Motivation, v.Status, v.AppliedAt,
	).Scan(&v.ID)
}

func (r *volunteerRepository) GetByID(ctx context.Context, id string) (*domain.Volunteer, error) {
	query := `
		SELECT id, first_name, last_name, email, phone, interest, availability, experience, motivation, status, confirmation_sent, crm_contact_id, applied_at
		FROM volunteers
		WHERE id = $1
	`
	v := &domain.Volunteer{}
	var phoneNull, availNull, expNull, crmNull sql.NullString
	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&v.ID, &v.FirstName, &v.LastName, &v.Email, &phoneNull, &v.Interest,
		&availNull, &expNull, &v.Motivation, &v.Status, &v.ConfirmationSent, &crmNull, &v.AppliedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	v.Phone = phoneNull.String
	v.Availability = availNull.String
	v.Experience = expNull.String
	v.CRMContactID = crmNull.String
	return v, nil
}

func (r *volunteerRepository) SetConfirmationSent(ctx context.Context, id string) error {
	query := `UPDATE volunteers SET confirmation_sent = TRUE WHERE id = $1`
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

func (r *volunteerRepository) SetCRMContactID(ctx context.Context, id, crmContactID string) error {
	query := `UPDATE volunteers SET crm_contact_id = $2 WHERE id = $1`
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
