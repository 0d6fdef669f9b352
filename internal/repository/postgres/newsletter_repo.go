package postgres

import (
	"context"
	"database/sql"
	"time"

	"communityroots/internal/domain"
)

type newsletterRepository struct {
	DB *sql.DB
}

// NewNewsletterRepository returns a NewsletterRepository backed by Postgres.
func NewNewsletterRepository(db *sql.DB) domain.NewsletterRepository {
	return &newsletterRepository{
		DB: db,
	}
}

// Subscribe records the email. ON CONFLICT DO NOTHING makes re-subscribing
// the same address a no-op rather than an error.
func (r *newsletterRepository) Subscribe(ctx context.Context, email string) (bool, error) {
	query := `
		INSERT INTO newsletter_subscribers (email, subscribed_at)
		VALUES (LOWER($1), $2)
		ON CONFLICT (email) DO NOTHING
	`
	result, err := r.DB.ExecContext(ctx, query, email, time.Now())
	if err != nil {
		return false, err
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return rows == 1, nil
}
