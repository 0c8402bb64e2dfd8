package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/hackcwru/signup/internal/domain"
)

// EmailRepository persists mailing-list addresses.
type EmailRepository struct {
	db *sqlx.DB
}

// NewEmailRepository creates a new EmailRepository.
func NewEmailRepository(db *sqlx.DB) *EmailRepository {
	return &EmailRepository{db: db}
}

// Insert stores an address. The address is the primary key, so resubmitting
// one reports domain.ErrDuplicate.
func (r *EmailRepository) Insert(ctx context.Context, email string) error {
	_, err := r.db.ExecContext(ctx, `INSERT INTO emails (email) VALUES ($1)`, email)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("email %q: %w", email, domain.ErrDuplicate)
		}
		return fmt.Errorf("insert email: %w", err)
	}
	return nil
}
