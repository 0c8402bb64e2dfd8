package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"

	"github.com/hackcwru/signup/internal/domain"
)

const pgUniqueViolation = "23505"

// ProfileRepository persists attendee profiles.
type ProfileRepository struct {
	db  *sqlx.DB
	now func() time.Time
}

// NewProfileRepository creates a new ProfileRepository.
func NewProfileRepository(db *sqlx.DB) *ProfileRepository {
	return &ProfileRepository{db: db, now: time.Now}
}

// Insert stores a profile for the given signup year. The table keys on
// (id, year), so the same attendee signing up twice in one year reports
// domain.ErrDuplicate.
func (r *ProfileRepository) Insert(ctx context.Context, p *domain.Profile, year int) error {
	signupTime := r.now().UTC().Format(time.RFC3339)

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO people (id, email, created_at, updated_at, first_name,
		 last_name, major, shirt_size, dietary_restrictions, special_needs,
		 date_of_birth, gender, phone_number, school_id, school_name, year,
		 signup_time)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14,
		 $15, $16, $17)`,
		p.ID, p.Email, p.CreatedAt, p.UpdatedAt, p.FirstName, p.LastName,
		p.Major, p.ShirtSize, p.DietaryRestrictions, p.SpecialNeeds,
		p.DateOfBirth, p.Gender, p.PhoneNumber, p.School.ID, p.School.Name,
		year, signupTime)
	if err != nil {
		if isUniqueViolation(err) {
			return fmt.Errorf("profile %d for year %d: %w", p.ID, year, domain.ErrDuplicate)
		}
		return fmt.Errorf("insert profile %d: %w", p.ID, err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}
