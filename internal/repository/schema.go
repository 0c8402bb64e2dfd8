package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// EnsureSchema creates the tables if they do not exist. Runs once at startup;
// idempotent. Provider timestamps and the date of birth are stored as
// received, so those columns are text.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS people (
			id integer NOT NULL,
			email varchar NOT NULL,
			created_at varchar NOT NULL,
			updated_at varchar NOT NULL,
			first_name varchar NOT NULL,
			last_name varchar NOT NULL,
			major varchar NOT NULL,
			shirt_size varchar NOT NULL,
			dietary_restrictions varchar NOT NULL,
			special_needs varchar,
			date_of_birth varchar NOT NULL,
			gender varchar NOT NULL,
			phone_number varchar NOT NULL,
			school_id integer,
			school_name varchar,
			year integer NOT NULL,
			signup_time varchar,
			signed_in boolean NOT NULL DEFAULT FALSE,
			signed_in_time varchar,
			PRIMARY KEY (id, year)
		)`,
		`CREATE TABLE IF NOT EXISTS emails (
			email varchar PRIMARY KEY
		)`,
	}

	for _, stmt := range statements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("ensure schema: %w", err)
		}
	}
	return nil
}
