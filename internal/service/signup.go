// Package service drives the signup flow: run the OAuth pipeline, persist the
// profile, fire the best-effort announcement, and pick the redirect the
// browser ends up at.
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/hackcwru/signup/internal/domain"
)

// ProfilePipeline turns an authorization code into a profile.
type ProfilePipeline interface {
	Complete(ctx context.Context, code string) (*domain.Profile, error)
}

// ProfileStore persists profiles.
type ProfileStore interface {
	Insert(ctx context.Context, p *domain.Profile, year int) error
}

// EmailStore persists mailing-list addresses.
type EmailStore interface {
	Insert(ctx context.Context, email string) error
}

// Announcer posts a signup announcement. Its errors are logged, never
// propagated: the announcement must not fail a persisted signup.
type Announcer interface {
	Announce(ctx context.Context, p *domain.Profile) error
}

// SignupConfig holds the redirect targets and the signup year.
type SignupConfig struct {
	SuccessURL string
	FailureURL string
	Year       int
}

// SignupService orchestrates the callback and mailing-list flows.
type SignupService struct {
	pipeline  ProfilePipeline
	profiles  ProfileStore
	emails    EmailStore
	announcer Announcer
	cfg       SignupConfig
}

// NewSignupService creates a new SignupService.
func NewSignupService(pipeline ProfilePipeline, profiles ProfileStore, emails EmailStore, announcer Announcer, cfg SignupConfig) *SignupService {
	return &SignupService{
		pipeline:  pipeline,
		profiles:  profiles,
		emails:    emails,
		announcer: announcer,
		cfg:       cfg,
	}
}

// HandleCallback completes the OAuth pipeline for the code and returns the
// redirect target. A pipeline failure returns an error (the handler answers
// with a generic 500); once a profile is in hand the outcome is always a
// redirect. Store failures, duplicates included, pick the failure target and
// skip the announcement. The announcement runs only after a successful insert
// and cannot change the target.
func (s *SignupService) HandleCallback(ctx context.Context, code string) (string, error) {
	profile, err := s.pipeline.Complete(ctx, code)
	if err != nil {
		return "", fmt.Errorf("complete oauth: %w", err)
	}

	if err := s.profiles.Insert(ctx, profile, s.cfg.Year); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			slog.Warn("duplicate signup", "profile_id", profile.ID, "year", s.cfg.Year)
		} else {
			slog.Error("persist profile", "profile_id", profile.ID, "error", err)
		}
		return s.cfg.FailureURL, nil
	}

	slog.Info("signup persisted", "profile_id", profile.ID, "year", s.cfg.Year)

	if err := s.announcer.Announce(ctx, profile); err != nil {
		slog.Error("announce signup", "profile_id", profile.ID, "error", err)
	}

	return s.cfg.SuccessURL, nil
}

// HandleEmail stores a mailing-list address and returns the redirect target
// under the same policy as the callback.
func (s *SignupService) HandleEmail(ctx context.Context, email string) string {
	if err := s.emails.Insert(ctx, email); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			slog.Warn("duplicate email signup", "error", err)
		} else {
			slog.Error("persist email", "error", err)
		}
		return s.cfg.FailureURL
	}
	return s.cfg.SuccessURL
}
