// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jonboulle/clockwork"
	"golang.org/x/crypto/bcrypt"

	"github.com/MKhiriev/keeper-reveal/internal/config"
	"github.com/MKhiriev/keeper-reveal/internal/logger"
	"github.com/MKhiriev/keeper-reveal/internal/store"
	"github.com/MKhiriev/keeper-reveal/internal/utils"
	"github.com/MKhiriev/keeper-reveal/models"
)

// commissionerService holds the league administration actions. Only the
// commissioner password hash is kept; the plain password from the config
// is hashed once at construction.
type commissionerService struct {
	submissions store.SubmissionRepository
	state       store.StateRepository
	countdown   Countdown
	clock       clockwork.Clock

	passwordHash  []byte
	tokenSignKey  string
	tokenIssuer   string
	tokenDuration time.Duration

	logger *logger.Logger
}

func NewCommissionerService(
	submissions store.SubmissionRepository,
	state store.StateRepository,
	countdown Countdown,
	clock clockwork.Clock,
	cfg config.App,
	logger *logger.Logger,
) (CommissionerService, error) {
	hash := []byte(cfg.CommissionerPasswordHash)
	if len(hash) == 0 {
		if cfg.CommissionerPassword == "" {
			return nil, ErrCommissionerNotConfigured
		}

		var err error
		hash, err = bcrypt.GenerateFromPassword([]byte(cfg.CommissionerPassword), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("error hashing commissioner password: %w", err)
		}
	}

	return &commissionerService{
		submissions:   submissions,
		state:         state,
		countdown:     countdown,
		clock:         clock,
		passwordHash:  hash,
		tokenSignKey:  cfg.TokenSignKey,
		tokenIssuer:   cfg.TokenIssuer,
		tokenDuration: cfg.TokenDuration,
		logger:        logger,
	}, nil
}

// Login checks password against the commissioner hash and issues a JWT.
func (c *commissionerService) Login(ctx context.Context, password string) (models.Token, error) {
	log := logger.FromContext(ctx)

	if err := bcrypt.CompareHashAndPassword(c.passwordHash, []byte(password)); err != nil {
		if !errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			log.Err(err).Msg("commissioner password hash is unusable")
		}
		return models.Token{}, ErrWrongPassword
	}

	token, err := utils.GenerateJWTToken(c.tokenIssuer, models.CommissionerSubject, c.clock.Now(), c.tokenDuration, c.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	log.Info().Msg("commissioner logged in")
	return token, nil
}

// ParseToken normalises every validation failure to
// ErrTokenIsExpiredOrInvalid and rejects tokens of any other subject.
func (c *commissionerService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, c.tokenSignKey, c.tokenIssuer, c.clock.Now)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Msg("token rejected")
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}
	if !token.IsCommissioner() {
		return models.Token{}, ErrCommissionerRoleIsRequired
	}

	return token, nil
}

// SetDeadline also clears any countdown so a new deadline starts from a
// clean state.
func (c *commissionerService) SetDeadline(ctx context.Context, deadline time.Time) error {
	if deadline.IsZero() {
		return ErrInvalidDataProvided
	}

	if err := c.state.SetDeadline(ctx, &deadline); err != nil {
		return fmt.Errorf("error setting deadline: %w", err)
	}
	if err := c.state.SetCountdownStart(ctx, nil); err != nil {
		return fmt.Errorf("error clearing countdown: %w", err)
	}

	logger.FromContext(ctx).Info().Time("deadline", deadline).Msg("deadline set")
	return nil
}

func (c *commissionerService) ClearDeadline(ctx context.Context) error {
	if err := c.state.SetDeadline(ctx, nil); err != nil {
		return fmt.Errorf("error clearing deadline: %w", err)
	}

	logger.FromContext(ctx).Info().Msg("deadline cleared")
	return nil
}

// ForceReveal starts the countdown regardless of the deadline.
func (c *commissionerService) ForceReveal(ctx context.Context) (models.CountdownOutcome, error) {
	outcome, err := c.countdown.StartIfNeeded(ctx)
	if err != nil {
		return "", fmt.Errorf("error starting countdown: %w", err)
	}

	logger.FromContext(ctx).Info().Str("outcome", string(outcome)).Msg("force reveal requested")
	return outcome, nil
}

func (c *commissionerService) TestCountdown(ctx context.Context) error {
	return c.countdown.DryRun(ctx)
}

func (c *commissionerService) ClearSubmissions(ctx context.Context) error {
	if err := c.submissions.RemoveAll(ctx); err != nil {
		return fmt.Errorf("error clearing submissions: %w", err)
	}

	logger.FromContext(ctx).Warn().Msg("all submissions cleared")
	return nil
}

// Reset clears the deadline, the countdown and every submission, in that
// order. It stops at the first failure.
func (c *commissionerService) Reset(ctx context.Context) error {
	if err := c.state.SetDeadline(ctx, nil); err != nil {
		return fmt.Errorf("error clearing deadline: %w", err)
	}
	if err := c.state.SetCountdownStart(ctx, nil); err != nil {
		return fmt.Errorf("error clearing countdown: %w", err)
	}
	if err := c.submissions.RemoveAll(ctx); err != nil {
		return fmt.Errorf("error clearing submissions: %w", err)
	}

	logger.FromContext(ctx).Warn().Msg("league state reset")
	return nil
}

// Export returns the raw shared state, password ciphertexts included, so it
// can be restored or audited.
func (c *commissionerService) Export(ctx context.Context) (models.Export, error) {
	state, err := c.state.GetState(ctx)
	if err != nil {
		return models.Export{}, err
	}

	all, err := c.submissions.ListAll(ctx)
	if err != nil {
		return models.Export{}, err
	}

	return models.Export{State: state, Submissions: all}, nil
}
