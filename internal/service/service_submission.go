// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/keeper-reveal/internal/config"
	"github.com/MKhiriev/keeper-reveal/internal/crypto"
	"github.com/MKhiriev/keeper-reveal/internal/logger"
	"github.com/MKhiriev/keeper-reveal/internal/store"
	"github.com/MKhiriev/keeper-reveal/models"
)

type submissionService struct {
	submissions store.SubmissionRepository
	state       store.StateRepository
	codec       crypto.Codec
	clock       clockwork.Clock

	systemKey  string
	teamBudget int

	logger *logger.Logger
}

func NewSubmissionService(
	submissions store.SubmissionRepository,
	state store.StateRepository,
	codec crypto.Codec,
	clock clockwork.Clock,
	cfg config.App,
	logger *logger.Logger,
) SubmissionService {
	return &submissionService{
		submissions: submissions,
		state:       state,
		codec:       codec,
		clock:       clock,
		systemKey:   cfg.SystemKey,
		teamBudget:  cfg.TeamBudget,
		logger:      logger,
	}
}

// Submit stores a new sealed submission.
//
// The duplicate check is a Get followed by Create; backends that enforce
// the primary key turn a lost race into store.ErrAlreadyExists as well.
func (s *submissionService) Submit(ctx context.Context, req models.SubmitRequest) (models.Submission, error) {
	log := logger.FromContext(ctx)

	teamID := SanitizeTeamID(req.TeamName)
	if teamID == "" {
		return models.Submission{}, ErrInvalidDataProvided
	}

	if err := s.checkDeadline(ctx); err != nil {
		return models.Submission{}, err
	}

	_, err := s.submissions.Get(ctx, teamID)
	switch {
	case err == nil:
		log.Info().Str("team", teamID).Msg("team has already submitted")
		return models.Submission{}, fmt.Errorf("%w: team %q", store.ErrAlreadyExists, teamID)
	case !errors.Is(err, store.ErrNotFound):
		return models.Submission{}, fmt.Errorf("error checking for an existing submission: %w", err)
	}

	sub, err := s.seal(teamID, req)
	if err != nil {
		return models.Submission{}, err
	}

	if err = s.submissions.Create(ctx, sub); err != nil {
		log.Err(err).Str("team", teamID).Msg("error saving submission")
		return models.Submission{}, fmt.Errorf("error saving submission: %w", err)
	}

	log.Info().Str("team", teamID).Int("keepers", len(req.Keepers)).Msg("submission sealed")
	return sub.Sealed(), nil
}

// Edit checks req.CurrentPassword against the stored digest, then replaces
// the submission. The duplicate check is skipped, the deadline is not.
func (s *submissionService) Edit(ctx context.Context, teamID string, req models.EditRequest) (models.Submission, error) {
	log := logger.FromContext(ctx)

	teamID = SanitizeTeamID(teamID)
	if req.Submission.TeamName == "" {
		req.Submission.TeamName = teamID
	}
	if SanitizeTeamID(req.Submission.TeamName) != teamID {
		return models.Submission{}, ErrTeamMismatch
	}

	existing, err := s.submissions.Get(ctx, teamID)
	if err != nil {
		return models.Submission{}, fmt.Errorf("error loading submission: %w", err)
	}
	if existing.Revealed {
		return models.Submission{}, ErrAlreadyRevealed
	}
	if _, err = unseal(s.codec, existing, req.CurrentPassword); err != nil {
		log.Info().Str("team", teamID).Msg("edit rejected, wrong password")
		return models.Submission{}, err
	}

	if err = s.checkDeadline(ctx); err != nil {
		return models.Submission{}, err
	}

	sub, err := s.seal(teamID, req.Submission)
	if err != nil {
		return models.Submission{}, err
	}
	sub.CreatedAt = existing.CreatedAt

	// one write: a failure keeps the previous submission
	err = s.submissions.Replace(ctx, sub)
	if errors.Is(err, store.ErrSubmissionRevealed) {
		return models.Submission{}, ErrAlreadyRevealed
	}
	if err != nil {
		log.Err(err).Str("team", teamID).Msg("error saving edited submission")
		return models.Submission{}, fmt.Errorf("error saving edited submission: %w", err)
	}

	log.Info().Str("team", teamID).Msg("submission edited")
	return sub.Sealed(), nil
}

func (s *submissionService) List(ctx context.Context) ([]models.Submission, error) {
	all, err := s.submissions.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	return sortedSealed(all), nil
}

func (s *submissionService) Get(ctx context.Context, teamID string) (models.Submission, error) {
	sub, err := s.submissions.Get(ctx, SanitizeTeamID(teamID))
	if err != nil {
		return models.Submission{}, err
	}

	return sub.Sealed(), nil
}

func (s *submissionService) checkDeadline(ctx context.Context) error {
	state, err := s.state.GetState(ctx)
	if err != nil {
		return fmt.Errorf("error reading deadline: %w", err)
	}
	if state.Deadline != nil && s.clock.Now().After(*state.Deadline) {
		return ErrSubmissionsLocked
	}

	return nil
}

// seal encodes the keeper list and the cost breakdown under the team
// password and the password under the system key.
func (s *submissionService) seal(teamID string, req models.SubmitRequest) (models.Submission, error) {
	keepers := strings.Join(req.KeeperNames(), models.KeeperSeparator)

	ciphertext, err := s.codec.Encode(keepers, req.Password)
	if err != nil {
		return models.Submission{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	passwordCiphertext, err := s.codec.Encode(req.Password, s.systemKey)
	if err != nil {
		return models.Submission{}, fmt.Errorf("error sealing password: %w", err)
	}

	total := req.TotalCost()
	costData, err := json.Marshal(models.CostData{
		Keepers:         req.Keepers,
		TotalCost:       total,
		RemainingBudget: s.teamBudget - total,
	})
	if err != nil {
		return models.Submission{}, fmt.Errorf("error encoding cost data: %w", err)
	}
	costCiphertext, err := s.codec.Encode(string(costData), req.Password)
	if err != nil {
		return models.Submission{}, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	return models.Submission{
		TeamID:             teamID,
		TeamName:           strings.TrimSpace(req.TeamName),
		Ciphertext:         ciphertext,
		PasswordCiphertext: passwordCiphertext,
		CostDataCiphertext: costCiphertext,
		IntegrityDigest:    s.codec.Digest(keepers + req.Password),
		CreatedAt:          s.clock.Now(),
	}, nil
}

// unseal decodes sub with password and checks the integrity digest.
func unseal(codec crypto.Codec, sub models.Submission, password string) (string, error) {
	if password == "" {
		return "", ErrWrongSecret
	}

	keepers, err := codec.Decode(sub.Ciphertext, password)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrWrongSecret, err)
	}
	if codec.Digest(keepers+password) != sub.IntegrityDigest {
		return "", ErrWrongSecret
	}

	return keepers, nil
}

// unsealCostData returns nil when sub carries no cost data or it cannot be
// decoded; cost data never blocks a reveal.
func unsealCostData(codec crypto.Codec, sub models.Submission, password string) *string {
	if sub.CostDataCiphertext == "" {
		return nil
	}

	costData, err := codec.Decode(sub.CostDataCiphertext, password)
	if err != nil || !json.Valid([]byte(costData)) {
		return nil
	}

	return &costData
}

func sortedSealed(all map[string]models.Submission) []models.Submission {
	out := make([]models.Submission, 0, len(all))
	for _, sub := range all {
		out = append(out, sub.Sealed())
	}

	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.Before(out[j].CreatedAt)
		}
		return out[i].TeamID < out[j].TeamID
	})

	return out
}
