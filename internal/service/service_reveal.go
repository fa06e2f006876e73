// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/jonboulle/clockwork"

	"github.com/MKhiriev/keeper-reveal/internal/config"
	"github.com/MKhiriev/keeper-reveal/internal/crypto"
	"github.com/MKhiriev/keeper-reveal/internal/logger"
	"github.com/MKhiriev/keeper-reveal/internal/store"
	"github.com/MKhiriev/keeper-reveal/models"
)

// RevealAuthority reveals submissions without asking their teams: it
// recovers each team password from its system-key ciphertext. It satisfies
// countdown.Revealer.
type RevealAuthority struct {
	submissions store.SubmissionRepository
	codec       crypto.Codec
	systemKey   string
	logger      *logger.Logger
}

func NewRevealAuthority(submissions store.SubmissionRepository, codec crypto.Codec, cfg config.App, logger *logger.Logger) *RevealAuthority {
	return &RevealAuthority{
		submissions: submissions,
		codec:       codec,
		systemKey:   cfg.SystemKey,
		logger:      logger,
	}
}

// RevealAll reveals every sealed submission. Already revealed records are
// counted as skipped, so a second call changes nothing. A team that cannot
// be decoded or written is reported in the failures and the others still
// go through.
func (a *RevealAuthority) RevealAll(ctx context.Context) (models.RevealReport, error) {
	log := logger.FromContext(ctx)

	all, err := a.submissions.ListAll(ctx)
	if err != nil {
		log.Err(err).Msg("error listing submissions for the reveal")
		return models.RevealReport{}, fmt.Errorf("error listing submissions: %w", err)
	}

	teamIDs := make([]string, 0, len(all))
	for id := range all {
		teamIDs = append(teamIDs, id)
	}
	sort.Strings(teamIDs)

	report := models.RevealReport{
		Revealed: []models.RevealedTeam{},
		Failures: []models.RevealFailure{},
	}
	for _, teamID := range teamIDs {
		sub := all[teamID]
		if sub.Revealed {
			report.Skipped++
			continue
		}

		keepers, costData, err := a.open(sub)
		if err == nil {
			err = a.submissions.UpdateRevealFields(ctx, teamID, keepers, costData)
		}
		if err != nil {
			log.Warn().Err(err).Str("team", teamID).Msg("team could not be revealed")
			report.Failures = append(report.Failures, models.RevealFailure{TeamID: teamID, Reason: err.Error()})
			continue
		}

		revealed := models.Submission{Revealed: true, PlaintextKeepers: &keepers}
		report.Revealed = append(report.Revealed, models.RevealedTeam{TeamID: teamID, Keepers: revealed.KeeperList()})
	}

	return report, RevealErr(report)
}

func (a *RevealAuthority) open(sub models.Submission) (string, *string, error) {
	password, err := a.codec.Decode(sub.PasswordCiphertext, a.systemKey)
	if err != nil {
		return "", nil, fmt.Errorf("recovering team password: %w", err)
	}
	if password == "" {
		return "", nil, fmt.Errorf("recovering team password: %w", crypto.ErrEmptyKey)
	}

	keepers, err := unseal(a.codec, sub, password)
	if err != nil {
		return "", nil, fmt.Errorf("decoding keepers: %w", err)
	}

	return keepers, unsealCostData(a.codec, sub, password), nil
}

type revealService struct {
	authority   *RevealAuthority
	submissions store.SubmissionRepository
	state       store.StateRepository
	countdown   Countdown
	codec       crypto.Codec
	clock       clockwork.Clock

	logger *logger.Logger
}

func NewRevealService(
	authority *RevealAuthority,
	submissions store.SubmissionRepository,
	state store.StateRepository,
	countdown Countdown,
	codec crypto.Codec,
	clock clockwork.Clock,
	logger *logger.Logger,
) RevealService {
	return &revealService{
		authority:   authority,
		submissions: submissions,
		state:       state,
		countdown:   countdown,
		codec:       codec,
		clock:       clock,
		logger:      logger,
	}
}

func (s *revealService) RevealAll(ctx context.Context) (models.RevealReport, error) {
	return s.authority.RevealAll(ctx)
}

// ManualReveal lets a team show its keepers with its own password. It is
// offered only once the deadline has passed and while no countdown runs.
// A wrong password never writes anything.
func (s *revealService) ManualReveal(ctx context.Context, teamID, password string) (models.Submission, error) {
	log := logger.FromContext(ctx)
	teamID = SanitizeTeamID(teamID)

	state, err := s.state.GetState(ctx)
	if err != nil {
		return models.Submission{}, fmt.Errorf("error reading deadline: %w", err)
	}
	if state.Deadline == nil || s.clock.Now().Before(*state.Deadline) || s.countdown.Status().Active {
		return models.Submission{}, ErrManualRevealUnavailable
	}

	sub, err := s.submissions.Get(ctx, teamID)
	if err != nil {
		return models.Submission{}, err
	}
	if sub.Revealed {
		return models.Submission{}, ErrAlreadyRevealed
	}

	keepers, err := unseal(s.codec, sub, password)
	if err != nil {
		log.Info().Str("team", teamID).Bool("malformed", errors.Is(err, crypto.ErrMalformedCiphertext)).Msg("manual reveal rejected")
		return models.Submission{}, err
	}
	costData := unsealCostData(s.codec, sub, password)

	if err = s.submissions.UpdateRevealFields(ctx, teamID, keepers, costData); err != nil {
		return models.Submission{}, fmt.Errorf("error saving revealed keepers: %w", err)
	}

	log.Info().Str("team", teamID).Msg("team revealed manually")

	sub.Revealed = true
	sub.PlaintextKeepers = &keepers
	sub.CostData = costData
	return sub.Sealed(), nil
}
