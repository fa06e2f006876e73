// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/keeper-reveal/internal/crypto"
	"github.com/MKhiriev/keeper-reveal/internal/logger"
	"github.com/MKhiriev/keeper-reveal/internal/mock"
	"github.com/MKhiriev/keeper-reveal/internal/store"
	"github.com/MKhiriev/keeper-reveal/models"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

type revealFixture struct {
	*submissionFixture
	countdown *fakeCountdown
	authority *RevealAuthority
	reveal    RevealService
}

func newRevealFixture(t *testing.T, teams ...string) *revealFixture {
	t.Helper()
	sf := newSubmissionFixture(t)
	codec := crypto.NewCodec()
	cd := &fakeCountdown{}
	authority := NewRevealAuthority(sf.mem, codec, testAppConfig(), logger.Nop())

	for _, team := range teams {
		req := alphaRequest()
		req.TeamName = team
		_, err := sf.svc.Submit(context.Background(), req)
		require.NoError(t, err)
	}

	return &revealFixture{
		submissionFixture: sf,
		countdown:         cd,
		authority:         authority,
		reveal:            NewRevealService(authority, sf.mem, sf.mem, cd, codec, sf.clock, logger.Nop()),
	}
}

// corrupt stores a submission whose password ciphertext is not base64.
func (f *revealFixture) corrupt(t *testing.T, teamID string) {
	t.Helper()
	require.NoError(t, f.mem.Create(context.Background(), models.Submission{
		TeamID:             teamID,
		TeamName:           teamID,
		Ciphertext:         "AAAA",
		PasswordCiphertext: "%%% not base64 %%%",
		IntegrityDigest:    "0",
		CreatedAt:          epoch,
	}))
}

// openManualReveal moves the clock past a deadline with no countdown running.
func (f *revealFixture) openManualReveal(t *testing.T) {
	t.Helper()
	f.setDeadline(t, epoch.Add(time.Minute))
	f.clock.Advance(2 * time.Minute)
}

// ─────────────────────────────────────────────
// RevealAll
// ─────────────────────────────────────────────

func TestRevealAll_RevealsEverySealedTeam(t *testing.T) {
	f := newRevealFixture(t, "Alpha", "Bravo")
	ctx := context.Background()

	report, err := f.reveal.RevealAll(ctx)
	require.NoError(t, err)

	require.Len(t, report.Revealed, 2)
	assert.Equal(t, "alpha", report.Revealed[0].TeamID)
	assert.Equal(t, []string{"Player A", "Player B"}, report.Revealed[0].Keepers)
	assert.Empty(t, report.Failures)

	alpha, err := f.mem.Get(ctx, "alpha")
	require.NoError(t, err)
	assert.True(t, alpha.Revealed)
	assert.Equal(t, []string{"Player A", "Player B"}, alpha.KeeperList())
	require.NotNil(t, alpha.CostData)
	assert.JSONEq(t, `{"keepers":[{"name":"Player A","cost":120},{"name":"Player B","cost":80}],"totalCost":200,"remainingBudget":100}`, *alpha.CostData)
}

func TestRevealAll_SecondCallIsNoOp(t *testing.T) {
	f := newRevealFixture(t, "Alpha", "Bravo")
	ctx := context.Background()

	_, err := f.reveal.RevealAll(ctx)
	require.NoError(t, err)
	afterFirst, err := f.mem.ListAll(ctx)
	require.NoError(t, err)

	report, err := f.reveal.RevealAll(ctx)
	require.NoError(t, err)
	afterSecond, err := f.mem.ListAll(ctx)
	require.NoError(t, err)

	assert.Empty(t, report.Revealed)
	assert.Equal(t, 2, report.Skipped)
	assert.Equal(t, afterFirst, afterSecond)
}

func TestRevealAll_IsolatesCorruptedTeam(t *testing.T) {
	f := newRevealFixture(t, "Alpha", "Bravo", "Charlie")
	f.corrupt(t, "delta")
	ctx := context.Background()

	report, err := f.reveal.RevealAll(ctx)

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrPartialReveal)
	var partial *PartialRevealFailureError
	require.True(t, errors.As(err, &partial))
	assert.Equal(t, report, partial.Report)

	assert.Len(t, report.Revealed, 3)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, "delta", report.Failures[0].TeamID)

	delta, err := f.mem.Get(ctx, "delta")
	require.NoError(t, err)
	assert.False(t, delta.Revealed)
	assert.Nil(t, delta.PlaintextKeepers)
}

func TestRevealAll_DigestMismatchIsAFailure(t *testing.T) {
	f := newRevealFixture(t, "Alpha")
	ctx := context.Background()

	sub, err := f.mem.Get(ctx, "alpha")
	require.NoError(t, err)
	sub.TeamID = "tampered"
	sub.IntegrityDigest = "deadbeef"
	require.NoError(t, f.mem.Create(ctx, sub))

	report, err := f.reveal.RevealAll(ctx)

	assert.ErrorIs(t, err, ErrPartialReveal)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, "tampered", report.Failures[0].TeamID)
	assert.Len(t, report.Revealed, 1)
}

func TestRevealAll_ListError(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSubmissionRepository(ctrl)
	repo.EXPECT().ListAll(gomock.Any()).Return(nil, store.ErrStoreUnavailable)

	authority := NewRevealAuthority(repo, crypto.NewCodec(), testAppConfig(), logger.Nop())
	_, err := authority.RevealAll(context.Background())

	assert.ErrorIs(t, err, store.ErrStoreUnavailable)
	assert.NotErrorIs(t, err, ErrPartialReveal)
}

func TestRevealAll_WriteErrorOnlyFailsThatTeam(t *testing.T) {
	// Arrange
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSubmissionRepository(ctrl)
	codec := mock.NewMockCodec(ctrl)

	subs := map[string]models.Submission{
		"alpha": {TeamID: "alpha", Ciphertext: "ka", PasswordCiphertext: "pa", IntegrityDigest: "da"},
		"bravo": {TeamID: "bravo", Ciphertext: "kb", PasswordCiphertext: "pb", IntegrityDigest: "db"},
	}
	repo.EXPECT().ListAll(gomock.Any()).Return(subs, nil)

	codec.EXPECT().Decode("pa", "SYSTEM_KEY_2024").Return("wa", nil)
	codec.EXPECT().Decode("ka", "wa").Return("A", nil)
	codec.EXPECT().Digest("Awa").Return("da")
	repo.EXPECT().UpdateRevealFields(gomock.Any(), "alpha", "A", nil).Return(store.ErrStoreUnavailable)

	codec.EXPECT().Decode("pb", "SYSTEM_KEY_2024").Return("wb", nil)
	codec.EXPECT().Decode("kb", "wb").Return("B", nil)
	codec.EXPECT().Digest("Bwb").Return("db")
	repo.EXPECT().UpdateRevealFields(gomock.Any(), "bravo", "B", nil).Return(nil)

	authority := NewRevealAuthority(repo, codec, testAppConfig(), logger.Nop())

	// Act
	report, err := authority.RevealAll(context.Background())

	// Assert
	assert.ErrorIs(t, err, ErrPartialReveal)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, "alpha", report.Failures[0].TeamID)
	require.Len(t, report.Revealed, 1)
	assert.Equal(t, []string{"B"}, report.Revealed[0].Keepers)
}

func TestRevealAll_EmptySet(t *testing.T) {
	f := newRevealFixture(t)

	report, err := f.reveal.RevealAll(context.Background())

	require.NoError(t, err)
	assert.Empty(t, report.Revealed)
	assert.Zero(t, report.Skipped)
}

// ─────────────────────────────────────────────
// ManualReveal
// ─────────────────────────────────────────────

func TestManualReveal_Gate(t *testing.T) {
	t.Run("no deadline", func(t *testing.T) {
		f := newRevealFixture(t, "Alpha")

		_, err := f.reveal.ManualReveal(context.Background(), "alpha", "pass1234")
		assert.ErrorIs(t, err, ErrManualRevealUnavailable)
	})

	t.Run("before deadline", func(t *testing.T) {
		f := newRevealFixture(t, "Alpha")
		f.setDeadline(t, epoch.Add(time.Hour))

		_, err := f.reveal.ManualReveal(context.Background(), "alpha", "pass1234")
		assert.ErrorIs(t, err, ErrManualRevealUnavailable)
	})

	t.Run("countdown running", func(t *testing.T) {
		f := newRevealFixture(t, "Alpha")
		f.openManualReveal(t)
		f.countdown.status = models.CountdownStatus{Active: true, Phase: models.CountdownCounting}

		_, err := f.reveal.ManualReveal(context.Background(), "alpha", "pass1234")
		assert.ErrorIs(t, err, ErrManualRevealUnavailable)
	})
}

func TestManualReveal_CorrectPassword(t *testing.T) {
	f := newRevealFixture(t, "Alpha")
	f.openManualReveal(t)
	ctx := context.Background()

	got, err := f.reveal.ManualReveal(ctx, "Alpha", "pass1234")
	require.NoError(t, err)

	assert.True(t, got.Revealed)
	assert.Equal(t, []string{"Player A", "Player B"}, got.KeeperList())
	assert.NotNil(t, got.CostData)
	assert.Empty(t, got.PasswordCiphertext)

	stored, err := f.mem.Get(ctx, "alpha")
	require.NoError(t, err)
	assert.True(t, stored.Revealed)

	_, err = f.reveal.ManualReveal(ctx, "alpha", "pass1234")
	assert.ErrorIs(t, err, ErrAlreadyRevealed)
}

func TestManualReveal_WrongPasswordNeverWrites(t *testing.T) {
	for _, password := range []string{"wrong", "pass123", "pass12345", ""} {
		t.Run(password, func(t *testing.T) {
			f := newRevealFixture(t, "Alpha")
			f.openManualReveal(t)
			ctx := context.Background()

			_, err := f.reveal.ManualReveal(ctx, "alpha", password)

			assert.ErrorIs(t, err, ErrWrongSecret)
			stored, err := f.mem.Get(ctx, "alpha")
			require.NoError(t, err)
			assert.False(t, stored.Revealed)
			assert.Nil(t, stored.PlaintextKeepers)
		})
	}
}

func TestManualReveal_MalformedCiphertextIsWrongSecret(t *testing.T) {
	f := newRevealFixture(t)
	require.NoError(t, f.mem.Create(context.Background(), models.Submission{TeamID: "delta", Ciphertext: "!!!"}))
	f.openManualReveal(t)

	_, err := f.reveal.ManualReveal(context.Background(), "delta", "pass1234")

	assert.ErrorIs(t, err, ErrWrongSecret)
	assert.ErrorIs(t, err, crypto.ErrMalformedCiphertext)
}

func TestManualReveal_UnknownTeam(t *testing.T) {
	f := newRevealFixture(t)
	f.openManualReveal(t)

	_, err := f.reveal.ManualReveal(context.Background(), "ghost", "pass1234")

	assert.ErrorIs(t, err, store.ErrNotFound)
}

func TestManualReveal_DeadlineBoundary(t *testing.T) {
	f := newRevealFixture(t, "Alpha")
	f.setDeadline(t, epoch)

	_, err := f.reveal.ManualReveal(context.Background(), "alpha", "pass1234")

	assert.NoError(t, err, "the deadline instant itself counts as passed")
}
