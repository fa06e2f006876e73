// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/keeper-reveal/internal/config"
	"github.com/MKhiriev/keeper-reveal/internal/crypto"
	"github.com/MKhiriev/keeper-reveal/internal/logger"
	"github.com/MKhiriev/keeper-reveal/internal/mock"
	"github.com/MKhiriev/keeper-reveal/internal/store"
	"github.com/MKhiriev/keeper-reveal/internal/validators"
	"github.com/MKhiriev/keeper-reveal/models"
)

// ─────────────────────────────────────────────
// Helpers
// ─────────────────────────────────────────────

var epoch = time.Date(2026, 9, 1, 12, 0, 0, 0, time.UTC)

func testAppConfig() config.App {
	return config.App{
		SystemKey:         "SYSTEM_KEY_2024",
		TokenSignKey:      "sign-key",
		TokenIssuer:       "keeper-reveal",
		TokenDuration:     time.Hour,
		MaxKeepers:        10,
		TeamBudget:        300,
		MinPasswordLength: 4,
		CountdownDuration: 10 * time.Second,
		AutoStartWindow:   24 * time.Hour,
		Version:           "test",
	}
}

func alphaRequest() models.SubmitRequest {
	return models.SubmitRequest{
		TeamName: "Alpha",
		Keepers: []models.Keeper{
			{Name: "Player A", Cost: 120},
			{Name: "Player B", Cost: 80},
		},
		Password:        "pass1234",
		ConfirmPassword: "pass1234",
	}
}

type submissionFixture struct {
	clock *clockwork.FakeClock
	mem   *store.MemoryStore
	svc   SubmissionService
}

func newSubmissionFixture(t *testing.T) *submissionFixture {
	t.Helper()
	clock := clockwork.NewFakeClockAt(epoch)
	mem := store.NewMemoryStore()
	cfg := testAppConfig()

	svc := NewSubmissionValidationService(cfg).
		Wrap(NewSubmissionService(mem, mem, crypto.NewCodec(), clock, cfg, logger.Nop()))

	return &submissionFixture{clock: clock, mem: mem, svc: svc}
}

func (f *submissionFixture) setDeadline(t *testing.T, deadline time.Time) {
	t.Helper()
	require.NoError(t, f.mem.SetDeadline(context.Background(), &deadline))
}

var errStorage = errors.New("storage error")

// ─────────────────────────────────────────────
// Submit
// ─────────────────────────────────────────────

func TestSubmissionService_Submit_SealsKeepers(t *testing.T) {
	// Arrange
	f := newSubmissionFixture(t)
	codec := crypto.NewCodec()

	// Act
	got, err := f.svc.Submit(context.Background(), alphaRequest())

	// Assert
	require.NoError(t, err)
	assert.Equal(t, "alpha", got.TeamID)
	assert.Equal(t, "Alpha", got.TeamName)
	assert.False(t, got.Revealed)
	assert.Nil(t, got.PlaintextKeepers)
	assert.Empty(t, got.PasswordCiphertext, "password ciphertext is not handed out")
	assert.NotContains(t, got.Ciphertext, "Player A")
	assert.NotContains(t, got.Ciphertext, "Player B")
	assert.True(t, epoch.Equal(got.CreatedAt))

	stored, err := f.mem.Get(context.Background(), "alpha")
	require.NoError(t, err)

	password, err := codec.Decode(stored.PasswordCiphertext, "SYSTEM_KEY_2024")
	require.NoError(t, err)
	assert.Equal(t, "pass1234", password)

	keepers, err := codec.Decode(stored.Ciphertext, "pass1234")
	require.NoError(t, err)
	assert.Equal(t, "Player A\nPlayer B", keepers)
	assert.Equal(t, codec.Digest(keepers+"pass1234"), stored.IntegrityDigest)

	costJSON, err := codec.Decode(stored.CostDataCiphertext, "pass1234")
	require.NoError(t, err)
	var cost models.CostData
	require.NoError(t, json.Unmarshal([]byte(costJSON), &cost))
	assert.Equal(t, 200, cost.TotalCost)
	assert.Equal(t, 100, cost.RemainingBudget)
	assert.Len(t, cost.Keepers, 2)
}

func TestSubmissionService_Submit_DuplicateTeam(t *testing.T) {
	f := newSubmissionFixture(t)
	_, err := f.svc.Submit(context.Background(), alphaRequest())
	require.NoError(t, err)

	again := alphaRequest()
	again.TeamName = "  ALPHA "
	_, err = f.svc.Submit(context.Background(), again)

	assert.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestSubmissionService_Submit_AfterDeadline(t *testing.T) {
	f := newSubmissionFixture(t)
	f.setDeadline(t, epoch.Add(-time.Second))

	_, err := f.svc.Submit(context.Background(), alphaRequest())

	assert.ErrorIs(t, err, ErrSubmissionsLocked)
	all, _ := f.mem.ListAll(context.Background())
	assert.Empty(t, all)
}

func TestSubmissionService_Submit_BeforeDeadline(t *testing.T) {
	f := newSubmissionFixture(t)
	f.setDeadline(t, epoch.Add(time.Minute))

	_, err := f.svc.Submit(context.Background(), alphaRequest())

	assert.NoError(t, err)
}

func TestSubmissionService_Submit_ValidationStopsEarly(t *testing.T) {
	// Arrange: a strict gomock repository fails the test on any call
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSubmissionRepository(ctrl)
	state := mock.NewMockStateRepository(ctrl)
	cfg := testAppConfig()
	svc := NewSubmissionValidationService(cfg).
		Wrap(NewSubmissionService(repo, state, crypto.NewCodec(), clockwork.NewFakeClockAt(epoch), cfg, logger.Nop()))

	req := alphaRequest()
	req.ConfirmPassword = "different"

	// Act
	_, err := svc.Submit(context.Background(), req)

	// Assert
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.ErrorIs(t, err, validators.ErrPasswordMismatch)
}

func TestSubmissionService_Submit_StoreUnavailable(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSubmissionRepository(ctrl)
	state := mock.NewMockStateRepository(ctrl)
	cfg := testAppConfig()
	svc := NewSubmissionService(repo, state, crypto.NewCodec(), clockwork.NewFakeClockAt(epoch), cfg, logger.Nop())

	ctx := context.Background()
	gomock.InOrder(
		state.EXPECT().GetState(ctx).Return(models.CountdownState{}, nil),
		repo.EXPECT().Get(ctx, "alpha").Return(models.Submission{}, store.ErrStoreUnavailable),
	)

	_, err := svc.Submit(ctx, alphaRequest())

	assert.ErrorIs(t, err, store.ErrStoreUnavailable)
}

func TestSubmissionService_Submit_LostRaceOnCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSubmissionRepository(ctrl)
	state := mock.NewMockStateRepository(ctrl)
	cfg := testAppConfig()
	svc := NewSubmissionService(repo, state, crypto.NewCodec(), clockwork.NewFakeClockAt(epoch), cfg, logger.Nop())

	ctx := context.Background()
	state.EXPECT().GetState(ctx).Return(models.CountdownState{}, nil)
	repo.EXPECT().Get(ctx, "alpha").Return(models.Submission{}, store.ErrNotFound)
	repo.EXPECT().Create(ctx, gomock.Any()).Return(store.ErrAlreadyExists)

	_, err := svc.Submit(ctx, alphaRequest())

	assert.ErrorIs(t, err, store.ErrAlreadyExists)
}

func TestSubmissionService_Submit_EmptyKeeperList(t *testing.T) {
	f := newSubmissionFixture(t)
	req := alphaRequest()
	req.Keepers = nil

	_, err := f.svc.Submit(context.Background(), req)
	require.NoError(t, err)

	stored, err := f.mem.Get(context.Background(), "alpha")
	require.NoError(t, err)
	keepers, err := crypto.NewCodec().Decode(stored.Ciphertext, "pass1234")
	require.NoError(t, err)
	assert.Empty(t, keepers)
}

// ─────────────────────────────────────────────
// Edit
// ─────────────────────────────────────────────

func TestSubmissionService_Edit_ReplacesSubmission(t *testing.T) {
	f := newSubmissionFixture(t)
	ctx := context.Background()
	_, err := f.svc.Submit(ctx, alphaRequest())
	require.NoError(t, err)

	f.clock.Advance(time.Minute)
	changed := alphaRequest()
	changed.Keepers = []models.Keeper{{Name: "Player C", Cost: 50}}
	changed.Password = "newpass"
	changed.ConfirmPassword = "newpass"

	got, err := f.svc.Edit(ctx, "Alpha", models.EditRequest{CurrentPassword: "pass1234", Submission: changed})
	require.NoError(t, err)

	assert.True(t, epoch.Equal(got.CreatedAt), "creation time is kept")
	stored, err := f.mem.Get(ctx, "alpha")
	require.NoError(t, err)
	keepers, err := crypto.NewCodec().Decode(stored.Ciphertext, "newpass")
	require.NoError(t, err)
	assert.Equal(t, "Player C", keepers)
}

func TestSubmissionService_Edit_FailedWriteKeepsOriginal(t *testing.T) {
	tests := []struct {
		name       string
		replaceErr error
		wantErr    error
	}{
		{"store unavailable", store.ErrStoreUnavailable, store.ErrStoreUnavailable},
		{"revealed meanwhile", store.ErrSubmissionRevealed, ErrAlreadyRevealed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			f := newSubmissionFixture(t)
			ctx := context.Background()
			_, err := f.svc.Submit(ctx, alphaRequest())
			require.NoError(t, err)
			original, err := f.mem.Get(ctx, "alpha")
			require.NoError(t, err)

			ctrl := gomock.NewController(t)
			repo := mock.NewMockSubmissionRepository(ctrl)
			state := mock.NewMockStateRepository(ctrl)
			svc := NewSubmissionService(repo, state, crypto.NewCodec(), f.clock, testAppConfig(), logger.Nop())

			repo.EXPECT().Get(gomock.Any(), "alpha").Return(original, nil)
			state.EXPECT().GetState(gomock.Any()).Return(models.CountdownState{}, nil)
			repo.EXPECT().Replace(gomock.Any(), gomock.Any()).Return(tt.replaceErr)
			// no Remove or Create: the old submission is never taken out

			changed := alphaRequest()
			changed.Keepers = []models.Keeper{{Name: "Player C", Cost: 50}}

			// Act
			_, err = svc.Edit(ctx, "alpha", models.EditRequest{CurrentPassword: "pass1234", Submission: changed})

			// Assert
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestSubmissionService_Edit_WrongPassword(t *testing.T) {
	f := newSubmissionFixture(t)
	ctx := context.Background()
	_, err := f.svc.Submit(ctx, alphaRequest())
	require.NoError(t, err)
	before, _ := f.mem.Get(ctx, "alpha")

	_, err = f.svc.Edit(ctx, "alpha", models.EditRequest{CurrentPassword: "nope", Submission: alphaRequest()})

	assert.ErrorIs(t, err, ErrWrongSecret)
	after, _ := f.mem.Get(ctx, "alpha")
	assert.Equal(t, before, after)
}

func TestSubmissionService_Edit_AfterDeadline(t *testing.T) {
	f := newSubmissionFixture(t)
	ctx := context.Background()
	_, err := f.svc.Submit(ctx, alphaRequest())
	require.NoError(t, err)
	f.setDeadline(t, epoch.Add(time.Second))
	f.clock.Advance(time.Minute)

	_, err = f.svc.Edit(ctx, "alpha", models.EditRequest{CurrentPassword: "pass1234", Submission: alphaRequest()})

	assert.ErrorIs(t, err, ErrSubmissionsLocked)
	_, err = f.mem.Get(ctx, "alpha")
	assert.NoError(t, err, "a locked edit keeps the original")
}

func TestSubmissionService_Edit_OtherTeam(t *testing.T) {
	f := newSubmissionFixture(t)
	req := alphaRequest()
	req.TeamName = "Bravo"

	_, err := f.svc.Edit(context.Background(), "alpha", models.EditRequest{CurrentPassword: "pass1234", Submission: req})

	assert.ErrorIs(t, err, ErrTeamMismatch)
}

func TestSubmissionService_Edit_Missing(t *testing.T) {
	f := newSubmissionFixture(t)

	req := alphaRequest()
	req.TeamName = "Ghost"

	_, err := f.svc.Edit(context.Background(), "ghost", models.EditRequest{CurrentPassword: "pass1234", Submission: req})

	assert.ErrorIs(t, err, store.ErrNotFound)
}

// ─────────────────────────────────────────────
// List / Get
// ─────────────────────────────────────────────

func TestSubmissionService_List_SortedAndSealed(t *testing.T) {
	f := newSubmissionFixture(t)
	ctx := context.Background()

	for _, name := range []string{"Charlie", "Alpha", "Bravo"} {
		req := alphaRequest()
		req.TeamName = name
		_, err := f.svc.Submit(ctx, req)
		require.NoError(t, err)
		f.clock.Advance(time.Second)
	}

	list, err := f.svc.List(ctx)
	require.NoError(t, err)

	require.Len(t, list, 3)
	assert.Equal(t, []string{"charlie", "alpha", "bravo"}, []string{list[0].TeamID, list[1].TeamID, list[2].TeamID})
	for _, sub := range list {
		assert.Empty(t, sub.PasswordCiphertext)
	}
}

func TestSubmissionService_Get_SanitisesID(t *testing.T) {
	f := newSubmissionFixture(t)
	_, err := f.svc.Submit(context.Background(), alphaRequest())
	require.NoError(t, err)

	got, err := f.svc.Get(context.Background(), " ALPHA")
	require.NoError(t, err)
	assert.Equal(t, "alpha", got.TeamID)

	_, err = f.svc.Get(context.Background(), "bravo")
	assert.ErrorIs(t, err, store.ErrNotFound)
}
