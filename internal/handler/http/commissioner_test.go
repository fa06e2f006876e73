// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/keeper-reveal/internal/service"
	"github.com/MKhiriev/keeper-reveal/internal/store"
	"github.com/MKhiriev/keeper-reveal/internal/utils"
	"github.com/MKhiriev/keeper-reveal/models"
)

// ── deadline ──

func TestSetDeadline(t *testing.T) {
	// Arrange
	h, m := newMockedHandler(t)
	m.expectCommissioner()

	var got time.Time
	m.commissioner.EXPECT().SetDeadline(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, deadline time.Time) error {
			got = deadline
			return nil
		})

	// Act
	rr := serve(t, h, http.MethodPut, "/api/commissioner/deadline", models.DeadlineRequest{Deadline: epoch}, true)

	// Assert
	require.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())
	assert.True(t, epoch.Equal(got))
}

func TestSetDeadline_InvalidJSON(t *testing.T) {
	h, m := newMockedHandler(t)
	m.expectCommissioner()

	rr := serve(t, h, http.MethodPut, "/api/commissioner/deadline", `{"deadline":"tomorrow"}`, true)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestClearDeadline(t *testing.T) {
	h, m := newMockedHandler(t)
	m.expectCommissioner()
	m.commissioner.EXPECT().ClearDeadline(gomock.Any()).Return(nil)

	rr := serve(t, h, http.MethodDelete, "/api/commissioner/deadline", nil, true)

	assert.Equal(t, http.StatusNoContent, rr.Code)
}

// ── reveal ──

func TestForceReveal(t *testing.T) {
	// Arrange
	h, m := newMockedHandler(t)
	m.expectCommissioner()
	gomock.InOrder(
		m.commissioner.EXPECT().ForceReveal(gomock.Any()).Return(models.OutcomeStarted, nil),
		m.status.EXPECT().Countdown(gomock.Any()).Return(countingStatus()),
	)

	// Act
	rr := serve(t, h, http.MethodPost, "/api/commissioner/force-reveal", nil, true)

	// Assert
	require.Equal(t, http.StatusOK, rr.Code)
	got := decodeBody[models.OutcomeResponse](t, rr)
	assert.Equal(t, models.OutcomeStarted, got.Outcome)
	assert.True(t, got.Countdown.Active)
}

func TestRevealAll_Success(t *testing.T) {
	h, m := newMockedHandler(t)
	m.expectCommissioner()
	m.reveal.EXPECT().RevealAll(gomock.Any()).Return(models.RevealReport{
		Revealed: []models.RevealedTeam{{TeamID: "alpha", Keepers: []string{"Mahomes"}}},
		Skipped:  1,
	}, nil)

	rr := serve(t, h, http.MethodPost, "/api/commissioner/reveal-all", nil, true)

	require.Equal(t, http.StatusOK, rr.Code)
	got := decodeBody[models.RevealReport](t, rr)
	require.Len(t, got.Revealed, 1)
	assert.Equal(t, 1, got.Skipped)
}

func TestRevealAll_PartialFailure(t *testing.T) {
	// Arrange
	h, m := newMockedHandler(t)
	m.expectCommissioner()
	report := models.RevealReport{
		Revealed: []models.RevealedTeam{{TeamID: "alpha", Keepers: []string{"Mahomes"}}},
		Failures: []models.RevealFailure{{TeamID: "bravo", Reason: "malformed ciphertext"}},
	}
	m.reveal.EXPECT().RevealAll(gomock.Any()).Return(report, service.RevealErr(report))

	// Act
	rr := serve(t, h, http.MethodPost, "/api/commissioner/reveal-all", nil, true)

	// Assert
	require.Equal(t, http.StatusMultiStatus, rr.Code)
	got := decodeBody[models.RevealReport](t, rr)
	assert.Equal(t, report, got)
}

func TestTestCountdown(t *testing.T) {
	h, m := newMockedHandler(t)
	m.expectCommissioner()
	dry := countingStatus()
	dry.DryRun = true
	gomock.InOrder(
		m.commissioner.EXPECT().TestCountdown(gomock.Any()).Return(nil),
		m.status.EXPECT().Countdown(gomock.Any()).Return(dry),
	)

	rr := serve(t, h, http.MethodPost, "/api/commissioner/test-countdown", nil, true)

	require.Equal(t, http.StatusAccepted, rr.Code)
	assert.True(t, decodeBody[models.CountdownStatus](t, rr).DryRun)
}

// ── destructive actions ──

func TestClearSubmissionsAndReset(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		expect func(m *handlerMocks, err error)
	}{
		{
			name: "clear submissions",
			path: "/api/commissioner/submissions",
			expect: func(m *handlerMocks, err error) {
				m.commissioner.EXPECT().ClearSubmissions(gomock.Any()).Return(err)
			},
		},
		{
			name: "reset",
			path: "/api/commissioner/state",
			expect: func(m *handlerMocks, err error) {
				m.commissioner.EXPECT().Reset(gomock.Any()).Return(err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name+" succeeds", func(t *testing.T) {
			h, m := newMockedHandler(t)
			m.expectCommissioner()
			tt.expect(m, nil)

			rr := serve(t, h, http.MethodDelete, tt.path, nil, true)

			assert.Equal(t, http.StatusNoContent, rr.Code)
		})

		t.Run(tt.name+" with store down", func(t *testing.T) {
			h, m := newMockedHandler(t)
			m.expectCommissioner()
			tt.expect(m, store.ErrStoreUnavailable)

			rr := serve(t, h, http.MethodDelete, tt.path, nil, true)

			assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
		})
	}
}

// ── export ──

func TestExport_IsSigned(t *testing.T) {
	// Arrange
	h, m := newMockedHandler(t)
	m.expectCommissioner()
	deadline := epoch
	m.commissioner.EXPECT().Export(gomock.Any()).Return(models.Export{
		State:       models.CountdownState{Deadline: &deadline},
		Submissions: map[string]models.Submission{"alpha": sealedAlpha()},
	}, nil)

	// Act
	rr := serve(t, h, http.MethodGet, "/api/commissioner/export", nil, true)

	// Assert
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Header().Get("Content-Disposition"), "keeper-reveal-export.json")

	sig := rr.Header().Get(signatureHeader)
	require.NotEmpty(t, sig)
	assert.True(t, utils.NewSigner(testSignKey).Verify(rr.Body.Bytes(), sig))

	got := decodeBody[models.Export](t, rr)
	assert.Contains(t, got.Submissions, "alpha")
}

func TestExport_ErrorIsNotSigned(t *testing.T) {
	h, m := newMockedHandler(t)
	m.expectCommissioner()
	m.commissioner.EXPECT().Export(gomock.Any()).Return(models.Export{}, store.ErrStoreUnavailable)

	rr := serve(t, h, http.MethodGet, "/api/commissioner/export", nil, true)

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.Empty(t, rr.Header().Get(signatureHeader))
}
