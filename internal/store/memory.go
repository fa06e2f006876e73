// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/MKhiriev/keeper-reveal/models"
)

// MemoryStore keeps submissions and the countdown record in process memory.
// It implements both [SubmissionRepository] and [StateRepository]. With a
// snapshot path every write is also flushed to a JSON file, which is loaded
// again on start.
type MemoryStore struct {
	mu          sync.RWMutex
	submissions map[string]models.Submission
	state       models.CountdownState

	// path is empty for the pure in-memory driver.
	path string
}

type snapshot struct {
	State       models.CountdownState        `json:"state"`
	Submissions map[string]models.Submission `json:"submissions"`
}

// NewMemoryStore returns an empty store that is never persisted.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{submissions: make(map[string]models.Submission)}
}

// NewFileStore returns a store persisted to path. A missing file starts an
// empty store.
func NewFileStore(path string) (*MemoryStore, error) {
	s := NewMemoryStore()
	s.path = path

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}

	var snap snapshot
	if err = json.Unmarshal(data, &snap); err != nil {
		return nil, fmt.Errorf("%w: decoding snapshot %s: %w", ErrStoreUnavailable, path, err)
	}
	if snap.Submissions != nil {
		s.submissions = snap.Submissions
	}
	s.state = snap.State

	return s, nil
}

// Create checks and sets under one lock.
func (s *MemoryStore) Create(_ context.Context, sub models.Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.submissions[sub.TeamID]; ok {
		return ErrAlreadyExists
	}

	next := s.cloneSubmissionsLocked()
	next[sub.TeamID] = sub

	return s.commitLocked(next, s.state)
}

func (s *MemoryStore) Get(_ context.Context, teamID string) (models.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sub, ok := s.submissions[teamID]
	if !ok {
		return models.Submission{}, ErrNotFound
	}

	return sub, nil
}

func (s *MemoryStore) UpdateRevealFields(_ context.Context, teamID, keepers string, costData *string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sub, ok := s.submissions[teamID]
	if !ok {
		return ErrNotFound
	}
	if sub.Revealed {
		return nil
	}

	sub.Revealed = true
	sub.PlaintextKeepers = &keepers
	if costData != nil {
		cd := *costData
		sub.CostData = &cd
	}

	next := s.cloneSubmissionsLocked()
	next[teamID] = sub

	return s.commitLocked(next, s.state)
}

func (s *MemoryStore) Replace(_ context.Context, sub models.Submission) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.submissions[sub.TeamID]
	if !ok {
		return ErrNotFound
	}
	if current.Revealed {
		return ErrSubmissionRevealed
	}

	current.TeamName = sub.TeamName
	current.Ciphertext = sub.Ciphertext
	current.PasswordCiphertext = sub.PasswordCiphertext
	current.CostDataCiphertext = sub.CostDataCiphertext
	current.IntegrityDigest = sub.IntegrityDigest

	next := s.cloneSubmissionsLocked()
	next[sub.TeamID] = current

	return s.commitLocked(next, s.state)
}

func (s *MemoryStore) ListAll(_ context.Context) (map[string]models.Submission, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.cloneSubmissionsLocked(), nil
}

func (s *MemoryStore) Remove(_ context.Context, teamID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.cloneSubmissionsLocked()
	delete(next, teamID)

	return s.commitLocked(next, s.state)
}

func (s *MemoryStore) RemoveAll(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.commitLocked(make(map[string]models.Submission), s.state)
}

func (s *MemoryStore) GetState(_ context.Context) (models.CountdownState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return models.CountdownState{
		Deadline:           copyTime(s.state.Deadline),
		CountdownStartTime: copyTime(s.state.CountdownStartTime),
	}, nil
}

func (s *MemoryStore) SetCountdownStart(_ context.Context, start *time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state
	next.CountdownStartTime = copyTime(start)

	return s.commitLocked(s.submissions, next)
}

func (s *MemoryStore) SetDeadline(_ context.Context, deadline *time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.state
	next.Deadline = copyTime(deadline)

	return s.commitLocked(s.submissions, next)
}

func (s *MemoryStore) cloneSubmissionsLocked() map[string]models.Submission {
	out := make(map[string]models.Submission, len(s.submissions))
	for id, sub := range s.submissions {
		out[id] = sub
	}
	return out
}

// commitLocked persists the next contents and only then makes them visible,
// so a failed snapshot write leaves the store as it was. Callers hold s.mu.
func (s *MemoryStore) commitLocked(submissions map[string]models.Submission, state models.CountdownState) error {
	if err := s.persist(snapshot{State: state, Submissions: submissions}); err != nil {
		return err
	}

	s.submissions = submissions
	s.state = state

	return nil
}

// persist writes the snapshot through a temp file and a rename so a crash
// never leaves a half-written file.
func (s *MemoryStore) persist(snap snapshot) error {
	if s.path == "" {
		return nil
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrWritingSnapshot, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(s.path), ".keeper-snapshot-*")
	if err != nil {
		return fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrWritingSnapshot, err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrWritingSnapshot, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrWritingSnapshot, err)
	}
	if err = os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrWritingSnapshot, err)
	}

	return nil
}

func copyTime(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	c := *t
	return &c
}
