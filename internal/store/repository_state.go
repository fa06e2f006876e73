package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/keeper-reveal/internal/logger"
	"github.com/MKhiriev/keeper-reveal/models"
)

// stateRepository keeps the shared countdown record in the single
// reveal_state row seeded by the initial migration.
type stateRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewStateRepository(db *DB, logger *logger.Logger) StateRepository {
	logger.Debug().Str("dialect", db.dialect).Msg("creating state repository")
	return &stateRepository{
		db:     db,
		logger: logger,
	}
}

func (r *stateRepository) GetState(ctx context.Context) (models.CountdownState, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries().selectState()
	if err != nil {
		return models.CountdownState{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	var deadline, start sql.NullInt64
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&deadline, &start)
	if errors.Is(err, sql.ErrNoRows) {
		// an unseeded table reads as "nothing set"
		return models.CountdownState{}, nil
	}
	if err != nil {
		log.Err(err).
			Str("func", "*stateRepository.GetState").
			Bool("retryable", r.db.retryable(err)).
			Msg("error reading reveal state")
		return models.CountdownState{}, fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrScanningRow, err)
	}

	return models.CountdownState{
		Deadline:           fromNullMillis(deadline),
		CountdownStartTime: fromNullMillis(start),
	}, nil
}

func (r *stateRepository) SetCountdownStart(ctx context.Context, start *time.Time) error {
	return r.set(ctx, "countdown_start_time", start)
}

func (r *stateRepository) SetDeadline(ctx context.Context, deadline *time.Time) error {
	return r.set(ctx, "deadline", deadline)
}

func (r *stateRepository) set(ctx context.Context, column string, value *time.Time) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries().updateState(column, value)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", "*stateRepository.set").
			Str("column", column).
			Bool("retryable", r.db.retryable(err)).
			Msg("error writing reveal state")
		return fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrExecutingStatement, err)
	}

	return nil
}
