package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/keeper-reveal/internal/logger"
	"github.com/MKhiriev/keeper-reveal/models"
)

// submissionRepository is the SQL implementation of [SubmissionRepository].
// It works with both PostgreSQL and SQLite; the dialect only changes the
// placeholder format and the error classificator.
type submissionRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSubmissionRepository constructs a [SubmissionRepository] backed by db.
func NewSubmissionRepository(db *DB, logger *logger.Logger) SubmissionRepository {
	logger.Debug().Str("dialect", db.dialect).Msg("creating submission repository")
	return &submissionRepository{
		db:     db,
		logger: logger,
	}
}

// Create inserts a sealed submission. The team_id primary key rejects a
// second submission of the same team with [ErrAlreadyExists].
func (r *submissionRepository) Create(ctx context.Context, sub models.Submission) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries().insertSubmission(sub)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		if r.db.errorClassificator != nil && r.db.errorClassificator.IsUniqueViolation(err) {
			return ErrAlreadyExists
		}
		log.Err(err).
			Str("func", "*submissionRepository.Create").
			Str("team_id", sub.TeamID).
			Bool("retryable", r.db.retryable(err)).
			Msg("error inserting submission")
		return fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrExecutingStatement, err)
	}

	return nil
}

func (r *submissionRepository) Get(ctx context.Context, teamID string) (models.Submission, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries().selectSubmission(teamID)
	if err != nil {
		return models.Submission{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	sub, err := scanSubmission(r.db.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Submission{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).
			Str("func", "*submissionRepository.Get").
			Str("team_id", teamID).
			Msg("error reading submission")
		return models.Submission{}, fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrScanningRow, err)
	}

	return sub, nil
}

// UpdateRevealFields marks a sealed submission revealed. When nothing is
// updated the row is either missing ([ErrNotFound]) or already revealed
// (no-op).
func (r *submissionRepository) UpdateRevealFields(ctx context.Context, teamID, keepers string, costData *string) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries().updateRevealFields(teamID, keepers, costData)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	execCtx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	result, err := r.db.ExecContext(execCtx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*submissionRepository.UpdateRevealFields").
			Str("team_id", teamID).
			Bool("retryable", r.db.retryable(err)).
			Msg("error revealing submission")
		return fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	if affected > 0 {
		return nil
	}

	// distinguish a missing team from one revealed by another client
	if _, err = r.Get(ctx, teamID); err != nil {
		return err
	}

	return nil
}

// Replace rewrites a sealed row with a single UPDATE, so a failed edit
// leaves the previous submission in place.
func (r *submissionRepository) Replace(ctx context.Context, sub models.Submission) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries().replaceSubmission(sub)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	execCtx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	result, err := r.db.ExecContext(execCtx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*submissionRepository.Replace").
			Str("team_id", sub.TeamID).
			Bool("retryable", r.db.retryable(err)).
			Msg("error replacing submission")
		return fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrStoreUnavailable, err)
	}
	if affected > 0 {
		return nil
	}

	if _, err = r.Get(ctx, sub.TeamID); err != nil {
		return err
	}

	return ErrSubmissionRevealed
}

func (r *submissionRepository) ListAll(ctx context.Context) (map[string]models.Submission, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.queries().selectAllSubmissions()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*submissionRepository.ListAll").
			Bool("retryable", r.db.retryable(err)).
			Msg("error listing submissions")
		return nil, fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrExecutingQuery, err)
	}
	defer rows.Close()

	submissions := make(map[string]models.Submission)
	for rows.Next() {
		sub, err := scanSubmission(rows)
		if err != nil {
			log.Err(err).Str("func", "*submissionRepository.ListAll").Msg("error scanning submission")
			return nil, fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrScanningRows, err)
		}
		submissions[sub.TeamID] = sub
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrScanningRows, err)
	}

	return submissions, nil
}

func (r *submissionRepository) Remove(ctx context.Context, teamID string) error {
	query, args, err := r.db.queries().deleteSubmission(teamID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.exec(ctx, "*submissionRepository.Remove", query, args)
}

func (r *submissionRepository) RemoveAll(ctx context.Context) error {
	query, args, err := r.db.queries().deleteAllSubmissions()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.exec(ctx, "*submissionRepository.RemoveAll", query, args)
}

func (r *submissionRepository) exec(ctx context.Context, funcName, query string, args []any) error {
	log := logger.FromContext(ctx)

	ctx, cancel := r.db.withTimeout(ctx)
	defer cancel()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).
			Str("func", funcName).
			Bool("retryable", r.db.retryable(err)).
			Msg("error executing statement")
		return fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, ErrExecutingStatement, err)
	}

	return nil
}
