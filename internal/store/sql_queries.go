// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/keeper-reveal/models"
)

const (
	submissionsTable = "submissions"
	stateTable       = "reveal_state"

	// stateRowID is the primary key of the only reveal_state row.
	stateRowID = 1
)

var submissionColumns = []string{
	"team_id",
	"team_name",
	"ciphertext",
	"password_ciphertext",
	"cost_data_ciphertext",
	"integrity_digest",
	"revealed",
	"plaintext_keepers",
	"cost_data",
	"created_at",
}

// queryBuilder renders the store's statements for one placeholder dialect.
type queryBuilder struct {
	sb sq.StatementBuilderType
}

func newQueryBuilder(placeholder sq.PlaceholderFormat) queryBuilder {
	return queryBuilder{sb: sq.StatementBuilder.PlaceholderFormat(placeholder)}
}

func (q queryBuilder) insertSubmission(sub models.Submission) (string, []any, error) {
	return q.sb.Insert(submissionsTable).
		Columns(submissionColumns...).
		Values(
			sub.TeamID,
			sub.TeamName,
			sub.Ciphertext,
			sub.PasswordCiphertext,
			sub.CostDataCiphertext,
			sub.IntegrityDigest,
			sub.Revealed,
			nullString(sub.PlaintextKeepers),
			nullString(sub.CostData),
			sub.CreatedAt.UnixMilli(),
		).
		ToSql()
}

// replaceSubmission only matches sealed rows, so an edit cannot undo a reveal.
func (q queryBuilder) replaceSubmission(sub models.Submission) (string, []any, error) {
	return q.sb.Update(submissionsTable).
		Set("team_name", sub.TeamName).
		Set("ciphertext", sub.Ciphertext).
		Set("password_ciphertext", sub.PasswordCiphertext).
		Set("cost_data_ciphertext", sub.CostDataCiphertext).
		Set("integrity_digest", sub.IntegrityDigest).
		Where(sq.Eq{"team_id": sub.TeamID, "revealed": false}).
		ToSql()
}

func (q queryBuilder) selectSubmission(teamID string) (string, []any, error) {
	return q.sb.Select(submissionColumns...).
		From(submissionsTable).
		Where(sq.Eq{"team_id": teamID}).
		ToSql()
}

func (q queryBuilder) selectAllSubmissions() (string, []any, error) {
	return q.sb.Select(submissionColumns...).
		From(submissionsTable).
		OrderBy("created_at", "team_id").
		ToSql()
}

// updateRevealFields only matches sealed rows, so revealing twice writes once.
func (q queryBuilder) updateRevealFields(teamID, keepers string, costData *string) (string, []any, error) {
	return q.sb.Update(submissionsTable).
		Set("revealed", true).
		Set("plaintext_keepers", keepers).
		Set("cost_data", nullString(costData)).
		Where(sq.Eq{"team_id": teamID, "revealed": false}).
		ToSql()
}

func (q queryBuilder) deleteSubmission(teamID string) (string, []any, error) {
	return q.sb.Delete(submissionsTable).
		Where(sq.Eq{"team_id": teamID}).
		ToSql()
}

func (q queryBuilder) deleteAllSubmissions() (string, []any, error) {
	return q.sb.Delete(submissionsTable).ToSql()
}

func (q queryBuilder) selectState() (string, []any, error) {
	return q.sb.Select("deadline", "countdown_start_time").
		From(stateTable).
		Where(sq.Eq{"id": stateRowID}).
		ToSql()
}

func (q queryBuilder) updateState(column string, value *time.Time) (string, []any, error) {
	return q.sb.Update(stateTable).
		Set(column, nullMillis(value)).
		Where(sq.Eq{"id": stateRowID}).
		ToSql()
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

func scanSubmission(row rowScanner) (models.Submission, error) {
	var (
		sub       models.Submission
		keepers   sql.NullString
		costData  sql.NullString
		createdAt int64
	)

	err := row.Scan(
		&sub.TeamID,
		&sub.TeamName,
		&sub.Ciphertext,
		&sub.PasswordCiphertext,
		&sub.CostDataCiphertext,
		&sub.IntegrityDigest,
		&sub.Revealed,
		&keepers,
		&costData,
		&createdAt,
	)
	if err != nil {
		return models.Submission{}, err
	}

	if keepers.Valid {
		sub.PlaintextKeepers = &keepers.String
	}
	if costData.Valid {
		sub.CostData = &costData.String
	}
	sub.CreatedAt = time.UnixMilli(createdAt).UTC()

	return sub, nil
}

// Times are stored as unix milliseconds so one schema serves both dialects.
func nullMillis(t *time.Time) sql.NullInt64 {
	if t == nil {
		return sql.NullInt64{}
	}
	return sql.NullInt64{Int64: t.UnixMilli(), Valid: true}
}

func fromNullMillis(v sql.NullInt64) *time.Time {
	if !v.Valid {
		return nil
	}
	t := time.UnixMilli(v.Int64).UTC()
	return &t
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}
