package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"time"

	_ "github.com/lib/pq"

	"github.com/health-triage-server/internal/domain"
)

// PostgresStore implements domain.HistoryStore on PostgreSQL for
// deployments where assessments are shared across instances.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore connects using a lib/pq DSN and ensures the schema.
func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to PostgreSQL: %w", err)
	}

	if err := createPostgresSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

// NewPostgresStoreWithDB wraps an existing connection, used by tests.
func NewPostgresStoreWithDB(db *sql.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func createPostgresSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS assessments (
		id BIGSERIAL PRIMARY KEY,
		request_id TEXT NOT NULL UNIQUE,
		raw_input TEXT NOT NULL,
		symptoms TEXT NOT NULL DEFAULT '',
		risk_level TEXT NOT NULL,
		confidence_band TEXT NOT NULL,
		neglect_detected BOOLEAN NOT NULL DEFAULT FALSE,
		silent_flag TEXT NOT NULL DEFAULT 'Low',
		predicted_condition TEXT DEFAULT '',
		language TEXT NOT NULL DEFAULT 'en',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE INDEX IF NOT EXISTS idx_assessments_risk_level ON assessments(risk_level);
	CREATE INDEX IF NOT EXISTS idx_assessments_created_at ON assessments(created_at);
	`
	_, err := db.Exec(schema)
	return err
}

// Save inserts a new assessment record and sets its generated ID.
func (s *PostgresStore) Save(ctx context.Context, record *domain.AssessmentRecord) error {
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	err := s.db.QueryRowContext(ctx, `
		INSERT INTO assessments (
			request_id, raw_input, symptoms, risk_level, confidence_band,
			neglect_detected, silent_flag, predicted_condition, language, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`,
		record.RequestID,
		record.RawInput,
		joinSymptoms(record.Symptoms),
		record.RiskLevel.String(),
		record.ConfidenceBand,
		record.NeglectDetected,
		record.SilentFlag,
		record.PredictedCondition,
		record.Language,
		record.CreatedAt,
	).Scan(&record.ID)
	if err != nil {
		return fmt.Errorf("failed to insert assessment: %w", err)
	}
	return nil
}

// Get retrieves an assessment by its row ID.
func (s *PostgresStore) Get(ctx context.Context, id int64) (*domain.AssessmentRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, request_id, raw_input, symptoms, risk_level, confidence_band,
			neglect_detected, silent_flag, predicted_condition, language, created_at
		FROM assessments
		WHERE id = $1
	`, id)

	record, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan: %w", err)
	}
	return record, nil
}

// List returns assessments newest first with pagination.
func (s *PostgresStore) List(ctx context.Context, limit, offset int) ([]*domain.AssessmentRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, request_id, raw_input, symptoms, risk_level, confidence_band,
			neglect_detected, silent_flag, predicted_condition, language, created_at
		FROM assessments
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query: %w", err)
	}
	defer rows.Close()

	var result []*domain.AssessmentRecord
	for rows.Next() {
		record, err := scanRecord(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan row: %w", err)
		}
		result = append(result, record)
	}
	return result, rows.Err()
}

// Count returns the total number of stored assessments.
func (s *PostgresStore) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM assessments").Scan(&count)
	return count, err
}

// Delete removes an assessment by ID.
func (s *PostgresStore) Delete(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM assessments WHERE id = $1", id)
	return err
}

// ExportJSON writes every stored assessment to the writer.
func (s *PostgresStore) ExportJSON(ctx context.Context, writer io.Writer) error {
	all, err := s.List(ctx, maxExportLimit, 0)
	if err != nil {
		return fmt.Errorf("failed to list assessments: %w", err)
	}

	export := &historyExport{
		Version:     "1.0",
		ExportedAt:  time.Now(),
		Count:       len(all),
		Assessments: all,
	}

	encoder := json.NewEncoder(writer)
	encoder.SetIndent("", "  ")
	return encoder.Encode(export)
}

// Close closes the store and releases resources.
func (s *PostgresStore) Close() error {
	return s.db.Close()
}
