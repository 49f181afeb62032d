// Package history persists completed triage assessments. Two backends
// implement the store contract: SQLite for single-node deployments and
// PostgreSQL for shared ones.
package history

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	_ "modernc.org/sqlite"

	"github.com/health-triage-server/internal/domain"
)

// SQLiteStore implements domain.HistoryStore on an embedded SQLite file.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

// NewSQLiteStore opens (or creates) the assessment database at dbPath.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// WAL mode for better concurrency
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to set WAL mode: %w", err)
	}

	if err := createSQLiteSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create schema: %w", err)
	}

	return &SQLiteStore{db: db, dbPath: dbPath}, nil
}

func createSQLiteSchema(db *sql.DB) error {
	schema := `
	CREATE TABLE IF NOT EXISTS assessments (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		request_id TEXT NOT NULL UNIQUE,
		raw_input TEXT NOT NULL,
		symptoms TEXT NOT NULL DEFAULT '',
		risk_level TEXT NOT NULL,
		confidence_band TEXT NOT NULL,
		neglect_detected INTEGER NOT NULL DEFAULT 0,
		silent_flag TEXT NOT NULL DEFAULT 'Low',
		predicted_condition TEXT DEFAULT '',
		language TEXT NOT NULL DEFAULT 'en',
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_assessments_request_id ON assessments(request_id);
	CREATE INDEX IF NOT EXISTS idx_assessments_risk_level ON assessments(risk_level);
	CREATE INDEX IF NOT EXISTS idx_assessments_created_at ON assessments(created_at);
	`
	_, err := db.Exec(schema)
	return err
}

// scanner covers sql.Row and sql.Rows.
type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRecord(s scanner) (*domain.AssessmentRecord, error) {
	record := &domain.AssessmentRecord{}
	var symptoms, riskLevel string

	err := s.Scan(
		&record.ID, &record.RequestID, &record.RawInput, &symptoms,
		&riskLevel, &record.ConfidenceBand, &record.NeglectDetected,
		&record.SilentFlag, &record.PredictedCondition, &record.Language,
		&record.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	record.RiskLevel = domain.SeverityTier(riskLevel)
	record.Symptoms = splitSymptoms(symptoms)
	return record, nil
}

// Save inserts a new assessment record and sets its generated ID.
func (s *SQLiteStore) Save(ctx context.Context, record *domain.AssessmentRecord) error {
	if record.CreatedAt.IsZero() {
		record.CreatedAt = time.Now().UTC()
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT INTO assessments (
			request_id, raw_input, symptoms, risk_level, confidence_band,
			neglect_detected, silent_flag, predicted_condition, language, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
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
	)
	if err != nil {
		return fmt.Errorf("failed to insert assessment: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return fmt.Errorf("failed to get insert ID: %w", err)
	}
	record.ID = id
	return nil
}

// Get retrieves an assessment by its row ID.
func (s *SQLiteStore) Get(ctx context.Context, id int64) (*domain.AssessmentRecord, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, request_id, raw_input, symptoms, risk_level, confidence_band,
			neglect_detected, silent_flag, predicted_condition, language, created_at
		FROM assessments
		WHERE id = ?
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
func (s *SQLiteStore) List(ctx context.Context, limit, offset int) ([]*domain.AssessmentRecord, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, request_id, raw_input, symptoms, risk_level, confidence_band,
			neglect_detected, silent_flag, predicted_condition, language, created_at
		FROM assessments
		ORDER BY created_at DESC
		LIMIT ? OFFSET ?
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
func (s *SQLiteStore) Count(ctx context.Context) (int64, error) {
	var count int64
	err := s.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM assessments").Scan(&count)
	return count, err
}

// Delete removes an assessment by ID.
func (s *SQLiteStore) Delete(ctx context.Context, id int64) error {
	_, err := s.db.ExecContext(ctx, "DELETE FROM assessments WHERE id = ?", id)
	return err
}

// maxExportLimit caps a single export pass.
const maxExportLimit = 1000000

// historyExport is the JSON envelope written by ExportJSON.
type historyExport struct {
	Version     string                     `json:"version"`
	ExportedAt  time.Time                  `json:"exported_at"`
	Count       int                        `json:"count"`
	Assessments []*domain.AssessmentRecord `json:"assessments"`
}

// ExportJSON writes every stored assessment to the writer.
func (s *SQLiteStore) ExportJSON(ctx context.Context, writer io.Writer) error {
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
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func joinSymptoms(symptoms []string) string {
	return strings.Join(symptoms, ",")
}

func splitSymptoms(joined string) []string {
	if joined == "" {
		return []string{}
	}
	return strings.Split(joined, ",")
}
