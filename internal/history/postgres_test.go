package history

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/health-triage-server/internal/domain"
)

func newMockStore(t *testing.T) (*PostgresStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPostgresStoreWithDB(db), mock
}

var recordColumns = []string{
	"id", "request_id", "raw_input", "symptoms", "risk_level",
	"confidence_band", "neglect_detected", "silent_flag",
	"predicted_condition", "language", "created_at",
}

func TestPostgresSave(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("INSERT INTO assessments").
		WithArgs("req-1", "chest pain", "chest_pain", "High", "high",
			true, "High", "Heart attack", "en", sqlmock.AnyArg()).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(42)))

	record := &domain.AssessmentRecord{
		RequestID:          "req-1",
		RawInput:           "chest pain",
		Symptoms:           []string{"chest_pain"},
		RiskLevel:          domain.TierHigh,
		ConfidenceBand:     "high",
		NeglectDetected:    true,
		SilentFlag:         "High",
		PredictedCondition: "Heart attack",
		Language:           "en",
	}
	require.NoError(t, store.Save(context.Background(), record))
	assert.Equal(t, int64(42), record.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGet(t *testing.T) {
	store, mock := newMockStore(t)

	created := time.Now().UTC()
	mock.ExpectQuery("SELECT (.+) FROM assessments").
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows(recordColumns).AddRow(
			int64(7), "req-7", "cough and fever", "cough,mild_fever",
			"Medium", "moderate", false, "Low", "", "en", created,
		))

	record, err := store.Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, "req-7", record.RequestID)
	assert.Equal(t, domain.TierMedium, record.RiskLevel)
	assert.Equal(t, []string{"cough", "mild_fever"}, record.Symptoms)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresGetNotFound(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("SELECT (.+) FROM assessments").
		WithArgs(int64(404)).
		WillReturnRows(sqlmock.NewRows(recordColumns))

	_, err := store.Get(context.Background(), 404)
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresList(t *testing.T) {
	store, mock := newMockStore(t)

	created := time.Now().UTC()
	mock.ExpectQuery("SELECT (.+) FROM assessments").
		WithArgs(10, 0).
		WillReturnRows(sqlmock.NewRows(recordColumns).
			AddRow(int64(2), "req-2", "b", "", "Low", "low", false, "Low", "", "en", created).
			AddRow(int64(1), "req-1", "a", "", "Low", "low", false, "Low", "", "en", created))

	records, err := store.List(context.Background(), 10, 0)
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "req-2", records[0].RequestID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresCount(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectQuery("SELECT COUNT").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(5)))

	count, err := store.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(5), count)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPostgresDelete(t *testing.T) {
	store, mock := newMockStore(t)

	mock.ExpectExec("DELETE FROM assessments").
		WithArgs(int64(3)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, store.Delete(context.Background(), 3))
	assert.NoError(t, mock.ExpectationsWereMet())
}
