package history

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/health-triage-server/internal/domain"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	store, err := NewSQLiteStore(filepath.Join(t.TempDir(), "assessments.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func sampleRecord(requestID string) *domain.AssessmentRecord {
	return &domain.AssessmentRecord{
		RequestID:          requestID,
		RawInput:           "chest pain and dizziness",
		Symptoms:           []string{"chest_pain", "dizziness"},
		RiskLevel:          domain.TierHigh,
		ConfidenceBand:     "high",
		NeglectDetected:    true,
		SilentFlag:         "High",
		PredictedCondition: "Heart attack",
		Language:           "en",
	}
}

func TestSQLiteSaveAndGet(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	record := sampleRecord("req-1")
	require.NoError(t, store.Save(ctx, record))
	assert.NotZero(t, record.ID)
	assert.False(t, record.CreatedAt.IsZero())

	got, err := store.Get(ctx, record.ID)
	require.NoError(t, err)
	assert.Equal(t, "req-1", got.RequestID)
	assert.Equal(t, domain.TierHigh, got.RiskLevel)
	assert.Equal(t, []string{"chest_pain", "dizziness"}, got.Symptoms)
	assert.True(t, got.NeglectDetected)
	assert.Equal(t, "Heart attack", got.PredictedCondition)
}

func TestSQLiteGetNotFound(t *testing.T) {
	store := newTestStore(t)

	_, err := store.Get(context.Background(), 9999)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSQLiteListAndCount(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for i, id := range []string{"req-a", "req-b", "req-c"} {
		record := sampleRecord(id)
		record.CreatedAt = time.Now().UTC().Add(time.Duration(i) * time.Second)
		require.NoError(t, store.Save(ctx, record))
	}

	count, err := store.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(3), count)

	records, err := store.List(ctx, 2, 0)
	require.NoError(t, err)
	require.Len(t, records, 2)
	// Newest first
	assert.Equal(t, "req-c", records[0].RequestID)
	assert.Equal(t, "req-b", records[1].RequestID)

	rest, err := store.List(ctx, 2, 2)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.Equal(t, "req-a", rest[0].RequestID)
}

func TestSQLiteDelete(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	record := sampleRecord("req-del")
	require.NoError(t, store.Save(ctx, record))
	require.NoError(t, store.Delete(ctx, record.ID))

	_, err := store.Get(ctx, record.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestSQLiteEmptySymptomsRoundTrip(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	record := sampleRecord("req-empty")
	record.Symptoms = []string{}
	require.NoError(t, store.Save(ctx, record))

	got, err := store.Get(ctx, record.ID)
	require.NoError(t, err)
	assert.Empty(t, got.Symptoms)
}

func TestSQLiteExportJSON(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, sampleRecord("req-x")))
	require.NoError(t, store.Save(ctx, sampleRecord("req-y")))

	var buf bytes.Buffer
	require.NoError(t, store.ExportJSON(ctx, &buf))

	var export historyExport
	require.NoError(t, json.Unmarshal(buf.Bytes(), &export))
	assert.Equal(t, "1.0", export.Version)
	assert.Equal(t, 2, export.Count)
	assert.Len(t, export.Assessments, 2)
}
