package predictor

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/health-triage-server/internal/domain"
)

func testLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func newTestClient(baseURL string) *Client {
	return NewClient(domain.PredictorConfig{
		BaseURL:    baseURL,
		Timeout:    2 * time.Second,
		RetryCount: 0,
		Enabled:    true,
	}, testLogger())
}

func TestPredict(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/predict", r.URL.Path)

		var req predictRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, []string{"chest_pain", "nausea"}, req.Symptoms)

		json.NewEncoder(w).Encode(domain.Prediction{
			Condition:    "Heart attack",
			Confidence:   0.91,
			SeverityTier: domain.TierHigh,
			TopConditions: []domain.ConditionProbability{
				{Condition: "Heart attack", Probability: 0.91},
			},
		})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	prediction, err := client.Predict(context.Background(), []string{"chest_pain", "nausea"})
	require.NoError(t, err)
	assert.Equal(t, "Heart attack", prediction.Condition)
	assert.InDelta(t, 0.91, prediction.Confidence, 0.001)
	assert.Equal(t, domain.TierHigh, prediction.SeverityTier)
}

func TestPredictEmptySymptoms(t *testing.T) {
	client := newTestClient("http://localhost:0")
	_, err := client.Predict(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrEmptyInput)
}

func TestPredictServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	_, err := client.Predict(context.Background(), []string{"cough"})
	assert.Error(t, err)
}

func TestPredictRetriesTransientFailure(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&calls, 1) == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		json.NewEncoder(w).Encode(domain.Prediction{Condition: "Flu", Confidence: 0.7})
	}))
	defer server.Close()

	client := NewClient(domain.PredictorConfig{
		BaseURL:    server.URL,
		Timeout:    2 * time.Second,
		RetryCount: 2,
	}, testLogger())

	prediction, err := client.Predict(context.Background(), []string{"cough"})
	require.NoError(t, err)
	assert.Equal(t, "Flu", prediction.Condition)
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls))
}

func TestPredictCircuitBreakerOpens(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	client := newTestClient(server.URL)

	// Enough consecutive failures to trip the breaker.
	for i := 0; i < 5; i++ {
		_, err := client.Predict(context.Background(), []string{"cough"})
		assert.Error(t, err)
	}

	_, err := client.Predict(context.Background(), []string{"cough"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "circuit breaker open")
}

func TestSymptoms(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/symptoms", r.URL.Path)
		json.NewEncoder(w).Encode(symptomsResponse{Symptoms: []string{"cough", "mild_fever"}})
	}))
	defer server.Close()

	client := newTestClient(server.URL)
	symptoms, err := client.Symptoms(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"cough", "mild_fever"}, symptoms)
}

func TestAPIKeyHeader(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		json.NewEncoder(w).Encode(domain.Prediction{Condition: "Flu", Confidence: 0.6})
	}))
	defer server.Close()

	client := NewClient(domain.PredictorConfig{
		BaseURL: server.URL,
		APIKey:  "secret",
		Timeout: 2 * time.Second,
	}, testLogger())

	_, err := client.Predict(context.Background(), []string{"cough"})
	require.NoError(t, err)
}
