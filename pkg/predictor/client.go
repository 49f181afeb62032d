// Package predictor provides the HTTP client for the external disease
// classifier service, with circuit breaking and a layered response cache.
package predictor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"

	"github.com/health-triage-server/internal/domain"
)

// Client calls the classifier service over HTTP. Requests run through a
// circuit breaker so a failing classifier degrades the engine to
// rule-only assessments instead of stalling it.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	retryCount int
	breaker    *gobreaker.CircuitBreaker
	logger     *logrus.Logger
}

// predictRequest is the classifier's request body.
type predictRequest struct {
	Symptoms []string `json:"symptoms"`
}

// symptomsResponse is the classifier's vocabulary listing.
type symptomsResponse struct {
	Symptoms []string `json:"symptoms"`
}

// NewClient creates a classifier client from configuration.
func NewClient(cfg domain.PredictorConfig, logger *logrus.Logger) *Client {
	breaker := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        "Classifier",
		MaxRequests: 5,
		Interval:    30 * time.Second,
		Timeout:     60 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.WithFields(logrus.Fields{
				"breaker": name,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("Circuit breaker state changed")
		},
	})

	return &Client{
		baseURL:    cfg.BaseURL,
		apiKey:     cfg.APIKey,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		retryCount: cfg.RetryCount,
		breaker:    breaker,
		logger:     logger,
	}
}

// Predict classifies a canonical symptom set. Transient failures retry
// up to the configured count; an open breaker fails fast.
func (c *Client) Predict(ctx context.Context, symptoms []string) (*domain.Prediction, error) {
	if len(symptoms) == 0 {
		return nil, domain.ErrEmptyInput
	}

	result, err := c.breaker.Execute(func() (interface{}, error) {
		return c.predictWithRetry(ctx, symptoms)
	})
	if err != nil {
		if err == gobreaker.ErrOpenState {
			return nil, fmt.Errorf("classifier unavailable (circuit breaker open)")
		}
		return nil, fmt.Errorf("classifier request failed: %w", err)
	}
	return result.(*domain.Prediction), nil
}

// Symptoms returns the vocabulary the classifier was trained on.
func (c *Client) Symptoms(ctx context.Context) ([]string, error) {
	result, err := c.breaker.Execute(func() (interface{}, error) {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/symptoms", nil)
		if err != nil {
			return nil, err
		}
		c.setHeaders(req)

		resp, err := c.httpClient.Do(req)
		if err != nil {
			return nil, err
		}
		defer resp.Body.Close()

		if resp.StatusCode != http.StatusOK {
			return nil, fmt.Errorf("classifier returned status %d", resp.StatusCode)
		}
		var body symptomsResponse
		if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
			return nil, fmt.Errorf("failed to decode symptom list: %w", err)
		}
		return body.Symptoms, nil
	})
	if err != nil {
		if err == gobreaker.ErrOpenState {
			return nil, fmt.Errorf("classifier unavailable (circuit breaker open)")
		}
		return nil, err
	}
	return result.([]string), nil
}

// BreakerCounts exposes circuit breaker statistics for the stats endpoint.
func (c *Client) BreakerCounts() gobreaker.Counts {
	return c.breaker.Counts()
}

// BreakerState exposes the current circuit breaker state.
func (c *Client) BreakerState() gobreaker.State {
	return c.breaker.State()
}

func (c *Client) predictWithRetry(ctx context.Context, symptoms []string) (*domain.Prediction, error) {
	var lastErr error
	attempts := c.retryCount + 1
	if attempts < 1 {
		attempts = 1
	}
	for attempt := 0; attempt < attempts; attempt++ {
		if attempt > 0 {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(time.Duration(attempt) * 200 * time.Millisecond):
			}
		}
		prediction, err := c.predictOnce(ctx, symptoms)
		if err == nil {
			return prediction, nil
		}
		lastErr = err
		c.logger.WithError(err).WithField("attempt", attempt+1).Debug("Classifier attempt failed")
	}
	return nil, lastErr
}

func (c *Client) predictOnce(ctx context.Context, symptoms []string) (*domain.Prediction, error) {
	payload, err := json.Marshal(predictRequest{Symptoms: symptoms})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal predict request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/predict", bytes.NewReader(payload))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("classifier returned status %d", resp.StatusCode)
	}

	var prediction domain.Prediction
	if err := json.NewDecoder(resp.Body).Decode(&prediction); err != nil {
		return nil, fmt.Errorf("failed to decode prediction: %w", err)
	}
	return &prediction, nil
}

func (c *Client) setHeaders(req *http.Request) {
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}
	req.Header.Set("Accept", "application/json")
}
