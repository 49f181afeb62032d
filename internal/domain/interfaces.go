package domain

import (
	"context"
	"io"
)

// Predictor is the external disease classifier contract. Implementations
// must be safe for concurrent use. The engine treats the predictor as
// potentially unavailable and fails closed to "no prediction".
type Predictor interface {
	// Predict classifies a sorted set of canonical symptom ids.
	Predict(ctx context.Context, symptoms []string) (*Prediction, error)

	// Symptoms returns the canonical symptom vocabulary the classifier
	// was trained on.
	Symptoms(ctx context.Context) ([]string, error)
}

// Translator is the localization contract: idempotent, pure, and
// side-effect free. Unsupported languages pass input through unchanged.
type Translator interface {
	Translate(text, language string) string
	Supported(language string) bool

	// LocalizeResult rewrites the localizable fields of a result in
	// place. English and unsupported languages are a no-op.
	LocalizeResult(result *TriageResult, language string)
}

// HistoryStore persists completed assessments for later review.
type HistoryStore interface {
	Save(ctx context.Context, record *AssessmentRecord) error
	Get(ctx context.Context, id int64) (*AssessmentRecord, error)
	List(ctx context.Context, limit, offset int) ([]*AssessmentRecord, error)
	Count(ctx context.Context) (int64, error)
	Delete(ctx context.Context, id int64) error
	ExportJSON(ctx context.Context, w io.Writer) error
	Close() error
}

// ConfigManager provides typed access to application configuration.
type ConfigManager interface {
	GetConfig() *Config
	GetServerConfig() *ServerConfig
	Validate() error
}
