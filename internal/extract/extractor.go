package extract

import (
	"context"

	"go.uber.org/zap"

	"sportscal/internal/filter"
)

// Extractor converts a raw user utterance into a structured filter.
type Extractor interface {
	Extract(ctx context.Context, text string) (filter.Filter, error)
}

// FallbackExtractor tries the primary extractor and degrades to the fallback
// on any error. The AI-backed extractor is always composed with the
// rule-based one this way, so extraction failures never reach the caller.
type FallbackExtractor struct {
	primary  Extractor
	fallback Extractor
	log      *zap.Logger
}

// WithFallback wraps primary so that any error is recovered by fallback.
// A nil primary means the fallback runs directly.
func WithFallback(primary, fallback Extractor, log *zap.Logger) *FallbackExtractor {
	if log == nil {
		log = zap.NewNop()
	}
	return &FallbackExtractor{primary: primary, fallback: fallback, log: log}
}

func (e *FallbackExtractor) Extract(ctx context.Context, text string) (filter.Filter, error) {
	if e.primary != nil {
		f, err := e.primary.Extract(ctx, text)
		if err == nil {
			return f, nil
		}
		e.log.Warn("primary extraction failed, using rule-based fallback", zap.Error(err))
	}
	return e.fallback.Extract(ctx, text)
}
