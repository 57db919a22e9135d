// internal/workers/onboarding/extract-fields/extractor.go
package extractfields

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	apperrors "onboarding-workers/internal/common/errors"
	"onboarding-workers/internal/common/logger"
	"onboarding-workers/internal/common/metrics"
	"onboarding-workers/internal/models"

	"github.com/redis/go-redis/v9"
)

// Extractor turns raw document bytes into canonical fields. It never fails:
// any backend problem yields an empty field set.
type Extractor struct {
	service  ExtractionService
	router   *ProcessorRouter
	cache    *redis.Client
	cacheTTL time.Duration
	timeout  time.Duration
	logger   logger.Logger
}

// NewExtractor builds an Extractor. cache may be nil to disable caching.
func NewExtractor(config *Config, service ExtractionService, cache *redis.Client, log logger.Logger) *Extractor {
	return &Extractor{
		service:  service,
		router:   NewProcessorRouter(config),
		cache:    cache,
		cacheTTL: config.CacheTTL,
		timeout:  config.Timeout,
		logger:   log,
	}
}

// Extract derives the MIME type from filename.
func (e *Extractor) Extract(ctx context.Context, content []byte, filename string, kind models.DocumentKind) models.ExtractedFields {
	return e.extract(ctx, content, filename, MimeType(filename), kind)
}

// ExtractRaw honours the declared content type when one was supplied.
func (e *Extractor) ExtractRaw(ctx context.Context, doc models.RawDocumentInput, kind models.DocumentKind) models.ExtractedFields {
	mimeType := doc.ContentType
	if mimeType == "" {
		mimeType = MimeType(doc.Filename)
	}
	return e.extract(ctx, doc.Content, doc.Filename, mimeType, kind)
}

func (e *Extractor) extract(ctx context.Context, content []byte, filename, mimeType string, kind models.DocumentKind) models.ExtractedFields {
	key := cacheKey(kind, content)
	if fields, ok := e.fromCache(ctx, key); ok {
		metrics.ExtractionRequests.WithLabelValues(string(kind), "cache_hit").Inc()
		return fields
	}

	callCtx := ctx
	if e.timeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, e.timeout)
		defer cancel()
	}

	entities, err := e.service.Process(callCtx, content, mimeType, e.router.ProcessorName(kind))
	if err != nil {
		var stdErr *apperrors.StandardError
		if errors.Is(err, context.DeadlineExceeded) {
			stdErr = apperrors.NewExtractionTimeoutError(filename)
		} else {
			stdErr = apperrors.NewExtractionFailedError(filename, err)
		}
		e.logger.Warn("field extraction failed, continuing with empty fields", map[string]interface{}{
			"filename":     filename,
			"documentKind": kind,
			"errorCode":    stdErr.Code,
			"error":        err,
		})
		metrics.ExtractionRequests.WithLabelValues(string(kind), "failure").Inc()
		return models.ExtractedFields{}
	}

	fields := Remap(kind, collectEntities(entities))
	if len(fields) == 0 {
		metrics.ExtractionRequests.WithLabelValues(string(kind), "empty").Inc()
		return fields
	}

	metrics.ExtractionRequests.WithLabelValues(string(kind), "success").Inc()
	e.toCache(ctx, key, fields)
	return fields
}

func cacheKey(kind models.DocumentKind, content []byte) string {
	sum := sha256.Sum256(content)
	return "extract:" + string(kind) + ":" + hex.EncodeToString(sum[:])
}

func (e *Extractor) fromCache(ctx context.Context, key string) (models.ExtractedFields, bool) {
	if e.cache == nil || e.cacheTTL <= 0 {
		return nil, false
	}

	val, err := e.cache.Get(ctx, key).Result()
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			e.logger.Warn("extraction cache read failed", map[string]interface{}{"error": err})
		}
		return nil, false
	}

	var fields models.ExtractedFields
	if err := json.Unmarshal([]byte(val), &fields); err != nil {
		return nil, false
	}
	return fields, true
}

func (e *Extractor) toCache(ctx context.Context, key string, fields models.ExtractedFields) {
	if e.cache == nil || e.cacheTTL <= 0 {
		return
	}

	data, err := json.Marshal(fields)
	if err != nil {
		return
	}
	if err := e.cache.Set(ctx, key, data, e.cacheTTL).Err(); err != nil {
		e.logger.Warn("extraction cache write failed", map[string]interface{}{"error": err})
	}
}
