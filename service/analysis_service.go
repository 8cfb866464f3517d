package service

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"rental-agent/domain"
	"rental-agent/repository"
)

const cacheKeyPrefix = "analysis:"

type AnalysisService struct {
	repo     repository.AnalysisRepository
	cache    repository.CacheRepository
	cacheTTL time.Duration
	now      func() time.Time
}

// NewAnalysisService creates a new AnalysisService with the given repository and cache.
func NewAnalysisService(repo repository.AnalysisRepository,
	cache repository.CacheRepository,
	cacheTTL time.Duration,
) *AnalysisService {
	return &AnalysisService{repo: repo, cache: cache, cacheTTL: cacheTTL, now: time.Now}
}

// Analyze validates the inputs, runs Calculate and records the result.
// Identical inputs are served from the cache.
func (s *AnalysisService) Analyze(
	ctx context.Context,
	in domain.PropertyInputs,
) (domain.AnalysisResult, error) {

	// Validar entrada
	if err := Validate(in); err != nil {
		return domain.AnalysisResult{}, err
	}

	key, err := cacheKey(in)
	if err != nil {
		return domain.AnalysisResult{}, err
	}

	if cached, ok := s.cache.Get(ctx, key); ok {
		var result domain.AnalysisResult
		err := json.Unmarshal([]byte(cached), &result)
		if err == nil {
			if _, found := s.repo.Get(ctx, result.ID); found {
				result.Cached = true
				return result, nil
			}
			// The cache outlived the repository (restart, or another replica
			// filled it): record the result here so its ID resolves.
			zap.L().Debug("cached analysis missing from repository", zap.String("id", result.ID))
			result, err = s.record(ctx, key, result)
			if err != nil {
				return domain.AnalysisResult{}, err
			}
			result.Cached = true
			return result, nil
		}
		zap.L().Warn("discarding unreadable cache entry", zap.String("key", key), zap.Error(err))
	}

	result, err := s.record(ctx, key, domain.AnalysisResult{
		Inputs:    in,
		Analysis:  Calculate(in),
		CreatedAt: s.now().UTC(),
	})
	if err != nil {
		return domain.AnalysisResult{}, err
	}

	zap.L().Debug("analysis computed",
		zap.String("id", result.ID),
		zap.Float64("purchase_price", in.PurchasePrice),
		zap.Int("years", len(result.Analysis.YearlyProjections)),
	)

	return result, nil
}

// record saves the result to the repository and caches it under key with
// the assigned ID.
func (s *AnalysisService) record(
	ctx context.Context,
	key string,
	result domain.AnalysisResult,
) (domain.AnalysisResult, error) {
	result.ID = ""
	result.Cached = false

	// Guardar el resultado (no crítico si falla)
	id, err := s.repo.Save(ctx, result)
	if err != nil {
		zap.L().Warn("failed to save analysis", zap.Error(err))
	} else {
		result.ID = id
	}

	encoded, err := json.Marshal(result)
	if err != nil {
		return domain.AnalysisResult{}, eris.Wrap(err, "analysis: encode result")
	}
	if err := s.cache.Set(ctx, key, string(encoded), s.cacheTTL); err != nil {
		zap.L().Warn("failed to cache analysis", zap.String("key", key), zap.Error(err))
	}

	return result, nil
}

// Get returns a previously saved analysis.
func (s *AnalysisService) Get(ctx context.Context, id string) (domain.AnalysisResult, error) {
	result, ok := s.repo.Get(ctx, id)
	if !ok {
		return domain.AnalysisResult{}, eris.Wrapf(ErrNotFound, "id %s", id)
	}
	return result, nil
}

func cacheKey(in domain.PropertyInputs) (string, error) {
	b, err := json.Marshal(in)
	if err != nil {
		return "", eris.Wrap(err, "analysis: encode cache key")
	}
	return cacheKeyPrefix + strconv.FormatUint(xxhash.Sum64(b), 16), nil
}
