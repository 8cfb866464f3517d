package repository

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"rental-agent/domain"
)

// AnalysisRepositoryMemory is an in-memory implementation of AnalysisRepository.
type AnalysisRepositoryMemory struct {
	mu   sync.RWMutex
	data map[string]domain.AnalysisResult
}

// NewAnalysisRepositoryMemory creates a new in-memory analysis repository.
func NewAnalysisRepositoryMemory() *AnalysisRepositoryMemory {
	return &AnalysisRepositoryMemory{
		data: make(map[string]domain.AnalysisResult),
	}
}

// Save stores the analysis result in memory under a fresh ID.
func (r *AnalysisRepositoryMemory) Save(
	ctx context.Context,
	result domain.AnalysisResult,
) (string, error) {
	id := uuid.NewString()
	result.ID = id

	r.mu.Lock()
	r.data[id] = result
	r.mu.Unlock()

	return id, nil
}

// Get returns the result saved under id.
func (r *AnalysisRepositoryMemory) Get(ctx context.Context, id string) (domain.AnalysisResult, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	result, ok := r.data[id]
	return result, ok
}

// Len returns the number of stored results.
func (r *AnalysisRepositoryMemory) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.data)
}
