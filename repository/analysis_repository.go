package repository

import (
	"context"

	"rental-agent/domain"
)

type AnalysisRepository interface {
	// Save stores the result and returns the ID assigned to it.
	Save(ctx context.Context, result domain.AnalysisResult) (string, error)
	Get(ctx context.Context, id string) (domain.AnalysisResult, bool)
}
