package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/refi/refi-calculator/internal/domain"
)

// ErrNotCacheable is returned by CacheKey for inputs a cache cannot hold
var ErrNotCacheable = errors.New("inputs are not cacheable")

// AnalysisCache memoizes analyses keyed on the complete inputs
type AnalysisCache interface {
	Get(ctx context.Context, key string) (*domain.Analysis, bool, error)
	Set(ctx context.Context, key string, a *domain.Analysis) error
}

// CacheKey digests the canonical JSON of the inputs. Inputs that differ only
// in how their numbers were written (string or number) share a key. Inputs
// holding an infinity are refused since they would come back from a cache as
// different inputs.
func CacheKey(in domain.LoanInputs) (string, error) {
	if !in.Finite() {
		return "", ErrNotCacheable
	}
	data, err := json.Marshal(in)
	if err != nil {
		return "", fmt.Errorf("cache key: %w", err)
	}
	return fmt.Sprintf("%016x", xxhash.Sum64(data)), nil
}
