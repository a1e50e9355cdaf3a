package output

import (
	"encoding/json"

	"github.com/refi/refi-calculator/internal/domain"
)

// JSONFormatter serializes the whole analysis as pretty-printed JSON.
type JSONFormatter struct{}

func (j JSONFormatter) Name() string { return "json" }

func (j JSONFormatter) Format(a *domain.Analysis) ([]byte, error) {
	return json.MarshalIndent(a, "", "  ")
}
