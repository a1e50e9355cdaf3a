package integration

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/refi/refi-calculator/internal/calculation"
	"github.com/refi/refi-calculator/internal/config"
	"github.com/refi/refi-calculator/internal/domain"
	"github.com/refi/refi-calculator/internal/output"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func loadAnalysis(t *testing.T) *domain.Analysis {
	t.Helper()
	in, err := config.NewInputParser().LoadFromFile("../testdata/example_inputs.yaml")
	require.NoError(t, err)
	a, err := calculation.NewCalculationEngine().Analyze(context.Background(), *in)
	require.NoError(t, err)
	return a
}

func TestFormatters(t *testing.T) {
	a := loadAnalysis(t)
	for _, name := range output.AvailableFormatterNames() {
		out, err := output.Render(a, name)
		require.NoError(t, err, name)
		assert.NotEmpty(t, out, name)
	}
}

func TestSaveConfiguration_WritesFile(t *testing.T) {
	a := loadAnalysis(t)
	path := filepath.Join(t.TempDir(), "saved.yaml")
	require.NoError(t, output.SaveInputs(&a.Inputs, path))

	reloaded, err := config.NewInputParser().LoadFromFile(path)
	require.NoError(t, err)
	assert.Equal(t, a.Inputs, *reloaded)
}

func TestReportGenerator_JSON_and_CSV_and_Console(t *testing.T) {
	a := loadAnalysis(t)
	dir := t.TempDir()

	for format, prefix := range map[string]string{
		"json":    "{",
		"csv":     "Scenario,Kind,",
		"console": "REFINANCE ANALYSIS SUMMARY",
		"pdf":     "%PDF-",
	} {
		files, err := output.GenerateReport(a, format, dir)
		require.NoError(t, err, format)
		require.Len(t, files, 1)
		b, err := os.ReadFile(files[0])
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(string(b), prefix), format)
	}
}
