package output

import (
	"fmt"
	"os"
	"strings"

	"github.com/refi/refi-calculator/internal/domain"
	"gopkg.in/yaml.v3"
)

// Render formats an analysis in memory
func Render(a *domain.Analysis, format string) ([]byte, error) {
	f := GetFormatterByName(format)
	if f == nil {
		return nil, unsupported(format)
	}
	return f.Format(a)
}

// GenerateReport writes an analysis in the given format to a timestamped file
// in dir and returns its path. "all" writes the verbose console report, the
// detailed CSV and the HTML report.
func GenerateReport(a *domain.Analysis, format, dir string) ([]string, error) {
	if NormalizeFormatName(format) == "all" {
		var files []string
		for _, name := range []string{"console-verbose", "detailed-csv", "html"} {
			path, err := WriteFormatted(GetFormatterByName(name), a, dir, FileExtension(name))
			if err != nil {
				return files, err
			}
			files = append(files, path)
		}
		return files, nil
	}
	f := GetFormatterByName(format)
	if f == nil {
		return nil, unsupported(format)
	}
	path, err := WriteFormatted(f, a, dir, FileExtension(format))
	if err != nil {
		return nil, err
	}
	return []string{path}, nil
}

// SaveInputs writes loan inputs as YAML
func SaveInputs(in *domain.LoanInputs, filename string) error {
	b, err := yaml.Marshal(in)
	if err != nil {
		return err
	}
	return os.WriteFile(filename, b, 0644)
}

func unsupported(format string) error {
	return fmt.Errorf("%w: %q. Try one of: %s (aliases: %s)", ErrUnsupportedFormat, format, strings.Join(AvailableFormatterNames(), ", "), strings.Join(AvailableFormatAliases(), ", "))
}
