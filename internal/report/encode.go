// internal/report/encode.go
package report

import (
	"fmt"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Encode serializes a Snapshot in the given format.
// No IO. No side effects.
func Encode(s Snapshot, format string) ([]byte, error) {
	switch format {
	case FormatYAML, "":
		b, err := yaml.Marshal(s)
		if err != nil {
			return nil, fmt.Errorf("report: encode yaml: %w", err)
		}
		return b, nil
	case FormatJSON:
		b, err := json.MarshalIndent(s, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("report: encode json: %w", err)
		}
		return append(b, '\n'), nil
	default:
		return nil, fmt.Errorf("report: unsupported format %q", format)
	}
}
