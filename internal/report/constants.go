// internal/report/constants.go
package report

import "fmt"

// Health is the outcome of one player's generation.
type Health uint16

// ---- HEALTH CODES ----

// HealthUnknown represents a player not processed yet.
const HealthUnknown Health = 0

// HealthOK represents a written document.
const HealthOK Health = 1

// HealthError represents a failed generation, render or write.
const HealthError Health = 2

// ---- FORMATS ----

const (
	FormatYAML = "yaml"
	FormatJSON = "json"
)

var healthNames = map[Health]string{
	HealthUnknown: "unknown",
	HealthOK:      "ok",
	HealthError:   "error",
}

func (h Health) String() string {
	if n, ok := healthNames[h]; ok {
		return n
	}
	return healthNames[HealthUnknown]
}

// MarshalText encodes the health name in YAML and JSON reports.
func (h Health) MarshalText() ([]byte, error) {
	return []byte(h.String()), nil
}

func (h *Health) UnmarshalText(b []byte) error {
	for code, name := range healthNames {
		if name == string(b) {
			*h = code
			return nil
		}
	}
	return fmt.Errorf("report: unknown health %q", string(b))
}
