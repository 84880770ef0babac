// internal/configdata/load.go
package configdata

import (
	"fmt"
	"os"

	json "github.com/goccy/go-json"
	"github.com/muhammadmuzzammil1998/jsonc"
)

// LoadFile reads one player's ConfigData from a JSON or JSONC file.
func LoadFile(path string) (Data, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("configdata: read %s: %w", path, err)
	}
	d, err := Decode(b)
	if err != nil {
		return nil, fmt.Errorf("configdata: parse %s: %w", path, err)
	}
	return d, nil
}

// Decode parses JSONC bytes. Comments are allowed.
// The top level must be an object.
func Decode(b []byte) (Data, error) {
	var d Data
	if err := json.Unmarshal(jsonc.ToJSON(b), &d); err != nil {
		return nil, err
	}
	if d == nil {
		return nil, &InvalidValueError{Reason: "top level must be an object"}
	}
	return d, nil
}
