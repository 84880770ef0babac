// internal/configdata/errors.go
package configdata

import "fmt"

// InvalidValueError reports a ConfigData value of the wrong shape or range.
type InvalidValueError struct {
	Key    string
	Reason string
	Err    error
}

func (e *InvalidValueError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("configdata: %s", e.Reason)
	}
	return fmt.Sprintf("configdata: key %q: %s", e.Key, e.Reason)
}

func (e *InvalidValueError) Unwrap() error {
	return e.Err
}
