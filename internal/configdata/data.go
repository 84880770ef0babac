// internal/configdata/data.go
package configdata

import (
	"github.com/spf13/cast"
)

// Data is the flat per-player input mapping.
// Generators only read it.
type Data map[string]any

// Has reports whether key is present. A null value counts as absent.
func (d Data) Has(key string) bool {
	v, ok := d[key]
	return ok && v != nil
}

// HasAll reports whether every key is present.
func (d Data) HasAll(keys ...string) bool {
	for _, k := range keys {
		if !d.Has(k) {
			return false
		}
	}
	return true
}

// String returns the scalar value of key as a string.
func (d Data) String(key string) (string, error) {
	s, err := cast.ToStringE(d[key])
	if err != nil {
		return "", &InvalidValueError{Key: key, Reason: "expected scalar", Err: err}
	}
	return s, nil
}

// Strings returns the sequence value of key as strings.
// A plain string is split on whitespace.
func (d Data) Strings(key string) ([]string, error) {
	ss, err := cast.ToStringSliceE(d[key])
	if err != nil {
		return nil, &InvalidValueError{Key: key, Reason: "expected sequence", Err: err}
	}
	return ss, nil
}

// Bool returns the boolean value of key. Strings like "true"/"0" are accepted.
func (d Data) Bool(key string) (bool, error) {
	b, err := cast.ToBoolE(d[key])
	if err != nil {
		return false, &InvalidValueError{Key: key, Reason: "expected boolean", Err: err}
	}
	return b, nil
}

// present returns a copy without null-valued keys.
func (d Data) present() map[string]any {
	out := make(map[string]any, len(d))
	for k, v := range d {
		if v == nil {
			continue
		}
		out[k] = v
	}
	return out
}
