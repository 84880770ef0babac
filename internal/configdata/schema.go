// internal/configdata/schema.go
package configdata

import (
	"bytes"
	"embed"
	"errors"
	"fmt"
	"strings"
	"sync"

	json "github.com/goccy/go-json"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schema/configdata.schema.json
var schemaFS embed.FS

const schemaURL = "mem://schemas/configdata.schema.json"

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

func getSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		data, err := schemaFS.ReadFile("schema/configdata.schema.json")
		if err != nil {
			compileErr = fmt.Errorf("read schema: %w", err)
			return
		}
		doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
		if err != nil {
			compileErr = fmt.Errorf("decode schema: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, doc); err != nil {
			compileErr = fmt.Errorf("register schema: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// Validate checks value shapes and ranges of the known keys.
// Presence of required keys is not checked here; generators own that.
// Unknown keys are accepted.
func Validate(d Data) error {
	sch, err := getSchema()
	if err != nil {
		return fmt.Errorf("configdata: %w", err)
	}

	// Round-trip through JSON so Go-typed values ([]string, int) become
	// the generic shapes the validator expects.
	raw, err := json.Marshal(d.present())
	if err != nil {
		return &InvalidValueError{Reason: "not representable as JSON", Err: err}
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return &InvalidValueError{Reason: "not representable as JSON", Err: err}
	}

	if err := sch.Validate(inst); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			leaf := firstLeaf(ve)
			return &InvalidValueError{
				Key:    strings.Join(leaf.InstanceLocation, "/"),
				Reason: leaf.Error(),
				Err:    err,
			}
		}
		return &InvalidValueError{Reason: err.Error(), Err: err}
	}
	return nil
}

func firstLeaf(ve *jsonschema.ValidationError) *jsonschema.ValidationError {
	for len(ve.Causes) > 0 {
		ve = ve.Causes[0]
	}
	return ve
}
