package worksheet

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// LoadFile reads a worksheet definition from a JSON file, validates it
// against the file schema and the structural rules, and returns it.
// The result is not registered; callers pass it to Register when they
// want it in the catalog.
func LoadFile(path string) (*Worksheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read worksheet file: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a worksheet definition from JSON bytes.
func Parse(data []byte) (*Worksheet, error) {
	var parsed any
	if err := json.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("parse worksheet JSON: %w", err)
	}

	schema, err := loadedSchema()
	if err != nil {
		return nil, err
	}
	if err := schema.Validate(parsed); err != nil {
		return nil, fmt.Errorf("worksheet schema validation: %w", err)
	}

	var ws Worksheet
	if err := json.Unmarshal(data, &ws); err != nil {
		return nil, fmt.Errorf("decode worksheet: %w", err)
	}
	if err := Validate(&ws); err != nil {
		return nil, err
	}
	return &ws, nil
}

// loadedSchema compiles the file schema once and caches it.
func loadedSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		// The compiler expects a parsed JSON value, so round-trip the
		// definition map through encoding/json first.
		defBytes, err := json.Marshal(fileSchema)
		if err != nil {
			compileErr = fmt.Errorf("marshal worksheet schema: %w", err)
			return
		}
		var defParsed any
		if err := json.Unmarshal(defBytes, &defParsed); err != nil {
			compileErr = fmt.Errorf("parse worksheet schema: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const url = "schema://worksheet.json"
		if err := c.AddResource(url, defParsed); err != nil {
			compileErr = fmt.Errorf("add schema resource: %w", err)
			return
		}
		compiledSchema, compileErr = c.Compile(url)
	})
	return compiledSchema, compileErr
}
