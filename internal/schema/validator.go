// Package schema validates catalog record files against embedded CUE schemas
// before they are mapped into entities. Validation catches shape problems
// (wrong types, out-of-range values, missing names) early, with file-level
// messages; physically absent fields are legal and pass through untouched.
package schema

import (
	"embed"
	"fmt"
	"path/filepath"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	yamlv3 "gopkg.in/yaml.v3"
)

//go:embed schemas/*.cue
var schemaFS embed.FS

// ValidationError represents a schema validation error
type ValidationError struct {
	File     string
	Message  string
	Severity string // error, warning
	Line     int
	Column   int
}

// Validator handles CUE validation
type Validator struct {
	ctx     *cue.Context
	schemas map[string]cue.Value
}

// NewValidator creates a new Validator instance
func NewValidator() *Validator {
	return &Validator{
		ctx:     cuecontext.New(),
		schemas: make(map[string]cue.Value),
	}
}

// LoadSchemas loads all CUE schema files from the embedded filesystem
func (v *Validator) LoadSchemas() error {
	entries, err := schemaFS.ReadDir("schemas")
	if err != nil {
		return fmt.Errorf("could not read embedded schemas: %w", err)
	}

	// Load each .cue file
	for _, entry := range entries {
		if !entry.IsDir() && filepath.Ext(entry.Name()) == ".cue" {
			content, err := schemaFS.ReadFile(filepath.Join("schemas", entry.Name()))
			if err != nil {
				continue
			}

			// Compile the CUE schema
			inst := v.ctx.CompileBytes(content, cue.Filename(entry.Name()))
			if instErr := inst.Err(); instErr != nil {
				continue
			}

			// agent.cue -> agent
			schemaName := entry.Name()[:len(entry.Name())-4]
			v.schemas[schemaName] = inst.Value()
		}
	}

	if len(v.schemas) == 0 {
		return fmt.Errorf("no CUE schemas loaded")
	}

	return nil
}

// ValidateSystem validates parsed system record data against the system schema
func (v *Validator) ValidateSystem(data map[string]any) ([]ValidationError, error) {
	schema, ok := v.schemas["system"]
	if !ok {
		// Schema not loaded; skip validation rather than fail the run
		return nil, nil
	}
	return v.validateAgainstSchema(schema, data, "system")
}

// ValidateWeights validates the scoring section of a configuration file
func (v *Validator) ValidateWeights(data map[string]any) ([]ValidationError, error) {
	schema, ok := v.schemas["weights"]
	if !ok {
		return nil, nil
	}
	return v.validateAgainstSchema(schema, data, "weights")
}

// validateAgainstSchema validates data against a CUE schema
func (v *Validator) validateAgainstSchema(schema cue.Value, data map[string]any, schemaType string) ([]ValidationError, error) {
	dataValue := v.ctx.Encode(data)
	if encErr := dataValue.Err(); encErr != nil {
		return nil, fmt.Errorf("error encoding data: %w", encErr)
	}

	// Extract the #System, #Weights, etc. definition from the schema
	defPath := cue.ParsePath(fmt.Sprintf("#%s", strings.ToUpper(schemaType[:1])+schemaType[1:]))

	def := schema.LookupPath(defPath)
	if !def.Exists() {
		// Schema definition not found; nothing to check against
		return nil, nil
	}

	// Unify checks whether the data and the schema can be true simultaneously
	unified := def.Unify(dataValue)
	if err := unified.Err(); err != nil {
		return v.extractErrorsFromCUE(err), nil
	}

	// Concreteness ensures required fields are present
	if err := unified.Validate(cue.Concrete(true)); err != nil {
		return v.extractErrorsFromCUE(err), nil
	}

	return nil, nil
}

// extractErrorsFromCUE extracts user-friendly validation errors from CUE errors
func (v *Validator) extractErrorsFromCUE(err error) []ValidationError {
	return []ValidationError{{
		Message:  fmt.Sprintf("Schema validation failed: %v", err),
		Severity: "error",
	}}
}

// ValidateRecord parses a YAML system record and validates it. The parsed
// data is returned alongside any validation errors so the caller can map it
// into entities without re-reading the file.
func (v *Validator) ValidateRecord(path string, content []byte) (map[string]any, []ValidationError, error) {
	var data map[string]any
	if err := yamlv3.Unmarshal(content, &data); err != nil {
		return nil, []ValidationError{{
			File:     path,
			Message:  fmt.Sprintf("invalid YAML: %v", err),
			Severity: "error",
		}}, nil
	}

	errs, err := v.ValidateSystem(data)
	if err != nil {
		return nil, nil, err
	}
	for i := range errs {
		errs[i].File = path
	}
	return data, errs, nil
}
