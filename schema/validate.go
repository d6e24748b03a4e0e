package schema

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

// schemaURL names the embedded schema document inside the compiler.
const schemaURL = "temperament.schema.json"

var (
	compileOnce sync.Once
	compiled    *jsonschema.Schema
	compileErr  error
)

// descriptorSchema compiles the embedded JSON Schema once.
func descriptorSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiled, compileErr = jsonschema.CompileString(schemaURL, string(jsonSchema))
	})
	return compiled, compileErr
}

// Validate checks the constraints a Descriptor must satisfy before its
// offsets can be resolved.
//
// The document form of d is validated against JSONSchema(): required
// properties, non-empty names, referencePitch > 0, at least one note and
// [base, cents] pairs. Non-finite numbers have no JSON form and are
// reported first, together.
//
// All violations wrap ErrInvalidDescriptor.
func Validate(d *Descriptor) error {
	if d == nil {
		return fmt.Errorf("%w: descriptor is nil", ErrInvalidDescriptor)
	}

	var problems []string
	if !finite(d.ReferencePitch) {
		problems = append(problems, fmt.Sprintf("referencePitch must be finite, got %v", d.ReferencePitch))
	}
	names := make([]string, 0, len(d.Notes))
	for name := range d.Notes {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if !finite(d.Notes[name].Cents) {
			problems = append(problems, fmt.Sprintf("notes[%q] offset must be finite", name))
		}
	}
	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidDescriptor, strings.Join(problems, "; "))
	}

	data, err := json.Marshal(d)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDescriptor, err)
	}
	raw, err := decodeRaw(data)
	if err != nil {
		return wrapDecodeError(err)
	}
	return validateRaw(raw)
}

// validateRaw validates a generic JSON value (as produced by decodeRaw)
// against the embedded schema.
func validateRaw(v interface{}) error {
	sch, err := descriptorSchema()
	if err != nil {
		return fmt.Errorf("schema: compiling JSON Schema: %w", err)
	}
	err = sch.Validate(v)
	if err == nil {
		return nil
	}
	var ve *jsonschema.ValidationError
	if !errors.As(err, &ve) {
		return fmt.Errorf("%w: %v", ErrInvalidDescriptor, err)
	}
	return fmt.Errorf("%w: %s", ErrInvalidDescriptor, strings.Join(leafMessages(ve, nil), "; "))
}

// leafMessages flattens a validation error tree into "location: message"
// lines, one per failing leaf keyword.
func leafMessages(ve *jsonschema.ValidationError, out []string) []string {
	if len(ve.Causes) == 0 {
		loc := ve.InstanceLocation
		if loc == "" {
			loc = "/"
		}
		return append(out, loc+": "+ve.Message)
	}
	for _, c := range ve.Causes {
		out = leafMessages(c, out)
	}
	return out
}

// decodeRaw parses JSON into generic values, keeping numbers as
// json.Number so that 4 and 4.0 are both integers to the validator.
func decodeRaw(data []byte) (interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	return v, nil
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}

// Clone returns a deep copy of d.
func (d *Descriptor) Clone() *Descriptor {
	cp := *d
	cp.Notes = make(map[string]NoteDefinition, len(d.Notes))
	for k, v := range d.Notes {
		cp.Notes[k] = v
	}
	return &cp
}
