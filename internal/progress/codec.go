package progress

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// FormatVersion is the envelope version written by Encode.
const FormatVersion = 1

// envelope is the versioned on-storage shape.
type envelope struct {
	Version  int    `json:"version"`
	Statuses Record `json:"statuses"`
}

// recordSchema accepts either the versioned envelope or the legacy bare
// mapping of id to status literal.
const recordSchema = `{
	"$defs": {
		"statuses": {
			"type": "object",
			"additionalProperties": {
				"enum": ["locked", "not-started", "in-progress", "completed"]
			}
		}
	},
	"anyOf": [
		{
			"type": "object",
			"required": ["version", "statuses"],
			"properties": {
				"version": {"type": "integer", "minimum": 1},
				"statuses": {"$ref": "#/$defs/statuses"}
			},
			"additionalProperties": false
		},
		{"$ref": "#/$defs/statuses"}
	]
}`

const schemaURL = "schema://progress-record.json"

var (
	compiledOnce sync.Once
	compiled     *jsonschema.Schema
	compileErr   error
)

// recordValidator compiles the schema on first use.
func recordValidator() (*jsonschema.Schema, error) {
	compiledOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(recordSchema), &def); err != nil {
			compileErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}
		c := jsonschema.NewCompiler()
		if err := c.AddResource(schemaURL, def); err != nil {
			compileErr = fmt.Errorf("add resource: %w", err)
			return
		}
		compiled, compileErr = c.Compile(schemaURL)
	})
	return compiled, compileErr
}

// Encode serializes r into the versioned envelope.
func Encode(r Record) (string, error) {
	if r == nil {
		r = Record{}
	}
	for id, s := range r {
		if !s.Valid() {
			return "", fmt.Errorf("encode %q: %w: %q", id, ErrInvalidStatus, s)
		}
	}
	b, err := json.Marshal(envelope{Version: FormatVersion, Statuses: r})
	if err != nil {
		return "", fmt.Errorf("marshal record: %w", err)
	}
	return string(b), nil
}

// ErrUnsupportedVersion is reported when stored data was written by a newer format.
var ErrUnsupportedVersion = errors.New("unsupported progress format version")

// DecodeResult is the outcome of decoding a stored value. Exactly one of
// Record (with Err nil) or Err is meaningful.
type DecodeResult struct {
	Record Record
	// Legacy is true when the value used the unversioned bare-mapping shape.
	Legacy bool
	Err    error
}

// OK reports whether decoding succeeded.
func (d DecodeResult) OK() bool {
	return d.Err == nil
}

func decodeFailure(err error) DecodeResult {
	return DecodeResult{Err: err}
}

// Decode parses a stored value in either the versioned or legacy shape.
// It never panics; every problem comes back in DecodeResult.Err.
func Decode(raw string) DecodeResult {
	var parsed any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return decodeFailure(fmt.Errorf("invalid JSON: %w", err))
	}

	validator, err := recordValidator()
	if err != nil {
		return decodeFailure(fmt.Errorf("compile schema: %w", err))
	}
	if err := validator.Validate(parsed); err != nil {
		return decodeFailure(fmt.Errorf("schema validation failed: %w", err))
	}

	obj := parsed.(map[string]any)
	if v, ok := obj["version"].(float64); ok {
		if int(v) > FormatVersion {
			return decodeFailure(fmt.Errorf("%w: %d", ErrUnsupportedVersion, int(v)))
		}
		var env envelope
		if err := json.Unmarshal([]byte(raw), &env); err != nil {
			return decodeFailure(fmt.Errorf("unmarshal envelope: %w", err))
		}
		if env.Statuses == nil {
			env.Statuses = Record{}
		}
		return DecodeResult{Record: env.Statuses}
	}

	var legacy Record
	if err := json.Unmarshal([]byte(raw), &legacy); err != nil {
		return decodeFailure(fmt.Errorf("unmarshal legacy record: %w", err))
	}
	if legacy == nil {
		legacy = Record{}
	}
	return DecodeResult{Record: legacy, Legacy: true}
}
