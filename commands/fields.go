// Package commands contains the commands for the application built from request inputs.
package commands

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// ErrNotObject is returned when a request body is valid JSON but not an object.
var ErrNotObject = errors.New("request body must be a JSON object")

// ErrTrailingData is returned when anything but whitespace follows the object.
var ErrTrailingData = errors.New("request body must hold a single JSON value")

// Fields is the candidate field map of a request body. Keys that were not
// sent are absent; an explicit null is present with a nil value. Numbers are
// kept as json.Number so that integer checks see what the client sent.
type Fields map[string]any

// DecodeFields reads a JSON object from r. An empty body decodes to an empty
// map so that it reaches the "no updates" rule instead of a parse error.
func DecodeFields(r io.Reader) (Fields, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read request body: %w", err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return Fields{}, nil
	}
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("invalid request body: %w", err)
	}
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return nil, ErrTrailingData
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return nil, ErrNotObject
	}
	return Fields(obj), nil
}

// Has reports whether key was sent, including as an explicit null.
func (f Fields) Has(key string) bool {
	_, ok := f[key]
	return ok
}
