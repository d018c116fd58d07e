// Package json contains utilities for handling JSON.
package json

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

var ErrTrailingData = errors.New("unexpected data after JSON object")

// Decode decodes a single JSON object from r into dst. Unknown fields and
// anything after the object are rejected.
func Decode(r io.Reader, dst any) error {
	decoder := json.NewDecoder(r)
	decoder.DisallowUnknownFields()
	return DecodeJSON(dst, decoder)
}

// DecodeJSON decodes a JSON object.
func DecodeJSON(dst any, decoder *json.Decoder) error {
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("decoding json: %w", err)
	}

	if _, err := decoder.Token(); !errors.Is(err, io.EOF) {
		return ErrTrailingData
	}
	return nil
}
