// Package iojson writes command output as indented JSON documents.
package iojson

import (
	"encoding/json"
	"fmt"
	"io"
)

// Error is the JSON shape written when a command fails in JSON mode.
type Error struct {
	Message string         `json:"message"`
	Data    map[string]any `json:"data,omitempty"`
}

// WriteWith writes obj to w as one indented JSON document. Marshaling
// failures are reported as an Error document on ew.
func WriteWith(w io.Writer, ew io.Writer, obj any) error {
	bits, err := json.MarshalIndent(obj, "", "  ")
	if err != nil {
		return WriteErrorTo(ew, "marshal output", map[string]any{"json_error": err.Error()})
	}

	_, err = fmt.Fprintln(w, string(bits))
	return err
}

// WriteErrorTo writes an Error document to w.
func WriteErrorTo(w io.Writer, msg string, data map[string]any) error {
	bits, err := json.MarshalIndent(Error{Message: msg, Data: data}, "", "  ")
	if err != nil {
		bits, _ = json.Marshal(Error{Message: msg})
	}
	_, err = fmt.Fprintln(w, string(bits))
	return err
}
