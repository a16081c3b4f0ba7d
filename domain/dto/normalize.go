package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
)

// DecodeJSON decodes with UseNumber and normalizes numbers in the result,
// so integer ids survive as int64 instead of float64.
func DecodeJSON(data []byte, v any) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(v); err != nil {
		return err
	}
	if _, err := dec.Token(); err != io.EOF {
		return fmt.Errorf("unexpected data after JSON value")
	}
	return nil
}

// DecodeRecords parses an import payload. It must be a JSON array; elements
// that are not objects come back as nil so the caller can count them.
func DecodeRecords(data []byte) ([]map[string]any, error) {
	var raw any
	if err := DecodeJSON(data, &raw); err != nil {
		return nil, err
	}
	list, ok := raw.([]any)
	if !ok {
		return nil, fmt.Errorf("le JSON doit être un tableau d'objets")
	}
	out := make([]map[string]any, len(list))
	for i, e := range list {
		if obj, ok := e.(map[string]any); ok {
			out[i] = NormalizeRecord(obj)
		}
	}
	return out, nil
}

// NormalizeRecord applies NormalizeValue to every field.
func NormalizeRecord(m map[string]any) map[string]any {
	if m == nil {
		return nil
	}
	out := make(map[string]any, len(m))
	for k, v := range m {
		out[k] = NormalizeValue(v)
	}
	return out
}

// NormalizeValue turns json.Number into int64 when integral, otherwise float64.
func NormalizeValue(v any) any {
	switch t := v.(type) {
	case json.Number:
		if n, err := t.Int64(); err == nil {
			return n
		}
		if f, err := t.Float64(); err == nil {
			return f
		}
		return t.String()
	case []any:
		out := make([]any, len(t))
		for i, e := range t {
			out[i] = NormalizeValue(e)
		}
		return out
	case map[string]any:
		return NormalizeRecord(t)
	}
	return v
}
