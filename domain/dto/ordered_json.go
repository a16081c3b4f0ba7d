package dto

import (
	"bytes"
	"encoding/json"
)

// MarshalOrdered writes rows as an indented JSON array whose object keys
// follow the schema's field order.
func (s *TableSchema) MarshalOrdered(rows []map[string]any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("[")
	for i, row := range rows {
		if i > 0 {
			buf.WriteString(",")
		}
		buf.WriteString("\n  {")
		first := true
		for _, f := range s.Fields {
			v, ok := row[f.Public]
			if !ok {
				continue
			}
			val, err := json.Marshal(v)
			if err != nil {
				return nil, err
			}
			key, _ := json.Marshal(f.Public)
			if !first {
				buf.WriteString(",")
			}
			first = false
			buf.WriteString("\n    ")
			buf.Write(key)
			buf.WriteString(": ")
			buf.Write(val)
		}
		buf.WriteString("\n  }")
	}
	if len(rows) > 0 {
		buf.WriteString("\n")
	}
	buf.WriteString("]")
	return buf.Bytes(), nil
}

// ExampleRecord builds the sample import record from field examples.
func (s *TableSchema) ExampleRecord() map[string]any {
	out := make(map[string]any, len(s.Fields))
	for _, f := range s.Fields {
		if f.ExportOnly {
			continue
		}
		out[f.Public] = f.Example
	}
	return out
}
