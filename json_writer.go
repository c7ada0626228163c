package czkcurve

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// jsonObjectWriter helps construct a JSON object with a specific field order.
// Its zero value is ready to use.
//
// encoding/json marshals maps with sorted keys; the quant export promises
// its consumers a stable, documented field order instead, hence this writer.
type jsonObjectWriter struct {
	bytes.Buffer
	err error
}

// Field appends a `"name": value` member, marshaling the value with
// encoding/json. Errors are sticky and reported by Close.
func (w *jsonObjectWriter) Field(name string, v any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	raw, err := json.Marshal(v)
	if err != nil {
		w.err = fmt.Errorf("failed to marshal field %q: %w", name, err)
		return w
	}
	return w.FieldRaw(name, raw)
}

// FieldRaw appends a `"name": value` member from pre-marshaled JSON.
func (w *jsonObjectWriter) FieldRaw(name string, raw []byte) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	if w.Len() > 0 {
		w.WriteString(",")
	}
	key, err := json.Marshal(name)
	if err != nil {
		w.err = fmt.Errorf("failed to marshal field name %q: %w", name, err)
		return w
	}
	w.Write(key)
	w.WriteString(":")
	w.Write(bytes.TrimSpace(raw))
	return w
}

// Close returns the completed JSON object.
func (w *jsonObjectWriter) Close() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	var out bytes.Buffer
	out.WriteString("{")
	out.Write(w.Bytes())
	out.WriteString("}")
	return out.Bytes(), nil
}
