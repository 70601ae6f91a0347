package models

import (
	"bytes"
	"encoding/json"
	"errors"
)

// ErrWrongType is returned when a payload field is present with an unexpected JSON type.
var ErrWrongType = errors.New("wrong field type")

// Payload is a decoded JSON object whose fields are type-checked lazily, so that
// presence and type can be validated per field without coercion.
type Payload map[string]json.RawMessage

// Has reports whether the key is present, including an explicit null.
func (p Payload) Has(key string) bool {
	_, ok := p[key]
	return ok
}

// IsNull reports whether the key is present with a JSON null value.
func (p Payload) IsNull(key string) bool {
	raw, ok := p[key]
	return ok && isNull(raw)
}

// String returns the string value of key.
func (p Payload) String(key string) (string, error) {
	raw, ok := p[key]
	if !ok || isNull(raw) {
		return "", ErrWrongType
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", ErrWrongType
	}
	return s, nil
}

// Bool returns the value of key only if it is a JSON true or false literal.
func (p Payload) Bool(key string) (bool, error) {
	raw, ok := p[key]
	if !ok || isNull(raw) {
		return false, ErrWrongType
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err != nil {
		return false, ErrWrongType
	}
	return b, nil
}

// Int returns the value of key only if it is a JSON integer number.
func (p Payload) Int(key string) (int64, error) {
	raw, ok := p[key]
	if !ok {
		return 0, ErrWrongType
	}
	n, ok := ParseInt(raw)
	if !ok {
		return 0, ErrWrongType
	}
	return n, nil
}

// List returns the elements of key only if it is a JSON array.
func (p Payload) List(key string) ([]json.RawMessage, error) {
	raw, ok := p[key]
	if !ok || isNull(raw) {
		return nil, ErrWrongType
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, ErrWrongType
	}
	return items, nil
}

// ParseInt decodes a raw JSON value as an integer.
func ParseInt(raw json.RawMessage) (int64, bool) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return 0, false
	}
	num, ok := v.(json.Number)
	if !ok {
		return 0, false
	}
	n, err := num.Int64()
	if err != nil {
		return 0, false
	}
	return n, true
}

func isNull(raw json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(raw), []byte("null"))
}
