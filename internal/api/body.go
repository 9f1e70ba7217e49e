package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

var ErrInvalidBody = errors.New("invalid JSON body")

// Body holds the raw fields of a JSON object body, so handlers can tell
// an absent field from a zero value.
type Body map[string]json.RawMessage

// DecodeBody reads a JSON object from the request into dst and returns the
// fields that were sent. Unknown fields are ignored.
func DecodeBody(r *http.Request, dst any) (Body, error) {
	if r.Body == nil {
		return nil, ErrInvalidBody
	}
	raw, err := io.ReadAll(r.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, ErrInvalidBody
	}

	var body Body
	if err := json.Unmarshal(raw, &body); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}
	if body == nil {
		// literal null
		return nil, ErrInvalidBody
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBody, err)
	}

	return body, nil
}

// Has reports whether the field was sent, null included.
func (b Body) Has(field string) bool {
	_, ok := b[field]
	return ok
}

// Missing returns the first field that is absent or null, or "".
func (b Body) Missing(fields ...string) string {
	for _, f := range fields {
		v, ok := b[f]
		if !ok || bytes.Equal(bytes.TrimSpace(v), []byte("null")) {
			return f
		}
	}
	return ""
}

// HasAny reports whether at least one of fields was sent.
func (b Body) HasAny(fields ...string) bool {
	for _, f := range fields {
		if b.Has(f) {
			return true
		}
	}
	return false
}
