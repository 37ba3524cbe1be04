// internal/app/system/httpjson/httpjson.go

// Package httpjson holds the JSON request/response conventions shared by
// every handler: a single error envelope for non-2xx responses and strict
// document decoding for create/patch bodies.
package httpjson

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
)

// ErrEmptyDocument is returned when a request body decodes to an empty object.
var ErrEmptyDocument = errors.New("request body must be a non-empty JSON object")

// Respond writes v as JSON with the given status code.
func Respond(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// Error writes the error envelope used on all non-2xx responses.
func Error(w http.ResponseWriter, status int, msg string) {
	Respond(w, status, map[string]string{"error": msg})
}

// Decode unmarshals the request body into dst, rejecting trailing garbage.
func Decode(r *http.Request, dst any) error {
	dec := json.NewDecoder(r.Body)
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	if dec.More() {
		return errors.New("invalid JSON body: unexpected trailing data")
	}
	return nil
}

// DecodeDocument reads the body as an opaque document destined for the
// store. The store assigns ids, so a client-supplied _id is rejected
// rather than silently honored.
func DecodeDocument(r *http.Request) (bson.M, error) {
	var doc bson.M
	if err := Decode(r, &doc); err != nil {
		return nil, err
	}
	if len(doc) == 0 {
		return nil, ErrEmptyDocument
	}
	if _, ok := doc["_id"]; ok {
		return nil, errors.New("_id is assigned by the server and cannot be supplied")
	}
	return doc, nil
}

// RequireStrings verifies that each named key is present in doc with a
// non-blank string value. The returned error names the first missing field.
func RequireStrings(doc bson.M, keys ...string) error {
	for _, k := range keys {
		v, ok := doc[k].(string)
		if !ok || strings.TrimSpace(v) == "" {
			return fmt.Errorf("missing required field %q", k)
		}
	}
	return nil
}
