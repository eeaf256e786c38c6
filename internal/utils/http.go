package utils

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
)

// ErrEmptyBody is returned by [DecodeJSON] when the body is absent or the
// JSON literal null.
var ErrEmptyBody = errors.New("request body is empty")

// ErrMalformedBody is returned by [DecodeJSON] when the body is not valid
// JSON for the target type.
var ErrMalformedBody = errors.New("request body is malformed")

// WriteJSON serializes the given data to JSON and writes it to the HTTP response.
//
// It sets the "Content-Type" header to "application/json" and writes
// the provided HTTP status code before sending the response body.
//
// If marshaling fails, it responds with 500 Internal Server Error
// and returns a wrapped error.
//
// Example usage:
//
//	WriteJSON(w, response, http.StatusOK)
//	WriteJSON(w, models.NewErrorSyncResponse(msg), http.StatusInternalServerError)
func WriteJSON(w http.ResponseWriter, data any, statusCode int) (int, error) {
	jsonData, err := json.Marshal(data)
	if err != nil {
		http.Error(w, "error writing data to JSON", http.StatusInternalServerError)
		return 0, fmt.Errorf("error writing data to JSON: %w", err)
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)

	return w.Write(jsonData)
}

// DecodeJSON decodes one JSON value of type T from r.
//
// The value is decoded through a pointer, so an empty body and a literal
// null are told apart from a zero value and reported as [ErrEmptyBody].
// Syntax and type errors are reported as [ErrMalformedBody].
func DecodeJSON[T any](r io.Reader) (T, error) {
	var zero T
	var value *T

	if err := json.NewDecoder(r).Decode(&value); err != nil {
		if errors.Is(err, io.EOF) {
			return zero, ErrEmptyBody
		}
		return zero, fmt.Errorf("%w: %w", ErrMalformedBody, err)
	}
	if value == nil {
		return zero, ErrEmptyBody
	}

	return *value, nil
}
