// Package handlers provides HTTP response utilities for JSON APIs.
// Failures are classified once, here, and written as the error envelope.
package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/JaimeStill/market-api/pkg/failure"
	"github.com/docker/go-units"
)

// MessageMalformedJSON is the 400 message for a request body that is not valid JSON.
const MessageMalformedJSON = "Malformed JSON request body."

// ErrorFunc writes err as a classified JSON error response.
type ErrorFunc func(w http.ResponseWriter, r *http.Request, err error)

// RespondJSON writes a JSON response with the given status code and data.
// It sets the Content-Type header to application/json.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// RespondData writes data wrapped as {"data": data}.
func RespondData(w http.ResponseWriter, status int, data any) {
	RespondJSON(w, status, map[string]any{"data": data})
}

// RespondError reports err, classifies it, and writes the error envelope.
// With debug set, an unclassified error is written as a 500 diagnostic
// carrying the exception type and message instead of the masked body.
func RespondError(w http.ResponseWriter, r *http.Request, logger *slog.Logger, debug bool, err error) {
	failure.Report(r.Context(), logger, err)

	resp, unhandled := failure.Classify(err, debug)
	if unhandled != nil {
		RespondJSON(w, http.StatusInternalServerError, failure.Diagnose(unhandled))
		return
	}

	RespondJSON(w, resp.Status(), resp)
}

// Errors binds logger and debug into an ErrorFunc.
func Errors(logger *slog.Logger, debug bool) ErrorFunc {
	return func(w http.ResponseWriter, r *http.Request, err error) {
		RespondError(w, r, logger, debug, err)
	}
}

// DecodeJSON decodes the request body into v. An oversized body becomes a
// 413 failure.HTTPError and an unreadable body a 400 failure.HTTPError.
func DecodeJSON(r *http.Request, v any) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil {
		return nil
	}

	var maxErr *http.MaxBytesError
	if errors.As(err, &maxErr) {
		return &failure.HTTPError{
			Status: http.StatusRequestEntityTooLarge,
			Message: fmt.Sprintf(
				"The request body may not be larger than %s.",
				units.HumanSize(float64(maxErr.Limit)),
			),
		}
	}

	var syntaxErr *json.SyntaxError
	var typeErr *json.UnmarshalTypeError
	switch {
	case errors.Is(err, io.EOF),
		errors.Is(err, io.ErrUnexpectedEOF),
		errors.As(err, &syntaxErr),
		errors.As(err, &typeErr):
		return &failure.HTTPError{Status: http.StatusBadRequest, Message: MessageMalformedJSON}
	}

	return fmt.Errorf("decode request body: %w", err)
}
