package router

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/GustavoCaso/zerobudget/internal/interchange"
	"github.com/GustavoCaso/zerobudget/internal/storage"
	"github.com/GustavoCaso/zerobudget/internal/validator"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(data)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

// statusFor maps ledger errors to HTTP status codes.
func statusFor(err error) int {
	var (
		validationErr *validator.ValidationError
		mismatchErr   *interchange.SchemaMismatchError
		rowErr        *interchange.RowError
		unknownErr    *storage.UnknownTableError
		formatErr     *interchange.UnsupportedFormatError
	)

	switch {
	case errors.As(err, &validationErr), errors.As(err, &mismatchErr), errors.As(err, &rowErr):
		return http.StatusUnprocessableEntity
	case errors.As(err, &unknownErr):
		return http.StatusNotFound
	case errors.As(err, &formatErr):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (r *router) fail(w http.ResponseWriter, req *http.Request, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		r.logger.Error("Request failed", "path", req.URL.Path, "error", err)
	}
	writeError(w, status, err)
}
