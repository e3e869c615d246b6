package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/rpaiva/warehouse-tracker/internal/repo"
)

// writeJSON takes a response status code and arbitrary data and writes a
// json response to the client.
func writeJSON(w http.ResponseWriter, status int, data any) error {
	out, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(out); err != nil {
		return fmt.Errorf("failed to write to response: %w", err)
	}
	return nil
}

// writeStoreError translates a repo/store error into the HTTP status and
// message the screens render. Returns false when err was nil.
func writeStoreError(w http.ResponseWriter, err error) bool {
	if err == nil {
		return false
	}

	var dup *repo.DuplicateNameError
	var stock *repo.InsufficientStockError
	var persist *repo.PersistenceError
	var encoding *repo.EncodingError

	switch {
	case errors.Is(err, repo.ErrProductNotFound):
		http.Error(w, "product not found", http.StatusNotFound)
	case errors.Is(err, repo.ErrInvalidQuantity):
		http.Error(w, "quantity must be greater than zero", http.StatusBadRequest)
	case errors.As(err, &dup):
		http.Error(w, dup.Error(), http.StatusConflict)
	case errors.As(err, &stock):
		http.Error(w, fmt.Sprintf("not enough stock, only %d available", stock.Available), http.StatusConflict)
	case errors.As(err, &persist):
		log.Error().Err(err).Msg("persistence failure")
		http.Error(w, "could not save data", http.StatusInternalServerError)
	case errors.As(err, &encoding):
		log.Error().Err(err).Msg("stored data is malformed")
		http.Error(w, "stored data is malformed", http.StatusInternalServerError)
	default:
		log.Error().Err(err).Msg("unexpected error")
		http.Error(w, "internal error", http.StatusInternalServerError)
	}
	return true
}
