package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"sort"

	"github.com/go-chi/chi/v5"
)

// AdjustStockHandler godoc
// @Summary Add or remove stock for a product
// @Description Applies the change and records the paired movement in one commit.
// @Tags inventory
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param adjustment body AdjustmentRequest true "Stock change"
// @Success 200 {object} AdjustmentResult
// @Failure 400 {array} ProductValidationError
// @Failure 404 {string} string "Not found"
// @Failure 409 {string} string "Not enough stock"
// @Router /products/{id}/adjust [post]
// @Security BearerAuth
func AdjustStockHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req AdjustmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	validationErrors := validateAdjustment(req)
	if len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	product, movement, err := inventorySvc.ApplyStockChange(r.Context(), id, req.Type, req.Quantity, req.Notes)
	if writeStoreError(w, err) {
		return
	}

	verb := "Added"
	preposition := "to"
	if movement.Type == "REMOVE" {
		verb = "Removed"
		preposition = "from"
	}
	log.Info().
		Str("product_id", product.ID).
		Str("type", movement.Type).
		Int("quantity", movement.Quantity).
		Str("user", GetUsername(r)).
		Msg("stock adjusted")

	writeJSON(w, http.StatusOK, AdjustmentResult{
		Product:  toProductResponse(product),
		Movement: toMovementResponse(movement),
		Message:  fmt.Sprintf("%s %d %s %s inventory", verb, movement.Quantity, product.Name, preposition),
	})
}

// GetMovementsHandler godoc
// @Summary List the movement history
// @Tags movements
// @Produce json
// @Param order query string false "Sort order (newest|oldest, default oldest)"
// @Success 200 {array} MovementResponse
// @Failure 500 {string} string "Internal error"
// @Router /movements [get]
func GetMovementsHandler(w http.ResponseWriter, r *http.Request) {
	movements, err := movementRepo.GetAll()
	if writeStoreError(w, err) {
		return
	}

	if r.URL.Query().Get("order") == "newest" {
		sort.SliceStable(movements, func(i, j int) bool {
			return movements[i].Date > movements[j].Date
		})
	}

	response := make([]MovementResponse, len(movements))
	for i, m := range movements {
		response[i] = toMovementResponse(m)
	}
	writeJSON(w, http.StatusOK, response)
}
