package handlers_test_suite

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	api "github.com/rpaiva/warehouse-tracker/internal/http"
	handler "github.com/rpaiva/warehouse-tracker/internal/http/handlers"
	"github.com/rpaiva/warehouse-tracker/internal/models"
)

func TestGetMovementsHandler(t *testing.T) {
	t.Cleanup(resetRepos)
	r := api.NewRouter()

	w := doGet(r, "/movements")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}

	var movements []handler.MovementResponse
	if err := json.NewDecoder(w.Body).Decode(&movements); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if len(movements) != 7 {
		t.Fatalf("expected the 7 seeded movements, got %d", len(movements))
	}
	if movements[0].ID != "1" {
		t.Errorf("expected ledger order preserved, first movement id %v", movements[0].ID)
	}
}

func TestGetMovementsHandler_NewestFirst(t *testing.T) {
	t.Cleanup(resetRepos)
	r := api.NewRouter()

	// record a change so there is a strictly newer entry
	w := adjustProduct(r, "1", handler.AdjustmentRequest{Type: models.MovementAdd, Quantity: 3})
	if w.Code != http.StatusOK {
		t.Fatalf("adjust failed with %d: %s", w.Code, w.Body.String())
	}

	w = doGet(r, "/movements?order=newest")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d", w.Code)
	}
	var movements []handler.MovementResponse
	if err := json.NewDecoder(w.Body).Decode(&movements); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	for i := 1; i < len(movements); i++ {
		if movements[i-1].Date < movements[i].Date {
			t.Fatalf("movements not sorted newest first at index %d", i)
		}
	}
}

func TestAdjustStockHandler_Add(t *testing.T) {
	t.Cleanup(resetRepos)
	r := api.NewRouter()

	w := adjustProduct(r, "1", handler.AdjustmentRequest{Type: models.MovementAdd, Quantity: 10, Notes: "Compra de chapas"})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}

	var resp handler.AdjustmentResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Product.Quantity != 30 {
		t.Errorf("expected quantity 30, got %d", resp.Product.Quantity)
	}
	if resp.Movement.Type != models.MovementAdd || resp.Movement.Quantity != 10 {
		t.Errorf("unexpected movement %+v", resp.Movement)
	}
	if resp.Movement.Notes != "Compra de chapas" {
		t.Errorf("expected notes kept, got %q", resp.Movement.Notes)
	}
	if resp.Message != "Added 10 MDF 15mm Branco to inventory" {
		t.Errorf("unexpected message %q", resp.Message)
	}
}

func TestAdjustStockHandler_RemoveDefaultNotes(t *testing.T) {
	t.Cleanup(resetRepos)
	r := api.NewRouter()

	w := adjustProduct(r, "1", handler.AdjustmentRequest{Type: models.MovementRemove, Quantity: 2})
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200 OK, got %d: %s", w.Code, w.Body.String())
	}

	var resp handler.AdjustmentResult
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("error decoding response: %v", err)
	}
	if resp.Product.Quantity != 18 {
		t.Errorf("expected quantity 18, got %d", resp.Product.Quantity)
	}
	if resp.Movement.Notes != "Stock removal" {
		t.Errorf("expected default note, got %q", resp.Movement.Notes)
	}
	if resp.Message != "Removed 2 MDF 15mm Branco from inventory" {
		t.Errorf("unexpected message %q", resp.Message)
	}
}

func TestAdjustStockHandler_InsufficientStock(t *testing.T) {
	t.Cleanup(resetRepos)
	r := api.NewRouter()

	// product 17 is seeded with quantity 2
	w := adjustProduct(r, "17", handler.AdjustmentRequest{Type: models.MovementRemove, Quantity: 3})
	if w.Code != http.StatusConflict {
		t.Fatalf("expected 409 Conflict, got %d", w.Code)
	}
	if !strings.Contains(w.Body.String(), "only 2 available") {
		t.Errorf("expected available quantity in message, got %q", w.Body.String())
	}

	// nothing changed
	var product handler.ProductResponse
	json.NewDecoder(doGet(r, "/products/17").Body).Decode(&product)
	if product.Quantity != 2 {
		t.Errorf("quantity changed by failed removal: %d", product.Quantity)
	}
	var movements []handler.MovementResponse
	json.NewDecoder(doGet(r, "/movements").Body).Decode(&movements)
	if len(movements) != 7 {
		t.Errorf("ledger changed by failed removal: %d movements", len(movements))
	}
}

func TestAdjustStockHandler_Validation(t *testing.T) {
	t.Cleanup(resetRepos)
	r := api.NewRouter()

	tests := []struct {
		name    string
		payload handler.AdjustmentRequest
		field   string
	}{
		{"Unknown type", handler.AdjustmentRequest{Type: "TRANSFER", Quantity: 1}, "Type"},
		{"Zero quantity", handler.AdjustmentRequest{Type: models.MovementAdd, Quantity: 0}, "Quantity"},
		{"Line break in notes", handler.AdjustmentRequest{Type: models.MovementAdd, Quantity: 1, Notes: "a\nb"}, "Notes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := adjustProduct(r, "1", tt.payload)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", w.Code)
			}
			var resp []handler.ProductValidationError
			if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
				t.Fatalf("error decoding response: %v", err)
			}
			found := false
			for _, e := range resp {
				if e.Field == tt.field {
					found = true
				}
			}
			if !found {
				t.Errorf("expected validation error for %q, got %+v", tt.field, resp)
			}
		})
	}
}

func TestAdjustStockHandler_NotFound(t *testing.T) {
	t.Cleanup(resetRepos)
	r := api.NewRouter()

	w := adjustProduct(r, "999999", handler.AdjustmentRequest{Type: models.MovementAdd, Quantity: 1})
	if w.Code != http.StatusNotFound {
		t.Errorf("expected 404 Not Found, got %d", w.Code)
	}
}
