package repo

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/rpaiva/warehouse-tracker/internal/csvtext"
	"github.com/rpaiva/warehouse-tracker/internal/store"
)

func newTestCatalog(t *testing.T) (*CSVCatalogRepository, *store.MemoryStore) {
	t.Helper()
	st := store.NewMemoryStore()
	r, err := NewCSVCatalogRepository(context.Background(), st)
	if err != nil {
		t.Fatalf("NewCSVCatalogRepository: %v", err)
	}
	return r, st
}

func TestCatalogSeedsDefaultsOnAbsentBlob(t *testing.T) {
	r, st := newTestCatalog(t)

	products, err := r.GetAll()
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(products) != 17 {
		t.Fatalf("expected 17 seeded products, got %d", len(products))
	}
	if products[0].Name != "MDF 15mm Branco" {
		t.Errorf("expected first seed product 'MDF 15mm Branco', got %q", products[0].Name)
	}

	text, ok, err := st.Get(context.Background(), store.ProductsKey)
	if err != nil || !ok {
		t.Fatalf("expected seeded blob persisted, ok=%v err=%v", ok, err)
	}
	decoded, err := csvtext.DecodeProducts(text)
	if err != nil {
		t.Fatalf("decode persisted blob: %v", err)
	}
	if len(decoded) != 17 {
		t.Errorf("persisted blob has %d products, want 17", len(decoded))
	}
}

func TestCatalogSeedsDefaultsOnEmptyBlob(t *testing.T) {
	st := store.NewMemoryStore()
	st.Set(context.Background(), store.ProductsKey, "")

	r, err := NewCSVCatalogRepository(context.Background(), st)
	if err != nil {
		t.Fatalf("NewCSVCatalogRepository: %v", err)
	}
	products, err := r.GetAll()
	if err != nil {
		t.Fatalf("GetAll: %v", err)
	}
	if len(products) != 17 {
		t.Fatalf("expected 17 seeded products for an empty blob, got %d", len(products))
	}

	text, _, _ := st.Get(context.Background(), store.ProductsKey)
	if text == "" {
		t.Errorf("expected seed written back over the empty blob")
	}
}

func TestCatalogLoadsExistingBlob(t *testing.T) {
	st := store.NewMemoryStore()
	st.Set(context.Background(), store.ProductsKey, "id,name,quantity,description,category,createdAt,updatedAt\n\"42\",\"Verniz fosco\",7,\"Lata 900ml\",\"Insumos Gerais\",\"2025-01-02T10:00:00Z\",\"2025-01-02T10:00:00Z\"")

	r, err := NewCSVCatalogRepository(context.Background(), st)
	if err != nil {
		t.Fatalf("NewCSVCatalogRepository: %v", err)
	}
	products, _ := r.GetAll()
	if len(products) != 1 || products[0].Name != "Verniz fosco" {
		t.Fatalf("expected the stored product, got %+v", products)
	}
}

func TestCatalogCreate(t *testing.T) {
	r, _ := newTestCatalog(t)

	created, err := r.Create(ProductInput{Name: "Verniz fosco", Quantity: 7, Description: "Lata 900ml", Category: "Insumos Gerais"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == "" || created.CreatedAt == "" || created.UpdatedAt == "" {
		t.Errorf("expected id and timestamps assigned, got %+v", created)
	}
	if created.Quantity != 7 {
		t.Errorf("expected quantity kept from draft, got %d", created.Quantity)
	}

	products, _ := r.GetAll()
	if len(products) != 18 {
		t.Errorf("expected 18 products after create, got %d", len(products))
	}
}

func TestCatalogCreateDuplicateNameCaseInsensitive(t *testing.T) {
	r, _ := newTestCatalog(t)

	_, err := r.Create(ProductInput{Name: "mdf 15mm branco", Quantity: 1})
	var dup *DuplicateNameError
	if !errors.As(err, &dup) {
		t.Fatalf("expected DuplicateNameError, got %v", err)
	}
	if dup.Name != "mdf 15mm branco" {
		t.Errorf("expected offending name in error, got %q", dup.Name)
	}
	if !strings.Contains(dup.Error(), "mdf 15mm branco") {
		t.Errorf("expected message to name the product, got %q", dup.Error())
	}

	products, _ := r.GetAll()
	if len(products) != 17 {
		t.Errorf("catalog modified by failed create: %d products", len(products))
	}
}

func TestCatalogUpdate(t *testing.T) {
	r, _ := newTestCatalog(t)

	updated, err := r.Update("1", ProductInput{Name: "MDF 15mm Branco TX", Quantity: 25, Description: "Chapa", Category: "Chapas"})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Name != "MDF 15mm Branco TX" || updated.Quantity != 25 {
		t.Errorf("update not applied: %+v", updated)
	}
	if updated.CreatedAt == "" {
		t.Errorf("expected CreatedAt preserved")
	}

	// renaming onto another product's name must fail
	_, err = r.Update("1", ProductInput{Name: "ESTOPA", Quantity: 25})
	var dup *DuplicateNameError
	if !errors.As(err, &dup) {
		t.Errorf("expected DuplicateNameError on rename collision, got %v", err)
	}

	// keeping its own name is not a collision
	if _, err := r.Update("1", ProductInput{Name: "mdf 15mm branco tx", Quantity: 25}); err != nil {
		t.Errorf("expected rename to own name allowed, got %v", err)
	}
}

func TestCatalogUpdateNotFound(t *testing.T) {
	r, _ := newTestCatalog(t)
	_, err := r.Update("999", ProductInput{Name: "X"})
	if !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound, got %v", err)
	}
}

func TestCatalogDelete(t *testing.T) {
	r, _ := newTestCatalog(t)

	if err := r.Delete("17"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := r.GetByID("17"); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected deleted product gone, got %v", err)
	}
	if err := r.Delete("17"); !errors.Is(err, ErrProductNotFound) {
		t.Errorf("expected ErrProductNotFound on second delete, got %v", err)
	}
}

func TestCatalogAdjustQuantity(t *testing.T) {
	r, _ := newTestCatalog(t)

	p, err := r.AdjustQuantity("1", 5)
	if err != nil {
		t.Fatalf("AdjustQuantity: %v", err)
	}
	if p.Quantity != 25 {
		t.Errorf("expected quantity 25, got %d", p.Quantity)
	}

	p, err = r.AdjustQuantity("1", -25)
	if err != nil {
		t.Fatalf("AdjustQuantity: %v", err)
	}
	if p.Quantity != 0 {
		t.Errorf("expected quantity 0, got %d", p.Quantity)
	}

	_, err = r.AdjustQuantity("1", -1)
	var stock *InsufficientStockError
	if !errors.As(err, &stock) {
		t.Fatalf("expected InsufficientStockError, got %v", err)
	}
	if stock.Requested != 1 || stock.Available != 0 {
		t.Errorf("expected requested 1 available 0, got %+v", stock)
	}
}
