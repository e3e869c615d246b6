package repo

import (
	"context"
	"strings"
	"sync"

	"github.com/rpaiva/warehouse-tracker/internal/csvtext"
	"github.com/rpaiva/warehouse-tracker/internal/models"
	"github.com/rpaiva/warehouse-tracker/internal/store"
)

// CSVCatalogRepository holds the product collection in memory and re-persists
// the full CSV blob after every mutation. When persistence fails the applied
// change stays in memory and the error is surfaced to the caller.
type CSVCatalogRepository struct {
	mu       sync.Mutex
	st       store.Store
	products []models.Product
}

// NewCSVCatalogRepository loads the products blob, seeding and persisting the
// default catalog when the blob is absent or empty.
func NewCSVCatalogRepository(ctx context.Context, st store.Store) (*CSVCatalogRepository, error) {
	text, ok, err := st.Get(ctx, store.ProductsKey)
	if err != nil {
		return nil, &PersistenceError{Key: store.ProductsKey, Err: err}
	}

	r := &CSVCatalogRepository{st: st}
	if !ok || text == "" {
		r.products = SeedProducts()
		if err := st.Set(ctx, store.ProductsKey, csvtext.EncodeProducts(r.products)); err != nil {
			return nil, &PersistenceError{Key: store.ProductsKey, Err: err}
		}
		return r, nil
	}

	products, err := csvtext.DecodeProducts(text)
	if err != nil {
		return nil, &EncodingError{Key: store.ProductsKey, Err: err}
	}
	r.products = products
	return r, nil
}

// GetAll retrieves all products in stored order.
func (r *CSVCatalogRepository) GetAll() ([]models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]models.Product, len(r.products))
	copy(out, r.products)
	return out, nil
}

// GetByID retrieves a product by its ID.
func (r *CSVCatalogRepository) GetByID(id string) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.findLocked(id)
}

// Create adds a new product, rejecting case-insensitive name duplicates.
func (r *CSVCatalogRepository) Create(in ProductInput) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if dup := r.duplicateLocked(in.Name, ""); dup != nil {
		return models.Product{}, dup
	}

	now := nowRFC3339()
	product := models.Product{
		ID:          nextID(),
		Name:        in.Name,
		Quantity:    in.Quantity,
		Description: in.Description,
		Category:    in.Category,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	r.products = append(r.products, product)
	return product, r.persistLocked()
}

// Update replaces the editable fields of an existing product and refreshes
// its UpdatedAt timestamp.
func (r *CSVCatalogRepository) Update(id string, in ProductInput) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, err := r.indexLocked(id)
	if err != nil {
		return models.Product{}, err
	}
	if dup := r.duplicateLocked(in.Name, id); dup != nil {
		return models.Product{}, dup
	}

	p := r.products[i]
	p.Name = in.Name
	p.Quantity = in.Quantity
	p.Description = in.Description
	p.Category = in.Category
	p.UpdatedAt = nowRFC3339()
	r.products[i] = p
	return p, r.persistLocked()
}

// Delete removes a product unconditionally. Historical movements keep their
// productId reference; the ledger is an audit trail independent of catalog
// lifecycle.
func (r *CSVCatalogRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, err := r.indexLocked(id)
	if err != nil {
		return err
	}
	r.products = append(r.products[:i], r.products[i+1:]...)
	return r.persistLocked()
}

// AdjustQuantity applies a stock delta and persists the collection.
func (r *CSVCatalogRepository) AdjustQuantity(id string, delta int) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, err := r.applyDeltaLocked(id, delta)
	if err != nil {
		return models.Product{}, err
	}
	return p, r.persistLocked()
}

// ApplyDelta applies a stock delta in memory without persisting. Used by the
// stock-adjustment transaction, which commits both blobs in one batch.
func (r *CSVCatalogRepository) ApplyDelta(id string, delta int) (models.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.applyDeltaLocked(id, delta)
}

// EncodeSnapshot returns the current collection in its persisted encoding.
func (r *CSVCatalogRepository) EncodeSnapshot() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return csvtext.EncodeProducts(r.products)
}

func (r *CSVCatalogRepository) applyDeltaLocked(id string, delta int) (models.Product, error) {
	i, err := r.indexLocked(id)
	if err != nil {
		return models.Product{}, err
	}
	p := r.products[i]
	if p.Quantity+delta < 0 {
		return models.Product{}, &InsufficientStockError{Requested: -delta, Available: p.Quantity}
	}
	p.Quantity += delta
	p.UpdatedAt = nowRFC3339()
	r.products[i] = p
	return p, nil
}

func (r *CSVCatalogRepository) findLocked(id string) (models.Product, error) {
	i, err := r.indexLocked(id)
	if err != nil {
		return models.Product{}, err
	}
	return r.products[i], nil
}

func (r *CSVCatalogRepository) indexLocked(id string) (int, error) {
	for i, p := range r.products {
		if p.ID == id {
			return i, nil
		}
	}
	return 0, ErrProductNotFound
}

func (r *CSVCatalogRepository) duplicateLocked(name, excludeID string) error {
	for _, p := range r.products {
		if p.ID != excludeID && strings.EqualFold(p.Name, name) {
			return &DuplicateNameError{Name: name}
		}
	}
	return nil
}

func (r *CSVCatalogRepository) persistLocked() error {
	text := csvtext.EncodeProducts(r.products)
	if err := r.st.Set(context.Background(), store.ProductsKey, text); err != nil {
		return &PersistenceError{Key: store.ProductsKey, Err: err}
	}
	return nil
}
