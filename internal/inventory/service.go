// Package inventory implements the stock-adjustment transaction: the only
// operation that touches the catalog and the ledger together.
package inventory

import (
	"context"

	"github.com/rpaiva/warehouse-tracker/internal/models"
	"github.com/rpaiva/warehouse-tracker/internal/repo"
	"github.com/rpaiva/warehouse-tracker/internal/store"
)

// Catalog is the slice of the catalog repository the transaction needs:
// lookup, an in-memory delta, and the encoded snapshot for the commit.
type Catalog interface {
	GetByID(id string) (models.Product, error)
	ApplyDelta(id string, delta int) (models.Product, error)
	EncodeSnapshot() string
}

// Ledger is the slice of the movement repository the transaction needs.
type Ledger interface {
	Append(productID, productName, mvType string, quantity int, notes string) (models.Movement, error)
	EncodeSnapshot() string
}

// Service coordinates stock changes so the materialized quantity and the
// audit trail never diverge on disk: both blobs are committed through a
// single store.Apply.
type Service struct {
	catalog Catalog
	ledger  Ledger
	st      store.Store
}

// NewService wires the transaction over the shared store.
func NewService(catalog Catalog, ledger Ledger, st store.Store) *Service {
	return &Service{catalog: catalog, ledger: ledger, st: st}
}

// ApplyStockChange adjusts a product's quantity and records the paired
// movement. The movement snapshots the product name as looked up before the
// change. On a persistence failure the in-memory state keeps the change and
// the error is surfaced; the two blobs are still written as one commit, so
// they cannot land out of step with each other.
func (s *Service) ApplyStockChange(ctx context.Context, productID, mvType string, quantity int, notes string) (models.Product, models.Movement, error) {
	product, err := s.catalog.GetByID(productID)
	if err != nil {
		return models.Product{}, models.Movement{}, err
	}
	if quantity <= 0 {
		return models.Product{}, models.Movement{}, repo.ErrInvalidQuantity
	}

	delta := quantity
	if mvType == models.MovementRemove {
		if product.Quantity < quantity {
			return models.Product{}, models.Movement{}, &repo.InsufficientStockError{
				Requested: quantity,
				Available: product.Quantity,
			}
		}
		delta = -quantity
	}

	updated, err := s.catalog.ApplyDelta(productID, delta)
	if err != nil {
		return models.Product{}, models.Movement{}, err
	}
	movement, err := s.ledger.Append(product.ID, product.Name, mvType, quantity, notes)
	if err != nil {
		return models.Product{}, models.Movement{}, err
	}

	err = s.st.Apply(ctx, map[string]string{
		store.ProductsKey:  s.catalog.EncodeSnapshot(),
		store.MovementsKey: s.ledger.EncodeSnapshot(),
	})
	if err != nil {
		return updated, movement, &repo.PersistenceError{Key: store.ProductsKey + "+" + store.MovementsKey, Err: err}
	}
	return updated, movement, nil
}
