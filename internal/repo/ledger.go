package repo

import "github.com/rpaiva/warehouse-tracker/internal/models"

// MovementRepository defines the interface for the append-only ledger.
// Movements are never edited or deleted once recorded.
type MovementRepository interface {
	GetAll() ([]models.Movement, error)
	Record(productID, productName, mvType string, quantity int, notes string) (models.Movement, error)
}
