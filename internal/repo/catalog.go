package repo

import "github.com/rpaiva/warehouse-tracker/internal/models"

// ProductInput carries the caller-editable product fields for creates and
// updates. Identity and timestamps are assigned by the repository.
type ProductInput struct {
	Name        string
	Quantity    int
	Description string
	Category    string
}

// CatalogRepository defines the interface for catalog data operations.
type CatalogRepository interface {
	GetAll() ([]models.Product, error)
	GetByID(id string) (models.Product, error)
	Create(in ProductInput) (models.Product, error)
	Update(id string, in ProductInput) (models.Product, error)
	Delete(id string) error
	AdjustQuantity(id string, delta int) (models.Product, error)
}
