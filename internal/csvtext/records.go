package csvtext

import (
	"github.com/rpaiva/warehouse-tracker/internal/models"
)

// Field order of the stored blobs, fixed by the existing data format.
var (
	ProductHeader  = []string{"id", "name", "quantity", "description", "category", "createdAt", "updatedAt"}
	MovementHeader = []string{"id", "productId", "productName", "type", "quantity", "date", "notes"}
)

// EncodeProducts renders a product collection for persistence or export.
func EncodeProducts(products []models.Product) string {
	rows := make([][]any, len(products))
	for i, p := range products {
		rows[i] = []any{p.ID, p.Name, p.Quantity, p.Description, p.Category, p.CreatedAt, p.UpdatedAt}
	}
	return Encode(ProductHeader, rows)
}

// DecodeProducts parses a stored product blob.
func DecodeProducts(text string) ([]models.Product, error) {
	records, err := Decode(text)
	if err != nil {
		return nil, err
	}
	products := make([]models.Product, len(records))
	for i, rec := range records {
		products[i] = models.Product{
			ID:          String(rec["id"]),
			Name:        String(rec["name"]),
			Quantity:    Int(rec["quantity"]),
			Description: String(rec["description"]),
			Category:    String(rec["category"]),
			CreatedAt:   String(rec["createdAt"]),
			UpdatedAt:   String(rec["updatedAt"]),
		}
	}
	return products, nil
}

// EncodeMovements renders a movement collection for persistence or export.
func EncodeMovements(movements []models.Movement) string {
	rows := make([][]any, len(movements))
	for i, m := range movements {
		rows[i] = []any{m.ID, m.ProductID, m.ProductName, m.Type, m.Quantity, m.Date, m.Notes}
	}
	return Encode(MovementHeader, rows)
}

// DecodeMovements parses a stored movement blob.
func DecodeMovements(text string) ([]models.Movement, error) {
	records, err := Decode(text)
	if err != nil {
		return nil, err
	}
	movements := make([]models.Movement, len(records))
	for i, rec := range records {
		movements[i] = models.Movement{
			ID:          String(rec["id"]),
			ProductID:   String(rec["productId"]),
			ProductName: String(rec["productName"]),
			Type:        String(rec["type"]),
			Quantity:    Int(rec["quantity"]),
			Date:        String(rec["date"]),
			Notes:       String(rec["notes"]),
		}
	}
	return movements, nil
}
