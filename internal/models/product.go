package models

// Product represents a catalog entry in the warehouse.
// Quantity is the materialized current stock level, kept in sync with the
// movement ledger. Timestamps are RFC3339 strings, matching the stored CSV.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Quantity    int    `json:"quantity"`
	Description string `json:"description"`
	Category    string `json:"category"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}
