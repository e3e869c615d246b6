package models

// Movement types.
const (
	MovementAdd    = "ADD"
	MovementRemove = "REMOVE"
)

// Movement is one recorded stock change. ProductName is a snapshot taken at
// recording time and is not re-synced if the product is later renamed.
type Movement struct {
	ID          string `json:"id"`
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Type        string `json:"type"`
	Quantity    int    `json:"quantity"`
	Date        string `json:"date"`
	Notes       string `json:"notes"`
}
