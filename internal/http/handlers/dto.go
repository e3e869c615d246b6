package handlers

import "github.com/rpaiva/warehouse-tracker/internal/models"

// lowStockThreshold marks a product as running low on the dashboard and in
// product responses.
const lowStockThreshold = 5

type ProductRequest struct {
	Name        string `json:"name"`
	Quantity    int    `json:"quantity"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

type ProductResponse struct {
	Id          string `json:"id"`
	Name        string `json:"name"`
	Quantity    int    `json:"quantity"`
	Description string `json:"description"`
	Category    string `json:"category"`
	LowStock    bool   `json:"low_stock,omitempty"`
	CreatedAt   string `json:"created_at,omitempty"`
	UpdatedAt   string `json:"updated_at,omitempty"`
}

type MovementResponse struct {
	ID          string `json:"id"`
	ProductID   string `json:"product_id"`
	ProductName string `json:"product_name"`
	Type        string `json:"type"`
	Quantity    int    `json:"quantity"`
	Date        string `json:"date"`
	Notes       string `json:"notes"`
}

// AdjustmentRequest describes one stock change. Type is ADD or REMOVE;
// Notes may be empty, in which case a generic note is recorded.
type AdjustmentRequest struct {
	Type     string `json:"type"`
	Quantity int    `json:"quantity"`
	Notes    string `json:"notes,omitempty"`
}

// AdjustmentResult returns the updated product together with the movement
// that recorded the change.
type AdjustmentResult struct {
	Product  ProductResponse  `json:"product"`
	Movement MovementResponse `json:"movement"`
	Message  string           `json:"message"`
}

type DashboardResponse struct {
	TotalProducts   int                `json:"total_products"`
	TotalItems      int                `json:"total_items"`
	LowStock        int                `json:"low_stock"`
	RecentActivity  int                `json:"recent_activity"`
	RecentMovements []MovementResponse `json:"recent_movements"`
}

type UserLogin struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type LoginResult struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

func toProductResponse(p models.Product) ProductResponse {
	return ProductResponse{
		Id:          p.ID,
		Name:        p.Name,
		Quantity:    p.Quantity,
		Description: p.Description,
		Category:    p.Category,
		LowStock:    p.Quantity < lowStockThreshold,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func toMovementResponse(m models.Movement) MovementResponse {
	return MovementResponse{
		ID:          m.ID,
		ProductID:   m.ProductID,
		ProductName: m.ProductName,
		Type:        m.Type,
		Quantity:    m.Quantity,
		Date:        m.Date,
		Notes:       m.Notes,
	}
}
