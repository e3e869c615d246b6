package handlers

import (
	"net/http"
	"sort"
	"time"
)

// GetDashboardHandler godoc
// @Summary Dashboard snapshot
// @Description Catalog totals, low-stock count, activity over the last week and the five most recent movements.
// @Tags dashboard
// @Produce json
// @Success 200 {object} DashboardResponse
// @Failure 500 {string} string "Internal error"
// @Router /dashboard [get]
func GetDashboardHandler(w http.ResponseWriter, r *http.Request) {
	products, err := catalogRepo.GetAll()
	if writeStoreError(w, err) {
		return
	}
	movements, err := movementRepo.GetAll()
	if writeStoreError(w, err) {
		return
	}

	resp := DashboardResponse{TotalProducts: len(products)}
	for _, p := range products {
		resp.TotalItems += p.Quantity
		if p.Quantity < lowStockThreshold {
			resp.LowStock++
		}
	}

	weekAgo := time.Now().AddDate(0, 0, -7)
	for _, m := range movements {
		if t, err := time.Parse(time.RFC3339, m.Date); err == nil && t.After(weekAgo) {
			resp.RecentActivity++
		}
	}

	sort.SliceStable(movements, func(i, j int) bool {
		return movements[i].Date > movements[j].Date
	})
	if len(movements) > 5 {
		movements = movements[:5]
	}
	resp.RecentMovements = make([]MovementResponse, len(movements))
	for i, m := range movements {
		resp.RecentMovements[i] = toMovementResponse(m)
	}

	writeJSON(w, http.StatusOK, resp)
}
