package handlers

import (
	"fmt"
	"net/http"

	"github.com/rpaiva/warehouse-tracker/internal/csvtext"
)

func writeCSVDownload(w http.ResponseWriter, filename, body string) {
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write([]byte(body))
}

// ExportProductsHandler godoc
// @Summary Download the catalog as CSV
// @Description Same encoding as the persisted blob.
// @Tags export
// @Produce text/csv
// @Success 200 {file} file
// @Failure 500 {string} string "Internal error"
// @Router /export/products [get]
func ExportProductsHandler(w http.ResponseWriter, r *http.Request) {
	products, err := catalogRepo.GetAll()
	if writeStoreError(w, err) {
		return
	}
	writeCSVDownload(w, "warehouse-products.csv", csvtext.EncodeProducts(products))
}

// ExportMovementsHandler godoc
// @Summary Download the movement history as CSV
// @Description Same encoding as the persisted blob.
// @Tags export
// @Produce text/csv
// @Success 200 {file} file
// @Failure 500 {string} string "Internal error"
// @Router /export/movements [get]
func ExportMovementsHandler(w http.ResponseWriter, r *http.Request) {
	movements, err := movementRepo.GetAll()
	if writeStoreError(w, err) {
		return
	}
	writeCSVDownload(w, "warehouse-movements.csv", csvtext.EncodeMovements(movements))
}
