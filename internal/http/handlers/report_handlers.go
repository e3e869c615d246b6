package handlers

import (
	"fmt"
	"net/http"

	"github.com/rpaiva/warehouse-tracker/internal/report"
)

func writePDFDownload(w http.ResponseWriter, filename string, body []byte) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.Write(body)
}

// InventoryReportHandler godoc
// @Summary Download the inventory report as PDF
// @Tags reports
// @Produce application/pdf
// @Success 200 {file} file
// @Failure 500 {string} string "Internal error"
// @Router /reports/inventory [get]
func InventoryReportHandler(w http.ResponseWriter, r *http.Request) {
	products, err := catalogRepo.GetAll()
	if writeStoreError(w, err) {
		return
	}

	pdf, err := report.Inventory(products)
	if err != nil {
		log.Error().Err(err).Msg("could not generate inventory report")
		http.Error(w, "could not generate report", http.StatusInternalServerError)
		return
	}
	writePDFDownload(w, "warehouse-inventory-report.pdf", pdf)
}

// MovementReportHandler godoc
// @Summary Download the movement history report as PDF
// @Tags reports
// @Produce application/pdf
// @Success 200 {file} file
// @Failure 500 {string} string "Internal error"
// @Router /reports/movements [get]
func MovementReportHandler(w http.ResponseWriter, r *http.Request) {
	movements, err := movementRepo.GetAll()
	if writeStoreError(w, err) {
		return
	}

	pdf, err := report.MovementHistory(movements)
	if err != nil {
		log.Error().Err(err).Msg("could not generate movement report")
		http.Error(w, "could not generate report", http.StatusInternalServerError)
		return
	}
	writePDFDownload(w, "warehouse-movement-history.pdf", pdf)
}
