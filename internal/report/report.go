// Package report renders the printable PDF reports: the current inventory
// and the movement history, each with a generation timestamp, one table row
// per record and summary totals.
package report

import (
	"fmt"
	"time"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/rpaiva/warehouse-tracker/internal/models"
)

var (
	colorHeader = &props.Color{Red: 40, Green: 115, Blue: 160}
	colorStripe = &props.Color{Red: 235, Green: 240, Blue: 244}
	colorGray   = &props.Color{Red: 100, Green: 100, Blue: 100}
	colorWhite  = &props.Color{Red: 255, Green: 255, Blue: 255}
)

type column struct {
	label string
	size  int
	align align.Type
}

// Inventory renders the inventory report and returns the PDF bytes.
func Inventory(products []models.Product) ([]byte, error) {
	m := newDocument("Warehouse - Inventory Report")

	cols := []column{
		{"ID", 1, align.Left},
		{"Name", 3, align.Left},
		{"Quantity", 1, align.Right},
		{"Category", 3, align.Left},
		{"Description", 4, align.Left},
	}
	m.AddRows(tableHeader(cols))

	totalItems := 0
	for i, p := range products {
		totalItems += p.Quantity
		m.AddRows(tableRow(cols, i, p.ID, p.Name, fmt.Sprintf("%d", p.Quantity), p.Category, p.Description))
	}

	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(summaryRow(
		fmt.Sprintf("Total Products: %d", len(products)),
		fmt.Sprintf("Total Items in Stock: %d", totalItems),
	))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate inventory report: %w", err)
	}
	return doc.GetBytes(), nil
}

// MovementHistory renders the movement history report and returns the PDF
// bytes.
func MovementHistory(movements []models.Movement) ([]byte, error) {
	m := newDocument("Warehouse - Movement History Report")

	cols := []column{
		{"Date", 3, align.Left},
		{"Product", 3, align.Left},
		{"Type", 1, align.Center},
		{"Quantity", 1, align.Right},
		{"Notes", 4, align.Left},
	}
	m.AddRows(tableHeader(cols))

	added, removed := 0, 0
	for i, mv := range movements {
		if mv.Type == models.MovementRemove {
			removed += mv.Quantity
		} else {
			added += mv.Quantity
		}
		m.AddRows(tableRow(cols, i, formatDate(mv.Date), mv.ProductName, mv.Type, fmt.Sprintf("%d", mv.Quantity), mv.Notes))
	}

	m.AddRows(line.NewRow(2, props.Line{Color: colorGray, Thickness: 0.3}))
	m.AddRows(summaryRow(
		fmt.Sprintf("Total Added Items: %d", added),
		fmt.Sprintf("Total Removed Items: %d", removed),
		fmt.Sprintf("Net Change: %d", added-removed),
	))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("generate movement report: %w", err)
	}
	return doc.GetBytes(), nil
}

func newDocument(title string) core.Maroto {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(12).WithRightMargin(12).
		WithTopMargin(12).WithBottomMargin(12).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		Build()

	m := maroto.New(cfg)
	m.AddRows(row.New(10).Add(
		col.New(12).Add(text.New(title, props.Text{
			Style: fontstyle.Bold, Size: 16, Color: colorHeader,
		})),
	))
	m.AddRows(row.New(6).Add(
		col.New(12).Add(text.New(
			"Generated on: "+time.Now().Format("02/01/2006 15:04:05"),
			props.Text{Size: 8, Color: colorGray},
		)),
	))
	m.AddRows(row.New(3))
	return m
}

func tableHeader(cols []column) core.Row {
	r := row.New(7).WithStyle(&props.Cell{BackgroundColor: colorHeader})
	for _, c := range cols {
		r.Add(col.New(c.size).Add(text.New(c.label, props.Text{
			Style: fontstyle.Bold, Size: 8, Align: c.align,
			Color: colorWhite, Top: 1.5, Left: 1, Right: 1,
		})))
	}
	return r
}

func tableRow(cols []column, index int, values ...string) core.Row {
	r := row.New(6)
	if index%2 == 1 {
		r.WithStyle(&props.Cell{BackgroundColor: colorStripe})
	}
	for i, c := range cols {
		r.Add(col.New(c.size).Add(text.New(values[i], props.Text{
			Size: 8, Align: c.align, Top: 1, Left: 1, Right: 1,
		})))
	}
	return r
}

func summaryRow(lines ...string) core.Row {
	components := make([]core.Component, len(lines))
	for i, l := range lines {
		components[i] = text.New(l, props.Text{
			Style: fontstyle.Bold, Size: 10, Top: float64(2 + i*6),
		})
	}
	return row.New(float64(4 + len(lines)*6)).Add(col.New(12).Add(components...))
}

func formatDate(rfc3339 string) string {
	t, err := time.Parse(time.RFC3339, rfc3339)
	if err != nil {
		return rfc3339
	}
	return t.Format("02/01/2006 15:04")
}
