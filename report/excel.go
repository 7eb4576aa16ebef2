// Package report writes the daily sales and inventory workbook.
package report

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/xuri/excelize/v2"

	"shopledger/domain"
)

const (
	sheetName  = "Daily Report"
	filePrefix = "Maiyogan_Bakery_Report_"
)

var columnWidths = []float64{25, 15, 15, 18, 18, 15, 20, 18}

// Filename derives the report filename for the given date.
func Filename(t time.Time) string {
	return filePrefix + t.Format("2006-01-02") + ".xlsx"
}

// Export writes the report for the snapshot into dir and returns the
// generated filename. One row per product, a spacer, then grand totals for
// sales value and profit.
func Export(snap domain.Catalog, dir string) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetName); err != nil {
		return "", err
	}

	header := []interface{}{
		"Name", "Stock on Hand", "Sales (Today)", "Remaining Stock",
		"Wholesale Rate", "Our Rate", "Total Sales Amount", "Total Profit",
	}
	if err := f.SetSheetRow(sheetName, "A1", &header); err != nil {
		return "", err
	}

	row := 2
	for _, p := range snap.Products {
		line := []interface{}{
			p.Name, p.Stock, p.Sales, p.Remaining(),
			p.WholesaleRate, p.OurRate, p.LineSalesValue(), p.LineProfit(),
		}
		if err := f.SetSheetRow(sheetName, fmt.Sprintf("A%d", row), &line); err != nil {
			return "", err
		}
		row++
	}

	totals := snap.Totals()
	row++ // spacer row
	salesRow := []interface{}{"", "", "", "", "", "", "Total Sales:", totals.SalesValue}
	if err := f.SetSheetRow(sheetName, fmt.Sprintf("A%d", row), &salesRow); err != nil {
		return "", err
	}
	row++
	profitRow := []interface{}{"", "", "", "", "", "", "Total Profit:", totals.Profit}
	if err := f.SetSheetRow(sheetName, fmt.Sprintf("A%d", row), &profitRow); err != nil {
		return "", err
	}

	for i, w := range columnWidths {
		col, err := excelize.ColumnNumberToName(i + 1)
		if err != nil {
			return "", err
		}
		if err := f.SetColWidth(sheetName, col, col, w); err != nil {
			return "", err
		}
	}

	name := Filename(time.Now())
	if err := f.SaveAs(filepath.Join(dir, name)); err != nil {
		return "", err
	}
	return name, nil
}
