package report

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"shopledger/domain"
)

func TestFilename(t *testing.T) {
	d := time.Date(2024, 3, 9, 15, 0, 0, 0, time.UTC)
	want := "Maiyogan_Bakery_Report_2024-03-09.xlsx"
	if got := Filename(d); got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestExport(t *testing.T) {
	snap := domain.Catalog{Products: []domain.Product{
		{ID: "1", Name: "Plain Cake", Category: "Bakery", Stock: 50, Sales: 50, WholesaleRate: 10, OurRate: 15},
		{ID: "2", Name: "Bread", Category: "Bakery", Stock: 100, Sales: 10, WholesaleRate: 20, OurRate: 30},
	}}
	dir := t.TempDir()

	name, err := Export(snap, dir)
	if err != nil {
		t.Fatalf("export failed: %v", err)
	}
	if !strings.HasPrefix(name, "Maiyogan_Bakery_Report_") || !strings.HasSuffix(name, ".xlsx") {
		t.Fatalf("unexpected filename %q", name)
	}

	path := filepath.Join(dir, name)
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("workbook not written: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("workbook unreadable: %v", err)
	}
	defer f.Close()

	cell := func(ref string) string {
		t.Helper()
		v, err := f.GetCellValue("Daily Report", ref)
		if err != nil {
			t.Fatalf("reading %s failed: %v", ref, err)
		}
		return v
	}

	if got := cell("A1"); got != "Name" {
		t.Fatalf("expected header Name in A1, got %q", got)
	}
	if got := cell("A2"); got != "Plain Cake" {
		t.Fatalf("expected first product in A2, got %q", got)
	}
	// remaining stock column for the first row: 50 - 50 = 0
	if got := cell("D2"); got != "0" {
		t.Fatalf("expected remaining 0 in D2, got %q", got)
	}
	// line profit for the first row: (15-10)*50 = 250
	if got := cell("H2"); got != "250" {
		t.Fatalf("expected line profit 250 in H2, got %q", got)
	}

	// two product rows, a spacer, then the two total rows
	if got := cell("G5"); got != "Total Sales:" {
		t.Fatalf("expected total sales label in G5, got %q", got)
	}
	if got := cell("H5"); got != "1050" {
		t.Fatalf("expected total sales 1050 in H5, got %q", got)
	}
	if got := cell("G6"); got != "Total Profit:" {
		t.Fatalf("expected total profit label in G6, got %q", got)
	}
	if got := cell("H6"); got != "350" {
		t.Fatalf("expected total profit 350 in H6, got %q", got)
	}
}

func TestExport_EmptyCatalog(t *testing.T) {
	dir := t.TempDir()
	name, err := Export(domain.Catalog{}, dir)
	if err != nil {
		t.Fatalf("export of an empty catalog failed: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
		t.Fatalf("workbook not written: %v", err)
	}
}
