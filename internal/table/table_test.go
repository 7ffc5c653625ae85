package table

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestReadDropsLeadingRows(t *testing.T) {
	input := `0.0 0.0 1.0
1.0   0.5 10.0

2.0	1.0  5.0
`
	tbl, err := Read(strings.NewReader(input), "fsp-pos.dat", ShockPosition)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if tbl.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", tbl.Len())
	}
	if got := tbl.Col("t"); got[0] != 1.0 || got[1] != 2.0 {
		t.Errorf("t = %v, expected [1 2]", got)
	}
	if got := tbl.Col("gsh"); got[0] != 10.0 || got[1] != 5.0 {
		t.Errorf("gsh = %v, expected [10 5]", got)
	}
}

func TestReadKeepsFirstRowWithoutSkip(t *testing.T) {
	tbl, err := Read(strings.NewReader("0 1 2\n3 4 5e-3\n"), "massen.dat", MassEnergy)
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	if tbl.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", tbl.Len())
	}
	if got := tbl.Col("Ek")[1]; got != 5e-3 {
		t.Errorf("Ek[1] = %g, expected 5e-3", got)
	}
}

func TestReadRejectsMalformedRows(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		line    int
		message string
	}{
		{
			name:    "short row",
			input:   "1 2\n3 4\n5\n",
			line:    3,
			message: "1 fields, expected 2",
		},
		{
			name:    "long row",
			input:   "1 2 3\n",
			line:    1,
			message: "3 fields, expected 2",
		},
		{
			name:    "non numeric",
			input:   "1 2\n3 abc\n",
			line:    2,
			message: "column lum",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Read(strings.NewReader(tt.input), "lc.dat", LightCurve)
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("Read() error = %v, expected *ParseError", err)
			}
			if pe.Line != tt.line {
				t.Errorf("Line = %d, expected %d", pe.Line, tt.line)
			}
			if !strings.Contains(err.Error(), tt.message) {
				t.Errorf("error %q does not mention %q", err, tt.message)
			}
		})
	}
}

func TestReadFileMissing(t *testing.T) {
	_, err := ReadFile(filepath.Join(t.TempDir(), "missing.dat"), LightCurve)
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("ReadFile() error = %v, expected not-exist", err)
	}
}

func TestNewChecksLengths(t *testing.T) {
	if _, err := New([]string{"a", "b"}, []float64{1, 2}, []float64{1}); err == nil {
		t.Error("New() accepted ragged columns")
	}
	if _, err := New([]string{"a"}, []float64{1}, []float64{1}); err == nil {
		t.Error("New() accepted a name/column mismatch")
	}
}

func writeWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		if err != nil {
			t.Fatal(err)
		}
		if err := f.SetSheetRow("Sheet1", cell, &row); err != nil {
			t.Fatal(err)
		}
	}
	path := filepath.Join(t.TempDir(), "AT1_data.xlsx")
	if err := f.SaveAs(path); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestReadWorkbook(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"epoch", "time", "t_exp", "freq", "tflux", "err_tflux"},
		{"a", 53500.0, 100.0, 8.44, 1200.0, 30.0},
		{},
		{"b", 53600.0, 200.0, 4.99, "850", 25.0},
	})

	tbl, err := ReadWorkbook(path, "", []string{"time", "t_exp", "freq", "tflux", "err_tflux"})
	if err != nil {
		t.Fatalf("ReadWorkbook() error = %v", err)
	}
	if tbl.Len() != 2 {
		t.Fatalf("Len() = %d, expected 2", tbl.Len())
	}
	if got := tbl.Col("freq"); got[0] != 8.44 || got[1] != 4.99 {
		t.Errorf("freq = %v", got)
	}
	if got := tbl.Col("tflux")[1]; got != 850 {
		t.Errorf("tflux[1] = %g, expected 850", got)
	}
	if tbl.Has("epoch") {
		t.Error("unrequested column was loaded")
	}
}

func TestReadWorkbookColumnNamesAreExact(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"Time", "t_exp"},
		{1.0, 2.0},
	})
	_, err := ReadWorkbook(path, "", []string{"time", "t_exp"})
	if err == nil || !strings.Contains(err.Error(), `no column "time"`) {
		t.Errorf("ReadWorkbook() error = %v, expected missing column", err)
	}
}

func TestReadWorkbookShortRow(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"time", "tflux"},
		{1.0},
	})
	_, err := ReadWorkbook(path, "", []string{"time", "tflux"})
	var pe *ParseError
	if !errors.As(err, &pe) || pe.Line != 2 {
		t.Errorf("ReadWorkbook() error = %v, expected parse error on line 2", err)
	}
}
