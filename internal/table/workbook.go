package table

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

// ReadWorkbook loads the named columns of one spreadsheet sheet. The first
// row is the header and names are matched exactly. An empty sheet name
// selects the first sheet. Other columns are ignored; a missing column or a
// non-numeric cell in a requested column fails the read.
func ReadWorkbook(path, sheet string, columns []string) (*Table, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not open workbook: %w", err)
	}
	defer f.Close()

	if sheet == "" {
		sheet = f.GetSheetName(0)
	}

	rows, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, &ParseError{File: path, Err: fmt.Errorf("sheet %q: %w", sheet, err)}
	}
	if len(rows) == 0 {
		return nil, &ParseError{File: path, Err: fmt.Errorf("sheet %q is empty", sheet)}
	}

	header := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		header[name] = i
	}
	index := make([]int, len(columns))
	for i, name := range columns {
		idx, ok := header[name]
		if !ok {
			return nil, &ParseError{File: path, Line: 1, Err: fmt.Errorf("sheet %q has no column %q", sheet, name)}
		}
		index[i] = idx
	}

	t := newEmpty(columns)
	vals := make([]float64, len(columns))
	for r, row := range rows[1:] {
		if blankRow(row) {
			continue
		}
		line := r + 2
		for i, idx := range index {
			if idx >= len(row) || strings.TrimSpace(row[idx]) == "" {
				return nil, &ParseError{File: path, Line: line, Err: fmt.Errorf("column %s is empty", columns[i])}
			}
			v, err := strconv.ParseFloat(strings.TrimSpace(row[idx]), 64)
			if err != nil {
				return nil, &ParseError{File: path, Line: line, Err: fmt.Errorf("column %s: %w", columns[i], err)}
			}
			vals[i] = v
		}
		t.appendRow(vals)
	}

	return t, nil
}

func blankRow(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
