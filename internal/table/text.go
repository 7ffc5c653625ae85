package table

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// ReadFile loads a whitespace-separated file laid out as s
func ReadFile(path string, s Schema) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open %s file: %w", s.Kind, err)
	}
	defer f.Close()

	return Read(f, path, s)
}

// Read parses whitespace-separated rows with no header. Blank lines are
// ignored; any row with the wrong field count or a non-numeric field fails
// the whole read.
func Read(r io.Reader, name string, s Schema) (*Table, error) {
	t := newEmpty(s.Columns)
	vals := make([]float64, len(s.Columns))

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)

	line, skipped := 0, 0
	for scanner.Scan() {
		line++
		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}
		if len(fields) != len(s.Columns) {
			return nil, &ParseError{File: name, Line: line,
				Err: fmt.Errorf("%s row has %d fields, expected %d (%s)", s.Kind, len(fields), len(s.Columns), strings.Join(s.Columns, " "))}
		}
		for i, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, &ParseError{File: name, Line: line, Err: fmt.Errorf("column %s: %w", s.Columns[i], err)}
			}
			vals[i] = v
		}
		if skipped < s.SkipRows {
			skipped++
			continue
		}
		t.appendRow(vals)
	}
	if err := scanner.Err(); err != nil {
		return nil, &ParseError{File: name, Err: err}
	}

	return t, nil
}
