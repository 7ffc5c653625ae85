// Package table loads the fixed-layout numeric files produced by the jet
// simulations and the observation spreadsheet into named float64 columns.
package table

import (
	"fmt"
)

// Schema describes one fixed file layout
type Schema struct {
	Kind    string
	Columns []string
	// SkipRows data rows are discarded from the top of the file
	SkipRows int
}

var (
	// ShockPosition is the forward-shock position file: time, radius, shock
	// Lorentz factor. Its first row is an artifact of the simulation output.
	ShockPosition = Schema{Kind: "shock position", Columns: []string{"t", "r", "gsh"}, SkipRows: 1}

	// MassEnergy is the jet mass and kinetic energy file
	MassEnergy = Schema{Kind: "mass/energy", Columns: []string{"t", "M", "Ek"}}

	// LightCurve is a simulated radio light curve for one band
	LightCurve = Schema{Kind: "light curve", Columns: []string{"time", "lum"}}
)

// Table is a column-oriented set of float64 samples
type Table struct {
	names []string
	cols  map[string][]float64
}

// New builds a table from equally sized columns
func New(names []string, cols ...[]float64) (*Table, error) {
	if len(names) != len(cols) {
		return nil, fmt.Errorf("%d column names for %d columns", len(names), len(cols))
	}
	t := &Table{names: append([]string(nil), names...), cols: make(map[string][]float64, len(names))}
	for i, name := range names {
		if i > 0 && len(cols[i]) != len(cols[0]) {
			return nil, fmt.Errorf("column %q has %d rows, expected %d", name, len(cols[i]), len(cols[0]))
		}
		t.cols[name] = cols[i]
	}
	return t, nil
}

func newEmpty(names []string) *Table {
	t := &Table{names: append([]string(nil), names...), cols: make(map[string][]float64, len(names))}
	for _, name := range names {
		t.cols[name] = nil
	}
	return t
}

// Names returns the column names in file order
func (t *Table) Names() []string {
	return append([]string(nil), t.names...)
}

// Len returns the number of rows
func (t *Table) Len() int {
	if len(t.names) == 0 {
		return 0
	}
	return len(t.cols[t.names[0]])
}

// Col returns the named column. It panics on an unknown name, which is
// always a programming error since schemas are fixed.
func (t *Table) Col(name string) []float64 {
	c, ok := t.cols[name]
	if !ok {
		panic(fmt.Sprintf("table: no column %q", name))
	}
	return c
}

// Has reports whether the table carries the named column
func (t *Table) Has(name string) bool {
	_, ok := t.cols[name]
	return ok
}

func (t *Table) appendRow(vals []float64) {
	for i, name := range t.names {
		t.cols[name] = append(t.cols[name], vals[i])
	}
}

// ParseError reports a malformed input row
type ParseError struct {
	File string
	Line int
	Err  error
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("%s:%d: %v", e.File, e.Line, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.File, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
