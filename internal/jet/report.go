package jet

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/chrissnell/jetfigures/internal/constants"
)

// WriteDiagnostics prints the reference-epoch rows followed by the notes
// explaining the columns
func WriteDiagnostics(w io.Writer, epochs []Epoch) error {
	if _, err := fmt.Fprintf(w, "%-10s | %6s | %12s | %12s | %10s | %12s | %12s | %8s | %10s\n",
		"epoch", "row", "t_x", "r", "gsh", "Tobs", "Ek", "bsh", "gammabeta"); err != nil {
		return err
	}
	fmt.Fprintf(w, "-----------+--------+--------------+--------------+------------+--------------+--------------+----------+-----------\n")

	for _, e := range epochs {
		s := e.Sample
		marker := ""
		if e.Clamped {
			marker = " (clamped)"
		}
		if _, err := fmt.Fprintf(w, "%-10s | %6d | %12.6f | %12.6f | %10.6f | %12.6f | %12.6e | %8.6f | %10.6f%s\n",
			e.Kind, e.Row, s.T, s.R, s.Gsh, s.Tobs, s.Ek, s.Bsh, s.GammaBeta, marker); err != nil {
			return err
		}
	}

	fmt.Fprintln(w)
	for _, note := range constants.DiagnosticNotes {
		if _, err := fmt.Fprintln(w, note); err != nil {
			return err
		}
	}
	return nil
}

// WriteCSV exports the merged table
func WriteCSV(w io.Writer, samples []Sample) error {
	writer := csv.NewWriter(w)

	header := []string{"t_x", "r", "gsh", "Tobs", "Ek", "bsh", "gammabeta"}
	if err := writer.Write(header); err != nil {
		return err
	}

	for _, s := range samples {
		record := []string{
			formatFloat(s.T),
			formatFloat(s.R),
			formatFloat(s.Gsh),
			formatFloat(s.Tobs),
			formatFloat(s.Ek),
			formatFloat(s.Bsh),
			formatFloat(s.GammaBeta),
		}
		if err := writer.Write(record); err != nil {
			return err
		}
	}

	writer.Flush()
	return writer.Error()
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
