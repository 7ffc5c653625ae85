package archive

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/chrissnell/jetfigures/internal/align"
	"github.com/chrissnell/jetfigures/internal/jet"
)

// RunInfo is the stored header of a run
type RunInfo struct {
	ID      uuid.UUID
	Command string
	Version string
}

// Runs lists the archived runs, oldest first
func (a *Archive) Runs(ctx context.Context) ([]RunInfo, error) {
	rows, err := a.db.QueryContext(ctx, `SELECT id, command, version FROM runs ORDER BY started_at, id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunInfo
	for rows.Next() {
		var id string
		var r RunInfo
		if err := rows.Scan(&id, &r.Command, &r.Version); err != nil {
			return nil, fmt.Errorf("failed to scan run row: %w", err)
		}
		if r.ID, err = uuid.Parse(id); err != nil {
			return nil, fmt.Errorf("run id %q: %w", id, err)
		}
		runs = append(runs, r)
	}
	return runs, rows.Err()
}

// Samples returns the merged table of a jet run in row order
func (a *Archive) Samples(ctx context.Context, id uuid.UUID) ([]jet.Sample, error) {
	rows, err := a.db.QueryContext(ctx, `
		SELECT t, r, gsh, tobs, ek, bsh, gammabeta
		FROM merged_samples WHERE run_id = ? ORDER BY row`, id.String())
	if err != nil {
		return nil, fmt.Errorf("failed to query samples: %w", err)
	}
	defer rows.Close()

	var samples []jet.Sample
	for rows.Next() {
		var s jet.Sample
		if err := rows.Scan(&s.T, &s.R, &s.Gsh, &s.Tobs, &s.Ek, &s.Bsh, &s.GammaBeta); err != nil {
			return nil, fmt.Errorf("failed to scan sample row: %w", err)
		}
		samples = append(samples, s)
	}
	return samples, rows.Err()
}

// JoinReport returns the join report of a jet run
func (a *Archive) JoinReport(ctx context.Context, id uuid.UUID) (align.JoinReport, error) {
	var j align.JoinReport
	err := a.db.QueryRowContext(ctx, `
		SELECT left_rows, right_rows, matched, left_dropped, right_dropped,
		       left_duplicate_keys, right_duplicate_keys
		FROM join_reports WHERE run_id = ?`, id.String()).
		Scan(&j.LeftRows, &j.RightRows, &j.Matched, &j.LeftDropped, &j.RightDropped,
			&j.LeftDuplicateKeys, &j.RightDuplicateKeys)
	if err != nil {
		return j, fmt.Errorf("failed to query join report: %w", err)
	}
	return j, nil
}

// ObservationCount returns how many observations a radio run stored per band
func (a *Archive) ObservationCount(ctx context.Context, id uuid.UUID) (map[string]int, error) {
	rows, err := a.db.QueryContext(ctx,
		`SELECT band, COUNT(*) FROM observations WHERE run_id = ? GROUP BY band`, id.String())
	if err != nil {
		return nil, fmt.Errorf("failed to query observations: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var band string
		var n int
		if err := rows.Scan(&band, &n); err != nil {
			return nil, fmt.Errorf("failed to scan observation count: %w", err)
		}
		counts[band] = n
	}
	return counts, rows.Err()
}
