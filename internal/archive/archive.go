// Package archive records figure runs in a SQLite database so the numbers
// behind a figure can be audited after the fact.
package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/chrissnell/jetfigures/internal/jet"
	"github.com/chrissnell/jetfigures/internal/radio"
	"github.com/chrissnell/jetfigures/pkg/config"
)

const schema = `
CREATE TABLE IF NOT EXISTS runs (
	id          TEXT PRIMARY KEY,
	command     TEXT NOT NULL,
	version     TEXT NOT NULL,
	started_at  TIMESTAMP NOT NULL,
	config_json TEXT NOT NULL
);
CREATE TABLE IF NOT EXISTS join_reports (
	run_id               TEXT PRIMARY KEY REFERENCES runs(id),
	left_rows            INTEGER NOT NULL,
	right_rows           INTEGER NOT NULL,
	matched              INTEGER NOT NULL,
	left_dropped         INTEGER NOT NULL,
	right_dropped        INTEGER NOT NULL,
	left_duplicate_keys  INTEGER NOT NULL,
	right_duplicate_keys INTEGER NOT NULL
);
CREATE TABLE IF NOT EXISTS merged_samples (
	run_id    TEXT NOT NULL REFERENCES runs(id),
	row       INTEGER NOT NULL,
	t         REAL NOT NULL,
	r         REAL NOT NULL,
	gsh       REAL NOT NULL,
	tobs      REAL NOT NULL,
	ek        REAL NOT NULL,
	bsh       REAL NOT NULL,
	gammabeta REAL NOT NULL,
	PRIMARY KEY (run_id, row)
);
CREATE TABLE IF NOT EXISTS epochs (
	run_id  TEXT NOT NULL REFERENCES runs(id),
	kind    TEXT NOT NULL,
	row     INTEGER NOT NULL,
	target  REAL NOT NULL,
	clamped INTEGER NOT NULL,
	PRIMARY KEY (run_id, kind)
);
CREATE TABLE IF NOT EXISTS observations (
	run_id  TEXT NOT NULL REFERENCES runs(id),
	band    TEXT NOT NULL,
	time    REAL NOT NULL,
	freq    REAL NOT NULL,
	lum     REAL NOT NULL,
	lum_err REAL NOT NULL
);
`

// Archive is a SQLite store of figure runs
type Archive struct {
	db     *sql.DB
	dbPath string
}

// Run identifies one execution of a figure command
type Run struct {
	ID        uuid.UUID
	Command   string
	Version   string
	StartedAt time.Time
	Config    *config.ConfigData
}

// NewRun stamps a new run of command
func NewRun(command, version string, cfg *config.ConfigData) Run {
	return Run{
		ID:        uuid.New(),
		Command:   command,
		Version:   version,
		StartedAt: time.Now().UTC(),
		Config:    cfg,
	}
}

// Open opens or creates the archive at dbPath
func Open(dbPath string) (*Archive, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	// Test the connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping SQLite database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create archive schema: %w", err)
	}

	return &Archive{db: db, dbPath: dbPath}, nil
}

// Close closes the database
func (a *Archive) Close() error {
	return a.db.Close()
}

func (a *Archive) insertRun(ctx context.Context, tx *sql.Tx, run Run) error {
	cfgJSON, err := json.Marshal(run.Config)
	if err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}
	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, command, version, started_at, config_json) VALUES (?, ?, ?, ?, ?)`,
		run.ID.String(), run.Command, run.Version, run.StartedAt, string(cfgJSON))
	if err != nil {
		return fmt.Errorf("failed to insert run: %w", err)
	}
	return nil
}

// SaveJetRun stores the merged table, the join report and the epochs
func (a *Archive) SaveJetRun(ctx context.Context, run Run, res *jet.Result) error {
	return a.withTx(ctx, func(tx *sql.Tx) error {
		if err := a.insertRun(ctx, tx, run); err != nil {
			return err
		}

		j := res.Join
		_, err := tx.ExecContext(ctx, `
			INSERT INTO join_reports (run_id, left_rows, right_rows, matched, left_dropped,
			                          right_dropped, left_duplicate_keys, right_duplicate_keys)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
			run.ID.String(), j.LeftRows, j.RightRows, j.Matched, j.LeftDropped,
			j.RightDropped, j.LeftDuplicateKeys, j.RightDuplicateKeys)
		if err != nil {
			return fmt.Errorf("failed to insert join report: %w", err)
		}

		stmt, err := tx.PrepareContext(ctx, `
			INSERT INTO merged_samples (run_id, row, t, r, gsh, tobs, ek, bsh, gammabeta)
			VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`)
		if err != nil {
			return fmt.Errorf("failed to prepare sample insert: %w", err)
		}
		defer stmt.Close()
		for i, s := range res.Samples {
			if _, err := stmt.ExecContext(ctx, run.ID.String(), i, s.T, s.R, s.Gsh, s.Tobs, s.Ek, s.Bsh, s.GammaBeta); err != nil {
				return fmt.Errorf("failed to insert sample %d: %w", i, err)
			}
		}

		for _, e := range res.Epochs {
			_, err := tx.ExecContext(ctx,
				`INSERT INTO epochs (run_id, kind, row, target, clamped) VALUES (?, ?, ?, ?, ?)`,
				run.ID.String(), string(e.Kind), e.Row, e.Target, e.Clamped)
			if err != nil {
				return fmt.Errorf("failed to insert epoch %s: %w", e.Kind, err)
			}
		}
		return nil
	})
}

// SaveRadioRun stores the per-band observations that were plotted
func (a *Archive) SaveRadioRun(ctx context.Context, run Run, res *radio.Result) error {
	return a.withTx(ctx, func(tx *sql.Tx) error {
		if err := a.insertRun(ctx, tx, run); err != nil {
			return err
		}
		for _, b := range res.Bands {
			for _, o := range b.Observations {
				_, err := tx.ExecContext(ctx,
					`INSERT INTO observations (run_id, band, time, freq, lum, lum_err) VALUES (?, ?, ?, ?, ?, ?)`,
					run.ID.String(), b.Label, o.Time, o.Freq, o.Lum, o.LumErr)
				if err != nil {
					return fmt.Errorf("failed to insert %s observation: %w", b.Label, err)
				}
			}
		}
		return nil
	})
}

func (a *Archive) withTx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := a.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}
	return tx.Commit()
}
