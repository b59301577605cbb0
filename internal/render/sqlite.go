package render

import (
	"context"
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"

	"adexdump/internal/report"
)

// findingsSchema is recreated on every export so the file mirrors the last run.
const findingsSchema = `
	DROP TABLE IF EXISTS findings;
	CREATE TABLE findings (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		run_id TEXT,
		kind TEXT NOT NULL,
		label TEXT NOT NULL,
		detail TEXT NOT NULL
	);
	CREATE INDEX idx_findings_label ON findings(label);
	`

// SQLite writes r into a "findings" table of the database at path.
func SQLite(ctx context.Context, path string, r *report.Report, opts Options) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return &FileError{Path: path, Err: err}
	}
	defer db.Close()

	if err := writeFindings(ctx, db, r, opts); err != nil {
		return &FileError{Path: path, Err: err}
	}
	return nil
}

func writeFindings(ctx context.Context, db *sql.DB, r *report.Report, opts Options) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, findingsSchema); err != nil {
		return fmt.Errorf("failed to create findings table: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO findings (run_id, kind, label, detail) VALUES (?, ?, ?, ?)`,
	)
	if err != nil {
		return err
	}
	defer stmt.Close()

	kind := r.Kind.String()
	for _, f := range r.Findings {
		if _, err := stmt.ExecContext(ctx, opts.RunID, kind, f.Label, f.Detail); err != nil {
			return fmt.Errorf("failed to insert finding %q: %w", f.Label, err)
		}
	}

	return tx.Commit()
}
