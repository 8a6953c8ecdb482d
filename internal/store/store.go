// Package store persists accepted submissions to SQLite. Every submission
// produces two rows: an applications record and a status_change audit event,
// written in one transaction so an application can never exist without its
// audit trail.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/rmgdri/go-intake/pkg/intake"
)

// Store implements intake.Writer over a SQLite database.
type Store struct {
	db *sql.DB
}

// Open initializes the SQLite database at the given path.
func Open(path string) (*Store, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	s := &Store{db: db}
	if err := s.initialize(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// initialize creates the required tables.
func (s *Store) initialize() error {
	applicationsTable := `
	CREATE TABLE IF NOT EXISTS applications (
		id TEXT PRIMARY KEY,
		form_key TEXT NOT NULL,
		form_version INTEGER NOT NULL,
		normalization_version INTEGER NOT NULL DEFAULT 0,
		status TEXT NOT NULL DEFAULT 'submitted',
		source TEXT NOT NULL DEFAULT 'web_form',
		applicant_name TEXT,
		applicant_email TEXT,
		applicant_phone TEXT,
		applicant_profile TEXT NOT NULL,
		raw_payload TEXT NOT NULL,
		client_id TEXT,
		submitted_at DATETIME NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_applications_form_key ON applications(form_key);
	CREATE INDEX IF NOT EXISTS idx_applications_email ON applications(applicant_email);
	CREATE INDEX IF NOT EXISTS idx_applications_status ON applications(status);
	`

	eventsTable := `
	CREATE TABLE IF NOT EXISTS application_events (
		id TEXT PRIMARY KEY,
		application_id TEXT NOT NULL REFERENCES applications(id),
		event_type TEXT NOT NULL,
		from_status TEXT,
		to_status TEXT,
		actor_user_id TEXT,
		details TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_events_application ON application_events(application_id);
	`

	for _, table := range []string{applicationsTable, eventsTable} {
		if _, err := s.db.Exec(table); err != nil {
			return fmt.Errorf("failed to create table: %w", err)
		}
	}
	return nil
}

// Write inserts the application row and its submitted audit event in a
// single transaction.
func (s *Store) Write(ctx context.Context, sub intake.Submission) (intake.Receipt, error) {
	profile, err := json.Marshal(sub.Canonical)
	if err != nil {
		return intake.Receipt{}, fmt.Errorf("failed to encode canonical payload: %w", err)
	}
	raw, err := json.Marshal(sub.Raw)
	if err != nil {
		return intake.Receipt{}, fmt.Errorf("failed to encode raw payload: %w", err)
	}
	details, err := json.Marshal(map[string]any{
		"source":                "public_intake",
		"form_version":          sub.FormVersion,
		"normalization_version": sub.NormalizationVersion,
	})
	if err != nil {
		return intake.Receipt{}, fmt.Errorf("failed to encode event details: %w", err)
	}

	appID := uuid.NewString()
	eventID := uuid.NewString()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return intake.Receipt{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx, `
		INSERT INTO applications (
			id, form_key, form_version, normalization_version,
			status, source,
			applicant_name, applicant_email, applicant_phone,
			applicant_profile, raw_payload, client_id, submitted_at
		) VALUES (?, ?, ?, ?, 'submitted', 'web_form', ?, ?, ?, ?, ?, ?, ?)`,
		appID, sub.FormKey, sub.FormVersion, sub.NormalizationVersion,
		nullable(sub.ApplicantName), nullable(sub.ApplicantEmail), nullable(sub.ApplicantPhone),
		string(profile), string(raw), nullable(sub.ClientID), sub.SubmittedAt)
	if err != nil {
		return intake.Receipt{}, fmt.Errorf("failed to insert application: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO application_events (
			id, application_id, event_type, from_status, to_status, details
		) VALUES (?, ?, 'status_change', NULL, 'submitted', ?)`,
		eventID, appID, string(details))
	if err != nil {
		return intake.Receipt{}, fmt.Errorf("failed to insert audit event: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return intake.Receipt{}, fmt.Errorf("failed to commit submission: %w", err)
	}
	return intake.Receipt{ApplicationID: appID, EventID: eventID}, nil
}

// Count returns the number of stored applications, optionally filtered by
// form key. The diagnostic CLI uses it for smoke checks.
func (s *Store) Count(ctx context.Context, formKey string) (int, error) {
	var n int
	var err error
	if formKey == "" {
		err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM applications`).Scan(&n)
	} else {
		err = s.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM applications WHERE form_key = ?`, formKey).Scan(&n)
	}
	if err != nil {
		return 0, fmt.Errorf("failed to count applications: %w", err)
	}
	return n, nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
