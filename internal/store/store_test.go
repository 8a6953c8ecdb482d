package store

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/rmgdri/go-intake/pkg/intake"
)

var _ intake.Writer = (*Store)(nil)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "intake.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleSubmission() intake.Submission {
	return intake.Submission{
		FormKey:              "owner-surrender",
		FormVersion:          1,
		NormalizationVersion: 1,
		Canonical:            map[string]any{"dog_name": "Zeus", "owner_email": "owner@example.com"},
		Raw:                  map[string]any{"dog-name": "Zeus"},
		ApplicantName:        "Jordan Smith",
		ApplicantEmail:       "owner@example.com",
		ApplicantPhone:       "303-555-0101",
		ClientID:             "203.0.113.9",
		SubmittedAt:          time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestWriteCreatesApplicationAndEvent(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	receipt, err := s.Write(ctx, sampleSubmission())
	require.NoError(t, err)
	require.NotEmpty(t, receipt.ApplicationID)
	require.NotEmpty(t, receipt.EventID)
	require.NotEqual(t, receipt.ApplicationID, receipt.EventID)

	var formKey, status, profile string
	err = s.db.QueryRowContext(ctx,
		`SELECT form_key, status, applicant_profile FROM applications WHERE id = ?`,
		receipt.ApplicationID).Scan(&formKey, &status, &profile)
	require.NoError(t, err)
	require.Equal(t, "owner-surrender", formKey)
	require.Equal(t, "submitted", status)

	var canonical map[string]any
	require.NoError(t, json.Unmarshal([]byte(profile), &canonical))
	require.Equal(t, "Zeus", canonical["dog_name"])

	var appID, eventType, toStatus string
	err = s.db.QueryRowContext(ctx,
		`SELECT application_id, event_type, to_status FROM application_events WHERE id = ?`,
		receipt.EventID).Scan(&appID, &eventType, &toStatus)
	require.NoError(t, err)
	require.Equal(t, receipt.ApplicationID, appID)
	require.Equal(t, "status_change", eventType)
	require.Equal(t, "submitted", toStatus)
}

func TestEmptyApplicantFieldsStoredAsNull(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	sub := sampleSubmission()
	sub.ApplicantName = ""
	sub.ApplicantEmail = ""
	sub.ApplicantPhone = ""

	receipt, err := s.Write(ctx, sub)
	require.NoError(t, err)

	var name, email, phone *string
	err = s.db.QueryRowContext(ctx,
		`SELECT applicant_name, applicant_email, applicant_phone FROM applications WHERE id = ?`,
		receipt.ApplicationID).Scan(&name, &email, &phone)
	require.NoError(t, err)
	require.Nil(t, name)
	require.Nil(t, email)
	require.Nil(t, phone)
}

func TestCount(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		_, err := s.Write(ctx, sampleSubmission())
		require.NoError(t, err)
	}
	other := sampleSubmission()
	other.FormKey = "adopt-foster"
	_, err := s.Write(ctx, other)
	require.NoError(t, err)

	total, err := s.Count(ctx, "")
	require.NoError(t, err)
	require.Equal(t, 4, total)

	surrender, err := s.Count(ctx, "owner-surrender")
	require.NoError(t, err)
	require.Equal(t, 3, surrender)
}

func TestReopenKeepsData(t *testing.T) {
	path := filepath.Join(t.TempDir(), "intake.db")
	s, err := Open(path)
	require.NoError(t, err)
	_, err = s.Write(context.Background(), sampleSubmission())
	require.NoError(t, err)
	require.NoError(t, s.Close())

	s2, err := Open(path)
	require.NoError(t, err)
	defer s2.Close()
	n, err := s2.Count(context.Background(), "")
	require.NoError(t, err)
	require.Equal(t, 1, n)
}
