package google

import (
	"context"
	"strings"
	"testing"
)

func clearSheetsEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"GOOGLE_SPREADSHEET_ID",
		"GOOGLE_SHEET_NAME",
		"GOOGLE_SERVICE_ACCOUNT_JSON",
		"GOOGLE_SERVICE_ACCOUNT_FILE",
		"GOOGLE_APPLICATION_CREDENTIALS",
	} {
		t.Setenv(key, "")
	}
}

func TestNewFromEnvRequiresSpreadsheetID(t *testing.T) {
	clearSheetsEnv(t)

	_, err := NewFromEnv(context.Background())
	if err == nil {
		t.Fatal("expected error without GOOGLE_SPREADSHEET_ID")
	}
	if !strings.Contains(err.Error(), "GOOGLE_SPREADSHEET_ID") {
		t.Fatalf("error = %q, want mention of GOOGLE_SPREADSHEET_ID", err)
	}
}

func TestNewFromEnvRequiresCredentials(t *testing.T) {
	clearSheetsEnv(t)
	t.Setenv("GOOGLE_SPREADSHEET_ID", "sheet-123")

	_, err := NewFromEnv(context.Background())
	if err == nil {
		t.Fatal("expected error without service account credentials")
	}
	if !strings.Contains(err.Error(), "service account credentials") {
		t.Fatalf("error = %q, want mention of service account credentials", err)
	}
}
