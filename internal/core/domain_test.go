package core

import (
	"errors"
	"strings"
	"testing"
)

func validTransaction() Transaction {
	return Transaction{
		Type:        Expense,
		Amount:      Money{Cents: 25000},
		Category:    "Food",
		Description: "Lunch at cafe",
		Date:        NewDate(2024, 1, 15),
	}
}

func TestTransactionValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Transaction)
		wantErr error
	}{
		{"valid", func(tx *Transaction) {}, nil},
		{"zero amount", func(tx *Transaction) { tx.Amount = Money{} }, ErrInvalidAmount},
		{"negative amount", func(tx *Transaction) { tx.Amount = Money{Cents: -100} }, ErrInvalidAmount},
		{"bad type", func(tx *Transaction) { tx.Type = "transfer" }, ErrInvalidType},
		{"empty description", func(tx *Transaction) { tx.Description = "   " }, ErrEmptyDescription},
		{"long description", func(tx *Transaction) { tx.Description = strings.Repeat("x", 201) }, ErrDescriptionTooLong},
		{"empty category", func(tx *Transaction) { tx.Category = "" }, ErrEmptyCategory},
		{"zero date", func(tx *Transaction) { tx.Date = Date{} }, ErrInvalidDate},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := validTransaction()
			tt.mutate(&tx)
			err := tx.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2024-01-15")
	if err != nil {
		t.Fatalf("ParseDate unexpected error: %v", err)
	}
	if d.Year() != 2024 || d.Month() != 1 || d.Day() != 15 {
		t.Fatalf("ParseDate = %v, want 2024-01-15", d)
	}
	if d.String() != "2024-01-15" {
		t.Fatalf("String() = %q, want 2024-01-15", d.String())
	}

	for _, bad := range []string{"", "15/01/2024", "2024-13-01", "2024-01-32", "yesterday"} {
		if _, err := ParseDate(bad); !errors.Is(err, ErrInvalidDate) {
			t.Fatalf("ParseDate(%q) = %v, want ErrInvalidDate", bad, err)
		}
	}
}

func TestDateInMonth(t *testing.T) {
	d := NewDate(2024, 1, 31)

	if !d.InMonth(2024, 1) {
		t.Fatal("expected date in 2024-01")
	}
	if d.InMonth(2024, 2) {
		t.Fatal("date must not match 2024-02")
	}
	if d.InMonth(2023, 1) {
		t.Fatal("date must not match 2023-01")
	}
}

func TestCategoriesFor(t *testing.T) {
	expense := CategoriesFor(Expense)
	income := CategoriesFor(Income)

	if len(expense) == 0 || expense[len(expense)-1] != DefaultCategory {
		t.Fatalf("expense categories = %v, want trailing %q", expense, DefaultCategory)
	}
	if len(income) == 0 || income[len(income)-1] != DefaultCategory {
		t.Fatalf("income categories = %v, want trailing %q", income, DefaultCategory)
	}

	// Callers get a copy, not the shared backing array.
	expense[0] = "Mutated"
	if CategoriesFor(Expense)[0] == "Mutated" {
		t.Fatal("CategoriesFor must return a copy")
	}
}
