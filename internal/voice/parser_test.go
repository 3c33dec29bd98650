package voice

import (
	"math"
	"testing"

	"paisa/internal/core"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestParseTranscripts(t *testing.T) {
	p := NewParser(DefaultConfig())

	tests := []struct {
		name           string
		transcript     string
		wantType       core.TransactionType
		wantCents      int64
		wantCategory   string
		wantConfidence float64
	}{
		{
			name:           "spent with currency unit",
			transcript:     "I spent 250 rupees on lunch",
			wantType:       core.Expense,
			wantCents:      25000,
			wantCategory:   "Food",
			wantConfidence: 0.75,
		},
		{
			name:           "earned without currency unit",
			transcript:     "Earned 5000 from freelance project",
			wantType:       core.Income,
			wantCents:      500000,
			wantCategory:   "Freelance",
			wantConfidence: 0.80,
		},
		{
			name:           "paid for bill",
			transcript:     "Paid 1500 for phone bill",
			wantType:       core.Expense,
			wantCents:      150000,
			wantCategory:   "Bills",
			wantConfidence: 0.80,
		},
		{
			name:           "bare amount with unit",
			transcript:     "Bought groceries for 800 rupees",
			wantType:       core.Expense,
			wantCents:      80000,
			wantCategory:   "Food",
			// "groceries" hits both the grocery and groceries keywords.
			wantConfidence: 0.80,
		},
		{
			name:           "prepositional amount",
			transcript:     "Received salary of 45000",
			wantType:       core.Income,
			wantCents:      4500000,
			wantCategory:   "Salary",
			wantConfidence: 0.75,
		},
		{
			name:           "comma grouped amount",
			transcript:     "I spent 1,500 rupees on shopping",
			wantType:       core.Expense,
			wantCents:      150000,
			wantCategory:   "Shopping",
			wantConfidence: 0.75,
		},
		{
			name:           "currency prefixed amount",
			transcript:     "movie night cost rs 300",
			wantType:       core.Expense,
			wantCents:      30000,
			wantCategory:   "Entertainment",
			wantConfidence: 0.75,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := p.Parse(tt.transcript)
			if !ok {
				t.Fatalf("Parse(%q) found nothing", tt.transcript)
			}
			if c.Type != tt.wantType {
				t.Fatalf("type = %q, want %q", c.Type, tt.wantType)
			}
			if c.Amount.Cents != tt.wantCents {
				t.Fatalf("amount = %d cents, want %d", c.Amount.Cents, tt.wantCents)
			}
			if c.Category != tt.wantCategory {
				t.Fatalf("category = %q, want %q", c.Category, tt.wantCategory)
			}
			if !almostEqual(c.Confidence, tt.wantConfidence) {
				t.Fatalf("confidence = %v, want %v", c.Confidence, tt.wantConfidence)
			}
			if c.Description == "" {
				t.Fatal("description must not be empty")
			}
		})
	}
}

func TestParseNoAmount(t *testing.T) {
	p := NewParser(DefaultConfig())

	for _, transcript := range []string{"", "   ", "hello there", "what a lovely day"} {
		if c, ok := p.Parse(transcript); ok {
			t.Fatalf("Parse(%q) = %+v, want no result", transcript, c)
		}
	}
}

func TestParseDefaultsToExpenseAndOther(t *testing.T) {
	p := NewParser(DefaultConfig())

	c, ok := p.Parse("100 rupees at airport")
	if !ok {
		t.Fatal("expected a candidate")
	}
	if c.Type != core.Expense {
		t.Fatalf("type = %q, want expense default", c.Type)
	}
	if c.Category != core.DefaultCategory {
		t.Fatalf("category = %q, want %q", c.Category, core.DefaultCategory)
	}
	if !almostEqual(c.Confidence, 0.60) {
		t.Fatalf("confidence = %v, want base 0.60", c.Confidence)
	}
	if p.Usable(c) {
		t.Fatal("base confidence must not clear the threshold")
	}
}

func TestParseConfidenceCap(t *testing.T) {
	p := NewParser(DefaultConfig())

	c, ok := p.Parse("spent 100 rupees on food lunch dinner breakfast restaurant coffee snack meal")
	if !ok {
		t.Fatal("expected a candidate")
	}
	if !almostEqual(c.Confidence, DefaultConfig().MaxConfidence) {
		t.Fatalf("confidence = %v, want cap %v", c.Confidence, DefaultConfig().MaxConfidence)
	}
	if !p.Usable(c) {
		t.Fatal("capped candidate must be usable")
	}
}

func TestParseCategoryTieKeepsEarlierEntry(t *testing.T) {
	p := NewParser(DefaultConfig())

	// "gas" scores one hit in both Travel and Bills; Travel is declared first.
	c, ok := p.Parse("paid 100 rupees for gas")
	if !ok {
		t.Fatal("expected a candidate")
	}
	if c.Category != "Travel" {
		t.Fatalf("category = %q, want Travel on tie", c.Category)
	}
}

func TestParseSynthesizedDescription(t *testing.T) {
	p := NewParser(DefaultConfig())

	// Everything except the amount is a stripped keyword, so the description
	// falls back to the category label.
	c, ok := p.Parse("spent 100 rupees")
	if !ok {
		t.Fatal("expected a candidate")
	}
	if c.Description != "Other expense" {
		t.Fatalf("description = %q, want synthesized label", c.Description)
	}
}

func TestUsableThresholdIsStrict(t *testing.T) {
	p := NewParser(DefaultConfig())

	at := core.Candidate{Confidence: DefaultConfig().Threshold}
	above := core.Candidate{Confidence: DefaultConfig().Threshold + 0.01}

	if p.Usable(at) {
		t.Fatal("candidate at the threshold must not be usable")
	}
	if !p.Usable(above) {
		t.Fatal("candidate above the threshold must be usable")
	}
}

func TestSampleTranscriptsAllParse(t *testing.T) {
	p := NewParser(DefaultConfig())

	for _, sample := range SampleTranscripts() {
		c, ok := p.Parse(sample)
		if !ok {
			t.Fatalf("sample %q did not parse", sample)
		}
		if !p.Usable(c) {
			t.Fatalf("sample %q scored %v, below the threshold", sample, c.Confidence)
		}
	}
}
