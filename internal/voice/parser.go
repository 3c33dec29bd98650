// Package voice converts free-text transaction utterances into structured
// candidates with a heuristic confidence score.
package voice

import (
	"regexp"
	"strings"

	"paisa/internal/core"
)

// Config holds the tuning constants of the parser. The values are heuristic
// weights, not probabilities; only their relative behavior matters (more
// keyword hits raise confidence, up to the cap).
type Config struct {
	BaseConfidence float64 // starting score once an amount is found
	TypeBonus      float64 // added when a type keyword matches
	CategoryBonus  float64 // added per keyword hit of the winning category
	MaxConfidence  float64 // hard cap on the final score
	Threshold      float64 // scores strictly above this are usable
}

// DefaultConfig returns the stock tuning.
func DefaultConfig() Config {
	return Config{
		BaseConfidence: 0.60,
		TypeBonus:      0.10,
		CategoryBonus:  0.05,
		MaxConfidence:  0.95,
		Threshold:      0.60,
	}
}

// amountPatterns is tried in order against the lower-cased transcript; the
// first pattern yielding a positive value wins. Group 1 always captures the
// numeric string, possibly with comma grouping.
var amountPatterns = []*regexp.Regexp{
	// verb-prefixed amount with a currency unit: "spent 250 rupees"
	regexp.MustCompile(`(?:spent|paid|cost|earned|received|got|made)\s+(?:me\s+)?(?:about\s+)?(?:around\s+)?(\d+(?:,?\d{3})*(?:\.\d{1,2})?)\s*(?:rupees?|₹|rs\.?)`),
	// bare amount with a currency unit: "250 rupees", "250₹", "rs 250" follows
	regexp.MustCompile(`(\d+(?:,?\d{3})*(?:\.\d{1,2})?)\s*(?:rupees?|₹|rs\.?)`),
	// currency-prefixed amount: "₹250"
	regexp.MustCompile(`(?:rupees?|₹|rs\.?)\s*(\d+(?:,?\d{3})*(?:\.\d{1,2})?)`),
	// verb-prefixed amount without a unit: "earned 5000 from freelance"
	regexp.MustCompile(`(?:spent|paid|cost|earned|received|got|made)\s+(?:me\s+)?(?:about\s+)?(?:around\s+)?(\d+(?:,?\d{3})*(?:\.\d{1,2})?)\b`),
	// prepositional amount: "for 800", "of about 300"
	regexp.MustCompile(`(?:for|of|about|around)\s+(\d+(?:,?\d{3})*(?:\.\d{1,2})?)`),
	// informal units
	regexp.MustCompile(`(\d+(?:,?\d{3})*(?:\.\d{1,2})?)\s*(?:bucks?|paisa)`),
}

// amountStripPattern removes amount+currency substrings from descriptions.
var amountStripPattern = regexp.MustCompile(`(?i)\d+(?:,\d{3})*(?:\.\d{1,2})?\s*(?:rupees?|₹|rs\.?|dollars?|\$|bucks?|paisa)?`)

var (
	wordStripPattern  = buildWordStripPattern()
	multiSpacePattern = regexp.MustCompile(`\s+`)
	trailingPunct     = regexp.MustCompile(`[.,!?]+$`)
)

func buildWordStripPattern() *regexp.Regexp {
	words := make([]string, 0, len(expenseKeywords)+len(incomeKeywords)+len(prepositions))
	words = append(words, expenseKeywords...)
	words = append(words, incomeKeywords...)
	words = append(words, prepositions...)
	return regexp.MustCompile(`(?i)\b(?:` + strings.Join(words, "|") + `)\b`)
}

// Parser maps raw utterances to transaction candidates.
type Parser struct {
	cfg Config
}

func NewParser(cfg Config) *Parser {
	return &Parser{cfg: cfg}
}

// Parse extracts a transaction candidate from a transcript. The second return
// value is false when no plausible amount is present; that is the expected
// outcome for non-transactional speech, not an error.
func (p *Parser) Parse(text string) (core.Candidate, bool) {
	lower := strings.ToLower(strings.TrimSpace(text))
	if lower == "" {
		return core.Candidate{}, false
	}

	amount, found := extractAmount(lower)
	if !found {
		return core.Candidate{}, false
	}

	confidence := p.cfg.BaseConfidence

	txType := core.Expense
	if containsAny(lower, incomeKeywords) {
		txType = core.Income
		confidence += p.cfg.TypeBonus
	} else if containsAny(lower, expenseKeywords) {
		confidence += p.cfg.TypeBonus
	}

	category, hits := classifyCategory(lower)
	confidence += float64(hits) * p.cfg.CategoryBonus

	if confidence > p.cfg.MaxConfidence {
		confidence = p.cfg.MaxConfidence
	}

	return core.Candidate{
		Type:        txType,
		Amount:      amount,
		Description: cleanDescription(text, category, txType),
		Category:    category,
		Confidence:  confidence,
	}, true
}

// Usable reports whether a candidate scored above the confidence threshold
// and may be offered for one-tap confirmation. At or below the threshold the
// caller must fall back to manual correction.
func (p *Parser) Usable(c core.Candidate) bool {
	return c.Confidence > p.cfg.Threshold
}

// Threshold exposes the configured usability cutoff.
func (p *Parser) Threshold() float64 {
	return p.cfg.Threshold
}

func extractAmount(lower string) (core.Money, bool) {
	for _, pat := range amountPatterns {
		m := pat.FindStringSubmatch(lower)
		if m == nil {
			continue
		}
		cents, err := core.ParseDecimalToCents(m[1])
		if err != nil {
			continue
		}
		return core.Money{Cents: cents}, true
	}
	return core.Money{}, false
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// classifyCategory picks the category with the most keyword hits. Ties keep
// the earlier entry of the table.
func classifyCategory(lower string) (string, int) {
	best := core.DefaultCategory
	bestScore := 0
	for _, entry := range categoryTable {
		score := 0
		for _, kw := range entry.keywords {
			if strings.Contains(lower, kw) {
				score++
			}
		}
		if score > bestScore {
			bestScore = score
			best = entry.name
		}
	}
	return best, bestScore
}

// cleanDescription strips amounts, currency units, type keywords and filler
// prepositions from the original-case transcript. Too-short remainders are
// replaced by a synthesized "<Category> income|expense" label.
func cleanDescription(text string, category string, txType core.TransactionType) string {
	desc := strings.TrimSpace(text)
	desc = amountStripPattern.ReplaceAllString(desc, "")
	desc = wordStripPattern.ReplaceAllString(desc, "")
	desc = multiSpacePattern.ReplaceAllString(desc, " ")
	desc = trailingPunct.ReplaceAllString(strings.TrimSpace(desc), "")
	desc = strings.TrimSpace(desc)

	if len(desc) < 3 {
		if txType == core.Income {
			return category + " income"
		}
		return category + " expense"
	}
	return desc
}
