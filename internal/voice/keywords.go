package voice

// Keyword tables driving transcript classification. Declaration order matters
// for categories: when two categories score the same number of keyword hits,
// the earlier one wins.

var expenseKeywords = []string{
	"spent", "paid", "bought", "cost", "expense", "bill", "purchase",
	"spend", "pay", "buy", "shopping", "ordered", "charged",
}

var incomeKeywords = []string{
	"earned", "received", "got", "income", "salary", "freelance",
	"earn", "receive", "get", "made", "profit", "bonus", "commission",
}

// prepositions stripped from descriptions alongside the type keywords.
var prepositions = []string{"on", "for", "from", "to", "at", "in"}

type categoryEntry struct {
	name     string
	keywords []string
}

var categoryTable = []categoryEntry{
	{"Food", []string{
		"food", "lunch", "dinner", "breakfast", "restaurant", "coffee", "snack",
		"meal", "eating", "cafe", "pizza", "burger", "sandwich", "drink", "tea",
		"grocery", "groceries", "supermarket", "kitchen", "cooking", "recipe",
	}},
	{"Travel", []string{
		"travel", "uber", "taxi", "bus", "train", "flight", "petrol", "gas",
		"car", "vehicle", "transport", "metro", "auto", "rickshaw", "ola",
		"fuel", "trip", "journey", "commute", "ticket",
	}},
	{"Bills", []string{
		"bill", "electricity", "water", "internet", "phone", "rent", "wifi",
		"mobile", "landline", "cable", "insurance", "loan", "emi", "payment",
		"utility", "gas", "maintenance", "society",
	}},
	{"Shopping", []string{
		"shopping", "clothes", "amazon", "store", "purchase", "buy", "bought",
		"dress", "shirt", "shoes", "accessories", "online", "flipkart", "mall",
		"clothing", "fashion", "gadget", "electronics",
	}},
	{"Entertainment", []string{
		"movie", "entertainment", "games", "music", "netflix", "youtube", "spotify",
		"cinema", "theatre", "concert", "show", "party", "fun", "gaming",
		"subscription", "streaming", "book",
	}},
	{"Healthcare", []string{
		"doctor", "medicine", "hospital", "health", "medical", "pharmacy",
		"checkup", "treatment", "clinic", "dentist", "surgery", "prescription",
		"therapy", "consultation", "lab", "test",
	}},
	{"Salary", []string{"salary", "paycheck", "wages", "income", "job", "work", "office"}},
	{"Freelance", []string{"freelance", "client", "project", "contract", "gig", "side", "hustle"}},
	{"Investment", []string{"investment", "stock", "mutual", "fund", "dividend", "interest", "profit"}},
	{"Refund", []string{"refund", "return", "cashback", "reimbursement"}},
}
