package core

// DefaultCategory is used when no category keyword matches an utterance and as
// the catch-all choice in the manual entry form.
const DefaultCategory = "Other"

var (
	expenseCategories = []string{"Food", "Travel", "Bills", "Shopping", "Entertainment", "Healthcare", DefaultCategory}
	incomeCategories  = []string{"Salary", "Freelance", "Investment", "Refund", DefaultCategory}
)

// CategoriesFor returns the selectable category vocabulary for a transaction
// type. The slice is a copy; callers may reorder it freely.
func CategoriesFor(t TransactionType) []string {
	var src []string
	switch t {
	case Income:
		src = incomeCategories
	case Expense:
		src = expenseCategories
	default:
		return nil
	}
	out := make([]string, len(src))
	copy(out, src)
	return out
}
