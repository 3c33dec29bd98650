package core

// CategoryShare is one slice of the month's expense breakdown.
type CategoryShare struct {
	Name       string
	Amount     Money
	Color      string  // stable display color, assigned in first-seen order
	Percentage float64 // share of total monthly expenses, 0 when total is 0
	Count      int     // number of transactions in the category
}

// MonthSummary is a compact aggregate for a specific year+month.
type MonthSummary struct {
	Year     int
	Month    int // 1-12
	Income   Money
	Expenses Money
	Net      Money // Income - Expenses, may be negative
}

// TrendPoint is one day of the trailing spending trend.
type TrendPoint struct {
	Date   Date
	Label  string // short weekday name (Mon..Sun)
	Amount Money  // total expenses on that day
}
