// Package report reduces the transaction list into dashboard-ready month
// aggregates: income/expense totals, category breakdowns and a trailing
// spending trend.
package report

import (
	"time"

	"paisa/internal/core"
)

// palette cycles through the dashboard display colors in first-seen category
// order, so a category keeps its color as long as the breakdown is stable.
var palette = []string{"#FF6384", "#36A2EB", "#FFCE56", "#4BC0C0", "#9966FF", "#FF9F40", "#FF6384"}

// TrendDays is the fixed length of the trailing spending trend.
const TrendDays = 7

// Engine aggregates transactions against a configured monthly budget.
type Engine struct {
	budget core.Money
}

func NewEngine(budget core.Money) *Engine {
	return &Engine{budget: budget}
}

// Budget returns the configured monthly budget ceiling.
func (e *Engine) Budget() core.Money {
	return e.budget
}

// MonthTransactions selects transactions dated in the given year and month,
// preserving input order.
func MonthTransactions(txs []core.Transaction, year, month int) []core.Transaction {
	var out []core.Transaction
	for _, tx := range txs {
		if tx.Date.InMonth(year, month) {
			out = append(out, tx)
		}
	}
	return out
}

// Summarize computes income and expense totals for the month. Empty input
// yields zero sums, never an error.
func (e *Engine) Summarize(txs []core.Transaction, year, month int) core.MonthSummary {
	s := core.MonthSummary{Year: year, Month: month}
	for _, tx := range MonthTransactions(txs, year, month) {
		switch tx.Type {
		case core.Income:
			s.Income = s.Income.Add(tx.Amount)
		case core.Expense:
			s.Expenses = s.Expenses.Add(tx.Amount)
		}
	}
	s.Net = s.Income.Sub(s.Expenses)
	return s
}

// CategoryBreakdown groups the month's expense transactions by category,
// assigning palette colors in first-seen order and percentage shares of the
// expense total. All percentages are 0 when the total is 0.
func (e *Engine) CategoryBreakdown(txs []core.Transaction, year, month int) []core.CategoryShare {
	var (
		order  []string
		totals = map[string]*core.CategoryShare{}
		total  int64
	)
	for _, tx := range MonthTransactions(txs, year, month) {
		if tx.Type != core.Expense {
			continue
		}
		share, ok := totals[tx.Category]
		if !ok {
			share = &core.CategoryShare{
				Name:  tx.Category,
				Color: palette[len(order)%len(palette)],
			}
			totals[tx.Category] = share
			order = append(order, tx.Category)
		}
		share.Amount = share.Amount.Add(tx.Amount)
		share.Count++
		total += tx.Amount.Cents
	}

	out := make([]core.CategoryShare, 0, len(order))
	for _, name := range order {
		share := *totals[name]
		if total > 0 {
			share.Percentage = float64(share.Amount.Cents) / float64(total) * 100
		}
		out = append(out, share)
	}
	return out
}

// BudgetUtilization reports monthly expenses as a percentage of the budget,
// clamped to 100. A zero budget reports 0.
func (e *Engine) BudgetUtilization(expenses core.Money) float64 {
	if e.budget.Cents <= 0 {
		return 0
	}
	pct := float64(expenses.Cents) / float64(e.budget.Cents) * 100
	if pct > 100 {
		return 100
	}
	return pct
}

// Remaining is budget minus expenses, surfaced as-is for display. It goes
// negative when the month overshoots the budget.
func (e *Engine) Remaining(expenses core.Money) core.Money {
	return e.budget.Sub(expenses)
}

// TrendSeries sums expenses per day over the TrendDays-day window ending at
// now, oldest day first. Days without expenses contribute zero points.
func (e *Engine) TrendSeries(txs []core.Transaction, now time.Time) []core.TrendPoint {
	points := make([]core.TrendPoint, 0, TrendDays)
	byDay := map[string]int64{}
	for _, tx := range txs {
		if tx.Type == core.Expense {
			byDay[tx.Date.String()] += tx.Amount.Cents
		}
	}
	for i := TrendDays - 1; i >= 0; i-- {
		day := now.AddDate(0, 0, -i)
		d := core.NewDate(day.Year(), int(day.Month()), day.Day())
		points = append(points, core.TrendPoint{
			Date:   d,
			Label:  day.Format("Mon"),
			Amount: core.Money{Cents: byDay[d.String()]},
		})
	}
	return points
}
