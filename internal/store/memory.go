package store

import (
	"context"
	"sync"

	"paisa/internal/core"
)

// Memory keeps transactions in a mutex-guarded slice, newest first. All state
// is lost on restart; the sqlite-backed repository covers persistence.
type Memory struct {
	mu    sync.Mutex
	items []core.Transaction
}

var _ Store = (*Memory)(nil)

func NewMemory() *Memory {
	return &Memory{}
}

// NewMemorySeeded returns a store preloaded with the demo dataset shown on
// first launch.
func NewMemorySeeded() *Memory {
	m := NewMemory()
	for _, tx := range seedTransactions() {
		tx.ID = NewID()
		m.items = append(m.items, tx)
	}
	return m
}

func (m *Memory) List(_ context.Context) ([]core.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]core.Transaction, len(m.items))
	copy(out, m.items)
	return out, nil
}

func (m *Memory) Add(_ context.Context, draft core.Transaction) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	draft.ID = NewID()
	m.items = append([]core.Transaction{draft}, m.items...)
	return draft.ID, nil
}

func (m *Memory) Remove(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, tx := range m.items {
		if tx.ID == id {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return nil
}

func (m *Memory) Replace(_ context.Context, id string, draft core.Transaction) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, tx := range m.items {
		if tx.ID == id {
			draft.ID = id
			m.items[i] = draft
			return nil
		}
	}
	return nil
}

func seedTransactions() []core.Transaction {
	return []core.Transaction{
		{Type: core.Expense, Amount: core.Money{Cents: 120000}, Category: "Food", Description: "Grocery shopping at Whole Foods", Date: core.NewDate(2024, 1, 15)},
		{Type: core.Expense, Amount: core.Money{Cents: 80000}, Category: "Bills", Description: "Electricity bill - January", Date: core.NewDate(2024, 1, 14)},
		{Type: core.Income, Amount: core.Money{Cents: 4500000}, Category: "Salary", Description: "Monthly salary from TechCorp", Date: core.NewDate(2024, 1, 1)},
		{Type: core.Expense, Amount: core.Money{Cents: 250000}, Category: "Shopping", Description: "Winter clothes from Zara", Date: core.NewDate(2024, 1, 10)},
		{Type: core.Expense, Amount: core.Money{Cents: 150000}, Category: "Entertainment", Description: "Movie tickets and dinner", Date: core.NewDate(2024, 1, 8)},
		{Type: core.Income, Amount: core.Money{Cents: 500000}, Category: "Freelance", Description: "Web development project", Date: core.NewDate(2024, 1, 5)},
	}
}
