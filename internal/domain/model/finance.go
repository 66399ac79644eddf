package model

// TransactionType distinguishes income from expense entries.
type TransactionType string

const (
	TransactionExpense TransactionType = "expense"
	TransactionIncome  TransactionType = "income"
)

// Transaction represents a single financial entry. Dates are Gregorian
// YYYY-MM-DD strings, matching the backend's column format; the Jalali
// rendering happens at the presentation edge.
type Transaction struct {
	ID           string
	UserID       string
	Title        string
	Amount       float64
	Date         string
	Type         TransactionType
	CategoryID   string
	CategoryName string
	Description  string
}

// Category groups transactions for reporting.
type Category struct {
	ID     string
	UserID string
	Name   string
	Type   TransactionType // "expense", "income"; empty means both.
}

// BalanceSummary aggregates totals over a set of transactions.
type BalanceSummary struct {
	Income  float64
	Expense float64
}

// Net returns income minus expense.
func (b BalanceSummary) Net() float64 {
	return b.Income - b.Expense
}

// Summarize computes income and expense totals for the given transactions.
func Summarize(txs []Transaction) BalanceSummary {
	var s BalanceSummary
	for _, tx := range txs {
		switch tx.Type {
		case TransactionIncome:
			s.Income += tx.Amount
		case TransactionExpense:
			s.Expense += tx.Amount
		}
	}
	return s
}
