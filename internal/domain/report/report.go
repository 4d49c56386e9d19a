package report

import (
	"github.com/oklog/ulid/v2"

	"github.com/rodrigordgfs/CashWise-API/internal/domain/transaction"
)

// Relatórios são derivados, nunca persistidos.

type MonthlyReport struct {
	Name    string  `json:"name"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

type CategoryReport struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Fill  string  `json:"fill"`
}

type BalanceReport struct {
	Name    string  `json:"name"`
	Balance float64 `json:"balance"`
}

type SummaryReport struct {
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
	Balance float64 `json:"balance"`
}

// CategoryTransactions agrupa uma categoria e as transações dela dentro do
// intervalo consultado.
type CategoryTransactions struct {
	CategoryId   ulid.ULID
	Name         string
	Color        string
	Transactions []*transaction.Transaction
}
