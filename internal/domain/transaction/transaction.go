package transaction

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type Types string

const (
	Income  Types = "INCOME"
	Expense Types = "EXPENSE"
)

func (t Types) IsValid() bool {
	return t == Income || t == Expense
}

type Transaction struct {
	Id           ulid.ULID  `json:"id"`
	UserId       string     `json:"userId"`
	Type         Types      `json:"type"`
	Description  string     `json:"description"`
	CategoryId   *ulid.ULID `json:"categoryId"`
	CategoryName string     `json:"category,omitempty"`
	Date         time.Time  `json:"date"`
	Account      string     `json:"account"`
	Amount       float64    `json:"amount"`
	Paid         bool       `json:"paid"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// UpdateRequest carrega as alterações parciais de uma transação. Campos nil
// preservam o valor atual.
type UpdateRequest struct {
	Type        *Types
	Description *string
	CategoryId  *ulid.ULID
	Date        *time.Time
	Account     *string
	Amount      *float64
	Paid        *bool
}

// Filters restringe a listagem de transações. Date filtra o dia exato;
// PeriodFrom/PeriodTo filtram o intervalo [from, to]. SortAsc ordena por data
// crescente; o padrão é decrescente.
type Filters struct {
	Type       *Types
	Search     string
	Date       *time.Time
	PeriodFrom *time.Time
	PeriodTo   *time.Time
	CategoryId *ulid.ULID
	SortAsc    bool
}
