package budget

import (
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/rodrigordgfs/CashWise-API/internal/domain/category"
)

type Budget struct {
	Id         ulid.ULID `json:"id"`
	UserId     string    `json:"userId"`
	CategoryId ulid.ULID `json:"categoryId"`
	Limit      float64   `json:"limit"`
	Date       time.Time `json:"date"`
	CreatedAt  time.Time `json:"createdAt"`
	UpdatedAt  time.Time `json:"updatedAt"`
}

// Period retorna o intervalo [from, to) do mês de referência do orçamento.
func (b *Budget) Period() (time.Time, time.Time) {
	from := time.Date(b.Date.Year(), b.Date.Month(), 1, 0, 0, 0, 0, time.UTC)
	return from, from.AddDate(0, 1, 0)
}

// WithSpent é a visão de leitura de um orçamento: a categoria associada e o
// total gasto no mês de referência, formatado com duas casas ("150.00").
// Spent nunca é persistido, é recomputado a cada leitura.
type WithSpent struct {
	*Budget
	Category *category.Category `json:"category,omitempty"`
	Spent    string             `json:"spent"`
}

// UpdateRequest carrega as alterações parciais de um orçamento. Campos nil
// preservam o valor atual.
type UpdateRequest struct {
	CategoryId *ulid.ULID
	Limit      *float64
	Date       *time.Time
}
