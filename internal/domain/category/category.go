package category

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

type Category struct {
	Id        ulid.ULID `json:"id"`
	UserId    string    `json:"userId"`
	Name      string    `json:"name"`
	Type      Types     `json:"type"`
	Color     string    `json:"color"`
	Icon      string    `json:"icon"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// UpdateRequest carrega as alterações parciais de uma categoria. Campos nil
// preservam o valor atual.
type UpdateRequest struct {
	Name  *string
	Type  *Types
	Color *string
	Icon  *string
}

// Filters restringe a listagem de categorias.
type Filters struct {
	Type *Types
}
