package goal

import (
	"time"

	"github.com/oklog/ulid/v2"
)

type Goal struct {
	Id            ulid.ULID `json:"id"`
	UserId        string    `json:"userId"`
	CategoryId    ulid.ULID `json:"categoryId"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	TargetAmount  float64   `json:"targetAmount"`
	CurrentAmount float64   `json:"currentAmount"`
	Deadline      time.Time `json:"deadline"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// UpdateRequest carrega as alterações parciais de uma meta. Campos nil
// preservam o valor atual.
type UpdateRequest struct {
	CategoryId    *ulid.ULID
	Title         *string
	Description   *string
	TargetAmount  *float64
	CurrentAmount *float64
	Deadline      *time.Time
}
