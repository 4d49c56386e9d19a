package contracts

type TransactionCreateRequest struct {
	Type        string  `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Description string  `json:"description" binding:"required,max=255"`
	CategoryId  string  `json:"categoryId"`
	Date        string  `json:"date" binding:"required"`
	Account     string  `json:"account" binding:"omitempty,max=100"`
	Amount      float64 `json:"amount" binding:"omitempty,gte=0"`
	Paid        bool    `json:"paid"`
}

type TransactionUpdateRequest struct {
	Type        *string  `json:"type" binding:"omitempty,oneof=INCOME EXPENSE"`
	Description *string  `json:"description" binding:"omitempty,max=255"`
	CategoryId  *string  `json:"categoryId"`
	Date        *string  `json:"date"`
	Account     *string  `json:"account" binding:"omitempty,max=100"`
	Amount      *float64 `json:"amount" binding:"omitempty,gte=0"`
	Paid        *bool    `json:"paid"`
}
