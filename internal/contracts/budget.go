package contracts

type BudgetCreateRequest struct {
	CategoryId string  `json:"categoryId" binding:"required"`
	Limit      float64 `json:"limit" binding:"required,gt=0"`
	Date       string  `json:"date" binding:"required"`
}

type BudgetUpdateRequest struct {
	CategoryId *string  `json:"categoryId"`
	Limit      *float64 `json:"limit" binding:"omitempty,gt=0"`
	Date       *string  `json:"date"`
}
