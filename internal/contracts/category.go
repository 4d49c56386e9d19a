package contracts

type CategoryCreateRequest struct {
	Name  string `json:"name" binding:"required,max=100"`
	Type  string `json:"type" binding:"required,oneof=INCOME EXPENSE"`
	Color string `json:"color" binding:"omitempty,max=7"`
	Icon  string `json:"icon" binding:"omitempty,max=50"`
}

type CategoryUpdateRequest struct {
	Name  *string `json:"name" binding:"omitempty,max=100"`
	Type  *string `json:"type" binding:"omitempty,oneof=INCOME EXPENSE"`
	Color *string `json:"color" binding:"omitempty,max=7"`
	Icon  *string `json:"icon" binding:"omitempty,max=50"`
}
