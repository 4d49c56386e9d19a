package contracts

type GoalCreateRequest struct {
	CategoryId    string  `json:"categoryId"`
	Title         string  `json:"title" binding:"required,max=100"`
	Description   string  `json:"description" binding:"omitempty,max=255"`
	TargetAmount  float64 `json:"targetAmount" binding:"required,gt=0"`
	CurrentAmount float64 `json:"currentAmount" binding:"omitempty,gte=0"`
	Deadline      string  `json:"deadline" binding:"required"`
}

type GoalUpdateRequest struct {
	CategoryId    *string  `json:"categoryId"`
	Title         *string  `json:"title" binding:"omitempty,max=100"`
	Description   *string  `json:"description" binding:"omitempty,max=255"`
	TargetAmount  *float64 `json:"targetAmount" binding:"omitempty,gt=0"`
	CurrentAmount *float64 `json:"currentAmount" binding:"omitempty,gte=0"`
	Deadline      *string  `json:"deadline"`
}
