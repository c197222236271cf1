package todos

// CreateTodoRequest represents the create payload. Done always starts false.
type CreateTodoRequest struct {
	Title string `json:"title" example:"Buy milk" validate:"required,min=1,max=200"`
	Body  string `json:"body" example:"2% milk, 1 gal" validate:"required,min=1,max=500"`
}

// UpdateTodoRequest represents a partial update. Nil fields are left
// untouched; the owner can never be changed.
type UpdateTodoRequest struct {
	Title *string `json:"title,omitempty" validate:"omitempty,min=1,max=200"`
	Body  *string `json:"body,omitempty" validate:"omitempty,min=1,max=500"`
	Done  *bool   `json:"done,omitempty"`
}
