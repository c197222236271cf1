package books

// CreateBookRequest represents the create payload. Rating 0 fails the min
// rule, so an absent rating is rejected along with out-of-range ones.
type CreateBookRequest struct {
	BookName    string `json:"bookName" example:"The Go Programming Language" validate:"required,min=1,max=200"`
	Description string `json:"description" example:"A tour of Go from the ground up" validate:"required,min=1,max=500"`
	Rating      int    `json:"rating" example:"5" validate:"min=1,max=5"`
}

// UpdateBookRequest represents a partial update. The contract deliberately
// has no rating field: ratings are immutable after creation.
type UpdateBookRequest struct {
	BookName    *string `json:"bookName,omitempty" validate:"omitempty,min=1,max=200"`
	Description *string `json:"description,omitempty" validate:"omitempty,min=1,max=500"`
}
