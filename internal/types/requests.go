package types

import "github.com/go-playground/validator/v10"

// CreateThreadRequest represents a new community post.
type CreateThreadRequest struct {
	Title string `json:"title" validate:"required,min=1,max=200"`
	Body  string `json:"body" validate:"required,min=1"`
}

// UpdateThreadRequest represents an edit to an existing post.
type UpdateThreadRequest struct {
	Title string `json:"title" validate:"required,min=1,max=200"`
	Body  string `json:"body" validate:"required,min=1"`
}

// CreateCommentRequest represents a reply on a thread.
type CreateCommentRequest struct {
	Body string `json:"body" validate:"required,min=1"`
}

// CustomPillRequest represents a user-entered product outside the catalog.
type CustomPillRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=200"`
	Brand       string `json:"brand,omitempty" validate:"max=200"`
	Memo        string `json:"memo,omitempty"`
	Ingredients string `json:"ingredients,omitempty"`
}

// ChatRequest represents a recommendation chatbot message.
type ChatRequest struct {
	Message string `json:"message" validate:"required,min=1"`
}

// Validate validates the CreateThreadRequest using the validator.
func (r *CreateThreadRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the UpdateThreadRequest using the validator.
func (r *UpdateThreadRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the CreateCommentRequest using the validator.
func (r *CreateCommentRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the CustomPillRequest using the validator.
func (r *CustomPillRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the ChatRequest using the validator.
func (r *ChatRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
