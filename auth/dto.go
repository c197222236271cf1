package auth

// SignupRequest represents the signup request payload. Constraints are
// declared as validator tags and enforced before any persistence attempt.
type SignupRequest struct {
	Email           string `json:"email" example:"user@example.com" validate:"required,email"`
	Username        string `json:"username" example:"newuser" validate:"required,min=2,max=140"`
	Password        string `json:"password" example:"Str0ngpassword" validate:"required,min=6,max=90,upperchar,digitchar"`
	ConfirmPassword string `json:"confirmPassword" example:"Str0ngpassword" validate:"required,min=6,max=90,eqfield=Password"`
}

// LoginRequest represents the login request payload.
type LoginRequest struct {
	Email    string `json:"email" example:"user@example.com"`
	Password string `json:"password" example:"Str0ngpassword"`
}

// SignupResponse is returned on successful registration.
type SignupResponse struct {
	Message string `json:"message" example:"Registered successfully!"`
	Token   string `json:"token"`
}

// LoginResponse is returned on successful login.
type LoginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username" example:"newuser"`
}
