package models

// AuthTokens is the bearer pair issued by the server.
type AuthTokens struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

// Credentials is the login payload.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterData is the registration payload. Password2 repeats Password.
type RegisterData struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	Password2   string `json:"password2"`
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	PhoneNumber string `json:"phone_number,omitempty"`
	IsProvider  bool   `json:"is_provider,omitempty"`
}

// VerificationData confirms an email address with a one-time code.
type VerificationData struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

// PasswordReset sets a new password using a one-time code.
type PasswordReset struct {
	Email       string `json:"email"`
	OTP         string `json:"otp"`
	NewPassword string `json:"new_password"`
}

// AuthResponse is returned by login and email verification.
type AuthResponse struct {
	User   User       `json:"user"`
	Tokens AuthTokens `json:"tokens"`
}

// RegisterResponse is returned by registration.
type RegisterResponse struct {
	Message string `json:"message"`
	User    User   `json:"user"`
}

// MessageResponse is returned by endpoints that only acknowledge a request.
type MessageResponse struct {
	Message string `json:"message"`
}
