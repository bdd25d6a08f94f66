package validation

import "github.com/dmitrijs2005/handylink/internal/client/models"

type LoginForm struct {
	Email    string `json:"email" validate:"required,email_addr"`
	Password string `json:"password" validate:"required"`
}

func (f LoginForm) Credentials() models.Credentials {
	return models.Credentials{Email: f.Email, Password: f.Password}
}

type RegisterForm struct {
	FirstName       string `json:"first_name" validate:"notblank"`
	LastName        string `json:"last_name" validate:"notblank"`
	Email           string `json:"email" validate:"required,email_addr"`
	PhoneNumber     string `json:"phone_number" validate:"notblank,phone"`
	Password        string `json:"password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=Password"`
	IsProvider      bool   `json:"is_provider"`
}

func (f RegisterForm) RegisterData() models.RegisterData {
	return models.RegisterData{
		Email:       f.Email,
		Password:    f.Password,
		Password2:   f.ConfirmPassword,
		FirstName:   f.FirstName,
		LastName:    f.LastName,
		PhoneNumber: f.PhoneNumber,
		IsProvider:  f.IsProvider,
	}
}

type VerifyForm struct {
	Email string `json:"email" validate:"required,email_addr"`
	OTP   string `json:"otp" validate:"required,otp"`
}

func (f VerifyForm) VerificationData() models.VerificationData {
	return models.VerificationData{Email: f.Email, OTP: f.OTP}
}

type ForgotPasswordForm struct {
	Email string `json:"email" validate:"required,email_addr"`
}

type ResetPasswordForm struct {
	Email           string `json:"email" validate:"required,email_addr"`
	OTP             string `json:"otp" validate:"required,otp"`
	NewPassword     string `json:"new_password" validate:"required,min=8"`
	ConfirmPassword string `json:"confirm_password" validate:"required,eqfield=NewPassword"`
}

func (f ResetPasswordForm) PasswordReset() models.PasswordReset {
	return models.PasswordReset{Email: f.Email, OTP: f.OTP, NewPassword: f.NewPassword}
}

// ProfileForm checks only the fields being changed.
type ProfileForm struct {
	FirstName   *string `json:"first_name" validate:"omitnil,notblank"`
	LastName    *string `json:"last_name" validate:"omitnil,notblank"`
	PhoneNumber *string `json:"phone_number" validate:"omitnil,phone"`
}

func (f ProfileForm) ProfileUpdate() models.ProfileUpdate {
	return models.ProfileUpdate{FirstName: f.FirstName, LastName: f.LastName, PhoneNumber: f.PhoneNumber}
}

type JobForm struct {
	Title       string  `json:"title" validate:"required,min=10,max=100"`
	Description string  `json:"description" validate:"required,min=20,max=1000"`
	Category    string  `json:"category" validate:"required,category"`
	Location    string  `json:"location" validate:"notblank"`
	Budget      float64 `json:"budget" validate:"gte=10,lte=10000"`
}

func (f JobForm) NewJob() models.NewJob {
	return models.NewJob{
		Title:       f.Title,
		Description: f.Description,
		Category:    f.Category,
		Location:    f.Location,
		Budget:      f.Budget,
	}
}
