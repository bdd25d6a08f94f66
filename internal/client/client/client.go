package client

import (
	"context"

	"github.com/dmitrijs2005/handylink/internal/client/models"
)

// Client is the account half of the HandyLink API.
type Client interface {
	Login(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error)
	Register(ctx context.Context, data models.RegisterData) (*models.RegisterResponse, error)
	VerifyEmail(ctx context.Context, data models.VerificationData) (*models.AuthResponse, error)
	RefreshToken(ctx context.Context, refreshToken string) (*models.AuthTokens, error)
	ForgotPassword(ctx context.Context, email string) (*models.MessageResponse, error)
	ResetPassword(ctx context.Context, data models.PasswordReset) (*models.MessageResponse, error)
	// UpdateProfile needs an access token set with WithAccessToken.
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (*models.User, error)
}

// Marketplace is the jobs/providers/payments/reviews/notifications half of
// the API. Every call needs an access token set with WithAccessToken.
type Marketplace interface {
	ListJobs(ctx context.Context, filter models.JobFilter) (*models.Page[models.Job], error)
	GetJob(ctx context.Context, id string) (*models.Job, error)
	CreateJob(ctx context.Context, job models.NewJob) (*models.Job, error)
	ApplyToJob(ctx context.Context, application models.NewApplication) (*models.JobApplication, error)
	ListJobApplications(ctx context.Context, jobID string) (*models.Page[models.JobApplication], error)

	ListProviders(ctx context.Context) (*models.Page[models.Provider], error)
	GetProvider(ctx context.Context, id string) (*models.Provider, error)
	BecomeProvider(ctx context.Context, profile models.ProviderProfile) (*models.Provider, error)

	ProcessPayment(ctx context.Context, payment models.NewPayment) (*models.Payment, error)
	PaymentHistory(ctx context.Context) (*models.Page[models.Payment], error)

	ListReviews(ctx context.Context, providerID string) (*models.Page[models.Review], error)
	CreateReview(ctx context.Context, review models.NewReview) (*models.Review, error)

	ListNotifications(ctx context.Context) (*models.Page[models.Notification], error)
	MarkNotificationRead(ctx context.Context, id string) error
}
