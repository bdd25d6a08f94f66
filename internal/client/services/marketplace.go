package services

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/handylink/internal/client/client"
	"github.com/dmitrijs2005/handylink/internal/client/models"
	"github.com/dmitrijs2005/handylink/internal/logging"
)

// MarketplaceService runs authorized marketplace calls with the stored
// access token. A rejected token is refreshed through AuthService and the
// call is retried once.
type MarketplaceService struct {
	api  client.Marketplace
	auth AuthService
	log  logging.Logger
}

func NewMarketplaceService(api client.Marketplace, auth AuthService, log logging.Logger) *MarketplaceService {
	if log == nil {
		log = logging.Nop()
	}
	return &MarketplaceService{api: api, auth: auth, log: log.With("component", "marketplace")}
}

func authorized[T any](ctx context.Context, m *MarketplaceService, call func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	token := m.auth.GetAuthToken(ctx)
	if token == "" {
		return zero, classify(ErrNotAuthenticated)
	}

	v, err := call(client.WithAccessToken(ctx, token))
	if errors.Is(err, client.ErrUnauthorized) {
		m.log.Info(ctx, "access token rejected, refreshing")
		tokens, rerr := m.auth.RefreshToken(ctx)
		if rerr != nil {
			return zero, rerr
		}
		v, err = call(client.WithAccessToken(ctx, tokens.Access))
	}
	if err != nil {
		return zero, classify(err)
	}
	return v, nil
}

func (m *MarketplaceService) ListJobs(ctx context.Context, filter models.JobFilter) (*models.Page[models.Job], error) {
	return authorized(ctx, m, func(ctx context.Context) (*models.Page[models.Job], error) {
		return m.api.ListJobs(ctx, filter)
	})
}

func (m *MarketplaceService) GetJob(ctx context.Context, id string) (*models.Job, error) {
	return authorized(ctx, m, func(ctx context.Context) (*models.Job, error) {
		return m.api.GetJob(ctx, id)
	})
}

func (m *MarketplaceService) CreateJob(ctx context.Context, job models.NewJob) (*models.Job, error) {
	return authorized(ctx, m, func(ctx context.Context) (*models.Job, error) {
		return m.api.CreateJob(ctx, job)
	})
}

// ApplyToJob applies to jobID; application.Job is overwritten.
func (m *MarketplaceService) ApplyToJob(ctx context.Context, jobID string, application models.NewApplication) (*models.JobApplication, error) {
	application.Job = models.ID(jobID)
	return authorized(ctx, m, func(ctx context.Context) (*models.JobApplication, error) {
		return m.api.ApplyToJob(ctx, application)
	})
}

func (m *MarketplaceService) ListJobApplications(ctx context.Context, jobID string) (*models.Page[models.JobApplication], error) {
	return authorized(ctx, m, func(ctx context.Context) (*models.Page[models.JobApplication], error) {
		return m.api.ListJobApplications(ctx, jobID)
	})
}

func (m *MarketplaceService) ListProviders(ctx context.Context) (*models.Page[models.Provider], error) {
	return authorized(ctx, m, m.api.ListProviders)
}

func (m *MarketplaceService) GetProvider(ctx context.Context, id string) (*models.Provider, error) {
	return authorized(ctx, m, func(ctx context.Context) (*models.Provider, error) {
		return m.api.GetProvider(ctx, id)
	})
}

func (m *MarketplaceService) BecomeProvider(ctx context.Context, profile models.ProviderProfile) (*models.Provider, error) {
	return authorized(ctx, m, func(ctx context.Context) (*models.Provider, error) {
		return m.api.BecomeProvider(ctx, profile)
	})
}

func (m *MarketplaceService) ProcessPayment(ctx context.Context, payment models.NewPayment) (*models.Payment, error) {
	return authorized(ctx, m, func(ctx context.Context) (*models.Payment, error) {
		return m.api.ProcessPayment(ctx, payment)
	})
}

func (m *MarketplaceService) PaymentHistory(ctx context.Context) (*models.Page[models.Payment], error) {
	return authorized(ctx, m, m.api.PaymentHistory)
}

func (m *MarketplaceService) ListReviews(ctx context.Context, providerID string) (*models.Page[models.Review], error) {
	return authorized(ctx, m, func(ctx context.Context) (*models.Page[models.Review], error) {
		return m.api.ListReviews(ctx, providerID)
	})
}

func (m *MarketplaceService) CreateReview(ctx context.Context, review models.NewReview) (*models.Review, error) {
	return authorized(ctx, m, func(ctx context.Context) (*models.Review, error) {
		return m.api.CreateReview(ctx, review)
	})
}

func (m *MarketplaceService) ListNotifications(ctx context.Context) (*models.Page[models.Notification], error) {
	return authorized(ctx, m, m.api.ListNotifications)
}

func (m *MarketplaceService) MarkNotificationRead(ctx context.Context, id string) error {
	_, err := authorized(ctx, m, func(ctx context.Context) (struct{}, error) {
		return struct{}{}, m.api.MarkNotificationRead(ctx, id)
	})
	return err
}
