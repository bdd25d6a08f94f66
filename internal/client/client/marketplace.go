package client

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/dmitrijs2005/handylink/internal/client/models"
)

func call[T any](ctx context.Context, c *HTTPClient, method, path string, query url.Values, in any) (*T, error) {
	var out T
	if err := c.do(ctx, method, path, query, in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *HTTPClient) ListJobs(ctx context.Context, filter models.JobFilter) (*models.Page[models.Job], error) {
	q := url.Values{}
	if filter.Category != "" {
		q.Set("category", filter.Category)
	}
	if filter.Status != "" {
		q.Set("status", filter.Status)
	}
	if filter.Search != "" {
		q.Set("search", filter.Search)
	}
	if filter.Page > 0 {
		q.Set("page", strconv.Itoa(filter.Page))
	}
	return call[models.Page[models.Job]](ctx, c, http.MethodGet, PathJobs, q, nil)
}

func (c *HTTPClient) GetJob(ctx context.Context, id string) (*models.Job, error) {
	return call[models.Job](ctx, c, http.MethodGet, jobPath(id), nil, nil)
}

func (c *HTTPClient) CreateJob(ctx context.Context, job models.NewJob) (*models.Job, error) {
	return call[models.Job](ctx, c, http.MethodPost, PathJobs, nil, job)
}

func (c *HTTPClient) ApplyToJob(ctx context.Context, application models.NewApplication) (*models.JobApplication, error) {
	return call[models.JobApplication](ctx, c, http.MethodPost, PathApplyJob, nil, application)
}

func (c *HTTPClient) ListJobApplications(ctx context.Context, jobID string) (*models.Page[models.JobApplication], error) {
	return call[models.Page[models.JobApplication]](ctx, c, http.MethodGet, jobApplicationsPath(jobID), nil, nil)
}

func (c *HTTPClient) ListProviders(ctx context.Context) (*models.Page[models.Provider], error) {
	return call[models.Page[models.Provider]](ctx, c, http.MethodGet, PathProviders, nil, nil)
}

func (c *HTTPClient) GetProvider(ctx context.Context, id string) (*models.Provider, error) {
	return call[models.Provider](ctx, c, http.MethodGet, providerPath(id), nil, nil)
}

func (c *HTTPClient) BecomeProvider(ctx context.Context, profile models.ProviderProfile) (*models.Provider, error) {
	return call[models.Provider](ctx, c, http.MethodPost, PathBecomeProvider, nil, profile)
}

func (c *HTTPClient) ProcessPayment(ctx context.Context, payment models.NewPayment) (*models.Payment, error) {
	return call[models.Payment](ctx, c, http.MethodPost, PathProcessPayment, nil, payment)
}

func (c *HTTPClient) PaymentHistory(ctx context.Context) (*models.Page[models.Payment], error) {
	return call[models.Page[models.Payment]](ctx, c, http.MethodGet, PathPaymentHistory, nil, nil)
}

// ListReviews lists reviews, narrowed to one provider when providerID is set.
func (c *HTTPClient) ListReviews(ctx context.Context, providerID string) (*models.Page[models.Review], error) {
	q := url.Values{}
	if providerID != "" {
		q.Set("provider", providerID)
	}
	return call[models.Page[models.Review]](ctx, c, http.MethodGet, PathReviews, q, nil)
}

func (c *HTTPClient) CreateReview(ctx context.Context, review models.NewReview) (*models.Review, error) {
	return call[models.Review](ctx, c, http.MethodPost, PathReviews, nil, review)
}

func (c *HTTPClient) ListNotifications(ctx context.Context) (*models.Page[models.Notification], error) {
	return call[models.Page[models.Notification]](ctx, c, http.MethodGet, PathNotifications, nil, nil)
}

func (c *HTTPClient) MarkNotificationRead(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPost, markReadPath(id), nil, nil, nil)
}
