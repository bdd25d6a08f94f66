package services

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/dmitrijs2005/handylink/internal/client/client"
	"github.com/dmitrijs2005/handylink/internal/client/models"
	"github.com/dmitrijs2005/handylink/internal/client/repositories/metadata"
)

// ---- fake client ----

// fakeClient implements client.Client for AuthService unit tests.
type fakeClient struct {
	LoginRet *models.AuthResponse
	LoginErr error

	RegisterRet *models.RegisterResponse
	RegisterErr error

	VerifyRet *models.AuthResponse
	VerifyErr error

	RefreshRet *models.AuthTokens
	RefreshErr error
	// RefreshGate, when set, blocks RefreshToken until it is closed.
	RefreshGate    chan struct{}
	RefreshStarted chan struct{}
	refreshCalls   atomic.Int32

	ForgotRet *models.MessageResponse
	ForgotErr error

	ResetRet *models.MessageResponse
	ResetErr error

	UpdateRet *models.User
	UpdateErr error

	// for argument checks
	LastRefreshToken string
	LastForgotEmail  string
	LastUpdateToken  string
}

func (f *fakeClient) Login(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error) {
	return f.LoginRet, f.LoginErr
}

func (f *fakeClient) Register(ctx context.Context, data models.RegisterData) (*models.RegisterResponse, error) {
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeClient) VerifyEmail(ctx context.Context, data models.VerificationData) (*models.AuthResponse, error) {
	return f.VerifyRet, f.VerifyErr
}

func (f *fakeClient) RefreshToken(ctx context.Context, refreshToken string) (*models.AuthTokens, error) {
	f.refreshCalls.Add(1)
	f.LastRefreshToken = refreshToken
	if f.RefreshStarted != nil {
		select {
		case f.RefreshStarted <- struct{}{}:
		default:
		}
	}
	if f.RefreshGate != nil {
		<-f.RefreshGate
	}
	if f.RefreshErr != nil {
		return nil, f.RefreshErr
	}
	tokens := *f.RefreshRet
	return &tokens, nil
}

func (f *fakeClient) ForgotPassword(ctx context.Context, email string) (*models.MessageResponse, error) {
	f.LastForgotEmail = email
	return f.ForgotRet, f.ForgotErr
}

func (f *fakeClient) ResetPassword(ctx context.Context, data models.PasswordReset) (*models.MessageResponse, error) {
	return f.ResetRet, f.ResetErr
}

func (f *fakeClient) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (*models.User, error) {
	f.LastUpdateToken = client.AccessTokenFromContext(ctx)
	return f.UpdateRet, f.UpdateErr
}

func (f *fakeClient) RefreshCalls() int {
	return int(f.refreshCalls.Load())
}

// ---- flaky store ----

var errStore = errors.New("disk on fire")

// flakyStore wraps a MemoryRepository and fails the operations whose flag
// is set.
type flakyStore struct {
	*metadata.MemoryRepository

	mu             sync.Mutex
	FailGet        bool
	FailMultiSet   bool
	FailSet        bool
	FailMulti      bool
	FailDeleteKeys map[string]bool
	Deleted        []string
}

func newFlakyStore() *flakyStore {
	return &flakyStore{MemoryRepository: metadata.NewMemoryRepository()}
}

func (s *flakyStore) Get(ctx context.Context, key string) ([]byte, error) {
	if s.FailGet {
		return nil, errStore
	}
	return s.MemoryRepository.Get(ctx, key)
}

func (s *flakyStore) Set(ctx context.Context, key string, value []byte) error {
	if s.FailSet {
		return errStore
	}
	return s.MemoryRepository.Set(ctx, key, value)
}

func (s *flakyStore) MultiSet(ctx context.Context, values map[string][]byte) error {
	if s.FailMultiSet {
		return errStore
	}
	return s.MemoryRepository.MultiSet(ctx, values)
}

func (s *flakyStore) MultiRemove(ctx context.Context, keys ...string) error {
	if s.FailMulti {
		return errStore
	}
	return s.MemoryRepository.MultiRemove(ctx, keys...)
}

func (s *flakyStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	s.Deleted = append(s.Deleted, key)
	s.mu.Unlock()
	if s.FailDeleteKeys[key] {
		return errStore
	}
	return s.MemoryRepository.Delete(ctx, key)
}

// ---- fake marketplace ----

// fakeMarketplace implements client.Marketplace. Each call records the
// bearer token it saw and pops the next error from Errs.
type fakeMarketplace struct {
	mu     sync.Mutex
	Tokens []string
	Errs   []error

	LastApplication models.NewApplication
	LastReadID      string
}

func (f *fakeMarketplace) record(ctx context.Context) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Tokens = append(f.Tokens, client.AccessTokenFromContext(ctx))
	if len(f.Errs) == 0 {
		return nil
	}
	err := f.Errs[0]
	f.Errs = f.Errs[1:]
	return err
}

func (f *fakeMarketplace) ListJobs(ctx context.Context, filter models.JobFilter) (*models.Page[models.Job], error) {
	if err := f.record(ctx); err != nil {
		return nil, err
	}
	return &models.Page[models.Job]{Count: 1, Results: []models.Job{{ID: "j1", Category: filter.Category}}}, nil
}

func (f *fakeMarketplace) GetJob(ctx context.Context, id string) (*models.Job, error) {
	if err := f.record(ctx); err != nil {
		return nil, err
	}
	return &models.Job{ID: models.ID(id)}, nil
}

func (f *fakeMarketplace) CreateJob(ctx context.Context, job models.NewJob) (*models.Job, error) {
	if err := f.record(ctx); err != nil {
		return nil, err
	}
	return &models.Job{ID: "new", Title: job.Title}, nil
}

func (f *fakeMarketplace) ApplyToJob(ctx context.Context, application models.NewApplication) (*models.JobApplication, error) {
	f.LastApplication = application
	if err := f.record(ctx); err != nil {
		return nil, err
	}
	return &models.JobApplication{ID: "a1", Job: application.Job}, nil
}

func (f *fakeMarketplace) ListJobApplications(ctx context.Context, jobID string) (*models.Page[models.JobApplication], error) {
	if err := f.record(ctx); err != nil {
		return nil, err
	}
	return &models.Page[models.JobApplication]{}, nil
}

func (f *fakeMarketplace) ListProviders(ctx context.Context) (*models.Page[models.Provider], error) {
	if err := f.record(ctx); err != nil {
		return nil, err
	}
	return &models.Page[models.Provider]{}, nil
}

func (f *fakeMarketplace) GetProvider(ctx context.Context, id string) (*models.Provider, error) {
	if err := f.record(ctx); err != nil {
		return nil, err
	}
	return &models.Provider{ID: models.ID(id)}, nil
}

func (f *fakeMarketplace) BecomeProvider(ctx context.Context, profile models.ProviderProfile) (*models.Provider, error) {
	if err := f.record(ctx); err != nil {
		return nil, err
	}
	return &models.Provider{Bio: profile.Bio}, nil
}

func (f *fakeMarketplace) ProcessPayment(ctx context.Context, payment models.NewPayment) (*models.Payment, error) {
	if err := f.record(ctx); err != nil {
		return nil, err
	}
	return &models.Payment{Job: payment.Job, Amount: payment.Amount}, nil
}

func (f *fakeMarketplace) PaymentHistory(ctx context.Context) (*models.Page[models.Payment], error) {
	if err := f.record(ctx); err != nil {
		return nil, err
	}
	return &models.Page[models.Payment]{}, nil
}

func (f *fakeMarketplace) ListReviews(ctx context.Context, providerID string) (*models.Page[models.Review], error) {
	if err := f.record(ctx); err != nil {
		return nil, err
	}
	return &models.Page[models.Review]{}, nil
}

func (f *fakeMarketplace) CreateReview(ctx context.Context, review models.NewReview) (*models.Review, error) {
	if err := f.record(ctx); err != nil {
		return nil, err
	}
	return &models.Review{Job: review.Job, Rating: review.Rating}, nil
}

func (f *fakeMarketplace) ListNotifications(ctx context.Context) (*models.Page[models.Notification], error) {
	if err := f.record(ctx); err != nil {
		return nil, err
	}
	return &models.Page[models.Notification]{}, nil
}

func (f *fakeMarketplace) MarkNotificationRead(ctx context.Context, id string) error {
	f.LastReadID = id
	return f.record(ctx)
}
