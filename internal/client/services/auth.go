// Package services contains the application services of the HandyLink
// client. This file defines the session manager: login, registration,
// email verification, logout, token refresh and profile updates, together
// with the locally persisted session (tokens and cached user record).
package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/handylink/internal/client/client"
	"github.com/dmitrijs2005/handylink/internal/client/models"
	"github.com/dmitrijs2005/handylink/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/handylink/internal/logging"
	"golang.org/x/sync/singleflight"
)

// AuthService defines the session operations used by the CLI.
//
// Contract:
//   - Login / VerifyEmail: on success persist tokens and user before
//     returning; on failure touch nothing.
//   - Register, ForgotPassword, ResetPassword: no local side effects.
//   - Logout, IsAuthenticated, GetCurrentUser, GetAuthToken: never fail;
//     storage errors are logged and degrade to the zero value.
//   - RefreshToken: any failure tears the session down. Concurrent calls
//     share one request.
//   - UpdateProfile: on success overwrites only the cached user.
//
// Every returned error is an *AuthError.
type AuthService interface {
	Login(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error)
	Register(ctx context.Context, data models.RegisterData) (*models.RegisterResponse, error)
	VerifyEmail(ctx context.Context, data models.VerificationData) (*models.AuthResponse, error)
	Logout(ctx context.Context)
	IsAuthenticated(ctx context.Context) bool
	GetCurrentUser(ctx context.Context) *models.User
	GetAuthToken(ctx context.Context) string
	RefreshToken(ctx context.Context) (*models.AuthTokens, error)
	ForgotPassword(ctx context.Context, email string) (*models.MessageResponse, error)
	ResetPassword(ctx context.Context, data models.PasswordReset) (*models.MessageResponse, error)
	UpdateProfile(ctx context.Context, update models.ProfileUpdate) (*models.User, error)
}

type authService struct {
	client client.Client
	store  metadata.Repository
	log    logging.Logger

	refresh singleflight.Group
}

// NewAuthService constructs an AuthService bound to the given API client
// and session store.
func NewAuthService(c client.Client, store metadata.Repository, log logging.Logger) AuthService {
	if log == nil {
		log = logging.Nop()
	}
	return &authService{client: c, store: store, log: log.With("component", "auth")}
}

func (a *authService) Login(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error) {
	resp, err := a.client.Login(ctx, creds)
	if err != nil {
		return nil, classify(err)
	}
	if err := a.saveSession(ctx, resp); err != nil {
		return nil, classify(err)
	}
	a.log.Info(ctx, "logged in", "user_id", resp.User.ID)
	return resp, nil
}

func (a *authService) Register(ctx context.Context, data models.RegisterData) (*models.RegisterResponse, error) {
	resp, err := a.client.Register(ctx, data)
	if err != nil {
		return nil, classify(err)
	}
	return resp, nil
}

func (a *authService) VerifyEmail(ctx context.Context, data models.VerificationData) (*models.AuthResponse, error) {
	resp, err := a.client.VerifyEmail(ctx, data)
	if err != nil {
		return nil, classify(err)
	}
	if err := a.saveSession(ctx, resp); err != nil {
		return nil, classify(err)
	}
	a.log.Info(ctx, "email verified", "user_id", resp.User.ID)
	return resp, nil
}

// saveSession stores both tokens and the user record in one MultiSet.
func (a *authService) saveSession(ctx context.Context, resp *models.AuthResponse) error {
	user, err := json.Marshal(resp.User)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}
	err = a.store.MultiSet(ctx, map[string][]byte{
		KeyAuthToken:    []byte(resp.Tokens.Access),
		KeyRefreshToken: []byte(resp.Tokens.Refresh),
		KeyUserData:     user,
	})
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Logout removes the session. It runs to completion even if ctx is
// cancelled.
func (a *authService) Logout(ctx context.Context) {
	ctx = context.WithoutCancel(ctx)

	err := a.store.MultiRemove(ctx, sessionKeys...)
	if err == nil {
		return
	}
	a.log.Warn(ctx, "session removal failed, deleting keys one by one", "error", err)

	for _, k := range sessionKeys {
		if err := a.store.Delete(ctx, k); err != nil {
			a.log.Warn(ctx, "failed to delete session key", "key", k, "error", err)
		}
	}
}

func (a *authService) IsAuthenticated(ctx context.Context) bool {
	return a.GetAuthToken(ctx) != ""
}

func (a *authService) GetAuthToken(ctx context.Context) string {
	token, err := a.store.Get(ctx, KeyAuthToken)
	if err != nil {
		a.log.Warn(ctx, "failed to read access token", "error", err)
		return ""
	}
	return string(token)
}

func (a *authService) GetCurrentUser(ctx context.Context) *models.User {
	data, err := a.store.Get(ctx, KeyUserData)
	if err != nil {
		a.log.Warn(ctx, "failed to read cached user", "error", err)
		return nil
	}
	if len(data) == 0 {
		return nil
	}

	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		a.log.Warn(ctx, "cached user is corrupt", "error", err)
		return nil
	}
	return &user
}

// RefreshToken exchanges the stored refresh token for a new pair. The
// exchange itself is not cancelled with ctx: a caller that gives up only
// stops waiting.
func (a *authService) RefreshToken(ctx context.Context) (*models.AuthTokens, error) {
	ch := a.refresh.DoChan("refresh", func() (any, error) {
		return a.doRefresh(context.WithoutCancel(ctx))
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		tokens := *res.Val.(*models.AuthTokens)
		return &tokens, nil
	case <-ctx.Done():
		return nil, classify(ctx.Err())
	}
}

func (a *authService) doRefresh(ctx context.Context) (*models.AuthTokens, error) {
	tokens, err := a.exchangeRefreshToken(ctx)
	if err != nil {
		a.log.Warn(ctx, "token refresh failed, ending session", "error", err)
		a.Logout(ctx)
		return nil, classify(err)
	}
	a.log.Info(ctx, "access token refreshed")
	return tokens, nil
}

func (a *authService) exchangeRefreshToken(ctx context.Context) (*models.AuthTokens, error) {
	stored, err := a.store.Get(ctx, KeyRefreshToken)
	if err != nil {
		return nil, fmt.Errorf("read refresh token: %w", err)
	}
	if len(stored) == 0 {
		return nil, ErrNoRefreshToken
	}

	tokens, err := a.client.RefreshToken(ctx, string(stored))
	if err != nil {
		return nil, err
	}
	if tokens.Access == "" {
		return nil, errors.New("refresh response has no access token")
	}
	// The server may not rotate the refresh token.
	if tokens.Refresh == "" {
		tokens.Refresh = string(stored)
	}

	err = a.store.MultiSet(ctx, map[string][]byte{
		KeyAuthToken:    []byte(tokens.Access),
		KeyRefreshToken: []byte(tokens.Refresh),
	})
	if err != nil {
		return nil, fmt.Errorf("save tokens: %w", err)
	}
	return tokens, nil
}

func (a *authService) ForgotPassword(ctx context.Context, email string) (*models.MessageResponse, error) {
	resp, err := a.client.ForgotPassword(ctx, email)
	if err != nil {
		return nil, classify(err)
	}
	return resp, nil
}

func (a *authService) ResetPassword(ctx context.Context, data models.PasswordReset) (*models.MessageResponse, error) {
	resp, err := a.client.ResetPassword(ctx, data)
	if err != nil {
		return nil, classify(err)
	}
	return resp, nil
}

func (a *authService) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (*models.User, error) {
	token := a.GetAuthToken(ctx)
	if token == "" {
		return nil, classify(ErrNotAuthenticated)
	}

	user, err := a.client.UpdateProfile(client.WithAccessToken(ctx, token), update)
	if err != nil {
		return nil, classify(err)
	}

	data, err := json.Marshal(user)
	if err != nil {
		return nil, classify(fmt.Errorf("encode user: %w", err))
	}
	if err := a.store.Set(ctx, KeyUserData, data); err != nil {
		return nil, classify(fmt.Errorf("save user: %w", err))
	}
	return user, nil
}
