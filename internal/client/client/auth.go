package client

import (
	"context"
	"net/http"

	"github.com/dmitrijs2005/handylink/internal/client/models"
)

func (c *HTTPClient) Login(ctx context.Context, creds models.Credentials) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, PathLogin, nil, creds, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) Register(ctx context.Context, data models.RegisterData) (*models.RegisterResponse, error) {
	var resp models.RegisterResponse
	if err := c.do(ctx, http.MethodPost, PathRegister, nil, data, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) VerifyEmail(ctx context.Context, data models.VerificationData) (*models.AuthResponse, error) {
	var resp models.AuthResponse
	if err := c.do(ctx, http.MethodPost, PathVerifyEmail, nil, data, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) RefreshToken(ctx context.Context, refreshToken string) (*models.AuthTokens, error) {
	req := struct {
		Refresh string `json:"refresh"`
	}{Refresh: refreshToken}

	var resp models.AuthTokens
	if err := c.do(ctx, http.MethodPost, PathRefreshToken, nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) ForgotPassword(ctx context.Context, email string) (*models.MessageResponse, error) {
	req := struct {
		Email string `json:"email"`
	}{Email: email}

	var resp models.MessageResponse
	if err := c.do(ctx, http.MethodPost, PathForgotPassword, nil, req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) ResetPassword(ctx context.Context, data models.PasswordReset) (*models.MessageResponse, error) {
	var resp models.MessageResponse
	if err := c.do(ctx, http.MethodPost, PathResetPassword, nil, data, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (c *HTTPClient) UpdateProfile(ctx context.Context, update models.ProfileUpdate) (*models.User, error) {
	var resp models.User
	if err := c.do(ctx, http.MethodPut, PathUpdateProfile, nil, update, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
