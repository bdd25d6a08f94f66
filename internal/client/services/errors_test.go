package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/dmitrijs2005/handylink/internal/client/client"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"server message", client.ServerFailure(400, []byte(`{"message":"Bad"}`)), "Bad"},
		{"server detail", client.ServerFailure(401, []byte(`{"detail":"Expired"}`)), "Expired"},
		{"server fallback", client.ServerFailure(500, []byte(`<html>`)), msgAuthFailed},
		{"wrapped server", fmt.Errorf("ctx: %w", client.ServerFailure(400, []byte(`{"message":"Bad"}`))), "Bad"},
		{"network", client.NetworkFailure(errors.New("refused")), msgNetwork},
		{"other failure", client.OtherFailure(errors.New("decode response: eof")), "decode response: eof"},
		{"plain", errors.New("local"), "local"},
		{"empty text", errors.New(""), msgUnexpected},
		{"no refresh token", ErrNoRefreshToken, "No refresh token available"},
		{"wrapped not authenticated", fmt.Errorf("update profile: %w", ErrNotAuthenticated), "Not authenticated"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classify(tt.err)
			var ae *AuthError
			require.True(t, errors.As(err, &ae))
			assert.Equal(t, tt.want, ae.Message)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestClassify_NilAndIdempotent(t *testing.T) {
	assert.NoError(t, classify(nil))

	once := classify(client.NetworkFailure(errors.New("x")))
	assert.Same(t, once, classify(once))
}

func TestUserMessage(t *testing.T) {
	assert.Empty(t, UserMessage(nil))
	assert.Equal(t, msgNetwork, UserMessage(client.NetworkFailure(errors.New("x"))))
	assert.Equal(t, "Not authenticated", UserMessage(ErrNotAuthenticated))
}
