package services

import (
	"errors"

	"github.com/dmitrijs2005/handylink/internal/client/client"
)

var (
	ErrNoRefreshToken   = errors.New("no refresh token available")
	ErrNotAuthenticated = errors.New("not authenticated")
)

const (
	msgAuthFailed     = "Authentication failed"
	msgNetwork        = "Network error. Please check your connection."
	msgUnexpected     = "An unexpected error occurred"
	msgNoRefreshToken = "No refresh token available"
	msgNotLoggedIn    = "Not authenticated"
)

// sentinelMessages holds the user-facing text of the package's own errors.
var sentinelMessages = []struct {
	err error
	msg string
}{
	{ErrNoRefreshToken, msgNoRefreshToken},
	{ErrNotAuthenticated, msgNotLoggedIn},
}

// AuthError is what every failing service operation returns. Message is
// safe to show to the user; Err keeps the cause for errors.Is and
// errors.As.
type AuthError struct {
	Message string
	Err     error
}

func (e *AuthError) Error() string {
	return e.Message
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

// classify wraps err into an *AuthError. Errors that already are one pass
// through unchanged.
func classify(err error) error {
	if err == nil {
		return nil
	}

	var ae *AuthError
	if errors.As(err, &ae) {
		return err
	}

	var f *client.Failure
	if errors.As(err, &f) {
		switch f.Kind {
		case client.KindServer:
			msg := f.Message()
			if msg == "" {
				msg = msgAuthFailed
			}
			return &AuthError{Message: msg, Err: err}
		case client.KindNetwork:
			return &AuthError{Message: msgNetwork, Err: err}
		}
	}

	for _, sm := range sentinelMessages {
		if errors.Is(err, sm.err) {
			return &AuthError{Message: sm.msg, Err: err}
		}
	}

	msg := err.Error()
	if msg == "" {
		msg = msgUnexpected
	}
	return &AuthError{Message: msg, Err: err}
}

// UserMessage returns the text to show for err.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var ae *AuthError
	if errors.As(classify(err), &ae) {
		return ae.Message
	}
	return msgUnexpected
}
