package client

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	ErrUnavailable  = errors.New("server unavailable")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
)

// Kind tags a Failure.
type Kind int

const (
	// KindOther covers local failures: encoding, decoding, bad URLs,
	// cancelled contexts.
	KindOther Kind = iota
	// KindNetwork means the request was sent but no response arrived.
	KindNetwork
	// KindServer means the server answered with a non-2xx status.
	KindServer
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindServer:
		return "server"
	default:
		return "other"
	}
}

// Failure is the only error type returned by HTTPClient calls.
type Failure struct {
	Kind Kind
	// Status and Body are set for KindServer.
	Status int
	Body   []byte
	// Err is the underlying cause for KindNetwork and KindOther.
	Err error
}

func NetworkFailure(err error) *Failure {
	return &Failure{Kind: KindNetwork, Err: err}
}

func ServerFailure(status int, body []byte) *Failure {
	return &Failure{Kind: KindServer, Status: status, Body: body}
}

func OtherFailure(err error) *Failure {
	return &Failure{Kind: KindOther, Err: err}
}

func (f *Failure) Error() string {
	switch f.Kind {
	case KindServer:
		if msg := f.Message(); msg != "" {
			return fmt.Sprintf("server error %d: %s", f.Status, msg)
		}
		return fmt.Sprintf("server error %d", f.Status)
	case KindNetwork:
		return fmt.Sprintf("network error: %v", f.Err)
	default:
		if f.Err == nil {
			return "client error"
		}
		return f.Err.Error()
	}
}

func (f *Failure) Unwrap() error {
	return f.Err
}

// Is lets callers match a Failure against ErrUnavailable, ErrUnauthorized
// (401, the access token was not accepted) and ErrForbidden (403).
func (f *Failure) Is(target error) bool {
	switch target {
	case ErrUnavailable:
		if f.Kind == KindNetwork {
			return true
		}
		return f.Kind == KindServer && (f.Status == http.StatusBadGateway ||
			f.Status == http.StatusServiceUnavailable ||
			f.Status == http.StatusGatewayTimeout)
	case ErrUnauthorized:
		return f.Kind == KindServer && f.Status == http.StatusUnauthorized
	case ErrForbidden:
		return f.Kind == KindServer && f.Status == http.StatusForbidden
	}
	return false
}

// Message returns the "message" or, failing that, the "detail" field of a
// JSON error body. It returns "" when neither is present.
func (f *Failure) Message() string {
	if f.Kind != KindServer || len(f.Body) == 0 {
		return ""
	}
	var body struct {
		Message any `json:"message"`
		Detail  any `json:"detail"`
	}
	if err := json.Unmarshal(f.Body, &body); err != nil {
		return ""
	}
	if s, ok := body.Message.(string); ok && s != "" {
		return s
	}
	if s, ok := body.Detail.(string); ok && s != "" {
		return s
	}
	return ""
}
