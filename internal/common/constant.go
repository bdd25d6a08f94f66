// Package common contains constants and small helpers shared by the
// HandyLink client packages.
package common

const (
	// AuthorizationHeaderName carries the bearer access token on
	// authorized requests.
	AuthorizationHeaderName = "Authorization"

	// RequestIDHeaderName carries a per-request identifier that the
	// server echoes into its logs.
	RequestIDHeaderName = "X-Request-ID"

	// BearerPrefix precedes the access token in the Authorization header.
	BearerPrefix = "Bearer "
)
