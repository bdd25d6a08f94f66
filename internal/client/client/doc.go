// Package client talks to the HandyLink HTTP API.
//
// # Overview
//
// The package provides:
//  1. The API contracts: Client (login, registration, email verification,
//     token refresh, password reset, profile update) and Marketplace (jobs,
//     providers, payments, reviews, notifications).
//  2. HTTPClient, a JSON-over-HTTP implementation of both. Authorized calls
//     take their bearer token from the context (see WithAccessToken); the
//     client itself holds no session state.
//
// # Error Handling
//
// Every HTTPClient error is a *Failure tagged with its Kind: KindNetwork
// (no response), KindServer (non-2xx, with Status and Body) or KindOther
// (local failure). Failures also match the sentinels ErrUnavailable,
// ErrUnauthorized and ErrForbidden with errors.Is.
//
// Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All calls honor context
// cancellation and the configured request timeout.
package client
