// Package models mirrors the HandyLink API payloads used by the client.
//
// Field names follow the server's snake_case JSON. The client never
// derives these records itself; it only caches what the server returns.
package models
