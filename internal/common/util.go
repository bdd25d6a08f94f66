package common

import "strings"

// WipeByteArray overwrites b with zeros. Used for passwords read from the
// terminal once they have been sent.
func WipeByteArray(b []byte) {
	for i := range b {
		b[i] = 0
	}
}

// BearerToken formats token as an Authorization header value.
func BearerToken(token string) string {
	return BearerPrefix + token
}

// TokenFromBearer extracts the token from an Authorization header value.
// It returns "" if the value is not a bearer credential.
func TokenFromBearer(header string) string {
	if !strings.HasPrefix(header, BearerPrefix) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(header, BearerPrefix))
}
