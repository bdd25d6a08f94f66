package services

// Storage keys owned by AuthService. No other component writes them.
const (
	KeyAuthToken    = "handylink_auth_token"
	KeyRefreshToken = "handylink_refresh_token"
	KeyUserData     = "handylink_user_data"
)

var sessionKeys = []string{KeyAuthToken, KeyRefreshToken, KeyUserData}
