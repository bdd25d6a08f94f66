package client

import "net/url"

// API paths, relative to the configured base URL.
const (
	PathLogin          = "/users/login/"
	PathRegister       = "/users/register/"
	PathVerifyEmail    = "/users/verify-email/"
	PathRefreshToken   = "/users/refresh-token/"
	PathForgotPassword = "/users/forgot-password/"
	PathResetPassword  = "/users/reset-password/"
	PathUpdateProfile  = "/users/profile/update/"

	PathJobs     = "/jobs/"
	PathApplyJob = "/jobs/apply/"

	PathProviders      = "/providers/"
	PathBecomeProvider = "/providers/register/"
	PathProcessPayment = "/payments/process/"
	PathPaymentHistory = "/payments/history/"
	PathReviews        = "/reviews/"
	PathNotifications  = "/notifications/"
)

func jobPath(id string) string {
	return PathJobs + url.PathEscape(id) + "/"
}

func jobApplicationsPath(id string) string {
	return jobPath(id) + "applications/"
}

func providerPath(id string) string {
	return PathProviders + url.PathEscape(id) + "/"
}

func markReadPath(id string) string {
	return PathNotifications + url.PathEscape(id) + "/mark-read/"
}
