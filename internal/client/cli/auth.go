package cli

import (
	"time"

	"github.com/dmitrijs2005/handylink/internal/client/services"
	"github.com/dmitrijs2005/handylink/internal/client/validation"
	"github.com/dmitrijs2005/handylink/internal/common"
	"github.com/spf13/cobra"
)

func newLoginCmd(rt *runtime) *cobra.Command {
	var email string
	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in with email and password",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.app.Login(cmd, email)
		},
	}
	cmd.Flags().StringVarP(&email, "email", "e", "", "account email")
	return cmd
}

// Login prompts for missing credentials, validates them and signs in.
//
// The password byte slice is wiped before returning.
func (a *App) Login(cmd *cobra.Command, email string) error {
	email, err := a.text(email, "Enter email")
	if err != nil {
		return err
	}
	password, err := a.password("Enter password")
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)

	form := validation.LoginForm{Email: email, Password: string(password)}
	if err := a.check(form); err != nil {
		return err
	}

	resp, err := a.auth.Login(cmd.Context(), form.Credentials())
	if err != nil {
		return err
	}
	a.printf("Welcome back, %s!\n", displayName(resp.User.FullName(), resp.User.Email))
	return nil
}

func newRegisterCmd(rt *runtime) *cobra.Command {
	var form validation.RegisterForm
	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create an account; a verification code is sent by email",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.app.Register(cmd, form)
		},
	}
	cmd.Flags().StringVarP(&form.Email, "email", "e", "", "account email")
	cmd.Flags().StringVar(&form.FirstName, "first-name", "", "first name")
	cmd.Flags().StringVar(&form.LastName, "last-name", "", "last name")
	cmd.Flags().StringVar(&form.PhoneNumber, "phone", "", "phone number")
	cmd.Flags().BoolVar(&form.IsProvider, "provider", false, "register as a service provider")
	return cmd
}

// Register prompts for missing fields and the password twice, validates the
// form and creates the account.
func (a *App) Register(cmd *cobra.Command, form validation.RegisterForm) error {
	var err error
	if form.FirstName, err = a.text(form.FirstName, "First name"); err != nil {
		return err
	}
	if form.LastName, err = a.text(form.LastName, "Last name"); err != nil {
		return err
	}
	if form.Email, err = a.text(form.Email, "Enter email"); err != nil {
		return err
	}
	if form.PhoneNumber, err = a.text(form.PhoneNumber, "Phone number"); err != nil {
		return err
	}

	password, confirm, err := a.newPassword()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	defer common.WipeByteArray(confirm)
	form.Password, form.ConfirmPassword = string(password), string(confirm)

	if err := a.check(form); err != nil {
		return err
	}

	resp, err := a.auth.Register(cmd.Context(), form.RegisterData())
	if err != nil {
		return err
	}
	a.println("Registration successful! Please verify your email.")
	if resp.Message != "" {
		a.println(resp.Message)
	}
	return nil
}

func (a *App) newPassword() (password, confirm []byte, err error) {
	if password, err = a.password("Enter password"); err != nil {
		return nil, nil, err
	}
	if confirm, err = a.password("Confirm password"); err != nil {
		common.WipeByteArray(password)
		return nil, nil, err
	}
	return password, confirm, nil
}

func newVerifyCmd(rt *runtime) *cobra.Command {
	var form validation.VerifyForm
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Confirm your email with the code you received and sign in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.app.Verify(cmd, form)
		},
	}
	cmd.Flags().StringVarP(&form.Email, "email", "e", "", "account email")
	cmd.Flags().StringVar(&form.OTP, "otp", "", "6-digit verification code")
	return cmd
}

func (a *App) Verify(cmd *cobra.Command, form validation.VerifyForm) error {
	var err error
	if form.Email, err = a.text(form.Email, "Enter email"); err != nil {
		return err
	}
	if form.OTP, err = a.text(form.OTP, "Verification code"); err != nil {
		return err
	}
	if err := a.check(form); err != nil {
		return err
	}

	resp, err := a.auth.VerifyEmail(cmd.Context(), form.VerificationData())
	if err != nil {
		return err
	}
	a.printf("Email verified successfully! Signed in as %s.\n", resp.User.Email)
	return nil
}

func newLogoutCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and forget the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt.app.auth.Logout(cmd.Context())
			rt.app.println("Logged out.")
			return nil
		},
	}
}

func newStatusCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show who is signed in",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			rt.app.Status(cmd)
			return nil
		},
	}
}

// Status prints the session state. The access token expiry is read from
// the token without verifying it.
func (a *App) Status(cmd *cobra.Command) {
	ctx := cmd.Context()
	if !a.auth.IsAuthenticated(ctx) {
		a.println("Not logged in.")
		return
	}

	if u := a.auth.GetCurrentUser(ctx); u != nil {
		a.printf("Logged in as %s <%s>\n", displayName(u.FullName(), u.Email), u.Email)
		role := "customer"
		if u.IsProvider {
			role = "provider"
		}
		a.printf("Account: %s, verified: %t\n", role, u.IsVerified)
	} else {
		a.println("Logged in.")
	}

	if exp, ok := services.TokenExpiry(a.auth.GetAuthToken(ctx)); ok {
		if d := time.Until(exp); d > 0 {
			a.printf("Access token expires in %s\n", d.Round(time.Second))
		} else {
			a.println("Access token expired; it will be refreshed on the next request.")
		}
	}
}

func newRefreshCmd(rt *runtime) *cobra.Command {
	return &cobra.Command{
		Use:   "refresh",
		Short: "Exchange the refresh token for a new access token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := rt.app.auth.RefreshToken(cmd.Context()); err != nil {
				return err
			}
			rt.app.println("Session refreshed.")
			return nil
		},
	}
}

func newForgotPasswordCmd(rt *runtime) *cobra.Command {
	var form validation.ForgotPasswordForm
	cmd := &cobra.Command{
		Use:   "forgot-password",
		Short: "Email a password reset code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := rt.app
			var err error
			if form.Email, err = a.text(form.Email, "Enter email"); err != nil {
				return err
			}
			if err := a.check(form); err != nil {
				return err
			}
			resp, err := a.auth.ForgotPassword(cmd.Context(), form.Email)
			if err != nil {
				return err
			}
			a.println(messageOr(resp.Message, "Password reset code sent."))
			return nil
		},
	}
	cmd.Flags().StringVarP(&form.Email, "email", "e", "", "account email")
	return cmd
}

func newResetPasswordCmd(rt *runtime) *cobra.Command {
	var form validation.ResetPasswordForm
	cmd := &cobra.Command{
		Use:   "reset-password",
		Short: "Set a new password with the emailed code",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.app.ResetPassword(cmd, form)
		},
	}
	cmd.Flags().StringVarP(&form.Email, "email", "e", "", "account email")
	cmd.Flags().StringVar(&form.OTP, "otp", "", "6-digit reset code")
	return cmd
}

func (a *App) ResetPassword(cmd *cobra.Command, form validation.ResetPasswordForm) error {
	var err error
	if form.Email, err = a.text(form.Email, "Enter email"); err != nil {
		return err
	}
	if form.OTP, err = a.text(form.OTP, "Reset code"); err != nil {
		return err
	}

	password, confirm, err := a.newPassword()
	if err != nil {
		return err
	}
	defer common.WipeByteArray(password)
	defer common.WipeByteArray(confirm)
	form.NewPassword, form.ConfirmPassword = string(password), string(confirm)

	if err := a.check(form); err != nil {
		return err
	}

	resp, err := a.auth.ResetPassword(cmd.Context(), form.PasswordReset())
	if err != nil {
		return err
	}
	a.println(messageOr(resp.Message, "Password has been reset."))
	return nil
}

func displayName(name, fallback string) string {
	if name == "" {
		return fallback
	}
	return name
}

func messageOr(msg, fallback string) string {
	if msg == "" {
		return fallback
	}
	return msg
}
