package cli

import (
	"errors"

	"github.com/dmitrijs2005/handylink/internal/client/validation"
	"github.com/spf13/cobra"
)

func newProfileCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "profile",
		Short: "Show or change your profile",
	}

	show := &cobra.Command{
		Use:   "show",
		Short: "Show the cached profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			u := rt.app.auth.GetCurrentUser(cmd.Context())
			if u == nil {
				return errors.New("not logged in")
			}
			printUser(rt.app, u)
			return nil
		},
	}

	var (
		firstName, lastName, phone string
		provider                   bool
	)
	update := &cobra.Command{
		Use:   "update",
		Short: "Change name, phone or provider flag",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a := rt.app
			var form validation.ProfileForm
			f := cmd.Flags()
			if f.Changed("first-name") {
				form.FirstName = &firstName
			}
			if f.Changed("last-name") {
				form.LastName = &lastName
			}
			if f.Changed("phone") {
				form.PhoneNumber = &phone
			}
			upd := form.ProfileUpdate()
			if f.Changed("provider") {
				upd.IsProvider = &provider
			}
			if upd.Empty() {
				return errors.New("nothing to update: pass --first-name, --last-name, --phone or --provider")
			}
			if err := a.check(form); err != nil {
				return err
			}

			u, err := a.auth.UpdateProfile(cmd.Context(), upd)
			if err != nil {
				return err
			}
			a.println("Profile updated successfully!")
			printUser(a, u)
			return nil
		},
	}
	update.Flags().StringVar(&firstName, "first-name", "", "first name")
	update.Flags().StringVar(&lastName, "last-name", "", "last name")
	update.Flags().StringVar(&phone, "phone", "", "phone number")
	update.Flags().BoolVar(&provider, "provider", false, "offer services as a provider")

	cmd.AddCommand(show, update)
	return cmd
}
