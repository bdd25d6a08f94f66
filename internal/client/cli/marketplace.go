package cli

import (
	"github.com/dmitrijs2005/handylink/internal/client/models"
	"github.com/spf13/cobra"
)

func newProvidersCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "providers",
		Short: "Browse service providers",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List providers",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := rt.app.market.ListProviders(cmd.Context())
			if err != nil {
				return err
			}
			for _, p := range page.Results {
				printProviderLine(rt.app, &p)
			}
			rt.app.printf("%d provider(s)\n", page.Count)
			return nil
		},
	}

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := rt.app.market.GetProvider(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printProvider(rt.app, p)
			return nil
		},
	}

	var profile models.ProviderProfile
	become := &cobra.Command{
		Use:   "become",
		Short: "Register yourself as a provider",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := rt.app.market.BecomeProvider(cmd.Context(), profile)
			if err != nil {
				return err
			}
			rt.app.println("You are now a provider.")
			printProvider(rt.app, p)
			return nil
		},
	}
	become.Flags().StringVar(&profile.Bio, "bio", "", "short bio")
	become.Flags().StringSliceVar(&profile.Skills, "skills", nil, "comma separated skills")
	become.Flags().StringVar(&profile.Location, "location", "", "where you work")
	become.Flags().Float64Var(&profile.HourlyRate, "rate", 0, "hourly rate")

	cmd.AddCommand(list, show, become)
	return cmd
}

func newPaymentsCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payments",
		Short: "Pay for jobs and see past payments",
	}

	history := &cobra.Command{
		Use:   "history",
		Short: "List your payments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := rt.app.market.PaymentHistory(cmd.Context())
			if err != nil {
				return err
			}
			for _, p := range page.Results {
				rt.app.printf("%s  job %s  %10.2f  %-9s %s\n", dateOf(p.CreatedAt), p.Job, p.Amount, p.Status, p.PaymentMethod)
			}
			rt.app.printf("%d payment(s)\n", page.Count)
			return nil
		},
	}

	payment := models.NewPayment{PaymentMethod: "card"}
	pay := &cobra.Command{
		Use:   "pay <job-id>",
		Short: "Pay for a job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			payment.Job = models.ID(args[0])
			p, err := rt.app.market.ProcessPayment(cmd.Context(), payment)
			if err != nil {
				return err
			}
			rt.app.printf("Payment completed successfully! (%s, %s)\n", p.ID, p.Status)
			return nil
		},
	}
	pay.Flags().Float64Var(&payment.Amount, "amount", 0, "amount to pay")
	pay.Flags().StringVar(&payment.PaymentMethod, "method", payment.PaymentMethod, "payment method")

	cmd.AddCommand(history, pay)
	return cmd
}

func newReviewsCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reviews",
		Short: "Read and write reviews",
	}

	var providerID string
	list := &cobra.Command{
		Use:   "list",
		Short: "List reviews",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := rt.app.market.ListReviews(cmd.Context(), providerID)
			if err != nil {
				return err
			}
			for _, r := range page.Results {
				rt.app.printf("%d/5  %s: %s\n", r.Rating, displayName(r.Reviewer.FullName(), r.Reviewer.Email), r.Comment)
			}
			rt.app.printf("%d review(s)\n", page.Count)
			return nil
		},
	}
	list.Flags().StringVar(&providerID, "provider", "", "only reviews of this provider")

	var review models.NewReview
	create := &cobra.Command{
		Use:   "create <job-id>",
		Short: "Review a finished job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			review.Job = models.ID(args[0])
			if _, err := rt.app.market.CreateReview(cmd.Context(), review); err != nil {
				return err
			}
			rt.app.println("Review submitted successfully!")
			return nil
		},
	}
	create.Flags().IntVar(&review.Rating, "rating", 5, "rating from 1 to 5")
	create.Flags().StringVarP(&review.Comment, "comment", "m", "", "comment")

	cmd.AddCommand(list, create)
	return cmd
}

func newNotificationsCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "notifications",
		Short: "Read your notifications",
	}

	list := &cobra.Command{
		Use:   "list",
		Short: "List notifications",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := rt.app.market.ListNotifications(cmd.Context())
			if err != nil {
				return err
			}
			for _, n := range page.Results {
				mark := "*"
				if n.IsRead {
					mark = " "
				}
				rt.app.printf("%s %s  %s: %s\n", mark, n.ID, n.Title, n.Message)
			}
			rt.app.printf("%d notification(s)\n", page.Count)
			return nil
		},
	}

	read := &cobra.Command{
		Use:   "read <id>",
		Short: "Mark a notification as read",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := rt.app.market.MarkNotificationRead(cmd.Context(), args[0]); err != nil {
				return err
			}
			rt.app.println("Marked as read.")
			return nil
		},
	}

	cmd.AddCommand(list, read)
	return cmd
}
