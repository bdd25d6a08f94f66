package cli

import (
	"strconv"

	"github.com/dmitrijs2005/handylink/internal/client/models"
	"github.com/dmitrijs2005/handylink/internal/client/validation"
	"github.com/spf13/cobra"
)

func newJobsCmd(rt *runtime) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jobs",
		Short: "Browse, post and apply to jobs",
	}

	var filter models.JobFilter
	list := &cobra.Command{
		Use:   "list",
		Short: "List jobs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := rt.app.market.ListJobs(cmd.Context(), filter)
			if err != nil {
				return err
			}
			printJobs(rt.app, page)
			return nil
		},
	}
	list.Flags().StringVar(&filter.Category, "category", "", "only this category")
	list.Flags().StringVar(&filter.Status, "status", "", "open, in_progress, completed or cancelled")
	list.Flags().StringVarP(&filter.Search, "search", "s", "", "search text")
	list.Flags().IntVar(&filter.Page, "page", 0, "page number")

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one job",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			job, err := rt.app.market.GetJob(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			printJob(rt.app, job)
			return nil
		},
	}

	var form validation.JobForm
	create := &cobra.Command{
		Use:   "create",
		Short: "Post a job",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rt.app.CreateJob(cmd, form)
		},
	}
	create.Flags().StringVarP(&form.Title, "title", "t", "", "job title (10-100 characters)")
	create.Flags().StringVarP(&form.Description, "description", "d", "", "what needs doing (20-1000 characters)")
	create.Flags().StringVar(&form.Category, "category", "", "job category")
	create.Flags().StringVar(&form.Location, "location", "", "where the job is")
	create.Flags().Float64Var(&form.Budget, "budget", 0, "budget (10-10000)")

	var application models.NewApplication
	apply := &cobra.Command{
		Use:   "apply <job-id>",
		Short: "Apply to a job as a provider",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := rt.app.market.ApplyToJob(cmd.Context(), args[0], application)
			if err != nil {
				return err
			}
			rt.app.printf("Application sent successfully! (%s, status %s)\n", app.ID, app.Status)
			return nil
		},
	}
	apply.Flags().Float64Var(&application.ProposedPrice, "price", 0, "proposed price")
	apply.Flags().StringVarP(&application.Message, "message", "m", "", "message to the customer")

	applications := &cobra.Command{
		Use:   "applications <job-id>",
		Short: "List applications to one of your jobs",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			page, err := rt.app.market.ListJobApplications(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			a := rt.app
			for _, ap := range page.Results {
				a.printf("%s  %-9s %8.2f  %s\n", ap.ID, ap.Status, ap.ProposedPrice, displayName(ap.Provider.User.FullName(), ap.Provider.ID.String()))
			}
			a.printf("%d application(s)\n", page.Count)
			return nil
		},
	}

	cmd.AddCommand(list, show, create, apply, applications)
	return cmd
}

// CreateJob prompts for a missing title, description, category and
// location, validates the form and posts the job.
func (a *App) CreateJob(cmd *cobra.Command, form validation.JobForm) error {
	var err error
	if form.Title, err = a.text(form.Title, "Job title"); err != nil {
		return err
	}
	if form.Description == "" {
		if form.Description, err = GetMultiline(a.reader, "Describe the job", a.out); err != nil {
			return err
		}
	}
	if form.Category, err = a.text(form.Category, "Category"); err != nil {
		return err
	}
	if form.Location, err = a.text(form.Location, "Location"); err != nil {
		return err
	}
	if form.Budget == 0 {
		s, err := GetSimpleText(a.reader, "Budget", a.out)
		if err != nil {
			return err
		}
		// unparsable input is left at 0 and rejected by validation
		form.Budget, _ = strconv.ParseFloat(s, 64)
	}

	if err := a.check(form); err != nil {
		return err
	}

	job, err := a.market.CreateJob(cmd.Context(), form.NewJob())
	if err != nil {
		return err
	}
	a.printf("Job posted successfully! (%s)\n", job.ID)
	return nil
}
