package cli

import (
	"strings"

	"github.com/dmitrijs2005/handylink/internal/client/models"
)

func printUser(a *App, u *models.User) {
	a.printf("Name:     %s\n", u.FullName())
	a.printf("Email:    %s\n", u.Email)
	if u.PhoneNumber != "" {
		a.printf("Phone:    %s\n", u.PhoneNumber)
	}
	a.printf("Provider: %t\n", u.IsProvider)
	a.printf("Verified: %t\n", u.IsVerified)
}

func printJobs(a *App, page *models.Page[models.Job]) {
	for _, j := range page.Results {
		a.printf("%s  %-12s %-11s %8.2f  %s\n", j.ID, j.Category, j.Status, j.Budget, j.Title)
	}
	a.printf("%d job(s)\n", page.Count)
	if page.Next != nil {
		a.println("More results available; use --page.")
	}
}

func printJob(a *App, j *models.Job) {
	a.printf("%s\n", j.Title)
	a.printf("Category: %s\n", j.Category)
	a.printf("Status:   %s\n", j.Status)
	a.printf("Budget:   %.2f\n", j.Budget)
	if j.Location != "" {
		a.printf("Location: %s\n", j.Location)
	}
	if j.Deadline != nil {
		a.printf("Deadline: %s\n", dateOf(*j.Deadline))
	}
	a.printf("Customer: %s\n", displayName(j.Customer.FullName(), j.Customer.Email))
	if j.Provider != nil {
		a.printf("Provider: %s\n", displayName(j.Provider.User.FullName(), j.Provider.ID.String()))
	}
	a.println()
	a.println(j.Description)
}

func printProviderLine(a *App, p *models.Provider) {
	a.printf("%s  %-20s %.1f (%d)  %.2f/h  %s\n",
		p.ID, displayName(p.User.FullName(), p.User.Email), p.Rating, p.TotalReviews, p.HourlyRate, p.Location)
}

func printProvider(a *App, p *models.Provider) {
	a.printf("%s\n", displayName(p.User.FullName(), p.ID.String()))
	a.printf("Rating:    %.1f (%d reviews)\n", p.Rating, p.TotalReviews)
	a.printf("Rate:      %.2f/h\n", p.HourlyRate)
	a.printf("Location:  %s\n", p.Location)
	a.printf("Available: %t\n", p.IsAvailable)
	if len(p.Skills) > 0 {
		a.printf("Skills:    %s\n", strings.Join(p.Skills, ", "))
	}
	if p.Bio != "" {
		a.println()
		a.println(p.Bio)
	}
}

// dateOf trims a server timestamp to its date part.
func dateOf(ts string) string {
	if len(ts) >= len("2006-01-02") {
		return ts[:len("2006-01-02")]
	}
	return ts
}
