package models

import "time"

// Job statuses.
const (
	JobStatusOpen       = "open"
	JobStatusInProgress = "in_progress"
	JobStatusCompleted  = "completed"
	JobStatusCancelled  = "cancelled"
)

// Application statuses.
const (
	ApplicationPending  = "pending"
	ApplicationAccepted = "accepted"
	ApplicationRejected = "rejected"
)

// Payment statuses.
const (
	PaymentPending   = "pending"
	PaymentCompleted = "completed"
	PaymentFailed    = "failed"
	PaymentRefunded  = "refunded"
)

// JobCategories lists the categories offered when posting a job.
var JobCategories = []string{
	"Plumbing",
	"Electrical",
	"Cleaning",
	"Gardening",
	"Carpentry",
	"Painting",
	"Moving",
	"Tutoring",
	"Pet Care",
	"Home Repair",
	"Photography",
	"Web Development",
	"Graphic Design",
	"Other",
}

type Provider struct {
	ID           ID        `json:"id"`
	User         User      `json:"user"`
	Bio          string    `json:"bio"`
	Skills       []string  `json:"skills"`
	Location     string    `json:"location"`
	HourlyRate   float64   `json:"hourly_rate"`
	Rating       float64   `json:"rating"`
	TotalReviews int       `json:"total_reviews"`
	IsAvailable  bool      `json:"is_available"`
	CreatedAt    string    `json:"created_at,omitempty"`
	UpdatedAt    string    `json:"updated_at,omitempty"`
}

// ProviderProfile is sent when a customer registers as a provider.
type ProviderProfile struct {
	Bio        string   `json:"bio"`
	Skills     []string `json:"skills"`
	Location   string   `json:"location"`
	HourlyRate float64  `json:"hourly_rate"`
}

type Job struct {
	ID          ID         `json:"id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Location    string     `json:"location"`
	Budget      float64    `json:"budget"`
	Status      string     `json:"status"`
	Customer    User       `json:"customer"`
	Provider    *Provider  `json:"provider,omitempty"`
	CreatedAt   string     `json:"created_at,omitempty"`
	UpdatedAt   string     `json:"updated_at,omitempty"`
	Deadline    *string    `json:"deadline,omitempty"`
}

// NewJob is the payload for posting a job.
type NewJob struct {
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Category    string     `json:"category"`
	Location    string     `json:"location"`
	Budget      float64    `json:"budget"`
	Deadline    *time.Time `json:"deadline,omitempty"`
}

// JobFilter narrows a job listing. Zero fields are not sent.
type JobFilter struct {
	Category string
	Status   string
	Search   string
	Page     int
}

type JobApplication struct {
	ID            ID        `json:"id"`
	Job           ID        `json:"job"`
	Provider      Provider  `json:"provider"`
	Status        string    `json:"status"`
	ProposedPrice float64   `json:"proposed_price"`
	Message       string    `json:"message"`
	CreatedAt     string    `json:"created_at,omitempty"`
}

// NewApplication is the payload for applying to a job.
type NewApplication struct {
	Job           ID      `json:"job"`
	ProposedPrice float64 `json:"proposed_price"`
	Message       string  `json:"message"`
}

type Payment struct {
	ID            ID        `json:"id"`
	Job           ID        `json:"job"`
	Amount        float64   `json:"amount"`
	Status        string    `json:"status"`
	PaymentMethod string    `json:"payment_method"`
	TransactionID string    `json:"transaction_id,omitempty"`
	CreatedAt     string    `json:"created_at,omitempty"`
}

// NewPayment is the payload for paying for a job.
type NewPayment struct {
	Job           ID      `json:"job"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
}

type Review struct {
	ID        ID        `json:"id"`
	Job       ID        `json:"job"`
	Reviewer  User      `json:"reviewer"`
	Reviewee  User      `json:"reviewee"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt string    `json:"created_at,omitempty"`
}

// NewReview is the payload for reviewing a finished job.
type NewReview struct {
	Job     ID     `json:"job"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type Notification struct {
	ID        ID        `json:"id"`
	User      ID        `json:"user"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	Type      string    `json:"type"`
	IsRead    bool      `json:"is_read"`
	CreatedAt string    `json:"created_at,omitempty"`
}

// Page is the server's paginated list envelope.
type Page[T any] struct {
	Count    int     `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}
