package models

import "time"

// ContactForm holds the three contact fields
type ContactForm struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// SubmissionStatus records how a contact attempt ended
type SubmissionStatus string

const (
	StatusSent     SubmissionStatus = "sent"
	StatusFallback SubmissionStatus = "fallback"
)

// Submission is a recorded contact attempt
type Submission struct {
	ID          string           `json:"id"`
	Name        string           `json:"name"`
	Email       string           `json:"email"`
	Message     string           `json:"message"`
	Subject     string           `json:"subject"`
	Status      SubmissionStatus `json:"status"`
	FallbackURL string           `json:"fallback_url,omitempty"`
	Error       string           `json:"error,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
}
