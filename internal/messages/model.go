package messages

import (
	"time"
)

// Status marks whether a message has been handled yet.
type Status string

const (
	StatusUnread Status = "unread"
	StatusRead   Status = "read"
)

// Message is one contact-form submission from the storefront.
type Message struct {
	ID         int64     `json:"id"`
	FirstName  string    `json:"firstName"`
	LastName   string    `json:"lastName"`
	Email      string    `json:"email"`
	Phone      string    `json:"phone,omitempty"`
	Subject    string    `json:"subject"`
	Body       string    `json:"message"`
	Date       time.Time `json:"date"`
	Status     Status    `json:"status"`
	Newsletter bool      `json:"newsletter,omitempty"`
}

// Sender is the display name of whoever wrote in.
func (m Message) Sender() string {
	return m.FirstName + " " + m.LastName
}

var subjectLabels = map[string]string{
	"general":      "General Inquiry",
	"custom-order": "Custom Order Request",
	"support":      "Support",
	"feedback":     "Feedback",
	"partnership":  "Partnership",
	"other":        "Other",
}

// SubjectLabel maps a contact-form subject key to its display label. Unknown
// keys pass through unchanged.
func SubjectLabel(subject string) string {
	if label, ok := subjectLabels[subject]; ok {
		return label
	}
	return subject
}
