package models

import "time"

type Severity string

const (
	SeverityInfo    Severity = "info"
	SeveritySuccess Severity = "success"
	SeverityWarning Severity = "warning"
	SeverityError   Severity = "error"
)

type Toast struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	Severity  Severity  `json:"severity"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

type EmailMessage struct {
	To          string
	ToName      string
	Subject     string
	Content     string
	HTMLContent string
}

// PurchaseEvent is published once per completed checkout.
type PurchaseEvent struct {
	PaymentRef string     `json:"payment_ref"`
	UserID     string     `json:"user_id"`
	Email      string     `json:"email"`
	Items      []CartItem `json:"items"`
	Total      float64    `json:"total"`
	OccurredAt time.Time  `json:"occurred_at"`
}
