package dto

// NewsletterRequest payload for subscribe/unsubscribe.
type NewsletterRequest struct {
	Email string `json:"email"`
}
