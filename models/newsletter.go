package models

// NewsletterSignup is the wire form of a course-updates signup.
// Website is the honeypot field.
type NewsletterSignup struct {
	Email   string `json:"email" binding:"required,email"`
	Name    string `json:"name"`
	Website string `json:"website"`
}

// WelcomeMailPayload is the task payload queued for the mail worker.
type WelcomeMailPayload struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}
