package types

// ------------------------------
// Request Types
// ------------------------------

// LoginRequest holds credentials for /login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SignupRequest holds parameters for account creation.
type SignupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AskRequest holds one follow-up question for an analysis session.
type AskRequest struct {
	SessionID string `json:"session_id"`
	Question  string `json:"question"`
}

// ContactRequest holds a public contact-form submission.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// UpdateProfileRequest holds profile fields the user may change.
type UpdateProfileRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

// ChangePasswordRequest holds a password rotation.
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}
