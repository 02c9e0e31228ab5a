package types

// ------------------------------
// Response Types
// ------------------------------

// AuthResponse is the shape shared by /, /login and /signup. User is absent
// when the request is unauthenticated or the credentials were rejected;
// Message carries the server's human-readable explanation.
type AuthResponse struct {
	User    *User  `json:"user,omitempty"`
	Message string `json:"message,omitempty"`
}

// ProcessResponse acknowledges a /process submission.
type ProcessResponse struct {
	SessionID string `json:"session_id"`
}

// ResultsResponse wraps /results/:id.
type ResultsResponse struct {
	Session       AnalysisSession `json:"session"`
	Conversations []Conversation  `json:"conversations"`
	VideoURL      string          `json:"video_url"`
}

// AskResponse wraps /ask. ConversationID may be zero when the server omits
// it; callers then keep their locally generated id.
type AskResponse struct {
	ConversationID int64  `json:"conversation_id,omitempty"`
	Answer         string `json:"answer"`
}

// HistoryResponse wraps /history.
type HistoryResponse struct {
	Sessions []AnalysisSession `json:"sessions"`
}

// DashboardResponse wraps /dashboard.
type DashboardResponse struct {
	RecentSessions   []AnalysisSession `json:"recent_sessions"`
	TotalVideos      int               `json:"total_videos"`
	TotalQuestions   int               `json:"total_questions"`
	TotalTranscripts int               `json:"total_transcripts"`
	User             *User             `json:"user,omitempty"`
}

// MessagesResponse wraps GET /contact.
type MessagesResponse struct {
	Messages []ContactMessage `json:"messages"`
}

// AdminStatsResponse wraps /admin/stats.
type AdminStatsResponse struct {
	TotalUsers     int `json:"total_users"`
	TotalSessions  int `json:"total_sessions"`
	TotalVideos    int `json:"total_videos"`
	TotalQuestions int `json:"total_questions"`
}

// Ack is the generic acknowledgment body of mutation endpoints.
type Ack struct {
	Message string `json:"message,omitempty"`
}
