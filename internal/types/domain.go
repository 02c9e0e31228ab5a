package types

// ------------------------------
// Core Domain Entities
// ------------------------------

// PendingAnswer is the sentinel answer text of a conversation entry whose
// server response has not arrived yet.
const PendingAnswer = "..."

// User is the identity record returned by the auth endpoints.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	IsAdmin  bool   `json:"is_admin"`
}

// Conversation is one question/answer exchange within an analysis session.
// Entries created client-side carry a locally generated ID and PendingAnswer
// until the server reconciles them.
type Conversation struct {
	ID        int64  `json:"id"`
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	Timestamp string `json:"timestamp"`
}

// Pending reports whether the entry is still waiting for its answer.
func (c Conversation) Pending() bool { return c.Answer == PendingAnswer }

// AnalysisSession summarizes one processed video: either a YouTube source
// (IsYouTube + YouTubeID) or a local upload (VideoPath). Timestamps are kept
// as the server's opaque strings; the client never does date arithmetic.
type AnalysisSession struct {
	ID                string  `json:"id"`
	Title             string  `json:"title"`
	Timestamp         string  `json:"timestamp"`
	IsYouTube         bool    `json:"is_youtube"`
	YouTubeID         string  `json:"youtube_id,omitempty"`
	VideoPath         string  `json:"video_path,omitempty"`
	Transcript        string  `json:"transcript,omitempty"`
	Summary           string  `json:"summary,omitempty"`
	ConversationCount int     `json:"conversation_count,omitempty"`
	Duration          float64 `json:"duration,omitempty"`
	Thumbnail         string  `json:"thumbnail,omitempty"`
}

// ContactMessage is a message submitted through the public contact form,
// surfaced to moderators. Created server-side only.
type ContactMessage struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
	IsRead    bool   `json:"is_read"`
}
