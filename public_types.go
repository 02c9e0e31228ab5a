package vidsage

import (
	"github.com/vidsage/vidsage-go/internal/transport"
	"github.com/vidsage/vidsage-go/internal/types"
)

// Public type aliases so SDK consumers can import only the vidsage package.

// PendingAnswer is the sentinel answer of a conversation entry still
// waiting for the server.
const PendingAnswer = types.PendingAnswer

type (
	// Domain entities
	User            = types.User
	Conversation    = types.Conversation
	AnalysisSession = types.AnalysisSession
	ContactMessage  = types.ContactMessage

	// Requests
	LoginRequest          = types.LoginRequest
	SignupRequest         = types.SignupRequest
	AskRequest            = types.AskRequest
	ContactRequest        = types.ContactRequest
	UpdateProfileRequest  = types.UpdateProfileRequest
	ChangePasswordRequest = types.ChangePasswordRequest

	// Responses
	AuthResponse       = types.AuthResponse
	ProcessResponse    = types.ProcessResponse
	ResultsResponse    = types.ResultsResponse
	AskResponse        = types.AskResponse
	DashboardResponse  = types.DashboardResponse
	AdminStatsResponse = types.AdminStatsResponse

	// Transport artifacts
	FormPayload = transport.FormPayload
	FormBuilder = transport.FormBuilder
	Download    = transport.Download
)
