package gateway

import "github.com/threeonelabs/storebuilder/internal/domain"

// TurnRequest is one user message submitted to a session, over REST or
// WebSocket.
type TurnRequest struct {
	Text string `json:"text"`
}

// TurnResponse is the outcome of one processed turn. EnrichError is set
// when reply decoration failed and the scripted reply was used instead;
// the turn itself still succeeded.
type TurnResponse struct {
	Reply        string              `json:"reply"`
	Profile      domain.AgentProfile `json:"profile"`
	Step         string              `json:"step"`
	AdvancedStep bool                `json:"advancedStep"`
	Intent       domain.EditIntent   `json:"intent,omitempty"`
	EnrichError  string              `json:"enrichError,omitempty"`
}

// ResetResponse reports the state after a session reset.
type ResetResponse struct {
	Profile domain.AgentProfile `json:"profile"`
	Step    string              `json:"step"`
	Reply   string              `json:"reply"`
}

// ProductRequest adds or replaces a catalog product directly, outside the
// conversation.
type ProductRequest struct {
	ID    string  `json:"id,omitempty"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"image,omitempty"`
}

// ProfileResponse is the current profile of a session.
type ProfileResponse struct {
	Profile domain.AgentProfile `json:"profile"`
	Step    string              `json:"step"`
}

// AgentSummary is one entry in the agent listing.
type AgentSummary struct {
	SessionKey string `json:"sessionKey"`
	BrandName  string `json:"brandName"`
	Complete   bool   `json:"complete"`
	UpdatedAt  string `json:"updatedAt"`
}

// ErrorResponse is the JSON error body for failed requests.
type ErrorResponse struct {
	Error string `json:"error"`
}
