// Package builder implements the guided intake state machine and the
// post-completion edit router for storefront agent profiles.
package builder

import (
	"time"

	"github.com/google/uuid"
	"github.com/threeonelabs/storebuilder/internal/domain"
	"github.com/threeonelabs/storebuilder/internal/logging"
)

// TurnResult is what one submitted turn produced.
type TurnResult struct {
	Profile      domain.AgentProfile `json:"profile"`
	Reply        string              `json:"reply"`
	AdvancedStep bool                `json:"advancedStep"`
	Intent       domain.EditIntent   `json:"intent,omitempty"`
}

// Session owns one conversation: the profile under construction, the
// transcript, and the build step. It performs no I/O; persistence and
// reply enrichment are the host's job. Not safe for concurrent use; one
// turn completes before the next is accepted.
type Session struct {
	id      string
	profile domain.AgentProfile
	turns   []domain.Turn
	step    domain.BuildStep
	log     *logging.Logger
}

// NewSession creates a session over the given profile and transcript.
// The resume rule is evaluated here, exactly once: a profile with any
// build progress starts complete and routes every turn to the edit
// router. A fresh empty transcript is seeded with the opening prompt.
func NewSession(profile domain.AgentProfile, transcript []domain.Turn, log *logging.Logger) *Session {
	s := &Session{
		id:      uuid.New().String(),
		profile: profile.Clone(),
		turns:   append([]domain.Turn(nil), transcript...),
		step:    domain.StepBrand,
		log:     log.Sub("builder"),
	}
	if !s.profile.Empty() {
		s.step = domain.StepComplete
	}
	if len(s.turns) == 0 {
		opening := welcomePrompt
		if s.step.Complete() {
			opening = readyPrompt
		}
		s.appendTurn(domain.RoleAssistant, opening)
	}
	return s
}

// ID returns the session's identifier.
func (s *Session) ID() string { return s.id }

// Step returns the current build step.
func (s *Session) Step() domain.BuildStep { return s.step }

// Profile returns a snapshot of the current profile.
func (s *Session) Profile() domain.AgentProfile { return s.profile.Clone() }

// Transcript returns a copy of the ordered transcript.
func (s *Session) Transcript() []domain.Turn {
	return append([]domain.Turn(nil), s.turns...)
}

// SubmitTurn processes one user turn: it appends the user turn, dispatches
// to the step controller or the edit router, applies any profile update,
// appends the assistant reply, and returns the outcome. Every input has a
// defined reply in every state; SubmitTurn never fails.
func (s *Session) SubmitTurn(text string) TurnResult {
	s.appendTurn(domain.RoleUser, text)

	var (
		reply    string
		advanced bool
		intent   domain.EditIntent
	)
	if s.step.Complete() {
		reply, intent = s.routeEdit(text)
	} else {
		reply, advanced = s.applyStep(text)
	}

	s.appendTurn(domain.RoleAssistant, reply)

	s.log.Debug().
		Str("sessionId", s.id).
		Str("step", s.step.String()).
		Bool("advanced", advanced).
		Str("intent", string(intent)).
		Msg("turn processed")

	return TurnResult{
		Profile:      s.profile.Clone(),
		Reply:        reply,
		AdvancedStep: advanced,
		Intent:       intent,
	}
}

// Reset clears the transcript and replaces the profile with the supplied
// defaults. The resume rule is re-evaluated against the new profile and
// the matching opening prompt is seeded, as on construction.
func (s *Session) Reset(defaults domain.AgentProfile) domain.AgentProfile {
	s.turns = nil
	s.profile = defaults.Clone()
	s.step = domain.StepBrand
	if !s.profile.Empty() {
		s.step = domain.StepComplete
	}
	opening := welcomePrompt
	if s.step.Complete() {
		opening = readyPrompt
	}
	s.appendTurn(domain.RoleAssistant, opening)
	s.log.Info().Str("sessionId", s.id).Msg("session reset")
	return s.profile.Clone()
}

// ReplaceProfile swaps in an externally edited profile, leaving the
// transcript and build step untouched. Used for direct catalog edits
// made outside the conversation.
func (s *Session) ReplaceProfile(profile domain.AgentProfile) domain.AgentProfile {
	s.profile = profile.Clone()
	return s.profile.Clone()
}

func (s *Session) appendTurn(role domain.Role, content string) {
	s.turns = append(s.turns, domain.Turn{
		ID:        uuid.New().String(),
		Role:      role,
		Content:   content,
		Timestamp: time.Now(),
	})
}
