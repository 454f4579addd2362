package dialog

import (
	"strings"

	"talent-screen-backend/models"
	dbmodels "talent-screen-backend/models/db"
)

// Responder is the black-box text generator used for off-script turns. It
// must always return a non-empty reply, falling back to canned text when the
// upstream API is unavailable.
type Responder interface {
	Generate(prompt, contextTag string, history dbmodels.Transcript) string
}

// Machine drives a screening conversation turn by turn. Process never
// returns an error: malformed or unexpected input always maps to a
// corrective natural-language reply and rejections leave the session state
// untouched.
type Machine struct {
	responder Responder
}

func NewMachine(responder Responder) *Machine {
	return &Machine{responder: responder}
}

func (m *Machine) Process(s *dbmodels.InterviewSession, input string) string {
	s.AddMessage(models.UserSpeaker, input)
	reply := m.route(s, strings.TrimSpace(input))
	if reply == "" {
		reply = m.responder.Generate(input, "fallback", s.Transcript)
	}
	s.AddMessage(models.AssistantSpeaker, reply)
	return reply
}

func (m *Machine) route(s *dbmodels.InterviewSession, input string) string {
	if isResetCommand(input) {
		return m.reset(s)
	}
	if IsEndIntent(input) {
		return m.endConversation(s)
	}
	switch s.Stage {
	case models.GreetingStage:
		return m.handleGreeting(s, input)
	case models.InfoCollectionStage:
		return m.handleInfoCollection(s, input)
	case models.TechStackStage:
		return m.handleTechStack(s, input)
	case models.TechnicalQuestionsStage:
		return m.handleTechnicalQuestions(s, input)
	case models.SummaryStage:
		return m.handleSummary(s)
	default:
		return m.responder.Generate(input, "fallback", s.Transcript)
	}
}

// reset re-enters the greeting stage with a fresh candidate record. The
// transcript is kept, it is an append-only audit log.
func (m *Machine) reset(s *dbmodels.InterviewSession) string {
	s.Stage = models.GreetingStage
	s.Completed = false
	s.Candidate = dbmodels.CandidateRecord{}
	s.Questions = dbmodels.QuestionSet{}
	return fixedGreeting
}

func (m *Machine) endConversation(s *dbmodels.InterviewSession) string {
	s.Stage = models.EndedStage
	return endMessage
}

func (m *Machine) handleGreeting(s *dbmodels.InterviewSession, input string) string {
	if s.UserMessageCount() == 1 {
		return fixedGreeting
	}
	lower := strings.ToLower(input)
	if answer := greetingFAQ(lower); answer != "" {
		return answer
	}
	// negative goes first: "not ready" must not match the affirmative "ready"
	if matchesIntent(lower, negativeWords, negativePhrases) {
		return notReadyReply
	}
	if matchesIntent(lower, affirmativeWords, affirmativePhrases) {
		s.Stage = models.InfoCollectionStage
		s.Candidate.CurrentField = models.FullNameField
		return startInfoPrompt
	}
	return greetingNudge
}

func (m *Machine) handleSummary(s *dbmodels.InterviewSession) string {
	s.Completed = true
	s.Stage = models.EndedStage
	return summaryStageClose
}
