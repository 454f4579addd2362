package dialog

import (
	"fmt"
	"strings"

	questionbank "talent-screen-backend/lib/question-bank"
	"talent-screen-backend/lib/utils/helpers"
	"talent-screen-backend/models"
	dbmodels "talent-screen-backend/models/db"
)

// filler terms discarded when parsing a declared tech stack
var techStopWords = map[string]bool{
	"i": true, "am": true, "i'm": true, "im": true, "good": true, "in": true,
	"with": true, "at": true, "and": true, "&": true, "/": true,
	"working": true, "have": true, "experience": true, "on": true, "of": true,
	"the": true, "using": true,
}

// TokenizeTechStack normalizes a free-form stack description into an ordered
// deduplicated technology list: lowercase, trailing ",." stripped, stop
// words and single characters dropped.
func TokenizeTechStack(input string) []string {
	var tokens []string
	for _, raw := range strings.Fields(input) {
		token := strings.TrimRight(strings.ToLower(raw), ",.")
		if token == "" || techStopWords[token] || len(token) <= 1 {
			continue
		}
		tokens = append(tokens, token)
	}
	return helpers.UniqueStrings(tokens)
}

func (m *Machine) handleTechStack(s *dbmodels.InterviewSession, input string) string {
	if input == "" {
		return "Please tell me about your **tech stack** - what programming languages, frameworks, databases, and tools do you work with?"
	}
	techStack := TokenizeTechStack(input)
	if len(techStack) == 0 {
		return "I didn't catch any technologies in your response. Could you please list some technologies you work with? (e.g., Python, JavaScript, React, etc.)"
	}
	s.Candidate.TechStack = techStack

	role := "general"
	if len(s.Candidate.DesiredPositions) > 0 {
		role = s.Candidate.DesiredPositions[0]
	}
	level := questionbank.LevelForExperience(s.Candidate.ExperienceYears)
	questions := questionbank.Select(questionbank.RoleKey(role), level, techStack)

	s.Questions = dbmodels.QuestionSet{Questions: questions}
	s.Stage = models.TechnicalQuestionsStage

	firstQuestion := "Could you tell me about a project that demonstrates your technical skills?"
	if len(questions) > 0 {
		firstQuestion = questions[0]
	}
	return fmt.Sprintf("✅ Great, thank you for sharing your technical skills! Let's dive into some questions.\n\n**Question 1 of %d:**\n%s\n\n*Please answer in as much detail as you can.*",
		len(questions), firstQuestion)
}
