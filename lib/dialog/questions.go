package dialog

import (
	"fmt"
	"strings"

	questionbank "talent-screen-backend/lib/question-bank"
	"talent-screen-backend/lib/utils/helpers"
	"talent-screen-backend/models"
	dbmodels "talent-screen-backend/models/db"
)

var clarificationPhrases = []string{
	"clarify", "explain", "what do you mean", "i dont understand",
	"i don't understand", "can you explain", "what is this",
	"help me understand",
}

var explanatoryVerbs = []string{
	"join", "query", "function", "method", "because", "would", "can", "use",
	"create", "analyze",
}

var dontKnowPhrases = []string{
	"dont know", "don't know", "not sure", "no idea", "never used",
	"not familiar", "dont understand", "don't understand", "confused",
	"not experienced",
}

// single-token admissions of not knowing; checked before the degenerate
// length rule so "idk" gets the empathetic branch
var dontKnowTokens = map[string]bool{
	"idk": true, "dk": true, "dunno": true,
}

var nonsenseAnswers = map[string]bool{
	"hh": true, "h": true, ".": true, "..": true, "no": true, "nah": true,
	"nothing": true, "aisehi": true, "aise hi": true, "kuch nahi": true,
	"pata nahi": true, "nhi": true, "na": true, "nope": true, "xyz": true,
	"abc": true, "test": true, "testing": true,
}

// handleTechnicalQuestions classifies the answer in priority order:
// clarification request, bare technology list, don't-know admission,
// degenerate answer, acceptable answer. Only admissions and acceptable
// answers consume the pending question slot.
func (m *Machine) handleTechnicalQuestions(s *dbmodels.InterviewSession, input string) string {
	answer := strings.ToLower(input)
	name := helpers.FirstToken(s.Candidate.FullName, "there")
	q := &s.Questions
	total := len(q.Questions)

	if containsAny(answer, clarificationPhrases) {
		current := "the question"
		if q.Pointer() < total {
			current = q.Questions[q.Pointer()]
		}
		return fmt.Sprintf(`Of course, %s! Let me clarify the question for you. 😊

**Question Explanation:**
%s

This question is asking you to explain your understanding or experience with this topic. You can:
- Share what you know about it
- Explain how you would approach it
- Give an example if you have one
- Say "I'm not familiar with this" if you don't know

Please try answering now! 🙏`, name, current)
	}

	if isJustTechList(answer) {
		return fmt.Sprintf(`I see you've listed some technologies, %s! 😊

However, I need you to actually answer the technical question I asked. Please explain your understanding or approach to the specific question.

If you're not familiar with the topic, you can say:
- "I haven't worked with this directly, but I think..."
- "I'm not experienced with this, but my understanding is..."
- "I don't know this specific topic"

Please try answering the actual question now! 🙏`, name)
	}

	if isDontKnow(answer) {
		q.Responses = append(q.Responses, input)
		pointer := q.Pointer()
		if tech := mentionedTech(answer); tech != "" && pointer < total {
			adjusted := questionbank.TailoredQuestion(tech, name)
			q.Questions[pointer] = adjusted
			return fmt.Sprintf(`No worries at all, %s! 😊

Everyone has different strengths and that's completely normal. I appreciate your honesty!

Let me ask you something more aligned with your experience:

**Adjusted Question %d of %d:**
%s

*Please share your thoughts - even basic experience is valuable!*`, name, pointer+1, total, adjusted)
		}
		if pointer < total {
			next := q.Questions[pointer]
			return fmt.Sprintf(`That's absolutely fine, %s! 😊

No one knows everything, and honesty is really appreciated in interviews. Let's try a different question:

**Question %d of %d:**
%s

*Take your time and share whatever you know!*`, name, pointer+1, total, next)
		}
		return m.completeInterview(s, name)
	}

	if len(answer) <= 3 || nonsenseAnswers[answer] || len(strings.Fields(answer)) <= 1 {
		return fmt.Sprintf(`I understand, %s! 😊

Could you please provide a more detailed answer? Even if you're not completely sure, sharing your thoughts would be helpful.

If you're not familiar with this topic, you can say:
- "I haven't worked with this directly, but I think..."
- "I'm not very experienced with this, but my understanding is..."
- "I would approach this by..."
- "I don't know this specific topic, but I know..."

Please try answering again with a bit more detail! 🙏`, name)
	}

	q.Responses = append(q.Responses, input)
	pointer := q.Pointer()
	if pointer < total {
		next := q.Questions[pointer]
		return fmt.Sprintf(`✅ Thank you for that detailed response, %s!

**Question %d of %d:**
%s

*Please share your thoughts and experience.*`, name, pointer+1, total, next)
	}
	return m.completeInterview(s, name)
}

// isJustTechList spots answers that only enumerate technologies instead of
// addressing the question: short, at least two known techs, no explanatory
// verbs.
func isJustTechList(answer string) bool {
	if len(strings.Fields(answer)) > 6 {
		return false
	}
	techCount := 0
	for _, tech := range questionbank.RecognizedTechs {
		if strings.Contains(answer, tech) {
			techCount++
		}
	}
	if techCount < 2 {
		return false
	}
	return !containsAny(answer, explanatoryVerbs)
}

func isDontKnow(answer string) bool {
	if containsAny(answer, dontKnowPhrases) {
		return true
	}
	for _, token := range strings.Fields(answer) {
		if dontKnowTokens[strings.Trim(token, ".,!?")] {
			return true
		}
	}
	return false
}

func mentionedTech(answer string) string {
	for _, tech := range questionbank.AdmittedTechs {
		if strings.Contains(answer, tech) {
			return tech
		}
	}
	return ""
}

func (m *Machine) completeInterview(s *dbmodels.InterviewSession, name string) string {
	s.Completed = true
	s.Stage = models.EndedStage
	info := s.Candidate
	return fmt.Sprintf(`🎉 **Excellent work, %s! You've completed the technical assessment!**

📋 **Interview Summary:**
• **Name:** %s
• **Experience:** %d years
• **Position Interest:** %s
• **Tech Stack:** %s
• **Questions Answered:** %d

🎯 **Next Steps:**
1. Our technical team will review your responses
2. You'll receive feedback within 2-3 business days
3. If selected, we'll schedule a technical interview

📧 We'll contact you at **%s** with updates.

**Thank you for your time and interest in TalentScout!** 🚀

*You can type 'restart' to begin a new application or 'exit' to end this session.*`,
		name, info.FullName, info.ExperienceYears,
		strings.Join(info.DesiredPositions, ", "),
		strings.Join(firstN(info.TechStack, 5), ", "),
		len(s.Questions.Questions), info.Email)
}
