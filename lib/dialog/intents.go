package dialog

import (
	"strings"

	"talent-screen-backend/models"
)

// Rule tables for intent detection. Ordered, auditable, no model calls.

var endKeywords = []string{"bye", "goodbye", "exit", "quit"}

var endPhrases = []string{
	"i'm done with the interview", "end the interview", "stop the interview",
	"i want to quit", "i want to exit", "finish the interview",
}

// IsEndIntent matches exact end keywords (whole word at either end of the
// utterance) and a short list of explicit phrases. Common words never
// trigger it.
func IsEndIntent(input string) bool {
	lower := strings.ToLower(strings.TrimSpace(input))
	for _, keyword := range endKeywords {
		if lower == keyword ||
			strings.HasPrefix(lower, keyword+" ") ||
			strings.HasSuffix(lower, " "+keyword) {
			return true
		}
	}
	for _, phrase := range endPhrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

var resetCommands = map[string]bool{
	"reset":      true,
	"restart":    true,
	"start over": true,
}

func isResetCommand(input string) bool {
	return resetCommands[strings.ToLower(strings.TrimSpace(input))]
}

var affirmativeWords = []string{
	"yes", "y", "sure", "okay", "ok", "ready", "proceed", "start", "begin",
	"go", "continue", "yeah", "yep", "yup", "haan", "ha",
}

var affirmativePhrases = []string{"let's go", "lets go"}

var negativeWords = []string{"no", "n", "later", "wait", "nahi", "nah"}

var negativePhrases = []string{"not ready"}

// matchesIntent checks single words against the utterance tokens and
// multi-word entries as substrings. Token matching keeps "nahi" from
// triggering the affirmative "ha".
func matchesIntent(lower string, words, phrases []string) bool {
	tokens := strings.Fields(lower)
	for i, token := range tokens {
		tokens[i] = strings.Trim(token, ".,!?")
	}
	for _, word := range words {
		for _, token := range tokens {
			if token == word {
				return true
			}
		}
	}
	for _, phrase := range phrases {
		if strings.Contains(lower, phrase) {
			return true
		}
	}
	return false
}

type faqTopic struct {
	triggers []string
	// answer per stage; info-collection answers re-state the current field
	// prompt
	greetingAnswer string
	infoAnswer     string
}

var faqTopics = []faqTopic{
	{
		triggers:       []string{"who are you", "what are you", "introduce", "your name"},
		greetingAnswer: "I'm TalentScout Assistant! 🤖 I'm an AI hiring assistant designed to help you through our application process. I'll collect your information, assess your technical skills, and ask relevant questions based on your expertise.\n\nAre you ready to start the application process?",
		infoAnswer:     "I'm TalentScout Assistant! 🤖 I'm an AI hiring assistant designed to help you through our application process.\n\nLet's continue with collecting your information. ",
	},
	{
		triggers:       []string{"what do you do", "what is this", "purpose", "help"},
		greetingAnswer: "I help candidates like you apply for positions at TalentScout! 🎯\n\nHere's what I do:\n• Collect your basic information\n• Understand your technical skills\n• Ask relevant questions based on your expertise\n• Provide feedback and next steps\n\nWould you like to begin the application process?",
		infoAnswer:     "I help candidates like you apply for positions at TalentScout! 🎯\n\nRight now I'm collecting your basic information to get started. ",
	},
	{
		triggers:       []string{"company", "talentscout", "about company"},
		greetingAnswer: "TalentScout is a hiring platform that connects talented professionals with great opportunities! 🌟\n\nI'm here to help you through our streamlined application process. Ready to get started?",
		infoAnswer:     "TalentScout is a hiring platform that connects talented professionals with great opportunities! 🌟\n\nLet's continue with your application. ",
	},
	{
		triggers:       []string{"how long", "duration", "how much time"},
		greetingAnswer: "The entire process takes about 5-10 minutes! ⏰\n\nIt's quick and straightforward - just some basic info and a few technical questions. Are you ready to begin?",
		infoAnswer:     "The entire process takes about 5-10 minutes! ⏰ We're just getting started.\n\n",
	},
}

func greetingFAQ(lower string) string {
	for _, topic := range faqTopics {
		for _, trigger := range topic.triggers {
			if strings.Contains(lower, trigger) {
				return topic.greetingAnswer
			}
		}
	}
	return ""
}

// infoCollectionFAQ answers the question and re-asks the current field
// without touching the cursor.
func infoCollectionFAQ(lower string, field models.Field) string {
	for _, topic := range faqTopics {
		for _, trigger := range topic.triggers {
			if strings.Contains(lower, trigger) {
				return topic.infoAnswer + fieldPrompt(field)
			}
		}
	}
	return ""
}

func containsAny(text string, phrases []string) bool {
	for _, phrase := range phrases {
		if strings.Contains(text, phrase) {
			return true
		}
	}
	return false
}

func firstN(list []string, n int) []string {
	if len(list) > n {
		return list[:n]
	}
	return list
}
