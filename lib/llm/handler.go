package llmhandler

import (
	"fmt"
	"strings"

	yagptclient "talent-screen-backend/lib/llm/yagpt-client"
	"talent-screen-backend/models"
	dbmodels "talent-screen-backend/models/db"

	log "github.com/sirupsen/logrus"
)

// Provider generates off-script replies. Generate never returns an empty
// string: on API failure (or when no token is configured) it falls back to
// a canned per-tag response, so callers can treat the result as final text.
type Provider interface {
	Generate(prompt, contextTag string, history dbmodels.Transcript) string
}

var Instance Provider

func NewHandler(apiToken, catalogID string) {
	handler := &impl{}
	if apiToken != "" && catalogID != "" {
		handler.client = yagptclient.NewClient(apiToken, catalogID)
	} else {
		log.Warn("llm client is not configured, canned fallbacks only")
	}
	Instance = handler
}

type impl struct {
	client yagptclient.Provider
}

// how many trailing transcript messages are passed as context
const historyWindow = 5

var systemPrompts = map[string]string{
	"greeting":        "You are TalentScout's AI hiring assistant. Greet the candidate briefly and professionally and invite them to start the screening.",
	"info_collection": "You are collecting candidate information for TalentScout. Be professional, systematic and concise. Ask for one piece of information at a time.",
	"tech_questions":  "You are conducting a technical screening for TalentScout. Be professional, encouraging and concise.",
	"summary":         "You are wrapping up a TalentScout screening interview. Thank the candidate, summarize briefly and explain next steps.",
	"fallback":        "You are TalentScout's hiring assistant. The conversation has gone off-topic. Politely redirect the candidate back to the hiring process while staying kind and concise.",
}

var fallbackReplies = map[string]string{
	"greeting":        "Hello! I'm TalentScout's hiring assistant. I'm here to help with your application process. How can I assist you today?",
	"info_collection": "I'd be happy to help collect your information. Could you please provide the details I requested?",
	"tech_questions":  "Let me ask you a technical question to better understand your skills.",
	"summary":         "Thank you for your time today. We'll review your information and get back to you soon.",
	"fallback":        "I apologize, but I'm having some technical difficulties. Let's continue with the interview process.",
}

func (i *impl) Generate(prompt, contextTag string, history dbmodels.Transcript) string {
	if i.client == nil {
		return fallback(contextTag)
	}
	system, ok := systemPrompts[contextTag]
	if !ok {
		system = systemPrompts["fallback"]
	}
	reply, err := i.client.GenerateByPromtAndText(system, buildUserText(prompt, history))
	if err != nil {
		log.WithError(err).WithField("context_tag", contextTag).Warn("llm generation failed, using canned reply")
		return fallback(contextTag)
	}
	reply = strings.TrimSpace(reply)
	if reply == "" {
		return fallback(contextTag)
	}
	return reply
}

func buildUserText(prompt string, history dbmodels.Transcript) string {
	if len(history) == 0 {
		return prompt
	}
	start := len(history) - historyWindow
	if start < 0 {
		start = 0
	}
	var b strings.Builder
	b.WriteString("Recent conversation:\n")
	for _, msg := range history[start:] {
		speaker := "Candidate"
		if msg.Speaker == models.AssistantSpeaker {
			speaker = "Assistant"
		}
		fmt.Fprintf(&b, "%s: %s\n", speaker, msg.Text)
	}
	b.WriteString("\nCandidate's latest message: ")
	b.WriteString(prompt)
	return b.String()
}

func fallback(contextTag string) string {
	if reply, ok := fallbackReplies[contextTag]; ok {
		return reply
	}
	return fallbackReplies["fallback"]
}
