package questionbank

import (
	"fmt"
	"strings"

	"talent-screen-backend/models"
)

const (
	// MaxQuestions caps the generated question set per interview.
	MaxQuestions = 5
	// generic questions produced from the tech stack when a role list is
	// short or missing
	genericCount = 3
)

// RoleKey maps a desired position to a template key:
// "Data Analyst" -> "data_analyst".
func RoleKey(position string) string {
	key := strings.ToLower(strings.TrimSpace(position))
	key = strings.ReplaceAll(key, " ", "_")
	key = strings.ReplaceAll(key, "-", "_")
	return key
}

func LevelForExperience(years int) models.Seniority {
	switch {
	case years <= 1:
		return models.JuniorLevel
	case years <= 4:
		return models.MidLevel
	default:
		return models.SeniorLevel
	}
}

// Select returns the ordered question set for a role and level, topped up
// from tech-stack generics when the curated list is short. Never duplicates,
// never exceeds MaxQuestions.
func Select(roleKey string, level models.Seniority, techStack []string) []string {
	var questions []string
	if forRole, ok := roleTemplates[roleKey]; ok {
		if list, ok := forRole[level]; ok {
			questions = append(questions, list...)
		} else if list, ok := forRole[models.JuniorLevel]; ok {
			questions = append(questions, list...)
		} else if list, ok := forRole[models.MidLevel]; ok {
			questions = append(questions, list...)
		}
	}
	if len(questions) < MaxQuestions {
		for _, extra := range genericQuestions(techStack, level) {
			if !contains(questions, extra) {
				questions = append(questions, extra)
			}
		}
	}
	if len(questions) > MaxQuestions {
		questions = questions[:MaxQuestions]
	}
	return questions
}

// genericQuestions builds up to genericCount questions from the declared
// tech stack, padding from the fixed fallback list.
func genericQuestions(techStack []string, level models.Seniority) []string {
	questions := make([]string, 0, genericCount)
	for i, tech := range techStack {
		if i >= genericCount {
			break
		}
		questions = append(questions, questionForTech(tech, level))
	}
	for _, fallback := range fallbackQuestions {
		if len(questions) >= genericCount {
			break
		}
		if !contains(questions, fallback) {
			questions = append(questions, fallback)
		}
	}
	return questions
}

func questionForTech(tech string, level models.Seniority) string {
	if byLevel, ok := techTemplates[strings.ToLower(tech)]; ok {
		return byLevel[level]
	}
	switch level {
	case models.JuniorLevel:
		return fmt.Sprintf("What are the basic concepts you should know when working with %s?", tech)
	case models.MidLevel:
		return fmt.Sprintf("Describe a challenging project you've worked on using %s.", tech)
	default:
		return fmt.Sprintf("How would you architect a large-scale system using %s?", tech)
	}
}

func contains(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}

// RecognizedTechs is scanned to detect answers that are just a technology
// list instead of an explanation.
var RecognizedTechs = []string{"python", "sql", "powerbi", "excel", "tableau", "javascript", "react", "java"}

// AdmittedTechs is scanned in don't-know answers to find a technology the
// candidate does claim, so an easier tailored question can be offered.
var AdmittedTechs = []string{"python", "sql", "excel", "powerbi", "javascript", "react", "java", "html", "css"}

// TailoredQuestion is the easier replacement question offered when a
// candidate admits not knowing the current topic but names a familiar
// technology.
func TailoredQuestion(tech, candidateName string) string {
	switch tech {
	case "python":
		return "Great! Since you know Python, can you tell me about a simple Python project you've worked on or would like to work on?"
	case "sql":
		return "Perfect! Since you're familiar with SQL, can you explain what a JOIN operation does in simple terms?"
	case "excel":
		return "Excellent! Since you know Excel, can you describe how you've used formulas or functions in your work?"
	case "powerbi":
		return "Great! Since you work with PowerBI, can you tell me about a dashboard or report you've created?"
	default:
		return fmt.Sprintf("That's perfectly fine, %s! Since you mentioned %s, can you tell me about your experience with it?", candidateName, tech)
	}
}
