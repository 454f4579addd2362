package dialog

import "talent-screen-backend/models"

// Fixed bot texts. The first greeting and the summary are sent verbatim,
// downstream tooling matches on them.

// WelcomeMessage opens a freshly created session before the candidate's
// first message.
const WelcomeMessage = "Hello! I'm TalentScout's hiring assistant. I'm here to help with your application process. How can I assist you today?"

const fixedGreeting = "Nice to meet you! The entire process takes about 5-10 minutes. Are you ready to get started?"

const startInfoPrompt = "🎉 Excellent! Let's begin with some basic information.\n\n📝 **Step 1: Personal Information**\n\nCould you please tell me your **full name**?"

const notReadyReply = "No problem! Take your time. When you're ready to start the application process, just let me know by saying 'yes' or 'ready'."

const greetingNudge = "I understand you might have questions! I'm here to help you apply for positions at TalentScout.\n\nWould you like to **start the application process** now? Just say 'yes' when you're ready!"

const endMessage = "Thank you for your time today. If you'd like to continue the interview process later, please feel free to start a new session. Have a great day!"

const summaryStageClose = "Thank you for completing the interview! Your information has been recorded and our team will review it shortly. You should hear back from us within 2-3 business days. Have a great day!"

const techStackPrompt = "🎉 Perfect!\n\nNow, let's talk about your technical expertise! Please tell me about your **tech stack** - what programming languages, frameworks, databases, and tools do you work with?\n\n*Example: Python, JavaScript, React, Node.js, PostgreSQL, Docker*"

const whyGoodCandidatePrompt = "please **describe why you are a good candidate** for this position:\n\n• What makes you unique?\n• What skills and qualities do you bring?\n• Why should we consider you?\n\nPlease provide a detailed response:"

// SavedWarning is surfaced to the candidate when the completed record could
// not be persisted to the register.
const SavedWarning = "⚠️ We had trouble saving your application record. Our team has been notified; your interview is still complete."

// short re-ask texts used by the FAQ short-circuit, keyed by cursor
var fieldPrompts = map[models.Field]string{
	models.FullNameField:         "Could you please tell me your **full name**?",
	models.EmailField:            "Could you please provide your **email address**?",
	models.PhoneField:            "Please provide your **phone number**:",
	models.ExperienceYearsField:  "How many **years of professional experience** do you have? (Please enter a number):",
	models.DesiredPositionsField: "What **position(s)** are you interested in? (e.g., Software Developer, Data Scientist, etc.):",
	models.LocationField:         "What's your current **location** (city, country)? Please provide both city and country.",
	models.GenderField:           "Please select your **gender**:\n\n• Male\n• Female\n• Transgender\n\nPlease type one of the above options:",
	models.DateOfBirthField:      "Please provide your **date of birth** in DD/MM/YYYY format:\n\n*Example: 15/08/1995*",
	models.GraduationYearField:   "What year did you **graduate** from your degree program?\n\n*Example: 2020*",
	models.Cgpa10thField:         "Please provide your **10th standard CGPA/Percentage** (0.0 to 10.0):\n\n*Example: 8.5*",
	models.Cgpa12thField:         "Please provide your **12th standard CGPA/Percentage** (0.0 to 10.0):\n\n*Example: 8.7*",
	models.CgpaDegreeField:       "Please provide your **degree CGPA** (0.0 to 10.0):\n\n*Example: 8.9*",
	models.WorkExperienceField:   "Please **describe your work experience** in detail (position, organization, duration, responsibilities):",
	models.WhyGoodCandidateField: "Please **describe why you are a good candidate** for this position:",
}

func fieldPrompt(field models.Field) string {
	if prompt, ok := fieldPrompts[field]; ok {
		return prompt
	}
	return fieldPrompts[models.FullNameField]
}
