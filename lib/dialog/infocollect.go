package dialog

import (
	"fmt"
	"strings"

	"talent-screen-backend/lib/dialog/validators"
	"talent-screen-backend/models"
	dbmodels "talent-screen-backend/models/db"
)

// handleInfoCollection walks the candidate through the fixed field sequence.
// One field per turn: a validation failure re-asks without moving the
// cursor, a success stores the normalized value and advances.
func (m *Machine) handleInfoCollection(s *dbmodels.InterviewSession, input string) string {
	lower := strings.ToLower(input)
	info := &s.Candidate
	if info.CurrentField == "" {
		info.CurrentField = models.FullNameField
	}

	if answer := infoCollectionFAQ(lower, info.CurrentField); answer != "" {
		return answer
	}

	switch info.CurrentField {
	case models.FullNameField:
		name, msg := validators.FullName(input)
		if msg != "" {
			return msg
		}
		info.FullName = name
		info.CurrentField = models.EmailField
		return fmt.Sprintf("Nice to meet you, %s! 📧\n\nNow, could you please provide your **email address**?", name)

	case models.EmailField:
		email, msg := validators.Email(input)
		if msg != "" {
			return msg
		}
		info.Email = email
		info.CurrentField = models.PhoneField
		return "Great! 📱\n\nNext, please provide your **phone number**:"

	case models.PhoneField:
		phone, msg := validators.Phone(input)
		if msg != "" {
			return msg
		}
		info.Phone = phone
		info.CurrentField = models.ExperienceYearsField
		return "Perfect! 💼\n\nHow many **years of professional experience** do you have? (Please enter a number):"

	case models.ExperienceYearsField:
		years, msg := validators.ExperienceYears(input)
		if msg != "" {
			return msg
		}
		info.ExperienceYears = years
		info.CurrentField = models.DesiredPositionsField
		return fmt.Sprintf("Excellent! %d years of experience. 🎯\n\nWhat **position(s)** are you interested in? (e.g., Software Developer, Data Scientist, etc.):", years)

	case models.DesiredPositionsField:
		positions, msg := validators.DesiredPositions(input)
		if msg != "" {
			return msg
		}
		info.DesiredPositions = positions
		info.CurrentField = models.LocationField
		return fmt.Sprintf("Great! Interested in: %s 🌍\n\nWhat's your current **location** (city, country)? Please provide both city and country.", strings.Join(positions, ", "))

	case models.LocationField:
		location, msg := validators.Location(input)
		if msg != "" {
			return msg
		}
		info.Location = location
		info.CurrentField = models.GenderField
		return fmt.Sprintf("Great! Location: %s 👤\n\nNext, please select your **gender**:\n\n• Male\n• Female\n• Transgender\n\nPlease type one of the above options:", location)

	case models.GenderField:
		gender, msg := validators.Gender(input)
		if msg != "" {
			return msg
		}
		info.Gender = gender
		info.CurrentField = models.DateOfBirthField
		return "Thank you! 📅\n\nPlease provide your **date of birth** in DD/MM/YYYY format:\n\n*Example: 15/08/1995*"

	case models.DateOfBirthField:
		dob, msg := validators.DateOfBirth(input)
		if msg != "" {
			return msg
		}
		info.DateOfBirth = dob
		info.CurrentField = models.GraduationYearField
		return "Perfect! 🎓\n\nWhat year did you **graduate** from your degree program?\n\n*Example: 2020*"

	case models.GraduationYearField:
		year, msg := validators.GraduationYear(input)
		if msg != "" {
			return msg
		}
		info.GraduationYear = year
		info.CurrentField = models.Cgpa10thField
		return fmt.Sprintf("Great! Graduated in %d 📊\n\nPlease provide your **10th standard CGPA/Percentage** (0.0 to 10.0):\n\n*Example: 8.5*", year)

	case models.Cgpa10thField:
		cgpa, msg := validators.CGPA(input, "8.5", "10th CGPA")
		if msg != "" {
			return msg
		}
		info.Cgpa10th = cgpa
		info.CurrentField = models.Cgpa12thField
		return "Excellent! 📊\n\nNow, please provide your **12th standard CGPA/Percentage** (0.0 to 10.0):\n\n*Example: 8.7*"

	case models.Cgpa12thField:
		cgpa, msg := validators.CGPA(input, "8.7", "12th CGPA")
		if msg != "" {
			return msg
		}
		info.Cgpa12th = cgpa
		info.CurrentField = models.CgpaDegreeField
		return "Great! 📊\n\nFinally, please provide your **degree CGPA** (0.0 to 10.0):\n\n*Example: 8.9*"

	case models.CgpaDegreeField:
		cgpa, msg := validators.CGPA(input, "8.9", "degree CGPA")
		if msg != "" {
			return msg
		}
		info.CgpaDegree = cgpa
		// the work-experience question only applies to candidates with
		// professional experience
		if info.ExperienceYears > 0 {
			info.CurrentField = models.WorkExperienceField
			return fmt.Sprintf("Excellent! 💼\n\nSince you have %d years of experience, please **describe your work experience** in detail:\n\n• What was your **Position Title**?\n• What was the **Organization Name**?\n• How long did you work there?\n• What were your main responsibilities?\n\nPlease provide a detailed description:", info.ExperienceYears)
		}
		info.CurrentField = models.WhyGoodCandidateField
		return "Perfect! 🎆\n\nFinally, " + whyGoodCandidatePrompt

	case models.WorkExperienceField:
		description, msg := validators.WorkExperience(input)
		if msg != "" {
			return msg
		}
		info.WorkExperience = description
		info.CurrentField = models.WhyGoodCandidateField
		return "Thank you for sharing your experience! 🎆\n\nFinally, " + whyGoodCandidatePrompt

	case models.WhyGoodCandidateField:
		answer, msg := validators.WhyGoodCandidate(input)
		if msg != "" {
			return msg
		}
		info.WhyGoodCandidate = answer
		s.Stage = models.TechStackStage
		return techStackPrompt
	}
	// unknown cursor value, re-enter at the first field
	info.CurrentField = models.FullNameField
	return fieldPrompt(models.FullNameField)
}
