package validators

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// Per-field validation for the info-collection stage. Each validator maps
// raw candidate input to a normalized value or a corrective message the bot
// sends back verbatim. A non-empty message means rejection; rejections never
// mutate session state, the caller just re-asks.

func FullName(input string) (string, string) {
	name := strings.TrimSpace(input)
	parts := strings.Fields(name)
	if len(parts) == 1 {
		return "", "Please provide your **full name** (both first and last name). For example: 'John Smith' or 'Priya Sharma'."
	}
	if len(parts) < 2 || !allAlpha(parts) {
		return "", "Please provide a valid **full name** using only letters. For example: 'John Smith' or 'Priya Sharma'."
	}
	return name, ""
}

func allAlpha(parts []string) bool {
	for _, part := range parts {
		for _, r := range part {
			if !unicode.IsLetter(r) {
				return false
			}
		}
	}
	return true
}

func Email(input string) (string, string) {
	email := strings.TrimSpace(input)
	msg := "That doesn't look like a valid email address. Please provide a valid **email address** (e.g., john@example.com). No spaces allowed."
	if strings.ContainsAny(email, " \t") ||
		!strings.Contains(email, "@") || !strings.Contains(email, ".") ||
		strings.Count(email, "@") != 1 {
		return "", msg
	}
	local := strings.Split(email, "@")[0]
	domain := strings.Split(email, "@")[1]
	domainParts := strings.Split(domain, ".")
	dotParts := strings.Split(email, ".")
	if len(local) < 2 ||
		len(domainParts[0]) < 2 ||
		len(dotParts[len(dotParts)-1]) < 2 ||
		strings.HasPrefix(email, "@") || strings.HasSuffix(email, "@") ||
		strings.HasPrefix(email, ".") || strings.HasSuffix(email, ".") ||
		strings.Contains(email, "..") || strings.Contains(email, "@@") {
		return "", msg
	}
	return email, ""
}

func Phone(input string) (string, string) {
	digits := keepDigits(input)
	fakeMsg := "That doesn't look like a real phone number. Please provide your actual **phone number**:"
	switch {
	case len(digits) < 10:
		return "", "Please provide a valid **phone number** with at least 10 digits:"
	case len(digits) > 15:
		return "", "That phone number seems too long. Please provide a valid **phone number**:"
	case allSameDigit(digits):
		return "", fakeMsg
	case strings.HasPrefix(digits, "0000") || strings.HasPrefix(digits, "1111"):
		return "", fakeMsg
	}
	return digits, ""
}

func keepDigits(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func allSameDigit(digits string) bool {
	for i := 1; i < len(digits); i++ {
		if digits[i] != digits[0] {
			return false
		}
	}
	return len(digits) > 0
}

func ExperienceYears(input string) (int, string) {
	digits := keepDigits(input)
	if digits == "" {
		return 0, "Please enter the number of years as a **number** (e.g., 5, 10, etc.):"
	}
	years, err := strconv.Atoi(digits)
	if err != nil || years < 0 || years > 50 {
		return 0, "Please enter a realistic number of years (0-50):"
	}
	return years, ""
}

func DesiredPositions(input string) ([]string, string) {
	trimmed := strings.TrimSpace(input)
	if len(trimmed) <= 2 {
		return nil, "Please tell me what **positions** you're interested in. For example: 'Data Scientist', 'Software Developer', 'Product Manager', etc."
	}
	positions := make([]string, 0, 2)
	for _, pos := range strings.Split(trimmed, ",") {
		pos = strings.TrimSpace(pos)
		if pos != "" {
			positions = append(positions, pos)
		}
	}
	return positions, ""
}

func Location(input string) (string, string) {
	location := strings.TrimSpace(input)
	parts := strings.Fields(location)
	if len(parts) >= 2 && len(location) > 5 {
		return location, ""
	}
	if len(parts) == 1 {
		return "", "Please provide both **city and country** for your location. For example: 'Mumbai, India' or 'New York, USA'."
	}
	return "", "Please provide a valid **location** with city and country. For example: 'Mumbai, India' or 'London, UK'."
}

func Gender(input string) (string, string) {
	switch strings.ToLower(strings.TrimSpace(input)) {
	case "male":
		return "Male", ""
	case "female":
		return "Female", ""
	case "transgender":
		return "Transgender", ""
	}
	return "", "Please select one of the following options:\n\n• Male\n• Female\n• Transgender\n\nPlease type exactly as shown above:"
}

var dobPattern = regexp.MustCompile(`^\d{1,2}[/-]\d{1,2}[/-]\d{4}$`)
var dobSeparator = regexp.MustCompile(`[/-]`)

// DateOfBirth keeps day and month bounds independent: 31/02 passes and is
// normalized as-is.
func DateOfBirth(input string) (string, string) {
	value := strings.TrimSpace(input)
	if !dobPattern.MatchString(value) {
		return "", "Please provide your date of birth in DD/MM/YYYY format:\n\n*Example: 15/08/1995*"
	}
	parts := dobSeparator.Split(value, -1)
	day, _ := strconv.Atoi(parts[0])
	month, _ := strconv.Atoi(parts[1])
	year, _ := strconv.Atoi(parts[2])
	if day < 1 || day > 31 || month < 1 || month > 12 || year < 1950 || year > 2010 {
		return "", "Please provide a valid date. Day (1-31), Month (1-12), Year (1950-2010):\n\n*Example: 15/08/1995*"
	}
	return fmtDOB(day, month, year), ""
}

func fmtDOB(day, month, year int) string {
	pad := func(v int) string {
		s := strconv.Itoa(v)
		if len(s) == 1 {
			return "0" + s
		}
		return s
	}
	return pad(day) + "/" + pad(month) + "/" + strconv.Itoa(year)
}

func GraduationYear(input string) (int, string) {
	year, err := strconv.Atoi(strings.TrimSpace(input))
	if err != nil {
		return 0, "Please enter the graduation year as a number:\n\n*Example: 2020*"
	}
	if year < 1990 || year > 2030 {
		return 0, "Please enter a valid graduation year (1990-2030):\n\n*Example: 2020*"
	}
	return year, ""
}

// CGPA validates a 0.0-10.0 grade and rounds it to 2 decimals. The example
// value is echoed in corrective messages so each of the three grade prompts
// keeps its own sample.
func CGPA(input, example, fieldName string) (float64, string) {
	value, err := strconv.ParseFloat(strings.TrimSpace(input), 64)
	if err != nil {
		return 0, "Please enter your " + fieldName + " as a number:\n\n*Example: " + example + "*"
	}
	if value < 0.0 || value > 10.0 {
		return 0, "Please enter a CGPA between 0.0 and 10.0:\n\n*Example: " + example + "*"
	}
	return math.Round(value*100) / 100, ""
}

var workIndicators = []string{
	"worked", "work", "job", "position", "role", "company", "organization",
	"responsibilities", "experience", "analyst", "developer", "engineer",
	"manager", "years", "months",
}

var candidateIndicators = []string{
	"skills", "experience", "good", "strong", "qualified", "ability",
	"knowledge", "expertise", "passion", "dedicated", "motivated", "team",
	"leadership", "problem", "solve", "analytical", "technical",
}

// echoed answers that just repeat earlier prompts
var echoAnswers = []string{
	"data analyst, business analyst", "data analyst", "business analyst",
	"5", "yes", "no",
}

func WorkExperience(input string) (string, string) {
	value := strings.TrimSpace(input)
	if freeTextOK(value, workIndicators) {
		return value, ""
	}
	return "", "Please provide a detailed description of your work experience (at least a few sentences):\n\n• Position Title\n• Organization Name\n• Duration\n• Main responsibilities"
}

func WhyGoodCandidate(input string) (string, string) {
	value := strings.TrimSpace(input)
	if freeTextOK(value, candidateIndicators) {
		return value, ""
	}
	return "", "Please provide a detailed response about why you are a good candidate (at least a few sentences):\n\n• What makes you unique?\n• What skills do you bring?\n• Why should we consider you?"
}

func freeTextOK(value string, indicators []string) bool {
	lower := strings.ToLower(value)
	hasContent := false
	for _, indicator := range indicators {
		if strings.Contains(lower, indicator) {
			hasContent = true
			break
		}
	}
	for _, echo := range echoAnswers {
		if lower == echo {
			return false
		}
	}
	return hasContent && len(value) > 20
}
