package dbmodels

// CandidateResult is the flat row written once per completed interview.
// Column order in the exported register is fixed and consumed downstream,
// see lib/export/xls.
type CandidateResult struct {
	BaseModel
	SessionID        string  `gorm:"type:varchar(36);index" json:"session_id"`
	FullName         string  `json:"full_name"`
	Email            string  `json:"email"`
	Phone            string  `json:"phone"`
	Gender           string  `json:"gender"`
	DateOfBirth      string  `json:"date_of_birth"`
	ExperienceYears  int     `json:"experience_years"`
	DesiredPositions string  `json:"desired_positions"`
	Location         string  `json:"location"`
	GraduationYear   int     `json:"graduation_year"`
	Cgpa10th         float64 `json:"cgpa_10th"`
	Cgpa12th         float64 `json:"cgpa_12th"`
	CgpaDegree       float64 `json:"cgpa_degree"`
	TechStack        string  `json:"tech_stack"`
	WorkExperience   string  `json:"work_experience_description"`
	WhyGoodCandidate string  `json:"why_good_candidate"`
	Questions        string  `json:"technical_questions"`
	Responses        string  `json:"candidate_responses"`
	SentimentScore   float64 `json:"sentiment_score"`
	AnsweredRatio    string  `json:"questions_answered"`
}
