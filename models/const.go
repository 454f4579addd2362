package models

// Stage is the conversation stage of a screening session.
// Transitions are monotonic: greeting -> info_collection -> tech_stack ->
// technical_questions -> summary -> ended (reset is the only way back).
type Stage string

const (
	GreetingStage           Stage = "greeting"
	InfoCollectionStage     Stage = "info_collection"
	TechStackStage          Stage = "tech_stack"
	TechnicalQuestionsStage Stage = "technical_questions"
	SummaryStage            Stage = "summary"
	EndedStage              Stage = "ended"
)

var stageProgress = map[Stage]int{
	GreetingStage:           10,
	InfoCollectionStage:     30,
	TechStackStage:          50,
	TechnicalQuestionsStage: 80,
	SummaryStage:            95,
	EndedStage:              100,
}

func (s Stage) Progress() int {
	return stageProgress[s]
}

var stageDescription = map[Stage]string{
	GreetingStage:           "Welcome & Introduction",
	InfoCollectionStage:     "Collecting Basic Information",
	TechStackStage:          "Technical Skills Assessment",
	TechnicalQuestionsStage: "Technical Interview Questions",
	SummaryStage:            "Interview Summary",
	EndedStage:              "Interview Completed",
}

func (s Stage) Description() string {
	return stageDescription[s]
}

// Field is the info-collection cursor value: which candidate field the next
// utterance is expected to fill.
type Field string

const (
	FullNameField         Field = "full_name"
	EmailField            Field = "email"
	PhoneField            Field = "phone"
	ExperienceYearsField  Field = "experience_years"
	DesiredPositionsField Field = "desired_positions"
	LocationField         Field = "location"
	GenderField           Field = "gender"
	DateOfBirthField      Field = "date_of_birth"
	GraduationYearField   Field = "graduation_year"
	Cgpa10thField         Field = "cgpa_10th"
	Cgpa12thField         Field = "cgpa_12th"
	CgpaDegreeField       Field = "cgpa_degree"
	WorkExperienceField   Field = "work_experience_description"
	WhyGoodCandidateField Field = "why_good_candidate"
)

type Seniority string

const (
	JuniorLevel Seniority = "junior"
	MidLevel    Seniority = "mid"
	SeniorLevel Seniority = "senior"
)

type SentimentLabel string

const (
	PositiveSentiment SentimentLabel = "positive"
	NeutralSentiment  SentimentLabel = "neutral"
	NegativeSentiment SentimentLabel = "negative"
)

const (
	UserSpeaker      = "user"
	AssistantSpeaker = "assistant"
)
