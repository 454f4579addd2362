package dbmodels

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"talent-screen-backend/models"

	"github.com/pkg/errors"
)

// CandidateRecord is the structured profile collected during info collection.
// CurrentField is the cursor: the field the next candidate message should
// fill. Validation rejections leave the cursor untouched.
type CandidateRecord struct {
	FullName         string       `json:"full_name"`
	Email            string       `json:"email"`
	Phone            string       `json:"phone"`
	ExperienceYears  int          `json:"experience_years"`
	DesiredPositions []string     `json:"desired_positions"`
	Location         string       `json:"location"`
	Gender           string       `json:"gender"`
	DateOfBirth      string       `json:"date_of_birth"`
	GraduationYear   int          `json:"graduation_year"`
	Cgpa10th         float64      `json:"cgpa_10th"`
	Cgpa12th         float64      `json:"cgpa_12th"`
	CgpaDegree       float64      `json:"cgpa_degree"`
	WorkExperience   string       `json:"work_experience_description"`
	WhyGoodCandidate string       `json:"why_good_candidate"`
	TechStack        []string     `json:"tech_stack"`
	CurrentField     models.Field `json:"current_field"`
}

func (r CandidateRecord) Value() (driver.Value, error) {
	return json.Marshal(r)
}

func (r *CandidateRecord) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, r)
}

// QuestionSet holds the generated technical questions and the answers given
// so far. The implicit pointer is len(Responses): the next unanswered
// question. Questions never exceed the configured cap.
type QuestionSet struct {
	Questions []string `json:"questions"`
	Responses []string `json:"responses"`
}

// Pointer is the index of the next pending question.
func (q QuestionSet) Pointer() int {
	return len(q.Responses)
}

func (q QuestionSet) Exhausted() bool {
	return len(q.Questions) > 0 && len(q.Responses) >= len(q.Questions)
}

func (q QuestionSet) Value() (driver.Value, error) {
	return json.Marshal(q)
}

func (q *QuestionSet) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, q)
}

type TranscriptMessage struct {
	Speaker   string    `json:"speaker"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

// Transcript is the append-only ordered message log of a session.
type Transcript []TranscriptMessage

func (t Transcript) Value() (driver.Value, error) {
	return json.Marshal(t)
}

func (t *Transcript) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, t)
}

type SentimentEntry struct {
	Label     models.SentimentLabel `json:"label"`
	Score     float64               `json:"score"`
	Timestamp time.Time             `json:"timestamp"`
}

// SentimentHistory is a per-turn side record; it never influences the
// conversation flow.
type SentimentHistory []SentimentEntry

func (h SentimentHistory) Value() (driver.Value, error) {
	return json.Marshal(h)
}

func (h *SentimentHistory) Scan(value interface{}) error {
	if value == nil {
		return nil
	}
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	return json.Unmarshal(b, h)
}

type InterviewSession struct {
	BaseModel
	Stage          models.Stage     `gorm:"type:varchar(32);index" json:"stage"`
	Completed      bool             `gorm:"index" json:"completed"`
	Candidate      CandidateRecord  `gorm:"type:jsonb" json:"candidate"`
	Questions      QuestionSet      `gorm:"type:jsonb" json:"questions"`
	Transcript     Transcript       `gorm:"type:jsonb" json:"transcript"`
	Sentiments     SentimentHistory `gorm:"type:jsonb" json:"sentiments"`
	LastActivityAt time.Time        `gorm:"index" json:"last_activity_at"`
}

func (s *InterviewSession) AddMessage(speaker, text string) {
	s.Transcript = append(s.Transcript, TranscriptMessage{
		Speaker:   speaker,
		Text:      text,
		Timestamp: time.Now(),
	})
}

func (s *InterviewSession) UserMessageCount() int {
	count := 0
	for _, msg := range s.Transcript {
		if msg.Speaker == models.UserSpeaker {
			count++
		}
	}
	return count
}
