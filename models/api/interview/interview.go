package interviewapimodels

import (
	"strings"
	"time"

	"github.com/pkg/errors"
)

type MessageRequest struct {
	Message string `json:"message"` //candidate utterance
}

func (r MessageRequest) Validate(maxSize int) error {
	if strings.TrimSpace(r.Message) == "" {
		return errors.New("message is required")
	}
	if maxSize > 0 && len(r.Message) > maxSize {
		return errors.Errorf("message is too long (max %v characters)", maxSize)
	}
	return nil
}

type SessionView struct {
	SessionID        string `json:"session_id"`
	Stage            string `json:"stage"`
	StageDescription string `json:"stage_description"`
	Progress         int    `json:"progress"`
	Completed        bool   `json:"completed"`
	Greeting         string `json:"greeting,omitempty"`
}

type ReplyView struct {
	SessionID        string `json:"session_id"`
	Reply            string `json:"reply"`
	Stage            string `json:"stage"`
	StageDescription string `json:"stage_description"`
	Progress         int    `json:"progress"`
	Completed        bool   `json:"completed"`
	Warning          string `json:"warning,omitempty"`
}

type TranscriptItem struct {
	Speaker   string    `json:"speaker"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
}

type StatsView struct {
	TotalSessions       int64    `json:"total_sessions"`
	CompletedInterviews int64    `json:"completed_interviews"`
	CompletionRate      float64  `json:"completion_rate"`
	AverageExperience   float64  `json:"average_experience"`
	TopTechnologies     []string `json:"top_technologies"`
}
