package interview

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	"talent-screen-backend/config"
	"talent-screen-backend/db"
	candidatestore "talent-screen-backend/lib/candidate/store"
	"talent-screen-backend/lib/dialog"
	pdfexport "talent-screen-backend/lib/export/pdf"
	interviewstore "talent-screen-backend/lib/interview/store"
	llmhandler "talent-screen-backend/lib/llm"
	recordsink "talent-screen-backend/lib/record-sink"
	"talent-screen-backend/lib/sentiment"
	"talent-screen-backend/lib/utils/lock"
	"talent-screen-backend/models"
	interviewapimodels "talent-screen-backend/models/api/interview"
	dbmodels "talent-screen-backend/models/db"
)

// Provider is the screening session orchestrator: it owns session lifecycle,
// turn processing and read models over finished interviews.
type Provider interface {
	StartSession(ctx context.Context) (*interviewapimodels.SessionView, error)
	ProcessMessage(ctx context.Context, sessionID, text string) (*interviewapimodels.ReplyView, error)
	Reset(ctx context.Context, sessionID string) (*interviewapimodels.ReplyView, error)
	GetSession(sessionID string) (*interviewapimodels.SessionView, error)
	GetTranscript(sessionID string) ([]interviewapimodels.TranscriptItem, error)
	SummaryPDF(sessionID string) ([]byte, error)
	Statistics() (*interviewapimodels.StatsView, error)
}

var Instance Provider

func NewHandler() {
	Instance = &impl{
		sessions:   interviewstore.NewInstance(db.DB),
		candidates: candidatestore.NewInstance(db.DB),
		machine:    dialog.NewMachine(llmhandler.Instance),
		sink:       recordsink.Instance,
		scorer:     sentiment.Instance,
	}
}

type impl struct {
	sessions   interviewstore.Provider
	candidates candidatestore.Provider
	machine    *dialog.Machine
	sink       recordsink.Provider
	scorer     sentiment.Provider
}

func (i impl) StartSession(ctx context.Context) (*interviewapimodels.SessionView, error) {
	session := dbmodels.InterviewSession{
		BaseModel: dbmodels.BaseModel{
			ID: uuid.NewString(),
		},
		Stage:          models.GreetingStage,
		LastActivityAt: time.Now(),
	}
	session.AddMessage(models.AssistantSpeaker, dialog.WelcomeMessage)
	id, err := i.sessions.Create(session)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create session")
	}
	view := sessionView(session)
	view.SessionID = id
	view.Greeting = dialog.WelcomeMessage
	return view, nil
}

// ProcessMessage runs one conversation turn. Turns for the same session are
// serialized: a second message while one is in flight waits up to the
// configured lock timeout and is rejected afterwards.
func (i impl) ProcessMessage(ctx context.Context, sessionID, text string) (*interviewapimodels.ReplyView, error) {
	var reply *interviewapimodels.ReplyView
	acquired, err := lock.WithDelay(ctx, "interview-turn-"+sessionID,
		time.Duration(config.Conf.Session.TurnLockWaitSec)*time.Second,
		func() error {
			var turnErr error
			reply, turnErr = i.processTurn(ctx, sessionID, text)
			return turnErr
		})
	if err != nil {
		return nil, err
	}
	if !acquired {
		return nil, errors.New("previous message is still being processed, please retry")
	}
	return reply, nil
}

func (i impl) processTurn(ctx context.Context, sessionID, text string) (*interviewapimodels.ReplyView, error) {
	session, err := i.sessions.GetByID(sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load session")
	}
	if session == nil {
		return nil, errors.New("session not found")
	}
	wasCompleted := session.Completed

	replyText := i.machine.Process(session, text)

	label, score := i.scorer.Score(text)
	session.Sentiments = append(session.Sentiments, dbmodels.SentimentEntry{
		Label:     label,
		Score:     score,
		Timestamp: time.Now(),
	})
	session.LastActivityAt = time.Now()

	warning := ""
	if session.Completed && !wasCompleted {
		if err = i.sink.Save(ctx, *session, config.Conf.Export.RegisterFileName); err != nil {
			log.WithError(err).WithField("session_id", sessionID).
				Warn("failed to persist completed interview")
			warning = dialog.SavedWarning
		}
	}

	if err = i.sessions.Save(session); err != nil {
		return nil, errors.Wrap(err, "failed to save session")
	}
	return &interviewapimodels.ReplyView{
		SessionID:        session.ID,
		Reply:            replyText,
		Stage:            string(session.Stage),
		StageDescription: session.Stage.Description(),
		Progress:         session.Stage.Progress(),
		Completed:        session.Completed,
		Warning:          warning,
	}, nil
}

// Reset replays the dedicated reset command through the normal turn path, so
// it obeys the same locking and transcript rules as any other message.
func (i impl) Reset(ctx context.Context, sessionID string) (*interviewapimodels.ReplyView, error) {
	return i.ProcessMessage(ctx, sessionID, "reset")
}

func (i impl) GetSession(sessionID string) (*interviewapimodels.SessionView, error) {
	session, err := i.sessions.GetByID(sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load session")
	}
	if session == nil {
		return nil, errors.New("session not found")
	}
	return sessionView(*session), nil
}

func (i impl) GetTranscript(sessionID string) ([]interviewapimodels.TranscriptItem, error) {
	session, err := i.sessions.GetByID(sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load session")
	}
	if session == nil {
		return nil, errors.New("session not found")
	}
	items := make([]interviewapimodels.TranscriptItem, 0, len(session.Transcript))
	for _, msg := range session.Transcript {
		items = append(items, interviewapimodels.TranscriptItem{
			Speaker:   msg.Speaker,
			Text:      msg.Text,
			Timestamp: msg.Timestamp,
		})
	}
	return items, nil
}

func (i impl) SummaryPDF(sessionID string) ([]byte, error) {
	rec, err := i.candidates.GetBySessionID(sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load candidate record")
	}
	if rec == nil {
		return nil, errors.New("candidate record not found")
	}
	trend := "stable"
	session, err := i.sessions.GetByID(sessionID)
	if err == nil && session != nil {
		trend = sentiment.Trend(session.Sentiments)
	}
	return pdfexport.GenerateCandidateSummary(*rec, trend)
}

func (i impl) Statistics() (*interviewapimodels.StatsView, error) {
	total, completed, err := i.sessions.Counts()
	if err != nil {
		return nil, errors.Wrap(err, "failed to count sessions")
	}
	stats := &interviewapimodels.StatsView{
		TotalSessions:       total,
		CompletedInterviews: completed,
	}
	if total > 0 {
		stats.CompletionRate = float64(completed) / float64(total) * 100
	}
	list, err := i.candidates.List()
	if err != nil {
		return nil, errors.Wrap(err, "failed to list candidates")
	}
	if len(list) > 0 {
		sum := 0
		for _, rec := range list {
			sum += rec.ExperienceYears
		}
		stats.AverageExperience = float64(sum) / float64(len(list))
	}
	stats.TopTechnologies = topTechnologies(list, 5)
	return stats, nil
}

func topTechnologies(list []dbmodels.CandidateResult, limit int) []string {
	counts := map[string]int{}
	for _, rec := range list {
		for _, tech := range strings.Split(rec.TechStack, ",") {
			tech = strings.TrimSpace(strings.ToLower(tech))
			if tech != "" {
				counts[tech]++
			}
		}
	}
	techs := make([]string, 0, len(counts))
	for tech := range counts {
		techs = append(techs, tech)
	}
	sort.Slice(techs, func(a, b int) bool {
		if counts[techs[a]] != counts[techs[b]] {
			return counts[techs[a]] > counts[techs[b]]
		}
		return techs[a] < techs[b]
	})
	if len(techs) > limit {
		techs = techs[:limit]
	}
	return techs
}

func sessionView(session dbmodels.InterviewSession) *interviewapimodels.SessionView {
	return &interviewapimodels.SessionView{
		SessionID:        session.ID,
		Stage:            string(session.Stage),
		StageDescription: session.Stage.Description(),
		Progress:         session.Stage.Progress(),
		Completed:        session.Completed,
	}
}
