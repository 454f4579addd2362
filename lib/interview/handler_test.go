package interview

import (
	"context"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"

	"talent-screen-backend/config"
	"talent-screen-backend/lib/dialog"
	"talent-screen-backend/lib/sentiment"
	"talent-screen-backend/models"
	dbmodels "talent-screen-backend/models/db"
)

type fakeSessionStore struct {
	sessions map[string]dbmodels.InterviewSession
}

func newFakeSessionStore() *fakeSessionStore {
	return &fakeSessionStore{sessions: map[string]dbmodels.InterviewSession{}}
}

func (f *fakeSessionStore) Create(rec dbmodels.InterviewSession) (string, error) {
	f.sessions[rec.ID] = rec
	return rec.ID, nil
}

func (f *fakeSessionStore) GetByID(id string) (*dbmodels.InterviewSession, error) {
	rec, ok := f.sessions[id]
	if !ok {
		return nil, nil
	}
	return &rec, nil
}

func (f *fakeSessionStore) Save(rec *dbmodels.InterviewSession) error {
	f.sessions[rec.ID] = *rec
	return nil
}

func (f *fakeSessionStore) Counts() (int64, int64, error) {
	completed := int64(0)
	for _, rec := range f.sessions {
		if rec.Completed {
			completed++
		}
	}
	return int64(len(f.sessions)), completed, nil
}

func (f *fakeSessionStore) ExpireIdle(before time.Time) (int64, error) {
	return 0, nil
}

type fakeCandidateStore struct {
	records []dbmodels.CandidateResult
}

func (f *fakeCandidateStore) Create(rec dbmodels.CandidateResult) (string, error) {
	f.records = append(f.records, rec)
	return "rec-id", nil
}

func (f *fakeCandidateStore) List() ([]dbmodels.CandidateResult, error) {
	return f.records, nil
}

func (f *fakeCandidateStore) GetBySessionID(sessionID string) (*dbmodels.CandidateResult, error) {
	for i := range f.records {
		if f.records[i].SessionID == sessionID {
			return &f.records[i], nil
		}
	}
	return nil, nil
}

type fakeSink struct {
	saved []dbmodels.InterviewSession
	err   error
}

func (f *fakeSink) Save(ctx context.Context, session dbmodels.InterviewSession, registerFileName string) error {
	if f.err != nil {
		return f.err
	}
	f.saved = append(f.saved, session)
	return nil
}

type fakeResponder struct{}

func (fakeResponder) Generate(prompt, contextTag string, history dbmodels.Transcript) string {
	return "canned reply"
}

func testHandler(sessions *fakeSessionStore, candidates *fakeCandidateStore, sink *fakeSink) impl {
	sentiment.NewHandler()
	return impl{
		sessions:   sessions,
		candidates: candidates,
		machine:    dialog.NewMachine(fakeResponder{}),
		sink:       sink,
		scorer:     sentiment.Instance,
	}
}

func initTestConfig() {
	conf := new(config.Configuration)
	conf.Session.TurnLockWaitSec = 1
	conf.Session.MaxMessageSize = 1000
	conf.Export.RegisterFileName = "candidate_register.xlsx"
	config.Conf = conf
}

func quizSession(id string) dbmodels.InterviewSession {
	return dbmodels.InterviewSession{
		BaseModel: dbmodels.BaseModel{ID: id},
		Stage:     models.TechnicalQuestionsStage,
		Candidate: dbmodels.CandidateRecord{
			FullName:         "John Smith",
			Email:            "john@example.com",
			ExperienceYears:  2,
			DesiredPositions: []string{"Data Analyst"},
			TechStack:        []string{"python", "sql"},
		},
		Questions: dbmodels.QuestionSet{
			Questions: []string{"only question"},
		},
		LastActivityAt: time.Now(),
	}
}

func TestInterviewHandler(t *testing.T) {
	initTestConfig()

	t.Run(`start session opens with the welcome message`, func(t *testing.T) {
		sessions := newFakeSessionStore()
		h := testHandler(sessions, &fakeCandidateStore{}, &fakeSink{})

		view, err := h.StartSession(context.Background())
		require.Nil(t, err)
		require.NotEmpty(t, view.SessionID)
		require.Equal(t, string(models.GreetingStage), view.Stage)
		require.Equal(t, 10, view.Progress)
		require.Equal(t, dialog.WelcomeMessage, view.Greeting)

		stored := sessions.sessions[view.SessionID]
		require.Len(t, stored.Transcript, 1)
		require.Equal(t, models.AssistantSpeaker, stored.Transcript[0].Speaker)
	})

	t.Run(`unknown session is rejected`, func(t *testing.T) {
		h := testHandler(newFakeSessionStore(), &fakeCandidateStore{}, &fakeSink{})
		_, err := h.ProcessMessage(context.Background(), "missing", "hi")
		require.NotNil(t, err)
		require.Contains(t, err.Error(), "session not found")
	})

	t.Run(`turn updates transcript sentiment and activity`, func(t *testing.T) {
		sessions := newFakeSessionStore()
		h := testHandler(sessions, &fakeCandidateStore{}, &fakeSink{})
		view, err := h.StartSession(context.Background())
		require.Nil(t, err)

		reply, err := h.ProcessMessage(context.Background(), view.SessionID, "hi")
		require.Nil(t, err)
		require.NotEmpty(t, reply.Reply)
		require.Equal(t, string(models.GreetingStage), reply.Stage)
		require.False(t, reply.Completed)

		stored := sessions.sessions[view.SessionID]
		require.Len(t, stored.Transcript, 3)
		require.Len(t, stored.Sentiments, 1)
	})

	t.Run(`completion saves the record exactly once`, func(t *testing.T) {
		sessions := newFakeSessionStore()
		sink := &fakeSink{}
		h := testHandler(sessions, &fakeCandidateStore{}, sink)
		_, err := sessions.Create(quizSession("s-1"))
		require.Nil(t, err)

		reply, err := h.ProcessMessage(context.Background(), "s-1",
			"an inner join keeps only the rows matched in both tables")
		require.Nil(t, err)
		require.True(t, reply.Completed)
		require.Empty(t, reply.Warning)
		require.Len(t, sink.saved, 1)
		require.Equal(t, "s-1", sink.saved[0].ID)

		// a follow-up message on a completed session must not save again
		_, err = h.ProcessMessage(context.Background(), "s-1", "hello again")
		require.Nil(t, err)
		require.Len(t, sink.saved, 1)
	})

	t.Run(`sink failure warns but keeps the interview completed`, func(t *testing.T) {
		sessions := newFakeSessionStore()
		sink := &fakeSink{err: errors.New("register unavailable")}
		h := testHandler(sessions, &fakeCandidateStore{}, sink)
		_, err := sessions.Create(quizSession("s-2"))
		require.Nil(t, err)

		reply, err := h.ProcessMessage(context.Background(), "s-2",
			"an inner join keeps only the rows matched in both tables")
		require.Nil(t, err)
		require.True(t, reply.Completed)
		require.Equal(t, dialog.SavedWarning, reply.Warning)
		require.True(t, sessions.sessions["s-2"].Completed)
	})

	t.Run(`reset goes through the normal turn path`, func(t *testing.T) {
		sessions := newFakeSessionStore()
		h := testHandler(sessions, &fakeCandidateStore{}, &fakeSink{})
		_, err := sessions.Create(quizSession("s-3"))
		require.Nil(t, err)

		reply, err := h.Reset(context.Background(), "s-3")
		require.Nil(t, err)
		require.Equal(t, string(models.GreetingStage), reply.Stage)
		require.False(t, reply.Completed)
		stored := sessions.sessions["s-3"]
		require.Empty(t, stored.Candidate.FullName)
		require.NotEmpty(t, stored.Transcript)
	})

	t.Run(`transcript view check`, func(t *testing.T) {
		sessions := newFakeSessionStore()
		h := testHandler(sessions, &fakeCandidateStore{}, &fakeSink{})
		view, err := h.StartSession(context.Background())
		require.Nil(t, err)
		_, err = h.ProcessMessage(context.Background(), view.SessionID, "hi")
		require.Nil(t, err)

		items, err := h.GetTranscript(view.SessionID)
		require.Nil(t, err)
		require.Len(t, items, 3)
		require.Equal(t, models.AssistantSpeaker, items[0].Speaker)
		require.Equal(t, "hi", items[1].Text)
	})

	t.Run(`statistics check`, func(t *testing.T) {
		sessions := newFakeSessionStore()
		candidates := &fakeCandidateStore{records: []dbmodels.CandidateResult{
			{SessionID: "a", ExperienceYears: 2, TechStack: "python, sql"},
			{SessionID: "b", ExperienceYears: 4, TechStack: "python, excel"},
		}}
		h := testHandler(sessions, candidates, &fakeSink{})
		_, err := sessions.Create(quizSession("a"))
		require.Nil(t, err)
		done := quizSession("b")
		done.Completed = true
		_, err = sessions.Create(done)
		require.Nil(t, err)

		stats, err := h.Statistics()
		require.Nil(t, err)
		require.Equal(t, int64(2), stats.TotalSessions)
		require.Equal(t, int64(1), stats.CompletedInterviews)
		require.Equal(t, 50.0, stats.CompletionRate)
		require.Equal(t, 3.0, stats.AverageExperience)
		require.Equal(t, "python", stats.TopTechnologies[0])
	})
}
