package dialog

import (
	"testing"

	"talent-screen-backend/models"
	dbmodels "talent-screen-backend/models/db"

	"github.com/stretchr/testify/require"
)

type stubResponder struct {
	lastTag string
}

func (r *stubResponder) Generate(prompt, contextTag string, history dbmodels.Transcript) string {
	r.lastTag = contextTag
	return "stub reply"
}

func newTestSession() *dbmodels.InterviewSession {
	return &dbmodels.InterviewSession{
		BaseModel: dbmodels.BaseModel{ID: "test-session"},
		Stage:     models.GreetingStage,
	}
}

func TestGreetingStage(t *testing.T) {
	t.Run(`first turn always gets the fixed greeting`, func(t *testing.T) {
		m := NewMachine(&stubResponder{})
		s := newTestSession()
		reply := m.Process(s, "tell me a joke")
		require.Equal(t, fixedGreeting, reply)
		require.Equal(t, models.GreetingStage, s.Stage)
	})

	t.Run(`faq does not advance the stage`, func(t *testing.T) {
		m := NewMachine(&stubResponder{})
		s := newTestSession()
		m.Process(s, "hi")
		reply := m.Process(s, "who are you?")
		require.Contains(t, reply, "TalentScout Assistant")
		require.Equal(t, models.GreetingStage, s.Stage)
	})

	t.Run(`negative answer keeps the greeting stage`, func(t *testing.T) {
		m := NewMachine(&stubResponder{})
		s := newTestSession()
		m.Process(s, "hi")
		reply := m.Process(s, "not ready yet")
		require.Equal(t, notReadyReply, reply)
		require.Equal(t, models.GreetingStage, s.Stage)
	})

	t.Run(`nahi is not read as an affirmative`, func(t *testing.T) {
		m := NewMachine(&stubResponder{})
		s := newTestSession()
		m.Process(s, "hi")
		reply := m.Process(s, "nahi")
		require.Equal(t, notReadyReply, reply)
	})

	t.Run(`affirmative answer starts info collection`, func(t *testing.T) {
		m := NewMachine(&stubResponder{})
		s := newTestSession()
		m.Process(s, "hi")
		reply := m.Process(s, "yes!")
		require.Equal(t, startInfoPrompt, reply)
		require.Equal(t, models.InfoCollectionStage, s.Stage)
		require.Equal(t, models.FullNameField, s.Candidate.CurrentField)
	})

	t.Run(`anything else nudges towards starting`, func(t *testing.T) {
		m := NewMachine(&stubResponder{})
		s := newTestSession()
		m.Process(s, "hi")
		reply := m.Process(s, "the weather is nice")
		require.Equal(t, greetingNudge, reply)
	})
}

func TestInfoCollectionStage(t *testing.T) {
	startCollecting := func(m *Machine, s *dbmodels.InterviewSession) {
		m.Process(s, "hi")
		m.Process(s, "yes")
	}

	t.Run(`rejection leaves the cursor in place`, func(t *testing.T) {
		m := NewMachine(&stubResponder{})
		s := newTestSession()
		startCollecting(m, s)
		reply := m.Process(s, "John")
		require.Contains(t, reply, "both first and last name")
		require.Equal(t, models.FullNameField, s.Candidate.CurrentField)
		require.Empty(t, s.Candidate.FullName)
	})

	t.Run(`accepted value advances the cursor`, func(t *testing.T) {
		m := NewMachine(&stubResponder{})
		s := newTestSession()
		startCollecting(m, s)
		reply := m.Process(s, "John Smith")
		require.Contains(t, reply, "Nice to meet you, John Smith!")
		require.Equal(t, "John Smith", s.Candidate.FullName)
		require.Equal(t, models.EmailField, s.Candidate.CurrentField)
	})

	t.Run(`faq answers and re-asks the current field`, func(t *testing.T) {
		m := NewMachine(&stubResponder{})
		s := newTestSession()
		startCollecting(m, s)
		m.Process(s, "John Smith")
		reply := m.Process(s, "how long will this take?")
		require.Contains(t, reply, "5-10 minutes")
		require.Contains(t, reply, "email address")
		require.Equal(t, models.EmailField, s.Candidate.CurrentField)
	})

	t.Run(`zero experience skips the work experience field`, func(t *testing.T) {
		m := NewMachine(&stubResponder{})
		s := newTestSession()
		s.Stage = models.InfoCollectionStage
		s.Candidate.CurrentField = models.CgpaDegreeField
		s.Candidate.ExperienceYears = 0
		reply := m.Process(s, "8.9")
		require.Contains(t, reply, "good candidate")
		require.Equal(t, models.WhyGoodCandidateField, s.Candidate.CurrentField)
	})

	t.Run(`experienced candidates are asked about work history`, func(t *testing.T) {
		m := NewMachine(&stubResponder{})
		s := newTestSession()
		s.Stage = models.InfoCollectionStage
		s.Candidate.CurrentField = models.CgpaDegreeField
		s.Candidate.ExperienceYears = 3
		reply := m.Process(s, "8.9")
		require.Contains(t, reply, "3 years of experience")
		require.Equal(t, models.WorkExperienceField, s.Candidate.CurrentField)
	})

	t.Run(`final answer moves to the tech stack stage`, func(t *testing.T) {
		m := NewMachine(&stubResponder{})
		s := newTestSession()
		s.Stage = models.InfoCollectionStage
		s.Candidate.CurrentField = models.WhyGoodCandidateField
		reply := m.Process(s, "I have strong analytical skills and a passion for data")
		require.Equal(t, techStackPrompt, reply)
		require.Equal(t, models.TechStackStage, s.Stage)
	})
}

func TestTechStackStage(t *testing.T) {
	t.Run(`tokenizer drops filler and duplicates`, func(t *testing.T) {
		tokens := TokenizeTechStack("I am good in Python, SQL and python, working with Excel.")
		require.Equal(t, []string{"python", "sql", "excel"}, tokens)
	})

	t.Run(`filler-only input re-asks`, func(t *testing.T) {
		m := NewMachine(&stubResponder{})
		s := newTestSession()
		s.Stage = models.TechStackStage
		reply := m.Process(s, "i am good with the")
		require.Contains(t, reply, "didn't catch any technologies")
		require.Equal(t, models.TechStackStage, s.Stage)
	})

	t.Run(`declared stack generates the question set`, func(t *testing.T) {
		m := NewMachine(&stubResponder{})
		s := newTestSession()
		s.Stage = models.TechStackStage
		s.Candidate.DesiredPositions = []string{"Data Analyst"}
		s.Candidate.ExperienceYears = 1
		reply := m.Process(s, "Python, SQL, Excel")
		require.Equal(t, []string{"python", "sql", "excel"}, s.Candidate.TechStack)
		require.Equal(t, models.TechnicalQuestionsStage, s.Stage)
		require.Len(t, s.Questions.Questions, 5)
		require.Contains(t, reply, "**Question 1 of 5:**")
		require.Contains(t, reply, s.Questions.Questions[0])
	})
}

func TestTechnicalQuestionsStage(t *testing.T) {
	newQuizSession := func() *dbmodels.InterviewSession {
		s := newTestSession()
		s.Stage = models.TechnicalQuestionsStage
		s.Candidate = dbmodels.CandidateRecord{
			FullName:         "John Smith",
			Email:            "john@example.com",
			ExperienceYears:  2,
			DesiredPositions: []string{"Data Analyst"},
			TechStack:        []string{"python", "sql"},
		}
		s.Questions = dbmodels.QuestionSet{Questions: []string{
			"first question", "second question", "third question",
		}}
		return s
	}

	t.Run(`clarification repeats the pending question`, func(t *testing.T) {
		m := NewMachine(&stubResponder{})
		s := newQuizSession()
		reply := m.Process(s, "can you explain what you mean?")
		require.Contains(t, reply, "first question")
		require.Empty(t, s.Questions.Responses)
	})

	t.Run(`bare tech list is not accepted as an answer`, func(t *testing.T) {
		m := NewMachine(&stubResponder{})
		s := newQuizSession()
		reply := m.Process(s, "python, sql")
		require.Contains(t, reply, "listed some technologies")
		require.Empty(t, s.Questions.Responses)
	})

	t.Run(`idk consumes the slot and offers a tailored question`, func(t *testing.T) {
		m := NewMachine(&stubResponder{})
		s := newQuizSession()
		reply := m.Process(s, "idk, but I know python")
		require.Len(t, s.Questions.Responses, 1)
		require.Contains(t, reply, "Adjusted Question 2 of 3:")
		require.Contains(t, s.Questions.Questions[1], "Python")
	})

	t.Run(`plain dont-know moves to the next question`, func(t *testing.T) {
		m := NewMachine(&stubResponder{})
		s := newQuizSession()
		reply := m.Process(s, "I really dont know this one")
		require.Len(t, s.Questions.Responses, 1)
		require.Contains(t, reply, "Question 2 of 3:")
		require.Contains(t, reply, "second question")
	})

	t.Run(`degenerate answer is re-asked`, func(t *testing.T) {
		m := NewMachine(&stubResponder{})
		s := newQuizSession()
		reply := m.Process(s, "hh")
		require.Contains(t, reply, "more detailed answer")
		require.Empty(t, s.Questions.Responses)
	})

	t.Run(`detailed answer advances to the next question`, func(t *testing.T) {
		m := NewMachine(&stubResponder{})
		s := newQuizSession()
		reply := m.Process(s, "an inner join keeps only rows matched in both tables")
		require.Len(t, s.Questions.Responses, 1)
		require.Contains(t, reply, "Question 2 of 3:")
	})

	t.Run(`last answer completes the interview`, func(t *testing.T) {
		m := NewMachine(&stubResponder{})
		s := newQuizSession()
		s.Questions.Responses = []string{"a1", "a2"}
		reply := m.Process(s, "the final answer covers everything asked about the topic")
		require.True(t, s.Completed)
		require.Equal(t, models.EndedStage, s.Stage)
		require.Contains(t, reply, "Interview Summary")
		require.Contains(t, reply, "John Smith")
		require.Contains(t, reply, "john@example.com")
	})
}

func TestConversationControls(t *testing.T) {
	t.Run(`end intent ends any stage`, func(t *testing.T) {
		for _, input := range []string{"bye", "ok bye", "I want to quit"} {
			m := NewMachine(&stubResponder{})
			s := newTestSession()
			s.Stage = models.InfoCollectionStage
			reply := m.Process(s, input)
			require.Equal(t, endMessage, reply, input)
			require.Equal(t, models.EndedStage, s.Stage)
		}
	})

	t.Run(`common words never end the conversation`, func(t *testing.T) {
		require.False(t, IsEndIntent("goodbyeee"))
		require.False(t, IsEndIntent("my email is bye@example.com maybe"))
		require.True(t, IsEndIntent("bye"))
		require.True(t, IsEndIntent("bye for now"))
		require.True(t, IsEndIntent("see you, end the interview please"))
	})

	t.Run(`reset restarts but keeps the transcript`, func(t *testing.T) {
		m := NewMachine(&stubResponder{})
		s := newTestSession()
		m.Process(s, "hi")
		m.Process(s, "yes")
		m.Process(s, "John Smith")
		transcriptLen := len(s.Transcript)
		reply := m.Process(s, "restart")
		require.Equal(t, fixedGreeting, reply)
		require.Equal(t, models.GreetingStage, s.Stage)
		require.Empty(t, s.Candidate.FullName)
		require.Equal(t, transcriptLen+2, len(s.Transcript))
	})

	t.Run(`ended stage falls through to the responder`, func(t *testing.T) {
		responder := &stubResponder{}
		m := NewMachine(responder)
		s := newTestSession()
		s.Stage = models.EndedStage
		reply := m.Process(s, "hello again")
		require.Equal(t, "stub reply", reply)
		require.Equal(t, "fallback", responder.lastTag)
	})
}

func TestSummaryStage(t *testing.T) {
	t.Run(`summary stage closes the interview`, func(t *testing.T) {
		m := NewMachine(&stubResponder{})
		s := newTestSession()
		s.Stage = models.SummaryStage
		reply := m.Process(s, "thanks")
		require.Equal(t, summaryStageClose, reply)
		require.True(t, s.Completed)
		require.Equal(t, models.EndedStage, s.Stage)
	})
}

func TestStageProgress(t *testing.T) {
	t.Run(`progress is monotonic across stages`, func(t *testing.T) {
		stages := []models.Stage{
			models.GreetingStage, models.InfoCollectionStage,
			models.TechStackStage, models.TechnicalQuestionsStage,
			models.SummaryStage, models.EndedStage,
		}
		last := -1
		for _, stage := range stages {
			require.Greater(t, stage.Progress(), last, string(stage))
			require.NotEmpty(t, stage.Description())
			last = stage.Progress()
		}
	})
}

func TestEndToEndFlow(t *testing.T) {
	t.Run(`full screening walk`, func(t *testing.T) {
		m := NewMachine(&stubResponder{})
		s := newTestSession()

		m.Process(s, "hi")
		m.Process(s, "yes")
		steps := []string{
			"Priya Sharma",
			"priya@example.com",
			"9876543210",
			"3",
			"Data Analyst, Business Analyst",
			"Mumbai, India",
			"female",
			"15/08/1995",
			"2018",
			"8.5",
			"8.7",
			"8.9",
			"I worked as a data analyst at Acme Corp handling reporting",
			"I have strong analytical skills and a passion for data",
		}
		for _, step := range steps {
			m.Process(s, step)
		}
		require.Equal(t, models.TechStackStage, s.Stage)

		m.Process(s, "Python, SQL, Excel")
		require.Equal(t, models.TechnicalQuestionsStage, s.Stage)
		require.Len(t, s.Questions.Questions, 5)

		answers := []string{
			"an inner join returns only matched rows while a left join keeps all left rows",
			"I would impute missing values or drop sparse columns after profiling the data",
			"keep charts simple, label axes and pick the right chart for the data",
			"I would use a window function or compare against the previous year column",
			"a primary key identifies a row, a foreign key references another table",
		}
		for _, answer := range answers {
			m.Process(s, answer)
		}
		require.True(t, s.Completed)
		require.Equal(t, models.EndedStage, s.Stage)
		require.True(t, s.Questions.Exhausted())
		require.Equal(t, "Priya Sharma", s.Candidate.FullName)
		require.Equal(t, "15/08/1995", s.Candidate.DateOfBirth)
		require.Equal(t, 8.9, s.Candidate.CgpaDegree)
	})
}
