package recordsink

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"

	candidatestore "talent-screen-backend/lib/candidate/store"
	xlsexport "talent-screen-backend/lib/export/xls"
	filestorage "talent-screen-backend/lib/file-storage"
	"talent-screen-backend/lib/notify"
	"talent-screen-backend/lib/sentiment"
	dbmodels "talent-screen-backend/models/db"
)

// Provider persists a completed interview outside the session store: the
// flat candidate row, the regenerated register file and the HR notification.
type Provider interface {
	Save(ctx context.Context, session dbmodels.InterviewSession, registerFileName string) error
}

var Instance Provider

func NewHandler(candidates candidatestore.Provider) {
	Instance = &impl{
		candidates: candidates,
	}
}

type impl struct {
	candidates candidatestore.Provider
}

// Save writes the candidate row, then regenerates and archives the register.
// Only the row write is fatal: export, upload and notification failures are
// logged and the interview still counts as saved.
func (i impl) Save(ctx context.Context, session dbmodels.InterviewSession, registerFileName string) error {
	rec := buildResult(session)
	_, err := i.candidates.Create(rec)
	if err != nil {
		return errors.Wrap(err, "failed to store candidate record")
	}

	list, err := i.candidates.List()
	if err != nil {
		log.WithError(err).Error("failed to list candidates for register export")
	} else {
		buf, err := xlsexport.Instance.ExportCandidateRegister(list)
		if err != nil {
			log.WithError(err).Error("failed to build candidate register")
		} else if err = filestorage.Instance.UploadRegister(ctx, registerFileName, buf.Bytes()); err != nil {
			log.WithError(err).Error("failed to archive candidate register")
		}
	}

	notify.Instance.InterviewCompleted(rec)
	return nil
}

func buildResult(session dbmodels.InterviewSession) dbmodels.CandidateResult {
	c := session.Candidate
	q := session.Questions

	questions := make([]string, 0, len(q.Questions))
	for idx, question := range q.Questions {
		questions = append(questions, fmt.Sprintf("Q%d: %s", idx+1, question))
	}
	responses := make([]string, 0, len(q.Responses))
	for idx, response := range q.Responses {
		responses = append(responses, fmt.Sprintf("A%d: %s", idx+1, response))
	}

	return dbmodels.CandidateResult{
		SessionID:        session.ID,
		FullName:         c.FullName,
		Email:            c.Email,
		Phone:            c.Phone,
		Gender:           c.Gender,
		DateOfBirth:      c.DateOfBirth,
		ExperienceYears:  c.ExperienceYears,
		DesiredPositions: strings.Join(c.DesiredPositions, ", "),
		Location:         c.Location,
		GraduationYear:   c.GraduationYear,
		Cgpa10th:         c.Cgpa10th,
		Cgpa12th:         c.Cgpa12th,
		CgpaDegree:       c.CgpaDegree,
		TechStack:        strings.Join(c.TechStack, ", "),
		WorkExperience:   c.WorkExperience,
		WhyGoodCandidate: c.WhyGoodCandidate,
		Questions:        strings.Join(questions, "\n"),
		Responses:        strings.Join(responses, "\n"),
		SentimentScore:   sentiment.Average(session.Sentiments),
		AnsweredRatio:    fmt.Sprintf("%d/%d", len(q.Responses), len(q.Questions)),
	}
}
