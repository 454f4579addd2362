package notify

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"talent-screen-backend/lib/smtp"
	dbmodels "talent-screen-backend/models/db"
)

// Provider pushes screening events to the hiring team.
type Provider interface {
	InterviewCompleted(rec dbmodels.CandidateResult)
}

var Instance Provider

func NewHandler(emailFrom, hrEmail string) {
	Instance = &impl{
		emailFrom: emailFrom,
		hrEmail:   hrEmail,
	}
}

type impl struct {
	emailFrom string
	hrEmail   string
}

// InterviewCompleted mails a short candidate digest to HR. Notification is
// best effort, failures are logged and never surface to the candidate.
func (i impl) InterviewCompleted(rec dbmodels.CandidateResult) {
	if i.hrEmail == "" {
		return
	}
	message := fmt.Sprintf(
		"A candidate has completed the screening interview.\r\n\r\n"+
			"Name: %s\r\n"+
			"Email: %s\r\n"+
			"Phone: %s\r\n"+
			"Experience: %d years\r\n"+
			"Desired positions: %s\r\n"+
			"Location: %s\r\n"+
			"Tech stack: %s\r\n"+
			"Questions answered: %s\r\n"+
			"Average sentiment: %.2f\r\n",
		rec.FullName, rec.Email, rec.Phone, rec.ExperienceYears,
		rec.DesiredPositions, rec.Location, rec.TechStack,
		rec.AnsweredRatio, rec.SentimentScore)
	subject := fmt.Sprintf("Screening completed: %s", rec.FullName)
	if err := smtp.Instance.SendEMail(i.emailFrom, i.hrEmail, message, subject); err != nil {
		log.WithError(err).WithField("session_id", rec.SessionID).
			Error("failed to send completion notification")
	}
}
