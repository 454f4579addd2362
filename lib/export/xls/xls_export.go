package xlsexport

import (
	"bytes"

	dbmodels "talent-screen-backend/models/db"

	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

type Provider interface {
	ExportCandidateRegister(list []dbmodels.CandidateResult) (*bytes.Buffer, error)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

// registerHeaders is the fixed register column order. Downstream tooling
// selects by position, do not reorder.
var registerHeaders = []string{
	"Timestamp", "Session_ID", "Full_Name", "Email", "Phone", "Gender",
	"Date_of_Birth", "Experience_Years", "Desired_Positions", "Location",
	"Graduation_Year", "CGPA_10th", "CGPA_12th", "CGPA_Degree", "Tech_Stack",
	"Work_Experience_Description", "Why_Good_Candidate",
	"Technical_Questions", "Candidate_Responses", "Sentiment_Score",
	"Questions_Answered",
}

func (i impl) ExportCandidateRegister(list []dbmodels.CandidateResult) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			log.WithError(err).Error("failed to close xlsx file")
		}
	}()
	sheet := "Sheet1"
	row := 0
	row, err := writeHeader(f, sheet, row, registerHeaders)
	if err != nil {
		return nil, errors.Wrap(err, "failed to write xlsx header")
	}
	if len(list) != 0 {
		_, err = writeCandidateData(f, sheet, list, row)
		if err != nil {
			return nil, errors.Wrap(err, "failed to write xlsx data rows")
		}
	}
	f.SetSheetName(sheet, "Candidates")
	return f.WriteToBuffer()
}

func writeCandidateData(f *excelize.File, sheet string, list []dbmodels.CandidateResult, row int) (int, error) {
	if err := applyDataCellStyle(f, sheet, 1, row+1, len(registerHeaders), len(list)+1); err != nil {
		return row, err
	}
	for _, item := range list {
		row++
		values := []interface{}{
			item.CreatedAt.Format("2006-01-02T15:04:05"),
			item.SessionID,
			item.FullName,
			item.Email,
			item.Phone,
			item.Gender,
			item.DateOfBirth,
			item.ExperienceYears,
			item.DesiredPositions,
			item.Location,
			item.GraduationYear,
			item.Cgpa10th,
			item.Cgpa12th,
			item.CgpaDegree,
			item.TechStack,
			item.WorkExperience,
			item.WhyGoodCandidate,
			item.Questions,
			item.Responses,
			item.SentimentScore,
			item.AnsweredRatio,
		}
		for col, value := range values {
			if err := writeColumn(f, sheet, col+1, row, value); err != nil {
				return row, err
			}
		}
	}
	return row, nil
}
