package pdfexport

import (
	"bytes"
	"fmt"

	dbmodels "talent-screen-backend/models/db"

	"github.com/go-pdf/fpdf"
	"github.com/pkg/errors"
)

// GenerateCandidateSummary renders a one-candidate screening report.
func GenerateCandidateSummary(rec dbmodels.CandidateResult, sentimentTrend string) (pdfFile []byte, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("GenerateCandidateSummary panic recover: %v", r)
		}
	}()
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	if pdf.Error() != nil {
		return nil, pdf.Error()
	}

	pdf.CellFormat(0, 10, "Candidate Screening Summary", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	writeField := func(label, value string) {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(55, 7, label, "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 11)
		pdf.MultiCell(0, 7, value, "", "L", false)
	}

	writeField("Session", rec.SessionID)
	writeField("Name", rec.FullName)
	writeField("Email", rec.Email)
	writeField("Phone", rec.Phone)
	writeField("Location", rec.Location)
	writeField("Gender", rec.Gender)
	writeField("Date of birth", rec.DateOfBirth)
	writeField("Experience", fmt.Sprintf("%d years", rec.ExperienceYears))
	writeField("Desired positions", rec.DesiredPositions)
	writeField("Graduation year", fmt.Sprintf("%d", rec.GraduationYear))
	writeField("CGPA (10th / 12th / degree)", fmt.Sprintf("%.2f / %.2f / %.2f", rec.Cgpa10th, rec.Cgpa12th, rec.CgpaDegree))
	writeField("Tech stack", rec.TechStack)
	writeField("Questions answered", rec.AnsweredRatio)
	writeField("Sentiment", fmt.Sprintf("%.2f (%s)", rec.SentimentScore, sentimentTrend))

	writeSection := func(title, body string) {
		if body == "" {
			return
		}
		pdf.Ln(3)
		pdf.SetFont("Helvetica", "B", 12)
		pdf.CellFormat(0, 8, title, "", 1, "L", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		pdf.MultiCell(0, 5, body, "", "L", false)
	}

	writeSection("Work experience", rec.WorkExperience)
	writeSection("Why a good candidate", rec.WhyGoodCandidate)
	writeSection("Technical questions", rec.Questions)
	writeSection("Candidate responses", rec.Responses)

	buf := new(bytes.Buffer)
	if err = pdf.Output(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
