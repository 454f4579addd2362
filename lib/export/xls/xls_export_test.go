package xlsexport

import (
	"testing"
	"time"

	dbmodels "talent-screen-backend/models/db"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestCandidateRegisterExport(t *testing.T) {
	NewHandler()

	t.Run(`register column order check`, func(t *testing.T) {
		created := time.Date(2026, 8, 30, 12, 30, 0, 0, time.UTC)
		list := []dbmodels.CandidateResult{
			{
				BaseModel:        dbmodels.BaseModel{ID: "rec-1", CreatedAt: created},
				SessionID:        "session-1",
				FullName:         "Priya Sharma",
				Email:            "priya@example.com",
				Phone:            "9876543210",
				Gender:           "Female",
				DateOfBirth:      "15/08/1995",
				ExperienceYears:  3,
				DesiredPositions: "Data Analyst",
				Location:         "Mumbai, India",
				GraduationYear:   2018,
				Cgpa10th:         8.5,
				Cgpa12th:         8.7,
				CgpaDegree:       8.9,
				TechStack:        "python, sql",
				WorkExperience:   "analyst at Acme",
				WhyGoodCandidate: "strong analytical skills",
				Questions:        "Q1: first",
				Responses:        "A1: answer",
				SentimentScore:   0.25,
				AnsweredRatio:    "5/5",
			},
		}
		buf, err := Instance.ExportCandidateRegister(list)
		require.Nil(t, err)

		f, err := excelize.OpenReader(buf)
		require.Nil(t, err)
		defer f.Close()

		rows, err := f.GetRows("Candidates")
		require.Nil(t, err)
		require.Len(t, rows, 2)
		require.Equal(t, registerHeaders, rows[0])

		require.Equal(t, "2026-08-30T12:30:00", rows[1][0])
		require.Equal(t, "session-1", rows[1][1])
		require.Equal(t, "Priya Sharma", rows[1][2])
		require.Equal(t, "python, sql", rows[1][14])
		require.Equal(t, "5/5", rows[1][20])
	})

	t.Run(`empty register still has the header`, func(t *testing.T) {
		buf, err := Instance.ExportCandidateRegister(nil)
		require.Nil(t, err)

		f, err := excelize.OpenReader(buf)
		require.Nil(t, err)
		defer f.Close()

		rows, err := f.GetRows("Candidates")
		require.Nil(t, err)
		require.Len(t, rows, 1)
		require.Equal(t, registerHeaders, rows[0])
	})
}
