package questionbank

import (
	"testing"

	"talent-screen-backend/models"

	"github.com/stretchr/testify/require"
)

func TestQuestionBank(t *testing.T) {
	t.Run(`role key check`, func(t *testing.T) {
		require.Equal(t, "data_analyst", RoleKey(" Data Analyst "))
		require.Equal(t, "powerbi_developer", RoleKey("PowerBI-Developer"))
	})

	t.Run(`level for experience check`, func(t *testing.T) {
		require.Equal(t, models.JuniorLevel, LevelForExperience(0))
		require.Equal(t, models.JuniorLevel, LevelForExperience(1))
		require.Equal(t, models.MidLevel, LevelForExperience(2))
		require.Equal(t, models.MidLevel, LevelForExperience(4))
		require.Equal(t, models.SeniorLevel, LevelForExperience(5))
	})

	t.Run(`curated role questions check`, func(t *testing.T) {
		questions := Select("data_analyst", models.JuniorLevel, []string{"python", "sql"})
		require.Len(t, questions, MaxQuestions)
		require.Equal(t, "Explain the difference between INNER JOIN and LEFT JOIN in SQL with an example.", questions[0])
	})

	t.Run(`missing level falls back to junior list`, func(t *testing.T) {
		junior := Select("data_analyst", models.JuniorLevel, nil)
		senior := Select("data_analyst", models.SeniorLevel, nil)
		require.Equal(t, junior, senior)
	})

	t.Run(`unknown role topped up from tech stack`, func(t *testing.T) {
		questions := Select("underwater_basket_weaver", models.MidLevel, []string{"python", "cobol"})
		require.NotEmpty(t, questions)
		require.LessOrEqual(t, len(questions), MaxQuestions)
		seen := map[string]bool{}
		for _, q := range questions {
			require.False(t, seen[q], q)
			seen[q] = true
		}
		require.Contains(t, questions[0], "Python")
		require.Contains(t, questions[1], "cobol")
	})

	t.Run(`unknown role with empty stack uses fallbacks`, func(t *testing.T) {
		questions := Select("underwater_basket_weaver", models.JuniorLevel, nil)
		require.Len(t, questions, genericCount)
		for _, q := range questions {
			require.Contains(t, fallbackQuestions, q)
		}
	})

	t.Run(`tailored question check`, func(t *testing.T) {
		require.Contains(t, TailoredQuestion("sql", "Priya"), "JOIN operation")
		require.Contains(t, TailoredQuestion("java", "Priya"), "Priya")
		require.Contains(t, TailoredQuestion("java", "Priya"), "java")
	})
}
