package sentiment

import (
	"testing"

	"talent-screen-backend/models"
	dbmodels "talent-screen-backend/models/db"

	"github.com/stretchr/testify/require"
)

func TestSentiment(t *testing.T) {
	NewHandler()

	t.Run(`score check`, func(t *testing.T) {
		label, score := Instance.Score("I love this, great opportunity!")
		require.Equal(t, models.PositiveSentiment, label)
		require.Greater(t, score, 0.0)

		label, score = Instance.Score("this is terrible and I hate it")
		require.Equal(t, models.NegativeSentiment, label)
		require.Less(t, score, 0.0)

		label, score = Instance.Score("the weather report for tomorrow")
		require.Equal(t, models.NeutralSentiment, label)
		require.Equal(t, 0.0, score)

		label, score = Instance.Score("")
		require.Equal(t, models.NeutralSentiment, label)
		require.Equal(t, 0.0, score)
	})

	t.Run(`label threshold check`, func(t *testing.T) {
		require.Equal(t, models.NeutralSentiment, Label(0.1))
		require.Equal(t, models.PositiveSentiment, Label(0.11))
		require.Equal(t, models.NeutralSentiment, Label(-0.1))
		require.Equal(t, models.NegativeSentiment, Label(-0.11))
	})

	t.Run(`average check`, func(t *testing.T) {
		require.Equal(t, 0.0, Average(nil))
		history := dbmodels.SentimentHistory{
			{Score: 0.5}, {Score: -0.1},
		}
		require.InDelta(t, 0.2, Average(history), 0.0001)
	})

	t.Run(`trend check`, func(t *testing.T) {
		require.Equal(t, "stable", Trend(nil))
		require.Equal(t, "stable", Trend(dbmodels.SentimentHistory{{Score: 0.5}}))

		improving := dbmodels.SentimentHistory{
			{Score: -0.2}, {Score: -0.2}, {Score: 0.4}, {Score: 0.4},
		}
		require.Equal(t, "improving", Trend(improving))

		declining := dbmodels.SentimentHistory{
			{Score: 0.4}, {Score: 0.4}, {Score: -0.2}, {Score: -0.2},
		}
		require.Equal(t, "declining", Trend(declining))

		flat := dbmodels.SentimentHistory{
			{Score: 0.1}, {Score: 0.1}, {Score: 0.2}, {Score: 0.2},
		}
		require.Equal(t, "stable", Trend(flat))
	})
}
