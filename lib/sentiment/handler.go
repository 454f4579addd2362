package sentiment

import (
	"strings"

	"talent-screen-backend/models"
	dbmodels "talent-screen-backend/models/db"
)

// Provider scores a single utterance. Scores live in [-1, 1]; labels switch
// at +/-0.1. The scorer is a side channel only, it never influences the
// conversation flow.
type Provider interface {
	Score(text string) (models.SentimentLabel, float64)
}

var Instance Provider

func NewHandler() {
	Instance = impl{}
}

type impl struct{}

const labelThreshold = 0.1

var positiveWords = map[string]bool{
	"good": true, "great": true, "excellent": true, "amazing": true,
	"awesome": true, "love": true, "like": true, "enjoy": true,
	"excited": true, "thrilled": true, "fantastic": true, "passionate": true,
	"happy": true, "glad": true, "confident": true, "strong": true,
	"interesting": true, "helpful": true, "nice": true, "perfect": true,
	"thanks": true, "thank": true, "sure": true, "definitely": true,
	"absolutely": true, "motivated": true, "dedicated": true, "best": true,
	"easy": true, "ready": true, "yes": true,
}

var negativeWords = map[string]bool{
	"bad": true, "terrible": true, "awful": true, "hate": true,
	"dislike": true, "boring": true, "nervous": true, "worried": true,
	"anxious": true, "scared": true, "uncertain": true, "frustrated": true,
	"annoyed": true, "difficult": true, "hard": true, "struggle": true,
	"confused": true, "tired": true, "stressed": true, "unhappy": true,
	"poor": true, "worst": true, "problem": true, "no": true,
	"never": true, "cannot": true, "cant": true, "wrong": true,
}

func (i impl) Score(text string) (models.SentimentLabel, float64) {
	tokens := strings.Fields(strings.ToLower(text))
	if len(tokens) == 0 {
		return models.NeutralSentiment, 0
	}
	score := 0.0
	for _, token := range tokens {
		token = strings.Trim(token, ".,!?;:'\"")
		if positiveWords[token] {
			score++
		} else if negativeWords[token] {
			score--
		}
	}
	polarity := score / float64(len(tokens))
	if polarity > 1 {
		polarity = 1
	} else if polarity < -1 {
		polarity = -1
	}
	return Label(polarity), polarity
}

func Label(polarity float64) models.SentimentLabel {
	switch {
	case polarity > labelThreshold:
		return models.PositiveSentiment
	case polarity < -labelThreshold:
		return models.NegativeSentiment
	default:
		return models.NeutralSentiment
	}
}

func Average(history dbmodels.SentimentHistory) float64 {
	if len(history) == 0 {
		return 0
	}
	sum := 0.0
	for _, entry := range history {
		sum += entry.Score
	}
	return sum / float64(len(history))
}

// Trend compares the first half of the per-turn scores with the second
// half: a swing beyond 0.2 is improving/declining, otherwise stable.
func Trend(history dbmodels.SentimentHistory) string {
	if len(history) < 2 {
		return "stable"
	}
	mid := len(history) / 2
	firstSum, secondSum := 0.0, 0.0
	for _, entry := range history[:mid] {
		firstSum += entry.Score
	}
	for _, entry := range history[mid:] {
		secondSum += entry.Score
	}
	difference := secondSum/float64(len(history)-mid) - firstSum/float64(mid)
	switch {
	case difference > 0.2:
		return "improving"
	case difference < -0.2:
		return "declining"
	default:
		return "stable"
	}
}
