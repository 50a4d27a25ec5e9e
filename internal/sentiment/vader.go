package sentiment

import (
	"strings"

	"github.com/jonreiter/govader"
)

type vaderScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// New creates a VADER-backed Scorer. The analyzer's lexicon is loaded
// once here and reused for the process lifetime.
func New() Scorer {
	return &vaderScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

func (v *vaderScorer) Score(text string) float64 {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	return v.analyzer.PolarityScores(text).Compound
}
