package sentiment

// Scorer returns a compound sentiment polarity in [-1, 1] for a piece
// of text. Scoring is total: any input, including empty or
// punctuation-only text, produces a score (neutral 0), never an error.
type Scorer interface {
	Score(text string) float64
}
