package assistant

import "github.com/jonreiter/govader"

// VaderScorer scores polarity with the VADER lexicon. The compound score is
// already normalized to [-1, 1], matching the scorer contract.
type VaderScorer struct {
	analyzer *govader.SentimentIntensityAnalyzer
}

// NewVaderScorer builds the lexicon-backed scorer.
func NewVaderScorer() *VaderScorer {
	return &VaderScorer{analyzer: govader.NewSentimentIntensityAnalyzer()}
}

// Polarity returns the compound sentiment score for the text.
func (v *VaderScorer) Polarity(text string) (float64, error) {
	return v.analyzer.PolarityScores(text).Compound, nil
}
