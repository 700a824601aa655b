package config

// tierMixes gives, per score band, the probability of drawing a
// simple / medium / complex shape. Bands are split by the generation
// thresholds: opening, medium, advanced, expert.
var tierMixes = [4][3]float64{
	{0.70, 0.25, 0.05},
	{0.45, 0.40, 0.15},
	{0.25, 0.45, 0.30},
	{0.15, 0.35, 0.50},
}

// Band returns the score band index (0..3) for the given score.
func (g GenerationConfig) Band(score int) int {
	if g.Fixed {
		return 0
	}
	switch {
	case score >= g.ExpertAt:
		return 3
	case score >= g.AdvancedAt:
		return 2
	case score >= g.MediumAt:
		return 1
	default:
		return 0
	}
}

// TierMix returns the simple/medium/complex draw probabilities for the
// given score. The three values sum to 1.
func (g GenerationConfig) TierMix(score int) [3]float64 {
	return tierMixes[g.Band(score)]
}
