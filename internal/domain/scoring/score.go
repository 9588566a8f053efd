// Package scoring converts manager-entered dimension scores into total
// scores and discrete performance levels. All functions are pure; input
// range enforcement is the caller's job.
package scoring

import "github.com/shopspring/decimal"

const (
	LevelL1 = "L1"
	LevelL2 = "L2"
	LevelL3 = "L3"
	LevelL4 = "L4"
	LevelL5 = "L5"
)

// Dimension weights. Must sum to 1.
var (
	weightTaskCompletion     = decimal.NewFromFloat(0.4)
	weightInitiative         = decimal.NewFromFloat(0.3)
	weightProjectFeedback    = decimal.NewFromFloat(0.2)
	weightQualityImprovement = decimal.NewFromFloat(0.1)
)

// TotalScore computes the weighted total of the four dimension scores,
// rounded to two decimal places. Scores are conventionally in [0.5, 1.5]
// but no validation happens here.
func TotalScore(taskCompletion, initiative, projectFeedback, qualityImprovement float64) float64 {
	total := decimal.NewFromFloat(taskCompletion).Mul(weightTaskCompletion).
		Add(decimal.NewFromFloat(initiative).Mul(weightInitiative)).
		Add(decimal.NewFromFloat(projectFeedback).Mul(weightProjectFeedback)).
		Add(decimal.NewFromFloat(qualityImprovement).Mul(weightQualityImprovement))
	result, _ := total.Round(2).Float64()
	return result
}

// ScoreToLevel maps a total score onto the five-band ladder. Band lower
// bounds are inclusive.
func ScoreToLevel(score float64) string {
	switch {
	case score >= 1.4:
		return LevelL5
	case score >= 1.15:
		return LevelL4
	case score >= 0.9:
		return LevelL3
	case score >= 0.65:
		return LevelL2
	default:
		return LevelL1
	}
}

// LevelToScore returns the canonical representative score for a level.
// Unknown inputs (including lowercase variants) fall back to 1.0.
func LevelToScore(level string) float64 {
	switch level {
	case LevelL5:
		return 1.5
	case LevelL4:
		return 1.2
	case LevelL3:
		return 1.0
	case LevelL2:
		return 0.8
	case LevelL1:
		return 0.5
	default:
		return 1.0
	}
}
