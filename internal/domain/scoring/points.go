package scoring

// Point values for the three prediction outcome classes.
const (
	PointsExact   = 3
	PointsOutcome = 1
	PointsMiss    = 0
)

// Outcome is the result class of a score pair.
type Outcome int

const (
	OutcomeDraw Outcome = iota
	OutcomeHomeWin
	OutcomeAwayWin
)

// Classify maps a score pair to its outcome class using only the sign of the
// score differential.
func Classify(home, away int) Outcome {
	switch {
	case home > away:
		return OutcomeHomeWin
	case home < away:
		return OutcomeAwayWin
	default:
		return OutcomeDraw
	}
}

// Points awards a prediction against the actual final score: 3 for the exact
// score, 1 for the correct outcome class, 0 otherwise. The function is total
// over all integer pairs and depends on nothing but its arguments.
func Points(predictedHome, predictedAway, actualHome, actualAway int) int {
	if predictedHome == actualHome && predictedAway == actualAway {
		return PointsExact
	}
	if Classify(predictedHome, predictedAway) == Classify(actualHome, actualAway) {
		return PointsOutcome
	}
	return PointsMiss
}
