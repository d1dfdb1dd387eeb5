package offers

import "math"

// Cash bonus awarded per actor level on a successful crime.
const crimeBonusPerLevel = 10

// SuccessChance is the crime success probability for an actor at the given
// level: a logistic curve centered on level 10, spanning 0.5 to 0.8.
func SuccessChance(level int) float64 {
	return 0.5 + 0.3*sigmoid(0.2*(float64(level)-10))
}

// RobSuccessChance is the robbery success probability. The closer the two
// levels, the better the odds; a lower-level actor robbing up gets a flat
// bonus so high levels can't farm low levels. The bonus term is deliberately
// not clamped, so the result can exceed 0.8 when the actor is far below the
// target. Observed behavior, kept as-is.
func RobSuccessChance(actorLevel, targetLevel int) float64 {
	levelDiff := math.Abs(float64(actorLevel - targetLevel))
	relative := 0.0
	if actorLevel < targetLevel {
		relative = 1
	}
	return 0.5 + 0.3*(math.Exp(-0.05*levelDiff)+0.25*relative)
}

// Outcome is the resolved effect of an offer on the actor's account. Cash
// and Exp are deltas and are negative on failure.
type Outcome struct {
	Success bool
	Cash    int
	Exp     int
}

// Resolve decides an offer against the actor's level. Non-risky offers
// always succeed. A successful crime pays a level-scaled bonus on top; a
// failed one costs the drawn pay and the experience reward.
func Resolve(o Offer, level int) Outcome {
	if !o.Risky {
		return Outcome{Success: true, Cash: o.Pay, Exp: o.ExpReward}
	}
	if o.OutcomeDraw <= SuccessChance(level) {
		return Outcome{Success: true, Cash: o.Pay + crimeBonusPerLevel*level, Exp: o.ExpReward}
	}
	return Outcome{Success: false, Cash: -o.Pay, Exp: -o.ExpReward}
}

func sigmoid(x float64) float64 {
	return 1 / (1 + math.Exp(-x))
}
