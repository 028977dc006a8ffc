// Package planner works out which accessories a build still needs.
//
// The pipeline is a chain of pure stages:
//
//	ReduceBuild -> Decompose -> CheckFeasibility -> Match -> Assemble
//
// Run chains them for a build. None of the stages modify their inputs.
package planner

import "github.com/KirkDiggler/engraving-planner/internal/entities/lostark"

// Result is everything a planning run computed
type Result struct {
	RemainingGoal lostark.Vector    `json:"remaining_goal"`
	Decomposed    []DecomposedValue `json:"decomposed"`
	Feasibility   Feasibility       `json:"feasibility"`
	Matched       []lostark.Item    `json:"matched"`
	Produced      []lostark.Item    `json:"produced"`
}

// Items returns the full accessory set: owned ones first, then the ones to buy
func (r *Result) Items() []lostark.Item {
	out := make([]lostark.Item, 0, len(r.Matched)+len(r.Produced))
	out = append(out, r.Matched...)
	out = append(out, r.Produced...)
	return out
}

// Run plans a build
func Run(build *lostark.Build) *Result {
	remaining := ReduceBuild(build)
	pool := Decompose(remaining)
	matching := Match(build.Accessories(), pool)

	return &Result{
		RemainingGoal: remaining,
		Decomposed:    pool,
		Feasibility:   CheckFeasibility(pool),
		Matched:       matching.Items,
		Produced:      Assemble(matching.Remaining(pool), matching.Items),
	}
}
