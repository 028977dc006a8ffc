package planner

import "github.com/KirkDiggler/engraving-planner/internal/entities/lostark"

// MaxDecomposed is the number of engraving lines five accessories carry
func MaxDecomposed() int {
	return lostark.AccessoryCount() * lostark.MaxEngravingsPerAccessory
}

// MaxAboveMinimum is the number of above minimum rolls five accessories carry
func MaxAboveMinimum() int {
	return lostark.AccessoryCount()
}

// Feasibility is the verdict on a decomposed pool and the counts behind it
type Feasibility struct {
	Possible     bool `json:"possible"`
	Total        int  `json:"total"`
	AboveMinimum int  `json:"above_minimum"`
}

// CheckFeasibility tells whether the pool fits on the accessories.
// It does not stop the pipeline; assembly still produces a best effort.
func CheckFeasibility(pool []DecomposedValue) Feasibility {
	above := 0
	for _, d := range pool {
		if d.AboveMinimum() {
			above++
		}
	}

	return Feasibility{
		Possible:     len(pool) <= MaxDecomposed() && above <= MaxAboveMinimum(),
		Total:        len(pool),
		AboveMinimum: above,
	}
}

// IsPossible is CheckFeasibility without the counts
func IsPossible(pool []DecomposedValue) bool {
	return CheckFeasibility(pool).Possible
}
