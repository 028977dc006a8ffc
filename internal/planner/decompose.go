package planner

import "github.com/KirkDiggler/engraving-planner/internal/entities/lostark"

const (
	// MinValue is the smallest engraving roll an accessory carries
	MinValue = 3
	// MaxValue is the largest engraving roll an accessory carries
	MaxValue = 5
)

// DecomposedValue is one accessory sized share of a remaining goal.
// Index is the position in the pool the value was produced in and is the
// identity matching and assembly use.
type DecomposedValue struct {
	Index int `json:"index"`
	lostark.EngravingValue
}

// AboveMinimum reports whether the value needs a better than minimum roll
func (d DecomposedValue) AboveMinimum() bool {
	return d.Value > MinValue
}

// Decompose splits every positive remaining value into accessory rolls.
// Values are emitted in vector order; engravings at or below zero emit nothing.
func Decompose(remaining lostark.Vector) []DecomposedValue {
	var pool []DecomposedValue
	for _, ev := range remaining {
		for _, value := range DecomposeValue(ev.Value) {
			pool = append(pool, DecomposedValue{
				Index:          len(pool),
				EngravingValue: lostark.EngravingValue{Engraving: ev.Engraving, Value: value},
			})
		}
	}
	return pool
}

// DecomposeValue splits a single amount into rolls.
//
// Multiples of 3 up to 9 become 3s. Anything else above 3 takes 5s while it
// can and finishes with the literal remainder of 4. One or two points left
// still need a full 3 roll, so the result may exceed v by up to 2.
func DecomposeValue(v int) []int {
	var out []int
	for v > 0 {
		switch {
		case v%MinValue == 0 && v <= 3*MinValue:
			out = append(out, MinValue)
			v -= MinValue
		case v > MinValue:
			if v >= MaxValue {
				out = append(out, MaxValue)
				v -= MaxValue
			} else {
				out = append(out, v)
				v = 0
			}
		default:
			out = append(out, MinValue)
			v -= MinValue
		}
	}
	return out
}
