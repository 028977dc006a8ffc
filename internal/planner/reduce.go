package planner

import "github.com/KirkDiggler/engraving-planner/internal/entities/lostark"

// Reduce subtracts a fixed source from the goal.
// Engravings the goal does not declare are ignored.
func Reduce(goal, source lostark.Vector) lostark.Vector {
	return goal.Subtract(source)
}

// ReduceBuild removes everything the build gets without accessories:
// books, book items, then the ability stone when there is one.
func ReduceBuild(build *lostark.Build) lostark.Vector {
	remaining := Reduce(build.Goal, build.Books)

	for _, book := range build.ItemsOfType(lostark.ItemTypeBook) {
		remaining = Reduce(remaining, book.Engravings)
	}

	if stone, ok := build.Stone(); ok {
		remaining = Reduce(remaining, stone.Engravings)
	}

	return remaining
}
