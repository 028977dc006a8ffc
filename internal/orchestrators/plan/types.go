package plan

import (
	"time"

	"github.com/KirkDiggler/engraving-planner/internal/entities/lostark"
	"github.com/KirkDiggler/engraving-planner/internal/planner"
)

// PlanInput defines the request for planning a stored build document
type PlanInput struct {
	// Ref identifies the document in the build repository
	Ref string
}

// PlanBuildInput defines the request for planning a build already in memory
type PlanBuildInput struct {
	Build *lostark.Build
}

// PlanOutput defines the response for a planning run
type PlanOutput struct {
	RunID    string
	Build    *lostark.Build
	Source   string
	Result   *planner.Result
	Duration time.Duration
}
