// Package plan implements the orchestrator that loads a build and plans its accessories
package plan

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/engraving-planner/internal/entities/lostark"
	"github.com/KirkDiggler/engraving-planner/internal/errors"
	"github.com/KirkDiggler/engraving-planner/internal/pkg/clock"
	"github.com/KirkDiggler/engraving-planner/internal/pkg/idgen"
	"github.com/KirkDiggler/engraving-planner/internal/planner"
	"github.com/KirkDiggler/engraving-planner/internal/repositories/build"
)

// SourceInline is the source reported for builds passed in memory
const SourceInline = "inline"

// Service defines the interface for planning operations
type Service interface {
	// Plan loads a build document from the repository and plans it
	Plan(ctx context.Context, input *PlanInput) (*PlanOutput, error)
	// PlanBuild plans a build that is already decoded
	PlanBuild(ctx context.Context, input *PlanBuildInput) (*PlanOutput, error)
}

// Config holds the dependencies for the plan orchestrator
type Config struct {
	BuildRepo   build.Repository
	IDGenerator idgen.Generator
	Clock       clock.Clock
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	if c == nil {
		return errors.InvalidArgument("config cannot be nil")
	}

	vb := errors.NewValidationBuilder()

	if c.BuildRepo == nil {
		vb.RequiredField("BuildRepo")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type orchestrator struct {
	buildRepo build.Repository
	idGen     idgen.Generator
	clock     clock.Clock
}

// NewOrchestrator creates a new plan orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		buildRepo: cfg.BuildRepo,
		idGen:     cfg.IDGenerator,
		clock:     cfg.Clock,
	}, nil
}

// Plan loads a build and plans it. A load failure aborts the run.
func (o *orchestrator) Plan(ctx context.Context, input *PlanInput) (*PlanOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.Ref == "" {
		return nil, errors.InvalidArgument("build reference is required")
	}

	loaded, err := o.buildRepo.Get(ctx, build.GetInput{Ref: input.Ref})
	if err != nil {
		slog.WarnContext(ctx, "Failed to load build",
			"ref", input.Ref,
			"error", err)
		return nil, errors.Wrapf(err, "failed to load build %s", input.Ref)
	}

	return o.run(ctx, loaded.Build, loaded.Source), nil
}

// PlanBuild plans a decoded build
func (o *orchestrator) PlanBuild(ctx context.Context, input *PlanBuildInput) (*PlanOutput, error) {
	if input == nil || input.Build == nil {
		return nil, errors.InvalidArgument("build is required")
	}
	if err := build.Validate(input.Build); err != nil {
		return nil, errors.Wrap(err, "invalid build")
	}

	return o.run(ctx, input.Build, SourceInline), nil
}

func (o *orchestrator) run(ctx context.Context, b *lostark.Build, source string) *PlanOutput {
	runID := o.idGen.Generate()
	start := o.clock.Now()

	result := planner.Run(b)

	output := &PlanOutput{
		RunID:    runID,
		Build:    b,
		Source:   source,
		Result:   result,
		Duration: o.clock.Now().Sub(start),
	}

	slog.DebugContext(ctx, "Goal reduced",
		"run_id", runID,
		"remaining_goal", result.RemainingGoal)

	slog.InfoContext(ctx, "Build planned",
		"run_id", runID,
		"build", b.Name,
		"source", source,
		"possible", result.Feasibility.Possible,
		"decomposed", result.Feasibility.Total,
		"above_minimum", result.Feasibility.AboveMinimum,
		"owned", len(result.Matched),
		"to_buy", len(result.Produced))

	return output
}
