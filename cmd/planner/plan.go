package main

import (
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/engraving-planner/internal/config"
	"github.com/KirkDiggler/engraving-planner/internal/errors"
	"github.com/KirkDiggler/engraving-planner/internal/orchestrators/plan"
	"github.com/KirkDiggler/engraving-planner/internal/pkg/clock"
	"github.com/KirkDiggler/engraving-planner/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/engraving-planner/internal/redis"
	"github.com/KirkDiggler/engraving-planner/internal/render"
	"github.com/KirkDiggler/engraving-planner/internal/repositories/build"
)

type planFlags struct {
	file      string
	redisKey  string
	redisAddr string
	format    string
	debug     bool
}

func newPlanCmd() *cobra.Command {
	flags := &planFlags{}

	cmd := &cobra.Command{
		Use:   "plan",
		Short: "Plan the accessories for a build",
		Long: `Load a build document (JSON or YAML) from a file or a Redis key and print
whether the goal is reachable and which accessories to buy.`,
		Example: `  planner plan --file berserker.yaml
  planner plan --redis-key berserker --redis-addr localhost:6379 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runPlan(cmd, flags)
		},
	}

	cmd.Flags().StringVarP(&flags.file, "file", "f", "", "path to a build document")
	cmd.Flags().StringVar(&flags.redisKey, "redis-key", "", "load the build document from this Redis key")
	cmd.Flags().StringVar(&flags.redisAddr, "redis-addr", "", "Redis address (overrides PLANNER_REDIS_ADDR)")
	cmd.Flags().StringVar(&flags.format, "format", "", "output format: table or json (overrides PLANNER_FORMAT)")
	cmd.Flags().BoolVar(&flags.debug, "debug", false, "print the intermediate tables and debug logs")
	cmd.MarkFlagsMutuallyExclusive("file", "redis-key")
	cmd.MarkFlagsOneRequired("file", "redis-key")

	return cmd
}

func runPlan(cmd *cobra.Command, flags *planFlags) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if flags.redisAddr != "" {
		cfg.RedisAddr = flags.redisAddr
	}
	if flags.format != "" {
		cfg.Format = flags.format
	}
	if flags.debug {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return errors.Wrap(err, "invalid configuration")
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	ctx, cancel := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	repo, ref, closeRepo, err := buildRepository(cfg, flags)
	if err != nil {
		return err
	}
	defer closeRepo()

	orch, err := plan.NewOrchestrator(&plan.Config{
		BuildRepo:   repo,
		IDGenerator: idgen.NewUUID("run"),
		Clock:       clock.New(),
	})
	if err != nil {
		return errors.Wrap(err, "failed to create plan orchestrator")
	}

	out, err := orch.Plan(ctx, &plan.PlanInput{Ref: ref})
	if err != nil {
		return err
	}

	if cfg.Format == config.FormatJSON {
		return render.JSON(cmd.OutOrStdout(), out)
	}
	return render.Table(cmd.OutOrStdout(), out, render.Options{Debug: flags.debug})
}

func buildRepository(cfg *config.Config, flags *planFlags) (build.Repository, string, func(), error) {
	if flags.file != "" {
		repo, err := build.NewFile(&build.FileConfig{Root: cfg.BuildDir})
		if err != nil {
			return nil, "", nil, err
		}
		return repo, flags.file, func() {}, nil
	}

	if cfg.RedisAddr == "" {
		return nil, "", nil, errors.InvalidArgument("--redis-addr or PLANNER_REDIS_ADDR is required with --redis-key")
	}

	client, err := redisclient.NewClient(cfg.RedisAddr, redisOptions(cfg))
	if err != nil {
		return nil, "", nil, err
	}

	closeClient := func() {
		if err := client.Close(); err != nil {
			slog.Warn("failed to close redis client", "error", err)
		}
	}

	repo, err := build.NewRedis(&build.RedisConfig{
		Client:    client,
		KeyPrefix: cfg.RedisKeyPrefix,
	})
	if err != nil {
		closeClient()
		return nil, "", nil, err
	}

	return repo, flags.redisKey, closeClient, nil
}

func redisOptions(cfg *config.Config) *redisclient.Options {
	return &redisclient.Options{
		Password:    cfg.RedisPassword,
		DB:          cfg.RedisDB,
		DialTimeout: cfg.RedisTimeout,
		ReadTimeout: cfg.RedisTimeout,
		MaxRetries:  cfg.RedisRetries,
		UseTLS:      cfg.RedisTLS,
	}
}
