package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/engraving-planner/internal/config"
	"github.com/KirkDiggler/engraving-planner/internal/entities/lostark"
	"github.com/KirkDiggler/engraving-planner/internal/errors"
	"github.com/KirkDiggler/engraving-planner/internal/testutils"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func TestPlan_File(t *testing.T) {
	path := testutils.WriteBuildFile(t, "berserker.yaml", testutils.BerserkerBuildYAML)

	stdout, _, err := execute(t, "plan", "--file", path)
	require.NoError(t, err)

	assert.Contains(t, stdout, "Build is possible")
	assert.Contains(t, stdout, "OWNED")
	assert.Contains(t, stdout, "BUY")
}

func TestPlan_JSON(t *testing.T) {
	path := testutils.WriteBuildFile(t, "berserker.json", testutils.BerserkerBuildJSON)

	stdout, _, err := execute(t, "plan", "--file", path, "--format", "json")
	require.NoError(t, err)

	var report map[string]any
	require.NoError(t, json.Unmarshal([]byte(stdout), &report))
	assert.Contains(t, report, "feasibility")
	assert.Contains(t, report, "items")
}

func TestPlan_MissingFile(t *testing.T) {
	_, _, err := execute(t, "plan", "--file", "does-not-exist.json")
	require.Error(t, err)

	assert.True(t, errors.IsNotFound(err))
	assert.Equal(t, 2, errors.GetCode(err).ExitCode())
}

func TestPlan_MalformedDocument(t *testing.T) {
	path := testutils.WriteBuildFile(t, "broken.json", `{"goal": [{"engraving": "Not An Engraving", "value": 5}]}`)

	_, _, err := execute(t, "plan", "--file", path)
	require.Error(t, err)

	assert.True(t, errors.IsMalformedInput(err))
}

func TestPlan_BadFormat(t *testing.T) {
	path := testutils.WriteBuildFile(t, "berserker.json", testutils.BerserkerBuildJSON)

	_, _, err := execute(t, "plan", "--file", path, "--format", "csv")
	require.Error(t, err)

	assert.True(t, errors.IsInvalidArgument(err))
}

func TestPlan_RedisWithoutAddress(t *testing.T) {
	t.Setenv("PLANNER_REDIS_ADDR", "")

	_, _, err := execute(t, "plan", "--redis-key", "berserker")
	require.Error(t, err)

	assert.True(t, errors.IsInvalidArgument(err))
}

func TestPlan_Redis(t *testing.T) {
	mr := miniredis.RunT(t)
	mr.Set("engraving:build:berserker", testutils.BerserkerBuildJSON)

	stdout, _, err := execute(t, "plan", "--redis-key", "berserker", "--redis-addr", mr.Addr())
	require.NoError(t, err)

	assert.Contains(t, stdout, "Build is possible")
}

func TestRedisOptions(t *testing.T) {
	t.Setenv("PLANNER_REDIS_TLS", "true")
	t.Setenv("PLANNER_REDIS_MAX_RETRIES", "5")

	cfg, err := config.Load()
	require.NoError(t, err)

	opts := redisOptions(cfg)
	assert.True(t, opts.UseTLS)
	assert.Equal(t, 5, opts.MaxRetries)
	assert.Equal(t, cfg.RedisTimeout, opts.DialTimeout)
}

func TestPlan_RequiresSource(t *testing.T) {
	_, _, err := execute(t, "plan")
	assert.Error(t, err)
}

func TestEngravings(t *testing.T) {
	stdout, _, err := execute(t, "engravings")
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	assert.Len(t, lines, len(lostark.AllEngravings()))
	assert.Contains(t, lines, lostark.EngravingGrudge.String())
}

func TestEngravings_JSON(t *testing.T) {
	stdout, _, err := execute(t, "engravings", "--format", "json")
	require.NoError(t, err)

	var names []string
	require.NoError(t, json.Unmarshal([]byte(stdout), &names))
	assert.Len(t, names, len(lostark.AllEngravings()))
}
