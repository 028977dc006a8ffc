package render_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/engraving-planner/internal/entities/lostark"
	"github.com/KirkDiggler/engraving-planner/internal/orchestrators/plan"
	"github.com/KirkDiggler/engraving-planner/internal/planner"
	"github.com/KirkDiggler/engraving-planner/internal/render"
)

func testOutput() *plan.PlanOutput {
	b := &lostark.Build{
		Name: "Grudge Berserker",
		Goal: lostark.Vector{
			{Engraving: lostark.EngravingGrudge, Value: 8},
			{Engraving: lostark.EngravingAdrenaline, Value: 3},
		},
		Items: []lostark.Item{
			{Type: lostark.ItemTypeNecklace, Engravings: []lostark.EngravingValue{
				{Engraving: lostark.EngravingGrudge, Value: 5},
				{Engraving: lostark.EngravingAdrenaline, Value: 3},
			}},
		},
	}
	return &plan.PlanOutput{
		RunID:  "run_1",
		Build:  b,
		Source: "file:berserker.json",
		Result: planner.Run(b),
	}
}

func TestTable(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Table(&buf, testOutput(), render.Options{}))

	out := buf.String()
	assert.Contains(t, out, "Grudge Berserker")
	assert.Contains(t, out, "Build is possible (3/10 engravings, 1/5 above minimum)")
	assert.Contains(t, out, "Emplacement")
	assert.Contains(t, out, "Grudge 5 / Adrenaline 3")
	assert.Contains(t, out, "OWNED")
	assert.Contains(t, out, "BUY")
	assert.NotContains(t, out, "Value", "debug tables are off")
}

func TestTable_Debug(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Table(&buf, testOutput(), render.Options{Debug: true}))

	out := buf.String()
	assert.Contains(t, out, "Engraving")
	assert.Contains(t, out, "Value")
}

func TestFeasibility(t *testing.T) {
	assert.Contains(t, render.Feasibility(planner.Feasibility{Possible: false, Total: 11, AboveMinimum: 5}),
		"Build is impossible (11/10 engravings, 5/5 above minimum)")
}

func TestItems_StatusUnset(t *testing.T) {
	out := render.Items([]lostark.Item{{Type: lostark.ItemTypeRing}})
	assert.Contains(t, out, "RING")
	assert.Contains(t, out, "N/A")
}

func TestEngravings(t *testing.T) {
	assert.Equal(t, "", render.Engravings(nil))
	assert.Equal(t, "Master's Tenacity 5 / Grudge 3", render.Engravings([]lostark.EngravingValue{
		{Engraving: lostark.EngravingMastersTenacity, Value: 5},
		{Engraving: lostark.EngravingGrudge, Value: 3},
	}))
}

func TestJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.JSON(&buf, testOutput()))

	var report map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &report))

	assert.Equal(t, "run_1", report["run_id"])
	assert.Equal(t, "Grudge Berserker", report["name"])
	assert.Equal(t, true, report["feasibility"].(map[string]interface{})["possible"])

	items := report["items"].([]interface{})
	require.Len(t, items, 5)
	first := items[0].(map[string]interface{})
	assert.Equal(t, "NECKLACE", first["type"])
	assert.Equal(t, "OWNED", first["status"])

	decomposed := report["decomposed"].([]interface{})
	require.Len(t, decomposed, 3)
	assert.Equal(t, map[string]interface{}{"index": float64(0), "engraving": "Grudge", "value": float64(5)}, decomposed[0])
}
