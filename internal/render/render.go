// Package render prints planning results for the terminal
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/KirkDiggler/engraving-planner/internal/entities/lostark"
	"github.com/KirkDiggler/engraving-planner/internal/orchestrators/plan"
	"github.com/KirkDiggler/engraving-planner/internal/planner"
)

const statusUnset = "N/A"

var (
	titleStyle      = lipgloss.NewStyle().Bold(true)
	possibleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	impossibleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	headerStyle     = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle       = lipgloss.NewStyle().Padding(0, 1)
)

// Options selects the optional sections of the table output
type Options struct {
	// Debug adds the remaining goal and decomposed value tables
	Debug bool
}

// Table writes the human readable report
func Table(w io.Writer, out *plan.PlanOutput, opts Options) error {
	var b strings.Builder

	if out.Build.Name != "" {
		b.WriteString(titleStyle.Render(out.Build.Name))
		b.WriteString("\n")
	}

	if opts.Debug {
		b.WriteString(RemainingGoal(out.Result.RemainingGoal))
		b.WriteString("\n")
		b.WriteString(Decomposed(out.Result.Decomposed))
		b.WriteString("\n")
	}

	b.WriteString(Feasibility(out.Result.Feasibility))
	b.WriteString("\n")
	b.WriteString(Items(out.Result.Items()))
	b.WriteString("\n")

	_, err := io.WriteString(w, b.String())
	return err
}

// Feasibility renders the verdict line with the counts behind it
func Feasibility(f planner.Feasibility) string {
	counts := fmt.Sprintf("(%d/%d engravings, %d/%d above minimum)",
		f.Total, planner.MaxDecomposed(), f.AboveMinimum, planner.MaxAboveMinimum())

	if f.Possible {
		return possibleStyle.Render("✅ Build is possible " + counts)
	}
	return impossibleStyle.Render("⛔ Build is impossible " + counts)
}

// RemainingGoal renders what is left of the goal after books and stone
func RemainingGoal(v lostark.Vector) string {
	rows := make([][]string, 0, len(v))
	for _, ev := range v {
		rows = append(rows, []string{ev.Engraving.String(), strconv.Itoa(ev.Value)})
	}
	return newTable([]string{"Engraving", "Value"}, rows)
}

// Decomposed renders the accessory sized values
func Decomposed(pool []planner.DecomposedValue) string {
	rows := make([][]string, 0, len(pool))
	for _, d := range pool {
		rows = append(rows, []string{d.Engraving.String(), strconv.Itoa(d.Value)})
	}
	return newTable([]string{"Engraving", "Value"}, rows)
}

// Items renders one row per accessory
func Items(items []lostark.Item) string {
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{string(item.Type), Engravings(item.Engravings), status(item.Status)})
	}
	return newTable([]string{"Emplacement", "Engravings", "Status"}, rows)
}

// Engravings joins an item's engravings as "Grudge 5 / Adrenaline 3"
func Engravings(evs []lostark.EngravingValue) string {
	parts := make([]string, len(evs))
	for i, ev := range evs {
		parts[i] = fmt.Sprintf("%s %d", ev.Engraving, ev.Value)
	}
	return strings.Join(parts, " / ")
}

func status(s lostark.ItemStatus) string {
	if s == lostark.ItemStatusNone {
		return statusUnset
	}
	return string(s)
}

func newTable(headers []string, rows [][]string) string {
	return table.New().
		Border(lipgloss.NormalBorder()).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(headers...).
		Rows(rows...).
		String()
}

// Report is the JSON form of a planning run
type Report struct {
	RunID         string                    `json:"run_id"`
	Name          string                    `json:"name,omitempty"`
	Source        string                    `json:"source"`
	Feasibility   planner.Feasibility       `json:"feasibility"`
	RemainingGoal lostark.Vector            `json:"remaining_goal"`
	Decomposed    []planner.DecomposedValue `json:"decomposed"`
	Items         []lostark.Item            `json:"items"`
}

// JSON writes the report as indented JSON
func JSON(w io.Writer, out *plan.PlanOutput) error {
	report := Report{
		RunID:         out.RunID,
		Name:          out.Build.Name,
		Source:        out.Source,
		Feasibility:   out.Result.Feasibility,
		RemainingGoal: out.Result.RemainingGoal,
		Decomposed:    out.Result.Decomposed,
		Items:         out.Result.Items(),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
