package graph

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aretw0/nhohnhehr/pkg/domain"
)

// Trace summarizes a bounded run for the report.
type Trace struct {
	State  domain.State
	Rooms  []domain.RoomEvent
	Output string // bits written, as '0' and '1'
	Err    error
}

// Report renders a Markdown description of a program room and, when trace
// is not nil, of a run.
func Report(name string, grid *domain.Grid, trace *Trace) string {
	var sb strings.Builder

	if name == "" {
		name = "program"
	}
	sb.WriteString(fmt.Sprintf("# %s\n\n", name))

	sb.WriteString("## Room\n\n")
	sb.WriteString(fmt.Sprintf("- **Size:** %d x %d\n", grid.Size(), grid.Size()))
	if start, ok := grid.Find(domain.OpStart); ok {
		sb.WriteString(fmt.Sprintf("- **Start:** %s\n", start))
	} else {
		sb.WriteString("- **Start:** missing\n")
	}
	sb.WriteString("\n```\n")
	sb.WriteString(grid.String())
	sb.WriteString("\n```\n\n")

	sb.WriteString("## Instructions\n\n")
	sb.WriteString("| Symbol | Meaning | Count |\n|---|---|---|\n")
	for _, c := range countOps(grid) {
		sb.WriteString(fmt.Sprintf("| `%c` | %s | %d |\n", c.op, domain.OpName(c.op), c.n))
	}

	if trace == nil {
		return sb.String()
	}

	sb.WriteString("\n## Run\n\n")
	sb.WriteString(fmt.Sprintf("- **Steps:** %d\n", trace.State.Steps))
	sb.WriteString(fmt.Sprintf("- **Halted:** %t\n", trace.State.Halted))
	sb.WriteString(fmt.Sprintf("- **IP:** %s heading %s\n", trace.State.IP, trace.State.Direction))
	sb.WriteString(fmt.Sprintf("- **Edge mode:** %s\n", trace.State.EdgeMode))
	sb.WriteString(fmt.Sprintf("- **Rooms:** %d\n", len(trace.Rooms)+1))
	if trace.Output != "" {
		sb.WriteString(fmt.Sprintf("- **Output:** `%s`\n", trace.Output))
	} else {
		sb.WriteString("- **Output:** none\n")
	}
	if trace.Err != nil {
		sb.WriteString(fmt.Sprintf("- **Stopped:** %v\n", trace.Err))
	}

	current := domain.RoomOf(trace.State.IP, grid.Size())
	sb.WriteString("\n### Lattice\n\n```mermaid\n")
	sb.WriteString(GenerateMermaid(trace.Rooms, &Overlay{Current: &current}))
	sb.WriteString("```\n")

	return sb.String()
}

type opCount struct {
	op rune
	n  int
}

// countOps tallies instruction cells, skipping no-ops.
func countOps(grid *domain.Grid) []opCount {
	counts := map[rune]int{}
	for _, row := range grid.Rows() {
		for _, r := range row {
			if domain.OpName(r) != "nop" {
				counts[r]++
			}
		}
	}

	out := make([]opCount, 0, len(counts))
	for op, n := range counts {
		out = append(out, opCount{op: op, n: n})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].op < out[j].op })
	return out
}
