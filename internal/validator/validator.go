package validator

import (
	"fmt"

	"github.com/aretw0/nhohnhehr/pkg/domain"
)

// Lint scans a parsed room for constructs that make a program misbehave
// without being invalid. Every room of the lattice is a rotation of the
// origin room, so a symbol missing here is missing everywhere.
func Lint(grid *domain.Grid) []string {
	counts := make(map[rune]int)
	for _, row := range grid.Rows() {
		for _, r := range row {
			counts[r]++
		}
	}

	var warnings []string
	if n := counts[domain.OpStart]; n > 1 {
		warnings = append(warnings, fmt.Sprintf("found %d start markers; the first in row-major order is used", n))
	}
	if counts[domain.OpHalt] == 0 {
		warnings = append(warnings, "no @ in room; the program can only stop on a step limit")
	}
	if counts[domain.OpWriteZero]+counts[domain.OpWriteOne] == 0 {
		warnings = append(warnings, "no 0 or 1 in room; the program never writes output")
	}
	return warnings
}
