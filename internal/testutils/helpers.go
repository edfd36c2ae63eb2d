package testutils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Common programs shared by adapter and CLI tests.
var (
	// WriteOne writes a single 1 and halts after three steps.
	WriteOne = Room("$1@", "   ", "   ")
	// Spinner circles its room forever without I/O.
	Spinner = Room("$.", "..")
	// WriteA writes the byte 'A' and halts.
	WriteA = Room(append([]string{"$01000001@"}, blankRows(10, 9)...)...)
)

// Room renders rows as a bordered program source.
func Room(rows ...string) string {
	n := len(rows)
	border := "+" + strings.Repeat("-", n) + "+\n"

	var b strings.Builder
	b.WriteString(border)
	for _, row := range rows {
		b.WriteString("|" + row + "|\n")
	}
	b.WriteString(border)
	return b.String()
}

func blankRows(width, count int) []string {
	rows := make([]string, count)
	for i := range rows {
		rows[i] = strings.Repeat(" ", width)
	}
	return rows
}

// WriteProgram stores source in a temporary .nhh file and returns its path.
// It fails the test immediately on error.
func WriteProgram(t *testing.T, source string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "prog.nhh")
	require.NoError(t, os.WriteFile(path, []byte(source), 0644), "Failed to write program")
	return path
}
