package validator

import (
	"testing"

	"github.com/aretw0/nhohnhehr/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func TestLint(t *testing.T) {
	tests := []struct {
		name string
		grid *domain.Grid
		want []string
	}{
		{
			name: "Clean room",
			grid: domain.MustGrid("$1@", "   ", "   "),
		},
		{
			name: "Never halts",
			grid: domain.MustGrid("$1", ".."),
			want: []string{"no @ in room; the program can only stop on a step limit"},
		},
		{
			name: "Silent with two starts",
			grid: domain.MustGrid("$$", "@."),
			want: []string{
				"found 2 start markers; the first in row-major order is used",
				"no 0 or 1 in room; the program never writes output",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Lint(tt.grid))
		})
	}
}
