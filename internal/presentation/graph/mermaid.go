package graph

import (
	"fmt"
	"strings"

	"github.com/aretw0/nhohnhehr/pkg/domain"
)

// Overlay contains dynamic run data to highlight on the lattice.
type Overlay struct {
	Current *domain.Point
}

// GenerateMermaid produces a Mermaid flowchart of how the lattice grew.
// The origin room is drawn as a circle; every other room is labelled with its
// coordinate and linked from the room it was grown from, the edge carrying the
// transform. Rooms are listed in creation order.
func GenerateMermaid(rooms []domain.RoomEvent, overlay *Overlay) string {
	var sb strings.Builder
	sb.WriteString("graph LR\n")

	origin := domain.Point{}
	sb.WriteString(fmt.Sprintf("    %s((\"%s\"))\n", nodeID(origin), origin))

	for _, e := range rooms {
		sb.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", nodeID(e.Room), e.Room))
		sb.WriteString(fmt.Sprintf("    %s -- \"%s\" --> %s\n", nodeID(e.Source), e.Transform, nodeID(e.Room)))
	}

	if overlay != nil && overlay.Current != nil {
		sb.WriteString("\n    %% Overlay Styles\n")
		// Black text keeps contrast on light and dark themes.
		sb.WriteString("    classDef current fill:#ffeb3b,stroke:#fbc02d,stroke-width:4px,color:#000;\n")
		sb.WriteString(fmt.Sprintf("    class %s current;\n", nodeID(*overlay.Current)))
	}

	return sb.String()
}

// nodeID encodes a room coordinate as a Mermaid-safe identifier.
func nodeID(p domain.Point) string {
	return "r" + coord(p.X) + "_" + coord(p.Y)
}

func coord(v int) string {
	if v < 0 {
		return fmt.Sprintf("m%d", -v)
	}
	return fmt.Sprintf("%d", v)
}
