package viz

import (
	"fmt"
	"strings"

	"github.com/nvail/veclab/vec"
)

// CellStrip renders a vector as a strip of slots: occupied cells show
// their value, allocated-but-spare cells a dot. cursor highlights one
// offset; pass -1 for none. Only the first maxCells slots are drawn.
func CellStrip(v *vec.Vector[int], cursor, maxCells int) string {
	if v.Cap() == 0 {
		return Subtle.Render("(no storage allocated)")
	}

	cells := v.Cap()
	truncated := false
	if maxCells > 0 && cells > maxCells {
		cells = maxCells
		truncated = true
	}

	var b strings.Builder
	for i := 0; i < cells; i++ {
		switch {
		case i == cursor:
			if i < v.Size() {
				el, _ := v.At(i)
				b.WriteString(CellCursor.Render(fmt.Sprintf("%d", el)))
			} else {
				b.WriteString(CellCursor.Render("·"))
			}
		case i < v.Size():
			el, _ := v.At(i)
			b.WriteString(CellLive.Render(fmt.Sprintf("%d", el)))
		default:
			b.WriteString(CellSpare.Render("·"))
		}
	}
	if truncated {
		b.WriteString(Subtle.Render(fmt.Sprintf(" … %d more", v.Cap()-cells)))
	}
	return b.String()
}
