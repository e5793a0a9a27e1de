package knowledge

import "fmt"

// Cell is a board coordinate. Two cells with equal coordinates are
// the same cell, so Cell works directly as a map key.
type Cell struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d, %d)", c.Row, c.Col)
}

func cellCmp(a, b Cell) int {
	if a.Row != b.Row {
		return a.Row - b.Row
	}
	return a.Col - b.Col
}
