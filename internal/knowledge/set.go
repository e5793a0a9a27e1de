package knowledge

import (
	"fmt"
	"slices"
	"strings"
)

type void struct{}

// Set is a collection of board cells with value semantics: every Set
// owns its backing storage and is only ever shared via [Set.Clone].
type Set map[Cell]void

func NewSet(cells ...Cell) Set {
	s := make(Set, len(cells))
	for _, c := range cells {
		s[c] = void{}
	}
	return s
}

func (s Set) Add(c Cell) {
	s[c] = void{}
}

func (s Set) Remove(c Cell) {
	delete(s, c)
}

func (s Set) Has(c Cell) bool {
	_, ok := s[c]
	return ok
}

func (s Set) Len() int {
	return len(s)
}

func (s Set) Clone() Set {
	clone := make(Set, len(s))
	for c := range s {
		clone[c] = void{}
	}
	return clone
}

func (s Set) Equal(x Set) bool {
	if len(s) != len(x) {
		return false
	}
	for c := range s {
		if !x.Has(c) {
			return false
		}
	}
	return true
}

func (s Set) SubsetOf(x Set) bool {
	if len(s) > len(x) {
		return false
	}
	for c := range s {
		if !x.Has(c) {
			return false
		}
	}
	return true
}

// Diff returns a new set holding every cell of s not present in x.
func (s Set) Diff(x Set) Set {
	result := make(Set)
	for c := range s {
		if !x.Has(c) {
			result.Add(c)
		}
	}
	return result
}

// Cells returns the members sorted by row, then column. Iteration
// order of the underlying map is random; every caller that cares
// about determinism goes through here.
func (s Set) Cells() []Cell {
	cells := make([]Cell, 0, len(s))
	for c := range s {
		cells = append(cells, c)
	}
	slices.SortFunc(cells, cellCmp)
	return cells
}

func (s Set) String() string {
	var b strings.Builder
	b.WriteString("{")
	for i, c := range s.Cells() {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, c)
	}
	b.WriteString("}")
	return b.String()
}
