package knowledge

import "fmt"

// Sentence is a logical statement about the game: exactly count of
// the cells in the set are mines. Sentences only ever talk about
// cells whose state is still undetermined; once a cell is resolved it
// is removed through [Sentence.MarkMine] or [Sentence.MarkSafe].
type Sentence struct {
	cells Set
	count int
}

// NewSentence copies cells, so the caller's set stays independent of
// the sentence. A count outside [0, len(cells)] can never describe a
// real board and is rejected.
func NewSentence(cells Set, count int) (*Sentence, error) {
	if count < 0 {
		return nil, AssertionError{fmt.Sprintf("sentence count %d is negative", count)}
	}
	if count > cells.Len() {
		return nil, AssertionError{fmt.Sprintf(
			"sentence claims %d mines among %d cells", count, cells.Len(),
		)}
	}
	return &Sentence{cells: cells.Clone(), count: count}, nil
}

// Cells returns a copy of the undetermined cells.
func (s *Sentence) Cells() Set {
	return s.cells.Clone()
}

func (s *Sentence) Count() int {
	return s.count
}

func (s *Sentence) Empty() bool {
	return s.cells.Len() == 0
}

func (s *Sentence) Equal(x *Sentence) bool {
	return s.count == x.count && s.cells.Equal(x.cells)
}

func (s *Sentence) String() string {
	return fmt.Sprintf("%s = %d", s.cells, s.count)
}

// KnownMines returns every cell provably mined by this sentence
// alone: all of them, when the count matches the cell count. The
// empty sentence yields nothing.
func (s *Sentence) KnownMines() Set {
	if s.count > 0 && s.count == s.cells.Len() {
		return s.cells.Clone()
	}
	return NewSet()
}

// KnownSafes returns every cell provably safe by this sentence alone:
// all of them, when the count is zero.
func (s *Sentence) KnownSafes() Set {
	if s.count == 0 {
		return s.cells.Clone()
	}
	return NewSet()
}

// MarkMine resolves cell as a mine: one fewer mine remains among the
// rest. No-op when cell is not a member.
func (s *Sentence) MarkMine(cell Cell) {
	if s.cells.Has(cell) {
		s.cells.Remove(cell)
		s.count--
	}
}

// MarkSafe resolves cell as safe: the mine count among the rest is
// unchanged. No-op when cell is not a member.
func (s *Sentence) MarkSafe(cell Cell) {
	s.cells.Remove(cell)
}
