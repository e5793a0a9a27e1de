package knowledge

import (
	"fmt"
	"math/rand/v2"

	"github.com/gammazero/deque"
	"github.com/sirupsen/logrus"
)

var Log = logrus.New()

// Agent is a knowledge-based Minesweeper player. It accumulates
// sentences from revealed clues and resolves cells by deduction
// alone; when deduction stalls it can only offer a random pick among
// cells it has at least one sentence about.
//
// An Agent is driven strictly call-by-call from a single goroutine:
// one AddKnowledge call runs to a fixed point before any move query.
type Agent struct {
	height, width int

	movesMade Set
	mines     Set
	safes     Set
	knowledge []*Sentence

	rnd *rand.Rand
}

// NewAgent creates an agent for a height×width board. rnd drives
// MakeRandomMove; pass a seeded generator for reproducible play, or
// nil to seed from the global source.
func NewAgent(height, width int, rnd *rand.Rand) (*Agent, error) {
	if height <= 0 || width <= 0 {
		return nil, AssertionError{fmt.Sprintf("invalid board size %dx%d", height, width)}
	}
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Agent{
		height:    height,
		width:     width,
		movesMade: NewSet(),
		mines:     NewSet(),
		safes:     NewSet(),
		rnd:       rnd,
	}, nil
}

func (a *Agent) Height() int { return a.height }
func (a *Agent) Width() int  { return a.width }

// Mines returns a copy of the cells proven to contain a mine.
func (a *Agent) Mines() Set { return a.mines.Clone() }

// Safes returns a copy of the cells proven mine-free.
func (a *Agent) Safes() Set { return a.safes.Clone() }

// MovesMade returns a copy of the cells already revealed.
func (a *Agent) MovesMade() Set { return a.movesMade.Clone() }

// SentenceCount reports the number of live sentences.
func (a *Agent) SentenceCount() int { return len(a.knowledge) }

func (a *Agent) inBounds(c Cell) bool {
	return 0 <= c.Row && c.Row < a.height && 0 <= c.Col && c.Col < a.width
}

// Neighbors returns the 8-neighborhood of c clipped to the board.
func (a *Agent) Neighbors(c Cell) Set {
	neighbors := NewSet()
	for row := c.Row - 1; row <= c.Row+1; row++ {
		for col := c.Col - 1; col <= c.Col+1; col++ {
			n := Cell{Row: row, Col: col}
			if n != c && a.inBounds(n) {
				neighbors.Add(n)
			}
		}
	}
	return neighbors
}

// MarkMine records cell as a known mine and propagates the fact
// through every sentence.
func (a *Agent) MarkMine(cell Cell) {
	a.mines.Add(cell)
	for _, s := range a.knowledge {
		s.MarkMine(cell)
	}
	a.compact()
}

// MarkSafe records cell as known safe and propagates the fact
// through every sentence.
func (a *Agent) MarkSafe(cell Cell) {
	a.safes.Add(cell)
	for _, s := range a.knowledge {
		s.MarkSafe(cell)
	}
	a.compact()
}

// compact drops sentences that degenerated while shrinking: emptied
// ones, and ones that collapsed into a value-equal earlier sentence.
func (a *Agent) compact() {
	live := a.knowledge[:0]
	for _, s := range a.knowledge {
		if s.Empty() {
			continue
		}
		duplicate := false
		for _, kept := range live {
			if kept.Equal(s) {
				duplicate = true
				break
			}
		}
		if !duplicate {
			live = append(live, s)
		}
	}
	a.knowledge = live
}

func (a *Agent) hasSentence(x *Sentence) bool {
	for _, s := range a.knowledge {
		if s.Equal(x) {
			return true
		}
	}
	return false
}

// AddKnowledge folds in a clue: the board has declared cell safe and
// reported count mines among its neighbors. The clue becomes a new
// sentence over the still-undetermined neighbors, and deduction then
// runs to a fixed point: cells resolved by single sentences shrink
// every other sentence, and each subset pair of sentences yields a
// sentence about their difference.
func (a *Agent) AddKnowledge(cell Cell, count int) error {
	if !a.inBounds(cell) {
		return AssertionError{fmt.Sprintf("cell %s out of %dx%d board", cell, a.height, a.width)}
	}
	if count < 0 || count > 8 {
		return AssertionError{fmt.Sprintf("clue %d for cell %s out of range", count, cell)}
	}

	a.movesMade.Add(cell)
	a.MarkSafe(cell)

	// Of the neighbors, known-safe cells carry no information and
	// known mines are already accounted for; the sentence covers
	// only the undetermined remainder.
	undetermined := NewSet()
	for n := range a.Neighbors(cell) {
		switch {
		case a.safes.Has(n):
		case a.mines.Has(n):
			count--
		default:
			undetermined.Add(n)
		}
	}

	if undetermined.Len() > 0 {
		s, err := NewSentence(undetermined, count)
		if err != nil {
			return err
		}
		if !a.hasSentence(s) {
			a.knowledge = append(a.knowledge, s)
			Log.WithFields(logrus.Fields{
				"cell":     cell,
				"sentence": s,
			}).Debug("new sentence")
		}
	}

	a.saturate()
	return nil
}

// saturate alternates direct and subset inference passes until
// neither changes the knowledge base. Terminates because direct
// resolution only ever shrinks sentences and the space of distinct
// sentences over a finite board is finite.
func (a *Agent) saturate() {
	for a.inferResolved() || a.inferSubsets() {
	}
}

type conclusion struct {
	cell Cell
	mine bool
}

// inferResolved drains every conclusion single sentences can reach:
// a sentence whose count is zero proves all its cells safe, one
// whose count equals its size proves them all mines. Each resolved
// cell shrinks the other sentences, which may resolve more cells, so
// conclusions go through a worklist until it runs dry.
func (a *Agent) inferResolved() (changed bool) {
	var todo deque.Deque[conclusion]

	for {
		// Sentences never mention known cells, so anything found
		// here is a fresh conclusion.
		for _, s := range a.knowledge {
			for c := range s.KnownMines() {
				todo.PushBack(conclusion{cell: c, mine: true})
			}
			for c := range s.KnownSafes() {
				todo.PushBack(conclusion{cell: c, mine: false})
			}
		}
		if todo.Len() == 0 {
			return changed
		}
		for todo.Len() > 0 {
			c := todo.PopFront()
			// may have been resolved by an earlier entry
			if a.mines.Has(c.cell) || a.safes.Has(c.cell) {
				continue
			}
			if c.mine {
				a.MarkMine(c.cell)
			} else {
				a.MarkSafe(c.cell)
			}
			changed = true
		}
	}
}

// inferSubsets derives, for every subset pair A ⊆ B, the sentence
// B−A = count(B)−count(A). Derived sentences go into a staging list
// first so the pass never appends to the slice it is ranging over.
func (a *Agent) inferSubsets() (changed bool) {
	var staged []*Sentence

	isNew := func(x *Sentence) bool {
		if a.hasSentence(x) {
			return false
		}
		for _, s := range staged {
			if s.Equal(x) {
				return false
			}
		}
		return true
	}

	for _, sub := range a.knowledge {
		for _, super := range a.knowledge {
			if sub == super || !sub.cells.SubsetOf(super.cells) {
				continue
			}
			rest := super.cells.Diff(sub.cells)
			if rest.Len() == 0 {
				continue
			}
			if super.count < sub.count {
				// Cannot happen with truthful clues; refuse to
				// store a negative count either way.
				Log.WithFields(logrus.Fields{
					"subset":   sub,
					"superset": super,
				}).Warn("inconsistent subset pair, skipping")
				continue
			}
			derived := &Sentence{cells: rest, count: super.count - sub.count}
			if isNew(derived) {
				staged = append(staged, derived)
			}
		}
	}

	if len(staged) > 0 {
		a.knowledge = append(a.knowledge, staged...)
		changed = true
	}
	return changed
}

// MakeSafeMove returns an untried cell proven safe; any such cell
// will do. It never mutates agent state: calling it twice without an
// intervening AddKnowledge returns the same cell. The second return
// is false when no safe move is known.
func (a *Agent) MakeSafeMove() (Cell, bool) {
	for _, c := range a.safes.Cells() {
		if !a.movesMade.Has(c) {
			return c, true
		}
	}
	return Cell{}, false
}

// MakeRandomMove returns a uniformly random cell among those the
// agent has at least one sentence about, excluding cells already
// tried and cells known to be mines. Cells no sentence mentions are
// never candidates. The second return is false when there are no
// candidates.
func (a *Agent) MakeRandomMove() (Cell, bool) {
	candidates := NewSet()
	for _, s := range a.knowledge {
		for c := range s.cells {
			if !a.movesMade.Has(c) && !a.mines.Has(c) {
				candidates.Add(c)
			}
		}
	}
	if candidates.Len() == 0 {
		return Cell{}, false
	}
	cells := candidates.Cells()
	return cells[a.rnd.IntN(len(cells))], true
}
