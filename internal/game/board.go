package game

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/vancomm/minesweeper-agent/internal/knowledge"
)

// Board is the minefield the agent plays against. It only answers
// the two questions the agent's driver needs: whether a cell is
// mined, and how many of a cell's neighbors are.
type Board struct {
	params Params
	grid   []bool
}

// NewBoard places params.Mines mines uniformly at random.
func NewBoard(params Params, rnd *rand.Rand) (*Board, error) {
	if err := params.Validate(); err != nil {
		return nil, err
	}
	b := &Board{
		params: params,
		grid:   make([]bool, params.Height*params.Width),
	}
	for planted := 0; planted < params.Mines; {
		i := rnd.IntN(len(b.grid))
		if !b.grid[i] {
			b.grid[i] = true
			planted++
		}
	}
	return b, nil
}

// NewBoardWithMines places mines at the given cells exactly.
func NewBoardWithMines(params Params, mines ...knowledge.Cell) (*Board, error) {
	params.Mines = len(mines)
	if err := params.Validate(); err != nil {
		return nil, err
	}
	b := &Board{
		params: params,
		grid:   make([]bool, params.Height*params.Width),
	}
	for _, c := range mines {
		if !b.inBounds(c) {
			return nil, fmt.Errorf("mine %s out of %s board", c, params)
		}
		b.grid[b.index(c)] = true
	}
	return b, nil
}

func (b *Board) Params() Params { return b.params }
func (b *Board) Height() int    { return b.params.Height }
func (b *Board) Width() int     { return b.params.Width }
func (b *Board) MineCount() int { return b.params.Mines }

// SafeCellCount is the number of cells a winning player must reveal.
func (b *Board) SafeCellCount() int {
	return len(b.grid) - b.params.Mines
}

func (b *Board) index(c knowledge.Cell) int {
	return c.Row*b.params.Width + c.Col
}

func (b *Board) inBounds(c knowledge.Cell) bool {
	return 0 <= c.Row && c.Row < b.params.Height &&
		0 <= c.Col && c.Col < b.params.Width
}

func (b *Board) IsMine(c knowledge.Cell) bool {
	return b.inBounds(c) && b.grid[b.index(c)]
}

// NearbyMines counts the mines within one row and column of c, not
// counting c itself.
func (b *Board) NearbyMines(c knowledge.Cell) (count int) {
	for row := c.Row - 1; row <= c.Row+1; row++ {
		for col := c.Col - 1; col <= c.Col+1; col++ {
			n := knowledge.Cell{Row: row, Col: col}
			if n != c && b.IsMine(n) {
				count++
			}
		}
	}
	return count
}

// Mines returns every mined cell.
func (b *Board) Mines() knowledge.Set {
	mines := knowledge.NewSet()
	for i, mined := range b.grid {
		if mined {
			mines.Add(knowledge.Cell{Row: i / b.params.Width, Col: i % b.params.Width})
		}
	}
	return mines
}

// Won reports whether found flags exactly the mined cells.
func (b *Board) Won(found knowledge.Set) bool {
	return found.Equal(b.Mines())
}

func (b *Board) String() string {
	var s strings.Builder
	for row := range b.params.Height {
		for col := range b.params.Width {
			if b.grid[row*b.params.Width+col] {
				fmt.Fprint(&s, "* ")
			} else {
				fmt.Fprint(&s, "- ")
			}
		}
		fmt.Fprint(&s, "\n")
	}
	return s.String()
}
