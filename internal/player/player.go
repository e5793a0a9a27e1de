package player

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-agent/internal/game"
	"github.com/vancomm/minesweeper-agent/internal/knowledge"
)

var log *logrus.Logger

func init() {
	log = logrus.New()
}

// SetLogger replaces the package logger.
func SetLogger(l *logrus.Logger) {
	log = l
}

type Strategy string

const (
	// Safe moves are proven mine-free by the knowledge base.
	Safe Strategy = "safe"
	// Random moves come from the agent's pool of cells it has
	// sentences about but cannot resolve.
	Random Strategy = "random"
	// Blind moves are the driver's own fallback: the agent has no
	// knowledge to offer (e.g. the opening move), so the driver
	// picks among cells it has not tried and the agent has not
	// condemned.
	Blind Strategy = "blind"
)

type Outcome int

const (
	On Outcome = iota
	Won
	Lost
	Stalled
)

func (o Outcome) String() string {
	switch o {
	case On:
		return "on"
	case Won:
		return "won"
	case Lost:
		return "lost"
	case Stalled:
		return "stalled"
	default:
		return fmt.Sprintf("Outcome(%d)", int(o))
	}
}

type Move struct {
	Cell     knowledge.Cell `json:"cell"`
	Clue     int            `json:"clue"`
	Mined    bool           `json:"mined"`
	Strategy Strategy       `json:"strategy"`
}

type Result struct {
	Outcome    Outcome       `json:"outcome"`
	Moves      []Move        `json:"moves"`
	MinesFound int           `json:"mines_found"`
	Duration   time.Duration `json:"duration"`
}

// Player drives one agent through one game: reveal a cell, feed the
// clue back, ask for the next move, until the board is cleared, a
// mine goes off or the agent runs out of ideas.
type Player struct {
	board *game.Board
	agent *knowledge.Agent
	rnd   *rand.Rand
}

func New(board *game.Board, agent *knowledge.Agent, rnd *rand.Rand) *Player {
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Player{board: board, agent: agent, rnd: rnd}
}

// nextMove prefers a proven-safe cell, then the agent's random pool,
// then a blind pick over the rest of the board.
func (p *Player) nextMove() (knowledge.Cell, Strategy, bool) {
	if cell, ok := p.agent.MakeSafeMove(); ok {
		return cell, Safe, true
	}
	if cell, ok := p.agent.MakeRandomMove(); ok {
		return cell, Random, true
	}
	if cell, ok := p.blindMove(); ok {
		return cell, Blind, true
	}
	return knowledge.Cell{}, "", false
}

func (p *Player) blindMove() (knowledge.Cell, bool) {
	var (
		tried      = p.agent.MovesMade()
		mines      = p.agent.Mines()
		candidates []knowledge.Cell
	)
	for row := range p.board.Height() {
		for col := range p.board.Width() {
			c := knowledge.Cell{Row: row, Col: col}
			if !tried.Has(c) && !mines.Has(c) {
				candidates = append(candidates, c)
			}
		}
	}
	if len(candidates) == 0 {
		return knowledge.Cell{}, false
	}
	return candidates[p.rnd.IntN(len(candidates))], true
}

func (p *Player) won() bool {
	return p.agent.MovesMade().Len() == p.board.SafeCellCount() ||
		p.board.Won(p.agent.Mines())
}

// Play runs the game to completion. maxMoves caps run length as a
// safety net; 0 means one move per board cell, which no legal game
// can exceed.
func (p *Player) Play(maxMoves int) (*Result, error) {
	if maxMoves <= 0 {
		maxMoves = p.board.Height() * p.board.Width()
	}

	var (
		start  = time.Now()
		result = &Result{}
	)
	for range maxMoves {
		cell, strategy, ok := p.nextMove()
		if !ok {
			result.Outcome = Stalled
			break
		}

		move := Move{Cell: cell, Strategy: strategy}

		if p.board.IsMine(cell) {
			move.Mined = true
			result.Moves = append(result.Moves, move)
			result.Outcome = Lost
			log.WithField("cell", cell).Debug("stepped on a mine")
			break
		}

		move.Clue = p.board.NearbyMines(cell)
		result.Moves = append(result.Moves, move)

		if err := p.agent.AddKnowledge(cell, move.Clue); err != nil {
			return nil, err
		}

		log.WithFields(logrus.Fields{
			"cell":      cell,
			"clue":      move.Clue,
			"strategy":  strategy,
			"sentences": p.agent.SentenceCount(),
		}).Debug("move")

		if p.won() {
			result.Outcome = Won
			break
		}
	}

	if result.Outcome == On {
		result.Outcome = Stalled
	}
	result.MinesFound = p.agent.Mines().Len()
	result.Duration = time.Since(start)
	return result, nil
}
