package game

import "fmt"

const (
	DefaultHeight = 8
	DefaultWidth  = 8
	DefaultMines  = 8
)

type Params struct {
	Height int `json:"height" schema:"height"`
	Width  int `json:"width"  schema:"width"`
	Mines  int `json:"mines"  schema:"mines"`
}

func DefaultParams() Params {
	return Params{Height: DefaultHeight, Width: DefaultWidth, Mines: DefaultMines}
}

func (p Params) Validate() error {
	if p.Height <= 0 || p.Width <= 0 {
		return fmt.Errorf("invalid board size %dx%d", p.Height, p.Width)
	}
	if p.Mines < 0 || p.Mines >= p.Height*p.Width {
		return fmt.Errorf("invalid mine count %d for %dx%d board",
			p.Mines, p.Height, p.Width)
	}
	return nil
}

func (p Params) String() string {
	return fmt.Sprintf("%dx%d(%d)", p.Height, p.Width, p.Mines)
}
