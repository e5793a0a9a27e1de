package main

import (
	"encoding/json"
	"math/rand/v2"
	"net/http"

	"github.com/gorilla/schema"
	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-agent/internal/game"
	"github.com/vancomm/minesweeper-agent/internal/knowledge"
	"github.com/vancomm/minesweeper-agent/internal/player"
)

var decoder = schema.NewDecoder()

func init() {
	decoder.IgnoreUnknownKeys(true)
}

type PlayParams struct {
	Height int    `schema:"height"`
	Width  int    `schema:"width"`
	Mines  int    `schema:"mines"`
	Seed   uint64 `schema:"seed"`
}

func (p PlayParams) board() game.Params {
	params := cfg.Board
	if p.Height > 0 {
		params.Height = p.Height
	}
	if p.Width > 0 {
		params.Width = p.Width
	}
	if p.Mines > 0 {
		params.Mines = p.Mines
	}
	return params
}

func playGame(p PlayParams) (*player.Result, error) {
	seed := p.Seed
	if seed == 0 {
		seed = rand.Uint64()
	}
	rnd := rand.New(rand.NewPCG(seed, 0))

	board, err := game.NewBoard(p.board(), rnd)
	if err != nil {
		return nil, err
	}
	agent, err := knowledge.NewAgent(board.Height(), board.Width(), rnd)
	if err != nil {
		return nil, err
	}
	return player.New(board, agent, rnd).Play(0)
}

func handlePlay(w http.ResponseWriter, r *http.Request) {
	var params PlayParams
	if err := decoder.Decode(&params, r.URL.Query()); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	log.WithFields(logrus.Fields{"params": params}).Info("play request")

	result, err := playGame(params)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(err.Error()))
		return
	}

	j, err := json.Marshal(result)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(j)
}
