package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"os/signal"
	"runtime"
	"sync"
	"syscall"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper-agent/internal/config"
	"github.com/vancomm/minesweeper-agent/internal/game"
	"github.com/vancomm/minesweeper-agent/internal/knowledge"
	"github.com/vancomm/minesweeper-agent/internal/player"
	"github.com/vancomm/minesweeper-agent/internal/store"
)

var (
	log = logrus.New()
	cfg = config.Default()

	configPath string
	games      int
	seed       uint64
)

func init() {
	const (
		defaultConfigPath = "agent.json"
		usage             = "config file path"
	)
	flag.StringVar(&configPath, "config", defaultConfigPath, usage)
	flag.StringVar(&configPath, "c", defaultConfigPath, usage+" (shorthand)")
	flag.IntVar(&games, "games", 100, "number of games to play")
	flag.Uint64Var(&seed, "seed", 0, "random seed override (0 keeps config value)")
}

func setupLogging() {
	logLevel := logrus.InfoLevel
	if cfg.Development() {
		logLevel = logrus.DebugLevel
	}
	log.SetLevel(logLevel)
	log.SetFormatter(&logrus.TextFormatter{ForceColors: true})

	knowledge.Log = log
	player.SetLogger(log)
}

type tally struct {
	mu                  sync.Mutex
	won, lost, stalled  int
	moves, blindedMoves int
}

func (t *tally) record(r *player.Result) {
	t.mu.Lock()
	defer t.mu.Unlock()
	switch r.Outcome {
	case player.Won:
		t.won++
	case player.Lost:
		t.lost++
	case player.Stalled:
		t.stalled++
	}
	t.moves += len(r.Moves)
	for _, m := range r.Moves {
		if m.Strategy != player.Safe {
			t.blindedMoves++
		}
	}
}

func playOne(n int, results *store.Store, t *tally) error {
	rnd := rand.New(rand.NewPCG(seed, uint64(n)))

	board, err := game.NewBoard(cfg.Board, rnd)
	if err != nil {
		return err
	}
	agent, err := knowledge.NewAgent(cfg.Board.Height, cfg.Board.Width, rnd)
	if err != nil {
		return err
	}

	result, err := player.New(board, agent, rnd).Play(0)
	if err != nil {
		return fmt.Errorf("game %d: %w", n, err)
	}

	t.record(result)
	log.WithFields(logrus.Fields{
		"game":    n,
		"outcome": result.Outcome,
		"moves":   len(result.Moves),
		"mines":   result.MinesFound,
	}).Debug("game finished")

	return results.Set(fmt.Sprintf("game-%d", n), result)
}

func main() {
	mainCtx, stop := signal.NotifyContext(
		context.Background(), syscall.SIGINT, syscall.SIGTERM,
	)
	defer stop()

	flag.Parse()

	if err := config.ReadConfig(configPath, &cfg); err != nil {
		log.Fatalf("unable to parse config %s: %s", configPath, err.Error())
	}
	if seed == 0 {
		seed = cfg.Seed
	}
	if seed == 0 {
		seed = rand.Uint64()
	}

	setupLogging()

	log.Info("starting up, mode = ", cfg.Mode)
	log.WithFields(cfg.Fields()).Debug("config")

	results, err := store.Open(cfg.StorePath, "results")
	if err != nil {
		log.Fatal("unable to open results store: ", err)
	}
	defer results.Close()

	var t tally
	g, gCtx := errgroup.WithContext(mainCtx)
	g.SetLimit(runtime.GOMAXPROCS(0))
	for n := range games {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			return playOne(n, results, &t)
		})
	}

	if err := g.Wait(); err != nil {
		log.Error("exit reason: ", err)
		os.Exit(1)
	}

	log.WithFields(logrus.Fields{
		"games":   games,
		"won":     t.won,
		"lost":    t.lost,
		"stalled": t.stalled,
		"moves":   t.moves,
		"guesses": t.blindedMoves,
	}).Info("done")
	fmt.Printf("played %d games on %s: %d won, %d lost, %d stalled\n",
		games, cfg.Board, t.won, t.lost, t.stalled)
}
