package main

import (
	"context"
	"flag"
	"net"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/vancomm/minesweeper-agent/internal/config"
	"github.com/vancomm/minesweeper-agent/internal/knowledge"
	"github.com/vancomm/minesweeper-agent/internal/player"
)

var (
	log = logrus.New()
	cfg = config.Default()

	configPath string
)

func init() {
	const (
		defaultConfigPath = "agent.json"
		usage             = "config file path"
	)
	flag.StringVar(&configPath, "config", defaultConfigPath, usage)
	flag.StringVar(&configPath, "c", defaultConfigPath, usage+" (shorthand)")
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

func buildHandler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("GET /play", handlePlay)
	mux.HandleFunc("GET /watch", handleWatchWs)

	return useMiddleware(mux,
		loggingMiddleware,
		cors.Default().Handler,
	)
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

	setupLogging()

	log.Info("starting up, mode = ", cfg.Mode)
	log.WithFields(cfg.Fields()).Debug("config")

	server := &http.Server{
		Addr:    cfg.Addr,
		Handler: buildHandler(),
		BaseContext: func(l net.Listener) context.Context {
			return mainCtx
		},
	}

	log.Infof("ready to serve @ %s", cfg.Addr)

	g, gCtx := errgroup.WithContext(mainCtx)
	g.Go(func() error {
		return server.ListenAndServe()
	})
	g.Go(func() error {
		<-gCtx.Done()
		return server.Shutdown(context.Background())
	})

	if err := g.Wait(); err != nil {
		log.Printf("exit reason: %s\n", err)
	}
}
