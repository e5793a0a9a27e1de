package config

import (
	"encoding/json"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/vancomm/minesweeper-agent/internal/game"
)

type Config struct {
	Mode      string      `json:"mode"`
	Addr      string      `json:"addr"`
	StorePath string      `json:"store_path"`
	Seed      uint64      `json:"seed"`
	Board     game.Params `json:"board"`
}

func Default() Config {
	return Config{
		Mode:      "development",
		Addr:      "localhost:8000",
		StorePath: "agent.db",
		Board:     game.DefaultParams(),
	}
}

func (c Config) Fields() logrus.Fields {
	return map[string]any{
		"mode":       c.Mode,
		"addr":       c.Addr,
		"store_path": c.StorePath,
		"seed":       c.Seed,
		"board":      c.Board.String(),
	}
}

func (c Config) Production() bool {
	return c.Mode == "production"
}

func (c Config) Development() bool {
	return c.Mode != "production"
}

// ReadConfig overlays the JSON file at path onto config. A missing
// file is not an error so the defaults can stand on their own.
func ReadConfig(path string, config *Config) error {
	b, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	} else if err != nil {
		return err
	}
	return json.Unmarshal(b, config)
}
