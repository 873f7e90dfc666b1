package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
	"github.com/ilyakaznacheev/cleanenv"
)

const (
	localConfigFile = "config.yml"
	xdgConfigFile   = "tictactoe/config.yml"
)

type Config struct {
	LogLevel    string      `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	HTTPPort    string      `yaml:"http-port" env:"HTTP_PORT" env-default:"8080"`
	MoveService MoveService `yaml:"move-service"`
	Terminal    Terminal    `yaml:"terminal"`
}

type MoveService struct {
	URL string `yaml:"url" env:"MOVE_SERVICE_URL" env-default:"http://localhost:5000"`
	// zero means no client-side limit
	Timeout time.Duration `yaml:"timeout" env:"MOVE_SERVICE_TIMEOUT" env-default:"0s"`
}

type Terminal struct {
	// empty discards logs while the terminal UI owns the screen
	LogFile string `yaml:"log-file" env:"TERMINAL_LOG_FILE"`
}

// Load reads the config file at path with env overrides. An empty path uses defaults and env only.
func Load(path string) (*Config, error) {
	config := &Config{}

	if path == "" {
		if err := cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("unable to read config from env: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

// ResolvePath picks the config file: explicit, else ./config.yml, else the XDG config
// directory. It returns "" when no file exists.
func ResolvePath(explicit string) string {
	if explicit != "" {
		return explicit
	}

	if baseDir, err := os.Getwd(); err == nil {
		local := filepath.Join(baseDir, localConfigFile)
		if _, err = os.Stat(local); !errors.Is(err, fs.ErrNotExist) {
			return local
		}
	}

	if path, err := xdg.SearchConfigFile(xdgConfigFile); err == nil {
		return path
	}

	return ""
}
