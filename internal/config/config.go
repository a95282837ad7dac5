package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/BurntSushi/toml"

	loopconfig "github.com/tomz197/asteroids-ufo/internal/loop/config"
)

// Config is the runtime configuration shared by all commands.
type Config struct {
	Game    GameConfig    `toml:"game"`
	Storage StorageConfig `toml:"storage"`
	Audio   AudioConfig   `toml:"audio"`
	Logging LoggingConfig `toml:"logging"`
	SSH     SSHConfig     `toml:"ssh"`
	Web     WebConfig     `toml:"web"`
}

// GameConfig holds the gameplay values worth changing without a rebuild.
type GameConfig struct {
	InitialAsteroids int           `toml:"initial_asteroids"` // wave size of the first GetReady
	WorldWidth       float64       `toml:"world_width"`
	WorldHeight      float64       `toml:"world_height"`
	Seed             int64         `toml:"seed"` // 0 = seed from the clock
	Countdown        time.Duration `toml:"countdown"`
	UFOSpawnInterval time.Duration `toml:"ufo_spawn_interval"`
}

// StorageConfig locates the high score file.
type StorageConfig struct {
	Vendor string `toml:"vendor"`
	App    string `toml:"app"`
	Path   string `toml:"path"` // explicit file path, overrides vendor/app
}

type AudioConfig struct {
	Enabled bool `toml:"enabled"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	File   string `toml:"file"`   // empty = stderr
}

type SSHConfig struct {
	Host        string `toml:"host"`
	Port        string `toml:"port"`
	HostKeyPath string `toml:"host_key_path"`
}

type WebConfig struct {
	Host           string `toml:"host"`
	Port           string `toml:"port"`
	SSHDisplayHost string `toml:"ssh_display_host"`
}

// Load reads the TOML file at path over Defaults. A missing file is not an
// error; the defaults are returned as-is.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate rejects values the game cannot run with.
func (c *Config) Validate() error {
	if c.Game.InitialAsteroids < 1 {
		return fmt.Errorf("game.initial_asteroids must be >= 1, got %d", c.Game.InitialAsteroids)
	}
	if err := c.Game.CheckWorldSize(); err != nil {
		return err
	}
	if c.Game.Countdown <= 0 {
		return fmt.Errorf("game.countdown must be positive, got %s", c.Game.Countdown)
	}
	if c.Game.UFOSpawnInterval <= 0 {
		return fmt.Errorf("game.ufo_spawn_interval must be positive, got %s", c.Game.UFOSpawnInterval)
	}
	return nil
}

// MinWorldSize is the smallest width and height a world may have.
const MinWorldSize = 2 * loopconfig.MinWorldHalfExtent

// CheckWorldSize rejects worlds too small for a wave to spawn clear of
// the ship.
func (g GameConfig) CheckWorldSize() error {
	if g.WorldWidth < MinWorldSize || g.WorldHeight < MinWorldSize {
		return fmt.Errorf("game world must be at least %gx%g, got %gx%g",
			MinWorldSize, MinWorldSize, g.WorldWidth, g.WorldHeight)
	}
	return nil
}

// ApplyEnv overrides network settings from the environment, using the
// variable names the deployment scripts already export.
func (c *Config) ApplyEnv() {
	c.SSH.Host = GetEnv("SSH_HOST", c.SSH.Host)
	c.SSH.Port = GetEnv("SSH_PORT", c.SSH.Port)
	c.SSH.HostKeyPath = GetEnv("SSH_HOST_KEY", c.SSH.HostKeyPath)
	c.Web.Host = GetEnv("WEB_HOST", c.Web.Host)
	c.Web.Port = GetEnv("WEB_PORT", c.Web.Port)
	c.Web.SSHDisplayHost = GetEnv("SSH_DISPLAY_HOST", c.Web.SSHDisplayHost)
}

// Defaults returns the built-in configuration.
func Defaults() *Config {
	return &Config{
		Game: GameConfig{
			InitialAsteroids: 3,
			WorldWidth:       1280,
			WorldHeight:      720,
			Countdown:        3 * time.Second,
			UFOSpawnInterval: 15 * time.Second,
		},
		Storage: StorageConfig{
			Vendor: "tomz197",
			App:    "asteroids",
		},
		Audio: AudioConfig{
			Enabled: true,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		SSH: SSHConfig{
			Host:        "::",
			Port:        "2222",
			HostKeyPath: "/app/keys/host_key",
		},
		Web: WebConfig{
			Host:           "0.0.0.0",
			Port:           "8080",
			SSHDisplayHost: "your-server.com",
		},
	}
}
