package config

import (
	"fmt"
	"net"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile  string `yaml:"log-file" env:"LOG_FILE"`
	HTTPPort string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	Redis    Redis  `yaml:"redis"`
	Render   Render `yaml:"render"`
}

type Redis struct {
	Host string `yaml:"host" env:"REDIS_HOST" env-default:"localhost"`
	Port string `yaml:"port" env:"REDIS_PORT" env-default:"6379"`
}

type Render struct {
	FontPath       string      `yaml:"font-path" env:"FONT_PATH" env-default:"fonts/SUITE-ExtraBold.otf"`
	WatchFont      bool        `yaml:"watch-font" env:"WATCH_FONT" env-default:"false"`
	OutputDir      string      `yaml:"output-dir" env:"OUTPUT_DIR" env-default:"boards"`
	PointSize      float64     `yaml:"point-size" env:"POINT_SIZE" env-default:"50"`
	StartingHealth float64     `yaml:"starting-health" env:"STARTING_HEALTH" env-default:"123.5764846945"`
	MissingGlyph   string      `yaml:"missing-glyph" env:"MISSING_GLYPH" env-default:"placeholder"`
	Calibration    Calibration `yaml:"calibration"`
	Palette        Palette     `yaml:"palette"`
}

// Calibration - scale factors applied to glyph advances. They are tuned per font and backend.
type Calibration struct {
	UnitsPerEmReference float64 `yaml:"units-per-em-reference" env:"CALIBRATION_UNITS_PER_EM_REFERENCE" env-default:"24"`
	DPIReference        float64 `yaml:"dpi-reference" env:"CALIBRATION_DPI_REFERENCE" env-default:"96"`
	AdjustmentFactor    float64 `yaml:"adjustment-factor" env:"CALIBRATION_ADJUSTMENT_FACTOR" env-default:"2.2"`
}

type Palette struct {
	EvenCell     string `yaml:"even-cell" env:"PALETTE_EVEN_CELL" env-default:"#DDDDDD"`
	OddCell      string `yaml:"odd-cell" env:"PALETTE_ODD_CELL" env-default:"#BBBBBB"`
	OccupiedCell string `yaml:"occupied-cell" env:"PALETTE_OCCUPIED_CELL" env-default:"#3248A8"`
	NameText     string `yaml:"name-text" env:"PALETTE_NAME_TEXT" env-default:"#DDDDDD"`
	StatText     string `yaml:"stat-text" env:"PALETTE_STAT_TEXT" env-default:"#C74736"`
}

// Load - reads the config file at path, then applies environment overrides.
func Load(path string) (*Config, error) {
	config := &Config{}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("unable to load config file: %w", err)
	}

	return config, nil
}

// MustLoad - load all configurations in config.yml file.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}

	return config
}

func (that *Redis) GetRedisAddr() string {
	if that.Host == "" || that.Port == "" {
		return ""
	}

	return net.JoinHostPort(that.Host, that.Port)
}
