package config

import (
	"time"
)

// Config is the root application configuration.
type Config struct {
	Database DatabaseConfig `yaml:"database"`
	Bee      BeeConfig      `yaml:"bee"`
	Source   SourceConfig   `yaml:"source"`
	Log      LogConfig      `yaml:"log"`
}

// DatabaseConfig holds PostgreSQL connection settings.
type DatabaseConfig struct {
	DSN             string        `yaml:"dsn"                env:"DATABASE_DSN"                env-required:"true"`
	MaxConns        int32         `yaml:"max_conns"          env:"DATABASE_MAX_CONNS"          env-default:"25"`
	MinConns        int32         `yaml:"min_conns"          env:"DATABASE_MIN_CONNS"          env-default:"5"`
	MaxConnLifetime time.Duration `yaml:"max_conn_lifetime"  env:"DATABASE_MAX_CONN_LIFETIME"  env-default:"1h"`
	MaxConnIdleTime time.Duration `yaml:"max_conn_idle_time" env:"DATABASE_MAX_CONN_IDLE_TIME" env-default:"30m"`
}

// BeeConfig holds puzzle engine parameters.
type BeeConfig struct {
	// PangramBonus is the flat bonus a pangram earns on top of its length
	// score. The published value is 7 but it is a domain parameter, so it
	// stays tunable.
	PangramBonus int `yaml:"pangram_bonus" env:"BEE_PANGRAM_BONUS" env-default:"7"`
}

// SourceConfig holds puzzle source (NYT fetch) settings.
type SourceConfig struct {
	URL          string        `yaml:"url"           env:"SOURCE_URL"           env-default:"https://www.nytimes.com/puzzles/spelling-bee"`
	FetchTimeout time.Duration `yaml:"fetch_timeout" env:"SOURCE_FETCH_TIMEOUT" env-default:"10s"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}
