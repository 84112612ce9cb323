package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/GustavoCaso/zerobudget/internal/logger"
)

type DBConfig struct {
	Source          string        `yaml:"source" toml:"source"`
	ConnMaxIdleTime time.Duration `yaml:"conn_max_idle_time" toml:"conn_max_idle_time"`
	// SQLite PRAGMA settings
	JournalMode string `yaml:"journal_mode" toml:"journal_mode"`
	Synchronous string `yaml:"synchronous" toml:"synchronous"`
	BusyTimeout int    `yaml:"busy_timeout" toml:"busy_timeout"`
}

type Config struct {
	DB       DBConfig      `yaml:"db" toml:"db"`
	Logger   logger.Config `yaml:"logger" toml:"logger"`
	Addr     string        `yaml:"addr" toml:"addr"`
	Currency string        `yaml:"currency" toml:"currency"`
}

const (
	defaultDBFile      = "zerobudget.db"
	defaultLogLevel    = logger.LevelInfo
	defaultLogFormat   = logger.FormatText
	defaultLogOutput   = "stdout"
	defaultAddr        = ":8080"
	defaultCurrency    = "₹"
	defaultBusyTimeout = 5000
)

func (c *Config) setDefaults() {
	if c.DB.Source == "" {
		c.DB.Source = defaultDBFile
	}

	if c.DB.BusyTimeout == 0 {
		c.DB.BusyTimeout = defaultBusyTimeout
	}

	if c.Logger.Level == "" {
		c.Logger.Level = defaultLogLevel
	}

	if c.Logger.Format == "" {
		c.Logger.Format = defaultLogFormat
	}

	if c.Logger.Output == "" {
		c.Logger.Output = defaultLogOutput
	}

	if c.Addr == "" {
		c.Addr = defaultAddr
	}

	if c.Currency == "" {
		c.Currency = defaultCurrency
	}
}

func (c *Config) parseEnv() error {
	if db := os.Getenv("ZEROBUDGET_DB"); db != "" {
		c.DB.Source = db
	}

	if journal := os.Getenv("ZEROBUDGET_DB_JOURNAL_MODE"); journal != "" {
		c.DB.JournalMode = journal
	}

	if timeout := os.Getenv("ZEROBUDGET_DB_BUSY_TIMEOUT"); timeout != "" {
		value, err := strconv.Atoi(timeout)
		if err != nil {
			return fmt.Errorf("invalid ZEROBUDGET_DB_BUSY_TIMEOUT %q: %w", timeout, err)
		}
		c.DB.BusyTimeout = value
	}

	if level := os.Getenv("ZEROBUDGET_LOG_LEVEL"); level != "" {
		c.Logger.Level = logger.Level(level)
	}

	if format := os.Getenv("ZEROBUDGET_LOG_FORMAT"); format != "" {
		c.Logger.Format = logger.Format(format)
	}

	if output := os.Getenv("ZEROBUDGET_LOG_OUTPUT"); output != "" {
		c.Logger.Output = output
	}

	if addr := os.Getenv("ZEROBUDGET_ADDR"); addr != "" {
		c.Addr = addr
	}

	if currency := os.Getenv("ZEROBUDGET_CURRENCY"); currency != "" {
		c.Currency = currency
	}

	return nil
}

func (c *Config) parseFile(file string) error {
	content, err := os.ReadFile(file)
	if err != nil {
		return err
	}

	if filepath.Ext(file) == ".toml" {
		return toml.Unmarshal(content, c)
	}

	return yaml.Unmarshal(content, c)
}

// Parse reads the configuration file, if present, and applies environment
// overrides and defaults on top of it.
func Parse(file string) (*Config, error) {
	conf := &Config{}

	if file != "" {
		err := conf.parseFile(file)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to read config %s: %w", file, err)
		}
	}

	if err := conf.parseEnv(); err != nil {
		return nil, err
	}

	conf.setDefaults()

	return conf, nil
}
