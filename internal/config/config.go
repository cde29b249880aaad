// Package config provides configuration loading and validation for the CLI.
package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/jonathan/resume-pdf/internal/compose"
	"github.com/jonathan/resume-pdf/internal/layout"
	"github.com/jonathan/resume-pdf/internal/logging"
	"github.com/jonathan/resume-pdf/internal/sink"
	"github.com/jonathan/resume-pdf/internal/templates"
)

// EnvPrefix prefixes environment overrides, e.g. RESUME_PDF_THEME
const EnvPrefix = "RESUME_PDF"

// Template store backends
const (
	StoreMemory   = "memory"
	StoreRedis    = "redis"
	StorePostgres = "postgres"
)

// Document sink backends
const (
	SinkFile = "file"
	SinkS3   = "s3"
)

// Config represents the CLI configuration, loaded from a JSON file and
// RESUME_PDF_* environment variables. CLI flags take precedence over both.
type Config struct {
	// Document
	Template  string  `json:"template,omitempty" mapstructure:"template"`     // Template name in the store
	Theme     string  `json:"theme,omitempty" mapstructure:"theme"`           // Theme name within the template
	PageSize  string  `json:"page_size,omitempty" mapstructure:"page_size"`   // letter or a4
	Columns   int     `json:"columns,omitempty" mapstructure:"columns"`       // 1 or 2
	Margin    float64 `json:"margin,omitempty" mapstructure:"margin"`         // Uniform margin in points
	ColumnGap float64 `json:"column_gap,omitempty" mapstructure:"column_gap"` // Gap between columns in points

	// Composition
	SkillsMode        string `json:"skills_mode,omitempty" mapstructure:"skills_mode"`           // bullets or table
	SkillColumns      int    `json:"skill_columns,omitempty" mapstructure:"skill_columns"`       // Skills table columns
	BulletPoints      bool   `json:"bullet_points" mapstructure:"bullet_points"`                 // Render achievements as bullets
	LineAfterSections bool   `json:"line_after_sections" mapstructure:"line_after_sections"`     // Rule under each section
	AutoCreate        bool   `json:"auto_create_templates" mapstructure:"auto_create_templates"` // Create missing templates
	Concurrency       int    `json:"concurrency,omitempty" mapstructure:"concurrency"`           // Batch worker limit
	OutputDir         string `json:"output_dir,omitempty" mapstructure:"output_dir"`             // File sink directory

	// Backends
	Store       string         `json:"store,omitempty" mapstructure:"store"`               // memory, redis or postgres
	Sink        string         `json:"sink,omitempty" mapstructure:"sink"`                 // file or s3
	DatabaseURL string         `json:"database_url,omitempty" mapstructure:"database_url"` // PostgreSQL connection URL
	Redis       RedisConfig    `json:"redis" mapstructure:"redis"`
	S3          S3Config       `json:"s3" mapstructure:"s3"`
	Log         logging.Config `json:"log" mapstructure:"log"`
}

// RedisConfig configures the Redis template store
type RedisConfig struct {
	Addr      string `json:"addr,omitempty" mapstructure:"addr"`
	Password  string `json:"password,omitempty" mapstructure:"password"`
	DB        int    `json:"db,omitempty" mapstructure:"db"`
	KeyPrefix string `json:"key_prefix,omitempty" mapstructure:"key_prefix"`
}

// S3Config configures the S3 document sink
type S3Config struct {
	Bucket       string `json:"bucket,omitempty" mapstructure:"bucket"`
	Region       string `json:"region,omitempty" mapstructure:"region"`
	Endpoint     string `json:"endpoint,omitempty" mapstructure:"endpoint"`
	AccessKey    string `json:"access_key,omitempty" mapstructure:"access_key"`
	SecretKey    string `json:"secret_key,omitempty" mapstructure:"secret_key"`
	UsePathStyle bool   `json:"use_path_style,omitempty" mapstructure:"use_path_style"`
	Prefix       string `json:"prefix,omitempty" mapstructure:"prefix"`
}

// Default returns the built-in configuration
func Default() Config {
	return Config{
		Template:          templates.DefaultTemplate,
		Theme:             templates.DefaultTheme,
		PageSize:          layout.Letter.Name,
		Columns:           1,
		Margin:            layout.DefaultMargin,
		ColumnGap:         layout.DefaultColumnGap,
		SkillsMode:        string(compose.SkillsBullets),
		SkillColumns:      compose.DefaultSkillColumns,
		BulletPoints:      true,
		LineAfterSections: true,
		AutoCreate:        true,
		Concurrency:       4,
		OutputDir:         ".",
		Store:             StoreMemory,
		Sink:              SinkFile,
		Redis:             RedisConfig{KeyPrefix: templates.DefaultRedisKeyPrefix},
		S3:                S3Config{Region: "us-east-1"},
		Log:               logging.DefaultConfig(),
	}
}

// LoadConfig loads configuration from a JSON file layered over the defaults.
// Priority (highest to lowest):
// 1. Environment variables with RESUME_PDF_ prefix (e.g., RESUME_PDF_REDIS_ADDR)
// 2. The config file, if path is non-empty
// 3. Built-in defaults
func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	setDefaults(v, Default())

	if path != "" {
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		v.SetConfigFile(path)
		v.SetConfigType("json")
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to parse config JSON: %w", err)
		}
	}

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper, d Config) {
	v.SetDefault("template", d.Template)
	v.SetDefault("theme", d.Theme)
	v.SetDefault("page_size", d.PageSize)
	v.SetDefault("columns", d.Columns)
	v.SetDefault("margin", d.Margin)
	v.SetDefault("column_gap", d.ColumnGap)
	v.SetDefault("skills_mode", d.SkillsMode)
	v.SetDefault("skill_columns", d.SkillColumns)
	v.SetDefault("bullet_points", d.BulletPoints)
	v.SetDefault("line_after_sections", d.LineAfterSections)
	v.SetDefault("auto_create_templates", d.AutoCreate)
	v.SetDefault("concurrency", d.Concurrency)
	v.SetDefault("output_dir", d.OutputDir)
	v.SetDefault("store", d.Store)
	v.SetDefault("sink", d.Sink)
	v.SetDefault("database_url", d.DatabaseURL)

	v.SetDefault("redis.addr", d.Redis.Addr)
	v.SetDefault("redis.password", d.Redis.Password)
	v.SetDefault("redis.db", d.Redis.DB)
	v.SetDefault("redis.key_prefix", d.Redis.KeyPrefix)

	v.SetDefault("s3.bucket", d.S3.Bucket)
	v.SetDefault("s3.region", d.S3.Region)
	v.SetDefault("s3.endpoint", d.S3.Endpoint)
	v.SetDefault("s3.access_key", d.S3.AccessKey)
	v.SetDefault("s3.secret_key", d.S3.SecretKey)
	v.SetDefault("s3.use_path_style", d.S3.UsePathStyle)
	v.SetDefault("s3.prefix", d.S3.Prefix)

	v.SetDefault("log.level", d.Log.Level)
	v.SetDefault("log.format", d.Log.Format)
	v.SetDefault("log.output", d.Log.Output)
	v.SetDefault("log.time_format", d.Log.TimeFormat)
}

// Validate checks that the configuration has valid values
func (c *Config) Validate() error {
	if _, err := layout.ParsePageSize(c.PageSize); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if c.Columns != 1 && c.Columns != 2 {
		return fmt.Errorf("config error: 'columns' must be 1 or 2, got %d", c.Columns)
	}
	if c.Margin < 0 || c.ColumnGap < 0 {
		return fmt.Errorf("config error: 'margin' and 'column_gap' must be non-negative")
	}
	if _, err := c.ParsedSkillsMode(); err != nil {
		return err
	}
	if c.SkillColumns < 0 {
		return fmt.Errorf("config error: 'skill_columns' must be non-negative")
	}
	if c.Concurrency < 0 {
		return fmt.Errorf("config error: 'concurrency' must be non-negative")
	}

	switch c.Store {
	case "", StoreMemory:
	case StoreRedis:
		if c.Redis.Addr == "" {
			return fmt.Errorf("config error: 'redis.addr' is required for the redis store")
		}
	case StorePostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("config error: 'database_url' is required for the postgres store")
		}
	default:
		return fmt.Errorf("config error: unknown store %q", c.Store)
	}

	switch c.Sink {
	case "", SinkFile:
	case SinkS3:
		if c.S3.Bucket == "" {
			return fmt.Errorf("config error: 's3.bucket' is required for the s3 sink")
		}
	default:
		return fmt.Errorf("config error: unknown sink %q", c.Sink)
	}

	return nil
}

// ParsedSkillsMode returns the skills mode as a compose.SkillsMode
func (c *Config) ParsedSkillsMode() (compose.SkillsMode, error) {
	switch mode := compose.SkillsMode(strings.ToLower(c.SkillsMode)); mode {
	case "":
		return compose.SkillsBullets, nil
	case compose.SkillsBullets, compose.SkillsTable:
		return mode, nil
	default:
		return "", fmt.Errorf("config error: unknown skills mode %q (expected bullets or table)", c.SkillsMode)
	}
}

// RedisStoreConfig converts the Redis section for templates.NewRedisStore
func (c *Config) RedisStoreConfig() templates.RedisConfig {
	return templates.RedisConfig{
		Addr:      c.Redis.Addr,
		Password:  c.Redis.Password,
		DB:        c.Redis.DB,
		KeyPrefix: c.Redis.KeyPrefix,
	}
}

// S3SinkConfig converts the S3 section for sink.NewS3Sink
func (c *Config) S3SinkConfig() sink.S3Config {
	return sink.S3Config{
		Bucket:       c.S3.Bucket,
		Region:       c.S3.Region,
		Endpoint:     c.S3.Endpoint,
		AccessKey:    c.S3.AccessKey,
		SecretKey:    c.S3.SecretKey,
		UsePathStyle: c.S3.UsePathStyle,
		Prefix:       c.S3.Prefix,
	}
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Template == "" {
		result.Template = defaults.Template
	}
	if result.Theme == "" {
		result.Theme = defaults.Theme
	}
	if result.PageSize == "" {
		result.PageSize = defaults.PageSize
	}
	if result.SkillsMode == "" {
		result.SkillsMode = defaults.SkillsMode
	}
	if result.OutputDir == "" {
		result.OutputDir = defaults.OutputDir
	}
	if result.Store == "" {
		result.Store = defaults.Store
	}
	if result.Sink == "" {
		result.Sink = defaults.Sink
	}
	if result.DatabaseURL == "" {
		result.DatabaseURL = defaults.DatabaseURL
	}

	// Numeric fields: use default if zero
	if result.Columns == 0 {
		result.Columns = defaults.Columns
	}
	if result.Margin == 0 {
		result.Margin = defaults.Margin
	}
	if result.ColumnGap == 0 {
		result.ColumnGap = defaults.ColumnGap
	}
	if result.SkillColumns == 0 {
		result.SkillColumns = defaults.SkillColumns
	}
	if result.Concurrency == 0 {
		result.Concurrency = defaults.Concurrency
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
