// Package config provides configuration loading for the trader-pulse service.
// Configuration comes from a YAML file with environment variable overrides;
// the analysis engine itself only ever sees plain parameters.
package config

import "time"

// Default configuration values.
const (
	defaultServiceName        = "trader-pulse"
	defaultServiceVersion     = "1.0.0"
	defaultServicePort        = 8074
	defaultConcurrency        = 10
	defaultMinPosts           = 3
	defaultBatchMinPosts      = 5
	defaultCandidateThreshold = 40
	defaultTopN               = 100
	defaultDBHost             = "localhost"
	defaultDBPort             = 5432
	defaultDBUser             = "postgres"
	defaultDBName             = "traderpulse"
	defaultDBSSLMode          = "disable"
	defaultESURL              = "http://localhost:9200"
	defaultESIndex            = "trader_profiles"
	defaultESTimeoutSec       = 30
	defaultLogLevel           = "info"
	defaultLogFormat          = "json"
)

// Config holds all configuration for the trader-pulse service.
type Config struct {
	Service       ServiceConfig       `yaml:"service"`
	Analysis      AnalysisConfig      `yaml:"analysis"`
	Database      DatabaseConfig      `yaml:"database"`
	Elasticsearch ElasticsearchConfig `yaml:"elasticsearch"`
	Logging       LoggingConfig       `yaml:"logging"`
}

// ServiceConfig holds service-level configuration.
type ServiceConfig struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Port        int    `env:"TRADER_PULSE_PORT"        yaml:"port"`
	Debug       bool   `env:"APP_DEBUG"                yaml:"debug"`
	Concurrency int    `env:"TRADER_PULSE_CONCURRENCY" yaml:"concurrency"`
}

// AnalysisConfig holds the knobs passed through to the scoring engine.
type AnalysisConfig struct {
	// MinPosts is the minimum post count for single-user profiling.
	MinPosts int `yaml:"min_posts"`
	// BatchMinPosts is the minimum post count when profiling a whole dataset.
	BatchMinPosts int `yaml:"batch_min_posts"`
	// CandidateThreshold is the minimum fast-twitch score for a user to be
	// reported as an in-app trading candidate.
	CandidateThreshold float64 `yaml:"candidate_threshold"`
	// TopN truncates ranked reporting output.
	TopN int `yaml:"top_n"`
}

// DatabaseConfig holds PostgreSQL configuration for profile persistence.
type DatabaseConfig struct {
	Enabled         bool          `env:"POSTGRES_ENABLED"  yaml:"enabled"`
	Host            string        `env:"POSTGRES_HOST"     yaml:"host"`
	Port            int           `env:"POSTGRES_PORT"     yaml:"port"`
	User            string        `env:"POSTGRES_USER"     yaml:"user"`
	Password        string        `env:"POSTGRES_PASSWORD" yaml:"password"`
	Database        string        `env:"POSTGRES_DB"       yaml:"database"`
	SSLMode         string        `env:"POSTGRES_SSLMODE"  yaml:"sslmode"`
	MaxConnections  int           `yaml:"max_connections"`
	MaxIdleConns    int           `yaml:"max_idle_connections"`
	ConnMaxLifetime time.Duration `yaml:"connection_max_lifetime"`
}

// ElasticsearchConfig holds optional Elasticsearch export configuration.
type ElasticsearchConfig struct {
	Enabled bool          `env:"ELASTICSEARCH_ENABLED" yaml:"enabled"`
	URL     string        `env:"ELASTICSEARCH_URL"     yaml:"url"`
	Index   string        `yaml:"index"`
	Timeout time.Duration `yaml:"timeout"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level  string `env:"LOG_LEVEL"  yaml:"level"`
	Format string `env:"LOG_FORMAT" yaml:"format"`
}

// Load loads configuration from the specified path, applies defaults, then
// re-applies environment overrides (env always wins).
func Load(path string) (*Config, error) {
	var cfg Config
	if err := load(path, &cfg); err != nil {
		return nil, err
	}
	cfg.SetDefaults()
	applyEnvOverrides(&cfg)
	return &cfg, nil
}

// SetDefaults applies default values to the config.
func (c *Config) SetDefaults() {
	setServiceDefaults(&c.Service)
	setAnalysisDefaults(&c.Analysis)
	setDatabaseDefaults(&c.Database)
	setElasticsearchDefaults(&c.Elasticsearch)
	setLoggingDefaults(&c.Logging)
}

func setServiceDefaults(s *ServiceConfig) {
	if s.Name == "" {
		s.Name = defaultServiceName
	}
	if s.Version == "" {
		s.Version = defaultServiceVersion
	}
	if s.Port == 0 {
		s.Port = defaultServicePort
	}
	if s.Concurrency == 0 {
		s.Concurrency = defaultConcurrency
	}
}

func setAnalysisDefaults(a *AnalysisConfig) {
	if a.MinPosts == 0 {
		a.MinPosts = defaultMinPosts
	}
	if a.BatchMinPosts == 0 {
		a.BatchMinPosts = defaultBatchMinPosts
	}
	if a.CandidateThreshold == 0 {
		a.CandidateThreshold = defaultCandidateThreshold
	}
	if a.TopN == 0 {
		a.TopN = defaultTopN
	}
}

func setDatabaseDefaults(d *DatabaseConfig) {
	if d.Host == "" {
		d.Host = defaultDBHost
	}
	if d.Port == 0 {
		d.Port = defaultDBPort
	}
	if d.User == "" {
		d.User = defaultDBUser
	}
	if d.Database == "" {
		d.Database = defaultDBName
	}
	if d.SSLMode == "" {
		d.SSLMode = defaultDBSSLMode
	}
	if d.MaxConnections == 0 {
		d.MaxConnections = 25
	}
	if d.MaxIdleConns == 0 {
		d.MaxIdleConns = 5
	}
	if d.ConnMaxLifetime == 0 {
		d.ConnMaxLifetime = time.Hour
	}
}

func setElasticsearchDefaults(e *ElasticsearchConfig) {
	if e.URL == "" {
		e.URL = defaultESURL
	}
	if e.Index == "" {
		e.Index = defaultESIndex
	}
	if e.Timeout == 0 {
		e.Timeout = defaultESTimeoutSec * time.Second
	}
}

func setLoggingDefaults(l *LoggingConfig) {
	if l.Level == "" {
		l.Level = defaultLogLevel
	}
	if l.Format == "" {
		l.Format = defaultLogFormat
	}
}
