package config

import (
	"fmt"
	"strings"
	"time"
)

type Config struct {
	Target        TargetConfig        `yaml:"target"`
	HTTP          HTTPConfig          `yaml:"http"`
	Output        OutputConfig        `yaml:"output"`
	Notify        NotifyConfig        `yaml:"notify"`
	Observability ObservabilityConfig `yaml:"observability"`
}

type TargetConfig struct {
	URL           string `yaml:"url"`
	SelectorsFile string `yaml:"selectors_file"`
}

type HTTPConfig struct {
	UserAgent      string `yaml:"user_agent"`
	AcceptLanguage string `yaml:"accept_language"`
	MaxAttempts    int    `yaml:"max_attempts"`
	RetryWaitMS    int    `yaml:"retry_wait_ms"`
	TotalTimeoutMS int    `yaml:"total_timeout_ms"`
}

type OutputConfig struct {
	CSVPath string `yaml:"csv_path"`
}

type NotifyConfig struct {
	TelegramAPIBase string `yaml:"telegram_api_base"`
	SMTPHost        string `yaml:"smtp_host"`
	SMTPPort        int    `yaml:"smtp_port"`
}

type ObservabilityConfig struct {
	LogPath    string `yaml:"log_path"`
	LogLevel   string `yaml:"log_level"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
}

// Validation
func (c *Config) Validate() error {
	if c.Target.URL == "" {
		return fmt.Errorf("target.url is required")
	}
	if !strings.HasPrefix(c.Target.URL, "http") {
		return fmt.Errorf("target.url must be an http(s) URL")
	}
	if c.Target.SelectorsFile == "" {
		return fmt.Errorf("target.selectors_file is required")
	}
	if c.HTTP.UserAgent == "" {
		return fmt.Errorf("http.user_agent is required")
	}
	if c.HTTP.AcceptLanguage == "" {
		return fmt.Errorf("http.accept_language is required")
	}
	if c.HTTP.MaxAttempts <= 0 {
		return fmt.Errorf("http.max_attempts must be > 0")
	}
	if c.HTTP.RetryWaitMS < 0 {
		return fmt.Errorf("http.retry_wait_ms must be >= 0")
	}
	// 0 leaves the client without a total timeout
	if c.HTTP.TotalTimeoutMS < 0 {
		return fmt.Errorf("http.total_timeout_ms must be >= 0")
	}
	if c.Output.CSVPath == "" {
		return fmt.Errorf("output.csv_path is required")
	}
	if c.Notify.TelegramAPIBase == "" {
		return fmt.Errorf("notify.telegram_api_base is required")
	}
	if c.Notify.SMTPHost == "" {
		return fmt.Errorf("notify.smtp_host is required")
	}
	if c.Notify.SMTPPort <= 0 {
		return fmt.Errorf("notify.smtp_port must be > 0")
	}
	if c.Observability.LogPath == "" {
		return fmt.Errorf("observability.log_path is required")
	}
	if c.Observability.LogLevel == "" {
		return fmt.Errorf("observability.log_level is required")
	}
	return nil
}

// Getters
func (c *Config) GetRetryWait() time.Duration {
	return time.Duration(c.HTTP.RetryWaitMS) * time.Millisecond
}

func (c *Config) GetTotalTimeout() time.Duration {
	return time.Duration(c.HTTP.TotalTimeoutMS) * time.Millisecond
}
