package config

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/spf13/viper"
	"go.uber.org/zap/zapcore"

	"github.com/oshokin/zspotify-grabber/internal/logger"
	"github.com/oshokin/zspotify-grabber/internal/utils"
)

// Config holds all configuration settings.
type Config struct {
	// AuthToken is the authentication token for catalog API access.
	AuthToken string `mapstructure:"auth_token"`
	// BaseURL is the catalog API base URL.
	BaseURL string `mapstructure:"base_url"`
	// RootPath is the directory where downloaded items are saved.
	RootPath string `mapstructure:"root_path"`
	// DownloadFormat is one of Formats.
	DownloadFormat string `mapstructure:"download_format"`
	// DownloadRealTime paces downloads at the nominal bitrate of the selected format.
	DownloadRealTime bool `mapstructure:"download_real_time"`
	// ReplaceTracks indicates whether to replace existing track files.
	ReplaceTracks bool `mapstructure:"replace_tracks"`
	// LogLevel specifies the logging verbosity level.
	LogLevel string `mapstructure:"log_level"`
	// DownloadSpeedLimit sets the maximum download speed per second (e.g., "1MB", "500KB").
	DownloadSpeedLimit string `mapstructure:"download_speed_limit"`
	// ConfigFilename is the file the configuration was loaded from (set by LoadConfig).
	ConfigFilename string
	// ParsedDownloadSpeedLimit is the parsed download speed limit in bytes per second.
	ParsedDownloadSpeedLimit int64
	// ParsedLogLevel is the parsed zap log level.
	ParsedLogLevel zapcore.Level
}

const (
	// DefaultBaseURL is the catalog API used when base_url is not configured.
	DefaultBaseURL = "https://api.zspotify.local"

	// DefaultConfigFilename is the default name of the configuration file.
	DefaultConfigFilename = ".zspotify-grabber.yaml"

	// DefaultRootPath is the output directory used when root_path is not configured.
	DefaultRootPath = "ZSpotify Music"
)

// Download formats offered to the user, in display order.
// The first one is the fallback for an unset download_format.
const (
	FormatMP3High = "mp3-320"
	FormatMP3Mid  = "mp3-128"
	FormatFLAC    = "flac"
)

// Formats lists the supported download formats.
//
//nolint:gochecknoglobals // Immutable list used as a constant.
var Formats = []string{FormatMP3High, FormatMP3Mid, FormatFLAC}

// Static error definitions for better error handling.
var (
	// ErrEmptyAuthToken indicates that the authentication token is missing.
	ErrEmptyAuthToken = errors.New("authentication token cannot be empty")
	// ErrInvalidBaseURL indicates that base_url is not an absolute URL.
	ErrInvalidBaseURL = errors.New("base_url must be an absolute http(s) URL")
	// ErrInvalidDownloadFormat indicates that download_format is not one of Formats.
	ErrInvalidDownloadFormat = errors.New("invalid download_format")
	// ErrUnknownLogLevel indicates that the log level is not recognized.
	ErrUnknownLogLevel = errors.New("unknown log level")
)

// LoadConfig loads configuration settings from a YAML file.
func LoadConfig(configFilename string) (*Config, error) {
	if configFilename == "" {
		configFilename = DefaultConfigFilename
	}

	v := viper.New()
	v.SetConfigFile(configFilename)

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config from file: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	cfg.ConfigFilename = v.ConfigFileUsed()

	return &cfg, nil
}

// ValidateConfig checks the configuration for validity and sets derived fields.
func ValidateConfig(cfg *Config) error {
	var (
		downloadSpeedLimit       = strings.TrimSpace(cfg.DownloadSpeedLimit)
		parsedDownloadSpeedLimit uint64
		err                      error
	)

	if strings.TrimSpace(cfg.AuthToken) == "" {
		return ErrEmptyAuthToken
	}

	if strings.TrimSpace(cfg.BaseURL) == "" {
		cfg.BaseURL = DefaultBaseURL
	}

	baseURL, err := url.Parse(cfg.BaseURL)
	if err != nil || (baseURL.Scheme != "http" && baseURL.Scheme != "https") || baseURL.Host == "" {
		return fmt.Errorf("%w: '%s'", ErrInvalidBaseURL, cfg.BaseURL)
	}

	if strings.TrimSpace(cfg.RootPath) == "" {
		cfg.RootPath = DefaultRootPath
	}

	if err = ValidateDownloadFormat(cfg); err != nil {
		return err
	}

	parsedLogLevel, isLogLevelCorrect := logger.ParseLogLevel(cfg.LogLevel)
	if !isLogLevelCorrect {
		return fmt.Errorf("%w: '%s'", ErrUnknownLogLevel, cfg.LogLevel)
	}

	cfg.ParsedLogLevel = parsedLogLevel

	if downloadSpeedLimit != "" && downloadSpeedLimit != "0" {
		parsedDownloadSpeedLimit, err = humanize.ParseBytes(downloadSpeedLimit)
		if err != nil {
			return fmt.Errorf("failed to parse download speed limit: %w", err)
		}
	}

	cfg.ParsedDownloadSpeedLimit = utils.SafeUint64ToInt64(parsedDownloadSpeedLimit)

	return nil
}

// ParseDownloadFormat normalizes value and checks it against Formats.
func ParseDownloadFormat(value string) (string, error) {
	format := strings.ToLower(strings.TrimSpace(value))
	if !slices.Contains(Formats, format) {
		return "", fmt.Errorf("%w: '%s', expected one of %s",
			ErrInvalidDownloadFormat, value, strings.Join(Formats, ", "))
	}

	return format, nil
}

// ValidateDownloadFormat normalizes download_format.
// A missing or unknown value falls back to the first entry of Formats,
// and the fallback is saved to the file the configuration was loaded from.
func ValidateDownloadFormat(cfg *Config) error {
	format, err := ParseDownloadFormat(cfg.DownloadFormat)
	if err == nil {
		cfg.DownloadFormat = format

		return nil
	}

	logger.Warnf(context.Background(), "Download format '%s' is not supported, falling back to '%s'",
		cfg.DownloadFormat, Formats[0])

	cfg.DownloadFormat = Formats[0]

	if cfg.ConfigFilename == "" {
		return nil
	}

	if err = SaveConfig(cfg, KeyDownloadFormat); err != nil {
		return fmt.Errorf("failed to save fallback download_format: %w", err)
	}

	return nil
}
