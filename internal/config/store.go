package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/oshokin/zspotify-grabber/internal/constants"
)

// Keys exposed through the configuration store.
const (
	// KeyRootPath is the output directory key.
	KeyRootPath = "root_path"
	// KeyDownloadFormat is the selected output format key.
	KeyDownloadFormat = "download_format"
	// KeyDownloadRealTime is the real-time download toggle key.
	KeyDownloadRealTime = "download_real_time"
)

// StoreKeys lists the keys accepted by Store, in display order.
//
//nolint:gochecknoglobals // Immutable list used as a constant.
var StoreKeys = []string{KeyRootPath, KeyDownloadFormat, KeyDownloadRealTime}

var (
	// ErrUnknownKey indicates that the key is not handled by the store.
	ErrUnknownKey = errors.New("unknown configuration key")
	// ErrInvalidValue indicates that the value cannot be stored under the key.
	ErrInvalidValue = errors.New("invalid configuration value")
	// ErrMalformedConfigFile indicates that the file root is not a YAML mapping.
	ErrMalformedConfigFile = errors.New("configuration file root must be a mapping")
)

// Store reads and persists the user-facing settings.
type Store interface {
	// Get returns the current value of key.
	Get(key string) (any, error)
	// Set validates value, applies it to the loaded configuration and saves the file.
	Set(key string, value any) error
}

// FileStore is a Store over a loaded Config and the YAML file it came from.
type FileStore struct {
	cfg *Config
	mu  sync.Mutex
}

// NewStore creates a Store bound to cfg.
func NewStore(cfg *Config) Store {
	return &FileStore{cfg: cfg}
}

// Get returns the current value of key.
func (s *FileStore) Get(key string) (any, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch key {
	case KeyRootPath:
		return s.cfg.RootPath, nil
	case KeyDownloadFormat:
		return s.cfg.DownloadFormat, nil
	case KeyDownloadRealTime:
		return s.cfg.DownloadRealTime, nil
	default:
		return nil, fmt.Errorf("%w: '%s'", ErrUnknownKey, key)
	}
}

// Set validates value, applies it to the loaded configuration and saves the file.
// The in-memory configuration is left untouched when validation or saving fails.
func (s *FileStore) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := *s.cfg

	switch key {
	case KeyRootPath:
		rootPath, err := cast.ToStringE(value)
		if err != nil || rootPath == "" {
			return fmt.Errorf("%w for '%s': %v", ErrInvalidValue, key, value)
		}

		updated.RootPath = filepath.Clean(rootPath)
	case KeyDownloadFormat:
		format, err := cast.ToStringE(value)
		if err != nil {
			return fmt.Errorf("%w for '%s': %v", ErrInvalidValue, key, value)
		}

		if strings.TrimSpace(format) == "" {
			return fmt.Errorf("%w for '%s': empty format", ErrInvalidValue, key)
		}

		if updated.DownloadFormat, err = ParseDownloadFormat(format); err != nil {
			return err
		}
	case KeyDownloadRealTime:
		realTime, err := cast.ToBoolE(value)
		if err != nil {
			return fmt.Errorf("%w for '%s': %v", ErrInvalidValue, key, value)
		}

		updated.DownloadRealTime = realTime
	default:
		return fmt.Errorf("%w: '%s'", ErrUnknownKey, key)
	}

	if err := SaveConfig(&updated, key); err != nil {
		return err
	}

	*s.cfg = updated

	return nil
}

// SaveConfig writes the value of key from cfg into the configuration file
// while preserving the original order, comments and formatting of other entries.
func SaveConfig(cfg *Config, key string) error {
	configFile := cfg.ConfigFilename
	if configFile == "" {
		configFile = DefaultConfigFilename
	}

	valueNode, err := valueNodeForKey(cfg, key)
	if err != nil {
		return err
	}

	var node yaml.Node

	originalContent, err := os.ReadFile(filepath.Clean(configFile))

	switch {
	case err == nil:
		if err = yaml.Unmarshal(originalContent, &node); err != nil {
			return fmt.Errorf("failed to parse YAML: %w", err)
		}
	case os.IsNotExist(err):
		// Start a fresh document.
	default:
		return fmt.Errorf("failed to read config file: %w", err)
	}

	if err = setKeyInNode(&node, key, valueNode); err != nil {
		return err
	}

	newContent, err := yaml.Marshal(&node)
	if err != nil {
		return fmt.Errorf("failed to marshal YAML: %w", err)
	}

	if err = os.WriteFile(configFile, newContent, constants.DefaultFilePermissions); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// valueNodeForKey renders the current value of key as a scalar node.
func valueNodeForKey(cfg *Config, key string) (*yaml.Node, error) {
	switch key {
	case KeyRootPath:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: cfg.RootPath, Style: yaml.DoubleQuotedStyle}, nil
	case KeyDownloadFormat:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: cfg.DownloadFormat, Style: yaml.DoubleQuotedStyle}, nil
	case KeyDownloadRealTime:
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!bool", Value: strconv.FormatBool(cfg.DownloadRealTime)}, nil
	default:
		return nil, fmt.Errorf("%w: '%s'", ErrUnknownKey, key)
	}
}

// setKeyInNode replaces the value of key in the YAML node tree or appends the key.
func setKeyInNode(node *yaml.Node, key string, value *yaml.Node) error {
	// An empty document gets a mapping root.
	if node.Kind == 0 {
		node.Kind = yaml.DocumentNode
	}

	if len(node.Content) == 0 {
		node.Content = []*yaml.Node{{Kind: yaml.MappingNode, Tag: "!!map"}}
	}

	mapNode := node.Content[0]
	if mapNode.Kind != yaml.MappingNode {
		return ErrMalformedConfigFile
	}

	// Key-value pairs are stored as alternating nodes.
	for i := 0; i+1 < len(mapNode.Content); i += 2 {
		if mapNode.Content[i].Value != key {
			continue
		}

		existing := mapNode.Content[i+1]
		existing.Kind = value.Kind
		existing.Tag = value.Tag
		existing.Value = value.Value

		// Keep the user's quoting style for strings.
		if existing.Style == 0 || value.Tag != "!!str" {
			existing.Style = value.Style
		}

		return nil
	}

	mapNode.Content = append(mapNode.Content,
		&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: key},
		value)

	return nil
}
