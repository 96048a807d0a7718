package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/osse101/HerbRun_Go/internal/domain"
	"github.com/osse101/HerbRun_Go/internal/utils"
	"github.com/osse101/HerbRun_Go/internal/validation"
)

// UserConfig is the CLI's per-user settings file
type UserConfig struct {
	// DefaultPlayer is used by commands that take a player name when none is
	// given.
	DefaultPlayer string        `json:"default_player,omitempty" yaml:"default_player,omitempty" validate:"omitempty,osrsname"`
	Farming       FarmingConfig `json:"farming" yaml:"farming"`
}

// FarmingConfig holds the farming calculator settings
type FarmingConfig struct {
	Herbs domain.HerbConfig `json:"herbs" yaml:"herbs"`
}

// Player returns name when given, otherwise the default player.
func (c *UserConfig) Player(name string) (string, error) {
	if name = strings.TrimSpace(name); name != "" {
		return name, nil
	}
	if c.DefaultPlayer == "" {
		return "", domain.ErrNoPlayer
	}
	return c.DefaultPlayer, nil
}

// UserConfigPath returns where the user config file lives: $HERBRUN_CONFIG
// when set, otherwise herbrun/herbrun.json in the OS config directory.
func UserConfigPath() (string, error) {
	if p := os.Getenv(EnvUserConfigPath); p != "" {
		return p, nil
	}
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("failed to locate config directory: %w", err)
	}
	return filepath.Join(dir, UserConfigDirName, UserConfigFileName), nil
}

// UserConfigStore loads and saves a UserConfig at a fixed path. The format
// follows the file extension: .yaml and .yml are YAML, anything else JSON.
type UserConfigStore struct {
	path   string
	schema validation.SchemaValidator
}

// NewUserConfigStore creates a store for the file at path
func NewUserConfigStore(path string) *UserConfigStore {
	return &UserConfigStore{
		path:   path,
		schema: validation.NewSchemaValidator(),
	}
}

// Path returns the file the store reads and writes
func (s *UserConfigStore) Path() string {
	return s.path
}

func (s *UserConfigStore) isYAML() bool {
	return utils.IsYAML(s.path)
}

// Load reads the config file. A missing file yields the defaults; missing
// keys keep their defaults.
func (s *UserConfigStore) Load() (*UserConfig, error) {
	cfg := &UserConfig{}

	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("error loading config from file %s: %w", s.path, err)
	}

	if err := s.decode(data, cfg); err != nil {
		return nil, fmt.Errorf("error loading config from file %s: %w", s.path, err)
	}
	return cfg, nil
}

func (s *UserConfigStore) decode(data []byte, cfg *UserConfig) error {
	if s.isYAML() {
		var doc any
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
		}
		if doc == nil {
			return nil
		}
		if err := s.schema.ValidateValue(doc, validation.SchemaUserConfig); err != nil {
			return fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
		}
	} else {
		if err := s.schema.ValidateBytes(data, validation.SchemaUserConfig); err != nil {
			return fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
		}
		if err := json.Unmarshal(data, cfg); err != nil {
			return fmt.Errorf("%w: %w", domain.ErrInvalidConfig, err)
		}
	}
	return validation.Error(validation.Get().ValidateStruct(cfg))
}

// Save replaces the config file with cfg, creating its directory.
func (s *UserConfigStore) Save(cfg *UserConfig) error {
	if err := validation.Error(validation.Get().ValidateStruct(cfg)); err != nil {
		return err
	}
	if err := utils.WriteDocument(s.path, cfg); err != nil {
		return fmt.Errorf("error writing config to file %s: %w", s.path, err)
	}
	return nil
}

// Get returns the value at a dotted key such as "default_player" or
// "farming.herbs.compost", encoded as indented JSON. An empty key returns the
// whole config.
func (c *UserConfig) Get(key string) (string, error) {
	tree, err := c.tree()
	if err != nil {
		return "", err
	}

	var value any = tree
	if key != "" {
		parent, last, err := lookupParent(tree, key)
		if err != nil {
			return "", err
		}
		v, ok := parent[last]
		if !ok {
			return "", fmt.Errorf("%w: %s", domain.ErrUnknownConfigKey, key)
		}
		value = v
	}

	if s, ok := value.(string); ok {
		return s, nil
	}
	out, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return "", err
	}
	return string(out), nil
}

// Set assigns raw to the dotted key and reports whether anything changed.
// Booleans take true/false, patch lists take comma-separated names, and enum
// fields take any accepted name. The receiver is left untouched on error.
func (c *UserConfig) Set(key, raw string) (bool, error) {
	tree, err := c.tree()
	if err != nil {
		return false, err
	}
	parent, last, err := lookupParent(tree, key)
	if err != nil {
		return false, err
	}
	current, ok := parent[last]
	if !ok {
		return false, fmt.Errorf("%w: %s", domain.ErrUnknownConfigKey, key)
	}

	switch current.(type) {
	case map[string]any:
		return false, fmt.Errorf("%w: %s is a section, set one of its keys", domain.ErrUnknownConfigKey, key)
	case bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return false, fmt.Errorf("%w: %s expects true or false, got %q", domain.ErrInvalidConfig, key, raw)
		}
		parent[last] = b
	case []any, nil:
		var items []any
		for _, part := range strings.Split(raw, ",") {
			if part = strings.TrimSpace(part); part != "" {
				items = append(items, part)
			}
		}
		parent[last] = items
	default:
		parent[last] = raw
	}

	data, err := json.Marshal(tree)
	if err != nil {
		return false, err
	}
	var next UserConfig
	if err := json.Unmarshal(data, &next); err != nil {
		return false, fmt.Errorf("%w: %s: %w", domain.ErrInvalidConfig, key, err)
	}
	if err := validation.Error(validation.Get().ValidateStruct(&next)); err != nil {
		return false, err
	}

	before, err := json.Marshal(c)
	if err != nil {
		return false, err
	}
	after, err := json.Marshal(&next)
	if err != nil {
		return false, err
	}
	*c = next
	return !bytes.Equal(before, after), nil
}

// tree returns the config as generic JSON values, with every key present.
func (c *UserConfig) tree() (map[string]any, error) {
	data, err := json.Marshal(c)
	if err != nil {
		return nil, err
	}
	var tree map[string]any
	if err := json.Unmarshal(data, &tree); err != nil {
		return nil, err
	}
	if _, ok := tree["default_player"]; !ok {
		tree["default_player"] = ""
	}
	return tree, nil
}

// lookupParent walks all but the last segment of key.
func lookupParent(tree map[string]any, key string) (map[string]any, string, error) {
	parts := strings.Split(key, ".")
	node := tree
	for _, part := range parts[:len(parts)-1] {
		next, ok := node[part].(map[string]any)
		if !ok {
			return nil, "", fmt.Errorf("%w: %s", domain.ErrUnknownConfigKey, key)
		}
		node = next
	}
	return node, parts[len(parts)-1], nil
}
