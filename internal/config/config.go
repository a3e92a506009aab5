package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"

	"multiselect/internal/combo"
	"multiselect/internal/domain"
	"multiselect/internal/format"
)

// CurrentVersion is written to new config files
const CurrentVersion = 1

// Config represents the control configuration file
type Config struct {
	Version   int               `toml:"version"`
	Control   ControlSettings   `toml:"control"`
	Delimiter DelimiterSettings `toml:"delimiter"`
	Summary   SummarySettings   `toml:"summary"`
	Items     []ItemConfig      `toml:"items,omitempty"`
}

// ControlSettings mirrors the control's options
type ControlSettings struct {
	OutputType    string `toml:"output_type"`  // "data" or "text"
	DisplayType   string `toml:"display_type"` // "data" or "text"
	OutputRole    int    `toml:"output_role"`
	Duplicates    bool   `toml:"duplicates"`
	SelectAll     bool   `toml:"select_all"`
	SelectAllText string `toml:"select_all_text"`
	Placeholder   string `toml:"placeholder"`
	MaxSelection  int    `toml:"max_selection"`
	CloseOnSelect bool   `toml:"close_on_select"`
	Coalescing    bool   `toml:"coalescing"`
}

// DelimiterSettings describes the display separator
type DelimiterSettings struct {
	Symbol      string `toml:"symbol"`
	SpaceBefore bool   `toml:"space_before"`
	SpaceAfter  bool   `toml:"space_after"`
}

// SummarySettings controls shortening of long selections
type SummarySettings struct {
	Mode          string `toml:"mode"`
	Threshold     int    `toml:"threshold"`
	LeadingFormat string `toml:"leading_format"`
	CountFormat   string `toml:"count_format"`
}

// ItemConfig is an initial entry. Empty data falls back to the text and a
// missing enabled key means enabled.
type ItemConfig struct {
	Text    string `toml:"text"`
	Data    string `toml:"data,omitempty"`
	Checked bool   `toml:"checked,omitempty"`
	Enabled *bool  `toml:"enabled,omitempty"`
}

// ConfigService handles configuration management
type ConfigService interface {
	Load() (*Config, error)
	Save(config *Config) error
	LoadFromPath(path string) (*Config, error)
	SaveToPath(config *Config, path string) error
	Path() string
}

type configService struct {
	filePath string
}

// DefaultPath returns <user config dir>/multiselect/config.toml
func DefaultPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		// Fallback to home directory
		configDir, err = os.UserHomeDir()
		if err != nil {
			configDir = "."
		}
		configDir = filepath.Join(configDir, ".config")
	}
	return filepath.Join(configDir, "multiselect", "config.toml")
}

// NewConfigService creates a service bound to the default path
func NewConfigService() ConfigService {
	return &configService{filePath: DefaultPath()}
}

// NewConfigServiceAt creates a service bound to path
func NewConfigServiceAt(path string) ConfigService {
	return &configService{filePath: path}
}

func (cs *configService) Path() string {
	return cs.filePath
}

// Load reads the bound file; a missing file yields the default config
func (cs *configService) Load() (*Config, error) {
	cfg, err := cs.LoadFromPath(cs.filePath)
	if errors.Is(err, fs.ErrNotExist) {
		slog.Debug("No config file, using defaults", "path", cs.filePath)
		return DefaultConfig(), nil
	}
	return cfg, err
}

// Save writes the bound file
func (cs *configService) Save(config *Config) error {
	return cs.SaveToPath(config, cs.filePath)
}

// LoadFromPath loads configuration from a specific path. Keys the file leaves
// out keep their default values.
func (cs *configService) LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config file not found: %s: %w", path, err)
		}
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	slog.Debug("Loaded config", "path", path, "items", len(cfg.Items))
	return cfg, nil
}

// SaveToPath saves configuration to a specific path
func (cs *configService) SaveToPath(config *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := toml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// DefaultConfig returns the control's default options with no items
func DefaultConfig() *Config {
	summary := format.DefaultSummary()
	return &Config{
		Version: CurrentVersion,
		Control: ControlSettings{
			OutputType:    domain.ByData.String(),
			DisplayType:   domain.ByData.String(),
			OutputRole:    int(domain.RoleUser),
			Duplicates:    true,
			SelectAllText: combo.DefaultSelectAllText,
			Coalescing:    true,
		},
		Delimiter: DelimiterSettings{
			Symbol:     format.DefaultDelimiter().Symbol,
			SpaceAfter: true,
		},
		Summary: SummarySettings{
			Mode:          summary.Mode.String(),
			LeadingFormat: summary.LeadingFormat,
			CountFormat:   summary.CountFormat,
		},
	}
}

// Validate checks the enumerated options without touching a control
func (c *Config) Validate() error {
	if _, err := domain.ParseField(c.Control.OutputType); err != nil {
		return &combo.ConfigurationError{Option: "output type", Value: c.Control.OutputType, Allowed: []string{"data", "text"}}
	}
	if _, err := domain.ParseField(c.Control.DisplayType); err != nil {
		return &combo.ConfigurationError{Option: "display type", Value: c.Control.DisplayType, Allowed: []string{"data", "text"}}
	}
	if _, err := format.ParseSummaryMode(c.Summary.Mode); err != nil {
		return &combo.ConfigurationError{Option: "summary mode", Value: c.Summary.Mode, Allowed: []string{"none", "leading", "count"}}
	}
	return nil
}

// Apply validates c and then configures ctrl and appends the configured items
// inside one batch, so listeners see a single notification. Nothing is applied
// when validation fails.
func (c *Config) Apply(ctrl *combo.MultiSelect) error {
	if err := c.Validate(); err != nil {
		return err
	}

	ctrl.BeginUpdate()
	defer ctrl.EndUpdate()

	// Validated above
	_ = ctrl.SetOutputType(c.Control.OutputType)
	_ = ctrl.SetDisplayType(c.Control.DisplayType)
	_ = ctrl.SetSummaryMode(c.Summary.Mode)

	ctrl.SetOutputDataRole(domain.Role(c.Control.OutputRole))
	ctrl.SetDuplicatesEnabled(c.Control.Duplicates)
	ctrl.SetSelectAllEnabled(c.Control.SelectAll)
	ctrl.SetSelectAllText(c.Control.SelectAllText)
	ctrl.SetPlaceholderText(c.Control.Placeholder)
	ctrl.SetMaxSelectionCount(c.Control.MaxSelection)
	ctrl.SetCloseOnSelect(c.Control.CloseOnSelect)
	ctrl.SetCoalescingEnabled(c.Control.Coalescing)

	symbol := c.Delimiter.Symbol
	if symbol == "" {
		symbol = format.DefaultDelimiter().Symbol
	}
	ctrl.SetDisplayDelimiter(symbol,
		combo.WithSpaceBefore(c.Delimiter.SpaceBefore),
		combo.WithSpaceAfter(c.Delimiter.SpaceAfter))
	ctrl.SetSummaryThreshold(c.Summary.Threshold)
	ctrl.SetSummaryFormat(c.Summary.LeadingFormat, c.Summary.CountFormat)

	for _, it := range c.Items {
		var data any
		if it.Data != "" {
			data = it.Data
		}
		if !ctrl.AddItem(it.Text, data) {
			continue
		}
		index := ctrl.Count() - 1
		if it.Checked {
			_ = ctrl.SetItemChecked(index, true)
		}
		if it.Enabled != nil && !*it.Enabled {
			_ = ctrl.SetItemEnabled(index, false)
		}
	}
	return nil
}
