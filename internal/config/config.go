package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"datepicker/internal/picker"
	"datepicker/internal/utils"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	_ "embed"
)

var customConfigPath string // Custom config path set via --config flag

//go:embed config.sample.yaml
var sampleConfig []byte

const (
	CONFIG_FILE_PATH = "config.yaml"
	CONFIG_DIR_PERM  = 0755
	CONFIG_FILE_PERM = 0644

	HISTORY_DB_FILE       = "history.db"
	DEFAULT_HISTORY_LIMIT = 20
)

// Config represents the application configuration.
type Config struct {
	Mode       string        `yaml:"mode" validate:"required,oneof=date date-range"`
	MinDate    string        `yaml:"min_date" validate:"required,datetime=2006-01-02"`
	MaxDate    string        `yaml:"max_date" validate:"required,datetime=2006-01-02"`
	DateFormat string        `yaml:"date_format,omitempty"` // Go time layout, defaults to "2006-01-02"
	Size       string        `yaml:"size,omitempty" validate:"omitempty,oneof=s m l"`
	History    HistoryConfig `yaml:"history"`
}

// HistoryConfig controls the selection history store.
type HistoryConfig struct {
	Enabled bool   `yaml:"enabled"`
	DBPath  string `yaml:"db_path,omitempty"`
	Limit   int    `yaml:"limit,omitempty" validate:"omitempty,min=1,max=1000"`
}

// ValidationError represents a validation error with details
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("%s: %s", e.Field, e.Message)
	}
	return e.Message
}

// Validate checks struct tags, the date layout and the order of the bounds.
func (c Config) Validate() error {
	validate := validator.New()
	if err := validate.Struct(c); err != nil {
		return formatValidationError(err)
	}

	if c.DateFormat != "" {
		if err := utils.ValidateLayout(c.DateFormat); err != nil {
			return &ValidationError{Field: "date_format", Message: err.Error()}
		}
	}

	minDate, maxDate, err := c.Bounds()
	if err != nil {
		return err
	}
	if minDate.After(maxDate) {
		return utils.ErrInvalidBounds(c.MinDate, c.MaxDate)
	}

	return nil
}

// formatValidationError converts validator errors into a ValidationError
// naming the yaml field.
func formatValidationError(err error) error {
	var validationErrs validator.ValidationErrors
	if !errors.As(err, &validationErrs) || len(validationErrs) == 0 {
		return err
	}

	fe := validationErrs[0]
	field := yamlFieldName(fe.StructNamespace())

	var msg string
	switch fe.Tag() {
	case "required":
		msg = "is required"
	case "oneof":
		msg = fmt.Sprintf("must be one of: %s", fe.Param())
	case "datetime":
		msg = "must be a date in YYYY-MM-DD format"
	case "min":
		msg = fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		msg = fmt.Sprintf("must be at most %s", fe.Param())
	default:
		msg = fmt.Sprintf("failed %s validation", fe.Tag())
	}

	return &ValidationError{Field: field, Message: msg}
}

var yamlNames = map[string]string{
	"Mode":       "mode",
	"MinDate":    "min_date",
	"MaxDate":    "max_date",
	"DateFormat": "date_format",
	"Size":       "size",
	"History":    "history",
	"Enabled":    "enabled",
	"DBPath":     "db_path",
	"Limit":      "limit",
}

func yamlFieldName(namespace string) string {
	parts := strings.Split(namespace, ".")
	if len(parts) > 0 && parts[0] == "Config" {
		parts = parts[1:]
	}
	for i, p := range parts {
		if name, ok := yamlNames[p]; ok {
			parts[i] = name
		}
	}
	return strings.Join(parts, ".")
}

// PickerMode returns the configured mode.
func (c *Config) PickerMode() (picker.Mode, error) {
	mode, err := picker.ParseMode(c.Mode)
	if err != nil {
		return "", utils.ErrInvalidMode(c.Mode, []string{string(picker.ModeSingle), string(picker.ModeRange)})
	}
	return mode, nil
}

// Bounds parses min_date and max_date in the local timezone.
func (c *Config) Bounds() (time.Time, time.Time, error) {
	minDate, err := utils.ParseDate(c.MinDate, utils.DefaultDateLayout)
	if err != nil {
		return time.Time{}, time.Time{}, &ValidationError{Field: "min_date", Message: err.Error()}
	}
	maxDate, err := utils.ParseDate(c.MaxDate, utils.DefaultDateLayout)
	if err != nil {
		return time.Time{}, time.Time{}, &ValidationError{Field: "max_date", Message: err.Error()}
	}
	return minDate, maxDate, nil
}

func (c *Config) GetDateFormat() string {
	if c.DateFormat == "" {
		return utils.DefaultDateLayout
	}
	return c.DateFormat
}

func (c *Config) GetSize() string {
	if c.Size == "" {
		return "m"
	}
	return c.Size
}

func (c *Config) GetHistoryLimit() int {
	if c.History.Limit <= 0 {
		return DEFAULT_HISTORY_LIMIT
	}
	return c.History.Limit
}

// GetHistoryDBPath returns the expanded db_path, or history.db in the data directory.
func (c *Config) GetHistoryDBPath() (string, error) {
	if c.History.DBPath != "" {
		return utils.ExpandPath(c.History.DBPath)
	}
	dir, err := utils.DataDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, HISTORY_DB_FILE), nil
}

// SetCustomConfigPath sets a custom config path to use instead of the default user config directory.
// If path is a directory, it looks for "config.yaml" inside it.
// If path is a file, it uses that file directly.
// This must be called before GetConfigPath.
func SetCustomConfigPath(path string) {
	if path == "" {
		customConfigPath = ""
		return
	}
	info, err := os.Stat(path)
	if err == nil && info.IsDir() {
		customConfigPath = filepath.Join(path, CONFIG_FILE_PATH)
	} else {
		customConfigPath = path
	}
}

func GetConfigPath() (string, error) {
	// Custom path may not exist yet; Load creates it from the sample.
	if customConfigPath != "" {
		return customConfigPath, nil
	}

	dir, err := utils.ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, CONFIG_FILE_PATH), nil
}

// Load reads and validates the config at configPath, writing the embedded
// sample there first when the file does not exist.
func Load(configPath string) (*Config, error) {
	configData, err := os.ReadFile(configPath)
	if errors.Is(err, os.ErrNotExist) {
		utils.Infof("Creating default configuration at %s", configPath)
		configData, err = createConfigFromSample(configPath)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config %s: %w", configPath, err)
	}
	return Parse(configData, configPath)
}

// Parse decodes and validates YAML config data.
func Parse(configData []byte, configPath string) (*Config, error) {
	var configObj Config
	if err := yaml.Unmarshal(configData, &configObj); err != nil {
		return nil, utils.WrapWithSuggestion(
			fmt.Errorf("invalid YAML in config file %s: %w", configPath, err),
			"Fix the syntax or delete the file to regenerate the default configuration",
		)
	}

	if err := configObj.Validate(); err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			return nil, utils.ErrInvalidConfig(ve.Field, ve.Message)
		}
		return nil, fmt.Errorf("invalid config file %s: %w", configPath, err)
	}
	return &configObj, nil
}

func createConfigDir(configPath string) error {
	return os.MkdirAll(filepath.Dir(configPath), CONFIG_DIR_PERM)
}

func WriteConfigFile(configPath string, data []byte) error {
	return os.WriteFile(configPath, data, CONFIG_FILE_PERM)
}

func createConfigFromSample(configPath string) ([]byte, error) {
	if err := createConfigDir(configPath); err != nil {
		return nil, err
	}
	if err := WriteConfigFile(configPath, sampleConfig); err != nil {
		return nil, err
	}
	return sampleConfig, nil
}
