/*
Package config manages the TOML config for rscheck.

The config file fills in every setting that is not given on the command line:

	[check]
	min = 2
	max = 20

	[dict]
	wordlists = ["/usr/share/dict/words"]
	ignore = ["ignore.txt"]

	[filter]
	extensions = ["go", "rs"]
	exclude_extensions = []
	exclude_paths = ["vendor"]
	gitignore = false

	[output]
	format = "text"
	color = true

Relative paths in the [dict] and [filter] sections are resolved against the
directory holding the config file.
*/
package config

import (
	"path/filepath"

	"github.com/aqbifzl/rscheck/internal/utils"
	"github.com/charmbracelet/log"
)

// AppName names the config directory.
const AppName = "rscheck"

// Config holds the entire config structure
type Config struct {
	Check  CheckConfig  `toml:"check"`
	Dict   DictConfig   `toml:"dict"`
	Filter FilterConfig `toml:"filter"`
	Output OutputConfig `toml:"output"`
}

// CheckConfig holds the word length bounds.
type CheckConfig struct {
	Min int `toml:"min"`
	Max int `toml:"max"`
}

// DictConfig lists dictionary and ignore files.
type DictConfig struct {
	Wordlists []string `toml:"wordlists"`
	Ignore    []string `toml:"ignore"`
}

// FilterConfig selects the files that are checked.
type FilterConfig struct {
	Extensions        []string `toml:"extensions"`
	ExcludeExtensions []string `toml:"exclude_extensions"`
	ExcludePaths      []string `toml:"exclude_paths"`
	Gitignore         bool     `toml:"gitignore"`
}

// OutputConfig holds report options.
type OutputConfig struct {
	Format string `toml:"format"`
	Color  bool   `toml:"color"`
}

// GetConfigDir returns the config directory with fallback priority:
// 1. platform config dir ($XDG_CONFIG_HOME/rscheck, ~/.config/rscheck, %APPDATA%\rscheck)
// 2. current executable dir
func GetConfigDir() (string, error) {
	dir, err := utils.PlatformConfigDir(AppName)
	if err == nil {
		return dir, nil
	}
	log.Debugf("No home directory (%v), falling back to executable dir", err)
	execDir, execErr := utils.GetExecutableDir()
	if execErr != nil {
		log.Errorf("Failed to get executable directory: %v", execErr)
		return "", execErr
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from --config flag
// 2. Default path: [UserConfigDir]/rscheck/config.toml
// 3. Builtin defaults
//
// The returned path is empty when builtin defaults are used.
// Unlike InitConfig, nothing is written to disk.
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if !utils.FileExists(customConfigPath) {
			log.Warnf("Custom config file not found at %s. Trying default path...", customConfigPath)
		} else {
			config, err := LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
		}
	}

	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}
	if !utils.FileExists(defaultPath) {
		log.Debugf("No config at %s, using built-in defaults", defaultPath)
		return DefaultConfig(), "", nil
	}

	config, err := LoadConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Check: CheckConfig{
			Min: 2,
			Max: 20,
		},
		Dict: DictConfig{
			Wordlists: []string{},
			Ignore:    []string{},
		},
		Filter: FilterConfig{
			Extensions:        []string{},
			ExcludeExtensions: []string{},
			ExcludePaths:      []string{},
		},
		Output: OutputConfig{
			Format: "text",
			Color:  true,
		},
	}
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if status := utils.CheckDirStatus(configDir); !status.Writable {
		if status.Error != nil {
			return nil, status.Error
		}
		log.Warnf("Config directory %s is not writable", configDir)
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			return nil, err
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	return LoadConfig(configPath)
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		config, err = tryPartialParse(configPath)
		if err != nil {
			return nil, err
		}
	}
	config.resolvePaths(filepath.Dir(configPath))
	return config, nil
}

// tryPartialParse keeps every section that still decodes to the expected shape.
// Keys with the wrong type are ignored and keep their defaults.
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if section, ok := utils.ExtractSection(tempConfig, "check"); ok {
		extractCheckConfig(section, &config.Check)
	}
	if section, ok := utils.ExtractSection(tempConfig, "dict"); ok {
		extractDictConfig(section, &config.Dict)
	}
	if section, ok := utils.ExtractSection(tempConfig, "filter"); ok {
		extractFilterConfig(section, &config.Filter)
	}
	if section, ok := utils.ExtractSection(tempConfig, "output"); ok {
		extractOutputConfig(section, &config.Output)
	}
	return config, nil
}

func extractCheckConfig(data map[string]any, check *CheckConfig) {
	if val, ok := utils.ExtractInt64(data, "min"); ok {
		check.Min = val
	}
	if val, ok := utils.ExtractInt64(data, "max"); ok {
		check.Max = val
	}
}

func extractDictConfig(data map[string]any, dict *DictConfig) {
	if val, ok := utils.ExtractStrings(data, "wordlists"); ok {
		dict.Wordlists = val
	}
	if val, ok := utils.ExtractStrings(data, "ignore"); ok {
		dict.Ignore = val
	}
}

func extractFilterConfig(data map[string]any, filter *FilterConfig) {
	if val, ok := utils.ExtractStrings(data, "extensions"); ok {
		filter.Extensions = val
	}
	if val, ok := utils.ExtractStrings(data, "exclude_extensions"); ok {
		filter.ExcludeExtensions = val
	}
	if val, ok := utils.ExtractStrings(data, "exclude_paths"); ok {
		filter.ExcludePaths = val
	}
	if val, ok := utils.ExtractBool(data, "gitignore"); ok {
		filter.Gitignore = val
	}
}

func extractOutputConfig(data map[string]any, output *OutputConfig) {
	if val, ok := utils.ExtractString(data, "format"); ok {
		output.Format = val
	}
	if val, ok := utils.ExtractBool(data, "color"); ok {
		output.Color = val
	}
}

func (c *Config) resolvePaths(baseDir string) {
	resolve := func(paths []string) {
		for i, p := range paths {
			if p != "" && !filepath.IsAbs(p) {
				paths[i] = filepath.Join(baseDir, p)
			}
		}
	}
	resolve(c.Dict.Wordlists)
	resolve(c.Dict.Ignore)
	resolve(c.Filter.ExcludePaths)
}

// RebuildConfigFile force creates a new config.toml at default
func RebuildConfigFile() (string, error) {
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		return "", err
	}
	if err := utils.EnsureDir(filepath.Dir(defaultPath)); err != nil {
		return "", err
	}
	return defaultPath, SaveConfig(DefaultConfig(), defaultPath)
}

// GetActiveConfigPath returns the absolute path of loaded config file
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		if defaultPath, err := GetDefaultConfigPath(); err == nil {
			return defaultPath
		}
		return "unknown"
	}
	return utils.GetAbsolutePath(configPath)
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}

// Update changes the given values and saves to file
func (c *Config) Update(configPath string, minLen, maxLen *int, format *string, color *bool) error {
	if minLen != nil {
		c.Check.Min = *minLen
	}
	if maxLen != nil {
		c.Check.Max = *maxLen
	}
	if format != nil {
		c.Output.Format = *format
	}
	if color != nil {
		c.Output.Color = *color
	}
	return SaveConfig(c, configPath)
}
