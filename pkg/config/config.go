// Package config manages TOML config for swyft services.
package config

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/swypelab/swyft/internal/utils"
)

// Config holds the entire config structure.
type Config struct {
	Predictor PredictorConfig `toml:"predictor"`
	Server    ServerConfig    `toml:"server"`
	CLI       CliConfig       `toml:"cli"`
}

// PredictorConfig mirrors predictor.Config's tunables so they can be set
// from a TOML file instead of compiled-in defaults.
type PredictorConfig struct {
	PopularityWeight float64 `toml:"popularity_weight"`
	BandDivisor      int     `toml:"band_divisor"`
	FirstCharStrict  bool    `toml:"first_char_strict"`
	LastCharPenalty  float64 `toml:"last_char_penalty"`
	LengthSkewMax    float64 `toml:"length_skew_max"`
}

// ServerConfig has IPC-server related options.
type ServerConfig struct {
	DefaultK  int    `toml:"default_k"`
	MaxK      int    `toml:"max_k"`
	MinTrace  int    `toml:"min_trace"`
	MaxTrace  int    `toml:"max_trace"`
	Language  string `toml:"language"`
}

// CliConfig holds debug-REPL options.
type CliConfig struct {
	DefaultK    int `toml:"default_k"`
	DefaultMinTrace int `toml:"default_min_trace"`
	DefaultMaxTrace int `toml:"default_max_trace"`
}

// GetConfigDir returns the config directory with fallback priority:
//  1. ~/.config/swyft
//  2. ~/Library/Application Support/swyft (macOS)
//  3. current executable dir
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("failed to get home directory: %v", err)
		execDir, execErr := utils.GetExecutableDir()
		if execErr != nil {
			return "", execErr
		}
		return execDir, nil
	}
	primaryPath := filepath.Join(homeDir, ".config", "swyft")
	if result := utils.CheckDirStatus(primaryPath); result.Writable {
		return primaryPath, nil
	}
	macOSPath := filepath.Join(homeDir, "Library", "Application Support", "swyft")
	if result := utils.CheckDirStatus(macOSPath); result.Writable {
		return macOSPath, nil
	}
	execDir, err := utils.GetExecutableDir()
	if err != nil {
		log.Errorf("failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for config.toml.
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
//  1. custom path from --config flag
//  2. default path: [UserConfigDir]/swyft/config.toml
//  3. builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	var config *Config
	var err error

	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err = LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("failed to load custom config from %s: %v. trying default path...", customConfigPath, err)
			} else {
				log.Debugf("loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
		} else {
			log.Warnf("custom config file not found at %s: %v. trying default path...", customConfigPath, statErr)
		}
	}
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("failed to determine default config path: %v. using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err = InitConfig(defaultPath)
	if err != nil {
		log.Warnf("failed to load/create config at default path %s: %v. using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Predictor: PredictorConfig{
			PopularityWeight: 0.15,
			BandDivisor:      4,
			FirstCharStrict:  true,
			LastCharPenalty:  2.0,
			LengthSkewMax:    3.0,
		},
		Server: ServerConfig{
			DefaultK: 10,
			MaxK:     64,
			MinTrace: 1,
			MaxTrace: 60,
			Language: "en",
		},
		CLI: CliConfig{
			DefaultK:        5,
			DefaultMinTrace: 1,
			DefaultMaxTrace: 60,
		},
	}
}

// InitConfig loads config from file or creates default if missing.
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("failed to create config directory %s: %v. using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("failed to create default config file at %s: %v. using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("created default config file at: %s", configPath)
		return config, nil
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("failed to load config from %s: %v. using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// LoadConfig loads from a TOML file.
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	return config, nil
}

// tryPartialParse recovers whatever sections of a malformed TOML file it
// can, falling back to defaults for the rest.
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("could not parse any valid configuration from %s: %v. using all defaults.", configPath, err)
		return config, nil
	}

	if predSection, ok := utils.ExtractSection(tempConfig, "predictor"); ok {
		extractPredictorConfig(predSection, &config.Predictor)
	}
	if serverSection, ok := utils.ExtractSection(tempConfig, "server"); ok {
		extractServerConfig(serverSection, &config.Server)
	}
	if cliSection, ok := utils.ExtractSection(tempConfig, "cli"); ok {
		extractCliConfig(cliSection, &config.CLI)
	}
	return config, nil
}

func extractPredictorConfig(data map[string]any, p *PredictorConfig) {
	if val, ok := utils.ExtractInt64(data, "band_divisor"); ok {
		p.BandDivisor = val
	}
	if val, ok := utils.ExtractBool(data, "first_char_strict"); ok {
		p.FirstCharStrict = val
	}
}

func extractServerConfig(data map[string]any, server *ServerConfig) {
	if val, ok := utils.ExtractInt64(data, "default_k"); ok {
		server.DefaultK = val
	}
	if val, ok := utils.ExtractInt64(data, "max_k"); ok {
		server.MaxK = val
	}
	if val, ok := utils.ExtractInt64(data, "min_trace"); ok {
		server.MinTrace = val
	}
	if val, ok := utils.ExtractInt64(data, "max_trace"); ok {
		server.MaxTrace = val
	}
}

func extractCliConfig(data map[string]any, cli *CliConfig) {
	if val, ok := utils.ExtractInt64(data, "default_k"); ok {
		cli.DefaultK = val
	}
	if val, ok := utils.ExtractInt64(data, "default_min_trace"); ok {
		cli.DefaultMinTrace = val
	}
	if val, ok := utils.ExtractInt64(data, "default_max_trace"); ok {
		cli.DefaultMaxTrace = val
	}
}

// RebuildConfigFile force-creates a new config.toml at the default path.
func RebuildConfigFile() error {
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		return err
	}
	configDir := filepath.Dir(defaultPath)
	if err := utils.EnsureDir(configDir); err != nil {
		return err
	}
	config := DefaultConfig()
	return utils.SaveTOMLFile(config, defaultPath)
}

// GetActiveConfigPath returns the absolute path of the loaded config file.
func GetActiveConfigPath(configPath string) string {
	if configPath == "" {
		if defaultPath, err := GetDefaultConfigPath(); err == nil {
			return defaultPath
		}
		return "unknown"
	}
	return utils.GetAbsolutePath(configPath)
}

// SaveConfig saves into a TOML file.
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
