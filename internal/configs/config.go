package configs

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// UserConfig holds the persisted per-user defaults so flags can be omitted
// on repeat runs.
type UserConfig struct {
	Defaults Defaults `toml:"defaults"`
}

type Defaults struct {
	// Repo is the default GitHub repository in owner/repo form.
	Repo string `toml:"repo"`

	// Project is the default Google Cloud project ID.
	Project string `toml:"project"`
}

// LoadUserConfig loads the user configuration from the config file.
// A missing file is not an error; an empty config is returned.
func LoadUserConfig() (*UserConfig, error) {
	configPath := filepath.Join(UserDevopsSettings.UserConfigsPath, "config.toml")

	config := &UserConfig{}

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return config, nil
	}

	if err := LoadTOML(configPath, config); err != nil {
		return nil, fmt.Errorf("failed to load user config: %w", err)
	}

	return config, nil
}

// SaveUserConfig saves the user configuration to the config file.
func SaveUserConfig(config *UserConfig) error {
	configPath := filepath.Join(UserDevopsSettings.UserConfigsPath, "config.toml")

	if err := SaveTOML(configPath, config); err != nil {
		return fmt.Errorf("failed to save user config: %w", err)
	}

	return nil
}

// SaveTOML encodes data as TOML at filePath, creating any missing parent
// directories with user-only permissions.
func SaveTOML(filePath string, data interface{}) error {
	if err := os.MkdirAll(filepath.Dir(filePath), 0700); err != nil {
		return err
	}

	file, err := os.Create(filePath)
	if err != nil {
		return err
	}
	defer file.Close()

	return toml.NewEncoder(file).Encode(data)
}

// LoadTOML decodes the TOML file at filePath into data.
func LoadTOML(filePath string, data interface{}) error {
	_, err := toml.DecodeFile(filePath, data)
	return err
}
