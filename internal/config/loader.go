package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Environment variable prefix for devstart configuration.
const envPrefix = "DEVSTART"

// Loader handles loading the user defaults file.
type Loader struct {
	v *viper.Viper
}

// NewLoader creates a new defaults loader.
func NewLoader() *Loader {
	v := viper.New()

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	// Bind specific environment variables
	_ = v.BindEnv("author", "DEVSTART_AUTHOR")
	_ = v.BindEnv("python", "DEVSTART_PYTHON")
	_ = v.BindEnv("description", "DEVSTART_DESCRIPTION")

	return &Loader{v: v}
}

// Load loads defaults from the given file path.
// If configFile is empty, it uses the default config file path.
// Environment variables take precedence over file values. A missing file
// is not an error; the zero Defaults is returned.
func (l *Loader) Load(configFile string) (*Defaults, error) {
	if configFile == "" {
		var err error
		configFile, err = GetConfigFile()
		if err != nil {
			return nil, fmt.Errorf("getting config file path: %w", err)
		}
	}

	l.v.SetConfigFile(configFile)
	l.v.SetConfigType("yaml")

	if err := l.v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				// A present but unreadable/invalid file is a real error
				if _, statErr := os.Stat(configFile); statErr == nil {
					return nil, fmt.Errorf("reading config file %s: %w", configFile, err)
				}
			}
		}
	}

	var d Defaults
	if err := l.v.Unmarshal(&d); err != nil {
		return nil, fmt.Errorf("parsing config file %s: %w", configFile, err)
	}

	return &d, nil
}

// LoadDefaults loads the user defaults from the standard location.
func LoadDefaults(configFile string) (*Defaults, error) {
	return NewLoader().Load(configFile)
}
