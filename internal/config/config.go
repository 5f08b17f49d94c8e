package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

var Global global

// global keys match the flag names so that values read from the
// config file participate in viper's precedence order: explicit
// flags beat the config file, the config file beats flag defaults.
type global struct {
	ControllerUrl string  `json:"controllerUrl" yaml:"controller-url" mapstructure:"controller-url"`
	SourcePath    *string `json:"sourcePath" yaml:"-" mapstructure:"-"`
}

func (g *global) IsGlobalConfigExists() bool {
	return g.SourcePath != nil
}

// expandHome resolves a leading `~/` so that the default config path
// works without shell expansion.
func expandHome(path string) string {
	if strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[2:])
		}
	}
	return path
}

func LoadGlobal(from string) error {
	from = expandHome(from)
	logrus.Debugf("loading global configuration from path[%s]...", from)

	isGlobalConfigLoaded := true
	fi, err := os.Stat(from)
	if errors.Is(err, os.ErrNotExist) {
		logrus.Debugf("config file not found at path[%s], defaults will be used", from)
		isGlobalConfigLoaded = false
	} else if err == nil && fi.IsDir() {
		logrus.Warnf("config file path[%s] led to a directory, defaults will be used", from)
		isGlobalConfigLoaded = false
	}
	viper.SetConfigFile(from)
	viper.SetConfigType("yaml")

	if isGlobalConfigLoaded {
		if err := viper.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read configuration file: %s", err)
		}
		if err := viper.Unmarshal(&Global); err != nil {
			return fmt.Errorf("failed to parse configuration file: %s", err)
		}
		Global.SourcePath = &from
	}

	return nil
}

// SaveGlobal persists the current global configuration to the given
// path, creating the parent directory when it doesn't exist yet.
func SaveGlobal(to string) error {
	to = expandHome(to)
	if err := os.MkdirAll(filepath.Dir(to), 0755); err != nil {
		return fmt.Errorf("failed to provision configuration directory at path[%s]: %s", filepath.Dir(to), err)
	}
	data, err := yaml.Marshal(Global)
	if err != nil {
		return fmt.Errorf("failed to serialise configuration: %s", err)
	}
	if err := os.WriteFile(to, data, 0600); err != nil {
		return fmt.Errorf("failed to write configuration file at path[%s]: %s", to, err)
	}
	Global.SourcePath = &to
	return nil
}
