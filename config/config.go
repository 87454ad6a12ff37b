// Package config registers configuration defaults and wires them into viper.
package config

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/cotocowind/cotocowind/constant"
	"github.com/cotocowind/cotocowind/filesystem"
	"github.com/cotocowind/cotocowind/where"
	"github.com/spf13/viper"
)

const configType = "toml"

// EnvKeyReplacer maps config keys to environment variable suffixes.
var EnvKeyReplacer = strings.NewReplacer(".", "_")

// Path is the location of the config file, whether or not it exists yet.
func Path() string {
	return filepath.Join(where.Config(), constant.App+"."+configType)
}

// Setup loads defaults, environment bindings and the config file, in increasing priority.
// A missing config file is not an error.
func Setup() error {
	viper.SetConfigName(constant.App)
	viper.SetConfigType(configType)
	viper.SetFs(filesystem.API())
	viper.AddConfigPath(where.Config())

	viper.SetEnvPrefix(constant.App)
	viper.SetEnvKeyReplacer(EnvKeyReplacer)
	for _, env := range EnvExposed {
		viper.MustBindEnv(env)
	}

	viper.SetTypeByDefaultValue(true)
	for name, field := range Default {
		viper.SetDefault(name, field.Value)
	}

	var notFound viper.ConfigFileNotFoundError
	if err := viper.ReadInConfig(); err != nil && !errors.As(err, &notFound) {
		return err
	}

	return nil
}

// Write persists the current settings, creating the config file on first use.
func Write() error {
	err := viper.WriteConfig()

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return viper.SafeWriteConfigAs(Path())
	}

	return err
}
