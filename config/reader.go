package config

import (
	"github.com/spf13/viper"

	"github.com/neuronlabs/jsonapi/errors"
	"github.com/neuronlabs/jsonapi/errors/class"
	"github.com/neuronlabs/jsonapi/log"
	"github.com/neuronlabs/jsonapi/namer"
)

// ViperSetDefaults sets the default values for the viper config.
func ViperSetDefaults(v *viper.Viper) {
	setDefaults(v)
}

// ReadConfig reads the configuration from the 'config' file.
func ReadConfig() (*Options, error) {
	return readNamedConfig("config")
}

// ReadNamedConfig reads the configuration with the provided name.
func ReadNamedConfig(name string) (*Options, error) {
	return readNamedConfig(name)
}

// fileOptions is the raw file representation of the Options.
type fileOptions struct {
	KeyTransform string `mapstructure:"key_transform"`
	BaseURL      string `mapstructure:"base_url"`
	Links        bool   `mapstructure:"links"`
}

func readNamedConfig(name string) (*Options, error) {
	v := viper.New()
	v.SetConfigName(name)

	v.AddConfigPath(".")
	v.AddConfigPath("configs")

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		return nil, errors.Newf(class.ConfigReadNotFound, "reading config failed: %v", err)
	}

	raw := &fileOptions{}
	if err := v.Unmarshal(raw); err != nil {
		log.Debugf("Unmarshaling config '%s' failed: %v", name, err)
		return nil, errors.Newf(class.ConfigReadDecode, "decoding config failed: %v", err)
	}

	options := newDefault()
	options.BaseURL = raw.BaseURL
	options.Links = raw.Links
	if err := options.NamingConvention.Parse(raw.KeyTransform); err != nil {
		return nil, err
	}
	return options, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("key_transform", namer.Default.String())
	v.SetDefault("base_url", "")
	v.SetDefault("links", true)
}
