package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuronlabs/jsonapi/errors"
	"github.com/neuronlabs/jsonapi/errors/class"
	"github.com/neuronlabs/jsonapi/namer"
)

// TestReadNamedConfig tests reading the configuration file.
func TestReadNamedConfig(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		writeConfigFile(t, "jsonapi_test_config", `
key_transform: snake
base_url: https://example.com
links: false
`)
		options, err := ReadNamedConfig("jsonapi_test_config")
		require.NoError(t, err)

		assert.Equal(t, namer.SnakeCase, options.NamingConvention)
		assert.Equal(t, "https://example.com", options.BaseURL)
		assert.False(t, options.Links)
	})

	t.Run("Defaults", func(t *testing.T) {
		writeConfigFile(t, "jsonapi_test_defaults", `
base_url: ""
`)
		options, err := ReadNamedConfig("jsonapi_test_defaults")
		require.NoError(t, err)

		assert.Equal(t, namer.Default, options.NamingConvention)
		assert.Equal(t, "", options.BaseURL)
		assert.True(t, options.Links)
	})

	t.Run("InvalidKeyTransform", func(t *testing.T) {
		writeConfigFile(t, "jsonapi_test_invalid", `
key_transform: dotted
`)
		_, err := ReadNamedConfig("jsonapi_test_invalid")
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.ConfigValueNaming))
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := ReadNamedConfig("jsonapi_test_nonexistent")
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.ConfigReadNotFound))
	})
}

func writeConfigFile(t *testing.T, name, content string) {
	t.Helper()
	path := name + ".yaml"
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	t.Cleanup(func() {
		os.Remove(path)
	})
}
