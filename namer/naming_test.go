package namer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neuronlabs/jsonapi/errors"
	"github.com/neuronlabs/jsonapi/errors/class"
)

// TestParse tests the naming convention string parser.
func TestParse(t *testing.T) {
	cases := map[string]NamingConvention{
		"snake":       SnakeCase,
		"underscore":  SnakeCase,
		"camel":       CamelCase,
		"lower_camel": LowerCamelCase,
		"camel_lower": LowerCamelCase,
		"kebab":       KebabCase,
		"dash":        KebabCase,
		"unaltered":   Unaltered,
		"Dash":        KebabCase,
	}

	for name, expected := range cases {
		t.Run(name, func(t *testing.T) {
			var convention NamingConvention
			require.NoError(t, convention.Parse(name))
			assert.Equal(t, expected, convention)
		})
	}

	t.Run("Unknown", func(t *testing.T) {
		var convention NamingConvention
		err := convention.Parse("dotted")
		require.Error(t, err)
		assert.True(t, errors.IsClass(err, class.ConfigValueNaming))
	})
}

// TestNamer tests the convention formatting over a canonical name.
func TestNamer(t *testing.T) {
	const raw = "naming_convention"

	cases := map[NamingConvention]string{
		SnakeCase:      "naming_convention",
		CamelCase:      "NamingConvention",
		LowerCamelCase: "namingConvention",
		KebabCase:      "naming-convention",
		Unaltered:      "naming_convention",
	}

	for convention, expected := range cases {
		t.Run(convention.String(), func(t *testing.T) {
			assert.Equal(t, expected, convention.Namer(raw))
		})
	}
}

// TestUnformat tests that every convention's output reverts back into the
// canonical snake cased form.
func TestUnformat(t *testing.T) {
	names := []string{"id", "fancy_body", "long_comments", "naming_convention"}
	conventions := []NamingConvention{SnakeCase, CamelCase, LowerCamelCase, KebabCase, Unaltered}

	for _, name := range names {
		for _, convention := range conventions {
			assert.Equal(t, Unformat(name), Unformat(convention.Namer(name)),
				"name: '%s' convention: '%s'", name, convention)
		}
	}
}

func TestDefault(t *testing.T) {
	assert.Equal(t, KebabCase, Default)
	assert.Equal(t, "kebab", Default.String())
}
