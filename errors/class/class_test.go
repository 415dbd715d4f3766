package class

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestClassComposition tests the major/minor composition of the registered
// error classes.
func TestClassComposition(t *testing.T) {
	classes := map[string]struct {
		class Class
		major Major
		minor Minor
	}{
		"InternalEncodingValue":              {InternalEncodingValue, MjrInternal, MnrInternalEncoding},
		"ConfigReadNotFound":                 {ConfigReadNotFound, MjrConfig, MnrConfigRead},
		"ConfigValueNaming":                  {ConfigValueNaming, MjrConfig, MnrConfigValue},
		"ModelNotMapped":                     {ModelNotMapped, MjrModel, MnrModelMapping},
		"ModelFieldNotFound":                 {ModelFieldNotFound, MjrModel, MnrModelDefinition},
		"EncodingMarshalAmbiguousCollection": {EncodingMarshalAmbiguousCollection, MjrEncoding, MnrEncodingMarshal},
		"EncodingInvalidInclude":             {EncodingInvalidInclude, MjrEncoding, MnrEncodingInclude},
	}

	seen := map[Class]string{}
	for name, c := range classes {
		t.Run(name, func(t *testing.T) {
			assert.True(t, c.class.IsMajor(c.major))
			assert.True(t, c.class.IsMinor(c.minor))
			assert.Equal(t, c.major, c.minor.Major())

			previous, ok := seen[c.class]
			require.False(t, ok, "class value shared with: '%s'", previous)
			seen[c.class] = name
		})
	}
}

// TestClassString tests the registered and unregistered class names.
func TestClassString(t *testing.T) {
	assert.NotContains(t, EncodingInvalidInclude.String(), "Class(")
	assert.Contains(t, Class(0).String(), "Class(")
}

func TestMajorBounds(t *testing.T) {
	assert.True(t, MjrEncoding.InBounds())
	assert.False(t, Major(0).InBounds())

	_, err := Major(0).RegisterMinor("Invalid")
	assert.Error(t, err)
}
