package namer

import (
	"strings"

	"github.com/iancoleman/strcase"

	"github.com/neuronlabs/jsonapi/errors"
	"github.com/neuronlabs/jsonapi/errors/class"
)

// NamingConvention is the convention used while formatting the publicly
// visible names - collections, attributes, relationships, link path segments
// and error source pointers.
type NamingConvention int

const (
	_ NamingConvention = iota
	// SnakeCase is the naming convention where all words are in lower case letters separated by the '_' character.
	// i.e.: naming_convention
	SnakeCase
	// CamelCase is the naming convention where words are not separated by any character or space and each word starts
	// with a capital letter.
	// i.e.: NamingConvention
	CamelCase
	// LowerCamelCase is the naming convention where words are not separated by any character or space and all but first words starts
	// with a capital letter.
	// i.e.: namingConvention
	LowerCamelCase
	// KebabCase is the naming convention where all words are in lower case letters separated by the '-' character.
	// i.e.: naming-convention
	KebabCase
	// Unaltered is the convention that leaves the names in their internal snake case form.
	Unaltered
)

// Default is the naming convention used when none was configured.
const Default = KebabCase

// Parse sets the naming convention from its string name.
func (n *NamingConvention) Parse(name string) error {
	switch strings.ToLower(name) {
	case "snake", "underscore":
		*n = SnakeCase
	case "camel":
		*n = CamelCase
	case "lower_camel", "camel_lower":
		*n = LowerCamelCase
	case "kebab", "dash":
		*n = KebabCase
	case "unaltered":
		*n = Unaltered
	default:
		return errors.Newf(class.ConfigValueNaming, "unknown naming convention name: %s", name)
	}
	return nil
}

// Namer formats the 'raw' name with given convention.
func (n NamingConvention) Namer(raw string) string {
	switch n {
	case SnakeCase:
		return NamingSnake(raw)
	case CamelCase:
		return NamingCamel(raw)
	case LowerCamelCase:
		return NamingLowerCamel(raw)
	case KebabCase:
		return NamingKebab(raw)
	default:
		return raw
	}
}

func (n NamingConvention) String() string {
	switch n {
	case SnakeCase:
		return "snake"
	case CamelCase:
		return "camel"
	case LowerCamelCase:
		return "lower_camel"
	case KebabCase:
		return "kebab"
	case Unaltered:
		return "unaltered"
	}
	return "unknown"
}

// Namer is the function that change the name with some prepared formatting.
type Namer func(string) string

// NamingSnake is a Namer function that converts the 'TestingModelName' into the 'testing_model_name' format.
func NamingSnake(raw string) string {
	return strcase.ToSnake(raw)
}

// NamingKebab is a Namer function that converts the 'TestingModelName' into the 'testing-model-name' format.
func NamingKebab(raw string) string {
	return strcase.ToKebab(raw)
}

// NamingCamel is a Namer function that converts the 'TestingModelName' into the 'TestingModelName' format.
func NamingCamel(raw string) string {
	return strcase.ToCamel(raw)
}

// NamingLowerCamel is a Namer function that converts the 'TestingModelName' into the 'testingModelName' format.
func NamingLowerCamel(raw string) string {
	return strcase.ToLowerCamel(raw)
}

// Unformat reverts any of the convention formats back into the canonical
// snake case form. For every convention 'c' and internal name 'name' the
// following holds: Unformat(c.Namer(name)) == Unformat(name).
func Unformat(name string) string {
	return strcase.ToSnake(name)
}
