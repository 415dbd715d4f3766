package document

import (
	"strings"

	"github.com/neuronlabs/jsonapi/mapping"
	"github.com/neuronlabs/jsonapi/namer"
)

// MarshalOptions is a structure that contains the parameters of a single
// marshal call.
type MarshalOptions struct {
	// Includes are the dotted relationship paths to embed as the compound
	// document 'included' member.
	Includes []string

	// Fields restricts the encoded attributes and relationships per collection
	// - the sparse fieldsets.
	Fields map[string][]string

	// Context is an opaque value passed into the computed value sources and
	// the visibility predicates.
	Context interface{}

	// Meta, Links and JSONAPI are the opaque top level document members.
	Meta    Meta
	Links   Links
	JSONAPI map[string]interface{}

	// NamingConvention overrides the configured naming convention when non zero.
	NamingConvention namer.NamingConvention

	// BaseURL overrides the configured base url when set.
	BaseURL    string
	baseURLSet bool

	// links overrides the configured link emission when set.
	links *bool

	// Namespace selects a named model registry.
	Namespace string

	// Model overrides the registry lookup for the primary data.
	Model *mapping.ModelStruct
}

// MarshalOption is a single marshal call parameter setter.
type MarshalOption func(*MarshalOptions)

// MarshalInclude adds the relationship paths to include within the document.
// Every path may also be a comma separated list of paths.
func MarshalInclude(paths ...string) MarshalOption {
	return func(o *MarshalOptions) {
		for _, path := range paths {
			for _, single := range strings.Split(path, ",") {
				if single = strings.TrimSpace(single); single != "" {
					o.Includes = append(o.Includes, single)
				}
			}
		}
	}
}

// MarshalFields restricts the fields encoded for given collection. Every
// field may also be a comma separated list of fields.
func MarshalFields(collection string, fields ...string) MarshalOption {
	return func(o *MarshalOptions) {
		if o.Fields == nil {
			o.Fields = make(map[string][]string)
		}
		for _, field := range fields {
			for _, single := range strings.Split(field, ",") {
				if single = strings.TrimSpace(single); single != "" {
					o.Fields[collection] = append(o.Fields[collection], single)
				}
			}
		}
	}
}

// MarshalContext sets the opaque context value passed into the computed value
// sources and the visibility predicates.
func MarshalContext(ctx interface{}) MarshalOption {
	return func(o *MarshalOptions) {
		o.Context = ctx
	}
}

// MarshalMeta sets the top level document meta.
func MarshalMeta(meta Meta) MarshalOption {
	return func(o *MarshalOptions) {
		o.Meta = meta
	}
}

// MarshalLinks sets the top level document links.
func MarshalLinks(links Links) MarshalOption {
	return func(o *MarshalOptions) {
		o.Links = links
	}
}

// MarshalJSONAPI sets the top level jsonapi object.
func MarshalJSONAPI(jsonapi map[string]interface{}) MarshalOption {
	return func(o *MarshalOptions) {
		o.JSONAPI = jsonapi
	}
}

// MarshalNamingConvention overrides the naming convention for a single call.
func MarshalNamingConvention(convention namer.NamingConvention) MarshalOption {
	return func(o *MarshalOptions) {
		o.NamingConvention = convention
	}
}

// MarshalBaseURL overrides the configured base url for a single call.
func MarshalBaseURL(baseURL string) MarshalOption {
	return func(o *MarshalOptions) {
		o.BaseURL = strings.TrimSuffix(baseURL, "/")
		o.baseURLSet = true
	}
}

// MarshalWithLinks overrides the configured link emission for a single call.
func MarshalWithLinks(links bool) MarshalOption {
	return func(o *MarshalOptions) {
		o.links = &links
	}
}

// MarshalNamespace selects a named model registry for a single call.
func MarshalNamespace(namespace string) MarshalOption {
	return func(o *MarshalOptions) {
		o.Namespace = namespace
	}
}

// MarshalModel overrides the registry lookup for the primary data.
func MarshalModel(model *mapping.ModelStruct) MarshalOption {
	return func(o *MarshalOptions) {
		o.Model = model
	}
}
