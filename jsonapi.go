package jsonapi

import (
	"io"

	"github.com/neuronlabs/jsonapi/document"
	"github.com/neuronlabs/jsonapi/errors"
	"github.com/neuronlabs/jsonapi/mapping"
)

// models is the default model map used by the package level functions.
var models = mapping.NewModelMap()

// marshaler is the default document marshaler. It reads the config defaults
// on each call so that scoped configuration overrides remain visible.
var marshaler = document.NewMarshaler(models, nil)

// DefaultMarshaler returns the marshaler used by the package level functions.
func DefaultMarshaler() *document.Marshaler {
	return marshaler
}

// DefaultModels returns the model map used by the package level functions.
func DefaultModels() *mapping.ModelMap {
	return models
}

// RegisterModels registers the provided model definitions within the default
// model map.
func RegisterModels(defs ...*mapping.ModelStruct) error {
	return models.RegisterModels(defs...)
}

// Marshal writes the jsonapi document for a single model into 'w'.
func Marshal(w io.Writer, model interface{}, options ...document.MarshalOption) error {
	return marshaler.Marshal(w, model, options...)
}

// MarshalCollection writes the jsonapi document for a collection of models
// into 'w'.
func MarshalCollection(w io.Writer, collection interface{}, options ...document.MarshalOption) error {
	return marshaler.MarshalCollection(w, collection, options...)
}

// MarshalErrors writes the jsonapi errors document into 'w'.
func MarshalErrors(w io.Writer, errs ...*errors.ErrorObject) error {
	return document.MarshalErrors(w, errs...)
}
