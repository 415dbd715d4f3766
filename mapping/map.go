package mapping

import (
	"reflect"

	"github.com/neuronlabs/jsonapi/errors"
	"github.com/neuronlabs/jsonapi/errors/class"
	"github.com/neuronlabs/jsonapi/log"
)

// ModelMap is the registry mapping the domain types and collection names to
// their model definitions.
type ModelMap struct {
	models      map[reflect.Type]*ModelStruct
	collections map[string]*ModelStruct
}

// NewModelMap creates an empty model map.
func NewModelMap() *ModelMap {
	return &ModelMap{
		models:      make(map[reflect.Type]*ModelStruct),
		collections: make(map[string]*ModelStruct),
	}
}

// RegisterModels registers the provided model definitions. Any declaration
// error recorded while building a definition is surfaced here.
func (m *ModelMap) RegisterModels(models ...*ModelStruct) error {
	for _, model := range models {
		if model.err != nil {
			return model.err
		}
		if _, ok := m.models[model.modelType]; ok {
			return errors.Newf(class.ModelAlreadyMapped, "model: '%s' registered more than once", model.modelType.Name())
		}
		if _, ok := m.collections[model.collection]; ok {
			return errors.Newf(class.ModelAlreadyMapped, "collection: '%s' registered more than once", model.collection)
		}

		m.models[model.modelType] = model
		m.collections[model.collection] = model
		log.Debugf("Model: '%s' registered into collection: '%s'", model.modelType.Name(), model.collection)
	}
	return nil
}

// GetModelStruct returns the model definition registered for the type of the
// provided 'model' instance.
func (m *ModelMap) GetModelStruct(model interface{}) (*ModelStruct, error) {
	t := reflect.TypeOf(model)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil {
		return nil, errors.New(class.ModelNotMapped, "getting model struct for a nil model")
	}

	mStruct, ok := m.models[t]
	if !ok {
		return nil, errors.Newf(class.ModelNotMapped, "model: '%s' is not registered", t.Name()).
			SetDetailf("Model: '%s' is not mapped within the serializer registry.", t.Name())
	}
	return mStruct, nil
}

// ModelByCollection returns the model definition registered for given
// canonical collection name.
func (m *ModelMap) ModelByCollection(collection string) (*ModelStruct, bool) {
	mStruct, ok := m.collections[collection]
	return mStruct, ok
}

// Models returns all the registered model definitions.
func (m *ModelMap) Models() []*ModelStruct {
	models := make([]*ModelStruct, 0, len(m.models))
	for _, mStruct := range m.models {
		models = append(models, mStruct)
	}
	return models
}
