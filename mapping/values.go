package mapping

import (
	"fmt"
	"reflect"
	"strconv"

	"github.com/neuronlabs/jsonapi/errors"
	"github.com/neuronlabs/jsonapi/errors/class"
)

// PrimaryValue computes the primary value of given model and formats it into
// its string form. The returned value is empty when the primary is absent -
// the model represents a new, unsaved entity.
func (m *ModelStruct) PrimaryValue(model, ctx interface{}) (string, error) {
	if m.primaryFunc != nil {
		return formatPrimary(reflect.ValueOf(m.primaryFunc(model, ctx)))
	}
	if m.primaryIndex == nil {
		return "", errors.Newf(class.ModelDefinitionInvalid, "model: '%s' has no primary field declared", m.modelType.Name())
	}

	v := reflect.Indirect(reflect.ValueOf(model))
	if !v.IsValid() {
		return "", nil
	}
	return formatPrimary(v.FieldByIndex(m.primaryIndex))
}

func formatPrimary(v reflect.Value) (string, error) {
	if !v.IsValid() {
		return "", nil
	}
	if v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return "", nil
		}
		v = v.Elem()
	}

	// a zero valued primary marks the unsaved entity
	if reflect.DeepEqual(v.Interface(), reflect.Zero(v.Type()).Interface()) {
		return "", nil
	}

	switch v.Kind() {
	case reflect.String:
		return v.String(), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(v.Int(), 10), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(v.Uint(), 10), nil
	}

	if stringer, ok := v.Interface().(fmt.Stringer); ok {
		return stringer.String(), nil
	}
	return "", errors.Newf(class.ModelPrimaryValue, "invalid primary field type: %v", v.Type())
}
