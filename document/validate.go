package document

import (
	"gopkg.in/go-playground/validator.v9"

	"github.com/neuronlabs/jsonapi/errors"
	"github.com/neuronlabs/jsonapi/log"
	"github.com/neuronlabs/jsonapi/namer"
)

// MapValidationErrors translates the validation errors of given 'model' into
// the JSON API error objects. The source pointers reference the declared
// attributes cased with the active naming convention, so the pointer segments
// match the attribute keys of the encoded documents.
func (m *Marshaler) MapValidationErrors(model interface{}, err error, options ...MarshalOption) []*errors.ErrorObject {
	if _, ok := err.(*validator.InvalidValidationError); ok {
		log.Debugf("Invalid validation error: %v", err)
		return []*errors.ErrorObject{errors.ErrInternalError.Copy()}
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []*errors.ErrorObject{errors.ErrInternalError.Copy()}
	}

	o := m.newOptions(options)
	s, scopeErr := m.newScope(o)
	if scopeErr != nil {
		return []*errors.ErrorObject{errors.ErrInternalError.Copy()}
	}

	mStruct, structErr := m.modelStruct(s, o, model)

	var errorObjects []*errors.ErrorObject
	for _, fieldError := range validationErrors {
		name := namer.Unformat(fieldError.Field())
		if structErr == nil {
			if attr, ok := mStruct.AttributeByStructField(fieldError.Field()); ok {
				name = attr.Name()
			}
		}
		cased := s.conv.Namer(name)

		errObj := errors.ErrInvalidJSONFieldValue.Copy()
		errObj.WithDetailf("Invalid: '%s' for: '%s'", fieldError.ActualTag(), cased)
		errObj.WithPointer("/data/attributes/" + cased)
		errorObjects = append(errorObjects, errObj)
	}
	return errorObjects
}
