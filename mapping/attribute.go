package mapping

import (
	"reflect"
)

// Attribute is a single, immutable attribute declaration. Its value source is
// either a struct field accessor or a computed function.
type Attribute struct {
	name       string
	fieldIndex []int
	fieldName  string
	valueFunc  ValueFunc
	ifPred     Predicate
	unlessPred Predicate
}

// Name returns the attribute's canonical name.
func (a *Attribute) Name() string {
	return a.name
}

// IsComputed checks if the attribute value source is a computed function.
func (a *Attribute) IsComputed() bool {
	return a.valueFunc != nil
}

// Visible evaluates the attribute's visibility gates for given model.
func (a *Attribute) Visible(model, ctx interface{}) bool {
	if a.ifPred != nil && !a.ifPred(model, ctx) {
		return false
	}
	if a.unlessPred != nil && a.unlessPred(model, ctx) {
		return false
	}
	return true
}

// Value computes the attribute value for given model.
func (a *Attribute) Value(model, ctx interface{}) interface{} {
	if a.valueFunc != nil {
		return a.valueFunc(model, ctx)
	}

	v := reflect.Indirect(reflect.ValueOf(model))
	if !v.IsValid() {
		return nil
	}
	return v.FieldByIndex(a.fieldIndex).Interface()
}
