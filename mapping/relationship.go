package mapping

import (
	"reflect"
)

// RelationshipKind defines the relationship cardinality.
type RelationshipKind int

const (
	// RelUnknown is the zero value relationship kind.
	RelUnknown RelationshipKind = iota
	// RelHasOne is the to-one relationship kind.
	RelHasOne
	// RelHasMany is the to-many relationship kind.
	RelHasMany
)

func (k RelationshipKind) String() string {
	switch k {
	case RelHasOne:
		return "has_one"
	case RelHasMany:
		return "has_many"
	}
	return "unknown"
}

// Relationship is a single, immutable relationship declaration.
type Relationship struct {
	name       string
	kind       RelationshipKind
	fieldIndex []int
	resolver   ValueFunc
	links      bool
	data       bool
	collection string
	ifPred     Predicate
	unlessPred Predicate
}

// Name returns the relationship's canonical name.
func (r *Relationship) Name() string {
	return r.name
}

// Kind returns the relationship cardinality.
func (r *Relationship) Kind() RelationshipKind {
	return r.kind
}

// Links checks if the relationship links object should be encoded.
func (r *Relationship) Links() bool {
	return r.links
}

// Data checks if the relationship linkage data should be encoded eagerly,
// independent of the include parameters.
func (r *Relationship) Data() bool {
	return r.data
}

// Collection returns the declared related collection override. An empty
// string means the related model's own collection.
func (r *Relationship) Collection() string {
	return r.collection
}

// Visible evaluates the relationship's visibility gates for given model.
func (r *Relationship) Visible(model, ctx interface{}) bool {
	if r.ifPred != nil && !r.ifPred(model, ctx) {
		return false
	}
	if r.unlessPred != nil && r.unlessPred(model, ctx) {
		return false
	}
	return true
}

// Resolve computes the related value for given model. For the has one kind
// the result is a single related model or nil, for the has many kind it is a
// slice of related models.
func (r *Relationship) Resolve(model, ctx interface{}) interface{} {
	if r.resolver != nil {
		return r.resolver(model, ctx)
	}

	v := reflect.Indirect(reflect.ValueOf(model))
	if !v.IsValid() {
		return nil
	}
	field := v.FieldByIndex(r.fieldIndex)
	switch field.Kind() {
	case reflect.Ptr, reflect.Slice, reflect.Interface, reflect.Map:
		if field.IsNil() {
			return nil
		}
	}
	return field.Interface()
}
