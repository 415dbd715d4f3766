package mapping

// ValueFunc computes a value for given model within the provided marshaling
// context. It is the computed variant of the field value sources.
type ValueFunc func(model, ctx interface{}) interface{}

// ObjectFunc computes an object value - meta, links or jsonapi - for given
// model within the provided marshaling context.
type ObjectFunc func(model, ctx interface{}) map[string]interface{}

// Predicate is the visibility gate evaluated for given model within the
// provided marshaling context.
type Predicate func(model, ctx interface{}) bool

// fieldDeclaration gathers the options provided for a single attribute,
// relationship or primary declaration.
type fieldDeclaration struct {
	field      string
	compute    ValueFunc
	ifPred     Predicate
	unlessPred Predicate
	links      bool
	data       bool
	collection string
}

// FieldOption changes a single attribute, relationship or primary declaration.
type FieldOption func(*fieldDeclaration)

// FromField sets the struct field used as the value source. By default the
// declaration name is matched against the struct fields case insensitively.
func FromField(name string) FieldOption {
	return func(d *fieldDeclaration) {
		d.field = name
	}
}

// Computed sets the function used as the value source. The function receives
// the model and the caller context provided in the marshal options.
func Computed(fn ValueFunc) FieldOption {
	return func(d *fieldDeclaration) {
		d.compute = fn
	}
}

// If gates the declaration - it is evaluated only when the predicate is true.
func If(p Predicate) FieldOption {
	return func(d *fieldDeclaration) {
		d.ifPred = p
	}
}

// Unless gates the declaration - it is evaluated only when the predicate is false.
func Unless(p Predicate) FieldOption {
	return func(d *fieldDeclaration) {
		d.unlessPred = p
	}
}

// WithLinks enables the relationship links object.
func WithLinks() FieldOption {
	return func(d *fieldDeclaration) {
		d.links = true
	}
}

// WithData enables the eager relationship linkage data, independent of the
// include parameters.
func WithData() FieldOption {
	return func(d *fieldDeclaration) {
		d.data = true
	}
}

// WithCollection overrides the collection used for the related resources.
func WithCollection(collection string) FieldOption {
	return func(d *fieldDeclaration) {
		d.collection = collection
	}
}
