package mapping

import (
	"reflect"
	"strings"

	"github.com/jinzhu/inflection"

	"github.com/neuronlabs/jsonapi/errors"
	"github.com/neuronlabs/jsonapi/errors/class"
	"github.com/neuronlabs/jsonapi/namer"
)

// ModelStruct describes how a single domain type maps into JSON API resource
// objects - its collection name, primary accessor, attribute and relationship
// declarations. The declarations are built explicitly with the ModelStruct
// methods and become immutable once the model is registered within a ModelMap.
type ModelStruct struct {
	modelType  reflect.Type
	collection string

	primaryIndex []int
	primaryFunc  ValueFunc

	attributes []*Attribute
	attrNames  map[string]*Attribute

	relationships []*Relationship
	relNames      map[string]*Relationship

	meta    ObjectFunc
	links   ObjectFunc
	jsonapi ObjectFunc

	// err holds the first declaration error, surfaced at registration.
	err error
}

// NewModel creates the model mapping for given 'model' instance. The default
// collection name is the pluralized, snake cased model type name and the
// default primary accessor is the 'ID' field.
func NewModel(model interface{}) *ModelStruct {
	m := &ModelStruct{
		attrNames: make(map[string]*Attribute),
		relNames:  make(map[string]*Relationship),
	}

	t := reflect.TypeOf(model)
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t == nil || t.Kind() != reflect.Struct {
		m.err = errors.Newf(class.ModelDefinitionInvalid, "provided model is not a struct type: %T", model)
		return m
	}
	m.modelType = t
	m.collection = namer.Unformat(inflection.Plural(t.Name()))

	if index, ok := findField(t, "id"); ok {
		m.primaryIndex = index
	}
	return m
}

// SetCollection overrides the model's collection name. The name is stored in
// its canonical snake cased form.
func (m *ModelStruct) SetCollection(collection string) *ModelStruct {
	m.collection = namer.Unformat(collection)
	return m
}

// Primary declares the primary value source.
func (m *ModelStruct) Primary(options ...FieldOption) *ModelStruct {
	d := m.declare(options)
	if m.err != nil {
		return m
	}
	switch {
	case d.compute != nil:
		m.primaryFunc = d.compute
		m.primaryIndex = nil
	case d.field != "":
		index, ok := findField(m.modelType, d.field)
		if !ok {
			m.err = errors.Newf(class.ModelFieldNotFound, "model: '%s' has no primary field: '%s'", m.modelType.Name(), d.field)
			return m
		}
		m.primaryIndex = index
	default:
		m.err = errors.Newf(class.ModelDefinitionInvalid, "model: '%s' primary declared with no value source", m.modelType.Name())
	}
	return m
}

// Attribute declares a single attribute with given 'name'. Unless the
// FromField or Computed option is provided the value source defaults to the
// struct field matching the name case insensitively.
func (m *ModelStruct) Attribute(name string, options ...FieldOption) *ModelStruct {
	d := m.declare(options)
	if m.err != nil {
		return m
	}

	attr := &Attribute{
		name:       namer.Unformat(name),
		valueFunc:  d.compute,
		ifPred:     d.ifPred,
		unlessPred: d.unlessPred,
	}
	if _, ok := m.attrNames[attr.name]; ok {
		m.err = errors.Newf(class.ModelDefinitionInvalid, "model: '%s' attribute: '%s' declared more than once", m.modelType.Name(), attr.name)
		return m
	}

	if attr.valueFunc == nil {
		field := d.field
		if field == "" {
			field = attr.name
		}
		index, ok := findField(m.modelType, field)
		if !ok {
			m.err = errors.Newf(class.ModelFieldNotFound, "model: '%s' has no field for attribute: '%s'", m.modelType.Name(), attr.name)
			return m
		}
		attr.fieldIndex = index
		attr.fieldName = m.modelType.FieldByIndex(index).Name
	}

	m.attributes = append(m.attributes, attr)
	m.attrNames[attr.name] = attr
	return m
}

// HasOne declares a single to-one relationship with given 'name'.
func (m *ModelStruct) HasOne(name string, options ...FieldOption) *ModelStruct {
	return m.relationship(name, RelHasOne, options)
}

// HasMany declares a single to-many relationship with given 'name'.
func (m *ModelStruct) HasMany(name string, options ...FieldOption) *ModelStruct {
	return m.relationship(name, RelHasMany, options)
}

// SetMeta sets the resource level meta object producer.
func (m *ModelStruct) SetMeta(fn ObjectFunc) *ModelStruct {
	m.meta = fn
	return m
}

// SetLinks sets the resource level links producer. The produced values are
// merged over the default 'self' link.
func (m *ModelStruct) SetLinks(fn ObjectFunc) *ModelStruct {
	m.links = fn
	return m
}

// SetJSONAPI sets the resource level jsonapi object producer.
func (m *ModelStruct) SetJSONAPI(fn ObjectFunc) *ModelStruct {
	m.jsonapi = fn
	return m
}

// Collection returns the model's canonical collection name.
func (m *ModelStruct) Collection() string {
	return m.collection
}

// Type returns the model's reflect type.
func (m *ModelStruct) Type() reflect.Type {
	return m.modelType
}

// Attributes returns the declared attributes in the declaration order.
func (m *ModelStruct) Attributes() []*Attribute {
	return m.attributes
}

// Relationships returns the declared relationships in the declaration order.
func (m *ModelStruct) Relationships() []*Relationship {
	return m.relationships
}

// RelationshipField returns the relationship declared with the canonical 'name'.
func (m *ModelStruct) RelationshipField(name string) (*Relationship, bool) {
	rel, ok := m.relNames[name]
	return rel, ok
}

// AttributeByStructField returns the attribute declared over the struct field
// named 'fieldName'.
func (m *ModelStruct) AttributeByStructField(fieldName string) (*Attribute, bool) {
	for _, attr := range m.attributes {
		if attr.fieldName == fieldName {
			return attr, true
		}
	}
	return nil, false
}

// MetaValue computes the resource level meta object.
func (m *ModelStruct) MetaValue(model, ctx interface{}) map[string]interface{} {
	if m.meta == nil {
		return nil
	}
	return m.meta(model, ctx)
}

// LinksValue computes the custom resource level links.
func (m *ModelStruct) LinksValue(model, ctx interface{}) map[string]interface{} {
	if m.links == nil {
		return nil
	}
	return m.links(model, ctx)
}

// JSONAPIValue computes the resource level jsonapi object.
func (m *ModelStruct) JSONAPIValue(model, ctx interface{}) map[string]interface{} {
	if m.jsonapi == nil {
		return nil
	}
	return m.jsonapi(model, ctx)
}

func (m *ModelStruct) relationship(name string, kind RelationshipKind, options []FieldOption) *ModelStruct {
	d := m.declare(options)
	if m.err != nil {
		return m
	}

	rel := &Relationship{
		name:       namer.Unformat(name),
		kind:       kind,
		resolver:   d.compute,
		links:      d.links,
		data:       d.data,
		collection: namer.Unformat(d.collection),
		ifPred:     d.ifPred,
		unlessPred: d.unlessPred,
	}
	if _, ok := m.relNames[rel.name]; ok {
		m.err = errors.Newf(class.ModelDefinitionInvalid, "model: '%s' relationship: '%s' declared more than once", m.modelType.Name(), rel.name)
		return m
	}

	if rel.resolver == nil {
		field := d.field
		if field == "" {
			field = rel.name
		}
		index, ok := findField(m.modelType, field)
		if !ok {
			m.err = errors.Newf(class.ModelFieldNotFound, "model: '%s' has no field for relationship: '%s'", m.modelType.Name(), rel.name)
			return m
		}
		rel.fieldIndex = index
	}

	m.relationships = append(m.relationships, rel)
	m.relNames[rel.name] = rel
	return m
}

func (m *ModelStruct) declare(options []FieldOption) *fieldDeclaration {
	d := &fieldDeclaration{}
	for _, option := range options {
		option(d)
	}
	return d
}

// findField matches the declaration 'name' against the struct fields of 't'.
// The exact field name has priority, then the camel cased declaration name
// and finally a case insensitive match with the underscores stripped, so that
// 'id' matches the 'ID' field and 'fancy_body' matches 'FancyBody'.
func findField(t reflect.Type, name string) ([]int, bool) {
	if field, ok := t.FieldByName(name); ok {
		return field.Index, true
	}
	if field, ok := t.FieldByName(namer.NamingCamel(name)); ok {
		return field.Index, true
	}

	stripped := strings.ReplaceAll(name, "_", "")
	field, ok := t.FieldByNameFunc(func(fieldName string) bool {
		return strings.EqualFold(fieldName, stripped)
	})
	if !ok {
		return nil, false
	}
	return field.Index, true
}
