package document

import (
	"io"
	"reflect"

	json "github.com/goccy/go-json"

	"github.com/neuronlabs/jsonapi/config"
	"github.com/neuronlabs/jsonapi/errors"
	"github.com/neuronlabs/jsonapi/errors/class"
	"github.com/neuronlabs/jsonapi/log"
	"github.com/neuronlabs/jsonapi/mapping"
	"github.com/neuronlabs/jsonapi/namer"
)

// Marshaler assembles the JSON API documents for the models registered within
// its model map. The zero configuration comes from the processwide defaults
// and every marshal call may override it with its options.
type Marshaler struct {
	models     *mapping.ModelMap
	namespaces map[string]*mapping.ModelMap
	options    *config.Options
}

// NewMarshaler creates the marshaler for given model map 'models'. When the
// 'options' are nil every call reads the processwide defaults, so the scoped
// configuration overrides stay observable.
func NewMarshaler(models *mapping.ModelMap, options *config.Options) *Marshaler {
	return &Marshaler{
		models:     models,
		namespaces: make(map[string]*mapping.ModelMap),
		options:    options,
	}
}

// RegisterNamespace registers a named model registry selectable with the
// MarshalNamespace option.
func (m *Marshaler) RegisterNamespace(name string, models *mapping.ModelMap) {
	m.namespaces[name] = models
}

// Marshal encodes the single resource document for given 'model' into the
// writer 'w'. A nil model encodes into the null primary data. Providing an
// iterable value is an ambiguous collection error - use MarshalCollection.
func (m *Marshaler) Marshal(w io.Writer, model interface{}, options ...MarshalOption) error {
	o := m.newOptions(options)
	s, err := m.newScope(o)
	if err != nil {
		return err
	}

	if isNilModel(model) {
		payload := &onePayload{}
		payload.setTopLevel(o.Links, o.Meta, o.JSONAPI)
		return marshalPayload(w, payload)
	}

	t := reflect.TypeOf(model)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() == reflect.Slice || t.Kind() == reflect.Array {
		return errors.Newf(class.EncodingMarshalAmbiguousCollection, "marshaling a slice value with the single resource intent").
			SetDetail("Provided value is a collection - use MarshalCollection for the array shaped primary data.")
	}

	mStruct, err := m.modelStruct(s, o, model)
	if err != nil {
		return err
	}

	tree := parseIncludePaths(o.Includes)
	linkage, err := s.primaryLinkage(mStruct, tree)
	if err != nil {
		return err
	}

	data, err := s.visitNode(model, mStruct, linkage, "")
	if err != nil {
		return err
	}
	payload := &onePayload{Data: data}

	if !tree.isEmpty() {
		included, err := s.marshalIncluded([]interface{}{model}, []*mapping.ModelStruct{mStruct}, tree)
		if err != nil {
			return err
		}
		payload.setIncluded(included)
	}

	payload.setTopLevel(o.Links, o.Meta, o.JSONAPI)
	return marshalPayload(w, payload)
}

// MarshalCollection encodes the resource collection document for given
// 'models' slice into the writer 'w'. A nil or empty slice encodes into the
// empty array primary data. Providing a non iterable value is an ambiguous
// collection error - use Marshal.
func (m *Marshaler) MarshalCollection(w io.Writer, models interface{}, options ...MarshalOption) error {
	o := m.newOptions(options)
	s, err := m.newScope(o)
	if err != nil {
		return err
	}

	elems, err := collectionElems(models)
	if err != nil {
		return err
	}

	tree := parseIncludePaths(o.Includes)
	payload := &manyPayload{Data: []*node{}}

	structs := make([]*mapping.ModelStruct, len(elems))
	for i, elem := range elems {
		mStruct, err := m.modelStruct(s, o, elem)
		if err != nil {
			return err
		}
		structs[i] = mStruct

		linkage, err := s.primaryLinkage(mStruct, tree)
		if err != nil {
			return err
		}
		data, err := s.visitNode(elem, mStruct, linkage, "")
		if err != nil {
			return err
		}
		payload.Data = append(payload.Data, data)
	}

	if !tree.isEmpty() {
		included, err := s.marshalIncluded(elems, structs, tree)
		if err != nil {
			return err
		}
		payload.setIncluded(included)
	}

	payload.setTopLevel(o.Links, o.Meta, o.JSONAPI)
	return marshalPayload(w, payload)
}

// MarshalErrors writes a JSON API response for the given error objects.
//
// For more information on JSON API error payloads, see the spec here:
// http://jsonapi.org/format/#document-top-level
// and here: http://jsonapi.org/format/#error-objects.
func MarshalErrors(w io.Writer, errorObjects ...*errors.ErrorObject) error {
	return marshalPayload(w, &ErrorsPayload{Errors: errorObjects})
}

// ErrorsPayload is a serializer struct for representing a valid JSON API errors payload.
type ErrorsPayload struct {
	Errors []*errors.ErrorObject `json:"errors"`
}

// marshalIncluded resolves the include path tree over the primary models and
// encodes every discovered resource in the discovery order.
func (s *scope) marshalIncluded(models []interface{}, structs []*mapping.ModelStruct, tree *includeNode) ([]*node, error) {
	table := newResourceTable()
	for i, model := range models {
		if err := s.resolveIncludes([]interface{}{model}, structs[i], tree, table); err != nil {
			return nil, err
		}
	}

	if len(table.order) == 0 {
		return nil, nil
	}
	log.Debugf("Discovered %d resources to include", len(table.order))

	included := make([]*node, 0, len(table.order))
	for _, key := range table.order {
		entry := table.entries[key]
		n, err := s.visitNode(entry.model, entry.mStruct, entry.linkage, entry.collection)
		if err != nil {
			return nil, err
		}
		included = append(included, n)
	}
	return included, nil
}

func (m *Marshaler) newOptions(options []MarshalOption) *MarshalOptions {
	o := &MarshalOptions{}
	for _, option := range options {
		option(o)
	}
	return o
}

func (m *Marshaler) newScope(o *MarshalOptions) (*scope, error) {
	defaults := m.options
	if defaults == nil {
		defaults = config.Default()
	}

	s := &scope{
		models:  m.models,
		conv:    defaults.NamingConvention,
		baseURL: defaults.BaseURL,
		links:   defaults.Links,
		ctx:     o.Context,
	}

	if o.Namespace != "" {
		models, ok := m.namespaces[o.Namespace]
		if !ok {
			return nil, errors.Newf(class.ModelNotMapped, "unknown model namespace: '%s'", o.Namespace)
		}
		s.models = models
	}
	if o.NamingConvention != 0 {
		s.conv = o.NamingConvention
	}
	if o.baseURLSet {
		s.baseURL = o.BaseURL
	}
	if o.links != nil {
		s.links = *o.links
	}

	if len(o.Fields) != 0 {
		s.fieldsets = make(map[string]map[string]struct{})
		for collection, fields := range o.Fields {
			fieldset := make(map[string]struct{})
			for _, field := range fields {
				fieldset[namer.Unformat(field)] = struct{}{}
			}
			s.fieldsets[namer.Unformat(collection)] = fieldset
		}
	}
	return s, nil
}

func (m *Marshaler) modelStruct(s *scope, o *MarshalOptions, model interface{}) (*mapping.ModelStruct, error) {
	if o.Model != nil {
		return o.Model, nil
	}
	return s.models.GetModelStruct(model)
}

// collectionElems normalizes the collection input into a slice of its non nil
// elements. A nil input is a valid, empty collection.
func collectionElems(models interface{}) ([]interface{}, error) {
	if models == nil {
		return nil, nil
	}

	v := reflect.ValueOf(models)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return nil, nil
		}
		v = v.Elem()
	}
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return nil, errors.Newf(class.EncodingMarshalAmbiguousCollection, "marshaling a non slice value with the collection intent").
			SetDetail("Provided value is not a collection - use Marshal for the single resource primary data.")
	}

	elems := make([]interface{}, 0, v.Len())
	for i := 0; i < v.Len(); i++ {
		elem := v.Index(i)
		if elem.Kind() == reflect.Ptr && elem.IsNil() {
			continue
		}
		elems = append(elems, elem.Interface())
	}
	return elems, nil
}

func marshalPayload(w io.Writer, payload interface{}) error {
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		return errors.Newf(class.EncodingMarshalOutput, "encoding the document failed: %v", err)
	}
	return nil
}
