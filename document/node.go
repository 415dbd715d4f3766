package document

import (
	"fmt"
	"reflect"

	"github.com/neuronlabs/jsonapi/mapping"
)

// visitNode encodes a single model into its JSON API resource object. The
// 'linkage' set contains the canonical relationship names that must carry the
// 'data' member at this nesting level. A non empty 'collection' overrides the
// resource type of the model's own collection.
func (s *scope) visitNode(model interface{}, mStruct *mapping.ModelStruct, linkage map[string]struct{}, collection string) (*node, error) {
	if model == nil {
		return nil, nil
	}
	if collection == "" {
		collection = mStruct.Collection()
	}

	n := &node{Type: s.conv.Namer(collection)}

	id, err := mStruct.PrimaryValue(model, s.ctx)
	if err != nil {
		return nil, err
	}
	n.ID = id

	for _, attr := range mStruct.Attributes() {
		if !attr.Visible(model, s.ctx) {
			continue
		}
		if !s.fieldsetAllows(collection, attr.Name()) {
			continue
		}
		if n.Attributes == nil {
			n.Attributes = make(map[string]interface{})
		}
		n.Attributes[s.conv.Namer(attr.Name())] = attr.Value(model, s.ctx)
	}

	for _, rel := range mStruct.Relationships() {
		if !rel.Visible(model, s.ctx) {
			continue
		}
		if !s.fieldsetAllows(collection, rel.Name()) {
			continue
		}

		entry, err := s.visitRelationship(model, rel, n, linkage)
		if err != nil {
			return nil, err
		}
		if entry == nil {
			continue
		}
		if n.Relationships == nil {
			n.Relationships = make(map[string]interface{})
		}
		n.Relationships[s.conv.Namer(rel.Name())] = entry
	}

	n.Links = s.resourceLinks(model, mStruct, collection, id)
	if meta := mStruct.MetaValue(model, s.ctx); len(meta) != 0 {
		n.Meta = Meta(meta)
	}
	if jsonapi := mStruct.JSONAPIValue(model, s.ctx); len(jsonapi) != 0 {
		n.JSONAPI = jsonapi
	}
	return n, nil
}

// visitRelationship encodes a single relationship entry. A nil entry with no
// error means the relationship carries neither links nor data and its key is
// omitted entirely.
func (s *scope) visitRelationship(model interface{}, rel *mapping.Relationship, n *node, linkage map[string]struct{}) (interface{}, error) {
	_, linked := linkage[rel.Name()]
	includeData := rel.Data() || linked

	var relLinks Links
	if rel.Links() && s.links {
		cased := s.conv.Namer(rel.Name())
		relLinks = Links{
			"self":    fmt.Sprintf("%s/%s/%s/relationships/%s", s.baseURL, n.Type, n.ID, cased),
			"related": fmt.Sprintf("%s/%s/%s/%s", s.baseURL, n.Type, n.ID, cased),
		}
	}

	if !includeData {
		if relLinks == nil {
			return nil, nil
		}
		return &relationshipLinksNode{Links: relLinks}, nil
	}

	related := relatedModels(rel.Resolve(model, s.ctx))
	if rel.Kind() == mapping.RelHasMany {
		data := []*node{}
		for _, relatedModel := range related {
			identifier, err := s.identifierNode(relatedModel, rel)
			if err != nil {
				return nil, err
			}
			data = append(data, identifier)
		}
		return &relationshipManyNode{Data: data, Links: relLinks}, nil
	}

	// has one
	if len(related) == 0 {
		return &relationshipOneNode{Links: relLinks}, nil
	}
	identifier, err := s.identifierNode(related[0], rel)
	if err != nil {
		return nil, err
	}
	return &relationshipOneNode{Data: identifier, Links: relLinks}, nil
}

// identifierNode encodes the {id, type} resource identifier of the related
// model, honoring the relationship's collection override.
func (s *scope) identifierNode(model interface{}, rel *mapping.Relationship) (*node, error) {
	mStruct, err := s.models.GetModelStruct(model)
	if err != nil {
		return nil, err
	}

	collection := rel.Collection()
	if collection == "" {
		collection = mStruct.Collection()
	}

	id, err := mStruct.PrimaryValue(model, s.ctx)
	if err != nil {
		return nil, err
	}
	return &node{Type: s.conv.Namer(collection), ID: id}, nil
}

func (s *scope) resourceLinks(model interface{}, mStruct *mapping.ModelStruct, collection, id string) Links {
	var links Links
	if s.links && id != "" {
		links = Links{
			"self": fmt.Sprintf("%s/%s/%s", s.baseURL, s.conv.Namer(collection), id),
		}
	}

	custom := mStruct.LinksValue(model, s.ctx)
	if len(custom) != 0 {
		if links == nil {
			links = Links{}
		}
		for key, value := range custom {
			links[key] = value
		}
	}
	return links
}

// isNilModel checks if the provided model interface holds a typed nil value.
func isNilModel(model interface{}) bool {
	if model == nil {
		return true
	}
	v := reflect.ValueOf(model)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface:
		return v.IsNil()
	}
	return false
}
