package document

import (
	"reflect"
	"sort"
	"strings"

	"github.com/neuronlabs/jsonapi/errors"
	"github.com/neuronlabs/jsonapi/errors/class"
	"github.com/neuronlabs/jsonapi/log"
	"github.com/neuronlabs/jsonapi/mapping"
	"github.com/neuronlabs/jsonapi/namer"
)

// includeNode is a single node of the include path tree. The 'requested' flag
// is true iff some include path terminates at this exact node - intermediate
// path segments stay unrequested while still having children.
type includeNode struct {
	requested bool
	children  map[string]*includeNode
}

func newIncludeNode() *includeNode {
	return &includeNode{children: make(map[string]*includeNode)}
}

func (n *includeNode) isEmpty() bool {
	return len(n.children) == 0
}

// parseIncludePaths builds the include path tree by merging every dotted path.
// Parsing is idempotent - merging the same path twice changes nothing.
func parseIncludePaths(paths []string) *includeNode {
	root := newIncludeNode()
	for _, path := range paths {
		mergeIncludePath(root, path)
	}
	return root
}

func mergeIncludePath(n *includeNode, path string) {
	parts := strings.SplitN(path, ".", 2)
	head := strings.TrimSpace(parts[0])
	if head == "" {
		return
	}

	child, ok := n.children[head]
	if !ok {
		child = newIncludeNode()
		n.children[head] = child
	}
	if len(parts) == 2 {
		mergeIncludePath(child, parts[1])
	} else {
		child.requested = true
	}
}

// resourceKey is the compound document uniqueness key. The collection is
// always the canonical, pre-casing name.
type resourceKey struct {
	id         string
	collection string
}

// discoveredResource is a single entry of the discovered resource table.
type discoveredResource struct {
	model   interface{}
	mStruct *mapping.ModelStruct

	// collection is the canonical collection the resource is encoded under -
	// it may differ from the model's own collection for overridden relations.
	collection string

	// linkage is the set of canonical relationship names that must carry the
	// 'data' member when this resource is encoded.
	linkage map[string]struct{}
}

// resourceTable is the discovered resource table - at most one entry per
// (id, collection) pair, in the discovery order.
type resourceTable struct {
	entries map[resourceKey]*discoveredResource
	order   []resourceKey
}

func newResourceTable() *resourceTable {
	return &resourceTable{entries: make(map[resourceKey]*discoveredResource)}
}

// resolveIncludes walks the include path tree depth first for every provided
// root model, populating the discovered resource table. Objects reached
// through multiple paths are revisited to union their linkage sets but the
// identity keyed table keeps the output deduplicated.
func (s *scope) resolveIncludes(models []interface{}, mStruct *mapping.ModelStruct, tree *includeNode, table *resourceTable) error {
	for _, name := range sortedChildNames(tree) {
		child := tree.children[name]
		rel, err := s.matchRelationship(mStruct, name)
		if err != nil {
			return err
		}

		for _, model := range models {
			if model == nil || !rel.Visible(model, s.ctx) {
				continue
			}
			related := relatedModels(rel.Resolve(model, s.ctx))

			if child.requested {
				for _, relatedModel := range related {
					if err = s.discover(relatedModel, rel, child, table); err != nil {
						return err
					}
				}
			}

			// descend through unrequested pass-through nodes as well
			if child.isEmpty() {
				continue
			}
			for _, relatedModel := range related {
				relatedStruct, err := s.models.GetModelStruct(relatedModel)
				if err != nil {
					return err
				}
				if err = s.resolveIncludes([]interface{}{relatedModel}, relatedStruct, child, table); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// discover inserts the related model into the table or unions the linkage
// requirement into its existing entry.
func (s *scope) discover(model interface{}, rel *mapping.Relationship, node *includeNode, table *resourceTable) error {
	mStruct, err := s.models.GetModelStruct(model)
	if err != nil {
		return err
	}

	collection := rel.Collection()
	if collection == "" {
		collection = mStruct.Collection()
	}

	id, err := mStruct.PrimaryValue(model, s.ctx)
	if err != nil {
		return err
	}

	linkage, err := s.linkageSet(mStruct, node)
	if err != nil {
		return err
	}

	key := resourceKey{id: id, collection: collection}
	entry, ok := table.entries[key]
	if !ok {
		table.entries[key] = &discoveredResource{
			model:      model,
			mStruct:    mStruct,
			collection: collection,
			linkage:    linkage,
		}
		table.order = append(table.order, key)
		return nil
	}

	log.Debugf("Resource: '%s/%s' reached through multiple paths", collection, id)
	for name := range linkage {
		entry.linkage[name] = struct{}{}
	}
	return nil
}

// linkageSet collects the canonical names of the node's child relationships
// that are themselves requested at the next level. This is what lets a
// resource carry correct 'data' linkage without a second resolution pass.
func (s *scope) linkageSet(mStruct *mapping.ModelStruct, node *includeNode) (map[string]struct{}, error) {
	linkage := make(map[string]struct{})
	for _, name := range sortedChildNames(node) {
		if !node.children[name].requested {
			continue
		}
		rel, err := s.matchRelationship(mStruct, name)
		if err != nil {
			return nil, err
		}
		linkage[rel.Name()] = struct{}{}
	}
	return linkage, nil
}

// matchRelationship locates the relationship declared on 'mStruct' whose
// publicly cased name equals the include path 'segment'. A segment matching a
// declaration under a different casing fails with a detail suggesting the
// correctly cased form.
func (s *scope) matchRelationship(mStruct *mapping.ModelStruct, segment string) (*mapping.Relationship, error) {
	for _, rel := range mStruct.Relationships() {
		if s.conv.Namer(rel.Name()) == segment {
			return rel, nil
		}
	}

	if rel, ok := mStruct.RelationshipField(namer.Unformat(segment)); ok {
		return nil, errors.Newf(class.EncodingInvalidInclude, "invalid include path casing: '%s'", segment).
			SetDetailf("Invalid include parameter: '%s'. Perhaps you meant: '%s'.", segment, s.conv.Namer(rel.Name()))
	}
	return nil, errors.Newf(class.EncodingInvalidInclude, "invalid include path: '%s'", segment).
		SetDetailf("Collection: '%s' has no relationship: '%s'.", s.conv.Namer(mStruct.Collection()), segment)
}

// primaryLinkage computes the linkage set applied to the primary resources -
// the directly requested, non dotted include names.
func (s *scope) primaryLinkage(mStruct *mapping.ModelStruct, tree *includeNode) (map[string]struct{}, error) {
	return s.linkageSet(mStruct, tree)
}

func sortedChildNames(n *includeNode) []string {
	names := make([]string, 0, len(n.children))
	for name := range n.children {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// relatedModels normalizes a resolved relationship value into a slice of the
// non nil related models.
func relatedModels(value interface{}) []interface{} {
	if value == nil {
		return nil
	}

	v := reflect.ValueOf(value)
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		models := make([]interface{}, 0, v.Len())
		for i := 0; i < v.Len(); i++ {
			elem := v.Index(i)
			if elem.Kind() == reflect.Ptr && elem.IsNil() {
				continue
			}
			models = append(models, elem.Interface())
		}
		return models
	case reflect.Ptr:
		if v.IsNil() {
			return nil
		}
	}
	return []interface{}{value}
}
