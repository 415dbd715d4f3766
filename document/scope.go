package document

import (
	"github.com/neuronlabs/jsonapi/mapping"
	"github.com/neuronlabs/jsonapi/namer"
)

// scope is the normalized state of a single marshal call. It is created once
// per call and read only afterwards.
type scope struct {
	models  *mapping.ModelMap
	conv    namer.NamingConvention
	baseURL string
	links   bool
	ctx     interface{}

	// fieldsets maps the canonical collection name to the set of canonical
	// field names allowed for that collection. A missing entry means no
	// restriction.
	fieldsets map[string]map[string]struct{}
}

// fieldsetAllows checks if given canonical field name of the collection
// passes the sparse fieldset restriction.
func (s *scope) fieldsetAllows(collection, name string) bool {
	fieldset, ok := s.fieldsets[collection]
	if !ok {
		return true
	}
	_, ok = fieldset[name]
	return ok
}
