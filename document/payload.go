package document

// payloader is used to encapsulate the single and collection payload types.
type payloader interface {
	setIncluded(included []*node)
	setTopLevel(links Links, meta Meta, jsonapi map[string]interface{})
}

// onePayload is used to represent a generic JSON API payload where a single
// resource (node) was included as an {} in the "data" key.
type onePayload struct {
	Data     *node                  `json:"data"`
	Included []*node                `json:"included,omitempty"`
	Links    Links                  `json:"links,omitempty"`
	Meta     Meta                   `json:"meta,omitempty"`
	JSONAPI  map[string]interface{} `json:"jsonapi,omitempty"`
}

func (p *onePayload) setIncluded(included []*node) {
	p.Included = included
}

func (p *onePayload) setTopLevel(links Links, meta Meta, jsonapi map[string]interface{}) {
	p.Links = links
	p.Meta = meta
	p.JSONAPI = jsonapi
}

// manyPayload is used to represent a generic JSON API payload where many
// resources (nodes) were included in an [] in the "data" key.
type manyPayload struct {
	Data     []*node                `json:"data"`
	Included []*node                `json:"included,omitempty"`
	Links    Links                  `json:"links,omitempty"`
	Meta     Meta                   `json:"meta,omitempty"`
	JSONAPI  map[string]interface{} `json:"jsonapi,omitempty"`
}

func (p *manyPayload) setIncluded(included []*node) {
	p.Included = included
}

func (p *manyPayload) setTopLevel(links Links, meta Meta, jsonapi map[string]interface{}) {
	p.Links = links
	p.Meta = meta
	p.JSONAPI = jsonapi
}

// node is used to represent a generic JSON API Resource.
type node struct {
	Type          string                 `json:"type"`
	ID            string                 `json:"id,omitempty"`
	Attributes    map[string]interface{} `json:"attributes,omitempty"`
	Relationships map[string]interface{} `json:"relationships,omitempty"`
	Links         Links                  `json:"links,omitempty"`
	Meta          Meta                   `json:"meta,omitempty"`
	JSONAPI       map[string]interface{} `json:"jsonapi,omitempty"`
}

// relationshipOneNode is used to represent a generic has one JSON API relation.
type relationshipOneNode struct {
	Data  *node `json:"data"`
	Links Links `json:"links,omitempty"`
	Meta  Meta  `json:"meta,omitempty"`
}

// relationshipManyNode is used to represent a generic has many JSON API relation.
type relationshipManyNode struct {
	Data  []*node `json:"data"`
	Links Links   `json:"links,omitempty"`
	Meta  Meta    `json:"meta,omitempty"`
}

// relationshipLinksNode is the relation entry without the data member - used
// when the linkage was neither requested nor included.
type relationshipLinksNode struct {
	Links Links `json:"links,omitempty"`
	Meta  Meta  `json:"meta,omitempty"`
}

// Links is used to represent a `links` object.
// http://jsonapi.org/format/#document-links
type Links map[string]interface{}

// Link is used to represent a member of the `links` object.
type Link struct {
	Href string `json:"href"`
	Meta Meta   `json:"meta,omitempty"`
}

// Meta is used to represent a `meta` object.
// http://jsonapi.org/format/#document-meta
type Meta map[string]interface{}
