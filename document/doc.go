// Package document assembles the JSON API documents - the primary data, the
// compound document 'included' member discovered over the include path trees,
// the sparse fieldsets and the top level members.
//
// The package is the orchestration point of the module: the Marshaler binds a
// mapping.ModelMap registry with the configuration defaults and encodes the
// registered models into the writers.
package document
