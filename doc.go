// Package jsonapi implements the jsonapi.org document serialization for the
// explicitly mapped domain models.
//
// The domain types are described with the mapping package builders and
// registered into a model map. The document package assembles the single
// resource and collection documents, resolves the included relationship paths
// into deduplicated compound documents and applies the sparse fieldsets. All
// the publicly visible names - collections, attributes, relationships, link
// path segments and error source pointers - are formatted with a single,
// configurable naming convention.
package jsonapi
