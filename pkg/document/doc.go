// Package document maps Go values to XML element trees and back.
//
// # Overview
//
// Every entity sent to the build service declares a Schema once: the name of
// its root element and an ordered list of fields. Each field says how one Go
// value maps onto the tree:
//
//   - Attr / EnumAttr: an attribute on the root element
//   - Text / TextOrEmpty: a text-bearing child element that is always emitted
//   - OptionalText: a text-bearing child element emitted only when non-empty
//   - TextList: one text-bearing child element per list item
//   - Elements: one child element per list item, encoded by a nested schema
//
// Fields are bound through pointer accessors (func(*T) *F), so a schema reads
// and writes struct fields without reflection.
//
// # Example
//
//	var pathSchema = document.NewSchema("path",
//		document.Attr("project", func(p *PathEntry) *string { return &p.Project }),
//		document.Attr("repository", func(p *PathEntry) *string { return &p.Repository }),
//	)
//
//	el := pathSchema.Encode(PathEntry{Project: "openSUSE:Factory", Repository: "snapshot"})
//	data, _ := document.Marshal(el)
//	// <path project="openSUSE:Factory" repository="snapshot"></path>
//
// # Errors
//
// Encoding never fails. Decoding returns a *MappingError when a required node
// is missing or a value cannot be converted. Unknown attributes and elements
// are ignored: documents fetched from the service carry more than the local
// model declares.
package document
