// Package xmltree renders in-memory XML element trees to text.
//
// The interesting part of the problem is namespace-correct
// re-serialization: every [Element] carries a [Scope], the chain of
// prefix bindings visible at that element, and the serializer emits
// xmlns/xmlns:prefix attributes only where a binding is new or
// different relative to what an ancestor already declared. A
// conforming parser reading the output reconstructs a tree whose
// effective namespace bindings match the input at every node, even
// though redundant declarations are dropped.
//
// [Serialize] writes a bare element tree, and can be used to embed
// fragments in a larger stream. [WriteDocument], [DocumentString] and
// [WriteDocumentFile] wrap it with an optional XML declaration and
// charset encoding for the three usual destinations.
//
// Trees are usually built with [Parse], but they are plain exported
// structs and can be constructed directly. The serializer never
// mutates a tree, so a tree may be serialized concurrently by any
// number of goroutines.
package xmltree
