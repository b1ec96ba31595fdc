// Package catalog holds the product reference data used to measure orders.
//
// A Product has a piece definition (volume, bounding box and price) and zero or
// more package definitions, each describing a pack of N pieces with its own
// volume, box and price. The catalog is owned by another system; the dispatch
// core only reads it.
package catalog
