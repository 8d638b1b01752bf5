// Package catalog holds read-side views of the product and user catalogs.
//
// Orders snapshot catalog data at creation time, so these types are plain
// value holders looked up through ports rather than full aggregates.
package catalog
