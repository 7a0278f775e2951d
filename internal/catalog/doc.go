// Package catalog declares the built-in node types: their ports, their
// parameter specifications and the defaults a new node starts with. The
// catalog is static; adding a node type means adding a definition here and,
// when the type maps to a filter, a fragment in the filtergen package.
package catalog
