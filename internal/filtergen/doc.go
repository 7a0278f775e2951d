// Package filtergen compiles a scheduled composition into a single filter
// graph expression for the rendering engine. Each node kind maps to a
// fragment function; kinds without one are explicit pass-throughs whose
// consumers read straight from the node's upstream. The generator owns
// label allocation: media inputs receive positional engine labels, every
// emitted fragment receives a synthetic link label.
package filtergen
