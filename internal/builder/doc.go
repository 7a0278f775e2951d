// Package builder implements the graph mutation operations: creating
// compositions, adding and wiring nodes, editing parameters and grouping.
// Every operation validates against the catalog before touching the store,
// runs atomically under the store's lock, and returns snapshots rather than
// live graph data.
package builder
