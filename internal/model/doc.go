// Package model defines the composition document: the node graph, its
// parameter values, connections, groups and global settings that every other
// package operates on. All types carry JSON tags and marshal directly to the
// composition exchange format.
package model
