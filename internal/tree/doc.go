// Package tree implements the in-memory directory hierarchy.
//
// A Tree owns a single Root node. Every Node maps child names to child
// nodes; names live only in the parent's mapping, never on the node itself.
// A Path is the sequence of names leading from Root to a directory.
//
// The package also defines the state errors reported when a command cannot be
// applied to the current tree. Their messages are user-visible output.
package tree
