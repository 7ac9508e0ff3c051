// Package session executes validated commands against one directory tree.
//
// A Session owns its tree and its current path; nothing is shared between
// sessions. Every execution produces an output block: the command echo
// followed by zero or more result lines. A command that cannot be applied
// leaves the tree and the current path unchanged and reports one of the
// tree state errors as its only result line.
package session
