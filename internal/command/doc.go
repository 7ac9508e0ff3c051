// Package command turns one script line into a validated Command.
//
// Lines use a fixed-width layout:
//
//	columns 1-8    action       (dir, mkdir, cd, up, mv, tree)
//	columns 9-16   source       (a directory name)
//	columns 17-    destination  (backslash-separated path, mv only)
//
// Each field is trimmed after slicing. Parsing is pure: it never touches the
// directory tree.
package command
