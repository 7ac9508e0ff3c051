package tree

import "errors"

// State errors. The messages are written verbatim to the run output.
var (
	ErrExists      = errors.New("Subdirectory already exists")
	ErrNotExist    = errors.New("Subdirectory does not exist")
	ErrAtRoot      = errors.New("Cannot move up from root directory")
	ErrIllegalMove = errors.New("Illegal action attempted")
)
