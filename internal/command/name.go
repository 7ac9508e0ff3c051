package command

import (
	"strings"

	"github.com/vvka-141/vdir/pkg/vdir"
)

// ValidName reports whether s is a legal directory name:
// 1 to 6 characters from A-Z, a-z, 0-9 and underscore.
func ValidName(s string) bool {
	if len(s) == 0 || len(s) > vdir.MaxNameLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
		case c == '_':
		default:
			return false
		}
	}
	return true
}

// SplitDestination splits a destination path on the separator.
// An empty destination has no segments.
func SplitDestination(dest string) []string {
	if dest == "" {
		return nil
	}
	return strings.Split(dest, vdir.PathSeparator)
}

// ValidDestination reports whether dest is a well-formed move destination:
// no leading or trailing separator, and every segment is ".", ".." or a
// valid name.
func ValidDestination(dest string) bool {
	if strings.HasPrefix(dest, vdir.PathSeparator) || strings.HasSuffix(dest, vdir.PathSeparator) {
		return false
	}
	for _, seg := range SplitDestination(dest) {
		if seg != "." && seg != ".." && !ValidName(seg) {
			return false
		}
	}
	return true
}
