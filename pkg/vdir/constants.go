package vdir

// Exit codes for semantic error classification.
// These follow Unix/GNU conventions:
//   - 0: Success
//   - 1: General error
//   - 2: CLI usage error (misuse of command line)
//   - 3+: Application-specific errors
const (
	ExitSuccess        = 0  // Script processed to the end
	ExitGeneralError   = 1  // Unknown or unclassified error
	ExitUsageError     = 2  // CLI usage error (missing args, invalid flags)
	ExitPanic          = 3  // Internal panic (unexpected crash)
	ExitConfigError    = 10 // Invalid vdir.yaml or environment overrides
	ExitScriptNotFound = 14 // Script file missing or unreadable
	ExitOutputFailed   = 15 // Output file could not be created or written
)

// Fixed-width command line layout. A line is split by character position:
// the action occupies the first ActionWidth characters, the source the next
// SourceWidth characters, and everything after that is the destination.
const (
	ActionWidth = 8
	SourceWidth = 8

	// MaxNameLength is the longest directory name accepted by the parser.
	MaxNameLength = 6

	// ListingColumnWidth is the width of one name cell in a dir listing.
	ListingColumnWidth = 8

	// ListingColumns is the number of names per dir listing row.
	ListingColumns = 10
)

const (
	// RootName is the display name of the root directory in paths.
	RootName = "root"

	// PathSeparator joins path segments, both in displayed paths and in
	// move destinations.
	PathSeparator = `\`

	// DefaultOutputPrefix is the prefix of generated output file names.
	DefaultOutputPrefix = "output_"

	// DefaultOutputExtension is the extension of generated output file names.
	DefaultOutputExtension = ".txt"

	// ConfigFileName is the optional project configuration file.
	ConfigFileName = "vdir.yaml"
)
